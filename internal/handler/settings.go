package handler

import (
	"net/http"

	"sport-planner/internal/model"
	"sport-planner/internal/service"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	store *service.Store
}

func NewSettingsHandler(store *service.Store) *SettingsHandler {
	return &SettingsHandler{store: store}
}

func (h *SettingsHandler) Get(c *gin.Context) {
	settings, err := h.store.GetSettings(c.Request.Context())
	if err != nil {
		fail(c, err, "Settings not found")
		return
	}
	c.JSON(http.StatusOK, settings)
}

func (h *SettingsHandler) Update(c *gin.Context) {
	var req model.UserSettings
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid settings: "+err.Error())
		return
	}
	if err := h.store.UpdateSettings(c.Request.Context(), req); err != nil {
		fail(c, err, "Failed to update settings")
		return
	}
	c.JSON(http.StatusOK, model.StatusResult{Message: "Settings updated successfully"})
}
