package handler

import (
	"net/http"

	"sport-planner/internal/model"
	"sport-planner/internal/service"

	"github.com/gin-gonic/gin"
)

type InjuryHandler struct {
	store *service.Store
}

func NewInjuryHandler(store *service.Store) *InjuryHandler {
	return &InjuryHandler{store: store}
}

func (h *InjuryHandler) List(c *gin.Context) {
	injuries, err := h.store.ListInjuries(c.Request.Context())
	if err != nil {
		fail(c, err, "Failed to get injuries")
		return
	}
	c.JSON(http.StatusOK, injuries)
}

func (h *InjuryHandler) Create(c *gin.Context) {
	var req model.Injury
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid injury: "+err.Error())
		return
	}
	if req.ID == "" {
		badRequest(c, "id is required")
		return
	}
	if err := h.store.CreateInjury(c.Request.Context(), req); err != nil {
		fail(c, err, "Failed to create injury")
		return
	}
	c.JSON(http.StatusCreated, model.CreateResult{ID: req.ID, Message: "Injury created successfully"})
}

func (h *InjuryHandler) Update(c *gin.Context) {
	var req model.Injury
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid injury: "+err.Error())
		return
	}
	if err := h.store.UpdateInjury(c.Request.Context(), c.Param("id"), req); err != nil {
		fail(c, err, "Failed to update injury")
		return
	}
	c.JSON(http.StatusOK, model.StatusResult{Message: "Injury updated successfully"})
}

func (h *InjuryHandler) Delete(c *gin.Context) {
	if err := h.store.DeleteInjury(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err, "Failed to delete injury")
		return
	}
	c.JSON(http.StatusOK, model.StatusResult{Message: "Injury deleted successfully"})
}
