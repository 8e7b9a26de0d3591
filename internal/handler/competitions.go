package handler

import (
	"net/http"

	"sport-planner/internal/model"
	"sport-planner/internal/service"

	"github.com/gin-gonic/gin"
)

type CompetitionHandler struct {
	store *service.Store
}

func NewCompetitionHandler(store *service.Store) *CompetitionHandler {
	return &CompetitionHandler{store: store}
}

func (h *CompetitionHandler) List(c *gin.Context) {
	competitions, err := h.store.ListCompetitions(c.Request.Context())
	if err != nil {
		fail(c, err, "Failed to get competitions")
		return
	}
	c.JSON(http.StatusOK, competitions)
}

func (h *CompetitionHandler) Create(c *gin.Context) {
	var req model.Competition
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid competition: "+err.Error())
		return
	}
	if req.ID == "" {
		badRequest(c, "id is required")
		return
	}
	if err := h.store.CreateCompetition(c.Request.Context(), req); err != nil {
		fail(c, err, "Failed to create competition")
		return
	}
	c.JSON(http.StatusCreated, model.CreateResult{ID: req.ID, Message: "Competition created successfully"})
}

func (h *CompetitionHandler) Update(c *gin.Context) {
	var req model.Competition
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid competition: "+err.Error())
		return
	}
	if err := h.store.UpdateCompetition(c.Request.Context(), c.Param("id"), req); err != nil {
		fail(c, err, "Failed to update competition")
		return
	}
	c.JSON(http.StatusOK, model.StatusResult{Message: "Competition updated successfully"})
}

func (h *CompetitionHandler) Delete(c *gin.Context) {
	if err := h.store.DeleteCompetition(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err, "Failed to delete competition")
		return
	}
	c.JSON(http.StatusOK, model.StatusResult{Message: "Competition deleted successfully"})
}
