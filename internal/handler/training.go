package handler

import (
	"net/http"

	"sport-planner/internal/model"
	"sport-planner/internal/service"

	"github.com/gin-gonic/gin"
)

type TrainingHandler struct {
	store *service.Store
}

func NewTrainingHandler(store *service.Store) *TrainingHandler {
	return &TrainingHandler{store: store}
}

func (h *TrainingHandler) List(c *gin.Context) {
	sessions, err := h.store.ListTrainingSessions(c.Request.Context())
	if err != nil {
		fail(c, err, "Failed to get training sessions")
		return
	}
	c.JSON(http.StatusOK, sessions)
}

func (h *TrainingHandler) Create(c *gin.Context) {
	var req model.TrainingSession
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid training session: "+err.Error())
		return
	}
	if req.ID == "" {
		badRequest(c, "id is required")
		return
	}
	if err := h.store.CreateTrainingSession(c.Request.Context(), req); err != nil {
		fail(c, err, "Failed to create training session")
		return
	}
	c.JSON(http.StatusCreated, model.CreateResult{ID: req.ID, Message: "Training session created successfully"})
}

func (h *TrainingHandler) Update(c *gin.Context) {
	var req model.TrainingSession
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid training session: "+err.Error())
		return
	}
	if err := h.store.UpdateTrainingSession(c.Request.Context(), c.Param("id"), req); err != nil {
		fail(c, err, "Failed to update training session")
		return
	}
	c.JSON(http.StatusOK, model.StatusResult{Message: "Training session updated successfully"})
}

func (h *TrainingHandler) Delete(c *gin.Context) {
	if err := h.store.DeleteTrainingSession(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err, "Failed to delete training session")
		return
	}
	c.JSON(http.StatusOK, model.StatusResult{Message: "Training session deleted successfully"})
}
