package handler

import (
	"net/http"

	"sport-planner/internal/model"
	"sport-planner/internal/service"

	"github.com/gin-gonic/gin"
)

type EventHandler struct {
	store *service.Store
}

func NewEventHandler(store *service.Store) *EventHandler {
	return &EventHandler{store: store}
}

func (h *EventHandler) List(c *gin.Context) {
	events, err := h.store.ListEvents(c.Request.Context())
	if err != nil {
		fail(c, err, "Failed to get events")
		return
	}
	c.JSON(http.StatusOK, events)
}

func (h *EventHandler) Create(c *gin.Context) {
	var req model.Event
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid event: "+err.Error())
		return
	}
	if req.ID == "" {
		badRequest(c, "id is required")
		return
	}
	if err := h.store.CreateEvent(c.Request.Context(), req); err != nil {
		fail(c, err, "Failed to create event")
		return
	}
	c.JSON(http.StatusCreated, model.CreateResult{ID: req.ID, Message: "Event created successfully"})
}

func (h *EventHandler) Update(c *gin.Context) {
	var req model.Event
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid event: "+err.Error())
		return
	}
	id := c.Param("id")
	if err := h.store.UpdateEvent(c.Request.Context(), id, req); err != nil {
		fail(c, err, "Failed to update event")
		return
	}
	c.JSON(http.StatusOK, model.StatusResult{Message: "Event updated successfully"})
}

func (h *EventHandler) Delete(c *gin.Context) {
	if err := h.store.DeleteEvent(c.Request.Context(), c.Param("id")); err != nil {
		fail(c, err, "Failed to delete event")
		return
	}
	c.JSON(http.StatusOK, model.StatusResult{Message: "Event deleted successfully"})
}
