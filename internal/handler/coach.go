package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"sport-planner/internal/logger"
	"sport-planner/internal/model"
	"sport-planner/internal/service"

	"github.com/gin-gonic/gin"
)

type CoachHandler struct {
	advisor service.Advisor
	store   *service.Store
}

func NewCoachHandler(advisor service.Advisor, store *service.Store) *CoachHandler {
	return &CoachHandler{advisor: advisor, store: store}
}

var coachTypes = map[string]bool{"sport": true, "diet": true, "injury": true}

// Advice handles POST /api/coach/:type. The reply comes from the
// configured advisor; the exchange is recorded best-effort and never
// fails the response.
func (h *CoachHandler) Advice(c *gin.Context) {
	coachType := c.Param("type")
	if !coachTypes[coachType] {
		badRequest(c, "unknown coach type")
		return
	}

	var req model.CoachRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request")
		return
	}

	ctx := c.Request.Context()
	logger.Info("coach.advice", "coach", coachType, "len", len(req.Message))

	reply, err := h.advisor.Advice(ctx, coachType, req.Message)
	if err != nil {
		fail(c, err, "Failed to get "+coachType+" coach advice")
		return
	}

	h.record(coachType, req.Message, reply)
	c.JSON(http.StatusOK, model.CoachReply{Message: reply})
}

// Messages handles GET /api/coach/:type/messages.
func (h *CoachHandler) Messages(c *gin.Context) {
	coachType := c.Param("type")
	if !coachTypes[coachType] {
		badRequest(c, "unknown coach type")
		return
	}
	msgs, err := h.store.ListCoachMessages(c.Request.Context(), coachType)
	if err != nil {
		fail(c, err, "Failed to get coach messages")
		return
	}
	c.JSON(http.StatusOK, msgs)
}

func (h *CoachHandler) record(coachType, question, reply string) {
	now := time.Now()
	pair := []model.CoachMessage{
		{ID: messageID(now, 0), CoachType: coachType, Message: question, Date: now, IsUser: true},
		{ID: messageID(now, 1), CoachType: coachType, Message: reply, Date: now.Add(time.Millisecond), IsUser: false},
	}
	// Background context: the transcript write should survive the request
	// being cancelled after the reply is ready.
	ctx := context.Background()
	for _, m := range pair {
		if err := h.store.AppendCoachMessage(ctx, m); err != nil {
			logger.Warn("coach transcript save failed", "coach", coachType, "err", err)
			return
		}
	}
}

func messageID(t time.Time, offset int64) string {
	return strconv.FormatInt(t.UnixNano()+offset, 10)
}
