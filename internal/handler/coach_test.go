package handler

import (
	"context"
	"net/http"
	"testing"

	"sport-planner/internal/apperr"
	"sport-planner/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoachAdviceCannedMode(t *testing.T) {
	r, _ := newTestRouter(t)

	w := do(t, r, "POST", "/api/coach/diet", model.CoachRequest{Message: "What should I eat before swimming?"})
	require.Equal(t, http.StatusOK, w.Code)
	reply := decode[model.CoachReply](t, w)
	assert.NotEmpty(t, reply.Message)

	// canned mode ignores the input message
	w2 := do(t, r, "POST", "/api/coach/diet", model.CoachRequest{Message: "something completely different"})
	require.Equal(t, http.StatusOK, w2.Code)
	assert.Equal(t, reply, decode[model.CoachReply](t, w2))
}

func TestCoachAdviceUnknownTypeAndMissingMessage(t *testing.T) {
	r, _ := newTestRouter(t)

	w := do(t, r, "POST", "/api/coach/yoga", model.CoachRequest{Message: "hi"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRaw(t, r, "POST", "/api/coach/sport", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCoachAdvicePersistsTranscript(t *testing.T) {
	r, store := newTestRouter(t)

	w := do(t, r, "POST", "/api/coach/injury", model.CoachRequest{Message: "my knee hurts"})
	require.Equal(t, http.StatusOK, w.Code)

	msgs, err := store.ListCoachMessages(context.Background(), "injury")
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.True(t, msgs[0].IsUser)
	assert.Equal(t, "my knee hurts", msgs[0].Message)
	assert.False(t, msgs[1].IsUser)
	assert.NotEmpty(t, msgs[1].Message)

	w = do(t, r, "GET", "/api/coach/injury/messages", nil)
	require.Equal(t, http.StatusOK, w.Code)
	wire := decode[[]model.CoachMessage](t, w)
	assert.Len(t, wire, 2)

	// other coaches see an empty transcript
	w = do(t, r, "GET", "/api/coach/sport/messages", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decode[[]model.CoachMessage](t, w))
}

type failingAdvisor struct{}

func (failingAdvisor) Advice(ctx context.Context, coachType, message string) (string, error) {
	return "", apperr.New(apperr.Gateway, "provider unreachable")
}

func TestCoachAdviceGatewayFailure(t *testing.T) {
	_, store := newTestRouter(t)
	r := NewRouter(store, failingAdvisor{})

	w := do(t, r, "POST", "/api/coach/sport", model.CoachRequest{Message: "plan my week"})
	assert.Equal(t, http.StatusBadGateway, w.Code)

	// a failed round trip leaves no transcript behind
	msgs, err := store.ListCoachMessages(context.Background(), "sport")
	require.NoError(t, err)
	assert.Empty(t, msgs)
}
