package client

import (
	"context"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"sport-planner/internal/apperr"
	"sport-planner/internal/handler"
	"sport-planner/internal/model"
	"sport-planner/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestClient runs the real router over httptest so the adapter is
// exercised against the actual wire contract.
func newTestClient(t *testing.T) *Client {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.sqlite")), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	store := service.NewStore(db)
	require.NoError(t, store.Migrate(context.Background()))

	srv := httptest.NewServer(handler.NewRouter(store, &service.CannedAdvisor{}))
	t.Cleanup(srv.Close)
	return New(srv.URL)
}

func TestClientEventCRUD(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	e := model.Event{
		ID:    "e1",
		Title: "Run",
		Start: time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
		Type:  "training",
	}
	res, err := c.CreateEvent(ctx, e)
	require.NoError(t, err)
	assert.Equal(t, "e1", res.ID)
	assert.Equal(t, "Event created successfully", res.Message)

	events, err := c.Events(ctx)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, e, events[0])

	e.Completed = true
	require.NoError(t, c.UpdateEvent(ctx, "e1", e))
	events, err = c.Events(ctx)
	require.NoError(t, err)
	assert.True(t, events[0].Completed)

	require.NoError(t, c.DeleteEvent(ctx, "e1"))
	events, err = c.Events(ctx)
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestClientDecodesErrorKinds(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	e := model.Event{
		ID:    "e1",
		Title: "Run",
		Start: time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
		Type:  "training",
	}
	_, err := c.CreateEvent(ctx, e)
	require.NoError(t, err)

	_, err = c.CreateEvent(ctx, e)
	require.Error(t, err)
	assert.Equal(t, apperr.Conflict, apperr.KindOf(err))

	// validation errors surface as the validation kind
	_, err = c.CreateEvent(ctx, model.Event{ID: "e2"})
	require.Error(t, err)
	assert.Equal(t, apperr.Validation, apperr.KindOf(err))
}

func TestClientSettings(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	settings, err := c.Settings(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.DefaultSettings(), settings)

	settings.Name = "Alice"
	settings.DietaryRestrictions = []string{"vegetarian"}
	require.NoError(t, c.UpdateSettings(ctx, settings))

	got, err := c.Settings(ctx)
	require.NoError(t, err)
	assert.Equal(t, settings, got)
}

func TestClientCoach(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	reply, err := c.CoachAdvice(ctx, "diet", "What should I eat before swimming?")
	require.NoError(t, err)
	assert.NotEmpty(t, reply)

	msgs, err := c.CoachMessages(ctx, "diet")
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.True(t, msgs[0].IsUser)
	assert.Equal(t, reply, msgs[1].Message)

	_, err = c.CoachAdvice(ctx, "yoga", "hi")
	require.Error(t, err)
	assert.Equal(t, apperr.Validation, apperr.KindOf(err))
}

func TestClientTrainingAndCollections(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	sess := model.TrainingSession{
		ID:        "t1",
		Title:     "Intervals",
		SportType: "run",
		Date:      time.Date(2024, 3, 10, 7, 0, 0, 0, time.UTC),
		Duration:  45,
		Intensity: "high",
		Metrics:   map[string]float64{"distance": 10.5},
	}
	_, err := c.CreateTrainingSession(ctx, sess)
	require.NoError(t, err)

	sessions, err := c.TrainingSessions(ctx)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, sess, sessions[0])

	meal := model.Meal{ID: "m1", Title: "Breakfast",
		Date: time.Date(2024, 4, 2, 7, 0, 0, 0, time.UTC), MealType: "breakfast"}
	_, err = c.CreateMeal(ctx, meal)
	require.NoError(t, err)
	meals, err := c.Meals(ctx)
	require.NoError(t, err)
	assert.Len(t, meals, 1)

	injury := model.Injury{ID: "i1", Title: "Knee", BodyPart: "knee", Severity: "mild",
		StartDate: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), Status: "active"}
	_, err = c.CreateInjury(ctx, injury)
	require.NoError(t, err)
	injuries, err := c.Injuries(ctx)
	require.NoError(t, err)
	assert.Len(t, injuries, 1)

	comp := model.Competition{ID: "c1", Title: "Race", SportType: "run",
		Date: time.Date(2024, 7, 14, 9, 0, 0, 0, time.UTC), Location: "Lyon", Priority: "A"}
	_, err = c.CreateCompetition(ctx, comp)
	require.NoError(t, err)
	comps, err := c.Competitions(ctx)
	require.NoError(t, err)
	assert.Len(t, comps, 1)
}
