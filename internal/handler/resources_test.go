package handler

import (
	"net/http"
	"testing"
	"time"

	"sport-planner/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrainingSessionRoundTripOverHTTP(t *testing.T) {
	r, _ := newTestRouter(t)

	sess := model.TrainingSession{
		ID:        "t1",
		Title:     "Intervals",
		SportType: "run",
		Date:      time.Date(2024, 3, 10, 7, 0, 0, 0, time.UTC),
		Duration:  45,
		Intensity: "high",
		Metrics:   map[string]float64{"distance": 10.5, "pace": 4.2},
	}
	w := do(t, r, "POST", "/api/training", sess)
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(t, r, "GET", "/api/training", nil)
	require.Equal(t, http.StatusOK, w.Code)
	got := decode[[]model.TrainingSession](t, w)
	require.Len(t, got, 1)
	assert.Equal(t, sess.Metrics, got[0].Metrics)
	assert.True(t, got[0].Date.Equal(sess.Date))
}

func TestTrainingIntensityValidated(t *testing.T) {
	r, _ := newTestRouter(t)
	w := doRaw(t, r, "POST", "/api/training",
		`{"id":"t1","title":"Intervals","sportType":"run","date":"2024-03-10T07:00:00Z","duration":45,"intensity":"brutal"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMealCRUD(t *testing.T) {
	r, _ := newTestRouter(t)

	meal := model.Meal{
		ID:       "m1",
		Title:    "Post-workout shake",
		Date:     time.Date(2024, 4, 2, 12, 0, 0, 0, time.UTC),
		MealType: "post-workout",
		Foods:    []string{"whey", "banana"},
	}
	w := do(t, r, "POST", "/api/meals", meal)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Meal created successfully", decode[model.CreateResult](t, w).Message)

	meal.Completed = true
	meal.Feedback = "good"
	w = do(t, r, "PUT", "/api/meals/m1", meal)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, r, "GET", "/api/meals", nil)
	got := decode[[]model.Meal](t, w)
	require.Len(t, got, 1)
	assert.True(t, got[0].Completed)
	assert.Equal(t, []string{"whey", "banana"}, got[0].Foods)

	w = do(t, r, "DELETE", "/api/meals/m1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	w = do(t, r, "GET", "/api/meals", nil)
	assert.Empty(t, decode[[]model.Meal](t, w))
}

func TestInjuryCRUD(t *testing.T) {
	r, _ := newTestRouter(t)

	injury := model.Injury{
		ID:        "i1",
		Title:     "Right knee pain",
		BodyPart:  "knee",
		Severity:  "mild",
		StartDate: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		Status:    "active",
		Notes:     []string{"appeared after match"},
	}
	w := do(t, r, "POST", "/api/injuries", injury)
	require.Equal(t, http.StatusCreated, w.Code)

	end := time.Date(2024, 2, 20, 0, 0, 0, 0, time.UTC)
	injury.EndDate = &end
	injury.Status = "resolved"
	injury.Notes = append(injury.Notes, "cleared by physio")
	w = do(t, r, "PUT", "/api/injuries/i1", injury)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, r, "GET", "/api/injuries", nil)
	got := decode[[]model.Injury](t, w)
	require.Len(t, got, 1)
	assert.Equal(t, "resolved", got[0].Status)
	require.NotNil(t, got[0].EndDate)
	assert.True(t, got[0].EndDate.Equal(end))
	assert.Len(t, got[0].Notes, 2)
}

func TestCompetitionCRUD(t *testing.T) {
	r, _ := newTestRouter(t)

	comp := model.Competition{
		ID:        "c1",
		Title:     "City triathlon",
		SportType: "triathlon",
		Date:      time.Date(2024, 7, 14, 9, 0, 0, 0, time.UTC),
		Location:  "Lyon",
		Priority:  "A",
		Goal:      "sub 2h30",
	}
	w := do(t, r, "POST", "/api/competitions", comp)
	require.Equal(t, http.StatusCreated, w.Code)

	comp.Result = "2h28"
	w = do(t, r, "PUT", "/api/competitions/c1", comp)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, r, "GET", "/api/competitions", nil)
	got := decode[[]model.Competition](t, w)
	require.Len(t, got, 1)
	assert.Equal(t, "2h28", got[0].Result)

	// priority enum enforced
	w = doRaw(t, r, "POST", "/api/competitions",
		`{"id":"c2","title":"Local 10k","sportType":"run","date":"2024-08-01T09:00:00Z","location":"Paris","priority":"D"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSettingsGetAndUpdate(t *testing.T) {
	r, _ := newTestRouter(t)

	w := do(t, r, "GET", "/api/settings", nil)
	require.Equal(t, http.StatusOK, w.Code)
	got := decode[model.UserSettings](t, w)
	assert.Equal(t, model.DefaultSettings(), got)

	got.Name = "Alice"
	got.Units = "imperial"
	got.SecondarySports = []string{"trail"}
	w = do(t, r, "PUT", "/api/settings", got)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Settings updated successfully", decode[model.StatusResult](t, w).Message)

	w = do(t, r, "GET", "/api/settings", nil)
	updated := decode[model.UserSettings](t, w)
	assert.Equal(t, got, updated)

	// units enum enforced
	got.Units = "furlongs"
	w = do(t, r, "PUT", "/api/settings", got)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
