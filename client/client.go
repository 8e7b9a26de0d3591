// Package client is a typed adapter for the sport-planner HTTP API. Each
// method issues exactly one request and returns the decoded response for
// the caller to merge into its state store; there is no caching, no
// deduplication and no retry.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"sport-planner/internal/apperr"
	"sport-planner/internal/model"
)

type Client struct {
	baseURL string
	client  *http.Client
}

func New(baseURL string) *Client {
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), client: &http.Client{}}
}

// Events

func (c *Client) Events(ctx context.Context) ([]model.Event, error) {
	var out []model.Event
	err := c.doJSON(ctx, "GET", "/api/events", nil, &out)
	return out, err
}

func (c *Client) CreateEvent(ctx context.Context, e model.Event) (model.CreateResult, error) {
	var out model.CreateResult
	err := c.doJSON(ctx, "POST", "/api/events", e, &out)
	return out, err
}

func (c *Client) UpdateEvent(ctx context.Context, id string, e model.Event) error {
	return c.doJSON(ctx, "PUT", "/api/events/"+id, e, nil)
}

func (c *Client) DeleteEvent(ctx context.Context, id string) error {
	return c.doJSON(ctx, "DELETE", "/api/events/"+id, nil, nil)
}

// Training sessions

func (c *Client) TrainingSessions(ctx context.Context) ([]model.TrainingSession, error) {
	var out []model.TrainingSession
	err := c.doJSON(ctx, "GET", "/api/training", nil, &out)
	return out, err
}

func (c *Client) CreateTrainingSession(ctx context.Context, t model.TrainingSession) (model.CreateResult, error) {
	var out model.CreateResult
	err := c.doJSON(ctx, "POST", "/api/training", t, &out)
	return out, err
}

func (c *Client) UpdateTrainingSession(ctx context.Context, id string, t model.TrainingSession) error {
	return c.doJSON(ctx, "PUT", "/api/training/"+id, t, nil)
}

func (c *Client) DeleteTrainingSession(ctx context.Context, id string) error {
	return c.doJSON(ctx, "DELETE", "/api/training/"+id, nil, nil)
}

// Meals

func (c *Client) Meals(ctx context.Context) ([]model.Meal, error) {
	var out []model.Meal
	err := c.doJSON(ctx, "GET", "/api/meals", nil, &out)
	return out, err
}

func (c *Client) CreateMeal(ctx context.Context, m model.Meal) (model.CreateResult, error) {
	var out model.CreateResult
	err := c.doJSON(ctx, "POST", "/api/meals", m, &out)
	return out, err
}

func (c *Client) UpdateMeal(ctx context.Context, id string, m model.Meal) error {
	return c.doJSON(ctx, "PUT", "/api/meals/"+id, m, nil)
}

func (c *Client) DeleteMeal(ctx context.Context, id string) error {
	return c.doJSON(ctx, "DELETE", "/api/meals/"+id, nil, nil)
}

// Injuries

func (c *Client) Injuries(ctx context.Context) ([]model.Injury, error) {
	var out []model.Injury
	err := c.doJSON(ctx, "GET", "/api/injuries", nil, &out)
	return out, err
}

func (c *Client) CreateInjury(ctx context.Context, i model.Injury) (model.CreateResult, error) {
	var out model.CreateResult
	err := c.doJSON(ctx, "POST", "/api/injuries", i, &out)
	return out, err
}

func (c *Client) UpdateInjury(ctx context.Context, id string, i model.Injury) error {
	return c.doJSON(ctx, "PUT", "/api/injuries/"+id, i, nil)
}

func (c *Client) DeleteInjury(ctx context.Context, id string) error {
	return c.doJSON(ctx, "DELETE", "/api/injuries/"+id, nil, nil)
}

// Competitions

func (c *Client) Competitions(ctx context.Context) ([]model.Competition, error) {
	var out []model.Competition
	err := c.doJSON(ctx, "GET", "/api/competitions", nil, &out)
	return out, err
}

func (c *Client) CreateCompetition(ctx context.Context, comp model.Competition) (model.CreateResult, error) {
	var out model.CreateResult
	err := c.doJSON(ctx, "POST", "/api/competitions", comp, &out)
	return out, err
}

func (c *Client) UpdateCompetition(ctx context.Context, id string, comp model.Competition) error {
	return c.doJSON(ctx, "PUT", "/api/competitions/"+id, comp, nil)
}

func (c *Client) DeleteCompetition(ctx context.Context, id string) error {
	return c.doJSON(ctx, "DELETE", "/api/competitions/"+id, nil, nil)
}

// Settings

func (c *Client) Settings(ctx context.Context) (model.UserSettings, error) {
	var out model.UserSettings
	err := c.doJSON(ctx, "GET", "/api/settings", nil, &out)
	return out, err
}

func (c *Client) UpdateSettings(ctx context.Context, s model.UserSettings) error {
	return c.doJSON(ctx, "PUT", "/api/settings", s, nil)
}

// Coach

func (c *Client) CoachAdvice(ctx context.Context, coachType, message string) (string, error) {
	var out model.CoachReply
	err := c.doJSON(ctx, "POST", "/api/coach/"+coachType, model.CoachRequest{Message: message}, &out)
	return out.Message, err
}

func (c *Client) CoachMessages(ctx context.Context, coachType string) ([]model.CoachMessage, error) {
	var out []model.CoachMessage
	err := c.doJSON(ctx, "GET", "/api/coach/"+coachType+"/messages", nil, &out)
	return out, err
}

func (c *Client) doJSON(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("api %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	data, _ := io.ReadAll(resp.Body)
	if resp.StatusCode >= 400 {
		return decodeAPIError(method, path, resp.StatusCode, data)
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}

// decodeAPIError reconstructs the server's error kind from the wire body,
// falling back to a plain status error for non-JSON bodies.
func decodeAPIError(method, path string, status int, data []byte) error {
	var body struct {
		Error string `json:"error"`
		Kind  string `json:"kind"`
	}
	if json.Unmarshal(data, &body) == nil && body.Error != "" {
		return apperr.New(apperr.ParseKind(body.Kind), body.Error)
	}
	return fmt.Errorf("api %s %s: status %d: %s", method, path, status, data)
}
