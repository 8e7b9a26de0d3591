package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"sport-planner/internal/apperr"
)

// Advisor turns a free-text user message into a coaching reply. The coach
// type tags the transcript; the live gateway sends the message as the
// entire prompt.
type Advisor interface {
	Advice(ctx context.Context, coachType, message string) (string, error)
}

// AIService forwards messages to an OpenAI-compatible chat-completions
// endpoint. Single request per message, no retry, no streaming.
type AIService struct {
	baseURL string
	apiKey  string
	model   string
	client  *http.Client
}

func NewAIService(baseURL, apiKey, model string) (*AIService, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("coach gateway: api key not configured")
	}
	return &AIService{baseURL: baseURL, apiKey: apiKey, model: model, client: &http.Client{}}, nil
}

func (s *AIService) Advice(ctx context.Context, coachType, message string) (string, error) {
	body := map[string]interface{}{
		"model": s.model,
		"messages": []map[string]string{
			{"role": "user", "content": message},
		},
	}
	payload, _ := json.Marshal(body)

	req, err := http.NewRequestWithContext(ctx, "POST", s.baseURL+"/v1/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", apperr.Wrap(apperr.Gateway, "build request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", apperr.Wrap(apperr.Gateway, "llm call", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		data, _ := io.ReadAll(resp.Body)
		return "", apperr.Wrap(apperr.Gateway, "llm call",
			fmt.Errorf("status %d: %s", resp.StatusCode, data))
	}

	data, _ := io.ReadAll(resp.Body)
	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return "", apperr.Wrap(apperr.Gateway, "decode response", err)
	}
	if len(result.Choices) == 0 {
		return "", nil
	}
	return result.Choices[0].Message.Content, nil
}
