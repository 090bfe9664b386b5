package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"aimax-site/internal/models"
)

// completionPayload is the body sent to the chat-completions API.
type completionPayload struct {
	Model       string               `json:"model"`
	Temperature float64              `json:"temperature"`
	Messages    []models.ChatMessage `json:"messages"`
}

// completionResult covers both the success and error shapes of the upstream
// response; unparseable bodies leave it zero.
type completionResult struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// CompletionService relays one conversation to the upstream completion API
// per call. It holds no state between calls beyond the read-only credential,
// so concurrent invocations never synchronize.
type CompletionService struct {
	client      *http.Client
	apiURL      string
	credential  Credential
	model       string
	temperature float64
	logger      *zap.Logger
}

func NewCompletionService(
	client *http.Client,
	apiURL string,
	credential Credential,
	model string,
	temperature float64,
	logger *zap.Logger,
) *CompletionService {
	if client == nil {
		client = http.DefaultClient
	}
	return &CompletionService{
		client:      client,
		apiURL:      apiURL,
		credential:  credential,
		model:       model,
		temperature: temperature,
		logger:      logger,
	}
}

func (s *CompletionService) Credential() Credential { return s.credential }

// Relay validates the raw client transcript, prepends the system prompt for
// lang and performs exactly one upstream call. Nothing is retried; every
// failure comes back as a typed error for the handler to map.
func (s *CompletionService) Relay(ctx context.Context, lang string, rawMessages json.RawMessage) (string, error) {
	if !s.credential.Present() {
		return "", &ConfigurationError{Message: "Missing OPENAI_API_KEY in environment"}
	}

	if !hasMessages(rawMessages) {
		return "", &ValidationError{Message: "Body must include { messages: [...] }"}
	}

	cleaned := SanitizeMessages(rawMessages)
	payload := completionPayload{
		Model:       s.model,
		Temperature: s.temperature,
		Messages: append(
			[]models.ChatMessage{{Role: models.RoleSystem, Content: SystemPrompt(lang)}},
			cleaned...,
		),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("encode completion payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build completion request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+string(s.credential))

	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.Warn("completion call failed", zap.Error(err))
		return "", fmt.Errorf("completion call: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read completion response: %w", err)
	}

	var result completionResult
	// Tolerate an unparseable body; the status code still decides the outcome.
	_ = json.Unmarshal(respBody, &result)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		msg := ""
		if result.Error != nil {
			msg = result.Error.Message
		}
		if msg == "" {
			msg = fmt.Sprintf("OpenAI API error (%d)", resp.StatusCode)
		}
		s.logger.Warn("completion rejected",
			zap.Int("status", resp.StatusCode),
			zap.String("key", s.credential.Mask()),
		)
		return "", &UpstreamError{Status: resp.StatusCode, Message: msg}
	}

	if len(result.Choices) == 0 {
		return "", nil
	}
	return result.Choices[0].Message.Content, nil
}
