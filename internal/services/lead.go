package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"aimax-site/internal/models"
)

// LeadService forwards contact-form submissions to the external collector.
type LeadService struct {
	client     *http.Client
	webhookURL string
	logger     *zap.Logger
}

func NewLeadService(client *http.Client, webhookURL string, logger *zap.Logger) *LeadService {
	if client == nil {
		client = http.DefaultClient
	}
	return &LeadService{client: client, webhookURL: webhookURL, logger: logger}
}

// Forward delivers one lead to the collector webhook. Without a configured
// webhook the lead is logged and accepted, so the form keeps working in
// development and the visitor never sees an infrastructure gap.
func (s *LeadService) Forward(ctx context.Context, lead models.LeadRequest) error {
	if s.webhookURL == "" {
		s.logger.Info("lead received (no collector configured)",
			zap.String("name", lead.Name),
			zap.String("contact", lead.Contact),
			zap.String("source", lead.Source),
			zap.String("lang", lead.Lang),
		)
		return nil
	}

	body, err := json.Marshal(lead)
	if err != nil {
		return fmt.Errorf("encode lead: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.webhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build lead request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.Warn("lead forward failed", zap.Error(err))
		return &UpstreamError{Status: http.StatusBadGateway, Message: "Lead collector unreachable"}
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		s.logger.Warn("lead collector rejected submission", zap.Int("status", resp.StatusCode))
		return &UpstreamError{
			Status:  http.StatusBadGateway,
			Message: fmt.Sprintf("Lead collector error (%d)", resp.StatusCode),
		}
	}
	return nil
}
