package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"aimax-site/internal/models"
	"aimax-site/internal/services"
)

type LeadHandler struct {
	leads  *services.LeadService
	logger *zap.Logger
}

func NewLeadHandler(leads *services.LeadService, logger *zap.Logger) *LeadHandler {
	return &LeadHandler{leads: leads, logger: logger}
}

// Submit validates a contact-form submission and forwards it to the collector.
func (h *LeadHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req models.LeadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("Invalid request body"))
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Contact = strings.TrimSpace(req.Contact)
	req.Message = strings.TrimSpace(req.Message)
	if req.Name == "" || req.Contact == "" || req.Message == "" {
		writeJSON(w, http.StatusBadRequest, errorResp("Name, contact and message are required"))
		return
	}

	if err := h.leads.Forward(r.Context(), req); err != nil {
		if e, ok := err.(*services.UpstreamError); ok {
			writeJSON(w, e.Status, errorResp(e.Message))
			return
		}
		h.logger.Error("lead submit failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorResp("Failed to submit lead"))
		return
	}

	writeJSON(w, http.StatusOK, models.LeadResponse{OK: true})
}
