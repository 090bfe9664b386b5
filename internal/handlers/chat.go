package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"aimax-site/internal/models"
	"aimax-site/internal/services"
)

const diagNote = "If hasKey=false or keyMask is not your current key, the environment file is not being read (wrong location / wrong process / no restart)."

const keyHint = "If the keyMask is not the key you expect, you are editing the wrong environment file or not restarting the server."

type ChatHandler struct {
	completions *services.CompletionService
	logger      *zap.Logger
}

func NewChatHandler(completions *services.CompletionService, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{completions: completions, logger: logger}
}

// Diagnostics lets an operator verify which credential is loaded without ever
// seeing it in full.
func (h *ChatHandler) Diagnostics(w http.ResponseWriter, r *http.Request) {
	cred := h.completions.Credential()
	writeJSON(w, http.StatusOK, models.DiagnosticsResponse{
		OK:      true,
		HasKey:  cred.Present(),
		KeyMask: cred.Mask(),
		Note:    diagNote,
	})
}

// Relay handles one chat request end to end: decode, relay upstream, map the
// outcome. Each request is independent; a failure is never fatal to the
// process.
func (h *ChatHandler) Relay(w http.ResponseWriter, r *http.Request) {
	// Credential is checked before the body is even parsed; a misconfigured
	// server reports 500, not 400, regardless of what the client sent.
	if !h.completions.Credential().Present() {
		h.writeRelayError(w, &services.ConfigurationError{Message: "Missing OPENAI_API_KEY in environment"})
		return
	}

	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp("Invalid request body"))
		return
	}

	content, err := h.completions.Relay(r.Context(), req.Lang, req.Messages)
	if err != nil {
		h.writeRelayError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, models.ChatResponse{
		Message: models.ChatMessage{Role: models.RoleAssistant, Content: content},
	})
}

func (h *ChatHandler) writeRelayError(w http.ResponseWriter, err error) {
	cred := h.completions.Credential()
	switch e := err.(type) {
	case *services.ConfigurationError:
		hasKey := cred.Present()
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: models.APIError{
			Message: e.Message,
			Debug:   &models.ErrorDebug{HasKey: &hasKey, KeyMask: cred.Mask()},
		}})
	case *services.ValidationError:
		writeJSON(w, http.StatusBadRequest, errorResp(e.Message))
	case *services.UpstreamError:
		writeJSON(w, e.Status, models.ErrorResponse{Error: models.APIError{
			Message: e.Message,
			Debug:   &models.ErrorDebug{KeyMask: cred.Mask(), Hint: keyHint},
		}})
	default:
		h.logger.Error("chat relay failed", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorResp(err.Error()))
	}
}

// Shared helpers

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func errorResp(message string) models.ErrorResponse {
	return models.ErrorResponse{Error: models.APIError{Message: message}}
}
