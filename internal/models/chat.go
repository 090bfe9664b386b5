package models

import "encoding/json"

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage represents a single message in a conversation.
type ChatMessage struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

// ChatRequest is the payload sent to the chat endpoint. Messages stays raw so
// the sanitizer can drop malformed entries instead of rejecting the whole body.
type ChatRequest struct {
	Lang     string          `json:"lang"`
	Messages json.RawMessage `json:"messages"`
}

// ChatResponse is the reply from the AI chat.
type ChatResponse struct {
	Message ChatMessage `json:"message"`
}

// DiagnosticsResponse reports credential state without exposing the key.
type DiagnosticsResponse struct {
	OK      bool   `json:"ok"`
	HasKey  bool   `json:"hasKey"`
	KeyMask string `json:"keyMask"`
	Note    string `json:"note"`
}

// API error response
type ErrorDebug struct {
	HasKey  *bool  `json:"hasKey,omitempty"`
	KeyMask string `json:"keyMask,omitempty"`
	Hint    string `json:"hint,omitempty"`
}

type APIError struct {
	Message string      `json:"message"`
	Debug   *ErrorDebug `json:"debug,omitempty"`
}

type ErrorResponse struct {
	Error APIError `json:"error"`
}
