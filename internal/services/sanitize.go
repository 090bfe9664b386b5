package services

import (
	"encoding/json"

	"aimax-site/internal/models"
)

// SanitizeMessages reduces an untrusted client transcript to well-typed
// user/assistant turns. Input that is not a JSON array yields an empty slice.
// Each kept entry carries only role and content; arbitrary extra fields never
// reach the upstream API. A client-supplied "system" role is dropped: the
// system slot is reserved for the composed prompt.
func SanitizeMessages(raw json.RawMessage) []models.ChatMessage {
	var entries []json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return []models.ChatMessage{}
	}

	cleaned := make([]models.ChatMessage, 0, len(entries))
	for _, entry := range entries {
		var m map[string]interface{}
		if err := json.Unmarshal(entry, &m); err != nil {
			continue
		}
		role, ok := m["role"].(string)
		if !ok || (role != models.RoleUser && role != models.RoleAssistant) {
			continue
		}
		content, ok := m["content"].(string)
		if !ok {
			continue
		}
		cleaned = append(cleaned, models.ChatMessage{Role: role, Content: content})
	}
	return cleaned
}

// hasMessages reports whether raw parses to a non-empty JSON array.
func hasMessages(raw json.RawMessage) bool {
	var entries []json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return false
	}
	return len(entries) > 0
}
