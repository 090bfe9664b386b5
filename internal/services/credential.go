package services

import (
	"fmt"
	"strings"
)

// Credential is the upstream API key. The zero value means "not configured",
// which is a normal state, not an error; the diagnostics endpoint reports it.
type Credential string

func NewCredential(key string) Credential {
	return Credential(strings.TrimSpace(key))
}

func (c Credential) Present() bool { return c != "" }

// Mask returns a display form safe for logs and debug payloads: the first 7
// characters, an ellipsis, the last 4 characters and the true length,
// e.g. "sk-proj…abcd (len=51)". An empty credential masks to "(empty)".
func (c Credential) Mask() string {
	if c == "" {
		return "(empty)"
	}
	k := string(c)
	head := k
	if len(k) > 7 {
		head = k[:7]
	}
	tail := k
	if len(k) > 4 {
		tail = k[len(k)-4:]
	}
	return fmt.Sprintf("%s…%s (len=%d)", head, tail, len(k))
}
