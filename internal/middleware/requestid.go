package middleware

import (
	"net/http"

	"github.com/google/uuid"
)

// RequestID tags each request with an X-Request-ID header, generating one when
// the client did not send its own. The ID is echoed on the response so failed
// calls can be correlated with server logs.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
			r.Header.Set("X-Request-ID", id)
		}
		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r)
	})
}
