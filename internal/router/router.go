package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"aimax-site/internal/handlers"
	"aimax-site/internal/middleware"
	"aimax-site/web"
)

func New(
	chatHandler *handlers.ChatHandler,
	leadHandler *handlers.LeadHandler,
	allowedOrigins []string,
	logger *zap.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(allowedOrigins))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/chat", chatHandler.Diagnostics)
		r.Post("/chat", chatHandler.Relay)
		r.Post("/lead", leadHandler.Submit)
	})

	// Everything else is the embedded marketing site.
	r.NotFound(web.SiteHandler().ServeHTTP)

	return r
}
