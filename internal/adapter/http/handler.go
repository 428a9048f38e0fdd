package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"log/slog"

	"fundraise/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP. It holds the usecase to execute business logic, a token verifier
// resolving caller identity, the observer feed endpoint and a logger for
// structured logging. Routes are registered on a chi.Router.
type Handler struct {
	svc      port.CampaignUseCase
	verifier *TokenVerifier
	feed     http.Handler
	logger   *slog.Logger
	router   chi.Router
}

// NewHandler creates a handler with all routes configured. Reads are
// public; mutations require an authenticated caller. The feed handler
// serves the WebSocket notification stream and may be nil when no feed is
// exposed.
func NewHandler(svc port.CampaignUseCase, verifier *TokenVerifier, feed http.Handler, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, verifier: verifier, feed: feed, logger: logger}
	r := chi.NewRouter()

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.Route("/api/v1", func(r chi.Router) {
		if h.feed != nil {
			r.Get("/events", h.feed.ServeHTTP)
		}
		r.Get("/campaigns", h.handleListCampaigns)
		r.Get("/campaigns/{id}", h.handleGetCampaign)
		r.Get("/campaigns/{id}/donations", h.handleDonationHistory)

		r.Group(func(r chi.Router) {
			r.Use(h.verifier.Middleware)
			r.Post("/campaigns", h.handleCreateCampaign)
			r.Post("/campaigns/{id}/donations", h.handleDonate)
			r.Post("/campaigns/{id}/withdraw", h.handleWithdraw)
		})
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
