package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"leadflow/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP. It holds the campaign usecase to execute business logic, a logger
// for structured logging and the JWT secret used to verify session tokens.
// Routes are registered on a chi.Router for convenient method handling.
type Handler struct {
	svc       port.CampaignUseCase
	logger    *slog.Logger
	jwtSecret []byte
	router    chi.Router
}

// NewHandler creates a handler with all routes configured. Every route
// requires a valid session token; the authenticate middleware rejects the
// rest with 401 before any handler runs.
func NewHandler(svc port.CampaignUseCase, logger *slog.Logger, jwtSecret string) *Handler {
	h := &Handler{svc: svc, logger: logger, jwtSecret: []byte(jwtSecret)}
	r := chi.NewRouter()

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(h.authenticate)

		r.Post("/campaigns/launch", h.handleLaunch)
		r.Get("/campaigns", h.handleListCampaigns)
		r.Get("/campaigns/{id}", h.handleGetCampaign)
		r.Delete("/campaigns/{id}", h.handleDeleteCampaign)
		r.Get("/campaigns/{id}/leads", h.handleCampaignLeads)

		r.Get("/credits/today", h.handleCreditsToday)
		r.Get("/accounts", h.handleMailAccounts)

		r.Get("/schedule", h.handleGetSchedule)
		r.Put("/schedule", h.handlePutSchedule)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
