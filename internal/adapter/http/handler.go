package httpadapter

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"banner-rotator/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP. It holds the rotator usecase to execute business logic and a
// logger for structured logging. Routes are registered on a chi.Router.
type Handler struct {
	svc    port.RotatorUseCase
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured.
func NewHandler(svc port.RotatorUseCase, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, logger: logger}
	r := chi.NewRouter()

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/places/{placeID}/banner", h.handlePickBanner)
		r.Get("/banners/{bannerID}/click", h.handleBannerClick)
		r.Get("/banners/{bannerID}/stats", h.handleBannerStats)
		r.Post("/campaigns/{campaignID}/start", h.handleCampaignStart)
		r.Post("/campaigns/{campaignID}/finish", h.handleCampaignFinish)
		r.Patch("/campaigns/{campaignID}/schedule", h.handleCampaignSchedule)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

// idParam parses the named URL parameter as an int64 id. It writes a 400
// response and returns false when the parameter is not a valid id.
func (h *Handler) idParam(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		http.Error(w, "invalid "+name, http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

// respondError maps core errors to HTTP statuses: ErrNotFound to 404,
// ErrInvalidArgument to 400, anything else is logged and reported as 500.
func (h *Handler) respondError(w http.ResponseWriter, err error, op string) {
	switch {
	case errors.Is(err, port.ErrNotFound):
		http.Error(w, "not found", http.StatusNotFound)
	case errors.Is(err, port.ErrInvalidArgument):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		h.logger.Error(op+" error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
