package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// handleBannerStats returns the banner's counters against its quotas as
// JSON: the cached view counter and the live click count. Unknown banners
// result in HTTP 404.
func (h *Handler) handleBannerStats(w http.ResponseWriter, r *http.Request) {
	bannerID, ok := h.idParam(w, r, "bannerID")
	if !ok {
		return
	}

	stats, err := h.svc.BannerStats(r.Context(), bannerID)
	if err != nil {
		h.respondError(w, err, "banner stats")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err = json.NewEncoder(w).Encode(stats); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
