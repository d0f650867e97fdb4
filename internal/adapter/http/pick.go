package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// handlePickBanner serves one banner into the requested place. On success
// it returns a JSON pick. When no banner is eligible it returns HTTP 204
// No Content; an unknown place is HTTP 404. Internal errors result in
// HTTP 500.
func (h *Handler) handlePickBanner(w http.ResponseWriter, r *http.Request) {
	placeID, ok := h.idParam(w, r, "placeID")
	if !ok {
		return
	}

	pick, err := h.svc.PickBanner(r.Context(), placeID)
	if err != nil {
		h.respondError(w, err, "pick banner")
		return
	}
	if pick == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err = json.NewEncoder(w).Encode(pick); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
