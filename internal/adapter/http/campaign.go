package httpadapter

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"
)

// scheduleRequest carries an optional activation window. Both fields are
// RFC3339 timestamps and may be omitted.
type scheduleRequest struct {
	StartAt  *time.Time `json:"start_at"`
	FinishAt *time.Time `json:"finish_at"`
}

// handleCampaignStart starts a campaign, cascading the window to all its
// banners. The body is an optional JSON window; an empty body starts the
// campaign with its stored or current-time window. Responds 204 on
// success.
func (h *Handler) handleCampaignStart(w http.ResponseWriter, r *http.Request) {
	campaignID, ok := h.idParam(w, r, "campaignID")
	if !ok {
		return
	}

	var req scheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	if err := h.svc.StartCampaign(r.Context(), campaignID, req.StartAt, req.FinishAt); err != nil {
		h.respondError(w, err, "start campaign")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleCampaignFinish finishes a campaign now, withdrawing its banners
// from rotation. Responds 204 on success.
func (h *Handler) handleCampaignFinish(w http.ResponseWriter, r *http.Request) {
	campaignID, ok := h.idParam(w, r, "campaignID")
	if !ok {
		return
	}

	if err := h.svc.FinishCampaign(r.Context(), campaignID); err != nil {
		h.respondError(w, err, "finish campaign")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleCampaignSchedule applies a direct edit of a campaign's window.
// For a started campaign the window is re-propagated to its banners.
// Responds 204 on success.
func (h *Handler) handleCampaignSchedule(w http.ResponseWriter, r *http.Request) {
	campaignID, ok := h.idParam(w, r, "campaignID")
	if !ok {
		return
	}

	var req scheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	if err := h.svc.UpdateCampaignSchedule(r.Context(), campaignID, req.StartAt, req.FinishAt); err != nil {
		h.respondError(w, err, "update campaign schedule")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
