package httpadapter

import (
	"net"
	"net/http"

	"banner-rotator/internal/core/port"
)

// handleBannerClick records a click with its request provenance and
// redirects the requester to the banner's target URL. Unknown banners
// result in HTTP 404. The redirect happens even when the click quota is
// crossed; the quota only withdraws the banner from future rotation.
func (h *Handler) handleBannerClick(w http.ResponseWriter, r *http.Request) {
	bannerID, ok := h.idParam(w, r, "bannerID")
	if !ok {
		return
	}

	in := port.ClickInput{
		UserID:    optString(r.Header.Get("X-User-Id")),
		IP:        optString(clientIP(r)),
		UserAgent: optString(r.UserAgent()),
		Referrer:  optString(r.Referer()),
	}

	res, err := h.svc.Click(r.Context(), bannerID, in)
	if err != nil {
		h.respondError(w, err, "click")
		return
	}

	http.Redirect(w, r, res.TargetURL, http.StatusFound)
}

// clientIP extracts the requester address, stripping the port from
// RemoteAddr when present.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// optString returns nil for an empty string so absent provenance stays
// absent in storage.
func optString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
