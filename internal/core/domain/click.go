package domain

import (
	"time"

	"github.com/google/uuid"
)

// Click is the audit record of one click event. Provenance fields are
// stored exactly as supplied and stay nil when absent (anonymous
// requester, missing headers). Clicks are append-only; the per-banner
// click quota is enforced against the live count of these records.
type Click struct {
	ID        uuid.UUID
	BannerID  int64
	UserID    *string
	IP        *string
	UserAgent *string
	Referrer  *string
	CreatedAt time.Time
}
