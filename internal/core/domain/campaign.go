package domain

import "time"

// Campaign groups banners under a shared activation window. StartAt and
// FinishAt are nil while the window is open-ended on that side. IsStarted
// records whether the campaign's window has been pushed down to its
// banners; while it is true, every owned banner carries the campaign's
// window verbatim.
type Campaign struct {
	ID        int64
	Name      string
	StartAt   *time.Time
	FinishAt  *time.Time
	IsStarted bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
