package port

import (
	"context"
	"errors"
	"time"

	"banner-rotator/internal/core/domain"
)

var (
	// ErrNotFound is returned when a place, banner or campaign identifier
	// does not resolve to a stored record.
	ErrNotFound = errors.New("not found")
	// ErrInvalidArgument is returned when a caller supplies a value
	// outside its valid domain, e.g. a weight beyond [1,10].
	ErrInvalidArgument = errors.New("invalid argument")
)

// Candidate is one eligible banner together with its selection weight.
// The repository returns candidates ordered by ascending banner id so
// that the weighted draw is reproducible.
type Candidate struct {
	BannerID int64
	Weight   int32
}

// RotatorRepository is the outbound port to the entity store. Lookup
// methods return (nil, nil) for unknown identifiers; mutation methods
// return ErrNotFound. Implementations must perform the view increment as
// a store-level atomic operation and the campaign cascades as a single
// transaction, and must surface storage failures untouched rather than
// retrying through a non-atomic path.
type RotatorRepository interface {
	// GetPlace returns a place by id.
	GetPlace(ctx context.Context, id int64) (*domain.Place, error)
	// GetBanner returns a banner by id.
	GetBanner(ctx context.Context, id int64) (*domain.Banner, error)
	// GetCampaign returns a campaign by id.
	GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error)

	// EligibleBanners returns the banners associated with the place that
	// are in rotation, whose window contains now, and whose view and
	// click quotas are not exhausted. An empty slice is a normal result.
	EligibleBanners(ctx context.Context, placeID int64, now time.Time) ([]Candidate, error)

	// AddView increments the banner's view counter by one atomically and
	// takes the banner out of rotation in the same update when the
	// increment reaches a non-zero max_views.
	AddView(ctx context.Context, bannerID int64) error

	// ClickCount returns the number of click records for the banner.
	ClickCount(ctx context.Context, bannerID int64) (int64, error)

	// CreateClick stores the click record, additionally clearing the
	// banner's rotation flag in the same transaction when stopRotation
	// is set.
	CreateClick(ctx context.Context, click *domain.Click, stopRotation bool) error

	// StartCampaign sets the campaign window and is_started, and pushes
	// the window plus in_rotation=true onto every owned banner, all in
	// one transaction.
	StartCampaign(ctx context.Context, campaignID int64, startAt time.Time, finishAt *time.Time) error

	// FinishCampaign closes the campaign at finishedAt and clears the
	// rotation flag on every owned banner, leaving the banners' window
	// fields untouched, all in one transaction.
	FinishCampaign(ctx context.Context, campaignID int64, finishedAt time.Time) error

	// UpdateCampaignWindow rewrites the campaign's window and, only when
	// the campaign is started, re-propagates the window to its banners
	// without touching their rotation flags. The is_started check and
	// the cascade happen in one transaction.
	UpdateCampaignWindow(ctx context.Context, campaignID int64, startAt, finishAt *time.Time) error
}
