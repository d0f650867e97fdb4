package port

import (
	"context"
	"time"

	"banner-rotator/internal/core/domain"
)

// RotatorUseCase is the inbound port of the rotation engine. It is what
// the request-serving and administrative front-ends program against.
type RotatorUseCase interface {
	// PickBanner selects one banner for the place with probability
	// proportional to weight among the currently eligible banners and
	// records the served impression. It returns nil when nothing is
	// eligible; that is a normal "no ad to show" outcome, not an error.
	PickBanner(ctx context.Context, placeID int64) (*BannerPick, error)

	// RecordView counts one served impression against the banner. It is
	// never rejected because a quota is already exceeded; by the time it
	// is called the impression has happened.
	RecordView(ctx context.Context, bannerID int64) error

	// Click records a click with its provenance and enforces the click
	// quota: when the existing click count already meets a non-zero
	// max_clicks the banner leaves rotation, but the click itself is
	// still recorded.
	Click(ctx context.Context, bannerID int64, in ClickInput) (*ClickResult, error)

	// StartCampaign activates the campaign window and cascades it to all
	// owned banners. A nil startAt falls back to the campaign's stored
	// start, then to the current time; a nil finishAt leaves the window
	// open-ended unless the campaign already has one.
	StartCampaign(ctx context.Context, campaignID int64, startAt, finishAt *time.Time) error

	// FinishCampaign closes the campaign now and withdraws all owned
	// banners from rotation, preserving their window fields.
	FinishCampaign(ctx context.Context, campaignID int64) error

	// UpdateCampaignSchedule applies a direct window edit. For a started
	// campaign the new window is re-propagated to the banners; rotation
	// flags are left alone either way.
	UpdateCampaignSchedule(ctx context.Context, campaignID int64, startAt, finishAt *time.Time) error

	// BannerStats reports the banner's counters against its quotas.
	BannerStats(ctx context.Context, bannerID int64) (*BannerStats, error)
}

// BannerPick is the DTO returned to the serving front-end for a selected
// banner. It carries everything needed to render and link the creative.
type BannerPick struct {
	BannerID int64  `json:"banner_id"`
	URL      string `json:"url"`
	AssetRef string `json:"asset_ref"`
	Alt      string `json:"alt"`
}

// ClickInput is the request provenance captured with a click. All fields
// are optional.
type ClickInput struct {
	UserID    *string
	IP        *string
	UserAgent *string
	Referrer  *string
}

// ClickResult pairs the stored click record with the banner's target URL
// so the HTTP layer can redirect without a second lookup.
type ClickResult struct {
	Click     *domain.Click
	TargetURL string
}

// BannerStats mirrors what the original admin screens show per banner: a
// cached view counter against max_views and a live click count against
// max_clicks.
type BannerStats struct {
	BannerID   int64 `json:"banner_id"`
	Views      int64 `json:"views"`
	MaxViews   int64 `json:"max_views"`
	Clicks     int64 `json:"clicks"`
	MaxClicks  int64 `json:"max_clicks"`
	InRotation bool  `json:"in_rotation"`
}
