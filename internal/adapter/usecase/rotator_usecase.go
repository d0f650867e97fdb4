package usecase

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"banner-rotator/internal/core/domain"
	"banner-rotator/internal/core/port"
)

// RotatorService implements port.RotatorUseCase. It composes eligibility,
// weighted selection and the counter machinery on top of the repository.
// The service holds no mutable state of its own; all races are resolved
// by the store's atomic operations, so methods may run fully in parallel.
type RotatorService struct {
	repo port.RotatorRepository

	// draw returns a uniform value in [0, n). The default is the
	// goroutine-safe top-level source from math/rand; tests inject a
	// deterministic function.
	draw func(n int64) int64

	// now is the clock used for eligibility checks, click timestamps and
	// campaign schedule defaults.
	now func() time.Time
}

// NewRotatorService creates a service with the provided repository.
func NewRotatorService(repo port.RotatorRepository) *RotatorService {
	return &RotatorService{
		repo: repo,
		draw: rand.Int63n,
		now:  time.Now,
	}
}

// PickBanner selects a banner for the place and records the impression.
// It returns nil when no banner is eligible; callers treat that as "no ad
// to show", not as a failure.
func (s *RotatorService) PickBanner(ctx context.Context, placeID int64) (*port.BannerPick, error) {
	place, err := s.repo.GetPlace(ctx, placeID)
	if err != nil {
		return nil, fmt.Errorf("get place: %w", err)
	}
	if place == nil {
		return nil, fmt.Errorf("place %d: %w", placeID, port.ErrNotFound)
	}

	candidates, err := s.repo.EligibleBanners(ctx, placeID, s.now())
	if err != nil {
		return nil, fmt.Errorf("eligible banners: %w", err)
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	bannerID, err := pickWeighted(candidates, s.draw)
	if err != nil {
		return nil, err
	}

	banner, err := s.repo.GetBanner(ctx, bannerID)
	if err != nil {
		return nil, fmt.Errorf("get banner: %w", err)
	}
	if banner == nil {
		return nil, fmt.Errorf("banner %d: %w", bannerID, port.ErrNotFound)
	}

	if err := s.RecordView(ctx, bannerID); err != nil {
		return nil, err
	}

	return &port.BannerPick{
		BannerID: banner.ID,
		URL:      banner.URL,
		AssetRef: banner.AssetRef,
		Alt:      banner.Alt,
	}, nil
}

// RecordView counts one served impression. Each call is one increment;
// calls are never deduplicated and never rejected for an exhausted quota,
// since the impression has already been served. The store flips the
// rotation flag in the same atomic update when the quota is crossed, so
// any overshoot is bounded by the requests already past eligibility.
func (s *RotatorService) RecordView(ctx context.Context, bannerID int64) error {
	if err := s.repo.AddView(ctx, bannerID); err != nil {
		return fmt.Errorf("add view: %w", err)
	}
	return nil
}

// Click records a click with its provenance. The quota is checked against
// the live count of click records: when a non-zero max_clicks is already
// met, the banner leaves rotation but this click is still stored, since
// the deactivation exists to prevent future impressions, not this one.
func (s *RotatorService) Click(ctx context.Context, bannerID int64, in port.ClickInput) (*port.ClickResult, error) {
	banner, err := s.repo.GetBanner(ctx, bannerID)
	if err != nil {
		return nil, fmt.Errorf("get banner: %w", err)
	}
	if banner == nil {
		return nil, fmt.Errorf("banner %d: %w", bannerID, port.ErrNotFound)
	}

	count, err := s.repo.ClickCount(ctx, bannerID)
	if err != nil {
		return nil, fmt.Errorf("click count: %w", err)
	}
	stopRotation := banner.MaxClicks > 0 && count >= banner.MaxClicks

	click := &domain.Click{
		ID:        uuid.New(),
		BannerID:  bannerID,
		UserID:    in.UserID,
		IP:        in.IP,
		UserAgent: in.UserAgent,
		Referrer:  in.Referrer,
		CreatedAt: s.now().UTC(),
	}
	if err := s.repo.CreateClick(ctx, click, stopRotation); err != nil {
		return nil, fmt.Errorf("create click: %w", err)
	}

	return &port.ClickResult{Click: click, TargetURL: banner.URL}, nil
}

// StartCampaign activates the campaign and cascades its window to every
// owned banner. An omitted start falls back to the campaign's stored
// start, then to the current time; an omitted finish falls back to the
// stored finish and may stay open-ended.
func (s *RotatorService) StartCampaign(ctx context.Context, campaignID int64, startAt, finishAt *time.Time) error {
	campaign, err := s.repo.GetCampaign(ctx, campaignID)
	if err != nil {
		return fmt.Errorf("get campaign: %w", err)
	}
	if campaign == nil {
		return fmt.Errorf("campaign %d: %w", campaignID, port.ErrNotFound)
	}

	start := s.now().UTC()
	switch {
	case startAt != nil:
		start = *startAt
	case campaign.StartAt != nil:
		start = *campaign.StartAt
	}

	finish := finishAt
	if finish == nil {
		finish = campaign.FinishAt
	}
	if finish != nil && !finish.After(start) {
		return fmt.Errorf("finish %s is not after start %s: %w", finish, start, port.ErrInvalidArgument)
	}

	if err := s.repo.StartCampaign(ctx, campaignID, start, finish); err != nil {
		return fmt.Errorf("start campaign: %w", err)
	}
	return nil
}

// FinishCampaign closes the campaign at the current time and takes all
// owned banners out of rotation. Banner windows are left untouched.
func (s *RotatorService) FinishCampaign(ctx context.Context, campaignID int64) error {
	campaign, err := s.repo.GetCampaign(ctx, campaignID)
	if err != nil {
		return fmt.Errorf("get campaign: %w", err)
	}
	if campaign == nil {
		return fmt.Errorf("campaign %d: %w", campaignID, port.ErrNotFound)
	}

	if err := s.repo.FinishCampaign(ctx, campaignID, s.now().UTC()); err != nil {
		return fmt.Errorf("finish campaign: %w", err)
	}
	return nil
}

// UpdateCampaignSchedule applies a direct window edit. The repository
// re-propagates the window to owned banners only when the campaign is
// started, and never touches rotation flags on this path.
func (s *RotatorService) UpdateCampaignSchedule(ctx context.Context, campaignID int64, startAt, finishAt *time.Time) error {
	campaign, err := s.repo.GetCampaign(ctx, campaignID)
	if err != nil {
		return fmt.Errorf("get campaign: %w", err)
	}
	if campaign == nil {
		return fmt.Errorf("campaign %d: %w", campaignID, port.ErrNotFound)
	}

	if startAt != nil && finishAt != nil && !finishAt.After(*startAt) {
		return fmt.Errorf("finish %s is not after start %s: %w", finishAt, startAt, port.ErrInvalidArgument)
	}

	if err := s.repo.UpdateCampaignWindow(ctx, campaignID, startAt, finishAt); err != nil {
		return fmt.Errorf("update campaign window: %w", err)
	}
	return nil
}

// BannerStats reports the banner's counters against its quotas. Views
// come from the cached counter, clicks from the live record count.
func (s *RotatorService) BannerStats(ctx context.Context, bannerID int64) (*port.BannerStats, error) {
	banner, err := s.repo.GetBanner(ctx, bannerID)
	if err != nil {
		return nil, fmt.Errorf("get banner: %w", err)
	}
	if banner == nil {
		return nil, fmt.Errorf("banner %d: %w", bannerID, port.ErrNotFound)
	}

	clicks, err := s.repo.ClickCount(ctx, bannerID)
	if err != nil {
		return nil, fmt.Errorf("click count: %w", err)
	}

	return &port.BannerStats{
		BannerID:   banner.ID,
		Views:      banner.Views,
		MaxViews:   banner.MaxViews,
		Clicks:     clicks,
		MaxClicks:  banner.MaxClicks,
		InRotation: banner.InRotation,
	}, nil
}
