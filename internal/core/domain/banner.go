package domain

import (
	"errors"
	"fmt"
	"time"
)

// Weight bounds. A weight-10 banner is selected ten times as often as a
// weight-1 banner competing in the same placement.
const (
	MinWeight = 1
	MaxWeight = 10
)

// Banner is a creative served into one or more places. CampaignID is nil
// for campaign-less banners that are scheduled individually. Views is
// mutated only through the store's atomic increment; the click count is
// not cached here and is always derived from Click records. MaxViews and
// MaxClicks of zero mean unlimited. InRotation gates eligibility
// independently of the activation window.
type Banner struct {
	ID         int64
	CampaignID *int64
	Name       string
	URL        string
	Alt        string
	AssetRef   string
	Weight     int32
	Views      int64
	MaxViews   int64
	MaxClicks  int64
	StartAt    *time.Time
	FinishAt   *time.Time
	InRotation bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Validate checks the editorial fields a record writer must respect. The
// engine itself assumes stored banners satisfy these bounds.
func (b *Banner) Validate() error {
	if b.Weight < MinWeight || b.Weight > MaxWeight {
		return fmt.Errorf("weight %d outside [%d,%d]", b.Weight, MinWeight, MaxWeight)
	}
	if b.MaxViews < 0 {
		return fmt.Errorf("max views %d is negative", b.MaxViews)
	}
	if b.MaxClicks < 0 {
		return fmt.Errorf("max clicks %d is negative", b.MaxClicks)
	}
	if b.URL == "" {
		return errors.New("target url is empty")
	}
	if b.StartAt != nil && b.FinishAt != nil && !b.FinishAt.After(*b.StartAt) {
		return fmt.Errorf("finish %s is not after start %s", b.FinishAt, b.StartAt)
	}
	return nil
}

// ActiveAt reports whether the banner's window contains now. A nil StartAt
// counts as already started, a nil FinishAt as never ending.
func (b *Banner) ActiveAt(now time.Time) bool {
	if b.StartAt != nil && now.Before(*b.StartAt) {
		return false
	}
	if b.FinishAt != nil && !now.Before(*b.FinishAt) {
		return false
	}
	return true
}
