package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func validBanner() Banner {
	return Banner{
		Name:       "Test",
		URL:        "https://example.com",
		Weight:     5,
		InRotation: true,
	}
}

func TestBannerValidate(t *testing.T) {
	b := validBanner()
	require.NoError(t, b.Validate())

	b = validBanner()
	b.Weight = 0
	require.Error(t, b.Validate())

	b = validBanner()
	b.Weight = 11
	require.Error(t, b.Validate())

	b = validBanner()
	b.MaxViews = -1
	require.Error(t, b.Validate())

	b = validBanner()
	b.MaxClicks = -5
	require.Error(t, b.Validate())

	b = validBanner()
	b.URL = ""
	require.Error(t, b.Validate())

	b = validBanner()
	start := time.Date(2026, time.March, 2, 0, 0, 0, 0, time.UTC)
	finish := start.Add(-time.Hour)
	b.StartAt = &start
	b.FinishAt = &finish
	require.Error(t, b.Validate())
}

func TestBannerActiveAt(t *testing.T) {
	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)
	before := now.Add(-time.Hour)
	after := now.Add(time.Hour)

	b := validBanner()
	require.True(t, b.ActiveAt(now), "open window on both sides")

	b.StartAt = &after
	require.False(t, b.ActiveAt(now), "not yet started")

	b.StartAt = &before
	require.True(t, b.ActiveAt(now))

	b.FinishAt = &before
	require.False(t, b.ActiveAt(now), "already finished")

	b.FinishAt = &after
	require.True(t, b.ActiveAt(now))

	// the finish instant itself is outside the window
	b.FinishAt = &now
	require.False(t, b.ActiveAt(now))
}
