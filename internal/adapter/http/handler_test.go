package httpadapter

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"banner-rotator/internal/adapter/usecase"
	"banner-rotator/internal/core/domain"
	"banner-rotator/internal/core/port"
	"banner-rotator/internal/core/port/mocks"
)

func newTestHandler(t *testing.T) (*Handler, *mocks.MockRotatorRepository) {
	repo := mocks.NewMockRotatorRepository(t)
	svc := usecase.NewRotatorService(repo)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewHandler(svc, logger), repo
}

func TestPickBannerEndpoint(t *testing.T) {
	h, repo := newTestHandler(t)

	repo.EXPECT().
		GetPlace(mock.Anything, int64(5)).
		Return(&domain.Place{ID: 5, Slug: "header"}, nil)
	repo.EXPECT().
		EligibleBanners(mock.Anything, int64(5), mock.AnythingOfType("time.Time")).
		Return([]port.Candidate{{BannerID: 3, Weight: 4}}, nil)
	repo.EXPECT().
		GetBanner(mock.Anything, int64(3)).
		Return(&domain.Banner{ID: 3, URL: "https://example.com/3", AssetRef: "banner/3.png"}, nil)
	repo.EXPECT().
		AddView(mock.Anything, int64(3)).
		Return(nil)

	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/places/5/banner", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var pick port.BannerPick
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &pick))
	require.Equal(t, int64(3), pick.BannerID)
	require.Equal(t, "https://example.com/3", pick.URL)
}

func TestPickBannerEndpointNoContent(t *testing.T) {
	h, repo := newTestHandler(t)

	repo.EXPECT().
		GetPlace(mock.Anything, int64(5)).
		Return(&domain.Place{ID: 5}, nil)
	repo.EXPECT().
		EligibleBanners(mock.Anything, int64(5), mock.AnythingOfType("time.Time")).
		Return(nil, nil)

	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/places/5/banner", nil))

	require.Equal(t, http.StatusNoContent, rec.Code)
}

func TestPickBannerEndpointUnknownPlace(t *testing.T) {
	h, repo := newTestHandler(t)

	repo.EXPECT().
		GetPlace(mock.Anything, int64(99)).
		Return(nil, nil)

	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/places/99/banner", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPickBannerEndpointBadID(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/places/abc/banner", nil))

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBannerClickRedirect(t *testing.T) {
	h, repo := newTestHandler(t)

	repo.EXPECT().
		GetBanner(mock.Anything, int64(3)).
		Return(&domain.Banner{ID: 3, URL: "https://example.com/3", MaxClicks: 0}, nil)
	repo.EXPECT().
		ClickCount(mock.Anything, int64(3)).
		Return(int64(0), nil)

	var stored *domain.Click
	repo.EXPECT().
		CreateClick(mock.Anything, mock.AnythingOfType("*domain.Click"), false).
		Run(func(ctx context.Context, click *domain.Click, stopRotation bool) {
			stored = click
		}).
		Return(nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/banners/3/click", nil)
	req.RemoteAddr = "198.51.100.7:4321"
	req.Header.Set("User-Agent", "test-agent")
	req.Header.Set("Referer", "https://referrer.example.com")
	req.Header.Set("X-User-Id", "user-42")

	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusFound, rec.Code)
	require.Equal(t, "https://example.com/3", rec.Header().Get("Location"))

	require.NotNil(t, stored)
	require.Equal(t, int64(3), stored.BannerID)
	require.Equal(t, "198.51.100.7", *stored.IP)
	require.Equal(t, "test-agent", *stored.UserAgent)
	require.Equal(t, "https://referrer.example.com", *stored.Referrer)
	require.Equal(t, "user-42", *stored.UserID)
}

func TestBannerClickAnonymous(t *testing.T) {
	h, repo := newTestHandler(t)

	repo.EXPECT().
		GetBanner(mock.Anything, int64(3)).
		Return(&domain.Banner{ID: 3, URL: "https://example.com/3"}, nil)
	repo.EXPECT().
		ClickCount(mock.Anything, int64(3)).
		Return(int64(0), nil)

	var stored *domain.Click
	repo.EXPECT().
		CreateClick(mock.Anything, mock.AnythingOfType("*domain.Click"), false).
		Run(func(ctx context.Context, click *domain.Click, stopRotation bool) {
			stored = click
		}).
		Return(nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/banners/3/click", nil)
	req.Header.Del("User-Agent")

	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusFound, rec.Code)
	require.NotNil(t, stored)
	require.Nil(t, stored.UserID)
	require.Nil(t, stored.Referrer)
}

func TestCampaignStartEndpoint(t *testing.T) {
	h, repo := newTestHandler(t)

	start := time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC)
	finish := time.Date(2026, time.May, 1, 0, 0, 0, 0, time.UTC)

	repo.EXPECT().
		GetCampaign(mock.Anything, int64(2)).
		Return(&domain.Campaign{ID: 2}, nil)
	repo.EXPECT().
		StartCampaign(mock.Anything, int64(2), start, &finish).
		Return(nil)

	body := strings.NewReader(`{"start_at":"2026-04-01T00:00:00Z","finish_at":"2026-05-01T00:00:00Z"}`)
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/campaigns/2/start", body))

	require.Equal(t, http.StatusNoContent, rec.Code)
}

func TestCampaignFinishEndpoint(t *testing.T) {
	h, repo := newTestHandler(t)

	repo.EXPECT().
		GetCampaign(mock.Anything, int64(2)).
		Return(&domain.Campaign{ID: 2, IsStarted: true}, nil)
	repo.EXPECT().
		FinishCampaign(mock.Anything, int64(2), mock.AnythingOfType("time.Time")).
		Return(nil)

	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/campaigns/2/finish", nil))

	require.Equal(t, http.StatusNoContent, rec.Code)
}

func TestCampaignScheduleEndpoint(t *testing.T) {
	h, repo := newTestHandler(t)

	start := time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC)

	repo.EXPECT().
		GetCampaign(mock.Anything, int64(2)).
		Return(&domain.Campaign{ID: 2, IsStarted: true}, nil)
	repo.EXPECT().
		UpdateCampaignWindow(mock.Anything, int64(2), &start, (*time.Time)(nil)).
		Return(nil)

	body := strings.NewReader(`{"start_at":"2026-04-01T00:00:00Z"}`)
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/api/v1/campaigns/2/schedule", body))

	require.Equal(t, http.StatusNoContent, rec.Code)
}

func TestCampaignNotFound(t *testing.T) {
	h, repo := newTestHandler(t)

	repo.EXPECT().
		GetCampaign(mock.Anything, int64(77)).
		Return(nil, nil)

	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/campaigns/77/finish", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestBannerStatsEndpoint(t *testing.T) {
	h, repo := newTestHandler(t)

	repo.EXPECT().
		GetBanner(mock.Anything, int64(3)).
		Return(&domain.Banner{ID: 3, Views: 42, MaxViews: 100, MaxClicks: 5, InRotation: true}, nil)
	repo.EXPECT().
		ClickCount(mock.Anything, int64(3)).
		Return(int64(2), nil)

	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/banners/3/stats", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var stats port.BannerStats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	require.Equal(t, int64(42), stats.Views)
	require.Equal(t, int64(2), stats.Clicks)
	require.True(t, stats.InRotation)
}
