package db

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"banner-rotator/internal/core/domain"
)

// Seed inserts demo places, campaigns, banners and clicks. It writes SQL
// directly against the pool rather than going through the repository; the
// engine only ever reads and counts these rows.
func Seed(ctx context.Context, pool *pgxpool.Pool) error {
	places := []domain.Place{
		{Name: "Header", Slug: "header", Width: 728, Height: 90},
		{Name: "Sidebar", Slug: "sidebar", Width: 240, Height: 400},
		{Name: "Footer", Slug: "footer"},
	}
	placeIDs := make([]int64, 0, len(places))
	for _, p := range places {
		var id int64
		err := pool.QueryRow(ctx, `INSERT INTO places (name, slug, width, height)
VALUES ($1, $2, NULLIF($3, 0), NULLIF($4, 0))
ON CONFLICT (slug) DO UPDATE SET name = EXCLUDED.name
RETURNING id`, p.Name, p.Slug, p.Width, p.Height).Scan(&id)
		if err != nil {
			return fmt.Errorf("seed place %q: %w", p.Slug, err)
		}
		placeIDs = append(placeIDs, id)
	}

	var campaignID int64
	start := time.Now().AddDate(0, 0, -1)
	finish := time.Now().AddDate(0, 1, 0)
	err := pool.QueryRow(ctx, `INSERT INTO campaigns (name, start_at, finish_at, is_started)
VALUES ($1, $2, $3, true) RETURNING id`, "Spring promo", start, finish).Scan(&campaignID)
	if err != nil {
		return fmt.Errorf("seed campaign: %w", err)
	}

	for i := 1; i <= 6; i++ {
		banner := domain.Banner{
			Name:       fmt.Sprintf("Banner %d", i),
			URL:        fmt.Sprintf("https://example.com/landing/%d", i),
			Alt:        fmt.Sprintf("Banner %d", i),
			AssetRef:   fmt.Sprintf("banner/%d.png", i),
			Weight:     int32(rand.Intn(domain.MaxWeight) + 1),
			MaxViews:   int64(rand.Intn(2) * 10000),
			MaxClicks:  int64(rand.Intn(2) * 100),
			InRotation: true,
		}
		// Half the banners run under the campaign and inherit its window.
		if i%2 == 0 {
			banner.CampaignID = &campaignID
			banner.StartAt = &start
			banner.FinishAt = &finish
		}
		if err := banner.Validate(); err != nil {
			return fmt.Errorf("seed banner %d: %w", i, err)
		}

		var bannerID int64
		err = pool.QueryRow(ctx, `INSERT INTO banners
(campaign_id, name, url, alt, asset_ref, weight, max_views, max_clicks, start_at, finish_at, in_rotation)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11) RETURNING id`,
			banner.CampaignID, banner.Name, banner.URL, banner.Alt, banner.AssetRef,
			banner.Weight, banner.MaxViews, banner.MaxClicks, banner.StartAt, banner.FinishAt, banner.InRotation).Scan(&bannerID)
		if err != nil {
			return fmt.Errorf("seed banner %d: %w", i, err)
		}

		placeID := placeIDs[rand.Intn(len(placeIDs))]
		_, err = pool.Exec(ctx, `INSERT INTO banner_places (banner_id, place_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			bannerID, placeID)
		if err != nil {
			return fmt.Errorf("seed banner place: %w", err)
		}

		for j := 0; j < rand.Intn(5); j++ {
			userID := fmt.Sprintf("user-%d", rand.Intn(100)+1)
			ip := fmt.Sprintf("192.0.2.%d", rand.Intn(255))
			ua := "Mozilla/5.0 (seed)"
			_, err = pool.Exec(ctx, `INSERT INTO clicks (id, banner_id, user_id, ip, user_agent, created_at)
VALUES ($1,$2,$3,$4,$5,now())`, uuid.New(), bannerID, userID, ip, ua)
			if err != nil {
				return fmt.Errorf("seed click: %w", err)
			}
		}
	}
	return nil
}
