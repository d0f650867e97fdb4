package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"banner-rotator/internal/core/domain"
	"banner-rotator/internal/core/port"
)

// RotatorRepository implements port.RotatorRepository using pgxpool for
// PostgreSQL. Counter updates are pushed into single UPDATE statements so
// they stay atomic under concurrent callers; campaign cascades run inside
// one transaction.
type RotatorRepository struct {
	pool *pgxpool.Pool
}

// NewRotatorRepository returns a new repository instance.
func NewRotatorRepository(pool *pgxpool.Pool) *RotatorRepository {
	return &RotatorRepository{pool: pool}
}

// GetPlace returns a place by id, or (nil, nil) when it does not exist.
func (r *RotatorRepository) GetPlace(ctx context.Context, id int64) (*domain.Place, error) {
	var p domain.Place
	err := r.pool.QueryRow(ctx, `SELECT id, name, slug, COALESCE(width, 0), COALESCE(height, 0) FROM places WHERE id = $1`, id).
		Scan(&p.ID, &p.Name, &p.Slug, &p.Width, &p.Height)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// GetBanner returns a banner by id, or (nil, nil) when it does not exist.
func (r *RotatorRepository) GetBanner(ctx context.Context, id int64) (*domain.Banner, error) {
	var b domain.Banner
	err := r.pool.QueryRow(ctx, `SELECT id, campaign_id, name, url, alt, asset_ref, weight, views, max_views, max_clicks, start_at, finish_at, in_rotation, created_at, updated_at FROM banners WHERE id = $1`, id).
		Scan(&b.ID, &b.CampaignID, &b.Name, &b.URL, &b.Alt, &b.AssetRef, &b.Weight, &b.Views, &b.MaxViews, &b.MaxClicks, &b.StartAt, &b.FinishAt, &b.InRotation, &b.CreatedAt, &b.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// GetCampaign returns a campaign by id, or (nil, nil) when it does not exist.
func (r *RotatorRepository) GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error) {
	var c domain.Campaign
	err := r.pool.QueryRow(ctx, `SELECT id, name, start_at, finish_at, is_started, created_at, updated_at FROM campaigns WHERE id = $1`, id).
		Scan(&c.ID, &c.Name, &c.StartAt, &c.FinishAt, &c.IsStarted, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// EligibleBanners returns the candidates for a place at the given instant.
// The view quota reads the cached counter; the click quota counts the
// click records, which keeps it consistent with the audit trail. Results
// are ordered by banner id so the weighted draw is reproducible.
func (r *RotatorRepository) EligibleBanners(ctx context.Context, placeID int64, now time.Time) ([]port.Candidate, error) {
	query := `
        SELECT b.id, b.weight
        FROM banners b
        JOIN banner_places bp ON bp.banner_id = b.id
        WHERE bp.place_id = $1
          AND b.in_rotation
          AND (b.start_at IS NULL OR b.start_at <= $2)
          AND (b.finish_at IS NULL OR b.finish_at > $2)
          AND (b.max_views = 0 OR b.views < b.max_views)
          AND (b.max_clicks = 0 OR b.max_clicks > (SELECT count(*) FROM clicks c WHERE c.banner_id = b.id))
        ORDER BY b.id`
	rows, err := r.pool.Query(ctx, query, placeID, now)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (port.Candidate, error) {
		var c port.Candidate
		err := row.Scan(&c.BannerID, &c.Weight)
		return c, err
	})
}

// AddView increments the view counter and flips the rotation flag in the
// same statement when the increment reaches a non-zero max_views. The
// whole update is one atomic store operation; there is no read before the
// write, so concurrent calls never lose increments.
func (r *RotatorRepository) AddView(ctx context.Context, bannerID int64) error {
	tag, err := r.pool.Exec(ctx, `
        UPDATE banners
        SET views = views + 1,
            in_rotation = CASE
                WHEN max_views > 0 AND views + 1 >= max_views THEN false
                ELSE in_rotation
            END,
            updated_at = now()
        WHERE id = $1`, bannerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("banner %d: %w", bannerID, port.ErrNotFound)
	}
	return nil
}

// ClickCount returns the number of click records for the banner.
func (r *RotatorRepository) ClickCount(ctx context.Context, bannerID int64) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM clicks WHERE banner_id = $1`, bannerID).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// CreateClick inserts the click record, clearing the banner's rotation
// flag first in the same transaction when stopRotation is set.
func (r *RotatorRepository) CreateClick(ctx context.Context, click *domain.Click, stopRotation bool) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			_ = tx.Commit(ctx)
		}
	}()
	if stopRotation {
		var tag pgconn.CommandTag
		tag, err = tx.Exec(ctx, `UPDATE banners SET in_rotation = false, updated_at = now() WHERE id = $1`, click.BannerID)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			err = fmt.Errorf("banner %d: %w", click.BannerID, port.ErrNotFound)
			return err
		}
	}
	_, err = tx.Exec(ctx, `INSERT INTO clicks (id, banner_id, user_id, ip, user_agent, referrer, created_at) VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		click.ID, click.BannerID, click.UserID, click.IP, click.UserAgent, click.Referrer, click.CreatedAt)
	return err
}

// StartCampaign writes the campaign window and pushes it onto every owned
// banner together with in_rotation = true. Both updates commit together
// or not at all, so concurrent eligibility reads never observe a half
// applied cascade.
func (r *RotatorRepository) StartCampaign(ctx context.Context, campaignID int64, startAt time.Time, finishAt *time.Time) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			_ = tx.Commit(ctx)
		}
	}()
	var tag pgconn.CommandTag
	tag, err = tx.Exec(ctx, `UPDATE campaigns SET start_at = $2, finish_at = $3, is_started = true, updated_at = now() WHERE id = $1`,
		campaignID, startAt, finishAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		err = fmt.Errorf("campaign %d: %w", campaignID, port.ErrNotFound)
		return err
	}
	_, err = tx.Exec(ctx, `UPDATE banners SET start_at = $2, finish_at = $3, in_rotation = true, updated_at = now() WHERE campaign_id = $1`,
		campaignID, startAt, finishAt)
	return err
}

// FinishCampaign closes the campaign and withdraws its banners from
// rotation. Banner window fields are deliberately left as a record of
// when they last ran.
func (r *RotatorRepository) FinishCampaign(ctx context.Context, campaignID int64, finishedAt time.Time) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			_ = tx.Commit(ctx)
		}
	}()
	var tag pgconn.CommandTag
	tag, err = tx.Exec(ctx, `UPDATE campaigns SET finish_at = $2, is_started = false, updated_at = now() WHERE id = $1`,
		campaignID, finishedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		err = fmt.Errorf("campaign %d: %w", campaignID, port.ErrNotFound)
		return err
	}
	_, err = tx.Exec(ctx, `UPDATE banners SET in_rotation = false, updated_at = now() WHERE campaign_id = $1`, campaignID)
	return err
}

// UpdateCampaignWindow rewrites the campaign window from a direct edit.
// The campaign row is locked so the is_started check and the banner
// cascade see the same state; rotation flags are not touched.
func (r *RotatorRepository) UpdateCampaignWindow(ctx context.Context, campaignID int64, startAt, finishAt *time.Time) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			_ = tx.Commit(ctx)
		}
	}()
	var isStarted bool
	err = tx.QueryRow(ctx, `SELECT is_started FROM campaigns WHERE id = $1 FOR UPDATE`, campaignID).Scan(&isStarted)
	if errors.Is(err, pgx.ErrNoRows) {
		err = fmt.Errorf("campaign %d: %w", campaignID, port.ErrNotFound)
		return err
	}
	if err != nil {
		return err
	}
	_, err = tx.Exec(ctx, `UPDATE campaigns SET start_at = $2, finish_at = $3, updated_at = now() WHERE id = $1`,
		campaignID, startAt, finishAt)
	if err != nil {
		return err
	}
	if isStarted {
		_, err = tx.Exec(ctx, `UPDATE banners SET start_at = $2, finish_at = $3, updated_at = now() WHERE campaign_id = $1`,
			campaignID, startAt, finishAt)
	}
	return err
}
