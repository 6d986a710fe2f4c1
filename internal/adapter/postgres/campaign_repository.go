package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"leadflow/internal/core/domain"
)

// CampaignRepository implements port.CampaignRepository using pgxpool.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

const campaignColumns = `id, user_id, name, business_type, company_description, tone_of_voice,
goal, link, cities, city_size, mode, credits, status, gmail_email, last_started_at, created_at`

func scanCampaign(row pgx.Row) (*domain.Campaign, error) {
	var c domain.Campaign
	err := row.Scan(
		&c.ID,
		&c.UserID,
		&c.Name,
		&c.BusinessType,
		&c.CompanyDescription,
		&c.ToneOfVoice,
		&c.Goal,
		&c.Link,
		&c.Cities,
		&c.CitySize,
		&c.Mode,
		&c.Credits,
		&c.Status,
		&c.GmailEmail,
		&c.LastStartedAt,
		&c.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Create inserts a campaign and returns it with the generated id and
// creation timestamp.
func (r *CampaignRepository) Create(ctx context.Context, c domain.Campaign) (*domain.Campaign, error) {
	err := r.pool.QueryRow(ctx, `INSERT INTO campaigns
(user_id, name, business_type, company_description, tone_of_voice, goal, link, cities, city_size, mode, credits, status, gmail_email)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)
RETURNING id, created_at`,
		c.UserID, c.Name, c.BusinessType, c.CompanyDescription, c.ToneOfVoice, c.Goal,
		c.Link, c.Cities, c.CitySize, c.Mode, c.Credits, c.Status, c.GmailEmail,
	).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// GetForUser returns a campaign scoped to its owner; cross-user ids read as
// missing.
func (r *CampaignRepository) GetForUser(ctx context.Context, id, userID uuid.UUID) (*domain.Campaign, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+campaignColumns+` FROM campaigns WHERE id = $1 AND user_id = $2`, id, userID)
	return scanCampaign(row)
}

// ListForUser returns the user's campaigns, newest first.
func (r *CampaignRepository) ListForUser(ctx context.Context, userID uuid.UUID) ([]domain.Campaign, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+campaignColumns+` FROM campaigns WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		c, err := scanCampaign(row)
		if err != nil {
			return domain.Campaign{}, err
		}
		return *c, nil
	})
}

// SetLastStartedAt bumps the last-started timestamp.
func (r *CampaignRepository) SetLastStartedAt(ctx context.Context, id uuid.UUID, t time.Time) error {
	_, err := r.pool.Exec(ctx, `UPDATE campaigns SET last_started_at = $1 WHERE id = $2`, t, id)
	return err
}

// SetCity persists a freshly drawn single city onto the campaign.
func (r *CampaignRepository) SetCity(ctx context.Context, id uuid.UUID, city string) error {
	_, err := r.pool.Exec(ctx, `UPDATE campaigns SET cities = ARRAY[$1] WHERE id = $2`, city, id)
	return err
}

// Delete removes the campaign after detaching its leads, in one transaction
// so a failed delete does not leave orphaned unlinked leads.
func (r *CampaignRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	tx, err := r.pool.Begin(ctx)
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
	if _, err = tx.Exec(ctx, `UPDATE leads SET campaign_id = NULL WHERE campaign_id = $1`, id); err != nil {
		return err
	}
	_, err = tx.Exec(ctx, `DELETE FROM campaigns WHERE id = $1 AND user_id = $2`, id, userID)
	return err
}

// CreditsUsedToday sums the creation-time credit allocations of today's
// campaigns. Re-runs do not insert rows, so they never count.
func (r *CampaignRepository) CreditsUsedToday(ctx context.Context, userID uuid.UUID) (int, error) {
	var used int
	err := r.pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(credits), 0) FROM campaigns WHERE user_id = $1 AND created_at >= date_trunc('day', now())`,
		userID).Scan(&used)
	return used, err
}

// SaveDescriptionTemplate upserts the user's reusable company description.
func (r *CampaignRepository) SaveDescriptionTemplate(ctx context.Context, userID uuid.UUID, description string) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO user_templates (user_id, description, updated_at)
VALUES ($1, $2, now())
ON CONFLICT (user_id) DO UPDATE SET description = EXCLUDED.description, updated_at = now()`,
		userID, description)
	return err
}
