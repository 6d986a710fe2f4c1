package postgres

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"leadflow/internal/core/domain"
)

// LeadRepository implements port.LeadRepository using pgxpool. Leads are
// written by the external workflow engine; this repository only reads and
// relinks them.
type LeadRepository struct {
	pool *pgxpool.Pool
}

// NewLeadRepository returns a new repository instance.
func NewLeadRepository(pool *pgxpool.Pool) *LeadRepository {
	return &LeadRepository{pool: pool}
}

const leadColumns = `id, user_id, campaign_id, business_type, city, country, email, phone,
linkedin_url, website_url, draft_email, replied, replied_at, thread_id, created_at`

func collectLeads(rows pgx.Rows) ([]domain.Lead, error) {
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Lead, error) {
		var l domain.Lead
		err := row.Scan(
			&l.ID,
			&l.UserID,
			&l.CampaignID,
			&l.BusinessType,
			&l.City,
			&l.Country,
			&l.Email,
			&l.Phone,
			&l.LinkedInURL,
			&l.WebsiteURL,
			&l.DraftEmail,
			&l.Replied,
			&l.RepliedAt,
			&l.ThreadID,
			&l.CreatedAt,
		)
		return l, err
	})
}

// ListByCampaign returns leads explicitly linked to the campaign.
func (r *LeadRepository) ListByCampaign(ctx context.Context, campaignID uuid.UUID) ([]domain.Lead, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+leadColumns+` FROM leads WHERE campaign_id = $1 ORDER BY created_at DESC`, campaignID)
	if err != nil {
		return nil, err
	}
	return collectLeads(rows)
}

// ListLegacyMatches matches unlinked leads to a campaign heuristically:
// same business type, created after the campaign, and city membership when
// the campaign targets explicit cities. It exists only for rows written
// before explicit linkage; remove it once none remain.
func (r *LeadRepository) ListLegacyMatches(ctx context.Context, c domain.Campaign) ([]domain.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads
WHERE user_id = $1 AND campaign_id IS NULL AND lower(business_type) = lower($2) AND created_at > $3`
	args := []any{c.UserID, c.BusinessType, c.CreatedAt}
	if len(c.Cities) > 0 {
		lowered := make([]string, len(c.Cities))
		for i, city := range c.Cities {
			lowered[i] = strings.ToLower(city)
		}
		query += ` AND lower(city) = ANY($4)`
		args = append(args, lowered)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return collectLeads(rows)
}

// Unlink detaches all leads from the campaign and reports how many.
func (r *LeadRepository) Unlink(ctx context.Context, campaignID uuid.UUID) (int64, error) {
	tag, err := r.pool.Exec(ctx, `UPDATE leads SET campaign_id = NULL WHERE campaign_id = $1`, campaignID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// CountByCampaign returns the number of leads linked to the campaign.
func (r *LeadRepository) CountByCampaign(ctx context.Context, campaignID uuid.UUID) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM leads WHERE campaign_id = $1`, campaignID).Scan(&n)
	return n, err
}
