package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"leadflow/internal/core/domain"
)

// CampaignRepository persists campaign records. It is an outbound port;
// implementations map pgx.ErrNoRows style misses to nil results rather than
// errors so the usecase can decide the client-visible response.
type CampaignRepository interface {
	// Create inserts a new campaign and returns it with its generated id
	// and creation timestamp.
	Create(ctx context.Context, c domain.Campaign) (*domain.Campaign, error)
	// GetForUser returns the campaign with the given id if it is owned by
	// userID, nil otherwise. Cross-user access is indistinguishable from a
	// missing record to avoid existence leakage.
	GetForUser(ctx context.Context, id, userID uuid.UUID) (*domain.Campaign, error)
	// ListForUser returns the user's campaigns, newest first.
	ListForUser(ctx context.Context, userID uuid.UUID) ([]domain.Campaign, error)
	// SetLastStartedAt bumps the last-started timestamp ahead of a run.
	SetLastStartedAt(ctx context.Context, id uuid.UUID, t time.Time) error
	// SetCity persists a freshly drawn single city so subsequent re-runs
	// reuse it instead of re-drawing.
	SetCity(ctx context.Context, id uuid.UUID, city string) error
	// Delete removes the campaign and unlinks its leads.
	Delete(ctx context.Context, id, userID uuid.UUID) error
	// CreditsUsedToday sums the credits of campaigns the user created
	// since local midnight. Re-runs consume nothing, so only creation-time
	// allocations count.
	CreditsUsedToday(ctx context.Context, userID uuid.UUID) (int, error)
	// SaveDescriptionTemplate stores the company description for reuse in
	// the new-campaign form. Callers treat failures as best-effort.
	SaveDescriptionTemplate(ctx context.Context, userID uuid.UUID, description string) error
}

// LeadRepository reads and relinks leads. Leads are created exclusively by
// the external workflow engine, never through this port.
type LeadRepository interface {
	// ListByCampaign returns leads explicitly linked to the campaign,
	// newest first.
	ListByCampaign(ctx context.Context, campaignID uuid.UUID) ([]domain.Lead, error)
	// ListLegacyMatches is a compatibility shim for leads written before
	// explicit campaign linkage existed: it matches unlinked leads by
	// business type, city membership and creation time. Delete it once all
	// data carries a campaign id.
	ListLegacyMatches(ctx context.Context, c domain.Campaign) ([]domain.Lead, error)
	// Unlink detaches all leads from the campaign so a new run's table
	// view does not mix old and new rows. Returns the number detached.
	Unlink(ctx context.Context, campaignID uuid.UUID) (int64, error)
	// CountByCampaign returns the number of leads linked to the campaign.
	CountByCampaign(ctx context.Context, campaignID uuid.UUID) (int, error)
}

// UserRepository exposes the read-only user state the orchestration needs.
type UserRepository interface {
	// GetPlan returns the user's billing plan, or nil when none is stored.
	GetPlan(ctx context.Context, userID uuid.UUID) (*domain.Plan, error)
	// ListMailAccounts returns the user's connected mail accounts.
	ListMailAccounts(ctx context.Context, userID uuid.UUID) ([]domain.MailAccount, error)
	// GetMailAccount returns the account matching email, or the primary
	// account when email is nil. Returns nil when absent.
	GetMailAccount(ctx context.Context, userID uuid.UUID, email *string) (*domain.MailAccount, error)
}

// CityRepository serves the database-backed half of the reference city
// table. The in-memory half lives in the cities package; both are fed from
// the same embedded dataset.
type CityRepository interface {
	// Random draws one city uniformly at random from the bracket, or nil
	// when the bracket has no reference cities.
	Random(ctx context.Context, bracket domain.CityBracket) (*domain.City, error)
}

// ScheduleRepository persists per-user launch preferences.
type ScheduleRepository interface {
	Get(ctx context.Context, userID uuid.UUID) (*domain.Schedule, error)
	Put(ctx context.Context, s domain.Schedule) error
	// ListAll returns every stored schedule; the dispatcher scans them
	// once a minute.
	ListAll(ctx context.Context) ([]domain.Schedule, error)
}
