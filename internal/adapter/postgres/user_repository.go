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

// UserRepository implements port.UserRepository using pgxpool. The
// orchestration only reads user state; plans and accounts are mutated by
// the billing and OAuth-connect flows elsewhere.
type UserRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository returns a new repository instance.
func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

// GetPlan returns the user's plan row, nil when none is stored yet.
func (r *UserRepository) GetPlan(ctx context.Context, userID uuid.UUID) (*domain.Plan, error) {
	var p domain.Plan
	err := r.pool.QueryRow(ctx,
		`SELECT user_id, plan, COALESCE(promo_code, ''), trial_ends_at FROM user_plans WHERE user_id = $1`,
		userID).Scan(&p.UserID, &p.Tier, &p.PromoCode, &p.TrialEndsAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

const accountColumns = `id, user_id, email, is_primary, connected,
COALESCE(access_token, ''), COALESCE(refresh_token, ''), COALESCE(token_expiry, 'epoch'::timestamptz)`

func scanAccount(row pgx.Row) (*domain.MailAccount, error) {
	var a domain.MailAccount
	err := row.Scan(
		&a.ID,
		&a.UserID,
		&a.Email,
		&a.Primary,
		&a.Connected,
		&a.Token.AccessToken,
		&a.Token.RefreshToken,
		&a.Token.Expiry,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if a.Token.Expiry.Unix() == 0 {
		// the COALESCE epoch sentinel means no expiry is stored
		a.Token.Expiry = time.Time{}
	}
	return &a, nil
}

// ListMailAccounts returns the user's mail accounts, primary first.
func (r *UserRepository) ListMailAccounts(ctx context.Context, userID uuid.UUID) ([]domain.MailAccount, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+accountColumns+` FROM mail_accounts WHERE user_id = $1 ORDER BY is_primary DESC, email`,
		userID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.MailAccount, error) {
		a, err := scanAccount(row)
		if err != nil {
			return domain.MailAccount{}, err
		}
		return *a, nil
	})
}

// GetMailAccount returns the account matching email, or the primary account
// when email is nil. Returns nil when absent.
func (r *UserRepository) GetMailAccount(ctx context.Context, userID uuid.UUID, email *string) (*domain.MailAccount, error) {
	if email == nil {
		row := r.pool.QueryRow(ctx,
			`SELECT `+accountColumns+` FROM mail_accounts WHERE user_id = $1 AND is_primary`, userID)
		return scanAccount(row)
	}
	row := r.pool.QueryRow(ctx,
		`SELECT `+accountColumns+` FROM mail_accounts WHERE user_id = $1 AND lower(email) = lower($2)`,
		userID, *email)
	return scanAccount(row)
}
