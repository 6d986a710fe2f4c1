package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"leadflow/internal/cities"
)

// Seed inserts demo data: a trial and a pro user with connected mail
// accounts, a campaign each, and the reference city table. The reference
// cities come from the embedded list so the database copy matches the
// in-memory one.
func Seed(ctx context.Context, pool *pgxpool.Pool) error {
	for _, c := range cities.All() {
		_, err := pool.Exec(ctx, `INSERT INTO reference_cities (name, country, bracket)
VALUES ($1,$2,$3) ON CONFLICT DO NOTHING`, c.Name, c.Country, c.Bracket)
		if err != nil {
			return err
		}
	}

	type demoUser struct {
		id    uuid.UUID
		email string
		plan  string
	}
	demo := []demoUser{
		{uuid.MustParse("11111111-1111-1111-1111-111111111111"), "trial@leadflow.dev", "trial"},
		{uuid.MustParse("22222222-2222-2222-2222-222222222222"), "pro@leadflow.dev", "pro"},
	}

	for _, u := range demo {
		_, err := pool.Exec(ctx, `INSERT INTO users (id, email) VALUES ($1,$2) ON CONFLICT DO NOTHING`,
			u.id, u.email)
		if err != nil {
			return err
		}
		var trialEnd *time.Time
		if u.plan == "trial" {
			t := time.Now().AddDate(0, 0, 14)
			trialEnd = &t
		}
		_, err = pool.Exec(ctx, `INSERT INTO user_plans (user_id, plan, trial_ends_at)
VALUES ($1,$2,$3) ON CONFLICT DO NOTHING`, u.id, u.plan, trialEnd)
		if err != nil {
			return err
		}
		_, err = pool.Exec(ctx, `INSERT INTO mail_accounts
(user_id, email, is_primary, connected, access_token, refresh_token, token_expiry)
VALUES ($1,$2,true,true,$3,$4,$5) ON CONFLICT DO NOTHING`,
			u.id, u.email, "demo-access-token", "demo-refresh-token", time.Now().Add(time.Hour))
		if err != nil {
			return err
		}
	}

	// a secondary sender for the pro user
	_, err := pool.Exec(ctx, `INSERT INTO mail_accounts (user_id, email, is_primary, connected)
VALUES ($1,$2,false,true) ON CONFLICT DO NOTHING`,
		demo[1].id, "outreach@leadflow.dev")
	if err != nil {
		return err
	}

	for i, u := range demo {
		_, err = pool.Exec(ctx, `INSERT INTO campaigns
(user_id, name, business_type, company_description, tone_of_voice, goal, cities, mode, credits, status, gmail_email)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,'active',$10) ON CONFLICT DO NOTHING`,
			u.id,
			fmt.Sprintf("Demo campaign %d", i+1),
			"plumber",
			"We build modern websites for local trade businesses and help them win more customers online every month.",
			"professional",
			"book_call",
			[]string{"Springfield"},
			"standard",
			10,
			u.email)
		if err != nil {
			return err
		}
	}
	return nil
}
