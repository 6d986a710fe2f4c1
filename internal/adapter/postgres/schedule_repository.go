package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"leadflow/internal/core/domain"
)

// ScheduleRepository implements port.ScheduleRepository using pgxpool.
type ScheduleRepository struct {
	pool *pgxpool.Pool
}

// NewScheduleRepository returns a new repository instance.
func NewScheduleRepository(pool *pgxpool.Pool) *ScheduleRepository {
	return &ScheduleRepository{pool: pool}
}

const scheduleColumns = `user_id, launch_time, timezone, campaign_ids, delivery_mode`

func scanSchedule(row pgx.Row) (*domain.Schedule, error) {
	var s domain.Schedule
	err := row.Scan(&s.UserID, &s.LaunchTime, &s.Timezone, &s.CampaignIDs, &s.DeliveryMode)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Get returns the user's schedule, nil when none is stored.
func (r *ScheduleRepository) Get(ctx context.Context, userID uuid.UUID) (*domain.Schedule, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+scheduleColumns+` FROM schedules WHERE user_id = $1`, userID)
	return scanSchedule(row)
}

// Put upserts the user's schedule.
func (r *ScheduleRepository) Put(ctx context.Context, s domain.Schedule) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO schedules (user_id, launch_time, timezone, campaign_ids, delivery_mode)
VALUES ($1,$2,$3,$4,$5)
ON CONFLICT (user_id) DO UPDATE SET
	launch_time = EXCLUDED.launch_time,
	timezone = EXCLUDED.timezone,
	campaign_ids = EXCLUDED.campaign_ids,
	delivery_mode = EXCLUDED.delivery_mode`,
		s.UserID, s.LaunchTime, s.Timezone, s.CampaignIDs, s.DeliveryMode)
	return err
}

// ListAll returns every stored schedule for the dispatcher scan.
func (r *ScheduleRepository) ListAll(ctx context.Context) ([]domain.Schedule, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+scheduleColumns+` FROM schedules`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Schedule, error) {
		s, err := scanSchedule(row)
		if err != nil {
			return domain.Schedule{}, err
		}
		return *s, nil
	})
}
