package schedule

import (
	"context"
	"log/slog"
	"time"

	"leadflow/internal/core/port"
)

// Dispatcher scans stored schedules once a minute and re-runs the campaign
// due in the current slot through the launch usecase. It is optional;
// deployments that drive launches from an external cron do not start it.
type Dispatcher struct {
	schedules port.ScheduleRepository
	svc       port.CampaignUseCase
	logger    *slog.Logger
	tick      time.Duration
}

// NewDispatcher wires a dispatcher. tick should be one minute; anything
// coarser can skip slots, anything finer double-fires within the campaign
// cooldown and gets rejected with 429 noise.
func NewDispatcher(schedules port.ScheduleRepository, svc port.CampaignUseCase, logger *slog.Logger, tick time.Duration) *Dispatcher {
	return &Dispatcher{schedules: schedules, svc: svc, logger: logger, tick: tick}
}

// Run blocks until ctx is done, firing due campaigns each tick.
func (d *Dispatcher) Run(ctx context.Context) {
	ticker := time.NewTicker(d.tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			d.dispatch(ctx, now)
		}
	}
}

func (d *Dispatcher) dispatch(ctx context.Context, now time.Time) {
	all, err := d.schedules.ListAll(ctx)
	if err != nil {
		d.logger.Error("schedule scan failed", slog.Any("error", err))
		return
	}
	for _, s := range all {
		id, ok := Due(s, now)
		if !ok {
			continue
		}
		_, err := d.svc.Launch(ctx, s.UserID, port.LaunchRequest{CampaignID: id.String()})
		if err != nil {
			d.logger.Warn("scheduled launch failed",
				slog.String("user_id", s.UserID.String()),
				slog.String("campaign_id", id.String()),
				slog.Any("error", err))
			continue
		}
		d.logger.Info("scheduled launch fired",
			slog.String("user_id", s.UserID.String()),
			slog.String("campaign_id", id.String()))
	}
}
