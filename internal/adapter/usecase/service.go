package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"leadflow/internal/core/domain"
	"leadflow/internal/core/port"
)

// Service implements port.CampaignUseCase. It orchestrates the repositories
// and the external collaborators; all business rules live here, the
// adapters stay mechanical.
type Service struct {
	campaigns port.CampaignRepository
	leads     port.LeadRepository
	users     port.UserRepository
	cities    port.CityRepository
	schedules port.ScheduleRepository
	trigger   port.TriggerClient
	tokens    port.TokenRefresher
	logger    *slog.Logger

	// now is swappable in tests.
	now func() time.Time
}

// NewService wires a Service from its ports.
func NewService(
	campaigns port.CampaignRepository,
	leads port.LeadRepository,
	users port.UserRepository,
	cities port.CityRepository,
	schedules port.ScheduleRepository,
	trigger port.TriggerClient,
	tokens port.TokenRefresher,
	logger *slog.Logger,
) *Service {
	return &Service{
		campaigns: campaigns,
		leads:     leads,
		users:     users,
		cities:    cities,
		schedules: schedules,
		trigger:   trigger,
		tokens:    tokens,
		logger:    logger,
		now:       time.Now,
	}
}

// ListCampaigns returns the caller's campaigns, newest first.
func (s *Service) ListCampaigns(ctx context.Context, userID uuid.UUID) ([]domain.Campaign, error) {
	return s.campaigns.ListForUser(ctx, userID)
}

// GetCampaign returns one campaign owned by the caller.
func (s *Service) GetCampaign(ctx context.Context, userID, id uuid.UUID) (*domain.Campaign, error) {
	c, err := s.campaigns.GetForUser(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, port.NotFound("Campaign not found")
	}
	return c, nil
}

// DeleteCampaign removes a campaign and unlinks its leads.
func (s *Service) DeleteCampaign(ctx context.Context, userID, id uuid.UUID) error {
	c, err := s.GetCampaign(ctx, userID, id)
	if err != nil {
		return err
	}
	if _, err = s.leads.Unlink(ctx, c.ID); err != nil {
		return err
	}
	return s.campaigns.Delete(ctx, c.ID, userID)
}

// CampaignLeads returns the campaign's leads. Campaigns that predate
// explicit linkage have no linked rows; those fall back to the legacy
// heuristic match.
func (s *Service) CampaignLeads(ctx context.Context, userID, id uuid.UUID) ([]domain.Lead, error) {
	c, err := s.GetCampaign(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	leads, err := s.leads.ListByCampaign(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	if len(leads) > 0 {
		return leads, nil
	}
	return s.leads.ListLegacyMatches(ctx, *c)
}

// CreditsToday reports the caller's daily allowance and what is left of it.
func (s *Service) CreditsToday(ctx context.Context, userID uuid.UUID) (*port.CreditSummary, error) {
	plan, err := s.loadPlan(ctx, userID)
	if err != nil {
		return nil, err
	}
	limit := plan.DailyLimit(s.now())
	used, err := s.campaigns.CreditsUsedToday(ctx, userID)
	if err != nil {
		return nil, err
	}
	remaining := limit - used
	if remaining < 0 {
		remaining = 0
	}
	return &port.CreditSummary{Used: used, Limit: limit, Remaining: remaining}, nil
}

// MailAccounts lists the caller's connected mail accounts.
func (s *Service) MailAccounts(ctx context.Context, userID uuid.UUID) ([]domain.MailAccount, error) {
	return s.users.ListMailAccounts(ctx, userID)
}

// GetSchedule returns the caller's launch preferences, nil when unset.
func (s *Service) GetSchedule(ctx context.Context, userID uuid.UUID) (*domain.Schedule, error) {
	return s.schedules.Get(ctx, userID)
}

// PutSchedule stores the caller's launch preferences.
func (s *Service) PutSchedule(ctx context.Context, userID uuid.UUID, sched domain.Schedule) error {
	if _, err := time.LoadLocation(sched.Timezone); err != nil {
		return port.BadRequest("Unknown timezone")
	}
	if _, err := time.Parse("15:04", sched.LaunchTime); err != nil {
		return port.BadRequest("launchTime must be HH:MM")
	}
	if sched.DeliveryMode != "" && !sched.DeliveryMode.Valid() {
		return port.BadRequest("deliveryMode must be drafts or queue")
	}
	sched.UserID = userID
	return s.schedules.Put(ctx, sched)
}

// loadPlan fetches the user's plan, defaulting to an open trial when no row
// exists yet.
func (s *Service) loadPlan(ctx context.Context, userID uuid.UUID) (*domain.Plan, error) {
	plan, err := s.users.GetPlan(ctx, userID)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		plan = &domain.Plan{UserID: userID, Tier: domain.TierTrial}
	}
	return plan, nil
}
