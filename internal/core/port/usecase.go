package port

import (
	"context"

	"github.com/google/uuid"

	"leadflow/internal/core/domain"
)

// LaunchRequest is the decoded orchestration request body. A non-empty
// CampaignID signals a re-run of an existing campaign; TargetCount and
// CompanyDescription are only required for new campaigns.
type LaunchRequest struct {
	Name               string
	BusinessType       string
	CompanyDescription string
	Cities             []string
	CitySize           string
	ToneOfVoice        string
	CampaignGoal       string
	MagicLink          string
	ExampleEmail       string
	BusinessLinkText   string
	CampaignID         string
	TargetCount        int
	Mode               string
	GmailEmail         string
	Country            string
}

// LaunchResult distinguishes "campaign state persisted" from "external
// engine informed": Campaign is always committed by the time a result
// exists, Notify records whether the webhook went through.
type LaunchResult struct {
	Campaign domain.Campaign
	Notify   NotifyStatus
	Message  string
}

// CreditSummary is the caller's remaining daily lead allowance.
type CreditSummary struct {
	Used      int `json:"used"`
	Limit     int `json:"limit"`
	Remaining int `json:"remaining"`
}

// CampaignUseCase is the primary inbound port: every dashboard operation
// enters the domain through it.
type CampaignUseCase interface {
	// Launch runs the full orchestration: validation, quota, mail account
	// and city resolution, campaign create/reuse, lead unlink, webhook
	// trigger. All recoverable failures surface as *StatusError before
	// any state mutation.
	Launch(ctx context.Context, userID uuid.UUID, req LaunchRequest) (*LaunchResult, error)

	ListCampaigns(ctx context.Context, userID uuid.UUID) ([]domain.Campaign, error)
	GetCampaign(ctx context.Context, userID, id uuid.UUID) (*domain.Campaign, error)
	DeleteCampaign(ctx context.Context, userID, id uuid.UUID) error

	// CampaignLeads returns the campaign's leads, falling back to the
	// legacy heuristic match when no explicitly linked rows exist.
	CampaignLeads(ctx context.Context, userID, id uuid.UUID) ([]domain.Lead, error)

	CreditsToday(ctx context.Context, userID uuid.UUID) (*CreditSummary, error)
	MailAccounts(ctx context.Context, userID uuid.UUID) ([]domain.MailAccount, error)

	GetSchedule(ctx context.Context, userID uuid.UUID) (*domain.Schedule, error)
	PutSchedule(ctx context.Context, userID uuid.UUID, s domain.Schedule) error
}
