package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"leadflow/internal/core/domain"
	"leadflow/internal/core/port"
	"leadflow/internal/core/port/mocks"
)

type serviceMocks struct {
	campaigns *mocks.MockCampaignRepository
	leads     *mocks.MockLeadRepository
	users     *mocks.MockUserRepository
	cities    *mocks.MockCityRepository
	schedules *mocks.MockScheduleRepository
	trigger   *mocks.MockTriggerClient
	tokens    *mocks.MockTokenRefresher
}

func newTestService(t *testing.T) (*Service, *serviceMocks) {
	t.Helper()
	m := &serviceMocks{
		campaigns: mocks.NewMockCampaignRepository(t),
		leads:     mocks.NewMockLeadRepository(t),
		users:     mocks.NewMockUserRepository(t),
		cities:    mocks.NewMockCityRepository(t),
		schedules: mocks.NewMockScheduleRepository(t),
		trigger:   mocks.NewMockTriggerClient(t),
		tokens:    mocks.NewMockTokenRefresher(t),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(m.campaigns, m.leads, m.users, m.cities, m.schedules, m.trigger, m.tokens, logger), m
}

func statusOf(t *testing.T, err error) *port.StatusError {
	t.Helper()
	var se *port.StatusError
	require.ErrorAs(t, err, &se)
	return se
}

var testDescription = strings.Repeat("We sell handcrafted widgets to local businesses. ", 3)

func connectedAccount(userID uuid.UUID, email string) *domain.MailAccount {
	return &domain.MailAccount{
		ID:        uuid.New(),
		UserID:    userID,
		Email:     email,
		Primary:   true,
		Connected: true,
		Token: domain.OAuthToken{
			AccessToken:  "ya29.access",
			RefreshToken: "1//refresh",
		},
	}
}

func TestLaunch_NewCampaign(t *testing.T) {
	svc, m := newTestService(t)
	userID := uuid.New()
	campID := uuid.New()

	m.users.EXPECT().GetPlan(mock.Anything, userID).
		Return(&domain.Plan{UserID: userID, Tier: domain.TierBusiness}, nil)
	m.users.EXPECT().GetMailAccount(mock.Anything, userID, (*string)(nil)).
		Return(connectedAccount(userID, "owner@acme.io"), nil)
	m.campaigns.EXPECT().CreditsUsedToday(mock.Anything, userID).Return(200, nil)
	m.trigger.EXPECT().Ready(domain.ModeStandard).Return(nil)

	m.campaigns.EXPECT().Create(mock.Anything, mock.Anything).
		Run(func(_ context.Context, c domain.Campaign) {
			require.Equal(t, userID, c.UserID)
			require.Equal(t, 10, c.Credits)
			require.Equal(t, domain.StatusActive, c.Status)
			require.Equal(t, "owner@acme.io", c.GmailEmail)
		}).
		Return(&domain.Campaign{
			ID:                 campID,
			UserID:             userID,
			BusinessType:       "dentists",
			CompanyDescription: testDescription,
			Cities:             []string{"Austin"},
			Credits:            10,
			Status:             domain.StatusActive,
			GmailEmail:         "owner@acme.io",
		}, nil)

	m.campaigns.EXPECT().SetLastStartedAt(mock.Anything, campID, mock.Anything).Return(nil)

	var sent port.TriggerPayload
	m.trigger.EXPECT().Trigger(mock.Anything, domain.ModeStandard, mock.Anything).
		Run(func(_ context.Context, _ domain.Mode, p port.TriggerPayload) { sent = p }).
		Return(port.NotifyDelivered, nil)

	m.campaigns.EXPECT().SaveDescriptionTemplate(mock.Anything, userID, testDescription).Return(nil)

	res, err := svc.Launch(context.Background(), userID, port.LaunchRequest{
		BusinessType:       "dentists",
		CompanyDescription: testDescription,
		Cities:             []string{"Austin"},
		TargetCount:        10,
	})
	require.NoError(t, err)
	require.Equal(t, "Campaign launched", res.Message)
	require.Equal(t, port.NotifyDelivered, res.Notify)
	require.NotNil(t, res.Campaign.LastStartedAt)

	require.Equal(t, campID.String(), sent.CampaignID)
	require.Equal(t, 10, sent.TargetCount)
	require.Equal(t, "Austin", sent.City)
	require.Equal(t, []string{"Austin"}, sent.Cities)
	require.Empty(t, sent.CitySize)
	require.Equal(t, "ya29.access", sent.AccessToken)
	require.Equal(t, "1//refresh", sent.RefreshToken)
}

func TestLaunch_DailyLimitExceeded(t *testing.T) {
	svc, m := newTestService(t)
	userID := uuid.New()

	m.users.EXPECT().GetPlan(mock.Anything, userID).
		Return(&domain.Plan{UserID: userID, Tier: domain.TierStandard}, nil)
	m.users.EXPECT().GetMailAccount(mock.Anything, userID, (*string)(nil)).
		Return(connectedAccount(userID, "owner@acme.io"), nil)
	m.campaigns.EXPECT().CreditsUsedToday(mock.Anything, userID).Return(25, nil)

	_, err := svc.Launch(context.Background(), userID, port.LaunchRequest{
		BusinessType:       "plumbers",
		CompanyDescription: testDescription,
		TargetCount:        10,
	})
	se := statusOf(t, err)
	require.Equal(t, http.StatusBadRequest, se.Status)
	require.Equal(t, "Daily lead limit exceeded", se.Message)
	require.Equal(t, "You have 5 credits remaining today. This campaign requires 10 credits.", se.Details)
}

func TestLaunch_CooldownRejectsWithoutMutating(t *testing.T) {
	svc, m := newTestService(t)
	userID := uuid.New()
	campID := uuid.New()
	justStarted := time.Now().Add(-5 * time.Second)

	m.users.EXPECT().GetPlan(mock.Anything, userID).
		Return(&domain.Plan{UserID: userID, Tier: domain.TierPro}, nil)
	m.campaigns.EXPECT().GetForUser(mock.Anything, campID, userID).
		Return(&domain.Campaign{
			ID:            campID,
			UserID:        userID,
			Credits:       20,
			LastStartedAt: &justStarted,
		}, nil)

	// No other expectations: any write or trigger call would fail the test.
	_, err := svc.Launch(context.Background(), userID, port.LaunchRequest{CampaignID: campID.String()})
	se := statusOf(t, err)
	require.Equal(t, http.StatusTooManyRequests, se.Status)
	require.Equal(t, "This campaign was just started", se.Message)
	require.NotEmpty(t, se.Hint)
}

func TestLaunch_ProPickUnknownAccount(t *testing.T) {
	svc, m := newTestService(t)
	userID := uuid.New()

	m.users.EXPECT().GetPlan(mock.Anything, userID).
		Return(&domain.Plan{UserID: userID, Tier: domain.TierPro}, nil)
	m.users.EXPECT().ListMailAccounts(mock.Anything, userID).
		Return([]domain.MailAccount{
			{Email: "main@acme.io", Primary: true, Connected: true},
			{Email: "stale@acme.io", Connected: false},
		}, nil)

	_, err := svc.Launch(context.Background(), userID, port.LaunchRequest{
		BusinessType:       "roofers",
		CompanyDescription: testDescription,
		TargetCount:        5,
		GmailEmail:         "stale@acme.io",
	})
	se := statusOf(t, err)
	require.Equal(t, http.StatusBadRequest, se.Status)
	require.Contains(t, se.Message, "Selected Gmail account not found or not connected")
}

func TestLaunch_RerunReusesCreditsAndSender(t *testing.T) {
	svc, m := newTestService(t)
	userID := uuid.New()
	campID := uuid.New()
	lastRun := time.Now().Add(-time.Hour)
	stored := "sender@acme.io"

	m.users.EXPECT().GetPlan(mock.Anything, userID).
		Return(&domain.Plan{UserID: userID, Tier: domain.TierStandard}, nil)
	m.campaigns.EXPECT().GetForUser(mock.Anything, campID, userID).
		Return(&domain.Campaign{
			ID:            campID,
			UserID:        userID,
			BusinessType:  "lawyers",
			Cities:        []string{"Seattle"},
			Credits:       40,
			GmailEmail:    stored,
			LastStartedAt: &lastRun,
		}, nil)
	m.users.EXPECT().GetMailAccount(mock.Anything, userID, &stored).
		Return(connectedAccount(userID, stored), nil)
	m.trigger.EXPECT().Ready(domain.ModeStandard).Return(nil)
	m.leads.EXPECT().Unlink(mock.Anything, campID).Return(int64(12), nil)
	m.campaigns.EXPECT().SetLastStartedAt(mock.Anything, campID, mock.Anything).Return(nil)

	var sent port.TriggerPayload
	m.trigger.EXPECT().Trigger(mock.Anything, domain.ModeStandard, mock.Anything).
		Run(func(_ context.Context, _ domain.Mode, p port.TriggerPayload) { sent = p }).
		Return(port.NotifyDelivered, nil)

	// Re-run ignores the request's target count entirely.
	res, err := svc.Launch(context.Background(), userID, port.LaunchRequest{
		CampaignID:  campID.String(),
		TargetCount: 999,
	})
	require.NoError(t, err)
	require.Equal(t, "Campaign restarted", res.Message)
	require.Equal(t, 40, sent.TargetCount)
	require.Equal(t, stored, sent.GmailEmail)
	require.Equal(t, "Seattle", sent.City)
	require.Equal(t, "United States", sent.Country)
	require.Empty(t, sent.Cities)
	require.Empty(t, sent.CitySize)
}

func TestLaunch_BracketForwardsCityListOnly(t *testing.T) {
	svc, m := newTestService(t)
	userID := uuid.New()
	campID := uuid.New()

	m.users.EXPECT().GetPlan(mock.Anything, userID).
		Return(&domain.Plan{UserID: userID, Tier: domain.TierBusiness}, nil)
	m.users.EXPECT().GetMailAccount(mock.Anything, userID, (*string)(nil)).
		Return(connectedAccount(userID, "owner@acme.io"), nil)
	m.campaigns.EXPECT().CreditsUsedToday(mock.Anything, userID).Return(0, nil)
	m.trigger.EXPECT().Ready(domain.ModeStandard).Return(nil)
	m.campaigns.EXPECT().Create(mock.Anything, mock.Anything).
		Return(&domain.Campaign{
			ID:           campID,
			UserID:       userID,
			BusinessType: "gyms",
			CitySize:     domain.Bracket50K100K,
			Credits:      15,
			Status:       domain.StatusActive,
		}, nil)
	m.campaigns.EXPECT().SetLastStartedAt(mock.Anything, campID, mock.Anything).Return(nil)

	var sent port.TriggerPayload
	m.trigger.EXPECT().Trigger(mock.Anything, domain.ModeStandard, mock.Anything).
		Run(func(_ context.Context, _ domain.Mode, p port.TriggerPayload) { sent = p }).
		Return(port.NotifyDelivered, nil)

	res, err := svc.Launch(context.Background(), userID, port.LaunchRequest{
		BusinessType:       "gyms",
		CompanyDescription: testDescription,
		CitySize:           string(domain.Bracket50K100K),
		TargetCount:        15,
	})
	require.NoError(t, err)
	require.Equal(t, port.NotifyDelivered, res.Notify)

	// Never both: the bracket expands to its reference cities on the wire.
	require.NotEmpty(t, sent.Cities)
	require.Empty(t, sent.CitySize)
	require.Contains(t, sent.Cities, "Bozeman")
}

func TestLaunch_WebhookFailureIsNotFatal(t *testing.T) {
	svc, m := newTestService(t)
	userID := uuid.New()
	campID := uuid.New()

	m.users.EXPECT().GetPlan(mock.Anything, userID).
		Return(&domain.Plan{UserID: userID, Tier: domain.TierStandard}, nil)
	m.users.EXPECT().GetMailAccount(mock.Anything, userID, (*string)(nil)).
		Return(connectedAccount(userID, "owner@acme.io"), nil)
	m.campaigns.EXPECT().CreditsUsedToday(mock.Anything, userID).Return(0, nil)
	m.trigger.EXPECT().Ready(domain.ModeStandard).Return(nil)
	m.campaigns.EXPECT().Create(mock.Anything, mock.Anything).
		Return(&domain.Campaign{
			ID:                 campID,
			UserID:             userID,
			BusinessType:       "cafes",
			CompanyDescription: testDescription,
			Cities:             []string{"Denver"},
			Credits:            5,
			Status:             domain.StatusActive,
		}, nil)
	m.campaigns.EXPECT().SetLastStartedAt(mock.Anything, campID, mock.Anything).Return(nil)
	m.trigger.EXPECT().Trigger(mock.Anything, domain.ModeStandard, mock.Anything).
		Return(port.NotifyFailed, errors.New("connection refused"))
	m.campaigns.EXPECT().SaveDescriptionTemplate(mock.Anything, userID, testDescription).Return(nil)

	res, err := svc.Launch(context.Background(), userID, port.LaunchRequest{
		BusinessType:       "cafes",
		CompanyDescription: testDescription,
		Cities:             []string{"Denver"},
		TargetCount:        5,
	})
	require.NoError(t, err)
	require.Equal(t, port.NotifyFailed, res.Notify)
	require.Equal(t, "Campaign launched", res.Message)
}

func TestLaunch_MisconfiguredWebhookFailsBeforeCreate(t *testing.T) {
	svc, m := newTestService(t)
	userID := uuid.New()

	m.users.EXPECT().GetPlan(mock.Anything, userID).
		Return(&domain.Plan{UserID: userID, Tier: domain.TierStandard}, nil)
	m.users.EXPECT().GetMailAccount(mock.Anything, userID, (*string)(nil)).
		Return(connectedAccount(userID, "owner@acme.io"), nil)
	m.campaigns.EXPECT().CreditsUsedToday(mock.Anything, userID).Return(0, nil)
	m.trigger.EXPECT().Ready(domain.ModeLocalBusinesses).
		Return(port.Misconfigured("Workflow endpoint is not configured", "set N8N_WEBHOOK_URL"))

	_, err := svc.Launch(context.Background(), userID, port.LaunchRequest{
		BusinessType:       "bakeries",
		CompanyDescription: testDescription,
		Cities:             []string{"Tampa"},
		TargetCount:        5,
		Mode:               string(domain.ModeLocalBusinesses),
	})
	se := statusOf(t, err)
	require.Equal(t, http.StatusInternalServerError, se.Status)
	require.Equal(t, "Workflow endpoint is not configured", se.Message)
}

func TestValidateLaunch(t *testing.T) {
	base := port.LaunchRequest{
		BusinessType:       "dentists",
		CompanyDescription: testDescription,
		TargetCount:        10,
	}

	tests := []struct {
		name     string
		mutate   func(*port.LaunchRequest)
		existing *domain.Campaign
		wantMsg  string
	}{
		{
			name:   "valid new campaign",
			mutate: func(*port.LaunchRequest) {},
		},
		{
			name:    "missing business type",
			mutate:  func(r *port.LaunchRequest) { r.BusinessType = "  " },
			wantMsg: "businessType is required",
		},
		{
			name:    "description too short",
			mutate:  func(r *port.LaunchRequest) { r.CompanyDescription = "too short" },
			wantMsg: "companyDescription must be between 50 and 500 characters",
		},
		{
			name:    "description too long",
			mutate:  func(r *port.LaunchRequest) { r.CompanyDescription = strings.Repeat("x", 501) },
			wantMsg: "companyDescription must be between 50 and 500 characters",
		},
		{
			name:    "missing target count",
			mutate:  func(r *port.LaunchRequest) { r.TargetCount = 0 },
			wantMsg: "targetCount is required",
		},
		{
			name:    "bad tone",
			mutate:  func(r *port.LaunchRequest) { r.ToneOfVoice = "shouty" },
			wantMsg: "toneOfVoice must be one of professional, casual, direct, empathetic",
		},
		{
			name:    "bad goal",
			mutate:  func(r *port.LaunchRequest) { r.CampaignGoal = "world_peace" },
			wantMsg: "campaignGoal must be one of book_call, free_audit, send_brochure",
		},
		{
			name:    "bad bracket",
			mutate:  func(r *port.LaunchRequest) { r.CitySize = "12-15" },
			wantMsg: "citySize is not a recognized population bracket",
		},
		{
			name: "re-run skips new-campaign requirements",
			mutate: func(r *port.LaunchRequest) {
				r.BusinessType = ""
				r.CompanyDescription = ""
				r.TargetCount = 0
			},
			existing: &domain.Campaign{ID: uuid.New()},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := base
			tt.mutate(&req)
			err := validateLaunch(req, tt.existing)
			if tt.wantMsg == "" {
				require.NoError(t, err)
				return
			}
			se := statusOf(t, err)
			require.Equal(t, http.StatusBadRequest, se.Status)
			require.Equal(t, tt.wantMsg, se.Message)
		})
	}
}
