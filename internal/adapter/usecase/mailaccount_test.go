package usecase

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"leadflow/internal/core/domain"
)

func TestResolveMailAccount_DefaultsToPrimary(t *testing.T) {
	svc, m := newTestService(t)
	userID := uuid.New()

	m.users.EXPECT().GetMailAccount(mock.Anything, userID, (*string)(nil)).
		Return(connectedAccount(userID, "main@acme.io"), nil)

	creds, err := svc.resolveMailAccount(context.Background(), userID,
		&domain.Plan{Tier: domain.TierStandard}, nil, "")
	require.NoError(t, err)
	require.Equal(t, "main@acme.io", creds.Email)
	require.Equal(t, "ya29.access", creds.AccessToken)
	require.Equal(t, "1//refresh", creds.RefreshToken)
}

func TestResolveMailAccount_NonProRequestIgnored(t *testing.T) {
	svc, m := newTestService(t)
	userID := uuid.New()

	// A standard-tier pick falls back to the primary identity.
	m.users.EXPECT().GetMailAccount(mock.Anything, userID, (*string)(nil)).
		Return(connectedAccount(userID, "main@acme.io"), nil)

	creds, err := svc.resolveMailAccount(context.Background(), userID,
		&domain.Plan{Tier: domain.TierStandard}, nil, "other@acme.io")
	require.NoError(t, err)
	require.Equal(t, "main@acme.io", creds.Email)
}

func TestResolveMailAccount_ProPicksConnectedAccount(t *testing.T) {
	svc, m := newTestService(t)
	userID := uuid.New()
	picked := "second@acme.io"

	m.users.EXPECT().ListMailAccounts(mock.Anything, userID).
		Return([]domain.MailAccount{
			{Email: "main@acme.io", Primary: true, Connected: true},
			{Email: "Second@Acme.io", Connected: true},
		}, nil)
	m.users.EXPECT().GetMailAccount(mock.Anything, userID, &picked).
		Return(connectedAccount(userID, picked), nil)

	// Matching is case-insensitive against the stored address.
	creds, err := svc.resolveMailAccount(context.Background(), userID,
		&domain.Plan{Tier: domain.TierPro}, nil, picked)
	require.NoError(t, err)
	require.Equal(t, picked, creds.Email)
}

func TestResolveMailAccount_RerunUsesStoredSender(t *testing.T) {
	svc, m := newTestService(t)
	userID := uuid.New()
	stored := "recorded@acme.io"
	existing := &domain.Campaign{ID: uuid.New(), GmailEmail: stored}

	m.users.EXPECT().GetMailAccount(mock.Anything, userID, &stored).
		Return(connectedAccount(userID, stored), nil)

	// The request's pick is irrelevant on a re-run, even for pro.
	creds, err := svc.resolveMailAccount(context.Background(), userID,
		&domain.Plan{Tier: domain.TierPro}, existing, "someone-else@acme.io")
	require.NoError(t, err)
	require.Equal(t, stored, creds.Email)
}

func TestResolveMailAccount_NotConnected(t *testing.T) {
	tests := []struct {
		name string
		acct *domain.MailAccount
	}{
		{"no account at all", nil},
		{"disconnected", &domain.MailAccount{Email: "main@acme.io", Connected: false}},
		{"connected without tokens", &domain.MailAccount{Email: "main@acme.io", Connected: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newTestService(t)
			userID := uuid.New()
			m.users.EXPECT().GetMailAccount(mock.Anything, userID, (*string)(nil)).
				Return(tt.acct, nil)

			_, err := svc.resolveMailAccount(context.Background(), userID,
				&domain.Plan{Tier: domain.TierStandard}, nil, "")
			se := statusOf(t, err)
			require.Equal(t, http.StatusBadRequest, se.Status)
			require.Contains(t, se.Message, "Gmail not connected")
		})
	}
}

func TestResolveMailAccount_RefreshesExpiredToken(t *testing.T) {
	svc, m := newTestService(t)
	userID := uuid.New()

	stale := connectedAccount(userID, "main@acme.io")
	stale.Token.Expiry = time.Now().Add(-time.Hour)

	m.users.EXPECT().GetMailAccount(mock.Anything, userID, (*string)(nil)).Return(stale, nil)
	m.tokens.EXPECT().Refresh(mock.Anything, stale.Token).
		Return(&domain.OAuthToken{
			AccessToken:  "ya29.fresh",
			RefreshToken: stale.Token.RefreshToken,
			Expiry:       time.Now().Add(time.Hour),
		}, nil)

	creds, err := svc.resolveMailAccount(context.Background(), userID,
		&domain.Plan{Tier: domain.TierStandard}, nil, "")
	require.NoError(t, err)
	require.Equal(t, "ya29.fresh", creds.AccessToken)
	require.Equal(t, "1//refresh", creds.RefreshToken)
}

func TestResolveMailAccount_RefreshFailure(t *testing.T) {
	svc, m := newTestService(t)
	userID := uuid.New()

	stale := connectedAccount(userID, "main@acme.io")
	stale.Token.Expiry = time.Now().Add(-time.Hour)

	m.users.EXPECT().GetMailAccount(mock.Anything, userID, (*string)(nil)).Return(stale, nil)
	m.tokens.EXPECT().Refresh(mock.Anything, stale.Token).
		Return(nil, errors.New("invalid_grant"))

	_, err := svc.resolveMailAccount(context.Background(), userID,
		&domain.Plan{Tier: domain.TierStandard}, nil, "")
	se := statusOf(t, err)
	require.Equal(t, http.StatusBadRequest, se.Status)
	require.Contains(t, se.Message, "Could not refresh Gmail access")
}
