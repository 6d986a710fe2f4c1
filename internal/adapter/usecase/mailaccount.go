package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"leadflow/internal/core/domain"
	"leadflow/internal/core/port"
)

// mailCredentials is what the resolver hands to the payload builder. The
// tokens are forwarded downstream and never persisted back.
type mailCredentials struct {
	Email        string
	AccessToken  string
	RefreshToken string
}

// resolveMailAccount picks which connected account's credentials to attach
// to the run. Re-runs use the campaign's recorded address verbatim; a pro
// user may pick any of their connected accounts for a new campaign;
// everyone else sends from the primary account (nil sentinel into the
// account lookup).
func (s *Service) resolveMailAccount(ctx context.Context, userID uuid.UUID, plan *domain.Plan, existing *domain.Campaign, requested string) (*mailCredentials, error) {
	var email *string
	switch {
	case existing != nil && existing.GmailEmail != "":
		e := existing.GmailEmail
		email = &e
	case requested != "" && plan.EffectiveTier() == domain.TierPro:
		accounts, err := s.users.ListMailAccounts(ctx, userID)
		if err != nil {
			return nil, err
		}
		found := false
		for _, a := range accounts {
			if a.Connected && strings.EqualFold(a.Email, requested) {
				found = true
				break
			}
		}
		if !found {
			return nil, port.BadRequest("Selected Gmail account not found or not connected. Reconnect it in your mail settings.")
		}
		e := requested
		email = &e
	default:
		// Non-pro tiers and pro users with no explicit pick always use
		// the primary identity.
		email = nil
	}

	acct, err := s.users.GetMailAccount(ctx, userID, email)
	if err != nil {
		return nil, err
	}
	if acct == nil || !acct.Connected || !acct.HasTokens() {
		return nil, port.BadRequest("Gmail not connected. Connect your Gmail account before launching a campaign.")
	}

	token := acct.Token
	if token.Expired(s.now()) {
		refreshed, refreshErr := s.tokens.Refresh(ctx, token)
		if refreshErr != nil {
			return nil, port.BadRequest("Could not refresh Gmail access. Reconnect your Gmail account and try again.")
		}
		token = *refreshed
	}

	return &mailCredentials{
		Email:        acct.Email,
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
	}, nil
}
