package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestEffectiveTier(t *testing.T) {
	tests := []struct {
		name string
		plan Plan
		want Tier
	}{
		{"stored tier", Plan{Tier: TierPro}, TierPro},
		{"empty tier defaults to trial", Plan{}, TierTrial},
		{"promo LAUNCHPRO forces pro", Plan{Tier: TierStandard, PromoCode: "LAUNCHPRO"}, TierPro},
		{"promo AGENCY2024 forces business", Plan{Tier: TierTrial, PromoCode: "AGENCY2024"}, TierBusiness},
		{"promo EARLYBIRD forces standard", Plan{Tier: TierPro, PromoCode: "EARLYBIRD"}, TierStandard},
		{"unknown promo is ignored", Plan{Tier: TierBusiness, PromoCode: "FREESTUFF"}, TierBusiness},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.plan.EffectiveTier())
		})
	}
}

func TestDailyLimit(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	future := now.Add(24 * time.Hour)
	past := now.Add(-24 * time.Hour)

	tests := []struct {
		name string
		plan Plan
		want int
	}{
		{"standard", Plan{Tier: TierStandard}, 30},
		{"pro", Plan{Tier: TierPro}, 100},
		{"business", Plan{Tier: TierBusiness}, 250},
		{"open trial borrows standard", Plan{Tier: TierTrial, TrialEndsAt: &future}, 30},
		{"trial without end date stays open", Plan{Tier: TierTrial}, 30},
		{"expired trial yields nothing", Plan{Tier: TierTrial, TrialEndsAt: &past}, 0},
		{"expiry at this exact instant counts as expired", Plan{Tier: TierTrial, TrialEndsAt: &now}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.plan.DailyLimit(now))
		})
	}
}

func TestInCooldown(t *testing.T) {
	now := time.Now()
	recent := now.Add(-5 * time.Second)
	old := now.Add(-time.Minute)

	require.False(t, Campaign{}.InCooldown(now))
	require.True(t, Campaign{LastStartedAt: &recent}.InCooldown(now))
	require.False(t, Campaign{LastStartedAt: &old}.InCooldown(now))

	boundary := now.Add(-LaunchCooldown)
	require.False(t, Campaign{LastStartedAt: &boundary}.InCooldown(now))
}

func TestTokenExpired(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	require.False(t, OAuthToken{}.Expired(now), "zero expiry never expires")
	require.True(t, OAuthToken{Expiry: now.Add(-time.Hour)}.Expired(now))
	require.False(t, OAuthToken{Expiry: now.Add(time.Hour)}.Expired(now))

	// Within the refresh skew counts as expired.
	require.True(t, OAuthToken{Expiry: now.Add(30 * time.Second)}.Expired(now))
}

func TestLeadHelpers(t *testing.T) {
	require.True(t, Lead{Email: "info@shop.com"}.HasEmail())
	require.False(t, Lead{Email: NoEmailFound}.HasEmail())
	require.False(t, Lead{Email: "No Email Found"}.HasEmail())
	require.False(t, Lead{}.HasEmail())

	require.True(t, Lead{DraftEmail: "Hello"}.HasDraft())
	require.False(t, Lead{DraftEmail: "   "}.HasDraft())
}
