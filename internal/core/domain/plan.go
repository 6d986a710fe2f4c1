package domain

import (
	"time"

	"github.com/google/uuid"
)

// Tier is a billing plan tier.
type Tier string

const (
	TierTrial    Tier = "trial"
	TierStandard Tier = "standard"
	TierPro      Tier = "pro"
	TierBusiness Tier = "business"
)

// MaxLeadsPerRun is the system-wide ceiling on leads a single run may
// request, regardless of plan.
const MaxLeadsPerRun = 300

// dailyLimits maps each tier to its daily lead credit allowance. The trial
// tier borrows the standard allowance until the trial expires.
var dailyLimits = map[Tier]int{
	TierStandard: 30,
	TierPro:      100,
	TierBusiness: 250,
}

// promoTiers maps recognized promo codes to the tier they force. A promo
// code overrides the stored plan value entirely.
var promoTiers = map[string]Tier{
	"LAUNCHPRO":  TierPro,
	"AGENCY2024": TierBusiness,
	"EARLYBIRD":  TierStandard,
}

// Plan is a user's billing state as seen by the orchestration. It is
// read-only here; promo redemption and billing events mutate it elsewhere.
type Plan struct {
	UserID      uuid.UUID
	Tier        Tier
	PromoCode   string
	TrialEndsAt *time.Time
}

// EffectiveTier resolves the tier that actually applies, honoring a
// recognized promo code over the stored tier.
func (p Plan) EffectiveTier() Tier {
	if t, ok := promoTiers[p.PromoCode]; ok {
		return t
	}
	if p.Tier == "" {
		return TierTrial
	}
	return p.Tier
}

// DailyLimit returns the number of lead credits the user may consume per
// day at the given instant. An expired trial yields zero.
func (p Plan) DailyLimit(now time.Time) int {
	tier := p.EffectiveTier()
	if tier == TierTrial {
		if p.TrialEndsAt != nil && !now.Before(*p.TrialEndsAt) {
			return 0
		}
		return dailyLimits[TierStandard]
	}
	return dailyLimits[tier]
}
