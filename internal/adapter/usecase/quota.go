package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"leadflow/internal/core/domain"
	"leadflow/internal/core/port"
)

// resolveQuota determines how many leads this run may request. Re-runs
// consume no new credits and reuse the campaign's creation-time allocation
// regardless of what the request asked for. New campaigns clamp the
// requested count into [1, min(300, dailyLimit)] and are rejected when the
// day's consumed credits plus the clamped count would exceed the limit.
// Read-only: calling it twice without an intervening campaign creation
// returns the same result.
func (s *Service) resolveQuota(ctx context.Context, userID uuid.UUID, plan *domain.Plan, existing *domain.Campaign, requested int) (int, error) {
	if existing != nil {
		return existing.Credits, nil
	}

	dailyLimit := plan.DailyLimit(s.now())
	if dailyLimit == 0 {
		return 0, port.Forbidden("Your trial has ended. Upgrade your plan to keep generating leads.")
	}

	maxPerCampaign := domain.MaxLeadsPerRun
	if dailyLimit < maxPerCampaign {
		maxPerCampaign = dailyLimit
	}
	target := requested
	if target < 1 {
		target = 1
	}
	if target > maxPerCampaign {
		target = maxPerCampaign
	}

	used, err := s.campaigns.CreditsUsedToday(ctx, userID)
	if err != nil {
		return 0, err
	}
	if used+target > dailyLimit {
		remaining := dailyLimit - used
		if remaining < 0 {
			remaining = 0
		}
		return 0, port.BadRequestDetails(
			"Daily lead limit exceeded",
			fmt.Sprintf("You have %d credits remaining today. This campaign requires %d credits.", remaining, target),
		)
	}
	return target, nil
}
