package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"leadflow/internal/core/domain"
	"leadflow/internal/core/port"
)

const (
	descriptionMinLen = 50
	descriptionMaxLen = 500
)

// Launch runs the campaign launch orchestration. Steps execute in a fixed
// sequence because later steps depend on state established earlier: plan
// lookup, campaign lookup + cooldown, mail account resolution, validation,
// quota, campaign create/reuse, city resolution, lead unlink, last-started
// bump, webhook trigger, best-effort template save. Every recoverable
// failure is returned as a *port.StatusError before the first write.
func (s *Service) Launch(ctx context.Context, userID uuid.UUID, req port.LaunchRequest) (*port.LaunchResult, error) {
	mode := domain.ModeStandard
	if req.Mode != "" {
		mode = domain.Mode(req.Mode)
		if !mode.Valid() {
			return nil, port.BadRequest("mode must be standard or local_businesses")
		}
	}

	plan, err := s.loadPlan(ctx, userID)
	if err != nil {
		return nil, err
	}

	// Re-run: load the existing campaign and reject duplicate submissions
	// inside the cooldown window before anything is mutated.
	var existing *domain.Campaign
	if req.CampaignID != "" {
		id, parseErr := uuid.Parse(req.CampaignID)
		if parseErr != nil {
			return nil, port.BadRequest("campaignId is not a valid id")
		}
		existing, err = s.campaigns.GetForUser(ctx, id, userID)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			return nil, port.NotFound("Campaign not found")
		}
		if existing.InCooldown(s.now()) {
			return nil, port.TooManyRequests(
				"This campaign was just started",
				"Wait a few seconds before starting it again.",
			)
		}
	}

	creds, err := s.resolveMailAccount(ctx, userID, plan, existing, req.GmailEmail)
	if err != nil {
		return nil, err
	}

	if err = validateLaunch(req, existing); err != nil {
		return nil, err
	}

	target, err := s.resolveQuota(ctx, userID, plan, existing, req.TargetCount)
	if err != nil {
		return nil, err
	}

	// Fail fast on a missing webhook URL while the request is still
	// side-effect free.
	if err = s.trigger.Ready(mode); err != nil {
		return nil, err
	}

	camp := existing
	if camp == nil {
		camp, err = s.campaigns.Create(ctx, domain.Campaign{
			UserID:             userID,
			Name:               req.Name,
			BusinessType:       req.BusinessType,
			CompanyDescription: req.CompanyDescription,
			ToneOfVoice:        domain.Tone(req.ToneOfVoice),
			Goal:               domain.Goal(req.CampaignGoal),
			Link:               req.MagicLink,
			Cities:             req.Cities,
			CitySize:           domain.CityBracket(req.CitySize),
			Mode:               mode,
			Credits:            target,
			Status:             domain.StatusActive,
			GmailEmail:         creds.Email,
		})
		if err != nil {
			return nil, err
		}
	}

	geo, err := s.resolveTarget(ctx, camp, existing != nil, req)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		unlinked, unlinkErr := s.leads.Unlink(ctx, camp.ID)
		if unlinkErr != nil {
			return nil, unlinkErr
		}
		s.logger.Info("unlinked previous run's leads",
			slog.String("campaign_id", camp.ID.String()),
			slog.Int64("count", unlinked))
	}

	// Bump last-started optimistically; it is not tied to the webhook
	// call's success.
	startedAt := s.now().UTC()
	if err = s.campaigns.SetLastStartedAt(ctx, camp.ID, startedAt); err != nil {
		return nil, err
	}
	camp.LastStartedAt = &startedAt

	payload := port.TriggerPayload{
		UserID:             userID.String(),
		CampaignID:         camp.ID.String(),
		BusinessType:       camp.BusinessType,
		CompanyDescription: camp.CompanyDescription,
		ToneOfVoice:        string(camp.ToneOfVoice),
		CampaignGoal:       string(camp.Goal),
		MagicLink:          camp.Link,
		Mode:               string(mode),
		City:               geo.City,
		Cities:             geo.Cities,
		CitySize:           geo.CitySize,
		Country:            geo.Country,
		TargetCount:        target,
		GmailEmail:         creds.Email,
		AccessToken:        creds.AccessToken,
		RefreshToken:       creds.RefreshToken,
		ExampleEmail:       req.ExampleEmail,
		BusinessLinkText:   req.BusinessLinkText,
	}
	if err = payload.Validate(); err != nil {
		return nil, err
	}

	// Campaign state is committed; a flaky engine must not fail the
	// request now. The notify status carries the distinction instead.
	notify, triggerErr := s.trigger.Trigger(ctx, mode, payload)
	if triggerErr != nil {
		s.logger.Warn("workflow trigger failed",
			slog.String("campaign_id", camp.ID.String()),
			slog.String("status", string(notify)),
			slog.Any("error", triggerErr))
	}

	if existing == nil && camp.CompanyDescription != "" {
		if saveErr := s.campaigns.SaveDescriptionTemplate(ctx, userID, camp.CompanyDescription); saveErr != nil {
			s.logger.Warn("could not save description template", slog.Any("error", saveErr))
		}
	}

	msg := "Campaign launched"
	if existing != nil {
		msg = "Campaign restarted"
	}
	return &port.LaunchResult{Campaign: *camp, Notify: notify, Message: msg}, nil
}

// validateLaunch checks the request fields that do not need repository
// state. Description and target count are only required for new campaigns;
// re-runs inherit them from the stored record.
func validateLaunch(req port.LaunchRequest, existing *domain.Campaign) error {
	if existing == nil {
		if strings.TrimSpace(req.BusinessType) == "" {
			return port.BadRequest("businessType is required")
		}
		n := len(strings.TrimSpace(req.CompanyDescription))
		if n < descriptionMinLen || n > descriptionMaxLen {
			return port.BadRequest(fmt.Sprintf(
				"companyDescription must be between %d and %d characters",
				descriptionMinLen, descriptionMaxLen))
		}
		if req.TargetCount <= 0 {
			return port.BadRequest("targetCount is required")
		}
	}
	if req.ToneOfVoice != "" && !domain.Tone(req.ToneOfVoice).Valid() {
		return port.BadRequest("toneOfVoice must be one of professional, casual, direct, empathetic")
	}
	if req.CampaignGoal != "" && !domain.Goal(req.CampaignGoal).Valid() {
		return port.BadRequest("campaignGoal must be one of book_call, free_audit, send_brochure")
	}
	if req.CitySize != "" && !domain.CityBracket(req.CitySize).Valid() {
		return port.BadRequest("citySize is not a recognized population bracket")
	}
	return nil
}
