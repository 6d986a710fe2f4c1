package port

import (
	"context"
	"errors"

	"leadflow/internal/core/domain"
)

// NotifyStatus records whether the external workflow engine was informed of
// a run. Campaign state is committed before the webhook fires, so a failed
// or indeterminate notification still yields a successful launch.
type NotifyStatus string

const (
	// NotifyDelivered means the webhook accepted the payload.
	NotifyDelivered NotifyStatus = "delivered"
	// NotifyFailed means the webhook was unreachable or rejected the
	// payload. The engine was most likely not informed.
	NotifyFailed NotifyStatus = "failed"
	// NotifyIndeterminate means the call timed out; the workflow may have
	// started despite the client not observing a response.
	NotifyIndeterminate NotifyStatus = "indeterminate"
)

// TriggerPayload is the JSON body posted to the workflow engine. Cities and
// CitySize are mutually exclusive on the wire so the engine never has to
// guess which targeting mode is active; City is additionally set when
// exactly one city is targeted so the engine cannot fall back to unrelated
// cities.
type TriggerPayload struct {
	UserID             string   `json:"userId"`
	CampaignID         string   `json:"campaignId"`
	BusinessType       string   `json:"businessType"`
	CompanyDescription string   `json:"companyDescription"`
	ToneOfVoice        string   `json:"toneOfVoice,omitempty"`
	CampaignGoal       string   `json:"campaignGoal,omitempty"`
	MagicLink          string   `json:"magicLink,omitempty"`
	Mode               string   `json:"mode"`
	City               string   `json:"city,omitempty"`
	Cities             []string `json:"cities,omitempty"`
	CitySize           string   `json:"citySize,omitempty"`
	Country            string   `json:"country,omitempty"`
	TargetCount        int      `json:"targetCount"`
	GmailEmail         string   `json:"gmailEmail"`
	AccessToken        string   `json:"accessToken"`
	RefreshToken       string   `json:"refreshToken"`
	ExampleEmail       string   `json:"exampleEmail,omitempty"`
	BusinessLinkText   string   `json:"businessLinkText,omitempty"`
}

// Validate checks the payload invariants once at construction time instead
// of guarding each field at every call site.
func (p TriggerPayload) Validate() error {
	switch {
	case p.UserID == "":
		return errors.New("trigger payload: missing userId")
	case p.CampaignID == "":
		return errors.New("trigger payload: missing campaignId")
	case p.BusinessType == "":
		return errors.New("trigger payload: missing businessType")
	case p.TargetCount <= 0:
		return errors.New("trigger payload: targetCount must be positive")
	case len(p.Cities) > 0 && p.CitySize != "":
		return errors.New("trigger payload: cities and citySize are mutually exclusive")
	}
	return nil
}

// TriggerClient posts run payloads to the external workflow engine.
type TriggerClient interface {
	// Ready reports whether an endpoint is configured for the mode. It is
	// checked before any state is committed so a misconfiguration fails
	// the request instead of stranding a half-launched campaign.
	Ready(mode domain.Mode) error
	// Trigger posts the payload. The returned error carries diagnostic
	// detail for logging; callers decide how much of it is fatal based on
	// the NotifyStatus, which is always set.
	Trigger(ctx context.Context, mode domain.Mode, p TriggerPayload) (NotifyStatus, error)
}

// TokenRefresher exchanges an expired OAuth token for a fresh one.
type TokenRefresher interface {
	Refresh(ctx context.Context, t domain.OAuthToken) (*domain.OAuthToken, error)
}
