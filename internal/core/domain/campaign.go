package domain

import (
	"time"

	"github.com/google/uuid"
)

// Tone is the voice the drafted outreach emails are written in.
type Tone string

const (
	ToneProfessional Tone = "professional"
	ToneCasual       Tone = "casual"
	ToneDirect       Tone = "direct"
	ToneEmpathetic   Tone = "empathetic"
)

// Goal is the call to action a campaign drives towards.
type Goal string

const (
	GoalBookCall     Goal = "book_call"
	GoalFreeAudit    Goal = "free_audit"
	GoalSendBrochure Goal = "send_brochure"
)

// Mode selects which downstream workflow handles the run.
type Mode string

const (
	ModeStandard        Mode = "standard"
	ModeLocalBusinesses Mode = "local_businesses"
)

const (
	StatusActive    = "active"
	StatusCompleted = "completed"
)

// Campaign is a user-configured targeting/messaging profile. Credits is
// fixed at creation time; re-running a campaign never allocates new credits.
// When Cities is non-empty it takes precedence over CitySize for target
// resolution.
type Campaign struct {
	ID                 uuid.UUID
	UserID             uuid.UUID
	Name               string
	BusinessType       string
	CompanyDescription string
	ToneOfVoice        Tone
	Goal               Goal
	Link               string
	Cities             []string
	CitySize           CityBracket
	Mode               Mode
	Credits            int
	Status             string
	GmailEmail         string
	LastStartedAt      *time.Time
	CreatedAt          time.Time
}

// LaunchCooldown is the minimum gap between two runs of the same campaign.
// It absorbs duplicate double-clicks from the browser, nothing more.
const LaunchCooldown = 15 * time.Second

// InCooldown reports whether a re-run at now would fall inside the cooldown
// window following the previous run.
func (c Campaign) InCooldown(now time.Time) bool {
	if c.LastStartedAt == nil {
		return false
	}
	return now.Sub(*c.LastStartedAt) < LaunchCooldown
}

func (t Tone) Valid() bool {
	switch t {
	case ToneProfessional, ToneCasual, ToneDirect, ToneEmpathetic:
		return true
	}
	return false
}

func (g Goal) Valid() bool {
	switch g {
	case GoalBookCall, GoalFreeAudit, GoalSendBrochure:
		return true
	}
	return false
}

func (m Mode) Valid() bool {
	switch m {
	case ModeStandard, ModeLocalBusinesses:
		return true
	}
	return false
}
