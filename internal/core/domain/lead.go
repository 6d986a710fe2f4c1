package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// NoEmailFound is the sentinel the workflow engine writes when it could not
// discover a contact address for a prospect.
const NoEmailFound = "no email found"

// Lead is a prospect record produced by the external workflow engine. A nil
// CampaignID means the row predates explicit campaign linkage and is only
// matched to a campaign by the legacy heuristic.
type Lead struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	CampaignID   *uuid.UUID
	BusinessType string
	City         string
	Country      string
	Email        string
	Phone        string
	LinkedInURL  string
	WebsiteURL   string
	DraftEmail   string
	Replied      bool
	RepliedAt    *time.Time
	ThreadID     string
	CreatedAt    time.Time
}

// HasDraft reports whether the engine produced a usable email draft.
func (l Lead) HasDraft() bool {
	return strings.TrimSpace(l.DraftEmail) != ""
}

// HasEmail reports whether a real contact address was found.
func (l Lead) HasEmail() bool {
	return l.Email != "" && !strings.EqualFold(l.Email, NoEmailFound)
}
