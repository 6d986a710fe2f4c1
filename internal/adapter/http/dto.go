package httpadapter

import (
	"time"

	"leadflow/internal/core/domain"
)

// campaignJSON is the wire shape of a campaign. Field names match what the
// dashboard pages expect; credits surface as numberCreditsUsed.
type campaignJSON struct {
	ID                 string     `json:"id"`
	Name               string     `json:"name,omitempty"`
	BusinessType       string     `json:"businessType"`
	CompanyDescription string     `json:"companyDescription,omitempty"`
	ToneOfVoice        string     `json:"toneOfVoice,omitempty"`
	CampaignGoal       string     `json:"campaignGoal,omitempty"`
	MagicLink          string     `json:"magicLink,omitempty"`
	Cities             []string   `json:"cities,omitempty"`
	CitySize           string     `json:"citySize,omitempty"`
	Mode               string     `json:"mode"`
	NumberCreditsUsed  int        `json:"numberCreditsUsed"`
	Status             string     `json:"status"`
	GmailEmail         string     `json:"gmailEmail,omitempty"`
	LastStartedAt      *time.Time `json:"lastStartedAt,omitempty"`
	CreatedAt          time.Time  `json:"createdAt"`
}

func toCampaignJSON(c domain.Campaign) campaignJSON {
	return campaignJSON{
		ID:                 c.ID.String(),
		Name:               c.Name,
		BusinessType:       c.BusinessType,
		CompanyDescription: c.CompanyDescription,
		ToneOfVoice:        string(c.ToneOfVoice),
		CampaignGoal:       string(c.Goal),
		MagicLink:          c.Link,
		Cities:             c.Cities,
		CitySize:           string(c.CitySize),
		Mode:               string(c.Mode),
		NumberCreditsUsed:  c.Credits,
		Status:             c.Status,
		GmailEmail:         c.GmailEmail,
		LastStartedAt:      c.LastStartedAt,
		CreatedAt:          c.CreatedAt,
	}
}

// leadJSON is the wire shape of a lead. hasDraft is derived so the table
// view does not need to ship full draft bodies to decide what to render.
type leadJSON struct {
	ID           string     `json:"id"`
	CampaignID   string     `json:"campaignId,omitempty"`
	BusinessType string     `json:"businessType"`
	City         string     `json:"city"`
	Country      string     `json:"country,omitempty"`
	Email        string     `json:"email"`
	Phone        string     `json:"phone,omitempty"`
	LinkedInURL  string     `json:"linkedinUrl,omitempty"`
	WebsiteURL   string     `json:"websiteUrl,omitempty"`
	DraftEmail   string     `json:"draftEmail,omitempty"`
	HasDraft     bool       `json:"hasDraft"`
	Replied      bool       `json:"replied"`
	RepliedAt    *time.Time `json:"repliedAt,omitempty"`
	ThreadID     string     `json:"threadId,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
}

func toLeadJSON(l domain.Lead) leadJSON {
	out := leadJSON{
		ID:           l.ID.String(),
		BusinessType: l.BusinessType,
		City:         l.City,
		Country:      l.Country,
		Email:        l.Email,
		Phone:        l.Phone,
		LinkedInURL:  l.LinkedInURL,
		WebsiteURL:   l.WebsiteURL,
		DraftEmail:   l.DraftEmail,
		HasDraft:     l.HasDraft(),
		Replied:      l.Replied,
		RepliedAt:    l.RepliedAt,
		ThreadID:     l.ThreadID,
		CreatedAt:    l.CreatedAt,
	}
	if l.CampaignID != nil {
		out.CampaignID = l.CampaignID.String()
	}
	return out
}

// accountJSON is the wire shape of a mail account. Tokens never leave the
// server.
type accountJSON struct {
	Email     string `json:"email"`
	Primary   bool   `json:"primary"`
	Connected bool   `json:"connected"`
}

func toAccountJSON(a domain.MailAccount) accountJSON {
	return accountJSON{Email: a.Email, Primary: a.Primary, Connected: a.Connected}
}
