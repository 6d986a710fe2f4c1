package domain

import "github.com/google/uuid"

// DeliveryMode controls whether scheduled runs leave drafts in the mailbox
// or hand them to the send queue.
type DeliveryMode string

const (
	DeliveryDrafts DeliveryMode = "drafts"
	DeliveryQueue  DeliveryMode = "queue"
)

// Schedule is a user's automatic launch preference. The Nth campaign in
// CampaignIDs runs at LaunchTime + N hours in the user's local timezone,
// not simultaneously.
type Schedule struct {
	UserID       uuid.UUID
	LaunchTime   string // "HH:MM", 24h clock
	Timezone     string // IANA zone name
	CampaignIDs  []uuid.UUID
	DeliveryMode DeliveryMode
}

func (m DeliveryMode) Valid() bool {
	return m == DeliveryDrafts || m == DeliveryQueue
}
