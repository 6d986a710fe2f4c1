package domain

import (
	"time"

	"github.com/google/uuid"
)

// MaxMailAccounts caps how many mail accounts a user may connect. Only the
// pro tier may hold more than one.
const MaxMailAccounts = 3

// OAuthToken holds the credentials attached to an outbound run payload.
type OAuthToken struct {
	AccessToken  string
	RefreshToken string
	Expiry       time.Time
}

// expirySkew refreshes tokens slightly before their server-side expiry so a
// token is never forwarded with only seconds of validity left.
const expirySkew = time.Minute

// Expired reports whether the access token needs a refresh before use.
func (t OAuthToken) Expired(now time.Time) bool {
	if t.Expiry.IsZero() {
		return false
	}
	return !now.Add(expirySkew).Before(t.Expiry)
}

// MailAccount is a connected Gmail identity. The primary account carries the
// OAuth tokens; secondary accounts exist only for pro-tier senders.
type MailAccount struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Email     string
	Primary   bool
	Connected bool
	Token     OAuthToken
}

// HasTokens reports whether OAuth credentials are stored for this account.
func (a MailAccount) HasTokens() bool {
	return a.Token.RefreshToken != ""
}
