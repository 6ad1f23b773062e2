// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ChannelAddress is an opaque per-channel delivery target registered by a
// recipient, e.g. an FCM device token or a browser web-push token.
type ChannelAddress struct {
	UserID    uuid.UUID `json:"user_id"`
	Channel   Channel   `json:"channel"`
	Address   string    `json:"address"`
	Platform  string    `json:"platform,omitempty"` // ios, android, web
	CreatedAt time.Time `json:"created_at"`
}

// RecipientRegistration is the per-user registration record: role, registered
// addresses grouped by channel, and per-kind notification preferences.
// Absence of a preference entry means the kind is allowed.
type RecipientRegistration struct {
	UserID             uuid.UUID             `json:"user_id"`
	Role               string                `json:"role"`
	AddressesByChannel map[Channel][]string  `json:"addresses_by_channel"`
	Preferences        map[IntentKind]bool   `json:"preferences"`
	UpdatedAt          time.Time             `json:"updated_at"`
}

// Allows reports whether the recipient accepts notifications of the given
// kind. Default-allow: only an explicit opt-out suppresses delivery.
func (r *RecipientRegistration) Allows(kind IntentKind) bool {
	if r.Preferences == nil {
		return true
	}
	enabled, ok := r.Preferences[kind]
	if !ok {
		return true
	}

	return enabled
}

// Addresses returns the registered addresses for one channel. The in-app
// channel needs no address; callers should consult Channel.Addressable.
func (r *RecipientRegistration) Addresses(channel Channel) []string {
	if r.AddressesByChannel == nil {
		return nil
	}

	return r.AddressesByChannel[channel]
}
