// Package entity contains the core business objects of the project.
package entity

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/google/uuid"
)

// IntentKind classifies what a notification intent is about.
type IntentKind string

const (
	KindGameCreated      IntentKind = "game_created"
	KindGameClosingSoon  IntentKind = "game_closing_soon"
	KindGameClosed       IntentKind = "game_closed"
	KindTournamentUpdate IntentKind = "tournament_updated"
	KindGameConfirmation IntentKind = "game_confirmation"
	KindCustom           IntentKind = "custom"
)

// Valid reports whether the kind is one of the known intent kinds.
func (k IntentKind) Valid() bool {
	switch k {
	case KindGameCreated, KindGameClosingSoon, KindGameClosed,
		KindTournamentUpdate, KindGameConfirmation, KindCustom:
		return true
	}

	return false
}

// Priority indicates delivery urgency hints passed to the push provider.
type Priority string

const (
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "high"
)

// TargetingRule selects the recipient set of an intent.
type TargetingRule string

const (
	TargetAllUsers   TargetingRule = "all_users"
	TargetUserID     TargetingRule = "user_id"
	TargetUserIDList TargetingRule = "user_id_list"
	TargetRole       TargetingRule = "role"
)

// Targeting describes which recipients an intent addresses.
// UserIDs is consulted for TargetUserID (single element) and TargetUserIDList;
// Role is consulted for TargetRole.
type Targeting struct {
	Rule    TargetingRule `json:"rule"`
	UserIDs []uuid.UUID   `json:"user_ids,omitempty"`
	Role    string        `json:"role,omitempty"`
}

// NotificationIntent is a request to notify a set of recipients about an
// event. Immutable once created; the persisted dispatch state lives on the
// IntentRecord instead.
type NotificationIntent struct {
	ID                 uuid.UUID         `json:"id"`
	Kind               IntentKind        `json:"kind"`
	Title              string            `json:"title"`
	Body               string            `json:"body"`
	Targeting          Targeting         `json:"targeting"`
	CorrelatedEntityID string            `json:"correlated_entity_id,omitempty"` // e.g. the game or tournament ID
	Payload            map[string]string `json:"payload,omitempty"`              // opaque, passed through to clients
	Priority           Priority          `json:"priority"`
	CreatedAt          time.Time         `json:"created_at"`
}

// DispatchState tracks the orchestrator's progress for one intent.
type DispatchState string

const (
	DispatchStateCreated    DispatchState = "created"
	DispatchStateResolving  DispatchState = "resolving"
	DispatchStateReserving  DispatchState = "reserving"
	DispatchStateDelivering DispatchState = "delivering"
	DispatchStateCompleted  DispatchState = "completed"
	DispatchStateFailed     DispatchState = "failed"
)

// IntentRecord is the persisted dispatch outcome for one intent.
type IntentRecord struct {
	ID                 uuid.UUID     `json:"id"`
	Kind               IntentKind    `json:"kind"`
	CorrelatedEntityID string        `json:"correlated_entity_id,omitempty"`
	State              DispatchState `json:"state"`
	SuccessCount       int           `json:"success_count"`
	FailureCount       int           `json:"failure_count"`
	DuplicateCount     int           `json:"duplicate_count"`
	CreatedAt          time.Time     `json:"created_at"`
	UpdatedAt          time.Time     `json:"updated_at"`
}

// DeliveryKey derives the idempotency key for one (intent, recipient, channel)
// combination. The intent's creation time is truncated to the configured
// window so that repeated intents about the same entity within the window
// collapse onto the same key regardless of wall-clock jitter.
func DeliveryKey(kind IntentKind, correlatedEntityID string, userID uuid.UUID, channel Channel, createdAt time.Time, window time.Duration) string {
	bucket := createdAt.UTC().Truncate(window)

	h := sha256.New()
	h.Write([]byte(string(kind)))
	h.Write([]byte{0})
	h.Write([]byte(correlatedEntityID))
	h.Write([]byte{0})
	h.Write([]byte(userID.String()))
	h.Write([]byte{0})
	h.Write([]byte(string(channel)))
	h.Write([]byte{0})
	h.Write([]byte(bucket.Format(time.RFC3339)))

	return hex.EncodeToString(h.Sum(nil))
}
