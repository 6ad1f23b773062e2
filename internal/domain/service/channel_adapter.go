package service

import (
	"context"

	"courtside/internal/domain/entity"

	"github.com/google/uuid"
)

// Message is the channel-agnostic content delivered to recipients.
type Message struct {
	IntentID uuid.UUID
	Kind     entity.IntentKind
	Title    string
	Body     string
	Payload  map[string]string
	Priority entity.Priority
}

// Recipient pairs one resolved user with the addresses reserved for delivery
// on a single channel. The in-app channel carries no addresses.
type Recipient struct {
	UserID    uuid.UUID
	Addresses []string
}

// DeliveryResult aggregates per-address outcomes of one adapter call.
type DeliveryResult struct {
	// PerAddress maps address -> outcome for addressable channels.
	PerAddress map[string]AddressOutcome
	// PerUser maps userID -> success for channels that target the recipient
	// directly (in-app).
	PerUser map[uuid.UUID]AddressOutcome
}

// ChannelAdapter is a polymorphic sender for one delivery channel. Adapters
// persist nothing beyond their own delivery mechanics; the orchestrator owns
// the delivery-record ledger.
type ChannelAdapter interface {
	// Channel identifies which channel this adapter serves.
	Channel() entity.Channel

	// Deliver sends the message to every recipient and reports per-address
	// (or per-user) outcomes. Partial failure is expected; a returned error
	// means the adapter could not attempt delivery at all.
	Deliver(ctx context.Context, msg *Message, recipients []Recipient) (*DeliveryResult, error)
}
