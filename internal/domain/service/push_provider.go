package service

import (
	"context"
)

// AddressOutcome is the per-address result of one multicast send.
type AddressOutcome struct {
	Address string
	Success bool
	// Reason is a failure reason code when Success is false; one of the
	// entity.Reason* constants.
	Reason string
}

// PushProvider defines the interface for token-based push delivery providers.
// Callers must chunk address lists to at most 500 per call, matching the
// provider's multicast limit.
type PushProvider interface {
	// SendMulticast sends one message to up to 500 addresses and reports a
	// per-address outcome. A returned error means the whole batch failed
	// before any per-address result was produced.
	SendMulticast(ctx context.Context, addresses []string, title, body string, data map[string]string, highPriority bool) ([]AddressOutcome, error)

	// CheckAddresses performs a dry-run send that validates addresses without
	// delivering anything, returning the ones the provider reports as
	// permanently invalid. Used by the periodic sweep.
	CheckAddresses(ctx context.Context, addresses []string) (invalid []string, err error)
}
