package usecase

import "context"

// SweepReport summarizes one reaper sweep and retention pass.
type SweepReport struct {
	AddressesChecked int   `json:"addresses_checked"`
	AddressesReaped  int   `json:"addresses_reaped"`
	LedgerPurged     int64 `json:"ledger_purged"`
	DeliveriesPurged int64 `json:"deliveries_purged"`
}

// ReaperUsecase defines the stale-address sweep and retention use cases.
// Inline reaping after a failed delivery lives in the dispatch pipeline;
// this is the periodic pass that catches addresses that went stale without
// ever being targeted.
type ReaperUsecase interface {
	// Sweep verifies every addressable registration in batches against the
	// push provider's dry-run check, removes the permanently invalid ones,
	// and purges expired ledger entries and aged delivery records.
	Sweep(ctx context.Context) (*SweepReport, error)
}
