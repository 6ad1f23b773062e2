package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"courtside/config"
	"courtside/internal/domain/entity"
	"courtside/internal/domain/repository"
	"courtside/internal/domain/service"
	"courtside/internal/usecase"
)

type reaperService struct {
	registrationRepo repository.RegistrationRepository
	dispatchRepo     repository.DispatchRepository
	ledger           repository.LedgerRepository
	pushProvider     service.PushProvider
	logger           *slog.Logger

	batchSize     int
	retentionDays int
}

// NewReaperService creates a new reaper service instance
func NewReaperService(
	cfg *config.Config,
	registrationRepo repository.RegistrationRepository,
	dispatchRepo repository.DispatchRepository,
	ledger repository.LedgerRepository,
	pushProvider service.PushProvider,
	logger *slog.Logger,
) usecase.ReaperUsecase {
	return &reaperService{
		registrationRepo: registrationRepo,
		dispatchRepo:     dispatchRepo,
		ledger:           ledger,
		pushProvider:     pushProvider,
		logger:           logger,
		batchSize:        cfg.Sweep.BatchSize,
		retentionDays:    cfg.Sweep.RetentionDays,
	}
}

// Sweep verifies every push-capable address against the provider's dry-run
// check, removes the permanently invalid ones, and runs the retention purges.
// A provider error on one batch skips that batch and keeps sweeping; stale
// addresses it missed are caught on the next pass.
func (s *reaperService) Sweep(ctx context.Context) (*usecase.SweepReport, error) {
	report := &usecase.SweepReport{}

	for _, channel := range entity.ChannelOrder {
		if !channel.Addressable() {
			continue
		}

		if err := s.sweepChannel(ctx, channel, report); err != nil {
			return nil, err
		}
	}

	ledgerPurged, err := s.ledger.PurgeExpired(ctx, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("failed to purge expired ledger entries: %w", err)
	}
	report.LedgerPurged = ledgerPurged

	cutoff := time.Now().UTC().AddDate(0, 0, -s.retentionDays)
	deliveriesPurged, err := s.dispatchRepo.PurgeDeliveriesBefore(ctx, cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to purge aged delivery records: %w", err)
	}
	report.DeliveriesPurged = deliveriesPurged

	s.logger.Info("Sweep completed",
		slog.Int("addresses_checked", report.AddressesChecked),
		slog.Int("addresses_reaped", report.AddressesReaped),
		slog.Int64("ledger_purged", report.LedgerPurged),
		slog.Int64("deliveries_purged", report.DeliveriesPurged),
	)

	return report, nil
}

func (s *reaperService) sweepChannel(ctx context.Context, channel entity.Channel, report *usecase.SweepReport) error {
	offset := 0
	for {
		addresses, err := s.registrationRepo.ListAddresses(ctx, channel, s.batchSize, offset)
		if err != nil {
			return fmt.Errorf("failed to list %s addresses: %w", channel, err)
		}
		if len(addresses) == 0 {
			return nil
		}

		tokens := make([]string, 0, len(addresses))
		owners := make(map[string]*entity.ChannelAddress, len(addresses))
		for _, address := range addresses {
			tokens = append(tokens, address.Address)
			owners[address.Address] = address
		}

		report.AddressesChecked += len(tokens)

		invalid, err := s.pushProvider.CheckAddresses(ctx, tokens)
		if err != nil {
			s.logger.Error("Address check batch failed",
				slog.String("channel", string(channel)),
				slog.Int("batch_size", len(tokens)),
				slog.Any("error", err),
			)
			offset += len(addresses)

			continue
		}

		removed := 0
		for _, token := range invalid {
			owner, ok := owners[token]
			if !ok {
				continue
			}
			if err := s.registrationRepo.RemoveAddress(ctx, owner.UserID, channel, token); err != nil {
				s.logger.Error("Failed to remove stale address",
					slog.String("user_id", owner.UserID.String()),
					slog.String("channel", string(channel)),
					slog.Any("error", err),
				)

				continue
			}
			removed++
			report.AddressesReaped++
		}

		// Removals shift the pages underneath the walk; advance by what
		// actually stayed so no address is skipped. A failed removal leaves
		// its row in place and is retried on the next pass.
		offset += len(addresses) - removed

		if len(addresses) < s.batchSize {
			return nil
		}
	}
}
