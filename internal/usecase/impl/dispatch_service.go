package impl

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"courtside/config"
	"courtside/internal/domain/entity"
	domainerrors "courtside/internal/domain/errors"
	"courtside/internal/domain/repository"
	"courtside/internal/domain/service"
	"courtside/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// channelPlan is the reserved work for one channel: the recipients whose
// delivery keys were claimed, keyed for record bookkeeping afterwards.
type channelPlan struct {
	channel    entity.Channel
	recipients []service.Recipient
}

type dispatchService struct {
	dispatchRepo     repository.DispatchRepository
	registrationRepo repository.RegistrationRepository
	ledger           repository.LedgerRepository
	resolver         usecase.RecipientResolver
	adapters         map[entity.Channel]service.ChannelAdapter
	publisher        service.EventPublisher
	logger           *slog.Logger

	fanoutLimit   int
	intentTimeout time.Duration
	ledgerWindow  time.Duration
	safetyMargin  time.Duration
}

// NewDispatchService creates a new dispatch service instance
func NewDispatchService(
	cfg *config.Config,
	dispatchRepo repository.DispatchRepository,
	registrationRepo repository.RegistrationRepository,
	ledger repository.LedgerRepository,
	resolver usecase.RecipientResolver,
	adapters []service.ChannelAdapter,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.DispatchUsecase {
	byChannel := make(map[entity.Channel]service.ChannelAdapter, len(adapters))
	for _, adapter := range adapters {
		byChannel[adapter.Channel()] = adapter
	}

	return &dispatchService{
		dispatchRepo:     dispatchRepo,
		registrationRepo: registrationRepo,
		ledger:           ledger,
		resolver:         resolver,
		adapters:         byChannel,
		publisher:        publisher,
		logger:           logger,
		fanoutLimit:      cfg.Dispatch.FanoutLimit,
		intentTimeout:    cfg.Dispatch.IntentTimeout,
		ledgerWindow:     cfg.Ledger.Window,
		safetyMargin:     cfg.Ledger.SafetyMargin,
	}
}

// SubmitIntent validates the input, persists an intent record, and publishes
// a dispatch event for the worker. The caller gets an accepted intent back
// immediately; resolution and delivery happen asynchronously.
func (s *dispatchService) SubmitIntent(ctx context.Context, input *usecase.IntentInput, requestID string) (*entity.NotificationIntent, error) {
	intent, err := buildIntent(input)
	if err != nil {
		return nil, err
	}

	record := &entity.IntentRecord{
		ID:                 intent.ID,
		Kind:               intent.Kind,
		CorrelatedEntityID: intent.CorrelatedEntityID,
		State:              entity.DispatchStateCreated,
		CreatedAt:          intent.CreatedAt,
		UpdatedAt:          intent.CreatedAt,
	}
	if err := s.dispatchRepo.CreateIntentRecord(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create intent record: %w", err)
	}

	event := service.NewDispatchEvent(intent, requestID)
	if err := s.publisher.PublishDispatchEvent(ctx, event); err != nil {
		// The intent is persisted but will never be picked up; mark it failed
		// so the admin endpoint shows an honest state.
		if updateErr := s.dispatchRepo.UpdateIntentState(ctx, intent.ID, entity.DispatchStateFailed, 0, 0, 0); updateErr != nil {
			s.logger.Error("Failed to mark unpublished intent as failed",
				slog.String("intent_id", intent.ID.String()),
				slog.Any("error", updateErr),
			)
		}

		return nil, fmt.Errorf("failed to publish dispatch event: %w", err)
	}

	s.logger.Info("Intent accepted",
		slog.String("intent_id", intent.ID.String()),
		slog.String("kind", string(intent.Kind)),
		slog.String("targeting_rule", string(intent.Targeting.Rule)),
	)

	return intent, nil
}

// ProcessDispatch runs one intent through resolution, reservation, delivery,
// and bookkeeping. Redelivery of the same event is safe: completed intents
// are skipped outright and the ledger absorbs re-reservations of anything
// already attempted.
func (s *dispatchService) ProcessDispatch(ctx context.Context, event *service.DispatchEvent) error {
	intent, err := intentFromEvent(event)
	if err != nil {
		return err
	}

	record, err := s.dispatchRepo.FindIntentRecordByID(ctx, intent.ID)
	if err != nil {
		return fmt.Errorf("failed to load intent record: %w", err)
	}
	if record.State == entity.DispatchStateCompleted {
		s.logger.Info("Intent already completed, skipping redelivery",
			slog.String("intent_id", intent.ID.String()),
		)

		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.intentTimeout)
	defer cancel()

	if err := s.dispatchRepo.UpdateIntentState(ctx, intent.ID, entity.DispatchStateResolving, 0, 0, 0); err != nil {
		return fmt.Errorf("failed to enter resolving state: %w", err)
	}

	recipients, err := s.resolver.Resolve(ctx, intent)
	if err != nil {
		s.markFailed(ctx, intent.ID, 0, 0, 0)

		return fmt.Errorf("failed to resolve recipients: %w", err)
	}

	if err := s.dispatchRepo.UpdateIntentState(ctx, intent.ID, entity.DispatchStateReserving, 0, 0, 0); err != nil {
		return fmt.Errorf("failed to enter reserving state: %w", err)
	}

	plans, records := s.reserve(ctx, intent, recipients)

	if err := s.dispatchRepo.UpdateIntentState(ctx, intent.ID, entity.DispatchStateDelivering, 0, 0, 0); err != nil {
		return fmt.Errorf("failed to enter delivering state: %w", err)
	}

	records = append(records, s.deliver(ctx, intent, plans)...)

	// Bookkeeping must survive an expired intent deadline, otherwise a
	// timeout would also lose the records that explain it.
	bookCtx := context.WithoutCancel(ctx)

	success, failure, duplicate := tally(records)
	if err := s.dispatchRepo.BatchCreateDeliveries(bookCtx, records); err != nil {
		s.markFailed(bookCtx, intent.ID, success, failure, duplicate)

		return fmt.Errorf("failed to persist delivery records: %w", err)
	}

	if err := s.dispatchRepo.UpdateIntentState(bookCtx, intent.ID, entity.DispatchStateCompleted, success, failure, duplicate); err != nil {
		return fmt.Errorf("failed to complete intent: %w", err)
	}

	s.logger.Info("Intent dispatched",
		slog.String("intent_id", intent.ID.String()),
		slog.Int("success", success),
		slog.Int("failure", failure),
		slog.Int("duplicate", duplicate),
	)

	return nil
}

// GetIntentRecord retrieves the dispatch record of one intent.
func (s *dispatchService) GetIntentRecord(ctx context.Context, id uuid.UUID) (*entity.IntentRecord, error) {
	return s.dispatchRepo.FindIntentRecordByID(ctx, id)
}

// reserve claims a delivery key for every eligible (recipient, channel) pair.
// Duplicates become skipped_duplicate records immediately; reservation errors
// become failed records so one ledger hiccup cannot sink the whole intent.
func (s *dispatchService) reserve(ctx context.Context, intent *entity.NotificationIntent, recipients []*usecase.ResolvedRecipient) ([]channelPlan, []*entity.DeliveryRecord) {
	expiresAt := intent.CreatedAt.UTC().Truncate(s.ledgerWindow).Add(s.ledgerWindow + s.safetyMargin)

	plans := make([]channelPlan, 0, len(entity.ChannelOrder))
	var records []*entity.DeliveryRecord

	for _, channel := range entity.ChannelOrder {
		if _, ok := s.adapters[channel]; !ok {
			continue
		}

		plan := channelPlan{channel: channel}
		for _, recipient := range recipients {
			registration := recipient.Registration

			addresses := registration.Addresses(channel)
			if channel.Addressable() && len(addresses) == 0 {
				// Nothing registered for this channel; not a failure.
				continue
			}

			key := entity.DeliveryKey(intent.Kind, intent.CorrelatedEntityID, registration.UserID, channel, intent.CreatedAt, s.ledgerWindow)
			if err := s.ledger.Reserve(ctx, key, expiresAt); err != nil {
				if errors.Is(err, repository.ErrDuplicateReservation) {
					records = append(records, s.newRecord(intent, registration.UserID, channel, "", entity.DeliverySkippedDuplicate, ""))

					continue
				}

				s.logger.Error("Ledger reservation failed",
					slog.String("intent_id", intent.ID.String()),
					slog.String("user_id", registration.UserID.String()),
					slog.String("channel", string(channel)),
					slog.Any("error", err),
				)
				records = append(records, s.newRecord(intent, registration.UserID, channel, "", entity.DeliveryFailed, entity.ReasonProviderError))

				continue
			}

			plan.recipients = append(plan.recipients, service.Recipient{
				UserID:    registration.UserID,
				Addresses: addresses,
			})
		}

		if len(plan.recipients) > 0 {
			plans = append(plans, plan)
		}
	}

	return plans, records
}

// deliver fans the reserved plans out to their channel adapters with bounded
// concurrency and converts adapter outcomes into delivery records. Channels
// are independent: an adapter error fails only its own recipients.
func (s *dispatchService) deliver(ctx context.Context, intent *entity.NotificationIntent, plans []channelPlan) []*entity.DeliveryRecord {
	msg := &service.Message{
		IntentID: intent.ID,
		Kind:     intent.Kind,
		Title:    intent.Title,
		Body:     intent.Body,
		Payload:  intent.Payload,
		Priority: intent.Priority,
	}

	var mu sync.Mutex
	var records []*entity.DeliveryRecord

	group := &errgroup.Group{}
	group.SetLimit(s.fanoutLimit)

	for _, plan := range plans {
		group.Go(func() error {
			adapter := s.adapters[plan.channel]

			result, err := adapter.Deliver(ctx, msg, plan.recipients)

			channelRecords := s.recordOutcomes(ctx, intent, plan, result, err)

			mu.Lock()
			records = append(records, channelRecords...)
			mu.Unlock()

			return nil
		})
	}

	// Adapter errors are folded into records, so the group never errors.
	_ = group.Wait()

	return records
}

// recordOutcomes turns one adapter result into per-recipient delivery records
// and inline-reaps addresses the provider reported as permanently invalid.
func (s *dispatchService) recordOutcomes(ctx context.Context, intent *entity.NotificationIntent, plan channelPlan, result *service.DeliveryResult, deliverErr error) []*entity.DeliveryRecord {
	records := make([]*entity.DeliveryRecord, 0, len(plan.recipients))

	if deliverErr != nil {
		reason := entity.ReasonProviderError
		if errors.Is(deliverErr, context.DeadlineExceeded) {
			reason = entity.ReasonTimeout
		}
		s.logger.Error("Channel delivery failed",
			slog.String("intent_id", intent.ID.String()),
			slog.String("channel", string(plan.channel)),
			slog.Any("error", deliverErr),
		)

		for _, recipient := range plan.recipients {
			records = append(records, s.newRecord(intent, recipient.UserID, plan.channel, "", entity.DeliveryFailed, reason))
		}

		return records
	}

	for _, recipient := range plan.recipients {
		if !plan.channel.Addressable() {
			outcome := result.PerUser[recipient.UserID]
			status := entity.DeliverySent
			if !outcome.Success {
				status = entity.DeliveryFailed
			}
			records = append(records, s.newRecord(intent, recipient.UserID, plan.channel, "", status, outcome.Reason))

			continue
		}

		record := s.newRecord(intent, recipient.UserID, plan.channel, "", entity.DeliveryFailed, entity.ReasonProviderError)
		invalidOnly := true
		for _, address := range recipient.Addresses {
			outcome, ok := result.PerAddress[address]
			if !ok {
				// The adapter never produced an outcome, which only happens
				// when the deadline cut the chunk loop short.
				outcome = service.AddressOutcome{Address: address, Reason: entity.ReasonTimeout}
			}

			if outcome.Success {
				record.Status = entity.DeliverySent
				record.Reason = ""
				record.Address = address
				invalidOnly = false

				continue
			}

			if outcome.Reason == entity.ReasonInvalidAddress {
				s.reapAddress(ctx, recipient.UserID, plan.channel, address)
			} else {
				invalidOnly = false
			}

			if record.Status == entity.DeliveryFailed {
				record.Reason = outcome.Reason
				record.Address = address
			}
		}

		if record.Status == entity.DeliveryFailed && invalidOnly {
			record.Reason = entity.ReasonInvalidAddress
		}

		records = append(records, record)
	}

	return records
}

// reapAddress removes one permanently invalid address right after the failed
// attempt, so the next dispatch does not try it again.
func (s *dispatchService) reapAddress(ctx context.Context, userID uuid.UUID, channel entity.Channel, address string) {
	if err := s.registrationRepo.RemoveAddress(context.WithoutCancel(ctx), userID, channel, address); err != nil {
		s.logger.Error("Failed to reap invalid address",
			slog.String("user_id", userID.String()),
			slog.String("channel", string(channel)),
			slog.Any("error", err),
		)

		return
	}

	s.logger.Info("Reaped invalid address",
		slog.String("user_id", userID.String()),
		slog.String("channel", string(channel)),
	)
}

func (s *dispatchService) newRecord(intent *entity.NotificationIntent, userID uuid.UUID, channel entity.Channel, address string, status entity.DeliveryStatus, reason string) *entity.DeliveryRecord {
	return &entity.DeliveryRecord{
		ID:          uuid.New(),
		IntentID:    intent.ID,
		UserID:      userID,
		Channel:     channel,
		Address:     address,
		Status:      status,
		Reason:      reason,
		Title:       intent.Title,
		Body:        intent.Body,
		Payload:     intent.Payload,
		AttemptedAt: time.Now().UTC(),
	}
}

func (s *dispatchService) markFailed(ctx context.Context, id uuid.UUID, success, failure, duplicate int) {
	if err := s.dispatchRepo.UpdateIntentState(ctx, id, entity.DispatchStateFailed, success, failure, duplicate); err != nil {
		s.logger.Error("Failed to mark intent as failed",
			slog.String("intent_id", id.String()),
			slog.Any("error", err),
		)
	}
}

func tally(records []*entity.DeliveryRecord) (success, failure, duplicate int) {
	for _, record := range records {
		switch record.Status {
		case entity.DeliverySent:
			success++
		case entity.DeliveryFailed:
			failure++
		case entity.DeliverySkippedDuplicate:
			duplicate++
		}
	}

	return success, failure, duplicate
}

// buildIntent validates the raw input and materializes the immutable intent.
func buildIntent(input *usecase.IntentInput) (*entity.NotificationIntent, error) {
	if input == nil {
		return nil, domainerrors.ErrInvalidIntent.WrapMessage("intent input is required")
	}

	kind := entity.IntentKind(input.Kind)
	if !kind.Valid() {
		return nil, domainerrors.ErrInvalidIntent.WrapMessage("unknown intent kind: " + input.Kind)
	}
	if input.Title == "" || input.Body == "" {
		return nil, domainerrors.ErrInvalidIntent.WrapMessage("title and body are required")
	}

	rule := entity.TargetingRule(input.TargetingRule)
	targeting := entity.Targeting{Rule: rule, Role: input.TargetRole}

	switch rule {
	case entity.TargetAllUsers:
		// No further fields required.
	case entity.TargetUserID:
		if len(input.TargetUserIDs) != 1 {
			return nil, domainerrors.ErrInvalidIntent.WrapMessage("user_id targeting requires exactly one user ID")
		}
	case entity.TargetUserIDList:
		if len(input.TargetUserIDs) == 0 {
			return nil, domainerrors.ErrInvalidIntent.WrapMessage("user_id_list targeting requires at least one user ID")
		}
	case entity.TargetRole:
		if input.TargetRole == "" {
			return nil, domainerrors.ErrInvalidIntent.WrapMessage("role targeting requires a role")
		}
	default:
		return nil, domainerrors.ErrInvalidIntent.WrapMessage("unknown targeting rule: " + input.TargetingRule)
	}

	for _, raw := range input.TargetUserIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, domainerrors.ErrInvalidIntent.WrapMessage("invalid target user ID " + raw)
		}
		targeting.UserIDs = append(targeting.UserIDs, id)
	}

	priority := entity.Priority(input.Priority)
	if priority == "" {
		priority = entity.PriorityNormal
	}
	if priority != entity.PriorityNormal && priority != entity.PriorityHigh {
		return nil, domainerrors.ErrInvalidIntent.WrapMessage("unknown priority: " + input.Priority)
	}

	return &entity.NotificationIntent{
		ID:                 uuid.New(),
		Kind:               kind,
		Title:              input.Title,
		Body:               input.Body,
		Targeting:          targeting,
		CorrelatedEntityID: input.CorrelatedEntityID,
		Payload:            input.Payload,
		Priority:           priority,
		CreatedAt:          time.Now().UTC(),
	}, nil
}

// intentFromEvent reconstructs the intent from its published wire form.
func intentFromEvent(event *service.DispatchEvent) (*entity.NotificationIntent, error) {
	if event == nil {
		return nil, errors.New("dispatch event is required")
	}

	id, err := uuid.Parse(event.IntentID)
	if err != nil {
		return nil, errors.Wrap(err, "invalid intent ID in event")
	}

	createdAt, err := time.Parse(time.RFC3339Nano, event.CreatedAt)
	if err != nil {
		return nil, errors.Wrap(err, "invalid created_at in event")
	}

	targeting := entity.Targeting{
		Rule: entity.TargetingRule(event.TargetingRule),
		Role: event.TargetRole,
	}
	for _, raw := range event.TargetUserIDs {
		userID, err := uuid.Parse(raw)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid target user ID %q in event", raw)
		}
		targeting.UserIDs = append(targeting.UserIDs, userID)
	}

	return &entity.NotificationIntent{
		ID:                 id,
		Kind:               entity.IntentKind(event.Kind),
		Title:              event.Title,
		Body:               event.Body,
		Targeting:          targeting,
		CorrelatedEntityID: event.CorrelatedEntityID,
		Payload:            event.Payload,
		Priority:           entity.Priority(event.Priority),
		CreatedAt:          createdAt,
	}, nil
}
