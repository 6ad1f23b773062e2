// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"encoding/json"
	"time"

	"courtside/internal/domain/entity"
	domainerrors "courtside/internal/domain/errors"
	"courtside/internal/domain/repository"
	"courtside/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// dispatchRepository implements the repository.DispatchRepository interface.
type dispatchRepository struct {
	db *gorm.DB
}

// NewDispatchRepository is the constructor for dispatchRepository.
func NewDispatchRepository(db *gorm.DB) repository.DispatchRepository {
	return &dispatchRepository{
		db: db,
	}
}

// CreateIntentRecord persists the dispatch record for a new intent.
func (repo *dispatchRepository) CreateIntentRecord(ctx context.Context, record *entity.IntentRecord) error {
	recordM := fromIntentRecordDomain(record)

	if err := repo.db.WithContext(ctx).Create(recordM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("intent record already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required intent information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create intent record")
	}

	record.CreatedAt = recordM.CreatedAt
	record.UpdatedAt = recordM.UpdatedAt

	return nil
}

// FindIntentRecordByID retrieves one intent's dispatch record.
func (repo *dispatchRepository) FindIntentRecordByID(ctx context.Context, id uuid.UUID) (*entity.IntentRecord, error) {
	var recordM model.IntentRecordModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&recordM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrIntentNotFound
		}

		return nil, errors.Wrap(err, "failed to find intent record by ID")
	}

	return toIntentRecordDomain(&recordM), nil
}

// UpdateIntentState transitions the dispatch state machine and stores the
// aggregate counts.
func (repo *dispatchRepository) UpdateIntentState(ctx context.Context, id uuid.UUID, state entity.DispatchState, success, failure, duplicate int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.IntentRecordModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"state":           string(state),
			"success_count":   success,
			"failure_count":   failure,
			"duplicate_count": duplicate,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update intent state")
	}

	if result.RowsAffected == 0 {
		return repository.ErrIntentNotFound
	}

	return nil
}

// BatchCreateDeliveries persists multiple delivery records in a batch for better performance.
func (repo *dispatchRepository) BatchCreateDeliveries(ctx context.Context, records []*entity.DeliveryRecord) error {
	if len(records) == 0 {
		return nil
	}

	recordModels := make([]*model.DeliveryRecordModel, 0, len(records))
	for _, record := range records {
		recordM, err := fromDeliveryRecordDomain(record)
		if err != nil {
			return err
		}
		recordModels = append(recordModels, recordM)
	}

	// Use GORM's CreateInBatches for efficient batch insertion
	if err := repo.db.WithContext(ctx).CreateInBatches(recordModels, 100).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrIntentNotFound.WrapMessage("invalid intent reference in batch")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required delivery information in batch")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to batch create delivery records")
	}

	// Update the entities with generated values
	for i, recordM := range recordModels {
		records[i].ID = recordM.ID
	}

	return nil
}

// FindInboxByUser pages through a recipient's in-app deliveries, newest first.
func (repo *dispatchRepository) FindInboxByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.DeliveryRecord, error) {
	var recordModels []*model.DeliveryRecordModel

	query := repo.db.WithContext(ctx).
		Where("user_id = ? AND channel = ?", userID, string(entity.ChannelInApp)).
		Order("attempted_at DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&recordModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find inbox deliveries")
	}

	records := make([]*entity.DeliveryRecord, 0, len(recordModels))
	for _, recordM := range recordModels {
		record, err := toDeliveryRecordDomain(recordM)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}

// MarkRead flips the read flag on one in-app delivery owned by the user.
// The owner constraint lives in the WHERE clause so a foreign delivery ID
// reads as not-found instead of leaking another user's record.
func (repo *dispatchRepository) MarkRead(ctx context.Context, userID, deliveryID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.DeliveryRecordModel{}).
		Where("id = ? AND user_id = ? AND channel = ?", deliveryID, userID, string(entity.ChannelInApp)).
		Update("read", true)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark delivery as read")
	}

	if result.RowsAffected == 0 {
		return repository.ErrDeliveryNotFound
	}

	return nil
}

// CountUnread returns the number of unread in-app deliveries for a user.
func (repo *dispatchRepository) CountUnread(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.DeliveryRecordModel{}).
		Where("user_id = ? AND channel = ? AND read = ? AND status = ?",
			userID, string(entity.ChannelInApp), false, string(entity.DeliverySent)).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count unread deliveries")
	}

	return count, nil
}

// PurgeDeliveriesBefore removes delivery records attempted before the cutoff.
func (repo *dispatchRepository) PurgeDeliveriesBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("attempted_at < ?", cutoff).
		Delete(&model.DeliveryRecordModel{})

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to purge delivery records")
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

// toIntentRecordDomain converts a GORM IntentRecordModel to a domain IntentRecord entity.
func toIntentRecordDomain(data *model.IntentRecordModel) *entity.IntentRecord {
	if data == nil {
		return nil
	}

	return &entity.IntentRecord{
		ID:                 data.ID,
		Kind:               entity.IntentKind(data.Kind),
		CorrelatedEntityID: data.CorrelatedEntityID,
		State:              entity.DispatchState(data.State),
		SuccessCount:       data.SuccessCount,
		FailureCount:       data.FailureCount,
		DuplicateCount:     data.DuplicateCount,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}

// fromIntentRecordDomain converts a domain IntentRecord entity to a GORM IntentRecordModel.
func fromIntentRecordDomain(data *entity.IntentRecord) *model.IntentRecordModel {
	if data == nil {
		return nil
	}

	return &model.IntentRecordModel{
		ID:                 data.ID,
		Kind:               string(data.Kind),
		CorrelatedEntityID: data.CorrelatedEntityID,
		State:              string(data.State),
		SuccessCount:       data.SuccessCount,
		FailureCount:       data.FailureCount,
		DuplicateCount:     data.DuplicateCount,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}

// toDeliveryRecordDomain converts a GORM DeliveryRecordModel to a domain DeliveryRecord entity.
func toDeliveryRecordDomain(data *model.DeliveryRecordModel) (*entity.DeliveryRecord, error) {
	if data == nil {
		return nil, nil
	}

	var payload map[string]string
	if len(data.Payload) > 0 {
		if err := json.Unmarshal(data.Payload, &payload); err != nil {
			return nil, errors.Wrap(err, "failed to decode delivery payload")
		}
	}

	return &entity.DeliveryRecord{
		ID:          data.ID,
		IntentID:    data.IntentID,
		UserID:      data.UserID,
		Channel:     entity.Channel(data.Channel),
		Address:     data.Address,
		Status:      entity.DeliveryStatus(data.Status),
		Reason:      data.Reason,
		Title:       data.Title,
		Body:        data.Body,
		Payload:     payload,
		Read:        data.Read,
		AttemptedAt: data.AttemptedAt,
	}, nil
}

// fromDeliveryRecordDomain converts a domain DeliveryRecord entity to a GORM DeliveryRecordModel.
func fromDeliveryRecordDomain(data *entity.DeliveryRecord) (*model.DeliveryRecordModel, error) {
	if data == nil {
		return nil, nil
	}

	var payload []byte
	if len(data.Payload) > 0 {
		encoded, err := json.Marshal(data.Payload)
		if err != nil {
			return nil, errors.Wrap(err, "failed to encode delivery payload")
		}
		payload = encoded
	}

	return &model.DeliveryRecordModel{
		ID:          data.ID,
		IntentID:    data.IntentID,
		UserID:      data.UserID,
		Channel:     string(data.Channel),
		Address:     data.Address,
		Status:      string(data.Status),
		Reason:      data.Reason,
		Title:       data.Title,
		Body:        data.Body,
		Payload:     payload,
		Read:        data.Read,
		AttemptedAt: data.AttemptedAt,
	}, nil
}
