// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"courtside/internal/domain/entity"
	domainerrors "courtside/internal/domain/errors"
	"courtside/internal/domain/repository"
	"courtside/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// registrationRepository implements the repository.RegistrationRepository interface.
type registrationRepository struct {
	db *gorm.DB
}

// NewRegistrationRepository is the constructor for registrationRepository.
func NewRegistrationRepository(db *gorm.DB) repository.RegistrationRepository {
	return &registrationRepository{
		db: db,
	}
}

// UpsertRegistration creates the per-user registration row if missing and
// refreshes its role otherwise.
func (repo *registrationRepository) UpsertRegistration(ctx context.Context, userID uuid.UUID, role string) error {
	registrationM := &model.RegistrationModel{
		UserID: userID,
		Role:   role,
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"role", "updated_at"}),
		}).
		Create(registrationM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required registration information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert registration")
	}

	return nil
}

// FindByUserID retrieves one recipient's registration with addresses and
// preferences loaded.
func (repo *registrationRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.RecipientRegistration, error) {
	var registrationM model.RegistrationModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&registrationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRegistrationNotFound
		}

		return nil, errors.Wrap(err, "failed to find registration by user ID")
	}

	registrations, err := repo.hydrate(ctx, []*model.RegistrationModel{&registrationM})
	if err != nil {
		return nil, err
	}

	return registrations[0], nil
}

// FindByUserIDs retrieves registrations for the given users. IDs without a
// registration are silently dropped from the result.
func (repo *registrationRepository) FindByUserIDs(ctx context.Context, userIDs []uuid.UUID) ([]*entity.RecipientRegistration, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}

	var registrationModels []*model.RegistrationModel

	if err := repo.db.WithContext(ctx).
		Where("user_id IN ?", userIDs).
		Find(&registrationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find registrations by user IDs")
	}

	return repo.hydrate(ctx, registrationModels)
}

// FindAll retrieves every registration with addresses and preferences loaded.
func (repo *registrationRepository) FindAll(ctx context.Context) ([]*entity.RecipientRegistration, error) {
	var registrationModels []*model.RegistrationModel

	if err := repo.db.WithContext(ctx).
		Find(&registrationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find all registrations")
	}

	return repo.hydrate(ctx, registrationModels)
}

// FindByRole retrieves every registration with the given role.
func (repo *registrationRepository) FindByRole(ctx context.Context, role string) ([]*entity.RecipientRegistration, error) {
	var registrationModels []*model.RegistrationModel

	if err := repo.db.WithContext(ctx).
		Where("role = ?", role).
		Find(&registrationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find registrations by role")
	}

	return repo.hydrate(ctx, registrationModels)
}

// AddAddress registers an address for a channel. Re-adding an existing
// (user, channel, address) triple is a no-op thanks to ON CONFLICT DO NOTHING.
func (repo *registrationRepository) AddAddress(ctx context.Context, address *entity.ChannelAddress) error {
	addressM := &model.ChannelAddressModel{
		UserID:   address.UserID,
		Channel:  string(address.Channel),
		Address:  address.Address,
		Platform: address.Platform,
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(addressM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrRegistrationNotFound.WrapMessage("no registration for address owner")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required address information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add channel address")
	}

	address.CreatedAt = addressM.CreatedAt

	return nil
}

// RemoveAddress unregisters an address. Removing an absent address is a
// no-op, not an error, so the reaper and explicit unregistration can race
// safely.
func (repo *registrationRepository) RemoveAddress(ctx context.Context, userID uuid.UUID, channel entity.Channel, address string) error {
	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND channel = ? AND address = ?", userID, string(channel), address).
		Delete(&model.ChannelAddressModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to remove channel address")
	}

	return nil
}

// ListAddresses pages through registered addresses of a channel, ordered by
// creation time so the periodic sweep walks a stable sequence.
func (repo *registrationRepository) ListAddresses(ctx context.Context, channel entity.Channel, limit, offset int) ([]*entity.ChannelAddress, error) {
	var addressModels []*model.ChannelAddressModel

	query := repo.db.WithContext(ctx).
		Where("channel = ?", string(channel)).
		Order("created_at ASC, id ASC")

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&addressModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list channel addresses")
	}

	addresses := make([]*entity.ChannelAddress, 0, len(addressModels))
	for _, addressM := range addressModels {
		addresses = append(addresses, toChannelAddressDomain(addressM))
	}

	return addresses, nil
}

// SetPreference records an explicit opt-in/opt-out for an intent kind.
func (repo *registrationRepository) SetPreference(ctx context.Context, userID uuid.UUID, kind entity.IntentKind, enabled bool) error {
	preferenceM := &model.PreferenceModel{
		UserID:  userID,
		Kind:    string(kind),
		Enabled: enabled,
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "kind"}},
			DoUpdates: clause.AssignmentColumns([]string{"enabled", "updated_at"}),
		}).
		Create(preferenceM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrRegistrationNotFound.WrapMessage("no registration for preference owner")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to set notification preference")
	}

	return nil
}

// DeleteRegistration removes the registration row together with its addresses
// and preferences. Used only on explicit account deletion.
func (repo *registrationRepository) DeleteRegistration(ctx context.Context, userID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.ChannelAddressModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete channel addresses")
	}

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.PreferenceModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete notification preferences")
	}

	result := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.RegistrationModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete registration")
	}

	if result.RowsAffected == 0 {
		return repository.ErrRegistrationNotFound
	}

	return nil
}

// hydrate loads addresses and preferences for the given registration rows and
// assembles the domain entities.
func (repo *registrationRepository) hydrate(ctx context.Context, registrationModels []*model.RegistrationModel) ([]*entity.RecipientRegistration, error) {
	if len(registrationModels) == 0 {
		return nil, nil
	}

	userIDs := make([]uuid.UUID, 0, len(registrationModels))
	for _, registrationM := range registrationModels {
		userIDs = append(userIDs, registrationM.UserID)
	}

	var addressModels []*model.ChannelAddressModel
	if err := repo.db.WithContext(ctx).
		Where("user_id IN ?", userIDs).
		Find(&addressModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load channel addresses")
	}

	var preferenceModels []*model.PreferenceModel
	if err := repo.db.WithContext(ctx).
		Where("user_id IN ?", userIDs).
		Find(&preferenceModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load notification preferences")
	}

	addressesByUser := make(map[uuid.UUID]map[entity.Channel][]string, len(registrationModels))
	for _, addressM := range addressModels {
		byChannel, ok := addressesByUser[addressM.UserID]
		if !ok {
			byChannel = make(map[entity.Channel][]string)
			addressesByUser[addressM.UserID] = byChannel
		}
		channel := entity.Channel(addressM.Channel)
		byChannel[channel] = append(byChannel[channel], addressM.Address)
	}

	preferencesByUser := make(map[uuid.UUID]map[entity.IntentKind]bool, len(registrationModels))
	for _, preferenceM := range preferenceModels {
		prefs, ok := preferencesByUser[preferenceM.UserID]
		if !ok {
			prefs = make(map[entity.IntentKind]bool)
			preferencesByUser[preferenceM.UserID] = prefs
		}
		prefs[entity.IntentKind(preferenceM.Kind)] = preferenceM.Enabled
	}

	registrations := make([]*entity.RecipientRegistration, 0, len(registrationModels))
	for _, registrationM := range registrationModels {
		registrations = append(registrations, &entity.RecipientRegistration{
			UserID:             registrationM.UserID,
			Role:               registrationM.Role,
			AddressesByChannel: addressesByUser[registrationM.UserID],
			Preferences:        preferencesByUser[registrationM.UserID],
			UpdatedAt:          registrationM.UpdatedAt,
		})
	}

	return registrations, nil
}

// --- Mapper Functions ---

// toChannelAddressDomain converts a GORM ChannelAddressModel to a domain ChannelAddress entity.
func toChannelAddressDomain(data *model.ChannelAddressModel) *entity.ChannelAddress {
	if data == nil {
		return nil
	}

	return &entity.ChannelAddress{
		UserID:    data.UserID,
		Channel:   entity.Channel(data.Channel),
		Address:   data.Address,
		Platform:  data.Platform,
		CreatedAt: data.CreatedAt,
	}
}
