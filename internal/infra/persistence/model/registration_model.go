package model

import (
	"time"

	"github.com/google/uuid"
)

// RegistrationModel is the GORM-specific struct for the 'registrations' table.
// One row per recipient; addresses and preferences hang off it.
type RegistrationModel struct {
	UserID    uuid.UUID `gorm:"type:uuid;primary_key"`
	Role      string    `gorm:"type:varchar(50);not null;index;default:'player'"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (RegistrationModel) TableName() string {
	return "registrations"
}

// ChannelAddressModel is the GORM-specific struct for the 'channel_addresses'
// table. The (user_id, channel, address) triple is unique so that address
// registration is an idempotent set-add.
type ChannelAddressModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:ux_addr_user_channel_address,priority:1;index"`
	Channel   string    `gorm:"type:varchar(20);not null;uniqueIndex:ux_addr_user_channel_address,priority:2;index"`
	Address   string    `gorm:"type:varchar(512);not null;uniqueIndex:ux_addr_user_channel_address,priority:3"`
	Platform  string    `gorm:"type:varchar(50)"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ChannelAddressModel) TableName() string {
	return "channel_addresses"
}

// PreferenceModel is the GORM-specific struct for the
// 'notification_preferences' table. Absence of a row means default-allow.
type PreferenceModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:ux_pref_user_kind,priority:1;index"`
	Kind      string    `gorm:"type:varchar(50);not null;uniqueIndex:ux_pref_user_kind,priority:2"`
	Enabled   bool      `gorm:"not null;default:true"`
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PreferenceModel) TableName() string {
	return "notification_preferences"
}
