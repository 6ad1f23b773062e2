package model

import (
	"time"

	"github.com/google/uuid"
)

// IntentRecordModel is the GORM-specific struct for the 'intent_records'
// table. It carries the dispatch state machine and aggregate counts.
type IntentRecordModel struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key"`
	Kind               string    `gorm:"type:varchar(50);not null;index"`
	CorrelatedEntityID string    `gorm:"type:varchar(255);index"`
	State              string    `gorm:"type:varchar(20);not null;default:'created'"`
	SuccessCount       int       `gorm:"not null;default:0"`
	FailureCount       int       `gorm:"not null;default:0"`
	DuplicateCount     int       `gorm:"not null;default:0"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (IntentRecordModel) TableName() string {
	return "intent_records"
}

// DeliveryRecordModel is the GORM-specific struct for the 'delivery_records'
// table. In-app rows double as the recipient's inbox entries.
type DeliveryRecordModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	IntentID    uuid.UUID `gorm:"type:uuid;not null;index"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index:ix_delivery_user_channel,priority:1"`
	Channel     string    `gorm:"type:varchar(20);not null;index:ix_delivery_user_channel,priority:2"`
	Address     string    `gorm:"type:varchar(512)"`
	Status      string    `gorm:"type:varchar(20);not null;default:'pending'"`
	Reason      string    `gorm:"type:varchar(50)"`
	Title       string    `gorm:"type:text;not null"`
	Body        string    `gorm:"type:text;not null"`
	Payload     []byte    `gorm:"type:jsonb"`
	Read        bool      `gorm:"not null;default:false"`
	AttemptedAt time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (DeliveryRecordModel) TableName() string {
	return "delivery_records"
}

// LedgerEntryModel is the GORM-specific struct for the 'dispatch_ledger'
// table. The delivery key is the primary key, so a duplicate reservation
// surfaces as a unique-constraint violation on insert.
type LedgerEntryModel struct {
	Key       string    `gorm:"type:char(64);primary_key"`
	ExpiresAt time.Time `gorm:"not null;index"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (LedgerEntryModel) TableName() string {
	return "dispatch_ledger"
}
