package rental

import (
	"time"

	"gorm.io/datatypes"
)

// PaymentAccount records a processor account opened for a payable row. The
// raw payment token is never stored, only its fingerprint.
type PaymentAccount struct {
	ID               uint           `gorm:"primaryKey;column:id" json:"id"`
	EntityKind       string         `gorm:"not null;index:idx_payment_account_entity;column:entity_kind" json:"entity_kind"`
	EntityID         uint           `gorm:"not null;index:idx_payment_account_entity;column:entity_id" json:"entity_id"`
	Role             string         `gorm:"not null;column:role" json:"role"`
	Processor        string         `gorm:"not null;column:processor" json:"processor"`
	ExternalID       string         `gorm:"not null;uniqueIndex;column:external_id" json:"external_id"`
	TokenFingerprint string         `gorm:"not null;column:token_fingerprint" json:"-"`
	Metadata         datatypes.JSON `gorm:"column:metadata" json:"metadata,omitempty"`
	CreatedOn        time.Time      `gorm:"not null;autoCreateTime;column:created_on" json:"created_on"`
}

func (PaymentAccount) TableName() string { return "payment_account" }
