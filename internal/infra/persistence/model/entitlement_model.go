package model

import (
	"time"

	"github.com/google/uuid"
)

// EntitlementModel is the GORM-specific struct for the 'entitlements' table.
// One row per (user, product): the reconciliation engine only ever reads or
// replaces a user's rows wholesale, so no soft delete is kept.
type EntitlementModel struct {
	ID                  uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID              uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_entitlements_user_product,priority:1"`
	Product             string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_entitlements_user_product,priority:2"`
	PurchaseToken       string    `gorm:"type:text"`
	IsEntitlementActive bool      `gorm:"not null;default:false"`
	IsAcknowledged      bool      `gorm:"not null;default:false"`
	WillRenew           bool      `gorm:"not null;default:false"`
	IsConsumed          bool      `gorm:"not null;default:false"`
	IsAccountHold       bool      `gorm:"not null;default:false"`
	IsGracePeriod       bool      `gorm:"not null;default:false"`
	IsPaused            bool      `gorm:"not null;default:false"`
	SubAlreadyOwned     bool      `gorm:"not null;default:false"`
	IsLocalPurchase     bool      `gorm:"not null;default:false"`
	IsPrepaid           bool      `gorm:"not null;default:false"`
	Quantity            int       `gorm:"not null;default:0"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// TableName explicitly sets the table name for GORM.
func (EntitlementModel) TableName() string {
	return "entitlements"
}
