package usecase

import (
	"context"

	"tollgate/internal/domain/entity"

	"github.com/google/uuid"
)

// SyncOptions carries optional per-request context for a reconciliation
// trigger.
type SyncOptions struct {
	// InstanceID, when set, receives a push once the pass changes state.
	InstanceID string `json:"instance_id,omitempty"`
	// RequestID propagates tracing information into published events.
	RequestID string `json:"request_id,omitempty"`
}

// ReconcileUsecase drives reconciliation passes: merging device purchases,
// backend entitlement records and prior local records into one authoritative
// list, acknowledging new purchases along the way. Passes for the same user
// never interleave.
type ReconcileUsecase interface {
	// SyncDevicePurchases runs a pass for a fresh device purchase list:
	// unknown tokens are registered with the backend, the merged list is
	// persisted, and pending purchases are acknowledged. This is the
	// device-change trigger.
	SyncDevicePurchases(ctx context.Context, userID uuid.UUID, purchases []entity.DevicePurchase, opts SyncOptions) ([]entity.Entitlement, error)

	// Refresh fetches the backend snapshot and runs a pass against it.
	// This is the user-initiated refresh trigger.
	Refresh(ctx context.Context, userID uuid.UUID, purchases []entity.DevicePurchase, opts SyncOptions) ([]entity.Entitlement, error)

	// TransferPurchase reassigns a token owned by another account to this
	// user, then refreshes.
	TransferPurchase(ctx context.Context, userID uuid.UUID, product, purchaseToken string, purchases []entity.DevicePurchase, opts SyncOptions) ([]entity.Entitlement, error)

	// ConsumePurchase marks a one-time product purchase consumed on the
	// backend and runs a pass over the response.
	ConsumePurchase(ctx context.Context, userID uuid.UUID, product, purchaseToken string, purchases []entity.DevicePurchase, opts SyncOptions) ([]entity.Entitlement, error)
}
