package service

import (
	"context"

	"tollgate/internal/domain/entity"
	"tollgate/internal/errors"

	"github.com/google/uuid"
)

// ErrBackendUnavailable is returned for transport-level failures against
// the backend of record. Callers do not retry automatically.
var ErrBackendUnavailable = errors.New("entitlement backend unavailable")

// EntitlementBackend is the client surface of the backend of record. Every
// call is keyed by the authenticated user plus (product, purchaseToken).
//
// Register never surfaces an ownership conflict as an error: when the
// backend reports the token as bound to another account, the client
// synthesizes an inactive record with SubAlreadyOwned set so the
// reconciliation engine can keep it visible and offer a transfer.
type EntitlementBackend interface {
	// FetchEntitlements returns the backend's full entitlement snapshot.
	FetchEntitlements(ctx context.Context, userID uuid.UUID) ([]entity.Entitlement, error)

	// Register associates a purchase token with the user's account and
	// returns the updated entitlement list.
	Register(ctx context.Context, userID uuid.UUID, kind entity.ProductKind, product, purchaseToken string) ([]entity.Entitlement, error)

	// Acknowledge marks a registered purchase as acknowledged on the
	// backend and returns the updated entitlement list.
	Acknowledge(ctx context.Context, userID uuid.UUID, kind entity.ProductKind, product, purchaseToken string) ([]entity.Entitlement, error)

	// Consume marks a one-time product purchase as consumed.
	Consume(ctx context.Context, userID uuid.UUID, product, purchaseToken string) ([]entity.Entitlement, error)

	// Transfer reassigns ownership of a token to the user's account.
	Transfer(ctx context.Context, userID uuid.UUID, product, purchaseToken string) error

	// RegisterDevice registers an FCM instance ID for push updates.
	RegisterDevice(ctx context.Context, userID uuid.UUID, instanceID string) error

	// UnregisterDevice removes a previously registered FCM instance ID.
	UnregisterDevice(ctx context.Context, userID uuid.UUID, instanceID string) error

	// Loading reports whether any backend request is currently in flight.
	Loading() bool
}
