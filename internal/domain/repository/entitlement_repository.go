// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"tollgate/internal/domain/entity"
	"tollgate/internal/errors"

	"github.com/google/uuid"
)

// ErrReplaceFailed is returned when an atomic replace of a user's
// entitlement records cannot be committed.
var ErrReplaceFailed = errors.New("entitlement replace failed")

// EntitlementRepository is the local record store: the last reconciled
// entitlement list per user. Merge logic lives above this layer; the store
// only ever reads the whole list or replaces it wholesale.
type EntitlementRepository interface {
	// GetAll returns a point-in-time snapshot of the user's entitlement
	// records. A user with no records yields an empty slice, not an error.
	GetAll(ctx context.Context, userID uuid.UUID) ([]entity.Entitlement, error)

	// ReplaceAll atomically deletes the user's existing records and inserts
	// the given list as a single transaction. No partial state is ever
	// observable between the delete and the insert.
	ReplaceAll(ctx context.Context, userID uuid.UUID, entitlements []entity.Entitlement) error

	// DeleteAll removes every record for the user. Called on sign-out.
	DeleteAll(ctx context.Context, userID uuid.UUID) error
}
