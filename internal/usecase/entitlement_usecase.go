package usecase

import (
	"context"

	"tollgate/internal/domain/entity"

	"github.com/google/uuid"
)

// EntitlementUsecase answers "what does this user currently own" from the
// last reconciled local state, without touching the network.
type EntitlementUsecase interface {
	// GetEntitlements returns the user's last reconciled entitlement list.
	GetEntitlements(ctx context.Context, userID uuid.UUID) ([]entity.Entitlement, error)

	// CurrentPlan classifies the user's entitlements into the discrete
	// plan state used for UI routing.
	CurrentPlan(ctx context.Context, userID uuid.UUID) (entity.PlanState, error)

	// Loading reports whether any backend request is in flight.
	Loading() bool

	// DeleteLocalData wipes the user's local entitlement records. Called
	// on sign-out.
	DeleteLocalData(ctx context.Context, userID uuid.UUID) error
}
