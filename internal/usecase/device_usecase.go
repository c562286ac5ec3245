package usecase

import (
	"context"

	"github.com/google/uuid"
)

// DeviceUsecase manages push registration of devices with the backend of
// record, so entitlement changes can be pushed back to them.
type DeviceUsecase interface {
	// RegisterInstanceID registers an FCM instance ID for the user.
	RegisterInstanceID(ctx context.Context, userID uuid.UUID, instanceID string) error

	// UnregisterInstanceID removes a registration. Must be called before
	// sign-out completes, while the caller is still authenticated.
	UnregisterInstanceID(ctx context.Context, userID uuid.UUID, instanceID string) error
}
