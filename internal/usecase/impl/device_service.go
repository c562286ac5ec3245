package impl

import (
	"context"
	"log/slog"

	"tollgate/internal/domain/service"
	"tollgate/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

var (
	// ErrInstanceIDRequired is returned when a registration request carries
	// no FCM instance ID.
	ErrInstanceIDRequired = errors.New("instance ID is required")
)

type deviceService struct {
	backend service.EntitlementBackend
	logger  *slog.Logger
}

// DeviceServiceParams holds dependencies for DeviceUsecase, injected by Fx.
type DeviceServiceParams struct {
	fx.In

	Backend service.EntitlementBackend
	Logger  *slog.Logger
}

// NewDeviceService creates the device registration usecase instance.
func NewDeviceService(params DeviceServiceParams) usecase.DeviceUsecase {
	return &deviceService{
		backend: params.Backend,
		logger:  params.Logger,
	}
}

// RegisterInstanceID registers an FCM instance ID with the backend so
// entitlement changes can be pushed back to the device.
func (s *deviceService) RegisterInstanceID(ctx context.Context, userID uuid.UUID, instanceID string) error {
	if instanceID == "" {
		return ErrInstanceIDRequired
	}

	if err := s.backend.RegisterDevice(ctx, userID, instanceID); err != nil {
		return errors.Wrap(err, "failed to register instance ID")
	}

	s.logger.Info("Registered device instance",
		slog.String("user_id", userID.String()),
	)

	return nil
}

// UnregisterInstanceID removes a registration. Callers must do this before
// sign-out completes, while the request is still authenticated.
func (s *deviceService) UnregisterInstanceID(ctx context.Context, userID uuid.UUID, instanceID string) error {
	if instanceID == "" {
		return ErrInstanceIDRequired
	}

	if err := s.backend.UnregisterDevice(ctx, userID, instanceID); err != nil {
		return errors.Wrap(err, "failed to unregister instance ID")
	}

	s.logger.Info("Unregistered device instance",
		slog.String("user_id", userID.String()),
	)

	return nil
}
