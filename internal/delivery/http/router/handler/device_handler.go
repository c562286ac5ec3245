package handler

import (
	"log/slog"
	"net/http"

	"tollgate/internal/delivery/http/middleware"
	"tollgate/internal/delivery/http/response"
	domainerrors "tollgate/internal/domain/errors"
	"tollgate/internal/usecase"
	"tollgate/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// DeviceHandlerParams holds dependencies for DeviceHandler, injected by Fx.
type DeviceHandlerParams struct {
	fx.In

	DeviceUC usecase.DeviceUsecase
	Logger   *slog.Logger
}

// DeviceHandler manages FCM instance ID registrations for the caller.
type DeviceHandler struct {
	deviceUC usecase.DeviceUsecase
	logger   *slog.Logger
}

// NewDeviceHandler is the constructor for DeviceHandler
func NewDeviceHandler(params DeviceHandlerParams) *DeviceHandler {
	return &DeviceHandler{
		deviceUC: params.DeviceUC,
		logger:   params.Logger,
	}
}

// InstanceIDRequest carries the FCM instance ID being registered or removed.
type InstanceIDRequest struct {
	InstanceID string `json:"instance_id" validate:"required"`
}

// RegisterInstanceID registers the device for entitlement pushes
func (h *DeviceHandler) RegisterInstanceID(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req InstanceIDRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid device input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails(err.Error()))
	}

	if err := h.deviceUC.RegisterInstanceID(c.Request().Context(), userID, req.InstanceID); err != nil {
		if errors.Is(err, impl.ErrInstanceIDRequired) {
			return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails(err.Error()))
		}

		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Device registered")
}

// UnregisterInstanceID removes the device registration before sign-out
func (h *DeviceHandler) UnregisterInstanceID(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req InstanceIDRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid device input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails(err.Error()))
	}

	if err := h.deviceUC.UnregisterInstanceID(c.Request().Context(), userID, req.InstanceID); err != nil {
		if errors.Is(err, impl.ErrInstanceIDRequired) {
			return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails(err.Error()))
		}

		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Device unregistered")
}
