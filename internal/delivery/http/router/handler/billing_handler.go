package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "tollgate/internal/delivery/context"
	"tollgate/internal/delivery/http/middleware"
	"tollgate/internal/delivery/http/response"
	"tollgate/internal/domain/entity"
	domainerrors "tollgate/internal/domain/errors"
	"tollgate/internal/domain/service"
	"tollgate/internal/usecase"
	"tollgate/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// BillingHandlerParams holds dependencies for BillingHandler, injected by Fx.
type BillingHandlerParams struct {
	fx.In

	ReconcileUC usecase.ReconcileUsecase
	Logger      *slog.Logger
}

// BillingHandler exposes the reconciliation triggers over HTTP. Every route
// accepts the device's current purchase list so the pass can correlate
// tokens, and optionally the device's FCM instance ID for completion pushes.
type BillingHandler struct {
	reconcileUC usecase.ReconcileUsecase
	logger      *slog.Logger
}

// NewBillingHandler is the constructor for BillingHandler
func NewBillingHandler(params BillingHandlerParams) *BillingHandler {
	return &BillingHandler{
		reconcileUC: params.ReconcileUC,
		logger:      params.Logger,
	}
}

// SyncPurchasesRequest carries the device purchase snapshot for a pass.
type SyncPurchasesRequest struct {
	Purchases  []entity.DevicePurchase `json:"purchases"`
	InstanceID string                  `json:"instance_id,omitempty"`
}

// TransferRequest identifies the foreign-owned purchase to reassign.
type TransferRequest struct {
	Product       string                  `json:"product" validate:"required"`
	PurchaseToken string                  `json:"purchase_token" validate:"required"`
	Purchases     []entity.DevicePurchase `json:"purchases"`
	InstanceID    string                  `json:"instance_id,omitempty"`
}

// ConsumeRequest identifies the one-time purchase to consume.
type ConsumeRequest struct {
	Product       string                  `json:"product" validate:"required"`
	PurchaseToken string                  `json:"purchase_token" validate:"required"`
	Purchases     []entity.DevicePurchase `json:"purchases"`
	InstanceID    string                  `json:"instance_id,omitempty"`
}

// EntitlementsData wraps the reconciled list returned by every trigger.
type EntitlementsData struct {
	Entitlements []entity.Entitlement `json:"entitlements"`
}

// SyncPurchases handles the device purchase-change trigger
func (h *BillingHandler) SyncPurchases(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req SyncPurchasesRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid purchase list")
	}

	opts := h.syncOptions(c, req.InstanceID)
	records, err := h.reconcileUC.SyncDevicePurchases(c.Request().Context(), userID, req.Purchases, opts)
	if err != nil {
		return h.mapReconcileError(c, err)
	}

	return response.Success(c, http.StatusOK, EntitlementsData{Entitlements: records}, "Purchases reconciled")
}

// Refresh handles the user-initiated refresh trigger
func (h *BillingHandler) Refresh(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req SyncPurchasesRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid purchase list")
	}

	opts := h.syncOptions(c, req.InstanceID)
	records, err := h.reconcileUC.Refresh(c.Request().Context(), userID, req.Purchases, opts)
	if err != nil {
		return h.mapReconcileError(c, err)
	}

	return response.Success(c, http.StatusOK, EntitlementsData{Entitlements: records}, "Entitlements refreshed")
}

// TransferPurchase handles reassigning a foreign-owned subscription
func (h *BillingHandler) TransferPurchase(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req TransferRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid transfer input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails(err.Error()))
	}

	opts := h.syncOptions(c, req.InstanceID)
	records, err := h.reconcileUC.TransferPurchase(c.Request().Context(), userID, req.Product, req.PurchaseToken, req.Purchases, opts)
	if err != nil {
		return h.mapReconcileError(c, err)
	}

	return response.Success(c, http.StatusOK, EntitlementsData{Entitlements: records}, "Purchase transferred")
}

// ConsumePurchase handles consuming a one-time product purchase
func (h *BillingHandler) ConsumePurchase(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req ConsumeRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid consume input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, domainerrors.ErrValidationFailed.WithDetails(err.Error()))
	}

	opts := h.syncOptions(c, req.InstanceID)
	records, err := h.reconcileUC.ConsumePurchase(c.Request().Context(), userID, req.Product, req.PurchaseToken, req.Purchases, opts)
	if err != nil {
		return h.mapReconcileError(c, err)
	}

	return response.Success(c, http.StatusOK, EntitlementsData{Entitlements: records}, "Purchase consumed")
}

func (h *BillingHandler) syncOptions(c echo.Context, instanceID string) usecase.SyncOptions {
	return usecase.SyncOptions{
		InstanceID: instanceID,
		RequestID:  deliverycontext.GetRequestID(c),
	}
}

func (h *BillingHandler) mapReconcileError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, impl.ErrUnknownProduct):
		return response.HandleAppError(c, domainerrors.ErrUnknownProduct)
	case errors.Is(err, service.ErrBackendUnavailable):
		return response.HandleAppError(c, domainerrors.ErrBackendUnavailable.WithDetails(err.Error()))
	}

	return response.HandleAppError(c, err)
}
