package handler

import (
	"log/slog"
	"net/http"

	"tollgate/internal/delivery/http/middleware"
	"tollgate/internal/delivery/http/response"
	"tollgate/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// EntitlementHandlerParams holds dependencies for EntitlementHandler, injected by Fx.
type EntitlementHandlerParams struct {
	fx.In

	EntitlementUC usecase.EntitlementUsecase
	Logger        *slog.Logger
}

// EntitlementHandler serves the locally reconciled entitlement state.
// Reads never touch the backend.
type EntitlementHandler struct {
	entitlementUC usecase.EntitlementUsecase
	logger        *slog.Logger
}

// NewEntitlementHandler is the constructor for EntitlementHandler
func NewEntitlementHandler(params EntitlementHandlerParams) *EntitlementHandler {
	return &EntitlementHandler{
		entitlementUC: params.EntitlementUC,
		logger:        params.Logger,
	}
}

// PlanData reports the classified plan alongside the backend loading flag,
// so clients can show a spinner instead of a possibly stale plan.
type PlanData struct {
	PlanState string `json:"plan_state"`
	Loading   bool   `json:"loading"`
}

// GetEntitlements returns the user's last reconciled entitlement list
func (h *EntitlementHandler) GetEntitlements(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	records, err := h.entitlementUC.GetEntitlements(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, EntitlementsData{Entitlements: records}, "")
}

// GetPlan returns the user's current plan classification
func (h *EntitlementHandler) GetPlan(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	plan, err := h.entitlementUC.CurrentPlan(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, PlanData{
		PlanState: string(plan),
		Loading:   h.entitlementUC.Loading(),
	}, "")
}

// DeleteLocalData wipes the user's local entitlement records on sign-out
func (h *EntitlementHandler) DeleteLocalData(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	if err := h.entitlementUC.DeleteLocalData(c.Request().Context(), userID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Local entitlement data deleted")
}
