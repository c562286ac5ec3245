// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"tollgate/internal/delivery/http/middleware"
	"tollgate/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	BillingHandler     *handler.BillingHandler
	EntitlementHandler *handler.EntitlementHandler
	DeviceHandler      *handler.DeviceHandler
	AuthMiddleware     *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	billingHandler     *handler.BillingHandler
	entitlementHandler *handler.EntitlementHandler
	deviceHandler      *handler.DeviceHandler
	authMiddleware     *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		billingHandler:     params.BillingHandler,
		entitlementHandler: params.EntitlementHandler,
		deviceHandler:      params.DeviceHandler,
		authMiddleware:     params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api/v1")
	api.Use(r.authMiddleware.Authenticate) // Apply JWT authentication middleware

	// Reconciliation triggers
	billingGroup := api.Group("/billing")
	{
		billingGroup.POST("/purchases/sync", r.billingHandler.SyncPurchases)
		billingGroup.POST("/purchases/transfer", r.billingHandler.TransferPurchase)
		billingGroup.POST("/purchases/consume", r.billingHandler.ConsumePurchase)
		billingGroup.POST("/refresh", r.billingHandler.Refresh)
	}

	// Local state reads and the sign-out wipe
	entitlementGroup := api.Group("/entitlements")
	{
		entitlementGroup.GET("", r.entitlementHandler.GetEntitlements)
		entitlementGroup.GET("/plan", r.entitlementHandler.GetPlan)
		entitlementGroup.DELETE("", r.entitlementHandler.DeleteLocalData)
	}

	// Push registration
	deviceGroup := api.Group("/devices")
	{
		deviceGroup.POST("/register", r.deviceHandler.RegisterInstanceID)
		deviceGroup.POST("/unregister", r.deviceHandler.UnregisterInstanceID)
	}
}
