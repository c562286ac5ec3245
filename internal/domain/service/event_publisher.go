package service

import (
	"context"
)

// EntitlementEvent is published whenever a reconciliation pass changes
// which content a user is entitled to. Downstream consumers refresh or
// clear cached entitled content for the named product.
type EntitlementEvent struct {
	RequestID string `json:"request_id,omitempty"` // For distributed tracing
	UserID    string `json:"user_id"`
	Product   string `json:"product"`
	Entitled  bool   `json:"entitled"` // False clears previously granted content.
	PlanState string `json:"plan_state"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishEntitlementEvent publishes an entitlement change for async processing
	PublishEntitlementEvent(ctx context.Context, event *EntitlementEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
