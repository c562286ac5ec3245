package service

import (
	"context"
)

// NotificationService defines the interface for push notification services
type NotificationService interface {
	// NotifyEntitlementsChanged sends a silent data push telling a device
	// to refresh its entitlement state.
	NotifyEntitlementsChanged(ctx context.Context, instanceID string, data map[string]string) error

	// BroadcastContentChanged pushes a content update to every device
	// subscribed to the product's topic.
	BroadcastContentChanged(ctx context.Context, product string, data map[string]string) error
}
