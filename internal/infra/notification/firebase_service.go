package notification

import (
	"context"
	"fmt"

	"tollgate/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

type firebaseService struct {
	client *messaging.Client
}

// NewFirebaseService creates a new Firebase notification service instance
func NewFirebaseService(ctx context.Context, credentialsPath string) (service.NotificationService, error) {
	opt := option.WithCredentialsFile(credentialsPath)
	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get messaging client: %w", err)
	}

	return &firebaseService{
		client: client,
	}, nil
}

// NotifyEntitlementsChanged sends a silent data-only push to a single device
// so it refetches its entitlement state. No notification payload: the client
// handles the refresh in the background.
func (s *firebaseService) NotifyEntitlementsChanged(ctx context.Context, instanceID string, data map[string]string) error {
	message := &messaging.Message{
		Token: instanceID,
		Data:  data,
	}

	_, err := s.client.Send(ctx, message)
	if err != nil {
		return fmt.Errorf("failed to send notification: %w", err)
	}

	return nil
}

// BroadcastContentChanged pushes a data message to the product's topic.
// Devices subscribe to the topic of each product they hold.
func (s *firebaseService) BroadcastContentChanged(ctx context.Context, product string, data map[string]string) error {
	message := &messaging.Message{
		Topic: product,
		Data:  data,
	}

	_, err := s.client.Send(ctx, message)
	if err != nil {
		return fmt.Errorf("failed to send topic notification: %w", err)
	}

	return nil
}
