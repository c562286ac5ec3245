package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"tollgate/internal/domain/entity"
	"tollgate/internal/domain/service"
	mockSvc "tollgate/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestRetrier returns a retrier whose sleeps are recorded instead of
// executed.
func newTestRetrier(provider service.BillingProvider, maxAttempts int) (*AcknowledgeRetrier, *[]time.Duration) {
	retrier := NewAcknowledgeRetrier(provider, maxAttempts, 500*time.Millisecond, testLogger())
	delays := &[]time.Duration{}
	retrier.sleep = func(_ context.Context, d time.Duration) error {
		*delays = append(*delays, d)
		return nil
	}

	return retrier, delays
}

func TestAcknowledgeRetrier_SucceedsFirstAttempt(t *testing.T) {
	mockProvider := mockSvc.NewMockBillingProvider(t)
	retrier, delays := newTestRetrier(mockProvider, 3)

	ctx := context.Background()

	mockProvider.EXPECT().
		Acknowledge(ctx, entity.ProductKindBasic, "basic_subscription", "token-1").
		Return(service.BillingResponseOK, nil).
		Once()

	err := retrier.Acknowledge(ctx, entity.ProductKindBasic, "basic_subscription", "token-1")
	require.NoError(t, err)
	assert.Empty(t, *delays)
}

func TestAcknowledgeRetrier_AlreadyOwnedIsSuccess(t *testing.T) {
	mockProvider := mockSvc.NewMockBillingProvider(t)
	retrier, delays := newTestRetrier(mockProvider, 3)

	ctx := context.Background()

	mockProvider.EXPECT().
		Acknowledge(ctx, entity.ProductKindPremium, "premium_subscription", "token-1").
		Return(service.BillingResponseAlreadyOwned, nil).
		Once()

	err := retrier.Acknowledge(ctx, entity.ProductKindPremium, "premium_subscription", "token-1")
	require.NoError(t, err)
	assert.Empty(t, *delays)
}

func TestAcknowledgeRetrier_RecoverableThenSuccess(t *testing.T) {
	mockProvider := mockSvc.NewMockBillingProvider(t)
	retrier, delays := newTestRetrier(mockProvider, 3)

	ctx := context.Background()

	mockProvider.EXPECT().
		Acknowledge(ctx, entity.ProductKindBasic, "basic_subscription", "token-1").
		Return(service.BillingResponseRecoverable, errors.New("service disconnected")).
		Times(2)
	mockProvider.EXPECT().
		Acknowledge(ctx, entity.ProductKindBasic, "basic_subscription", "token-1").
		Return(service.BillingResponseOK, nil).
		Once()

	err := retrier.Acknowledge(ctx, entity.ProductKindBasic, "basic_subscription", "token-1")
	require.NoError(t, err)

	// Backoff doubles from the base and never shrinks between attempts.
	require.Len(t, *delays, 2)
	assert.Equal(t, 1*time.Second, (*delays)[0])
	assert.Equal(t, 2*time.Second, (*delays)[1])
	assert.LessOrEqual(t, (*delays)[0], (*delays)[1])
}

func TestAcknowledgeRetrier_ExhaustsRetries(t *testing.T) {
	mockProvider := mockSvc.NewMockBillingProvider(t)
	retrier, delays := newTestRetrier(mockProvider, 3)

	ctx := context.Background()

	mockProvider.EXPECT().
		Acknowledge(ctx, entity.ProductKindBasic, "basic_subscription", "token-1").
		Return(service.BillingResponseRecoverable, errors.New("service disconnected")).
		Times(3)

	err := retrier.Acknowledge(ctx, entity.ProductKindBasic, "basic_subscription", "token-1")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAckRetriesExhausted)
	// No sleep after the final attempt.
	assert.Len(t, *delays, 2)
}

func TestAcknowledgeRetrier_TerminalAbortsImmediately(t *testing.T) {
	mockProvider := mockSvc.NewMockBillingProvider(t)
	retrier, delays := newTestRetrier(mockProvider, 3)

	ctx := context.Background()

	mockProvider.EXPECT().
		Acknowledge(ctx, entity.ProductKindBasic, "basic_subscription", "token-1").
		Return(service.BillingResponseTerminal, errors.New("developer error")).
		Once()

	err := retrier.Acknowledge(ctx, entity.ProductKindBasic, "basic_subscription", "token-1")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAckTerminal)
	assert.NotErrorIs(t, err, ErrAckRetriesExhausted)
	assert.Empty(t, *delays)
}

func TestAcknowledgeRetrier_StopsWhenContextCancelled(t *testing.T) {
	mockProvider := mockSvc.NewMockBillingProvider(t)
	retrier := NewAcknowledgeRetrier(mockProvider, 3, 500*time.Millisecond, testLogger())
	retrier.sleep = func(ctx context.Context, _ time.Duration) error {
		return context.Canceled
	}

	ctx := context.Background()

	mockProvider.EXPECT().
		Acknowledge(ctx, entity.ProductKindBasic, "basic_subscription", "token-1").
		Return(service.BillingResponseRecoverable, errors.New("service disconnected")).
		Once()

	err := retrier.Acknowledge(ctx, entity.ProductKindBasic, "basic_subscription", "token-1")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
