package impl

import (
	"context"
	"log/slog"
	"time"

	"tollgate/internal/domain/entity"
	"tollgate/internal/domain/service"

	"github.com/pkg/errors"
)

var (
	// ErrAckRetriesExhausted is returned when every acknowledge attempt
	// came back recoverable. Distinguishable from ErrAckTerminal so logs
	// can separate provider flakiness from misconfiguration.
	ErrAckRetriesExhausted = errors.New("acknowledge retries exhausted")
	// ErrAckTerminal is returned when the provider answered with a
	// response retrying cannot fix.
	ErrAckTerminal = errors.New("acknowledge failed with terminal response")
)

// AcknowledgeRetrier wraps the provider's acknowledge call with a bounded
// exponential backoff. It never mutates local state; the caller persists
// the outcome.
type AcknowledgeRetrier struct {
	provider    service.BillingProvider
	logger      *slog.Logger
	maxAttempts int
	backoffBase time.Duration

	// sleep is replaceable in tests.
	sleep func(ctx context.Context, d time.Duration) error
}

// NewAcknowledgeRetrier creates a retrier with the given bounds.
func NewAcknowledgeRetrier(provider service.BillingProvider, maxAttempts int, backoffBase time.Duration, logger *slog.Logger) *AcknowledgeRetrier {
	return &AcknowledgeRetrier{
		provider:    provider,
		logger:      logger,
		maxAttempts: maxAttempts,
		backoffBase: backoffBase,
		sleep:       sleepContext,
	}
}

// Acknowledge calls the provider up to maxAttempts times. A nil return
// means the provider considers the token acknowledged; any error means the
// caller must not assume acknowledgement happened.
func (r *AcknowledgeRetrier) Acknowledge(ctx context.Context, kind entity.ProductKind, product, purchaseToken string) error {
	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		response, err := r.provider.Acknowledge(ctx, kind, product, purchaseToken)

		switch response {
		case service.BillingResponseOK:
			r.logger.Info("Acknowledge success",
				slog.String("product", product),
				slog.Int("attempt", attempt),
			)

			return nil

		case service.BillingResponseAlreadyOwned:
			// Idempotent success: the provider already has the token.
			r.logger.Info("Token already acknowledged by provider",
				slog.String("product", product),
			)

			return nil

		case service.BillingResponseRecoverable:
			if attempt == r.maxAttempts {
				continue
			}
			delay := r.backoffBase * (1 << attempt)
			r.logger.Warn("Retrying acknowledge",
				slog.String("product", product),
				slog.Int("attempt", attempt),
				slog.Duration("delay", delay),
				slog.Any("error", err),
			)
			if sleepErr := r.sleep(ctx, delay); sleepErr != nil {
				return sleepErr
			}

		default:
			r.logger.Error("Acknowledge failed with terminal response",
				slog.String("product", product),
				slog.String("response", response.String()),
				slog.Any("error", err),
			)

			return errors.Wrapf(ErrAckTerminal, "product %s", product)
		}
	}

	return errors.Wrapf(ErrAckRetriesExhausted, "product %s after %d attempts", product, r.maxAttempts)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return errors.WithStack(ctx.Err())
	case <-timer.C:
		return nil
	}
}
