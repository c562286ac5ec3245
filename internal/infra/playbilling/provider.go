// Package playbilling implements the billing provider on top of the Google
// Play Developer API.
package playbilling

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"tollgate/config"
	"tollgate/internal/domain/entity"
	"tollgate/internal/domain/service"
	"tollgate/internal/errors"

	"go.uber.org/fx"
	"google.golang.org/api/androidpublisher/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

type playBillingProvider struct {
	service     *androidpublisher.Service
	packageName string
	logger      *slog.Logger
}

// ProviderParams holds dependencies for the Play billing provider, injected by Fx.
type ProviderParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewPlayBillingProvider creates a BillingProvider backed by the Play
// Developer API using the configured service account.
func NewPlayBillingProvider(params ProviderParams) (service.BillingProvider, error) {
	cfg := params.Config.Billing
	if cfg == nil || cfg.PackageName == "" {
		return nil, errors.New("billing package name is required")
	}

	opts := []option.ClientOption{}
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	publisher, err := androidpublisher.NewService(params.Ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create androidpublisher service")
	}

	params.Logger.Info("Play billing provider initialized",
		slog.String("package_name", cfg.PackageName),
	)

	return &playBillingProvider{
		service:     publisher,
		packageName: cfg.PackageName,
		logger:      params.Logger,
	}, nil
}

// Acknowledge tells Play the purchase has been granted. Subscriptions and
// one-time products use different Developer API endpoints.
func (p *playBillingProvider) Acknowledge(ctx context.Context, kind entity.ProductKind, product, purchaseToken string) (service.BillingResponse, error) {
	var err error
	if kind.IsSubscription() {
		err = p.service.Purchases.Subscriptions.
			Acknowledge(p.packageName, product, purchaseToken, &androidpublisher.SubscriptionPurchasesAcknowledgeRequest{}).
			Context(ctx).
			Do()
	} else {
		err = p.service.Purchases.Products.
			Acknowledge(p.packageName, product, purchaseToken, &androidpublisher.ProductPurchasesAcknowledgeRequest{}).
			Context(ctx).
			Do()
	}
	if err == nil {
		return service.BillingResponseOK, nil
	}

	return classifyError(err), errors.Wrapf(err, "acknowledge %s", product)
}

// classifyError maps a Developer API error onto the retry policy's response
// classes.
func classifyError(err error) service.BillingResponse {
	var apiErr *googleapi.Error
	if !errors.As(err, &apiErr) {
		// Transport-level failure, worth retrying.
		return service.BillingResponseRecoverable
	}

	switch {
	case apiErr.Code == http.StatusConflict:
		return service.BillingResponseAlreadyOwned
	case apiErr.Code == http.StatusBadRequest && strings.Contains(strings.ToLower(apiErr.Message), "already"):
		// Play answers 400 when the token was acknowledged earlier.
		return service.BillingResponseAlreadyOwned
	case apiErr.Code == http.StatusTooManyRequests || apiErr.Code >= http.StatusInternalServerError:
		return service.BillingResponseRecoverable
	default:
		return service.BillingResponseTerminal
	}
}
