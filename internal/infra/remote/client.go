package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"tollgate/config"
	"tollgate/internal/domain/entity"
	"tollgate/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type backendClient struct {
	baseURL    string
	httpClient *http.Client
	counter    *pendingCounter
	logger     *slog.Logger
}

// BackendClientParams holds dependencies for the backend client, injected by Fx.
type BackendClientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewBackendClient creates the HTTP client for the entitlement backend of
// record.
func NewBackendClient(params BackendClientParams) (service.EntitlementBackend, error) {
	cfg := params.Config.Backend
	if cfg == nil || cfg.BaseURL == "" {
		return nil, errors.New("backend base URL is required")
	}

	return &backendClient{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		counter: newPendingCounter(params.Logger),
		logger:  params.Logger,
	}, nil
}

// registerRequest is the body for register, acknowledge, consume and
// transfer calls.
type registerRequest struct {
	Kind          string `json:"kind,omitempty"`
	Product       string `json:"product"`
	PurchaseToken string `json:"purchase_token"`
}

type deviceRequest struct {
	InstanceID string `json:"instance_id"`
}

// entitlementsResponse is the backend's standard reply: the user's full
// record list after the operation.
type entitlementsResponse struct {
	Entitlements []entity.Entitlement `json:"entitlements"`
}

// FetchEntitlements returns the backend's full entitlement snapshot.
func (c *backendClient) FetchEntitlements(ctx context.Context, userID uuid.UUID) ([]entity.Entitlement, error) {
	c.counter.increment()
	defer c.counter.decrement()

	return c.fetchEntitlements(ctx, userID)
}

// Register associates a purchase token with the user's account.
//
// An ownership conflict (409) is not an error: the client synthesizes an
// inactive record flagged SubAlreadyOwned and splices it into the current
// snapshot, so the caller can keep the purchase visible and offer a
// transfer.
func (c *backendClient) Register(ctx context.Context, userID uuid.UUID, kind entity.ProductKind, product, purchaseToken string) ([]entity.Entitlement, error) {
	c.counter.increment()
	defer c.counter.decrement()

	body := registerRequest{Kind: kind.String(), Product: product, PurchaseToken: purchaseToken}
	records, status, err := c.postForEntitlements(ctx, c.userPath(userID, "purchases/register"), body)
	if err == nil {
		return records, nil
	}
	if status != http.StatusConflict {
		return nil, err
	}

	c.logger.Warn("Purchase token owned by another account",
		slog.String("product", product),
		slog.String("user_id", userID.String()),
	)

	current, fetchErr := c.fetchEntitlements(ctx, userID)
	if fetchErr != nil {
		return nil, fetchErr
	}

	return entity.InsertOrUpdate(current, entity.AlreadyOwnedEntitlement(product, purchaseToken)), nil
}

// Acknowledge marks a registered purchase as acknowledged on the backend.
func (c *backendClient) Acknowledge(ctx context.Context, userID uuid.UUID, kind entity.ProductKind, product, purchaseToken string) ([]entity.Entitlement, error) {
	c.counter.increment()
	defer c.counter.decrement()

	body := registerRequest{Kind: kind.String(), Product: product, PurchaseToken: purchaseToken}
	records, _, err := c.postForEntitlements(ctx, c.userPath(userID, "purchases/acknowledge"), body)

	return records, err
}

// Consume marks a one-time product purchase as consumed.
func (c *backendClient) Consume(ctx context.Context, userID uuid.UUID, product, purchaseToken string) ([]entity.Entitlement, error) {
	c.counter.increment()
	defer c.counter.decrement()

	body := registerRequest{Product: product, PurchaseToken: purchaseToken}
	records, _, err := c.postForEntitlements(ctx, c.userPath(userID, "purchases/consume"), body)

	return records, err
}

// Transfer reassigns ownership of a token to the user's account.
func (c *backendClient) Transfer(ctx context.Context, userID uuid.UUID, product, purchaseToken string) error {
	c.counter.increment()
	defer c.counter.decrement()

	body := registerRequest{Product: product, PurchaseToken: purchaseToken}
	_, _, err := c.postForEntitlements(ctx, c.userPath(userID, "purchases/transfer"), body)

	return err
}

// RegisterDevice registers an FCM instance ID for push updates.
func (c *backendClient) RegisterDevice(ctx context.Context, userID uuid.UUID, instanceID string) error {
	c.counter.increment()
	defer c.counter.decrement()

	return c.post(ctx, c.userPath(userID, "devices/register"), deviceRequest{InstanceID: instanceID})
}

// UnregisterDevice removes a previously registered FCM instance ID.
func (c *backendClient) UnregisterDevice(ctx context.Context, userID uuid.UUID, instanceID string) error {
	c.counter.increment()
	defer c.counter.decrement()

	return c.post(ctx, c.userPath(userID, "devices/unregister"), deviceRequest{InstanceID: instanceID})
}

// Loading reports whether any backend request is currently in flight.
func (c *backendClient) Loading() bool {
	return c.counter.loading()
}

func (c *backendClient) userPath(userID uuid.UUID, suffix string) string {
	return fmt.Sprintf("%s/api/v1/users/%s/%s", c.baseURL, userID.String(), suffix)
}

func (c *backendClient) fetchEntitlements(ctx context.Context, userID uuid.UUID) ([]entity.Entitlement, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.userPath(userID, "entitlements"), nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	records, _, err := c.doForEntitlements(req)

	return records, err
}

// postForEntitlements sends the request and decodes the standard record-list
// reply. The HTTP status is returned alongside so callers can branch on
// specific conditions like ownership conflicts.
func (c *backendClient) postForEntitlements(ctx context.Context, url string, body any) ([]entity.Entitlement, int, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, 0, errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, 0, errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.doForEntitlements(req)
}

func (c *backendClient) doForEntitlements(req *http.Request) ([]entity.Entitlement, int, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, errors.Wrap(service.ErrBackendUnavailable, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Drain so the connection can be reused.
		io.Copy(io.Discard, resp.Body) //nolint:errcheck

		return nil, resp.StatusCode, errors.Errorf("backend returned status %d for %s", resp.StatusCode, req.URL.Path)
	}

	var decoded entitlementsResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, resp.StatusCode, errors.WithStack(err)
	}
	if decoded.Entitlements == nil {
		decoded.Entitlements = []entity.Entitlement{}
	}

	return decoded.Entitlements, resp.StatusCode, nil
}

func (c *backendClient) post(ctx context.Context, url string, body any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(service.ErrBackendUnavailable, err.Error())
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body) //nolint:errcheck

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Errorf("backend returned status %d for %s", resp.StatusCode, req.URL.Path)
	}

	return nil
}
