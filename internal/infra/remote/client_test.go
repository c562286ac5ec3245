package remote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tollgate/config"
	"tollgate/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) *backendClient {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	backend, err := NewBackendClient(BackendClientParams{
		Config: &config.Config{
			Backend: &config.BackendConfig{
				BaseURL: server.URL,
				Timeout: 5 * time.Second,
			},
		},
		Logger: testLogger(),
	})
	require.NoError(t, err)

	return backend.(*backendClient)
}

func writeEntitlements(t *testing.T, w http.ResponseWriter, records []entity.Entitlement) {
	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(map[string]any{"entitlements": records})
	require.NoError(t, err)
}

func TestBackendClient_FetchEntitlements(t *testing.T) {
	userID := uuid.New()
	records := []entity.Entitlement{
		{Product: "basic_subscription", PurchaseToken: "token-1", IsEntitlementActive: true},
	}

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/users/"+userID.String()+"/entitlements", r.URL.Path)
		writeEntitlements(t, w, records)
	}))

	got, err := client.FetchEntitlements(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, records, got)
	assert.False(t, client.Loading())
}

func TestBackendClient_Register(t *testing.T) {
	userID := uuid.New()
	records := []entity.Entitlement{
		{Product: "basic_subscription", PurchaseToken: "token-1", IsEntitlementActive: true},
	}

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/users/"+userID.String()+"/purchases/register", r.URL.Path)

		var body registerRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "basic", body.Kind)
		assert.Equal(t, "token-1", body.PurchaseToken)

		writeEntitlements(t, w, records)
	}))

	got, err := client.Register(context.Background(), userID, entity.ProductKindBasic, "basic_subscription", "token-1")
	require.NoError(t, err)
	assert.Equal(t, records, got)
}

func TestBackendClient_RegisterConflictSynthesizesRecord(t *testing.T) {
	userID := uuid.New()
	existing := []entity.Entitlement{
		{Product: "basic_subscription", PurchaseToken: "token-1", IsEntitlementActive: true},
	}

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost:
			// Token belongs to another account.
			w.WriteHeader(http.StatusConflict)
		default:
			writeEntitlements(t, w, existing)
		}
	}))

	got, err := client.Register(context.Background(), userID, entity.ProductKindPremium, "premium_subscription", "token-2")
	require.NoError(t, err)
	require.Len(t, got, 2)

	placeholder := entity.EntitlementForProduct(got, "premium_subscription")
	require.NotNil(t, placeholder)
	assert.True(t, placeholder.SubAlreadyOwned)
	assert.True(t, placeholder.IsLocalPurchase)
	assert.False(t, placeholder.IsEntitlementActive)
	assert.Equal(t, "token-2", placeholder.PurchaseToken)
}

func TestBackendClient_RegisterServerErrorIsError(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	_, err := client.Register(context.Background(), uuid.New(), entity.ProductKindBasic, "basic_subscription", "token-1")
	require.Error(t, err)
}

func TestBackendClient_LoadingDuringRequest(t *testing.T) {
	loadingDuringCall := make(chan bool, 1)

	var client *backendClient
	client = newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		loadingDuringCall <- client.Loading()
		writeEntitlements(t, w, nil)
	}))

	_, err := client.FetchEntitlements(context.Background(), uuid.New())
	require.NoError(t, err)

	assert.True(t, <-loadingDuringCall)
	assert.False(t, client.Loading())
}

func TestBackendClient_NilEntitlementsDecodeAsEmpty(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{}`)) //nolint:errcheck
	}))

	got, err := client.FetchEntitlements(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestBackendClient_DeviceRegistration(t *testing.T) {
	userID := uuid.New()
	var paths []string

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)

		var body deviceRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "instance-1", body.InstanceID)

		w.WriteHeader(http.StatusNoContent)
	}))

	ctx := context.Background()
	require.NoError(t, client.RegisterDevice(ctx, userID, "instance-1"))
	require.NoError(t, client.UnregisterDevice(ctx, userID, "instance-1"))

	assert.Equal(t, []string{
		"/api/v1/users/" + userID.String() + "/devices/register",
		"/api/v1/users/" + userID.String() + "/devices/unregister",
	}, paths)
}
