package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tollgate/internal/delivery/http/middleware"
	"tollgate/internal/delivery/http/validator"
	"tollgate/internal/domain/entity"
	"tollgate/internal/domain/service"
	mockusecase "tollgate/internal/mocks/usecase"
	"tollgate/internal/usecase"
	"tollgate/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestBillingHandler(t *testing.T) (*mockusecase.MockReconcileUsecase, *BillingHandler) {
	t.Helper()

	mockReconcile := mockusecase.NewMockReconcileUsecase(t)
	h := NewBillingHandler(BillingHandlerParams{
		ReconcileUC: mockReconcile,
		Logger:      testLogger(),
	})

	return mockReconcile, h
}

func billingContext(t *testing.T, userID uuid.UUID, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.ContextKeyUserID, userID)

	return c, rec
}

func TestSyncPurchases(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	purchases := []entity.DevicePurchase{
		{Products: []string{"basic_subscription"}, PurchaseToken: "token-1", IsAutoRenewing: true},
	}
	reconciled := []entity.Entitlement{
		{Product: "basic_subscription", PurchaseToken: "token-1", IsEntitlementActive: true},
	}

	mockReconcile, h := newTestBillingHandler(t)
	mockReconcile.EXPECT().
		SyncDevicePurchases(mock.Anything, userID, purchases, mock.Anything).
		Return(reconciled, nil).Once()

	body := `{"purchases":[{"products":["basic_subscription"],"purchase_token":"token-1","is_auto_renewing":true}],"instance_id":"instance-1"}`
	c, rec := billingContext(t, userID, body)

	require.NoError(t, h.SyncPurchases(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Entitlements []entity.Entitlement `json:"entitlements"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, reconciled, resp.Data.Entitlements)
}

func TestSyncPurchases_PassesInstanceID(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	mockReconcile, h := newTestBillingHandler(t)
	mockReconcile.EXPECT().
		SyncDevicePurchases(mock.Anything, userID, mock.Anything, mock.Anything).
		Run(func(_ context.Context, _ uuid.UUID, _ []entity.DevicePurchase, opts usecase.SyncOptions) {
			assert.Equal(t, "instance-1", opts.InstanceID)
			assert.NotEmpty(t, opts.RequestID)
		}).
		Return(nil, nil).Once()

	c, rec := billingContext(t, userID, `{"purchases":[],"instance_id":"instance-1"}`)
	require.NoError(t, h.SyncPurchases(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSyncPurchases_MissingUserIsUnauthorized(t *testing.T) {
	t.Parallel()

	_, h := newTestBillingHandler(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"purchases":[]}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, h.SyncPurchases(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestTransferPurchase_UnknownProductIsBadRequest(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	mockReconcile, h := newTestBillingHandler(t)
	mockReconcile.EXPECT().
		TransferPurchase(mock.Anything, userID, "mystery_product", "token-1", mock.Anything, mock.Anything).
		Return(nil, impl.ErrUnknownProduct).Once()

	body := `{"product":"mystery_product","purchase_token":"token-1","purchases":[]}`
	c, rec := billingContext(t, userID, body)

	require.NoError(t, h.TransferPurchase(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "UNKNOWN_PRODUCT")
}

func TestTransferPurchase_MissingTokenFailsValidation(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	_, h := newTestBillingHandler(t)
	c, rec := billingContext(t, userID, `{"product":"basic_subscription","purchases":[]}`)

	require.NoError(t, h.TransferPurchase(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_FAILED")
}

func TestRefresh_BackendUnavailableIsBadGateway(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	mockReconcile, h := newTestBillingHandler(t)
	mockReconcile.EXPECT().
		Refresh(mock.Anything, userID, mock.Anything, mock.Anything).
		Return(nil, errors.Wrap(service.ErrBackendUnavailable, "connection refused")).Once()

	c, rec := billingContext(t, userID, `{"purchases":[]}`)
	require.NoError(t, h.Refresh(c))
	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "BACKEND_UNAVAILABLE")
}

func TestSyncPurchases_UnmappedErrorIsInternal(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	mockReconcile, h := newTestBillingHandler(t)
	mockReconcile.EXPECT().
		SyncDevicePurchases(mock.Anything, userID, mock.Anything, mock.Anything).
		Return(nil, errors.New("replica out of sync")).Once()

	c, rec := billingContext(t, userID, `{"purchases":[]}`)
	require.NoError(t, h.SyncPurchases(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "INTERNAL_ERROR")
}

func TestConsumePurchase(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	mockReconcile, h := newTestBillingHandler(t)
	mockReconcile.EXPECT().
		ConsumePurchase(mock.Anything, userID, "coin_pack", "token-9", mock.Anything, mock.Anything).
		Return([]entity.Entitlement{}, nil).Once()

	body := `{"product":"coin_pack","purchase_token":"token-9","purchases":[]}`
	c, rec := billingContext(t, userID, body)

	require.NoError(t, h.ConsumePurchase(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRefresh(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	mockReconcile, h := newTestBillingHandler(t)
	mockReconcile.EXPECT().
		Refresh(mock.Anything, userID, mock.Anything, mock.Anything).
		Return([]entity.Entitlement{}, nil).Once()

	c, rec := billingContext(t, userID, `{"purchases":[]}`)
	require.NoError(t, h.Refresh(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
