package impl

import (
	"context"
	"testing"
	"time"

	"tollgate/config"
	"tollgate/internal/domain/entity"
	"tollgate/internal/domain/repository"
	"tollgate/internal/domain/service"
	mockRepo "tollgate/internal/mocks/repository"
	mockSvc "tollgate/internal/mocks/service"
	"tollgate/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	testBasicProduct   = "basic_subscription"
	testPremiumProduct = "premium_subscription"
	testOneTimeProduct = "one_time_product"
)

type reconcilerMocks struct {
	repo      *mockRepo.MockEntitlementRepository
	tx        *mockRepo.MockTransactionManager
	factory   *mockRepo.MockRepositoryFactory
	backend   *mockSvc.MockEntitlementBackend
	provider  *mockSvc.MockBillingProvider
	publisher *mockSvc.MockEventPublisher
	notifier  *mockSvc.MockNotificationService
}

func newTestReconciler(t *testing.T) (usecase.ReconcileUsecase, *reconcilerMocks) {
	m := &reconcilerMocks{
		repo:      mockRepo.NewMockEntitlementRepository(t),
		tx:        mockRepo.NewMockTransactionManager(t),
		factory:   mockRepo.NewMockRepositoryFactory(t),
		backend:   mockSvc.NewMockEntitlementBackend(t),
		provider:  mockSvc.NewMockBillingProvider(t),
		publisher: mockSvc.NewMockEventPublisher(t),
		notifier:  mockSvc.NewMockNotificationService(t),
	}
	// Writes run through the transaction manager with a factory that
	// hands back the shared repository mock.
	m.factory.EXPECT().
		NewEntitlementRepository().
		Return(m.repo).
		Maybe()
	m.tx.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(m.factory)
		}).
		Maybe()
	cfg := &config.Config{
		Billing: &config.BillingConfig{
			AckMaxAttempts: 3,
			AckBackoffBase: time.Millisecond,
			BasicProduct:   testBasicProduct,
			PremiumProduct: testPremiumProduct,
			OneTimeProduct: testOneTimeProduct,
		},
	}
	svc := NewReconcilerService(ReconcilerServiceParams{
		EntitlementRepo: m.repo,
		TxManager:       m.tx,
		Backend:         m.backend,
		Provider:        m.provider,
		Publisher:       m.publisher,
		Notifier:        m.notifier,
		Config:          cfg,
		Logger:          testLogger(),
	})

	return svc, m
}

func TestMergeEntitlements_TokenBackfill(t *testing.T) {
	remote := []entity.Entitlement{
		{Product: testBasicProduct, IsEntitlementActive: true, IsAcknowledged: true},
	}
	purchases := []entity.DevicePurchase{
		{Products: []string{testBasicProduct}, PurchaseToken: "token-1"},
	}

	merged := mergeEntitlements(nil, remote, true, purchases)

	require.Len(t, merged, 1)
	assert.Equal(t, "token-1", merged[0].PurchaseToken)
	assert.True(t, merged[0].IsLocalPurchase)
}

func TestMergeEntitlements_ClearsLocalFlagWithoutPurchase(t *testing.T) {
	oldLocal := []entity.Entitlement{
		{Product: testBasicProduct, PurchaseToken: "token-1", IsEntitlementActive: true, IsLocalPurchase: true},
	}
	remote := []entity.Entitlement{
		{Product: testBasicProduct, PurchaseToken: "token-1", IsEntitlementActive: true, IsLocalPurchase: true},
	}

	merged := mergeEntitlements(oldLocal, remote, true, nil)

	require.Len(t, merged, 1)
	assert.False(t, merged[0].IsLocalPurchase)
}

func TestMergeEntitlements_DropsRecordsBackendNoLongerReports(t *testing.T) {
	oldLocal := []entity.Entitlement{
		{Product: testBasicProduct, PurchaseToken: "token-1", IsEntitlementActive: true},
		{Product: testPremiumProduct, PurchaseToken: "token-2", IsEntitlementActive: true},
	}
	remote := []entity.Entitlement{
		{Product: testPremiumProduct, PurchaseToken: "token-2", IsEntitlementActive: true},
	}

	merged := mergeEntitlements(oldLocal, remote, true, nil)

	require.Len(t, merged, 1)
	assert.Equal(t, testPremiumProduct, merged[0].Product)
}

func TestMergeEntitlements_RetainsForeignOwnedLocalPurchase(t *testing.T) {
	foreign := entity.AlreadyOwnedEntitlement(testPremiumProduct, "token-2")
	oldLocal := []entity.Entitlement{
		{Product: testBasicProduct, PurchaseToken: "token-1", IsEntitlementActive: true},
		foreign,
	}
	remote := []entity.Entitlement{
		{Product: testBasicProduct, PurchaseToken: "token-1", IsEntitlementActive: true},
	}
	purchases := []entity.DevicePurchase{
		{Products: []string{testBasicProduct}, PurchaseToken: "token-1"},
		{Products: []string{testPremiumProduct}, PurchaseToken: "token-2"},
	}

	merged := mergeEntitlements(oldLocal, remote, true, purchases)

	require.Len(t, merged, 2)
	retained := entity.EntitlementForProduct(merged, testPremiumProduct)
	require.NotNil(t, retained)
	// Retained verbatim: still foreign-owned, still inactive.
	assert.Equal(t, foreign, *retained)
	assert.True(t, retained.IsTransferRequired())
}

func TestMergeEntitlements_RetentionRequiresExactToken(t *testing.T) {
	oldLocal := []entity.Entitlement{
		entity.AlreadyOwnedEntitlement(testPremiumProduct, "token-2"),
	}
	purchases := []entity.DevicePurchase{
		// Same product, different token: the conflicting purchase is gone.
		{Products: []string{testPremiumProduct}, PurchaseToken: "token-3"},
	}

	merged := mergeEntitlements(oldLocal, nil, true, purchases)

	assert.Empty(t, merged)
}

func TestMergeEntitlements_RemoteWinsOverRetention(t *testing.T) {
	oldLocal := []entity.Entitlement{
		entity.AlreadyOwnedEntitlement(testPremiumProduct, "token-2"),
	}
	remote := []entity.Entitlement{
		{Product: testPremiumProduct, PurchaseToken: "token-2", IsEntitlementActive: true, IsAcknowledged: true},
	}
	purchases := []entity.DevicePurchase{
		{Products: []string{testPremiumProduct}, PurchaseToken: "token-2"},
	}

	merged := mergeEntitlements(oldLocal, remote, true, purchases)

	require.Len(t, merged, 1)
	assert.True(t, merged[0].IsEntitlementActive)
	assert.False(t, merged[0].SubAlreadyOwned)
}

func TestMergeEntitlements_NoSnapshotIsIdempotent(t *testing.T) {
	oldLocal := []entity.Entitlement{
		{Product: testBasicProduct, PurchaseToken: "token-1", IsEntitlementActive: true, IsAcknowledged: true},
	}
	purchases := []entity.DevicePurchase{
		{Products: []string{testBasicProduct}, PurchaseToken: "token-1"},
	}

	once := mergeEntitlements(oldLocal, nil, false, purchases)
	twice := mergeEntitlements(once, nil, false, purchases)

	assert.Equal(t, once, twice)
}

func TestReconcilerService_SyncDevicePurchases_RegistersAndAcknowledges(t *testing.T) {
	svc, m := newTestReconciler(t)

	ctx := context.Background()
	userID := uuid.New()
	purchases := []entity.DevicePurchase{
		{Products: []string{testBasicProduct}, PurchaseToken: "token-1", IsAutoRenewing: true},
	}
	registered := []entity.Entitlement{
		{Product: testBasicProduct, PurchaseToken: "token-1", IsEntitlementActive: true, WillRenew: true},
	}

	m.repo.EXPECT().
		GetAll(ctx, userID).
		Return([]entity.Entitlement{}, nil)

	m.backend.EXPECT().
		Register(ctx, userID, entity.ProductKindBasic, testBasicProduct, "token-1").
		Return(registered, nil)

	m.repo.EXPECT().
		ReplaceAll(ctx, userID, mock.Anything).
		Return(nil)

	m.backend.EXPECT().
		Acknowledge(ctx, userID, entity.ProductKindBasic, testBasicProduct, "token-1").
		Return(registered, nil)

	m.provider.EXPECT().
		Acknowledge(ctx, entity.ProductKindBasic, testBasicProduct, "token-1").
		Return(service.BillingResponseOK, nil)

	m.publisher.EXPECT().
		PublishEntitlementEvent(ctx, &service.EntitlementEvent{
			UserID:    userID.String(),
			Product:   testBasicProduct,
			Entitled:  true,
			PlanState: string(entity.PlanStateBasicRenewable),
		}).
		Return(nil)

	result, err := svc.SyncDevicePurchases(ctx, userID, purchases, usecase.SyncOptions{})
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.True(t, result[0].IsAcknowledged)
	assert.True(t, result[0].IsLocalPurchase)
}

func TestReconcilerService_SyncDevicePurchases_SkipsKnownToken(t *testing.T) {
	svc, m := newTestReconciler(t)

	ctx := context.Background()
	userID := uuid.New()
	oldLocal := []entity.Entitlement{
		{
			Product:             testBasicProduct,
			PurchaseToken:       "token-1",
			IsEntitlementActive: true,
			IsAcknowledged:      true,
			WillRenew:           true,
			IsLocalPurchase:     true,
		},
	}
	purchases := []entity.DevicePurchase{
		{Products: []string{testBasicProduct}, PurchaseToken: "token-1", IsAutoRenewing: true},
	}

	m.repo.EXPECT().
		GetAll(ctx, userID).
		Return(oldLocal, nil)

	// No Register call: the token is already accounted for locally.
	m.repo.EXPECT().
		ReplaceAll(ctx, userID, oldLocal).
		Return(nil)

	result, err := svc.SyncDevicePurchases(ctx, userID, purchases, usecase.SyncOptions{})
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, oldLocal, result)
}

func TestReconcilerService_SyncDevicePurchases_IgnoresUnknownProduct(t *testing.T) {
	svc, m := newTestReconciler(t)

	ctx := context.Background()
	userID := uuid.New()
	purchases := []entity.DevicePurchase{
		{Products: []string{"not_in_catalog"}, PurchaseToken: "token-9"},
	}

	m.repo.EXPECT().
		GetAll(ctx, userID).
		Return([]entity.Entitlement{}, nil)

	m.repo.EXPECT().
		ReplaceAll(ctx, userID, mock.Anything).
		Return(nil)

	result, err := svc.SyncDevicePurchases(ctx, userID, purchases, usecase.SyncOptions{})
	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestReconcilerService_SyncDevicePurchases_PersistsInTransaction(t *testing.T) {
	svc, m := newTestReconciler(t)

	ctx := context.Background()
	userID := uuid.New()
	oldLocal := []entity.Entitlement{
		{
			Product:             testBasicProduct,
			PurchaseToken:       "token-1",
			IsEntitlementActive: true,
			IsAcknowledged:      true,
			IsLocalPurchase:     true,
		},
	}
	purchases := []entity.DevicePurchase{
		{Products: []string{testBasicProduct}, PurchaseToken: "token-1"},
	}

	m.repo.EXPECT().
		GetAll(ctx, userID).
		Return(oldLocal, nil)

	m.repo.EXPECT().
		ReplaceAll(ctx, userID, oldLocal).
		Return(nil)

	_, err := svc.SyncDevicePurchases(ctx, userID, purchases, usecase.SyncOptions{})
	require.NoError(t, err)
	// The write commits through the transaction-scoped repository.
	m.tx.AssertNumberOfCalls(t, "Execute", 1)
	m.factory.AssertNumberOfCalls(t, "NewEntitlementRepository", 1)
}

func TestReconcilerService_SyncDevicePurchases_RollbackPropagates(t *testing.T) {
	svc, m := newTestReconciler(t)

	ctx := context.Background()
	userID := uuid.New()
	purchases := []entity.DevicePurchase{
		{Products: []string{testBasicProduct}, PurchaseToken: "token-1"},
	}

	m.repo.EXPECT().
		GetAll(ctx, userID).
		Return([]entity.Entitlement{}, nil)

	m.backend.EXPECT().
		Register(ctx, userID, entity.ProductKindBasic, testBasicProduct, "token-1").
		Return([]entity.Entitlement{
			{Product: testBasicProduct, PurchaseToken: "token-1", IsEntitlementActive: true},
		}, nil)

	m.repo.EXPECT().
		ReplaceAll(ctx, userID, mock.Anything).
		Return(errors.New("write conflict"))

	_, err := svc.SyncDevicePurchases(ctx, userID, purchases, usecase.SyncOptions{})
	require.Error(t, err)
	m.tx.AssertNumberOfCalls(t, "Execute", 1)
}

func TestReconcilerService_SyncDevicePurchases_NotifiesDevice(t *testing.T) {
	svc, m := newTestReconciler(t)

	ctx := context.Background()
	userID := uuid.New()
	oldLocal := []entity.Entitlement{
		{
			Product:             testBasicProduct,
			PurchaseToken:       "token-1",
			IsEntitlementActive: true,
			IsAcknowledged:      true,
			IsLocalPurchase:     true,
		},
	}
	purchases := []entity.DevicePurchase{
		{Products: []string{testBasicProduct}, PurchaseToken: "token-1"},
	}

	m.repo.EXPECT().
		GetAll(ctx, userID).
		Return(oldLocal, nil)

	m.repo.EXPECT().
		ReplaceAll(ctx, userID, mock.Anything).
		Return(nil)

	m.notifier.EXPECT().
		NotifyEntitlementsChanged(ctx, "instance-1", mock.Anything).
		Return(nil)

	_, err := svc.SyncDevicePurchases(ctx, userID, purchases, usecase.SyncOptions{InstanceID: "instance-1"})
	require.NoError(t, err)
}

func TestReconcilerService_Refresh_FetchErrorLeavesLocalUntouched(t *testing.T) {
	svc, m := newTestReconciler(t)

	ctx := context.Background()
	userID := uuid.New()

	m.backend.EXPECT().
		FetchEntitlements(ctx, userID).
		Return(nil, errors.New("backend down"))

	result, err := svc.Refresh(ctx, userID, nil, usecase.SyncOptions{})
	require.Error(t, err)
	assert.Nil(t, result)
	m.repo.AssertNotCalled(t, "ReplaceAll", mock.Anything, mock.Anything, mock.Anything)
}

func TestReconcilerService_Refresh_AcknowledgeFailureKeepsRecordPending(t *testing.T) {
	svc, m := newTestReconciler(t)

	ctx := context.Background()
	userID := uuid.New()
	remote := []entity.Entitlement{
		{Product: testBasicProduct, PurchaseToken: "token-1", IsEntitlementActive: true, WillRenew: true},
	}

	m.backend.EXPECT().
		FetchEntitlements(ctx, userID).
		Return(remote, nil)

	m.repo.EXPECT().
		GetAll(ctx, userID).
		Return([]entity.Entitlement{}, nil)

	m.repo.EXPECT().
		ReplaceAll(ctx, userID, mock.Anything).
		Return(nil)

	m.backend.EXPECT().
		Acknowledge(ctx, userID, entity.ProductKindBasic, testBasicProduct, "token-1").
		Return(nil, errors.New("backend unavailable"))

	m.publisher.EXPECT().
		PublishEntitlementEvent(ctx, mock.Anything).
		Return(nil)

	result, err := svc.Refresh(ctx, userID, nil, usecase.SyncOptions{})
	require.NoError(t, err)
	require.Len(t, result, 1)
	// The record stays pending; the next pass retries acknowledgement.
	assert.False(t, result[0].IsAcknowledged)
	m.provider.AssertNotCalled(t, "Acknowledge", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestReconcilerService_TransferPurchase_UnknownProduct(t *testing.T) {
	svc, m := newTestReconciler(t)

	ctx := context.Background()
	userID := uuid.New()

	_, err := svc.TransferPurchase(ctx, userID, testOneTimeProduct, "token-1", nil, usecase.SyncOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownProduct)
	m.backend.AssertNotCalled(t, "Transfer", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestReconcilerService_TransferPurchase_ReplacesPlaceholder(t *testing.T) {
	svc, m := newTestReconciler(t)

	ctx := context.Background()
	userID := uuid.New()
	placeholder := entity.AlreadyOwnedEntitlement(testPremiumProduct, "token-2")
	transferred := []entity.Entitlement{
		{
			Product:             testPremiumProduct,
			PurchaseToken:       "token-2",
			IsEntitlementActive: true,
			IsAcknowledged:      true,
			WillRenew:           true,
		},
	}
	purchases := []entity.DevicePurchase{
		{Products: []string{testPremiumProduct}, PurchaseToken: "token-2", IsAutoRenewing: true},
	}

	m.backend.EXPECT().
		Transfer(ctx, userID, testPremiumProduct, "token-2").
		Return(nil)

	m.backend.EXPECT().
		FetchEntitlements(ctx, userID).
		Return(transferred, nil)

	m.repo.EXPECT().
		GetAll(ctx, userID).
		Return([]entity.Entitlement{placeholder}, nil)

	m.repo.EXPECT().
		ReplaceAll(ctx, userID, mock.Anything).
		Return(nil)

	m.publisher.EXPECT().
		PublishEntitlementEvent(ctx, &service.EntitlementEvent{
			UserID:    userID.String(),
			Product:   testPremiumProduct,
			Entitled:  true,
			PlanState: string(entity.PlanStatePremiumRenewable),
		}).
		Return(nil)

	result, err := svc.TransferPurchase(ctx, userID, testPremiumProduct, "token-2", purchases, usecase.SyncOptions{})
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.False(t, result[0].SubAlreadyOwned)
	assert.True(t, result[0].IsEntitlementActive)
}

func TestReconcilerService_ConsumePurchase(t *testing.T) {
	svc, m := newTestReconciler(t)

	ctx := context.Background()
	userID := uuid.New()
	oldLocal := []entity.Entitlement{
		{
			Product:             testOneTimeProduct,
			PurchaseToken:       "token-5",
			IsEntitlementActive: true,
			IsAcknowledged:      true,
		},
	}
	consumed := []entity.Entitlement{
		{
			Product:        testOneTimeProduct,
			PurchaseToken:  "token-5",
			IsAcknowledged: true,
			IsConsumed:     true,
		},
	}

	m.backend.EXPECT().
		Consume(ctx, userID, testOneTimeProduct, "token-5").
		Return(consumed, nil)

	m.repo.EXPECT().
		GetAll(ctx, userID).
		Return(oldLocal, nil)

	m.repo.EXPECT().
		ReplaceAll(ctx, userID, mock.Anything).
		Return(nil)

	m.publisher.EXPECT().
		PublishEntitlementEvent(ctx, &service.EntitlementEvent{
			UserID:    userID.String(),
			Product:   testOneTimeProduct,
			Entitled:  false,
			PlanState: string(entity.PlanStateNone),
		}).
		Return(nil)

	result, err := svc.ConsumePurchase(ctx, userID, testOneTimeProduct, "token-5", nil, usecase.SyncOptions{})
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.True(t, result[0].IsConsumed)
	assert.False(t, result[0].IsEntitlementActive)
}

func TestReconcilerService_ConsumePurchase_RejectsSubscription(t *testing.T) {
	svc, m := newTestReconciler(t)

	ctx := context.Background()
	userID := uuid.New()

	_, err := svc.ConsumePurchase(ctx, userID, testBasicProduct, "token-1", nil, usecase.SyncOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownProduct)
	m.backend.AssertNotCalled(t, "Consume", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
