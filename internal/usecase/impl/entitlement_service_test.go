package impl

import (
	"context"
	"testing"

	"tollgate/config"
	"tollgate/internal/domain/entity"
	mockrepo "tollgate/internal/mocks/repository"
	mockservice "tollgate/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type entitlementServiceMocks struct {
	repo    *mockrepo.MockEntitlementRepository
	backend *mockservice.MockEntitlementBackend
}

func newTestEntitlementService(t *testing.T) (entitlementServiceMocks, *entitlementService) {
	t.Helper()

	mocks := entitlementServiceMocks{
		repo:    mockrepo.NewMockEntitlementRepository(t),
		backend: mockservice.NewMockEntitlementBackend(t),
	}

	svc := NewEntitlementService(EntitlementServiceParams{
		EntitlementRepo: mocks.repo,
		Backend:         mocks.backend,
		Config: &config.Config{
			Billing: &config.BillingConfig{
				BasicProduct:   testBasicProduct,
				PremiumProduct: testPremiumProduct,
				OneTimeProduct: testOneTimeProduct,
			},
		},
		Logger: testLogger(),
	})

	return mocks, svc.(*entitlementService)
}

func TestEntitlementService_GetEntitlements(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	userID := uuid.New()
	records := []entity.Entitlement{
		{Product: testBasicProduct, PurchaseToken: "token-1", IsEntitlementActive: true},
	}

	mocks, svc := newTestEntitlementService(t)
	mocks.repo.EXPECT().GetAll(ctx, userID).Return(records, nil).Once()

	got, err := svc.GetEntitlements(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, records, got)
}

func TestEntitlementService_CurrentPlan(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	userID := uuid.New()

	mocks, svc := newTestEntitlementService(t)
	mocks.repo.EXPECT().GetAll(ctx, userID).Return([]entity.Entitlement{
		{
			Product:             testPremiumProduct,
			IsEntitlementActive: true,
			IsAcknowledged:      true,
			IsLocalPurchase:     true,
			WillRenew:           true,
		},
	}, nil).Once()

	plan, err := svc.CurrentPlan(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, entity.PlanStatePremiumRenewable, plan)
}

func TestEntitlementService_CurrentPlan_RepoErrorIsNone(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	userID := uuid.New()

	mocks, svc := newTestEntitlementService(t)
	mocks.repo.EXPECT().GetAll(ctx, userID).
		Return(nil, errors.New("db down")).Once()

	plan, err := svc.CurrentPlan(ctx, userID)
	require.Error(t, err)
	assert.Equal(t, entity.PlanStateNone, plan)
}

func TestEntitlementService_Loading(t *testing.T) {
	t.Parallel()

	mocks, svc := newTestEntitlementService(t)
	mocks.backend.EXPECT().Loading().Return(true).Once()

	assert.True(t, svc.Loading())
}

func TestEntitlementService_DeleteLocalData(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	userID := uuid.New()

	mocks, svc := newTestEntitlementService(t)
	mocks.repo.EXPECT().DeleteAll(ctx, userID).Return(nil).Once()

	require.NoError(t, svc.DeleteLocalData(ctx, userID))
}
