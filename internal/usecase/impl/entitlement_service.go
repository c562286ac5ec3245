package impl

import (
	"context"
	"log/slog"

	"tollgate/config"
	"tollgate/internal/domain/entity"
	"tollgate/internal/domain/repository"
	"tollgate/internal/domain/service"
	"tollgate/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type entitlementService struct {
	entitlementRepo repository.EntitlementRepository
	backend         service.EntitlementBackend
	catalog         entity.Catalog
	logger          *slog.Logger
}

// EntitlementServiceParams holds dependencies for EntitlementUsecase, injected by Fx.
type EntitlementServiceParams struct {
	fx.In

	EntitlementRepo repository.EntitlementRepository
	Backend         service.EntitlementBackend
	Config          *config.Config
	Logger          *slog.Logger
}

// NewEntitlementService creates the entitlement query usecase instance.
func NewEntitlementService(params EntitlementServiceParams) usecase.EntitlementUsecase {
	return &entitlementService{
		entitlementRepo: params.EntitlementRepo,
		backend:         params.Backend,
		catalog: entity.Catalog{
			BasicProduct:   params.Config.Billing.BasicProduct,
			PremiumProduct: params.Config.Billing.PremiumProduct,
			OneTimeProduct: params.Config.Billing.OneTimeProduct,
		},
		logger: params.Logger,
	}
}

// GetEntitlements returns the last reconciled entitlement list.
func (s *entitlementService) GetEntitlements(ctx context.Context, userID uuid.UUID) ([]entity.Entitlement, error) {
	records, err := s.entitlementRepo.GetAll(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load entitlements")
	}

	return records, nil
}

// CurrentPlan classifies the user's reconciled entitlements into a plan state.
func (s *entitlementService) CurrentPlan(ctx context.Context, userID uuid.UUID) (entity.PlanState, error) {
	records, err := s.entitlementRepo.GetAll(ctx, userID)
	if err != nil {
		return entity.PlanStateNone, errors.Wrap(err, "failed to load entitlements")
	}

	return entity.ClassifyPlan(s.catalog, records), nil
}

// Loading reports whether any backend request is in flight.
func (s *entitlementService) Loading() bool {
	return s.backend.Loading()
}

// DeleteLocalData wipes the user's local records on sign-out. Backend state
// is untouched; the next sign-in reconciles from scratch.
func (s *entitlementService) DeleteLocalData(ctx context.Context, userID uuid.UUID) error {
	if err := s.entitlementRepo.DeleteAll(ctx, userID); err != nil {
		return errors.Wrap(err, "failed to delete local entitlements")
	}

	s.logger.Info("Deleted local entitlement data",
		slog.String("user_id", userID.String()),
	)

	return nil
}
