package impl

import (
	"context"
	"log/slog"
	"sync"

	"tollgate/config"
	"tollgate/internal/domain/entity"
	"tollgate/internal/domain/repository"
	"tollgate/internal/domain/service"
	"tollgate/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

var (
	// ErrUnknownProduct is returned when a request names a product that is
	// not in the configured catalog.
	ErrUnknownProduct = errors.New("unknown product")
)

type reconcilerService struct {
	entitlementRepo repository.EntitlementRepository
	txManager       repository.TransactionManager
	backend         service.EntitlementBackend
	retrier         *AcknowledgeRetrier
	publisher       service.EventPublisher
	notifier        service.NotificationService
	catalog         entity.Catalog
	logger          *slog.Logger

	// locks serializes reconciliation passes per user so concurrent
	// device syncs cannot interleave their read-merge-write cycles.
	locks userLocks
}

// ReconcilerServiceParams holds dependencies for ReconcileUsecase, injected by Fx.
type ReconcilerServiceParams struct {
	fx.In

	EntitlementRepo repository.EntitlementRepository
	TxManager       repository.TransactionManager
	Backend         service.EntitlementBackend
	Provider        service.BillingProvider
	Publisher       service.EventPublisher
	Notifier        service.NotificationService `optional:"true"`
	Config          *config.Config
	Logger          *slog.Logger
}

// NewReconcilerService creates the reconciliation usecase instance.
func NewReconcilerService(params ReconcilerServiceParams) usecase.ReconcileUsecase {
	return &reconcilerService{
		entitlementRepo: params.EntitlementRepo,
		txManager:       params.TxManager,
		backend:         params.Backend,
		retrier: NewAcknowledgeRetrier(
			params.Provider,
			params.Config.Billing.AckMaxAttempts,
			params.Config.Billing.AckBackoffBase,
			params.Logger,
		),
		publisher: params.Publisher,
		notifier:  params.Notifier,
		catalog: entity.Catalog{
			BasicProduct:   params.Config.Billing.BasicProduct,
			PremiumProduct: params.Config.Billing.PremiumProduct,
			OneTimeProduct: params.Config.Billing.OneTimeProduct,
		},
		logger: params.Logger,
	}
}

// SyncDevicePurchases registers any device purchase the local records do not
// cover yet, then reconciles the backend's answer with local state.
func (s *reconcilerService) SyncDevicePurchases(ctx context.Context, userID uuid.UUID, purchases []entity.DevicePurchase, opts usecase.SyncOptions) ([]entity.Entitlement, error) {
	unlock := s.locks.lock(userID)
	defer unlock()

	oldLocal, err := s.entitlementRepo.GetAll(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load local entitlements")
	}

	remote, hasRemote, err := s.registerNewPurchases(ctx, userID, oldLocal, purchases)
	if err != nil {
		return nil, err
	}

	return s.reconcile(ctx, userID, oldLocal, remote, hasRemote, purchases, opts)
}

// Refresh pulls the backend's current view and reconciles it with local
// records. Local state is left untouched when the fetch fails.
func (s *reconcilerService) Refresh(ctx context.Context, userID uuid.UUID, purchases []entity.DevicePurchase, opts usecase.SyncOptions) ([]entity.Entitlement, error) {
	unlock := s.locks.lock(userID)
	defer unlock()

	remote, err := s.backend.FetchEntitlements(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch entitlements")
	}

	oldLocal, err := s.entitlementRepo.GetAll(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load local entitlements")
	}

	return s.reconcile(ctx, userID, oldLocal, remote, true, purchases, opts)
}

// TransferPurchase moves a subscription claimed by another account onto this
// one, then refreshes so the transferred record replaces the placeholder.
func (s *reconcilerService) TransferPurchase(ctx context.Context, userID uuid.UUID, product, purchaseToken string, purchases []entity.DevicePurchase, opts usecase.SyncOptions) ([]entity.Entitlement, error) {
	kind := s.catalog.KindOf(product)
	if !kind.IsSubscription() {
		return nil, errors.Wrapf(ErrUnknownProduct, "cannot transfer %s", product)
	}

	if err := s.backend.Transfer(ctx, userID, product, purchaseToken); err != nil {
		return nil, errors.Wrap(err, "failed to transfer purchase")
	}

	return s.Refresh(ctx, userID, purchases, opts)
}

// ConsumePurchase consumes a one-time product and reconciles the updated
// record list the backend returns.
func (s *reconcilerService) ConsumePurchase(ctx context.Context, userID uuid.UUID, product, purchaseToken string, purchases []entity.DevicePurchase, opts usecase.SyncOptions) ([]entity.Entitlement, error) {
	if s.catalog.KindOf(product) != entity.ProductKindOneTime {
		return nil, errors.Wrapf(ErrUnknownProduct, "cannot consume %s", product)
	}

	unlock := s.locks.lock(userID)
	defer unlock()

	remote, err := s.backend.Consume(ctx, userID, product, purchaseToken)
	if err != nil {
		return nil, errors.Wrap(err, "failed to consume purchase")
	}

	oldLocal, err := s.entitlementRepo.GetAll(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load local entitlements")
	}

	return s.reconcile(ctx, userID, oldLocal, remote, true, purchases, opts)
}

// registerNewPurchases sends the backend every device purchase the local
// records do not already account for. The last register response wins: the
// backend returns the complete record list each time.
func (s *reconcilerService) registerNewPurchases(ctx context.Context, userID uuid.UUID, oldLocal []entity.Entitlement, purchases []entity.DevicePurchase) ([]entity.Entitlement, bool, error) {
	var (
		remote    []entity.Entitlement
		hasRemote bool
	)

	for _, purchase := range purchases {
		for _, product := range purchase.Products {
			kind := s.catalog.KindOf(product)
			if kind == entity.ProductKindUnknown {
				s.logger.Warn("Skipping purchase for unknown product",
					slog.String("product", product),
				)

				continue
			}
			if hasMatchingRecord(oldLocal, product, purchase.PurchaseToken) {
				continue
			}

			records, err := s.backend.Register(ctx, userID, kind, product, purchase.PurchaseToken)
			if err != nil {
				return nil, false, errors.Wrapf(err, "failed to register purchase for %s", product)
			}
			remote = records
			hasRemote = true
		}
	}

	return remote, hasRemote, nil
}

// reconcile runs a single pass: merge, persist, acknowledge, persist the
// acknowledgement outcome, then signal observers. Callers hold the user lock.
func (s *reconcilerService) reconcile(ctx context.Context, userID uuid.UUID, oldLocal, newRemote []entity.Entitlement, hasRemote bool, purchases []entity.DevicePurchase, opts usecase.SyncOptions) ([]entity.Entitlement, error) {
	merged := mergeEntitlements(oldLocal, newRemote, hasRemote, purchases)

	if err := s.persist(ctx, userID, merged); err != nil {
		return nil, errors.Wrap(err, "failed to persist merged entitlements")
	}

	merged = s.acknowledgePending(ctx, userID, merged)

	s.publishContentSignals(ctx, userID, oldLocal, merged, opts)
	s.notifyDevice(ctx, userID, opts)

	return merged, nil
}

// persist replaces the user's records through a transaction-scoped
// repository, so the pass's write commits or rolls back as one unit.
func (s *reconcilerService) persist(ctx context.Context, userID uuid.UUID, records []entity.Entitlement) error {
	return s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NewEntitlementRepository().ReplaceAll(ctx, userID, records)
	})
}

// mergeEntitlements combines the authoritative remote records (or the prior
// local ones when no remote snapshot exists) with device-reported purchases.
// Records the backend no longer reports are dropped, except foreign-owned
// purchases still present on this device, which are retained unchanged so
// the transfer offer survives the pass.
func mergeEntitlements(oldLocal, newRemote []entity.Entitlement, hasRemote bool, purchases []entity.DevicePurchase) []entity.Entitlement {
	base := newRemote
	if !hasRemote {
		base = oldLocal
	}

	merged := make([]entity.Entitlement, 0, len(base))
	for _, record := range base {
		if match := entity.FindPurchaseForProduct(purchases, record.Product); match != nil {
			record.IsLocalPurchase = true
			record.PurchaseToken = match.PurchaseToken
		} else {
			record.IsLocalPurchase = false
		}
		merged = append(merged, record)
	}

	for _, old := range oldLocal {
		if !old.SubAlreadyOwned || !old.IsLocalPurchase {
			continue
		}
		if entity.EntitlementForProduct(merged, old.Product) != nil {
			continue
		}
		if !hasMatchingPurchase(purchases, old.Product, old.PurchaseToken) {
			continue
		}
		merged = append(merged, old)
	}

	return merged
}

// acknowledgePending acknowledges every merged record that still needs it,
// backend first so ownership is settled before the provider call. A failure
// on one record never blocks the others; the next pass retries it.
func (s *reconcilerService) acknowledgePending(ctx context.Context, userID uuid.UUID, records []entity.Entitlement) []entity.Entitlement {
	changed := false
	for i := range records {
		record := &records[i]
		if record.IsAcknowledged || record.PurchaseToken == "" || record.Product == "" {
			continue
		}

		kind := s.catalog.KindOf(record.Product)
		if kind == entity.ProductKindUnknown {
			s.logger.Warn("Cannot acknowledge unknown product",
				slog.String("product", record.Product),
			)

			continue
		}

		if _, err := s.backend.Acknowledge(ctx, userID, kind, record.Product, record.PurchaseToken); err != nil {
			s.logger.Error("Backend acknowledge failed",
				slog.String("product", record.Product),
				slog.Any("error", err),
			)

			continue
		}
		if err := s.retrier.Acknowledge(ctx, kind, record.Product, record.PurchaseToken); err != nil {
			s.logger.Error("Provider acknowledge failed",
				slog.String("product", record.Product),
				slog.Any("error", err),
			)

			continue
		}

		record.IsAcknowledged = true
		changed = true
	}

	if changed {
		if err := s.persist(ctx, userID, records); err != nil {
			s.logger.Error("Failed to persist acknowledged entitlements",
				slog.String("user_id", userID.String()),
				slog.Any("error", err),
			)
		}
	}

	return records
}

// publishContentSignals emits one event per product whose entitled state
// flipped during the pass. Publishing is best effort.
func (s *reconcilerService) publishContentSignals(ctx context.Context, userID uuid.UUID, before, after []entity.Entitlement, opts usecase.SyncOptions) {
	if s.publisher == nil {
		return
	}

	planState := entity.ClassifyPlan(s.catalog, after)

	for _, product := range s.catalog.Products() {
		was := anyGrantsContent(before, product)
		is := anyGrantsContent(after, product)
		if was == is {
			continue
		}

		event := &service.EntitlementEvent{
			RequestID: opts.RequestID,
			UserID:    userID.String(),
			Product:   product,
			Entitled:  is,
			PlanState: string(planState),
		}
		if err := s.publisher.PublishEntitlementEvent(ctx, event); err != nil {
			s.logger.Error("Failed to publish entitlement event",
				slog.String("product", product),
				slog.Any("error", err),
			)
		}
	}
}

// notifyDevice pokes the reporting device so it refetches. Best effort.
func (s *reconcilerService) notifyDevice(ctx context.Context, userID uuid.UUID, opts usecase.SyncOptions) {
	if s.notifier == nil || opts.InstanceID == "" {
		return
	}

	data := map[string]string{
		"type":    "entitlements_updated",
		"user_id": userID.String(),
	}
	if err := s.notifier.NotifyEntitlementsChanged(ctx, opts.InstanceID, data); err != nil {
		s.logger.Warn("Failed to notify device",
			slog.String("instance_id", opts.InstanceID),
			slog.Any("error", err),
		)
	}
}

func hasMatchingRecord(records []entity.Entitlement, product, purchaseToken string) bool {
	for i := range records {
		if records[i].Product == product && records[i].PurchaseToken == purchaseToken && !records[i].SubAlreadyOwned {
			return true
		}
	}

	return false
}

func hasMatchingPurchase(purchases []entity.DevicePurchase, product, purchaseToken string) bool {
	for i := range purchases {
		if purchases[i].Covers(product) && purchases[i].PurchaseToken == purchaseToken {
			return true
		}
	}

	return false
}

func anyGrantsContent(records []entity.Entitlement, product string) bool {
	for i := range records {
		if records[i].GrantsContent(product) {
			return true
		}
	}

	return false
}

// userLocks hands out one mutex per user ID. Entries are never removed; the
// map is bounded by the number of distinct users a process serves.
type userLocks struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*sync.Mutex
}

func (l *userLocks) lock(userID uuid.UUID) func() {
	l.mu.Lock()
	if l.locks == nil {
		l.locks = make(map[uuid.UUID]*sync.Mutex)
	}
	userLock, ok := l.locks[userID]
	if !ok {
		userLock = &sync.Mutex{}
		l.locks[userID] = userLock
	}
	l.mu.Unlock()

	userLock.Lock()

	return userLock.Unlock
}
