// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"tollgate/internal/domain/entity"
	domainerrors "tollgate/internal/domain/errors"
	"tollgate/internal/domain/repository"
	"tollgate/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// entitlementRepository implements the repository.EntitlementRepository interface.
type entitlementRepository struct {
	db *gorm.DB
}

// NewEntitlementRepository is the constructor for entitlementRepository.
func NewEntitlementRepository(db *gorm.DB) repository.EntitlementRepository {
	return &entitlementRepository{
		db: db,
	}
}

// GetAll retrieves the user's reconciled entitlement records. A user without
// records yields an empty slice.
func (repo *entitlementRepository) GetAll(ctx context.Context, userID uuid.UUID) ([]entity.Entitlement, error) {
	var entitlementModels []*model.EntitlementModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("product ASC").
		Find(&entitlementModels).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find entitlements by user")
	}

	entitlements := make([]entity.Entitlement, 0, len(entitlementModels))
	for _, entitlementM := range entitlementModels {
		entitlements = append(entitlements, toEntitlementDomain(entitlementM))
	}

	return entitlements, nil
}

// ReplaceAll swaps the user's entitlement rows for the given list in one
// transaction, so readers never observe a partially replaced state.
func (repo *entitlementRepository) ReplaceAll(ctx context.Context, userID uuid.UUID, entitlements []entity.Entitlement) error {
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("user_id = ?", userID).
			Delete(&model.EntitlementModel{}).Error; err != nil {
			return errors.Wrap(err, "failed to delete existing entitlements")
		}

		if len(entitlements) == 0 {
			return nil
		}

		entitlementModels := make([]*model.EntitlementModel, 0, len(entitlements))
		for i := range entitlements {
			entitlementModels = append(entitlementModels, fromEntitlementDomain(userID, &entitlements[i]))
		}

		if err := tx.Create(entitlementModels).Error; err != nil {
			// A duplicate key inside the transaction means the incoming
			// list itself repeats a (user, product) pair.
			if isUniqueConstraintViolation(err) {
				return errors.Wrap(err, "entitlement list has duplicate products")
			}

			return errors.Wrap(err, "failed to insert entitlements")
		}

		return nil
	})
	if err != nil {
		return errors.Wrapf(repository.ErrReplaceFailed, "user %s: %v", userID, err)
	}

	return nil
}

// DeleteAll removes every record for the user.
func (repo *entitlementRepository) DeleteAll(ctx context.Context, userID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.EntitlementModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete entitlements by user")
	}

	return nil
}

// --- Mapper Functions ---

// toEntitlementDomain converts a GORM EntitlementModel to a domain Entitlement entity.
func toEntitlementDomain(data *model.EntitlementModel) entity.Entitlement {
	return entity.Entitlement{
		Product:             data.Product,
		PurchaseToken:       data.PurchaseToken,
		IsEntitlementActive: data.IsEntitlementActive,
		IsAcknowledged:      data.IsAcknowledged,
		WillRenew:           data.WillRenew,
		IsConsumed:          data.IsConsumed,
		IsAccountHold:       data.IsAccountHold,
		IsGracePeriod:       data.IsGracePeriod,
		IsPaused:            data.IsPaused,
		SubAlreadyOwned:     data.SubAlreadyOwned,
		IsLocalPurchase:     data.IsLocalPurchase,
		IsPrepaid:           data.IsPrepaid,
		Quantity:            data.Quantity,
	}
}

// fromEntitlementDomain converts a domain Entitlement entity to a GORM EntitlementModel.
func fromEntitlementDomain(userID uuid.UUID, data *entity.Entitlement) *model.EntitlementModel {
	return &model.EntitlementModel{
		UserID:              userID,
		Product:             data.Product,
		PurchaseToken:       data.PurchaseToken,
		IsEntitlementActive: data.IsEntitlementActive,
		IsAcknowledged:      data.IsAcknowledged,
		WillRenew:           data.WillRenew,
		IsConsumed:          data.IsConsumed,
		IsAccountHold:       data.IsAccountHold,
		IsGracePeriod:       data.IsGracePeriod,
		IsPaused:            data.IsPaused,
		SubAlreadyOwned:     data.SubAlreadyOwned,
		IsLocalPurchase:     data.IsLocalPurchase,
		IsPrepaid:           data.IsPrepaid,
		Quantity:            data.Quantity,
	}
}
