package orderrepo

import (
	"context"

	"orderprocessing/internal/core/domain/model/order"
	"orderprocessing/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderStore implements ports.OrderStore using GORM.
// Every failure is wrapped in errs.StoreError.
type GormOrderStore struct {
	db *gorm.DB
}

// NewGormOrderStore creates a new GORM order store.
func NewGormOrderStore(db *gorm.DB) *GormOrderStore {
	return &GormOrderStore{db: db}
}

// Add saves a new order owned by the user.
func (r *GormOrderStore) Add(ctx context.Context, userID int64, o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}

	dto := fromDomain(userID, o)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewStoreErrorWithCause("add order", err)
	}

	return nil
}

// FetchByUser retrieves every order of the user ordered by ID. Each order
// starts as New with Low priority whatever was stored by an earlier pass.
func (r *GormOrderStore) FetchByUser(ctx context.Context, userID int64) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&dtos, "user_id = ?", userID).Error; err != nil {
		return nil, errs.NewStoreErrorWithCause("fetch orders", err)
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, errs.NewStoreErrorWithCause("fetch orders", err)
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// UpdateStatus writes the status and priority of a single order.
// It returns false without error when no such order exists.
func (r *GormOrderStore) UpdateStatus(
	ctx context.Context,
	orderID int64,
	status order.Status,
	priority order.Priority,
) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", orderID).
		Updates(map[string]any{
			"status":   status.String(),
			"priority": priority.String(),
		})
	if result.Error != nil {
		return false, errs.NewStoreErrorWithCause("update order", result.Error)
	}

	return result.RowsAffected > 0, nil
}
