package orderrepo

import (
	"context"
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add inserts a new order row.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsErrorWithCause("orderNumber", dto.Number, err)
		}
		return errs.NewStorageError("add order", err)
	}
	return nil
}

// Update rewrites the status column. Every other column is immutable after creation.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("number = ?", dto.Number).
		Update("status", dto.Status)
	if result.Error != nil {
		return errs.NewStorageError("update order", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundErrorWithCause("orderNumber", dto.Number, gorm.ErrRecordNotFound)
	}
	return nil
}

// Get retrieves an order by number.
func (r *GormOrderRepository) Get(ctx context.Context, number kernel.OrderNumber) (*order.Order, error) {
	if err := number.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "number = ?", number.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderNumber", number.String())
		}
		return nil, errs.NewStorageError("get order", err)
	}

	return toDomain(dto)
}

// List returns orders oldest first, optionally only those of userID.
func (r *GormOrderRepository) List(ctx context.Context, userID *string) ([]*order.Order, error) {
	query := r.db.WithContext(ctx).Order("created_at").Order("number")
	if userID != nil {
		query = query.Where("user_id = ?", *userID)
	}

	var dtos []OrderDTO
	if err := query.Find(&dtos).Error; err != nil {
		return nil, errs.NewStorageError("list orders", err)
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}

// Delete removes the order row and reports whether one existed.
func (r *GormOrderRepository) Delete(ctx context.Context, number kernel.OrderNumber) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&OrderDTO{}, "number = ?", number.String())
	if result.Error != nil {
		return false, errs.NewStorageError("delete order", result.Error)
	}
	return result.RowsAffected > 0, nil
}
