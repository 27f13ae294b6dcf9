package ticketrepo

import (
	"context"
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/kitchen"
	"ordering/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormTicketRepository implements ports.TicketRepository using GORM.
type GormTicketRepository struct {
	db *gorm.DB
}

func NewGormTicketRepository(db *gorm.DB) *GormTicketRepository {
	return &GormTicketRepository{db: db}
}

func (r *GormTicketRepository) Add(ctx context.Context, ticket *kitchen.Ticket) error {
	if err := ticket.Validate(); err != nil {
		return err
	}

	dto := fromDomain(ticket)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewObjectAlreadyExistsErrorWithCause("orderNumber", dto.Number, err)
		}
		return errs.NewStorageError("add ticket", err)
	}
	return nil
}

// Update writes every mutable column, including ones that are still null.
func (r *GormTicketRepository) Update(ctx context.Context, ticket *kitchen.Ticket) error {
	if err := ticket.Validate(); err != nil {
		return err
	}

	dto := fromDomain(ticket)
	result := r.db.WithContext(ctx).
		Model(&TicketDTO{}).
		Where("number = ?", dto.Number).
		Select("status", "assigned_to", "prep_time_minutes", "estimated_ready_at",
			"started_at", "ready_at", "assigned_at").
		Updates(&dto)
	if result.Error != nil {
		return errs.NewStorageError("update ticket", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundErrorWithCause("orderNumber", dto.Number, gorm.ErrRecordNotFound)
	}
	return nil
}

func (r *GormTicketRepository) Get(ctx context.Context, number kernel.OrderNumber) (*kitchen.Ticket, error) {
	if err := number.Validate(); err != nil {
		return nil, err
	}

	var dto TicketDTO
	if err := r.db.WithContext(ctx).First(&dto, "number = ?", number.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderNumber", number.String())
		}
		return nil, errs.NewStorageError("get ticket", err)
	}

	return toDomain(dto)
}

func (r *GormTicketRepository) List(ctx context.Context) ([]*kitchen.Ticket, error) {
	var dtos []TicketDTO
	if err := r.db.WithContext(ctx).Order("sent_to_kitchen_at").Order("number").Find(&dtos).Error; err != nil {
		return nil, errs.NewStorageError("list tickets", err)
	}

	tickets := make([]*kitchen.Ticket, 0, len(dtos))
	for _, dto := range dtos {
		t, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, t)
	}
	return tickets, nil
}

func (r *GormTicketRepository) Delete(ctx context.Context, number kernel.OrderNumber) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&TicketDTO{}, "number = ?", number.String())
	if result.Error != nil {
		return false, errs.NewStorageError("delete ticket", result.Error)
	}
	return result.RowsAffected > 0, nil
}
