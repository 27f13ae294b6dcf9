// Package ticketrepo persists kitchen tickets with GORM in the kitchen_tickets table.
package ticketrepo

import (
	"time"

	"ordering/internal/adapters/out/postgres/orderrepo"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/kitchen"
)

// TicketDTO is the row layout of the kitchen_tickets table.
type TicketDTO struct {
	Number           string                  `gorm:"primaryKey;size:64"`
	Items            []orderrepo.LineItemDTO `gorm:"serializer:json;type:jsonb;not null"`
	CreatedAt        time.Time               `gorm:"autoCreateTime:false"`
	UserID           *string                 `gorm:"size:64"`
	Status           int                     `gorm:"index"`
	AssignedTo       *string
	PrepTimeMinutes  int
	EstimatedReadyAt time.Time
	SentToKitchenAt  time.Time `gorm:"index"`
	StartedAt        *time.Time
	ReadyAt          *time.Time
	AssignedAt       *time.Time
}

func (TicketDTO) TableName() string {
	return "kitchen_tickets"
}

func fromDomain(ticket *kitchen.Ticket) TicketDTO {
	s := ticket.Snapshot()
	return TicketDTO{
		Number:           s.Number.String(),
		Items:            orderrepo.ItemsFromDomain(s.Items),
		CreatedAt:        s.CreatedAt,
		UserID:           s.UserID,
		Status:           int(s.Status),
		AssignedTo:       s.AssignedTo,
		PrepTimeMinutes:  s.PrepTimeMinutes,
		EstimatedReadyAt: s.EstimatedReadyAt,
		SentToKitchenAt:  s.SentToKitchenAt,
		StartedAt:        s.StartedAt,
		ReadyAt:          s.ReadyAt,
		AssignedAt:       s.AssignedAt,
	}
}

func toDomain(dto TicketDTO) (*kitchen.Ticket, error) {
	number, err := kernel.OrderNumberFromString(dto.Number)
	if err != nil {
		return nil, err
	}

	items, err := orderrepo.ItemsToDomain(dto.Items)
	if err != nil {
		return nil, err
	}

	return kitchen.RestoreTicket(kitchen.TicketSnapshot{
		Number:           number,
		Items:            items,
		CreatedAt:        dto.CreatedAt,
		UserID:           dto.UserID,
		Status:           kitchen.Status(dto.Status),
		AssignedTo:       dto.AssignedTo,
		PrepTimeMinutes:  dto.PrepTimeMinutes,
		EstimatedReadyAt: dto.EstimatedReadyAt,
		SentToKitchenAt:  dto.SentToKitchenAt,
		StartedAt:        dto.StartedAt,
		ReadyAt:          dto.ReadyAt,
		AssignedAt:       dto.AssignedAt,
	})
}
