// Package orderrepo persists order aggregates with GORM. Line items are stored as a
// JSON document next to the order row; totals are stored as exact numerics.
package orderrepo

import (
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderDTO is the row layout of the orders table.
type OrderDTO struct {
	Number    string          `gorm:"primaryKey;size:64"`
	UserID    *string         `gorm:"index;size:64"`
	Items     []LineItemDTO   `gorm:"serializer:json;type:jsonb;not null"`
	Subtotal  decimal.Decimal `gorm:"type:numeric;not null"`
	Tax       decimal.Decimal `gorm:"type:numeric;not null"`
	Total     decimal.Decimal `gorm:"type:numeric;not null"`
	CreatedAt time.Time       `gorm:"index;autoCreateTime:false"`
	Status    int             `gorm:"index"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// LineItemDTO is the JSON shape of one stored line item.
type LineItemDTO struct {
	ProductID int             `json:"productId"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Quantity  int             `json:"quantity"`
}

// ItemsFromDomain converts line items for storage. Shared with ticketrepo.
func ItemsFromDomain(items []kernel.LineItem) []LineItemDTO {
	result := make([]LineItemDTO, 0, len(items))
	for _, item := range items {
		result = append(result, LineItemDTO{
			ProductID: item.ProductID(),
			Name:      item.Name(),
			UnitPrice: item.UnitPrice().Decimal(),
			Quantity:  item.Quantity(),
		})
	}
	return result
}

// ItemsToDomain rebuilds validated line items from storage.
func ItemsToDomain(dtos []LineItemDTO) ([]kernel.LineItem, error) {
	items := make([]kernel.LineItem, 0, len(dtos))
	for _, dto := range dtos {
		item, err := kernel.NewLineItem(dto.ProductID, dto.Name, dto.UnitPrice, dto.Quantity)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func fromDomain(aggregate *order.Order) OrderDTO {
	totals := aggregate.Totals()
	return OrderDTO{
		Number:    aggregate.Number().String(),
		UserID:    aggregate.UserID(),
		Items:     ItemsFromDomain(aggregate.Items()),
		Subtotal:  totals.Subtotal().Decimal(),
		Tax:       totals.Tax().Decimal(),
		Total:     totals.Total().Decimal(),
		CreatedAt: aggregate.CreatedAt(),
		Status:    int(aggregate.Status()),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	number, err := kernel.OrderNumberFromString(dto.Number)
	if err != nil {
		return nil, err
	}

	items, err := ItemsToDomain(dto.Items)
	if err != nil {
		return nil, err
	}

	subtotal, err := kernel.NewMoney(dto.Subtotal)
	if err != nil {
		return nil, err
	}
	tax, err := kernel.NewMoney(dto.Tax)
	if err != nil {
		return nil, err
	}
	total, err := kernel.NewMoney(dto.Total)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		number,
		items,
		dto.UserID,
		order.RestoreTotals(subtotal, tax, total),
		dto.CreatedAt,
		order.Status(dto.Status),
	)
}
