package http

import (
	"fmt"
	"time"

	"ordering/internal/auth"
	"ordering/internal/cart"
	"ordering/internal/catalog"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/kitchen"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// LineItemRequest is one cart line. Name and price may be omitted when id is a
// catalog product; the catalog then supplies both.
type LineItemRequest struct {
	ID       int              `json:"id"       validate:"gte=0"`
	Name     string           `json:"name"`
	Price    *decimal.Decimal `json:"price" swaggertype:"number"`
	Quantity int              `json:"quantity" validate:"gte=1"`
}

type CreateOrderRequest struct {
	Items  []LineItemRequest `json:"items"  validate:"dive"`
	UserID *string           `json:"userId"`
}

type SetOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type SendToKitchenRequest struct {
	OrderNumber string            `json:"orderNumber" validate:"required"`
	Items       []LineItemRequest `json:"items"       validate:"dive"`
	CreatedAt   *time.Time        `json:"createdAt"`
	UserID      *string           `json:"userId"`
}

type UpdateTicketStatusRequest struct {
	Status   string `json:"status"   validate:"required"`
	PrepTime *int   `json:"prepTime"`
}

type AssignTicketRequest struct {
	StaffName string `json:"staffName"`
}

type AddToCartRequest struct {
	CartID    string           `json:"cartId"    validate:"required"`
	ProductID int              `json:"productId" validate:"required"`
	Name      string           `json:"name"`
	Price     *decimal.Decimal `json:"price" swaggertype:"number"`
	Quantity  int              `json:"quantity"  validate:"gte=1"`
}

type RemoveFromCartRequest struct {
	CartID    string `json:"cartId"    validate:"required"`
	ProductID int    `json:"productId" validate:"required"`
}

type ClearCartRequest struct {
	CartID string `json:"cartId" validate:"required"`
}

type CheckoutRequest struct {
	CartID string  `json:"cartId" validate:"required"`
	UserID *string `json:"userId"`
}

type RegisterRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LineItemResponse struct {
	ID       int          `json:"id"`
	Name     string       `json:"name"`
	Price    kernel.Money `json:"price" swaggertype:"string"`
	Quantity int          `json:"quantity"`
}

type OrderResponse struct {
	ID          string             `json:"id"`
	OrderNumber string             `json:"orderNumber"`
	UserID      *string            `json:"userId"`
	Items       []LineItemResponse `json:"items"`
	Subtotal    kernel.Money       `json:"subtotal" swaggertype:"string"`
	Tax         kernel.Money       `json:"tax" swaggertype:"string"`
	Total       kernel.Money       `json:"total" swaggertype:"string"`
	CreatedAt   time.Time          `json:"createdAt"`
	Status      string             `json:"status"`
}

type TicketResponse struct {
	ID              string             `json:"id"`
	OrderNumber     string             `json:"orderNumber"`
	Items           []LineItemResponse `json:"items"`
	CreatedAt       time.Time          `json:"createdAt"`
	UserID          *string            `json:"userId"`
	Status          string             `json:"status"`
	AssignedTo      *string            `json:"assignedTo"`
	PrepTime        int                `json:"prepTime"`
	EstimatedTime   time.Time          `json:"estimatedTime"`
	SentToKitchenAt time.Time          `json:"sentToKitchenAt"`
	StartedAt       *time.Time         `json:"startedAt"`
	ReadyAt         *time.Time         `json:"readyAt"`
	AssignedAt      *time.Time         `json:"assignedAt"`
}

type CartItemResponse struct {
	ProductID int          `json:"productId"`
	Name      string       `json:"name"`
	Price     kernel.Money `json:"price" swaggertype:"string"`
	Quantity  int          `json:"quantity"`
	Total     kernel.Money `json:"total" swaggertype:"string"`
}

type CartResponse struct {
	CartID string             `json:"cartId"`
	Items  []CartItemResponse `json:"items"`
	Total  kernel.Money       `json:"total" swaggertype:"string"`
}

type CartMutationResponse struct {
	Message string       `json:"message"`
	Cart    CartResponse `json:"cart"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type PlacedOrderResponse struct {
	Success bool          `json:"success"`
	Order   OrderResponse `json:"order"`
}

type TicketMutationResponse struct {
	Success bool           `json:"success"`
	Ticket  TicketResponse `json:"ticket"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

type TrackResponse struct {
	Order               OrderResponse   `json:"order"`
	Ticket              *TicketResponse `json:"ticket"`
	PollIntervalSeconds int             `json:"pollIntervalSeconds"`
}

type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// toLineItems builds domain items, falling back to the catalog for lines that
// carry only a product id. A bad line fails as an invalid cart naming its position.
func toLineItems(menu *catalog.Catalog, requests []LineItemRequest) ([]kernel.LineItem, error) {
	items := make([]kernel.LineItem, 0, len(requests))
	for i, r := range requests {
		item, err := toLineItem(menu, r)
		if err != nil {
			return nil, errs.NewInvalidCartErrorWithCause(fmt.Sprintf("item %d is malformed", i+1), err)
		}
		items = append(items, item)
	}
	return items, nil
}

func toLineItem(menu *catalog.Catalog, r LineItemRequest) (kernel.LineItem, error) {
	if r.Price == nil || r.Name == "" {
		return menu.LineItem(r.ID, r.Quantity)
	}
	return kernel.NewLineItem(r.ID, r.Name, *r.Price, r.Quantity)
}

func toCartResponse(c cart.Cart) CartResponse {
	items := make([]CartItemResponse, 0, len(c.Items))
	for _, item := range c.Items {
		items = append(items, CartItemResponse{
			ProductID: item.ProductID(),
			Name:      item.Name(),
			Price:     item.UnitPrice(),
			Quantity:  item.Quantity(),
			Total:     item.LineTotal(),
		})
	}
	return CartResponse{CartID: c.ID, Items: items, Total: c.Total()}
}

func toLineItemResponses(items []kernel.LineItem) []LineItemResponse {
	out := make([]LineItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, LineItemResponse{
			ID:       item.ProductID(),
			Name:     item.Name(),
			Price:    item.UnitPrice(),
			Quantity: item.Quantity(),
		})
	}
	return out
}

func toOrderResponse(o *order.Order) OrderResponse {
	totals := o.Totals()
	return OrderResponse{
		ID:          o.ID().String(),
		OrderNumber: o.Number().String(),
		UserID:      o.UserID(),
		Items:       toLineItemResponses(o.Items()),
		Subtotal:    totals.Subtotal(),
		Tax:         totals.Tax(),
		Total:       totals.Total(),
		CreatedAt:   o.CreatedAt(),
		Status:      o.Status().String(),
	}
}

func toOrderResponses(orders []*order.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrderResponse(o))
	}
	return out
}

func toTicketResponse(t *kitchen.Ticket) TicketResponse {
	return TicketResponse{
		ID:              t.ID().String(),
		OrderNumber:     t.OrderNumber().String(),
		Items:           toLineItemResponses(t.Items()),
		CreatedAt:       t.CreatedAt(),
		UserID:          t.UserID(),
		Status:          t.Status().String(),
		AssignedTo:      t.AssignedTo(),
		PrepTime:        t.PrepTimeMinutes(),
		EstimatedTime:   t.EstimatedReadyAt(),
		SentToKitchenAt: t.SentToKitchenAt(),
		StartedAt:       t.StartedAt(),
		ReadyAt:         t.ReadyAt(),
		AssignedAt:      t.AssignedAt(),
	}
}

func toTicketResponses(tickets []*kitchen.Ticket) []TicketResponse {
	out := make([]TicketResponse, 0, len(tickets))
	for _, t := range tickets {
		out = append(out, toTicketResponse(t))
	}
	return out
}

func toUserResponse(u auth.User) UserResponse {
	return UserResponse{ID: u.ID, Name: u.Name, Email: u.Email}
}
