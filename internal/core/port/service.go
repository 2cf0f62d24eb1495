package port

import (
	"context"

	"github.com/foodordering/orderservice/internal/core/domain"
	"github.com/google/uuid"
)

type OrderAddress struct {
	Street     string
	PostalCode string
	City       string
}

type OrderItemCommand struct {
	ProductID uuid.UUID
	Quantity  int32
	Price     domain.Money
	SubTotal  domain.Money
}

type CreateOrderCommand struct {
	CustomerID   uuid.UUID
	RestaurantID uuid.UUID
	Address      OrderAddress
	Price        domain.Money
	Items        []OrderItemCommand
}

// Validate rejects structurally incomplete commands before any business
// rule is evaluated.
func (c CreateOrderCommand) Validate() error {
	if c.CustomerID == uuid.Nil || c.RestaurantID == uuid.Nil || len(c.Items) == 0 {
		return domain.ErrBadRequest
	}
	return nil
}

// ProductIDs projects the command onto the product identifiers needed
// for the restaurant catalog lookup.
func (c CreateOrderCommand) ProductIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(c.Items))
	for _, item := range c.Items {
		ids = append(ids, item.ProductID)
	}
	return ids
}

type CreateOrderResponse struct {
	OrderTrackingID uuid.UUID
	OrderStatus     domain.OrderStatus
	Message         string
}

type TrackOrderResponse struct {
	OrderTrackingID uuid.UUID
	OrderStatus     domain.OrderStatus
}

type OrderService interface {
	CreateOrder(ctx context.Context, cmd CreateOrderCommand) (*CreateOrderResponse, error)
	TrackOrder(ctx context.Context, trackingID uuid.UUID) (*TrackOrderResponse, error)
}
