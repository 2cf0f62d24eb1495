package domain

import (
	"github.com/google/uuid"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "PENDING"
	OrderStatusPaid       OrderStatus = "PAID"
	OrderStatusApproved   OrderStatus = "APPROVED"
	OrderStatusCancelling OrderStatus = "CANCELLING"
	OrderStatusCancelled  OrderStatus = "CANCELLED"
)

// statusPredecessors lists the legal source states for every target
// state. A transition not present here is a domain error.
var statusPredecessors = map[OrderStatus][]OrderStatus{
	OrderStatusPaid:       {OrderStatusPending},
	OrderStatusApproved:   {OrderStatusPaid},
	OrderStatusCancelling: {OrderStatusPaid},
	OrderStatusCancelled:  {OrderStatusPending, OrderStatusCancelling},
}

type Address struct {
	Street     string
	PostalCode string
	City       string
}

type OrderItem struct {
	ID        int64
	ProductID uuid.UUID
	Quantity  int32
	Price     Money
	SubTotal  Money
}

// Order is the aggregate root. Items belong exclusively to their order
// and the status field changes only through the transition methods.
type Order struct {
	ID              uuid.UUID
	CustomerID      uuid.UUID
	RestaurantID    uuid.UUID
	DeliveryAddress Address
	Items           []*OrderItem
	Price           Money
	TrackingID      uuid.UUID
	Status          OrderStatus
}

// ValidateOrder checks the order's own arithmetic: it must not be
// initialized yet, the total must be positive, every item subtotal must
// equal unit price times quantity, and the subtotals must sum to the
// total. Cross-referencing the restaurant catalog is ValidateItemsPrice.
func (o *Order) ValidateOrder() error {
	if err := o.validateInitialOrder(); err != nil {
		return err
	}
	if err := o.validateTotalPrice(); err != nil {
		return err
	}
	return o.validateItemsTotal()
}

func (o *Order) validateInitialOrder() error {
	if o.Status != "" || o.ID != uuid.Nil {
		return NewOrderDomainError("Order is not in correct state for initialization")
	}
	return nil
}

func (o *Order) validateTotalPrice() error {
	if !o.Price.IsGreaterThanZero() {
		return NewOrderDomainError("Total price must be greater than zero")
	}
	return nil
}

func (o *Order) validateItemsTotal() error {
	itemsTotal := ZeroMoney
	for _, item := range o.Items {
		if err := item.validatePrice(); err != nil {
			return err
		}
		sum, err := itemsTotal.Add(item.SubTotal)
		if err != nil {
			return NewOrderDomainError("Could not calculate order items total: %v", err)
		}
		itemsTotal = sum
	}
	if !o.Price.Equal(itemsTotal) {
		return NewOrderDomainError("Total price: %s is not equal to Order items total: %s",
			o.Price, itemsTotal)
	}
	return nil
}

func (i *OrderItem) validatePrice() error {
	if i.Quantity <= 0 || !i.Price.IsGreaterThanZero() {
		return NewOrderDomainError("Order item price: %s is not valid for product %s",
			i.Price, i.ProductID)
	}
	expected, err := i.Price.Multiply(i.Quantity)
	if err != nil || !i.SubTotal.Equal(expected) {
		return NewOrderDomainError("Order item price: %s is not valid for product %s",
			i.Price, i.ProductID)
	}
	return nil
}

// ValidateItemsPrice checks every item's unit price against the
// restaurant's catalog price for that product.
func (o *Order) ValidateItemsPrice(restaurant *Restaurant) error {
	for _, item := range o.Items {
		product := restaurant.FindProduct(item.ProductID)
		if product == nil || !product.Price.Equal(item.Price) {
			return NewOrderDomainError("Order item price: %s is not valid for product %s",
				item.Price, item.ProductID)
		}
	}
	return nil
}

// InitializeOrder assigns the order identity, a fresh tracking
// identifier, the PENDING status and sequential item identifiers.
func (o *Order) InitializeOrder() {
	o.ID = uuid.New()
	o.TrackingID = uuid.New()
	o.Status = OrderStatusPending
	for n, item := range o.Items {
		item.ID = int64(n + 1)
	}
}

func (o *Order) Pay() error {
	return o.transitionTo(OrderStatusPaid, "pay")
}

func (o *Order) Approve() error {
	return o.transitionTo(OrderStatusApproved, "approve")
}

func (o *Order) InitCancel() error {
	return o.transitionTo(OrderStatusCancelling, "initCancel")
}

func (o *Order) Cancel() error {
	return o.transitionTo(OrderStatusCancelled, "cancel")
}

func (o *Order) transitionTo(target OrderStatus, operation string) error {
	for _, from := range statusPredecessors[target] {
		if o.Status == from {
			o.Status = target
			return nil
		}
	}
	return NewOrderDomainError("Order is not in correct state for %s operation", operation)
}
