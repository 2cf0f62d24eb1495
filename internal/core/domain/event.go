package domain

import "time"

// OrderCreatedEvent wraps a persisted order. Produced once per
// successful creation, consumed once by the publisher.
type OrderCreatedEvent struct {
	Order     *Order
	CreatedAt time.Time
}

func NewOrderCreatedEvent(order *Order, createdAt time.Time) *OrderCreatedEvent {
	return &OrderCreatedEvent{
		Order:     order,
		CreatedAt: createdAt,
	}
}
