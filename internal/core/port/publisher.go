package port

import (
	"context"

	"github.com/foodordering/orderservice/internal/core/domain"
)

//go:generate mockgen -source=publisher.go -destination=mock/publisher.go -package=mock
type OrderCreatedPaymentRequestPublisher interface {
	Publish(ctx context.Context, event *domain.OrderCreatedEvent) error
}
