package port

import (
	"context"

	"github.com/foodordering/orderservice/internal/core/domain"
	"github.com/google/uuid"
)

//go:generate mockgen -source=repository.go -destination=mock/repository.go -package=mock
type CustomerRepository interface {
	FindCustomer(ctx context.Context, customerID uuid.UUID) (*domain.Customer, error)
}

type RestaurantRepository interface {
	// FindRestaurantInformation returns the restaurant with its catalog
	// restricted to the requested products.
	FindRestaurantInformation(ctx context.Context,
		restaurantID uuid.UUID, productIDs []uuid.UUID) (*domain.Restaurant, error)
}

type OrderRepository interface {
	Save(ctx context.Context, order *domain.Order) (*domain.Order, error)
	FindByTrackingID(ctx context.Context, trackingID uuid.UUID) (*domain.Order, error)
}
