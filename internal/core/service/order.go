package service

import (
	"context"
	"errors"
	"time"

	"github.com/foodordering/orderservice/internal/core/domain"
	"github.com/foodordering/orderservice/internal/core/port"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const orderCreatedMessage = "Order created successfully"

type OrderService struct {
	customerRepo   port.CustomerRepository
	restaurantRepo port.RestaurantRepository
	orderRepo      port.OrderRepository
	paymentPub     port.OrderCreatedPaymentRequestPublisher
	logger         *zap.Logger
}

func NewOrderService(customerRepo port.CustomerRepository,
	restaurantRepo port.RestaurantRepository,
	orderRepo port.OrderRepository,
	paymentPub port.OrderCreatedPaymentRequestPublisher,
	logger *zap.Logger) (*OrderService, error) {
	return &OrderService{
		customerRepo:   customerRepo,
		restaurantRepo: restaurantRepo,
		orderRepo:      orderRepo,
		paymentPub:     paymentPub,
		logger:         logger,
	}, nil
}

// CreateOrder validates and persists the order, then publishes the
// creation event for the payment flow. The event is published after the
// write committed and before the response is returned.
func (s *OrderService) CreateOrder(ctx context.Context,
	cmd port.CreateOrderCommand) (*port.CreateOrderResponse, error) {
	event, err := s.persistOrder(ctx, cmd)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Order created",
		zap.String("orderID", event.Order.ID.String()),
		zap.String("trackingID", event.Order.TrackingID.String()))

	if err := s.paymentPub.Publish(ctx, event); err != nil {
		// fire-and-forget from the order flow's perspective
		s.logger.Error("Publish order created event",
			zap.String("orderID", event.Order.ID.String()), zap.Error(err))
	}

	return &port.CreateOrderResponse{
		OrderTrackingID: event.Order.TrackingID,
		OrderStatus:     event.Order.Status,
		Message:         orderCreatedMessage,
	}, nil
}

// persistOrder runs the whole validate-then-save chain: one customer
// read, one restaurant read, one order write. Any failure aborts the
// operation with no partial effects.
func (s *OrderService) persistOrder(ctx context.Context,
	cmd port.CreateOrderCommand) (*domain.OrderCreatedEvent, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := s.checkCustomer(ctx, cmd.CustomerID); err != nil {
		return nil, err
	}

	restaurant, err := s.checkRestaurant(ctx, cmd)
	if err != nil {
		return nil, err
	}

	order := commandToOrder(cmd)
	if err := order.ValidateOrder(); err != nil {
		return nil, err
	}
	if err := order.ValidateItemsPrice(restaurant); err != nil {
		return nil, err
	}
	order.InitializeOrder()

	saved, err := s.orderRepo.Save(ctx, order)
	if err != nil {
		s.logger.Error("Save order", zap.Error(err))
		return nil, domain.NewOrderDomainError("Could not save order")
	}

	return domain.NewOrderCreatedEvent(saved, time.Now().UTC()), nil
}

func (s *OrderService) checkCustomer(ctx context.Context, customerID uuid.UUID) error {
	_, err := s.customerRepo.FindCustomer(ctx, customerID)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return domain.NewOrderDomainError("Customer with id %s not found", customerID)
		}
		s.logger.Error("Find customer", zap.Error(err))
		return domain.ErrInternal
	}
	return nil
}

func (s *OrderService) checkRestaurant(ctx context.Context,
	cmd port.CreateOrderCommand) (*domain.Restaurant, error) {
	restaurant, err := s.restaurantRepo.FindRestaurantInformation(ctx,
		cmd.RestaurantID, cmd.ProductIDs())
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, domain.NewOrderDomainError("Restaurant with id %s not found", cmd.RestaurantID)
		}
		s.logger.Error("Find restaurant", zap.Error(err))
		return nil, domain.ErrInternal
	}
	if !restaurant.Active {
		return nil, domain.NewOrderDomainError("Restaurant with id %s is currently not active",
			restaurant.ID)
	}
	return restaurant, nil
}

func (s *OrderService) TrackOrder(ctx context.Context,
	trackingID uuid.UUID) (*port.TrackOrderResponse, error) {
	order, err := s.orderRepo.FindByTrackingID(ctx, trackingID)
	if err != nil {
		if errors.Is(err, domain.ErrDataNotFound) {
			return nil, err
		}
		s.logger.Error("Find order by tracking id", zap.Error(err))
		return nil, domain.ErrInternal
	}

	return &port.TrackOrderResponse{
		OrderTrackingID: order.TrackingID,
		OrderStatus:     order.Status,
	}, nil
}

func commandToOrder(cmd port.CreateOrderCommand) *domain.Order {
	items := make([]*domain.OrderItem, 0, len(cmd.Items))
	for _, item := range cmd.Items {
		items = append(items, &domain.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
			SubTotal:  item.SubTotal,
		})
	}

	return &domain.Order{
		CustomerID:   cmd.CustomerID,
		RestaurantID: cmd.RestaurantID,
		DeliveryAddress: domain.Address{
			Street:     cmd.Address.Street,
			PostalCode: cmd.Address.PostalCode,
			City:       cmd.Address.City,
		},
		Items: items,
		Price: cmd.Price,
	}
}
