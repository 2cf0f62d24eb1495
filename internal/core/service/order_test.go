package service_test

import (
	"context"
	"testing"

	"github.com/foodordering/orderservice/internal/core/domain"
	"github.com/foodordering/orderservice/internal/core/port"
	"github.com/foodordering/orderservice/internal/core/port/mock"
	"github.com/foodordering/orderservice/internal/core/service"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type prepareMocks func(customers *mock.MockCustomerRepository,
	restaurants *mock.MockRestaurantRepository,
	orders *mock.MockOrderRepository,
	payments *mock.MockOrderCreatedPaymentRequestPublisher)

var (
	customerID   = uuid.New()
	restaurantID = uuid.New()
	productID    = uuid.New()
)

func newCommand(itemPrice string) port.CreateOrderCommand {
	return port.CreateOrderCommand{
		CustomerID:   customerID,
		RestaurantID: restaurantID,
		Address: port.OrderAddress{
			Street:     "Street_1",
			PostalCode: "10001AB",
			City:       "Venice",
		},
		Price: domain.MustParseMoney("200.00"),
		Items: []port.OrderItemCommand{
			{
				ProductID: productID,
				Quantity:  1,
				Price:     domain.MustParseMoney(itemPrice),
				SubTotal:  domain.MustParseMoney("50.00"),
			},
			{
				ProductID: productID,
				Quantity:  3,
				Price:     domain.MustParseMoney("50.00"),
				SubTotal:  domain.MustParseMoney("150.00"),
			},
		},
	}
}

func restaurantSnapshot(active bool) *domain.Restaurant {
	return &domain.Restaurant{
		ID:     restaurantID,
		Active: active,
		Products: []*domain.Product{
			{ID: productID, Name: "product-1", Price: domain.MustParseMoney("50.00")},
		},
	}
}

func expectCustomerFound(customers *mock.MockCustomerRepository) {
	customers.EXPECT().FindCustomer(gomock.Any(), customerID).
		Return(&domain.Customer{ID: customerID}, nil)
}

func expectRestaurantFound(restaurants *mock.MockRestaurantRepository, active bool) {
	restaurants.EXPECT().
		FindRestaurantInformation(gomock.Any(), restaurantID, []uuid.UUID{productID, productID}).
		Return(restaurantSnapshot(active), nil)
}

func expectSaveSucceeds(orders *mock.MockOrderRepository) {
	orders.EXPECT().Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, order *domain.Order) (*domain.Order, error) {
			return order, nil
		})
}

func TestOrderService_CreateOrder(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	logger, _ := zap.NewProduction()

	tests := []struct {
		name     string
		command  port.CreateOrderCommand
		mock     prepareMocks
		expError string
	}{
		{
			name:    "create good order",
			command: newCommand("50.00"),
			mock: func(customers *mock.MockCustomerRepository,
				restaurants *mock.MockRestaurantRepository,
				orders *mock.MockOrderRepository,
				payments *mock.MockOrderCreatedPaymentRequestPublisher) {
				expectCustomerFound(customers)
				expectRestaurantFound(restaurants, true)
				expectSaveSucceeds(orders)
				payments.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:    "customer not found",
			command: newCommand("50.00"),
			mock: func(customers *mock.MockCustomerRepository,
				restaurants *mock.MockRestaurantRepository,
				orders *mock.MockOrderRepository,
				payments *mock.MockOrderCreatedPaymentRequestPublisher) {
				customers.EXPECT().FindCustomer(gomock.Any(), customerID).
					Return(nil, domain.ErrDataNotFound)
			},
			expError: "Customer with id " + customerID.String() + " not found",
		},
		{
			name:    "restaurant not found",
			command: newCommand("50.00"),
			mock: func(customers *mock.MockCustomerRepository,
				restaurants *mock.MockRestaurantRepository,
				orders *mock.MockOrderRepository,
				payments *mock.MockOrderCreatedPaymentRequestPublisher) {
				expectCustomerFound(customers)
				restaurants.EXPECT().
					FindRestaurantInformation(gomock.Any(), restaurantID, gomock.Any()).
					Return(nil, domain.ErrDataNotFound)
			},
			expError: "Restaurant with id " + restaurantID.String() + " not found",
		},
		{
			name:    "restaurant not active",
			command: newCommand("50.00"),
			mock: func(customers *mock.MockCustomerRepository,
				restaurants *mock.MockRestaurantRepository,
				orders *mock.MockOrderRepository,
				payments *mock.MockOrderCreatedPaymentRequestPublisher) {
				expectCustomerFound(customers)
				expectRestaurantFound(restaurants, false)
			},
			expError: "Restaurant with id " + restaurantID.String() + " is currently not active",
		},
		{
			name:    "wrong item price",
			command: newCommand("250.00"),
			mock: func(customers *mock.MockCustomerRepository,
				restaurants *mock.MockRestaurantRepository,
				orders *mock.MockOrderRepository,
				payments *mock.MockOrderCreatedPaymentRequestPublisher) {
				expectCustomerFound(customers)
				expectRestaurantFound(restaurants, true)
			},
			expError: "Order item price: 250.00 is not valid for product " + productID.String(),
		},
		{
			name: "wrong total price",
			command: func() port.CreateOrderCommand {
				cmd := newCommand("50.00")
				cmd.Price = domain.MustParseMoney("250.00")
				return cmd
			}(),
			mock: func(customers *mock.MockCustomerRepository,
				restaurants *mock.MockRestaurantRepository,
				orders *mock.MockOrderRepository,
				payments *mock.MockOrderCreatedPaymentRequestPublisher) {
				expectCustomerFound(customers)
				expectRestaurantFound(restaurants, true)
			},
			expError: "Total price: 250.00 is not equal to Order items total: 200.00",
		},
		{
			name: "save fails",
			command: newCommand("50.00"),
			mock: func(customers *mock.MockCustomerRepository,
				restaurants *mock.MockRestaurantRepository,
				orders *mock.MockOrderRepository,
				payments *mock.MockOrderCreatedPaymentRequestPublisher) {
				expectCustomerFound(customers)
				expectRestaurantFound(restaurants, true)
				orders.EXPECT().Save(gomock.Any(), gomock.Any()).
					Return(nil, domain.ErrInternal)
			},
			expError: "Could not save order",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			customers := mock.NewMockCustomerRepository(mockCtrl)
			restaurants := mock.NewMockRestaurantRepository(mockCtrl)
			orders := mock.NewMockOrderRepository(mockCtrl)
			payments := mock.NewMockOrderCreatedPaymentRequestPublisher(mockCtrl)
			test.mock(customers, restaurants, orders, payments)

			s, err := service.NewOrderService(customers, restaurants, orders, payments, logger)
			assert.NoError(t, err)

			result, err := s.CreateOrder(context.Background(), test.command)

			if test.expError == "" {
				assert.NoError(t, err)
				assert.Equal(t, domain.OrderStatusPending, result.OrderStatus)
				assert.NotEqual(t, uuid.Nil, result.OrderTrackingID)
				assert.Equal(t, "Order created successfully", result.Message)
			} else {
				assert.Nil(t, result)
				assert.EqualError(t, err, test.expError)

				var domainErr *domain.OrderDomainError
				assert.ErrorAs(t, err, &domainErr)
			}
		})
	}
}

// Two identical commands produce two distinct orders: creation is not
// idempotent and every order gets its own tracking identifier.
func TestOrderService_CreateOrderNotIdempotent(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	logger, _ := zap.NewProduction()

	customers := mock.NewMockCustomerRepository(mockCtrl)
	restaurants := mock.NewMockRestaurantRepository(mockCtrl)
	orders := mock.NewMockOrderRepository(mockCtrl)
	payments := mock.NewMockOrderCreatedPaymentRequestPublisher(mockCtrl)

	customers.EXPECT().FindCustomer(gomock.Any(), customerID).
		Return(&domain.Customer{ID: customerID}, nil).Times(2)
	restaurants.EXPECT().
		FindRestaurantInformation(gomock.Any(), restaurantID, gomock.Any()).
		Return(restaurantSnapshot(true), nil).Times(2)
	orders.EXPECT().Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, order *domain.Order) (*domain.Order, error) {
			return order, nil
		}).Times(2)
	payments.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	s, err := service.NewOrderService(customers, restaurants, orders, payments, logger)
	assert.NoError(t, err)

	first, err := s.CreateOrder(context.Background(), newCommand("50.00"))
	assert.NoError(t, err)
	second, err := s.CreateOrder(context.Background(), newCommand("50.00"))
	assert.NoError(t, err)

	assert.NotEqual(t, first.OrderTrackingID, second.OrderTrackingID)
}

// A failed publish is logged but does not fail the request: the order is
// already persisted and the response still carries the tracking id.
func TestOrderService_CreateOrderPublishFailure(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	logger, _ := zap.NewProduction()

	customers := mock.NewMockCustomerRepository(mockCtrl)
	restaurants := mock.NewMockRestaurantRepository(mockCtrl)
	orders := mock.NewMockOrderRepository(mockCtrl)
	payments := mock.NewMockOrderCreatedPaymentRequestPublisher(mockCtrl)

	expectCustomerFound(customers)
	expectRestaurantFound(restaurants, true)
	expectSaveSucceeds(orders)
	payments.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(domain.ErrInternal)

	s, err := service.NewOrderService(customers, restaurants, orders, payments, logger)
	assert.NoError(t, err)

	result, err := s.CreateOrder(context.Background(), newCommand("50.00"))
	assert.NoError(t, err)
	assert.Equal(t, domain.OrderStatusPending, result.OrderStatus)
}

func TestOrderService_TrackOrder(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	logger, _ := zap.NewProduction()

	trackingID := uuid.New()

	tests := []struct {
		name      string
		mock      func(orders *mock.MockOrderRepository)
		expStatus domain.OrderStatus
		expError  error
	}{
		{
			name: "order found",
			mock: func(orders *mock.MockOrderRepository) {
				orders.EXPECT().FindByTrackingID(gomock.Any(), trackingID).
					Return(&domain.Order{
						ID:         uuid.New(),
						TrackingID: trackingID,
						Status:     domain.OrderStatusPending,
					}, nil)
			},
			expStatus: domain.OrderStatusPending,
		},
		{
			name: "order not found",
			mock: func(orders *mock.MockOrderRepository) {
				orders.EXPECT().FindByTrackingID(gomock.Any(), trackingID).
					Return(nil, domain.ErrDataNotFound)
			},
			expError: domain.ErrDataNotFound,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			customers := mock.NewMockCustomerRepository(mockCtrl)
			restaurants := mock.NewMockRestaurantRepository(mockCtrl)
			orders := mock.NewMockOrderRepository(mockCtrl)
			payments := mock.NewMockOrderCreatedPaymentRequestPublisher(mockCtrl)
			test.mock(orders)

			s, err := service.NewOrderService(customers, restaurants, orders, payments, logger)
			assert.NoError(t, err)

			result, err := s.TrackOrder(context.Background(), trackingID)

			if test.expError == nil {
				assert.NoError(t, err)
				assert.Equal(t, trackingID, result.OrderTrackingID)
				assert.Equal(t, test.expStatus, result.OrderStatus)
			} else {
				assert.Nil(t, result)
				assert.Equal(t, test.expError, err)
			}
		})
	}
}
