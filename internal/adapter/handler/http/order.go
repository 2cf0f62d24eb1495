package http

import (
	"net/http"

	"github.com/foodordering/orderservice/internal/core/domain"
	"github.com/foodordering/orderservice/internal/core/port"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type OrderHandler struct {
	Handler
	service port.OrderService
}

func NewOrderHandler(service port.OrderService, logger *zap.Logger) (*OrderHandler, error) {
	return &OrderHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type orderAddressReq struct {
	Street     string `json:"street" binding:"required"`
	PostalCode string `json:"postalCode" binding:"required"`
	City       string `json:"city" binding:"required"`
}

type orderItemReq struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int32  `json:"quantity" binding:"required"`
	Price     string `json:"price" binding:"required"`
	SubTotal  string `json:"subTotal" binding:"required"`
}

type createOrderReq struct {
	CustomerID   string          `json:"customerId" binding:"required"`
	RestaurantID string          `json:"restaurantId" binding:"required"`
	Address      orderAddressReq `json:"address" binding:"required"`
	Price        string          `json:"price" binding:"required"`
	Items        []orderItemReq  `json:"items" binding:"required,dive"`
}

type createOrderResp struct {
	OrderTrackingID string `json:"orderTrackingId"`
	OrderStatus     string `json:"orderStatus"`
	Message         string `json:"message"`
}

func (oh *OrderHandler) CreateOrder(ctx *gin.Context) {
	var req createOrderReq
	if err := ctx.ShouldBindJSON(&req); err != nil {
		oh.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	cmd, err := requestToCommand(req)
	if err != nil {
		oh.handleValidationError(ctx, err)
		return
	}

	resp, err := oh.service.CreateOrder(ctx, cmd)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccessWithStatus(ctx, createOrderResp{
		OrderTrackingID: resp.OrderTrackingID.String(),
		OrderStatus:     string(resp.OrderStatus),
		Message:         resp.Message,
	}, http.StatusCreated)
}

type trackOrderResp struct {
	OrderTrackingID string `json:"orderTrackingId"`
	OrderStatus     string `json:"orderStatus"`
}

func (oh *OrderHandler) TrackOrder(ctx *gin.Context) {
	trackingID, err := uuid.Parse(ctx.Param("trackingId"))
	if err != nil {
		oh.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	resp, err := oh.service.TrackOrder(ctx, trackingID)
	if err != nil {
		oh.handleError(ctx, err)
		return
	}

	oh.handleSuccess(ctx, trackOrderResp{
		OrderTrackingID: resp.OrderTrackingID.String(),
		OrderStatus:     string(resp.OrderStatus),
	})
}

func requestToCommand(req createOrderReq) (port.CreateOrderCommand, error) {
	customerID, err := uuid.Parse(req.CustomerID)
	if err != nil {
		return port.CreateOrderCommand{}, domain.ErrBadRequest
	}
	restaurantID, err := uuid.Parse(req.RestaurantID)
	if err != nil {
		return port.CreateOrderCommand{}, domain.ErrBadRequest
	}
	price, err := domain.ParseMoney(req.Price)
	if err != nil {
		return port.CreateOrderCommand{}, domain.ErrBadRequest
	}

	items := make([]port.OrderItemCommand, 0, len(req.Items))
	for _, item := range req.Items {
		productID, err := uuid.Parse(item.ProductID)
		if err != nil {
			return port.CreateOrderCommand{}, domain.ErrBadRequest
		}
		itemPrice, err := domain.ParseMoney(item.Price)
		if err != nil {
			return port.CreateOrderCommand{}, domain.ErrBadRequest
		}
		subTotal, err := domain.ParseMoney(item.SubTotal)
		if err != nil {
			return port.CreateOrderCommand{}, domain.ErrBadRequest
		}
		items = append(items, port.OrderItemCommand{
			ProductID: productID,
			Quantity:  item.Quantity,
			Price:     itemPrice,
			SubTotal:  subTotal,
		})
	}

	return port.CreateOrderCommand{
		CustomerID:   customerID,
		RestaurantID: restaurantID,
		Address: port.OrderAddress{
			Street:     req.Address.Street,
			PostalCode: req.Address.PostalCode,
			City:       req.Address.City,
		},
		Price: price,
		Items: items,
	}, nil
}
