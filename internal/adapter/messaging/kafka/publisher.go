package kafka

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/foodordering/orderservice/internal/adapter/config"
	"github.com/foodordering/orderservice/internal/core/domain"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const eventTypeOrderCreated = "order.created"

// PaymentRequestPublisher delivers order-created events to the payment
// request topic, keyed by order id.
type PaymentRequestPublisher struct {
	writer *kafka.Writer
	logger *zap.Logger
}

func NewPaymentRequestPublisher(cfg *config.Kafka, logger *zap.Logger) (*PaymentRequestPublisher, error) {
	brokers := []string{}
	for _, b := range strings.Split(cfg.Brokers, ",") {
		b = strings.TrimSpace(b)
		if b != "" {
			brokers = append(brokers, b)
		}
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
	}

	return &PaymentRequestPublisher{
		writer: writer,
		logger: logger,
	}, nil
}

type paymentRequestMessage struct {
	EventID    string    `json:"event_id"`
	OrderID    string    `json:"order_id"`
	TrackingID string    `json:"tracking_id"`
	CustomerID string    `json:"customer_id"`
	Price      string    `json:"price"`
	Type       string    `json:"type"`
	CreatedAt  time.Time `json:"created_at"`
}

func (p *PaymentRequestPublisher) Publish(ctx context.Context, event *domain.OrderCreatedEvent) error {
	order := event.Order

	payload := paymentRequestMessage{
		EventID:    uuid.NewString(),
		OrderID:    order.ID.String(),
		TrackingID: order.TrackingID.String(),
		CustomerID: order.CustomerID.String(),
		Price:      order.Price.String(),
		Type:       eventTypeOrderCreated,
		CreatedAt:  event.CreatedAt,
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(payload.OrderID),
		Value: data,
		Time:  event.CreatedAt,
	})
	if err != nil {
		return err
	}

	p.logger.Debug("Published payment request",
		zap.String("orderID", payload.OrderID),
		zap.String("eventID", payload.EventID))

	return nil
}

func (p *PaymentRequestPublisher) Close() error {
	return p.writer.Close()
}
