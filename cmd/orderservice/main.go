package main

import (
	"context"
	"fmt"

	"github.com/foodordering/orderservice/internal/adapter/config"
	"github.com/foodordering/orderservice/internal/adapter/handler/http"
	"github.com/foodordering/orderservice/internal/adapter/logger"
	"github.com/foodordering/orderservice/internal/adapter/messaging/kafka"
	"github.com/foodordering/orderservice/internal/adapter/storage"
	"github.com/foodordering/orderservice/internal/adapter/storage/repository"
	"github.com/foodordering/orderservice/internal/core/service"
	"go.uber.org/zap"
)

func main() {
	conf, err := config.NewConfig()
	if err != nil {
		fmt.Printf("config error:%s", err)
		return
	}

	log := logger.NewLogger(conf.App)
	if log == nil {
		fmt.Printf("error creating log")
		return
	}
	defer func() {
		err := log.Sync()
		if err != nil {
			fmt.Printf("log error: %s", err)
		}
	}()

	ctx := context.Background()

	db, err := storage.NewDBStorage(ctx, conf.Database)
	if err != nil {
		log.Error("database error", zap.Error(err))
		return
	}
	err = db.RunMigrations()
	if err != nil {
		log.Error("database migration error", zap.Error(err))
		return
	}

	customerRepo, err := repository.NewCustomerRepository(db)
	if err != nil {
		log.Error("customer repo creating error", zap.Error(err))
		return
	}
	restaurantRepo, err := repository.NewRestaurantRepository(db)
	if err != nil {
		log.Error("restaurant repo creating error", zap.Error(err))
		return
	}
	orderRepo, err := repository.NewOrderRepository(db)
	if err != nil {
		log.Error("order repo creating error", zap.Error(err))
		return
	}

	paymentPub, err := kafka.NewPaymentRequestPublisher(conf.Kafka, log.Named("PaymentPublisher"))
	if err != nil {
		log.Error("payment publisher creating error", zap.Error(err))
		return
	}
	defer func() {
		if err := paymentPub.Close(); err != nil {
			log.Error("payment publisher close error", zap.Error(err))
		}
	}()

	svc, err := service.NewOrderService(customerRepo, restaurantRepo, orderRepo,
		paymentPub, log.Named("OrderService"))
	if err != nil {
		log.Error("order service creating error", zap.Error(err))
		return
	}

	orderHandler, err := http.NewOrderHandler(svc, log.Named("Order handler"))
	if err != nil {
		log.Error("order handler creating error", zap.Error(err))
		return
	}

	r, err := http.NewRouter(conf.HTTP, orderHandler)
	if err != nil {
		log.Error("router creating error", zap.Error(err))
		return
	}

	err = r.Serve(conf.HTTP.HostString)
	if err != nil {
		log.Error("router serve error", zap.Error(err))
		return
	}
}
