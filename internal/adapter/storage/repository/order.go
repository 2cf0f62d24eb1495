package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/foodordering/orderservice/internal/adapter/storage"
	"github.com/foodordering/orderservice/internal/core/domain"
	"github.com/google/uuid"
	"github.com/govalues/decimal"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type OrderRepository struct {
	db *storage.DB
}

func NewOrderRepository(db *storage.DB) (*OrderRepository, error) {
	return &OrderRepository{db: db}, nil
}

// Save writes the order and its items in one transaction.
func (or *OrderRepository) Save(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	err := pgx.BeginFunc(ctx, or.db, func(tx pgx.Tx) error {
		orderSt := or.db.QueryBuilder.
			Insert("orders").
			Columns("id", "customer_id", "restaurant_id", "tracking_id",
				"price", "status", "street", "postal_code", "city").
			Values(order.ID, order.CustomerID, order.RestaurantID, order.TrackingID,
				order.Price.Amount(), order.Status,
				order.DeliveryAddress.Street, order.DeliveryAddress.PostalCode,
				order.DeliveryAddress.City)

		sql, args, err := orderSt.ToSql()
		if err != nil {
			return err
		}

		_, err = tx.Exec(ctx, sql, args...)
		if err != nil {
			return err
		}

		itemSt, ok := orderItemsBatch(or.db.QueryBuilder, order)
		if !ok {
			return nil
		}

		sql, args, err = itemSt.ToSql()
		if err != nil {
			return err
		}

		_, err = tx.Exec(ctx, sql, args...)
		return err
	})

	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, domain.ErrConflictingData
		}
		return nil, err
	}

	return order, nil
}

// orderItemsBatch builds the multi-row insert for the order's items.
// An empty batch reports !ok: squirrel refuses an INSERT without values.
func orderItemsBatch(qb *sq.StatementBuilderType, order *domain.Order) (sq.InsertBuilder, bool) {
	if len(order.Items) == 0 {
		return sq.InsertBuilder{}, false
	}

	itemSt := qb.
		Insert("order_items").
		Columns("order_id", "id", "product_id", "quantity", "price", "sub_total")
	for _, item := range order.Items {
		itemSt = itemSt.Values(order.ID, item.ID, item.ProductID,
			item.Quantity, item.Price.Amount(), item.SubTotal.Amount())
	}

	return itemSt, true
}

func (or *OrderRepository) FindByTrackingID(ctx context.Context, trackingID uuid.UUID) (*domain.Order, error) {
	statement := or.db.QueryBuilder.
		Select("id", "customer_id", "restaurant_id", "tracking_id",
			"price", "status", "street", "postal_code", "city").
		From("orders").
		Where(sq.Eq{"tracking_id": trackingID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	order := domain.Order{}
	var price decimal.Decimal

	err = or.db.QueryRow(ctx, sql, args...).Scan(
		&order.ID,
		&order.CustomerID,
		&order.RestaurantID,
		&order.TrackingID,
		&price,
		&order.Status,
		&order.DeliveryAddress.Street,
		&order.DeliveryAddress.PostalCode,
		&order.DeliveryAddress.City,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}
	order.Price = domain.NewMoney(price)

	items, err := or.readItems(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	order.Items = items

	return &order, nil
}

func (or *OrderRepository) readItems(ctx context.Context, orderID uuid.UUID) ([]*domain.OrderItem, error) {
	statement := or.db.QueryBuilder.
		Select("id", "product_id", "quantity", "price", "sub_total").
		From("order_items").
		Where(sq.Eq{"order_id": orderID}).
		OrderBy("id")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := or.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}

	items := make([]*domain.OrderItem, 0)
	for rows.Next() {
		item := domain.OrderItem{}
		var price, subTotal decimal.Decimal
		err := rows.Scan(
			&item.ID,
			&item.ProductID,
			&item.Quantity,
			&price,
			&subTotal,
		)
		if err != nil {
			return nil, err
		}
		item.Price = domain.NewMoney(price)
		item.SubTotal = domain.NewMoney(subTotal)
		items = append(items, &item)
	}

	err = rows.Err()
	if err != nil {
		return nil, err
	}

	return items, nil
}
