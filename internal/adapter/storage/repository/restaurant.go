package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/foodordering/orderservice/internal/adapter/storage"
	"github.com/foodordering/orderservice/internal/core/domain"
	"github.com/google/uuid"
	"github.com/govalues/decimal"
	"github.com/jackc/pgx/v5"
)

type RestaurantRepository struct {
	db *storage.DB
}

func NewRestaurantRepository(db *storage.DB) (*RestaurantRepository, error) {
	return &RestaurantRepository{db: db}, nil
}

func (rr *RestaurantRepository) FindRestaurantInformation(ctx context.Context,
	restaurantID uuid.UUID, productIDs []uuid.UUID) (*domain.Restaurant, error) {
	statement := rr.db.QueryBuilder.
		Select("id", "active").
		From("restaurants").
		Where(sq.Eq{"id": restaurantID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	restaurant := domain.Restaurant{}

	err = rr.db.QueryRow(ctx, sql, args...).Scan(
		&restaurant.ID,
		&restaurant.Active,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}

	products, err := rr.readProducts(ctx, restaurantID, productIDs)
	if err != nil {
		return nil, err
	}
	restaurant.Products = products

	return &restaurant, nil
}

func (rr *RestaurantRepository) readProducts(ctx context.Context,
	restaurantID uuid.UUID, productIDs []uuid.UUID) ([]*domain.Product, error) {
	statement := rr.db.QueryBuilder.
		Select("product_id", "name", "price").
		From("restaurant_products").
		Where(sq.Eq{"restaurant_id": restaurantID, "product_id": productIDs})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := rr.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}

	products := make([]*domain.Product, 0)
	for rows.Next() {
		product := domain.Product{}
		var price decimal.Decimal
		err := rows.Scan(
			&product.ID,
			&product.Name,
			&price,
		)
		if err != nil {
			return nil, err
		}
		product.Price = domain.NewMoney(price)
		products = append(products, &product)
	}

	err = rows.Err()
	if err != nil {
		return nil, err
	}

	return products, nil
}
