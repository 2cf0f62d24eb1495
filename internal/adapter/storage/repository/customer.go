package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/foodordering/orderservice/internal/adapter/storage"
	"github.com/foodordering/orderservice/internal/core/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type CustomerRepository struct {
	db *storage.DB
}

func NewCustomerRepository(db *storage.DB) (*CustomerRepository, error) {
	return &CustomerRepository{db: db}, nil
}

func (cr *CustomerRepository) FindCustomer(ctx context.Context, customerID uuid.UUID) (*domain.Customer, error) {
	statement := cr.db.QueryBuilder.
		Select("id").
		From("customers").
		Where(sq.Eq{"id": customerID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	customer := domain.Customer{}

	err = cr.db.QueryRow(ctx, sql, args...).Scan(&customer.ID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}

	return &customer, nil
}
