package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/leohenricardoso/encomenda-zap-sub000/internal/entity"
	"github.com/leohenricardoso/encomenda-zap-sub000/pkg/storage/postgres"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type CustomerRepository struct {
	db *postgres.Postgres
}

func NewCustomerRepository(db *postgres.Postgres) *CustomerRepository {
	return &CustomerRepository{db}
}

// Upsert finds or creates the customer keyed by (merchant, phone). A repeat
// order from the same phone reuses the row and refreshes the display name.
func (cr *CustomerRepository) Upsert(
	ctx context.Context,
	queryExecuter postgres.QueryExecuter,
	customer *entity.Customer,
) (*entity.Customer, error) {
	const op = "repository.customer.Upsert"

	query := cr.db.Builder.
		Insert("customers").
		Columns("id", "merchant_id", "name", "phone").
		Values(customer.ID, customer.MerchantID, customer.Name, customer.Phone).
		Suffix("ON CONFLICT (merchant_id, phone) DO UPDATE SET name = EXCLUDED.name").
		Suffix("RETURNING id, merchant_id, name, phone, created_at")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: building query: %w", op, err)
	}

	result := &entity.Customer{}
	err = queryExecuter.QueryRow(ctx, sql, args...).Scan(
		&result.ID,
		&result.MerchantID,
		&result.Name,
		&result.Phone,
		&result.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%s: query row: %w", op, err)
	}

	return result, nil
}

func (cr *CustomerRepository) GetByID(
	ctx context.Context,
	customerID uuid.UUID,
) (*entity.Customer, error) {
	const op = "repository.customer.GetByID"

	query := cr.db.Builder.
		Select("id", "merchant_id", "name", "phone", "created_at").
		From("customers").
		Where(squirrel.Eq{"id": customerID}).
		Limit(1)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: building query: %w", op, err)
	}

	result := &entity.Customer{}
	err = cr.db.Pool.QueryRow(ctx, sql, args...).Scan(
		&result.ID,
		&result.MerchantID,
		&result.Name,
		&result.Phone,
		&result.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entity.ErrDataNotFound
		}
		return nil, fmt.Errorf("%s: query row: %w", op, err)
	}

	return result, nil
}
