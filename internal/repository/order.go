package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/leohenricardoso/encomenda-zap-sub000/internal/entity"
	"github.com/leohenricardoso/encomenda-zap-sub000/pkg/storage/postgres"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const _uniqueViolationCode = "23505"

type OrderRepository struct {
	db *postgres.Postgres
}

func NewOrderRepository(db *postgres.Postgres) *OrderRepository {
	return &OrderRepository{db}
}

var orderColumns = []string{
	"id", "merchant_id", "customer_id", "number", "status",
	"fulfillment_type", "delivery_date", "pickup_slot_id", "pickup_time_label",
	"postal_code", "street", "street_number", "neighborhood", "city",
	"complement", "notes", "total_cents", "created_at", "updated_at",
}

func (or *OrderRepository) Create(
	ctx context.Context,
	queryExecuter postgres.QueryExecuter,
	order *entity.Order,
) (*entity.Order, error) {
	const op = "repository.order.Create"

	query := or.db.Builder.
		Insert("orders").
		Columns(
			"id", "merchant_id", "customer_id", "number", "status",
			"fulfillment_type", "delivery_date", "pickup_slot_id", "pickup_time_label",
			"postal_code", "street", "street_number", "neighborhood", "city",
			"complement", "notes", "total_cents",
		).
		Values(
			order.ID, order.MerchantID, order.CustomerID, order.Number, order.Status,
			order.FulfillmentType, order.DeliveryDate, order.PickupSlotID, order.PickupTimeLabel,
			order.PostalCode, order.Street, order.StreetNumber, order.Neighborhood, order.City,
			order.Complement, order.Notes, order.TotalCents,
		).
		Suffix("RETURNING created_at, updated_at")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: building query: %w", op, err)
	}

	err = queryExecuter.QueryRow(ctx, sql, args...).Scan(&order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == _uniqueViolationCode {
			return nil, entity.ErrConflictingData
		}
		return nil, fmt.Errorf("%s: query row: %w", op, err)
	}

	return order, nil
}

func (or *OrderRepository) GetByID(
	ctx context.Context,
	merchantID, orderID uuid.UUID,
) (*entity.Order, error) {
	const op = "repository.order.GetByID"

	query := or.db.Builder.
		Select(orderColumns...).
		From("orders").
		Where(squirrel.Eq{"id": orderID, "merchant_id": merchantID}).
		Limit(1)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: building query: %w", op, err)
	}

	result, err := or.scanOne(or.db.Pool.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entity.ErrDataNotFound
		}
		return nil, fmt.Errorf("%s: query row: %w", op, err)
	}

	return result, nil
}

// UpdateStatus persists an already validated status transition and returns
// the updated order. The current status is part of the predicate, so a
// concurrent transition makes this report ErrDataNotFound instead of
// silently overwriting.
func (or *OrderRepository) UpdateStatus(
	ctx context.Context,
	queryExecuter postgres.QueryExecuter,
	merchantID, orderID uuid.UUID,
	from, to entity.OrderStatus,
) (*entity.Order, error) {
	const op = "repository.order.UpdateStatus"

	query := or.db.Builder.
		Update("orders").
		Set("status", to).
		Set("updated_at", time.Now().UTC()).
		Where(squirrel.Eq{"id": orderID, "merchant_id": merchantID, "status": from}).
		Suffix("RETURNING " + strings.Join(orderColumns, ", "))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: building query: %w", op, err)
	}

	result, err := or.scanOne(queryExecuter.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entity.ErrDataNotFound
		}
		return nil, fmt.Errorf("%s: query row: %w", op, err)
	}

	return result, nil
}

// GetList returns the merchant's orders, newest first, optionally filtered
// by status.
func (or *OrderRepository) GetList(
	ctx context.Context,
	merchantID uuid.UUID,
	status *entity.OrderStatus,
	limit, offset uint64,
) ([]*entity.Order, error) {
	const op = "repository.order.GetList"

	query := or.db.Builder.
		Select(orderColumns...).
		From("orders").
		Where(squirrel.Eq{"merchant_id": merchantID}).
		OrderBy("created_at DESC").
		Limit(limit).
		Offset(offset)

	if status != nil {
		query = query.Where(squirrel.Eq{"status": *status})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: building query: %w", op, err)
	}

	rows, err := or.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: query: %w", op, err)
	}
	defer rows.Close()

	var orders []*entity.Order
	for rows.Next() {
		order, err := or.scanOne(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: row scan: %w", op, err)
		}
		orders = append(orders, order)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("%s: rows final error: %w", op, rows.Err())
	}

	return orders, nil
}

func (or *OrderRepository) scanOne(row pgx.Row) (*entity.Order, error) {
	order := &entity.Order{}
	err := row.Scan(
		&order.ID,
		&order.MerchantID,
		&order.CustomerID,
		&order.Number,
		&order.Status,
		&order.FulfillmentType,
		&order.DeliveryDate,
		&order.PickupSlotID,
		&order.PickupTimeLabel,
		&order.PostalCode,
		&order.Street,
		&order.StreetNumber,
		&order.Neighborhood,
		&order.City,
		&order.Complement,
		&order.Notes,
		&order.TotalCents,
		&order.CreatedAt,
		&order.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return order, nil
}
