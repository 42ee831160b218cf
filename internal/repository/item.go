package repository

import (
	"context"
	"fmt"

	"github.com/leohenricardoso/encomenda-zap-sub000/internal/entity"
	"github.com/leohenricardoso/encomenda-zap-sub000/pkg/storage/postgres"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

type ItemRepository struct {
	db *postgres.Postgres
}

func NewItemRepository(db *postgres.Postgres) *ItemRepository {
	return &ItemRepository{db}
}

// CreateBatch inserts all line snapshots of one order in a single statement.
func (ir *ItemRepository) CreateBatch(
	ctx context.Context,
	queryExecuter postgres.QueryExecuter,
	items []*entity.OrderItem,
) error {
	const op = "repository.item.CreateBatch"

	if len(items) == 0 {
		return fmt.Errorf("%s: empty batch: %w", op, entity.ErrInvalidData)
	}

	query := ir.db.Builder.
		Insert("order_items").
		Columns("id", "order_id", "product_id", "variant_id", "product_name",
			"variant_label", "quantity", "unit_price_cents", "discount_cents")

	for _, item := range items {
		query = query.Values(
			item.ID, item.OrderID, item.ProductID, item.VariantID, item.ProductName,
			item.VariantLabel, item.Quantity, item.UnitPriceCents, item.DiscountCents,
		)
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("%s: building query: %w", op, err)
	}

	if _, err = queryExecuter.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("%s: exec: %w", op, err)
	}

	return nil
}

func (ir *ItemRepository) GetListByOrderID(
	ctx context.Context,
	orderID uuid.UUID,
) ([]*entity.OrderItem, error) {
	const op = "repository.item.GetListByOrderID"

	query := ir.db.Builder.
		Select("id", "order_id", "product_id", "variant_id", "product_name",
			"variant_label", "quantity", "unit_price_cents", "discount_cents").
		From("order_items").
		Where(squirrel.Eq{"order_id": orderID}).
		OrderBy("product_name")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: building query: %w", op, err)
	}

	rows, err := ir.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: query: %w", op, err)
	}
	defer rows.Close()

	var items []*entity.OrderItem
	for rows.Next() {
		item := &entity.OrderItem{}
		err = rows.Scan(
			&item.ID,
			&item.OrderID,
			&item.ProductID,
			&item.VariantID,
			&item.ProductName,
			&item.VariantLabel,
			&item.Quantity,
			&item.UnitPriceCents,
			&item.DiscountCents,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: row scan: %w", op, err)
		}
		items = append(items, item)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("%s: rows final error: %w", op, rows.Err())
	}

	return items, nil
}
