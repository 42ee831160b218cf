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

type ProductRepository struct {
	db *postgres.Postgres
}

func NewProductRepository(db *postgres.Postgres) *ProductRepository {
	return &ProductRepository{db}
}

// GetByID loads a product with all its variants, scoped to the merchant.
// Inactive variants are included so callers can produce specific errors.
func (pr *ProductRepository) GetByID(
	ctx context.Context,
	merchantID, productID uuid.UUID,
) (*entity.Product, error) {
	const op = "repository.product.GetByID"

	query := pr.db.Builder.
		Select("id", "merchant_id", "name", "description", "price_cents",
			"min_quantity", "is_active", "created_at", "updated_at").
		From("products").
		Where(squirrel.Eq{"id": productID, "merchant_id": merchantID}).
		Limit(1)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: building query: %w", op, err)
	}

	result := &entity.Product{}
	err = pr.db.Pool.QueryRow(ctx, sql, args...).Scan(
		&result.ID,
		&result.MerchantID,
		&result.Name,
		&result.Description,
		&result.PriceCents,
		&result.MinQuantity,
		&result.IsActive,
		&result.CreatedAt,
		&result.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entity.ErrDataNotFound
		}
		return nil, fmt.Errorf("%s: query row: %w", op, err)
	}

	variants, err := pr.getVariants(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("%s: load variants: %w", op, err)
	}
	result.Variants = variants

	return result, nil
}

func (pr *ProductRepository) getVariants(
	ctx context.Context,
	productID uuid.UUID,
) ([]*entity.ProductVariant, error) {
	const op = "repository.product.getVariants"

	query := pr.db.Builder.
		Select("id", "product_id", "label", "price_cents", "is_active").
		From("product_variants").
		Where(squirrel.Eq{"product_id": productID}).
		OrderBy("label")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: building query: %w", op, err)
	}

	rows, err := pr.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: query: %w", op, err)
	}
	defer rows.Close()

	var variants []*entity.ProductVariant
	for rows.Next() {
		v := &entity.ProductVariant{}
		if err = rows.Scan(&v.ID, &v.ProductID, &v.Label, &v.PriceCents, &v.IsActive); err != nil {
			return nil, fmt.Errorf("%s: row scan: %w", op, err)
		}
		variants = append(variants, v)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("%s: rows final error: %w", op, rows.Err())
	}

	return variants, nil
}
