package repository

import (
	"context"
	"fmt"

	"github.com/leohenricardoso/encomenda-zap-sub000/internal/entity"
	"github.com/leohenricardoso/encomenda-zap-sub000/pkg/storage/postgres"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

type DeliveryRangeRepository struct {
	db *postgres.Postgres
}

func NewDeliveryRangeRepository(db *postgres.Postgres) *DeliveryRangeRepository {
	return &DeliveryRangeRepository{db}
}

// GetListByMerchant returns every configured range. An empty result means
// the merchant delivers everywhere.
func (dr *DeliveryRangeRepository) GetListByMerchant(
	ctx context.Context,
	merchantID uuid.UUID,
) ([]*entity.DeliveryRange, error) {
	const op = "repository.delivery_range.GetListByMerchant"

	query := dr.db.Builder.
		Select("id", "merchant_id", "cep_start", "cep_end").
		From("delivery_ranges").
		Where(squirrel.Eq{"merchant_id": merchantID}).
		OrderBy("cep_start")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: building query: %w", op, err)
	}

	rows, err := dr.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: query: %w", op, err)
	}
	defer rows.Close()

	var ranges []*entity.DeliveryRange
	for rows.Next() {
		r := &entity.DeliveryRange{}
		if err = rows.Scan(&r.ID, &r.MerchantID, &r.CEPStart, &r.CEPEnd); err != nil {
			return nil, fmt.Errorf("%s: row scan: %w", op, err)
		}
		ranges = append(ranges, r)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("%s: rows final error: %w", op, rows.Err())
	}

	return ranges, nil
}
