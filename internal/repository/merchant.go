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

type MerchantRepository struct {
	db *postgres.Postgres
}

func NewMerchantRepository(db *postgres.Postgres) *MerchantRepository {
	return &MerchantRepository{db}
}

func (mr *MerchantRepository) GetBySlug(
	ctx context.Context,
	slug string,
) (*entity.Merchant, error) {
	const op = "repository.merchant.GetBySlug"

	return mr.getOne(ctx, op, squirrel.Eq{"slug": slug})
}

func (mr *MerchantRepository) GetByID(
	ctx context.Context,
	merchantID uuid.UUID,
) (*entity.Merchant, error) {
	const op = "repository.merchant.GetByID"

	return mr.getOne(ctx, op, squirrel.Eq{"id": merchantID})
}

func (mr *MerchantRepository) GetByAPIToken(
	ctx context.Context,
	token string,
) (*entity.Merchant, error) {
	const op = "repository.merchant.GetByAPIToken"

	return mr.getOne(ctx, op, squirrel.Eq{"api_token": token})
}

func (mr *MerchantRepository) getOne(
	ctx context.Context,
	op string,
	pred squirrel.Eq,
) (*entity.Merchant, error) {
	query := mr.db.Builder.
		Select("id", "slug", "name", "phone", "timezone", "created_at").
		From("merchants").
		Where(pred).
		Limit(1)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: building query: %w", op, err)
	}

	result := &entity.Merchant{}
	err = mr.db.Pool.QueryRow(ctx, sql, args...).Scan(
		&result.ID,
		&result.Slug,
		&result.Name,
		&result.Phone,
		&result.Timezone,
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

// NextOrderNumber claims the next merchant-scoped sequential order number.
// The UPDATE takes a row lock on the merchant, so concurrent placements
// serialize here and the sequence stays gap-free and duplicate-free as long
// as the claim happens inside the same transaction as the order insert.
func (mr *MerchantRepository) NextOrderNumber(
	ctx context.Context,
	queryExecuter postgres.QueryExecuter,
	merchantID uuid.UUID,
) (int64, error) {
	const op = "repository.merchant.NextOrderNumber"

	query := mr.db.Builder.
		Update("merchants").
		Set("order_seq", squirrel.Expr("order_seq + 1")).
		Where(squirrel.Eq{"id": merchantID}).
		Suffix("RETURNING order_seq")

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%s: building query: %w", op, err)
	}

	var number int64
	err = queryExecuter.QueryRow(ctx, sql, args...).Scan(&number)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, entity.ErrDataNotFound
		}
		return 0, fmt.Errorf("%s: query row: %w", op, err)
	}

	return number, nil
}
