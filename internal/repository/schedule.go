package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/leohenricardoso/encomenda-zap-sub000/internal/entity"
	"github.com/leohenricardoso/encomenda-zap-sub000/pkg/storage/postgres"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ScheduleRepository struct {
	db *postgres.Postgres
}

func NewScheduleRepository(db *postgres.Postgres) *ScheduleRepository {
	return &ScheduleRepository{db}
}

// GetByDate returns the override row for one calendar date, or
// ErrDataNotFound when the merchant has no override for it.
func (sr *ScheduleRepository) GetByDate(
	ctx context.Context,
	merchantID uuid.UUID,
	date time.Time,
) (*entity.ScheduleDay, error) {
	const op = "repository.schedule.GetByDate"

	query := sr.db.Builder.
		Select("id", "merchant_id", "date", "is_open").
		From("schedule_days").
		Where(squirrel.Eq{
			"merchant_id": merchantID,
			"date":        date.Format(time.DateOnly),
		}).
		Limit(1)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: building query: %w", op, err)
	}

	result := &entity.ScheduleDay{}
	err = sr.db.Pool.QueryRow(ctx, sql, args...).Scan(
		&result.ID,
		&result.MerchantID,
		&result.Date,
		&result.IsOpen,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entity.ErrDataNotFound
		}
		return nil, fmt.Errorf("%s: query row: %w", op, err)
	}

	return result, nil
}
