package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/leohenricardoso/encomenda-zap-sub000/internal/entity"
	"github.com/leohenricardoso/encomenda-zap-sub000/pkg/storage/postgres"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

type PickupSlotRepository struct {
	db *postgres.Postgres
}

func NewPickupSlotRepository(db *postgres.Postgres) *PickupSlotRepository {
	return &PickupSlotRepository{db}
}

// GetActiveByDay returns the merchant's active slots for one weekday,
// ordered by start time.
func (pr *PickupSlotRepository) GetActiveByDay(
	ctx context.Context,
	merchantID uuid.UUID,
	day time.Weekday,
) ([]*entity.PickupSlot, error) {
	const op = "repository.pickup_slot.GetActiveByDay"

	query := pr.db.Builder.
		Select("id", "merchant_id", "day_of_week", "start_time", "end_time", "is_active").
		From("pickup_slots").
		Where(squirrel.Eq{
			"merchant_id": merchantID,
			"day_of_week": int(day),
			"is_active":   true,
		}).
		OrderBy("start_time")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: building query: %w", op, err)
	}

	rows, err := pr.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: query: %w", op, err)
	}
	defer rows.Close()

	var slots []*entity.PickupSlot
	for rows.Next() {
		slot := &entity.PickupSlot{}
		var dayOfWeek int
		err = rows.Scan(&slot.ID, &slot.MerchantID, &dayOfWeek,
			&slot.StartTime, &slot.EndTime, &slot.IsActive)
		if err != nil {
			return nil, fmt.Errorf("%s: row scan: %w", op, err)
		}
		slot.DayOfWeek = time.Weekday(dayOfWeek)
		slots = append(slots, slot)
	}

	if rows.Err() != nil {
		return nil, fmt.Errorf("%s: rows final error: %w", op, rows.Err())
	}

	return slots, nil
}
