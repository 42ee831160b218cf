package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/leohenricardoso/encomenda-zap-sub000/internal/entity"
	"github.com/leohenricardoso/encomenda-zap-sub000/pkg/logger"
)

type ScheduleService struct {
	scheduleRepo ScheduleRepository
	openWeekdays map[time.Weekday]bool
	logger       logger.Logger
}

func NewScheduleService(
	scheduleRepo ScheduleRepository,
	openWeekdays []int,
	logger logger.Logger,
) *ScheduleService {
	open := make(map[time.Weekday]bool, len(openWeekdays))
	for _, d := range openWeekdays {
		open[time.Weekday(d)] = true
	}

	return &ScheduleService{
		scheduleRepo: scheduleRepo,
		openWeekdays: open,
		logger:       logger,
	}
}

// IsOpen reports whether the store accepts orders for the calendar date.
// An override row for the date wins; without one the default weekday rule
// applies.
func (ss *ScheduleService) IsOpen(
	ctx context.Context,
	merchant *entity.Merchant,
	date time.Time,
) (bool, error) {
	const op = "service.schedule.IsOpen"

	day := entity.DateOnly(date, merchant.Location())

	override, err := ss.scheduleRepo.GetByDate(ctx, merchant.ID, day)
	if err != nil {
		if errors.Is(err, entity.ErrDataNotFound) {
			return ss.openWeekdays[day.Weekday()], nil
		}
		return false, fmt.Errorf("%s: load override: %w", op, err)
	}

	return override.IsOpen, nil
}
