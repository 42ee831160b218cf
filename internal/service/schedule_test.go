package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/leohenricardoso/encomenda-zap-sub000/internal/entity"
	mock_repository "github.com/leohenricardoso/encomenda-zap-sub000/internal/repository/mock"
	"github.com/leohenricardoso/encomenda-zap-sub000/internal/service"
	mock_logger "github.com/leohenricardoso/encomenda-zap-sub000/pkg/logger/mock"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
)

// weekdayDate returns a fixed date falling on the given weekday.
// 2026-09-07 is a Monday.
func weekdayDate(day time.Weekday) time.Time {
	monday := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	return monday.AddDate(0, 0, int(day-time.Monday))
}

func TestScheduleService_IsOpen(t *testing.T) {
	ctx := context.Background()
	openWeekdays := []int{1, 2, 3, 4, 5}

	merchant := &entity.Merchant{
		ID:   uuid.New(),
		Slug: "doceria-da-ana",
		Name: "Doceria da Ana",
	}

	testCases := []struct {
		desc     string
		date     time.Time
		override *entity.ScheduleDay
		expected bool
	}{
		{
			desc:     "WeekdayDefaultOpen",
			date:     weekdayDate(time.Wednesday),
			expected: true,
		},
		{
			desc:     "SaturdayDefaultClosed",
			date:     weekdayDate(time.Saturday),
			expected: false,
		},
		{
			desc:     "SundayDefaultClosed",
			date:     weekdayDate(time.Sunday),
			expected: false,
		},
		{
			desc: "OverrideClosesOpenWeekday",
			date: weekdayDate(time.Monday),
			override: &entity.ScheduleDay{
				ID:         uuid.New(),
				MerchantID: uuid.New(),
				Date:       weekdayDate(time.Monday),
				IsOpen:     false,
			},
			expected: false,
		},
		{
			desc: "OverrideOpensClosedWeekday",
			date: weekdayDate(time.Sunday),
			override: &entity.ScheduleDay{
				ID:         uuid.New(),
				MerchantID: uuid.New(),
				Date:       weekdayDate(time.Sunday),
				IsOpen:     true,
			},
			expected: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			scheduleRepo := mock_repository.NewMockScheduleRepository(ctrl)
			if tc.override != nil {
				scheduleRepo.EXPECT().GetByDate(ctx, merchant.ID, gomock.Any()).
					Return(tc.override, nil).Times(1)
			} else {
				scheduleRepo.EXPECT().GetByDate(ctx, merchant.ID, gomock.Any()).
					Return(nil, entity.ErrDataNotFound).Times(1)
			}

			s := service.NewScheduleService(
				scheduleRepo, openWeekdays, mock_logger.NewMockLogger(ctrl))

			open, err := s.IsOpen(ctx, merchant, tc.date)
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if open != tc.expected {
				t.Errorf("expected open=%v, got %v", tc.expected, open)
			}
		})
	}

	t.Run("RepositoryError", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		scheduleRepo := mock_repository.NewMockScheduleRepository(ctrl)
		scheduleRepo.EXPECT().GetByDate(ctx, merchant.ID, gomock.Any()).
			Return(nil, errors.New("connection lost")).Times(1)

		s := service.NewScheduleService(
			scheduleRepo, openWeekdays, mock_logger.NewMockLogger(ctrl))

		if _, err := s.IsOpen(ctx, merchant, weekdayDate(time.Monday)); err == nil {
			t.Fatal("expected error, got nil")
		}
	})
}
