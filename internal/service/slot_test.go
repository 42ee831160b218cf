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

func TestSlotService_ResolveActiveSlot(t *testing.T) {
	ctx := context.Background()
	merchantID := uuid.New()

	morning := generateFakeSlot(merchantID, time.Monday)
	afternoon := generateFakeSlot(merchantID, time.Monday)
	afternoon.StartTime = "14:00"
	afternoon.EndTime = "18:00"

	t.Run("MatchingSlot", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		slotRepo := mock_repository.NewMockPickupSlotRepository(ctrl)
		slotRepo.EXPECT().GetActiveByDay(ctx, merchantID, time.Monday).
			Return([]*entity.PickupSlot{morning, afternoon}, nil).Times(1)

		s := service.NewSlotService(slotRepo, mock_logger.NewMockLogger(ctrl))

		slot, err := s.ResolveActiveSlot(ctx, merchantID, time.Monday, afternoon.ID)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if slot.ID != afternoon.ID {
			t.Errorf("expected slot %s, got %s", afternoon.ID, slot.ID)
		}
		if slot.TimeLabel() != "14:00-18:00" {
			t.Errorf("unexpected time label %q", slot.TimeLabel())
		}
	})

	t.Run("SlotNotOnThatDay", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		// The chosen slot exists but belongs to Monday; the order asks
		// for Wednesday, where only other windows are active.
		slotRepo := mock_repository.NewMockPickupSlotRepository(ctrl)
		slotRepo.EXPECT().GetActiveByDay(ctx, merchantID, time.Wednesday).
			Return([]*entity.PickupSlot{generateFakeSlot(merchantID, time.Wednesday)}, nil).
			Times(1)

		s := service.NewSlotService(slotRepo, mock_logger.NewMockLogger(ctrl))

		_, err := s.ResolveActiveSlot(ctx, merchantID, time.Wednesday, morning.ID)
		if !errors.Is(err, entity.ErrUnprocessableEntity) {
			t.Fatalf("expected ErrUnprocessableEntity, got %v", err)
		}
	})

	t.Run("NoActiveSlots", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		slotRepo := mock_repository.NewMockPickupSlotRepository(ctrl)
		slotRepo.EXPECT().GetActiveByDay(ctx, merchantID, time.Sunday).
			Return([]*entity.PickupSlot{}, nil).Times(1)

		s := service.NewSlotService(slotRepo, mock_logger.NewMockLogger(ctrl))

		_, err := s.ResolveActiveSlot(ctx, merchantID, time.Sunday, morning.ID)
		if !errors.Is(err, entity.ErrUnprocessableEntity) {
			t.Fatalf("expected ErrUnprocessableEntity, got %v", err)
		}
	})

	t.Run("RepositoryError", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		slotRepo := mock_repository.NewMockPickupSlotRepository(ctrl)
		slotRepo.EXPECT().GetActiveByDay(ctx, merchantID, time.Monday).
			Return(nil, errors.New("connection lost")).Times(1)

		s := service.NewSlotService(slotRepo, mock_logger.NewMockLogger(ctrl))

		if _, err := s.ResolveActiveSlot(ctx, merchantID, time.Monday, morning.ID); err == nil {
			t.Fatal("expected error, got nil")
		}
	})
}
