package service

import (
	"context"
	"fmt"
	"time"

	"github.com/leohenricardoso/encomenda-zap-sub000/internal/entity"
	"github.com/leohenricardoso/encomenda-zap-sub000/pkg/logger"

	"github.com/google/uuid"
)

type SlotService struct {
	slotRepo PickupSlotRepository
	logger   logger.Logger
}

func NewSlotService(slotRepo PickupSlotRepository, logger logger.Logger) *SlotService {
	return &SlotService{
		slotRepo: slotRepo,
		logger:   logger,
	}
}

// ResolveActiveSlot checks that the chosen slot is an active slot of this
// merchant on the given weekday. The client only ever names a slot id; the
// window itself always comes from storage.
func (ss *SlotService) ResolveActiveSlot(
	ctx context.Context,
	merchantID uuid.UUID,
	day time.Weekday,
	slotID uuid.UUID,
) (*entity.PickupSlot, error) {
	const op = "service.slot.ResolveActiveSlot"

	slots, err := ss.slotRepo.GetActiveByDay(ctx, merchantID, day)
	if err != nil {
		return nil, fmt.Errorf("%s: load slots: %w", op, err)
	}

	for _, slot := range slots {
		if slot.ID == slotID {
			return slot, nil
		}
	}

	return nil, fmt.Errorf(
		"%s: pickup slot is not available on %s: %w",
		op, day, entity.ErrUnprocessableEntity)
}

// ListForDay returns the bookable windows for a weekday, for storefront
// slot pickers.
func (ss *SlotService) ListForDay(
	ctx context.Context,
	merchantID uuid.UUID,
	day time.Weekday,
) ([]*entity.PickupSlot, error) {
	const op = "service.slot.ListForDay"

	slots, err := ss.slotRepo.GetActiveByDay(ctx, merchantID, day)
	if err != nil {
		return nil, fmt.Errorf("%s: load slots: %w", op, err)
	}

	return slots, nil
}
