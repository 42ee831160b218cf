package entity

import (
	"time"

	"github.com/google/uuid"
)

// PickupSlot is a recurring weekly window during which pickup orders may be
// collected. Times are "HH:MM" strings, which compare correctly as text.
type PickupSlot struct {
	ID         uuid.UUID    `json:"id"          validate:"required,uuid_strict"`
	MerchantID uuid.UUID    `json:"merchant_id" validate:"required,uuid_strict"`
	DayOfWeek  time.Weekday `json:"day_of_week" validate:"gte=0,lte=6"`
	StartTime  string       `json:"start_time"  validate:"required,len=5"`
	EndTime    string       `json:"end_time"    validate:"required,len=5"`
	IsActive   bool         `json:"is_active"`
}

// Overlaps reports whether two windows on the same weekday intersect.
// Slot administration rejects a new active slot that overlaps an existing
// one; order placement never needs this check.
func (s *PickupSlot) Overlaps(other *PickupSlot) bool {
	if s.DayOfWeek != other.DayOfWeek {
		return false
	}
	return s.StartTime < other.EndTime && s.EndTime > other.StartTime
}

func (s *PickupSlot) TimeLabel() string {
	return s.StartTime + "-" + s.EndTime
}
