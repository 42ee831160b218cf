package entity

import (
	"time"

	"github.com/google/uuid"
)

// ScheduleDay overrides the default weekday rule for one calendar date.
type ScheduleDay struct {
	ID         uuid.UUID `json:"id"          validate:"required,uuid_strict"`
	MerchantID uuid.UUID `json:"merchant_id" validate:"required,uuid_strict"`
	Date       time.Time `json:"date"        validate:"required"`
	IsOpen     bool      `json:"is_open"`
}

// DateOnly truncates a timestamp to its calendar day in the given location.
func DateOnly(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}
