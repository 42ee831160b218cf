package entity_test

import (
	"testing"
	"time"

	"github.com/leohenricardoso/encomenda-zap-sub000/internal/entity"

	"github.com/stretchr/testify/require"
)

func slot(day time.Weekday, start, end string) *entity.PickupSlot {
	return &entity.PickupSlot{DayOfWeek: day, StartTime: start, EndTime: end, IsActive: true}
}

func TestPickupSlot_Overlaps(t *testing.T) {
	testCases := []struct {
		desc string
		a    *entity.PickupSlot
		b    *entity.PickupSlot
		want bool
	}{
		{"Disjoint", slot(time.Monday, "09:00", "12:00"), slot(time.Monday, "14:00", "18:00"), false},
		{"Touching", slot(time.Monday, "09:00", "12:00"), slot(time.Monday, "12:00", "15:00"), false},
		{"PartialOverlap", slot(time.Monday, "09:00", "12:00"), slot(time.Monday, "11:00", "14:00"), true},
		{"Contained", slot(time.Monday, "09:00", "18:00"), slot(time.Monday, "10:00", "11:00"), true},
		{"Identical", slot(time.Monday, "09:00", "12:00"), slot(time.Monday, "09:00", "12:00"), true},
		{"DifferentWeekday", slot(time.Monday, "09:00", "12:00"), slot(time.Tuesday, "09:00", "12:00"), false},
	}

	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			require.Equal(t, tC.want, tC.a.Overlaps(tC.b))
			require.Equal(t, tC.want, tC.b.Overlaps(tC.a))
		})
	}
}

func TestPickupSlot_TimeLabel(t *testing.T) {
	require.Equal(t, "09:00-12:00", slot(time.Monday, "09:00", "12:00").TimeLabel())
}
