package entity_test

import (
	"testing"

	"github.com/leohenricardoso/encomenda-zap-sub000/internal/entity"

	"github.com/stretchr/testify/require"
)

func TestCanTransition(t *testing.T) {
	testCases := []struct {
		desc      string
		current   entity.OrderStatus
		requested entity.OrderStatus
		allowed   bool
	}{
		{"PendingToApproved", entity.StatusPending, entity.StatusApproved, true},
		{"PendingToRejected", entity.StatusPending, entity.StatusRejected, true},
		{"PendingToPending", entity.StatusPending, entity.StatusPending, false},
		{"ApprovedToRejected", entity.StatusApproved, entity.StatusRejected, true},
		{"ApprovedToPending", entity.StatusApproved, entity.StatusPending, false},
		{"ApprovedToApproved", entity.StatusApproved, entity.StatusApproved, false},
		{"RejectedToApproved", entity.StatusRejected, entity.StatusApproved, false},
		{"RejectedToPending", entity.StatusRejected, entity.StatusPending, false},
		{"RejectedToRejected", entity.StatusRejected, entity.StatusRejected, false},
		{"UnknownCurrent", entity.OrderStatus("SHIPPED"), entity.StatusApproved, false},
		{"UnknownRequested", entity.StatusPending, entity.OrderStatus("SHIPPED"), false},
	}

	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			require.Equal(t, tC.allowed, entity.CanTransition(tC.current, tC.requested))
		})
	}
}

func TestOrderStatus_Valid(t *testing.T) {
	require.True(t, entity.StatusPending.Valid())
	require.True(t, entity.StatusApproved.Valid())
	require.True(t, entity.StatusRejected.Valid())
	require.False(t, entity.OrderStatus("CANCELLED").Valid())
	require.False(t, entity.OrderStatus("").Valid())
}
