package entity

type OrderStatus string

const (
	StatusPending  OrderStatus = "PENDING"
	StatusApproved OrderStatus = "APPROVED"
	StatusRejected OrderStatus = "REJECTED"
)

// statusTransitions is the whole lifecycle graph. REJECTED is terminal:
// it has no outgoing edges, not even to itself.
var statusTransitions = map[OrderStatus]map[OrderStatus]struct{}{
	StatusPending: {
		StatusApproved: {},
		StatusRejected: {},
	},
	StatusApproved: {
		StatusRejected: {},
	},
	StatusRejected: {},
}

func (s OrderStatus) Valid() bool {
	_, ok := statusTransitions[s]
	return ok
}

// CanTransition reports whether the lifecycle graph allows moving an order
// from current to requested. Pure function, consulted before any write.
func CanTransition(current, requested OrderStatus) bool {
	allowed, ok := statusTransitions[current]
	if !ok {
		return false
	}
	_, ok = allowed[requested]
	return ok
}
