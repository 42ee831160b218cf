package entity

// OrderView is the assembled read model served to the merchant dashboard:
// the order with its item snapshots plus the customer who placed it.
type OrderView struct {
	Order    *Order    `json:"order"`
	Customer *Customer `json:"customer"`
}
