package entity

import "github.com/google/uuid"

// OrderItem is an immutable snapshot of one purchased line. Name and price
// fields are copied from the catalog at order time and never follow later
// catalog edits.
type OrderItem struct {
	ID             uuid.UUID  `json:"id"              validate:"required,uuid_strict"`
	OrderID        uuid.UUID  `json:"order_id"        validate:"required,uuid_strict"`
	ProductID      uuid.UUID  `json:"product_id"      validate:"required,uuid_strict"`
	VariantID      *uuid.UUID `json:"variant_id,omitempty"`
	ProductName    string     `json:"product_name"    validate:"required,max=255"`
	VariantLabel   string     `json:"variant_label,omitempty" validate:"max=100"`
	Quantity       int        `json:"quantity"        validate:"required,gte=1"`
	UnitPriceCents int64      `json:"unit_price_cents" validate:"gte=0"`
	DiscountCents  int64      `json:"discount_cents"  validate:"gte=0"`
}

func (i *OrderItem) LineTotalCents() int64 {
	return (i.UnitPriceCents - i.DiscountCents) * int64(i.Quantity)
}
