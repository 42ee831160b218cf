package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type FulfillmentType string

const (
	FulfillmentPickup   FulfillmentType = "PICKUP"
	FulfillmentDelivery FulfillmentType = "DELIVERY"
)

type Order struct {
	ID              uuid.UUID       `json:"id"               validate:"required,uuid_strict"`
	MerchantID      uuid.UUID       `json:"merchant_id"      validate:"required,uuid_strict"`
	CustomerID      uuid.UUID       `json:"customer_id"      validate:"required,uuid_strict"`
	Number          int64           `json:"number"           validate:"gte=0"`
	Status          OrderStatus     `json:"status"           validate:"required"`
	FulfillmentType FulfillmentType `json:"fulfillment_type" validate:"required,oneof=PICKUP DELIVERY"`
	DeliveryDate    time.Time       `json:"delivery_date"    validate:"required"`

	PickupSlotID    *uuid.UUID `json:"pickup_slot_id,omitempty"`
	PickupTimeLabel string     `json:"pickup_time_label,omitempty" validate:"max=20"`

	PostalCode   string `json:"postal_code,omitempty"  validate:"omitempty,len=8,numeric"`
	Street       string `json:"street,omitempty"       validate:"max=255"`
	StreetNumber string `json:"street_number,omitempty" validate:"max=20"`
	Neighborhood string `json:"neighborhood,omitempty" validate:"max=100"`
	City         string `json:"city,omitempty"         validate:"max=100"`
	Complement   string `json:"complement,omitempty"   validate:"max=255"`

	Notes      string       `json:"notes,omitempty" validate:"max=1000"`
	TotalCents int64        `json:"total_cents"     validate:"gte=0"`
	Items      []*OrderItem `json:"items,omitempty" validate:"dive"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
}

// Validate enforces the fulfillment invariant: exactly one branch's fields
// are populated and they match FulfillmentType.
func (o *Order) Validate() error {
	switch o.FulfillmentType {
	case FulfillmentPickup:
		if o.PickupSlotID == nil || o.PickupTimeLabel == "" {
			return fmt.Errorf("pickup order missing slot fields: %w", ErrInvalidData)
		}
		if o.PostalCode != "" || o.Street != "" || o.City != "" {
			return fmt.Errorf("pickup order carries delivery address fields: %w", ErrInvalidData)
		}
	case FulfillmentDelivery:
		if o.PickupSlotID != nil || o.PickupTimeLabel != "" {
			return fmt.Errorf("delivery order carries pickup fields: %w", ErrInvalidData)
		}
		if o.PostalCode == "" || o.Street == "" || o.StreetNumber == "" ||
			o.Neighborhood == "" || o.City == "" {
			return fmt.Errorf("delivery order missing address fields: %w", ErrInvalidData)
		}
	default:
		return fmt.Errorf("unknown fulfillment type %q: %w", o.FulfillmentType, ErrInvalidData)
	}

	if !o.Status.Valid() {
		return fmt.Errorf("unknown order status %q: %w", o.Status, ErrInvalidData)
	}

	return nil
}
