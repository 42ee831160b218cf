package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Product struct {
	ID          uuid.UUID         `json:"id"           validate:"required,uuid_strict"`
	MerchantID  uuid.UUID         `json:"merchant_id"  validate:"required,uuid_strict"`
	Name        string            `json:"name"         validate:"required,max=255"`
	Description string            `json:"description"  validate:"max=2000"`
	PriceCents  *int64            `json:"price_cents"  validate:"omitempty,gte=0"`
	MinQuantity int               `json:"min_quantity" validate:"gte=1"`
	IsActive    bool              `json:"is_active"`
	Variants    []*ProductVariant `json:"variants"     validate:"dive"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

type ProductVariant struct {
	ID         uuid.UUID `json:"id"          validate:"required,uuid_strict"`
	ProductID  uuid.UUID `json:"product_id"  validate:"required,uuid_strict"`
	Label      string    `json:"label"       validate:"required,max=100"`
	PriceCents int64     `json:"price_cents" validate:"gte=0"`
	IsActive   bool      `json:"is_active"`
}

// ResolveUnitPrice returns the frozen unit price and the variant label for
// a cart line. With a variant id it must name an active variant of this
// product; without one the product must carry a base price.
func (p *Product) ResolveUnitPrice(variantID *uuid.UUID) (int64, string, error) {
	if variantID == nil {
		if p.PriceCents == nil {
			return 0, "", fmt.Errorf(
				"product %q has no base price, a variant must be chosen: %w",
				p.Name, ErrUnprocessableEntity,
			)
		}
		return *p.PriceCents, "", nil
	}

	for _, v := range p.Variants {
		if v.ID != *variantID {
			continue
		}
		if !v.IsActive {
			return 0, "", fmt.Errorf(
				"variant %q of product %q is not available: %w",
				v.Label, p.Name, ErrUnprocessableEntity,
			)
		}
		return v.PriceCents, v.Label, nil
	}

	return 0, "", fmt.Errorf(
		"variant does not belong to product %q: %w",
		p.Name, ErrUnprocessableEntity,
	)
}
