// nolint: revive,staticcheck
// swagger:meta
package httpt

import (
	"github.com/leohenricardoso/encomenda-zap-sub000/internal/entity"
	"github.com/leohenricardoso/encomenda-zap-sub000/internal/service"

	"github.com/google/uuid"
)

type placeOrderItemRequest struct {
	ProductID uuid.UUID  `json:"product_id" binding:"required"`
	VariantID *uuid.UUID `json:"variant_id,omitempty"`
	Quantity  int        `json:"quantity"   binding:"required,gte=1"`
}

type placeOrderAddressRequest struct {
	PostalCode   string `json:"postal_code"  binding:"required"`
	Street       string `json:"street"       binding:"required"`
	StreetNumber string `json:"street_number" binding:"required"`
	Neighborhood string `json:"neighborhood" binding:"required"`
	City         string `json:"city"         binding:"required"`
	Complement   string `json:"complement,omitempty"`
}

// swagger:model PlaceOrderRequest
type placeOrderRequest struct {
	CustomerName    string                    `json:"customer_name"    binding:"required,max=255"`
	CustomerPhone   string                    `json:"customer_phone"   binding:"required,max=20"`
	FulfillmentType string                    `json:"fulfillment_type" binding:"required,oneof=PICKUP DELIVERY"`
	DeliveryDate    string                    `json:"delivery_date"    binding:"required"`
	PickupSlotID    *uuid.UUID                `json:"pickup_slot_id,omitempty"`
	Address         *placeOrderAddressRequest `json:"address,omitempty"`
	Notes           string                    `json:"notes,omitempty" binding:"max=1000"`
	Items           []placeOrderItemRequest   `json:"items"           binding:"required,min=1,dive"`
}

// swagger:model ChangeStatusRequest
type changeStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=PENDING APPROVED REJECTED"`
}

// swagger:model ErrorResponse
type ErrorResponse struct {
	Error string `json:"error"`
}

// swagger:model Order
type Order entity.Order

// swagger:model OrderView
type OrderView entity.OrderView

// swagger:model AreaResult
type AreaResult service.AreaResult
