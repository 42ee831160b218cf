package entity

import (
	"time"

	"github.com/google/uuid"
)

type Customer struct {
	ID         uuid.UUID `json:"id"          validate:"required,uuid_strict"`
	MerchantID uuid.UUID `json:"merchant_id" validate:"required,uuid_strict"`
	Name       string    `json:"name"        validate:"required,max=255"`
	Phone      string    `json:"phone"       validate:"required,max=20,numeric"`
	CreatedAt  time.Time `json:"created_at"`
}
