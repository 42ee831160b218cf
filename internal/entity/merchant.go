package entity

import (
	"time"

	"github.com/google/uuid"
)

type Merchant struct {
	ID        uuid.UUID `json:"id"         validate:"required,uuid_strict"`
	Slug      string    `json:"slug"       validate:"required,max=100"`
	Name      string    `json:"name"       validate:"required,max=255"`
	Phone     string    `json:"phone"      validate:"max=20"`
	Timezone  string    `json:"timezone"   validate:"max=64"`
	CreatedAt time.Time `json:"created_at"`
}

// Location resolves the merchant's IANA timezone, falling back to UTC
// when the field is empty or unparseable.
func (m *Merchant) Location() *time.Location {
	if m.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(m.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
