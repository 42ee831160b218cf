package entity

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/google/uuid"
)

const _cepDigits = 8

// DeliveryRange is an inclusive postal-code interval the merchant ships to.
// Both bounds are stored as zero-padded 8-digit strings, so the inclusive
// membership test is a plain lexicographic comparison.
type DeliveryRange struct {
	ID         uuid.UUID `json:"id"          validate:"required,uuid_strict"`
	MerchantID uuid.UUID `json:"merchant_id" validate:"required,uuid_strict"`
	CEPStart   string    `json:"cep_start"   validate:"required,len=8,numeric"`
	CEPEnd     string    `json:"cep_end"     validate:"required,len=8,numeric"`
}

func (r *DeliveryRange) Contains(cep string) bool {
	return r.CEPStart <= cep && cep <= r.CEPEnd
}

// NormalizeCEP strips formatting from a raw postal code ("01310-100",
// "01310100") and returns the canonical 8-digit form.
func NormalizeCEP(raw string) (string, error) {
	var sb strings.Builder
	for _, r := range raw {
		if unicode.IsDigit(r) {
			sb.WriteRune(r)
		}
	}
	cep := sb.String()
	if len(cep) != _cepDigits {
		return "", fmt.Errorf("malformed postal code %q: %w", raw, ErrInvalidData)
	}
	return cep, nil
}
