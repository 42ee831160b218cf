package entity

import (
	"fmt"
	"strings"
	"unicode"
)

const (
	_minLocalPhoneDigits = 10
	_maxLocalPhoneDigits = 11
	_minFullPhoneDigits  = 12
	_maxFullPhoneDigits  = 13
)

// NormalizePhone reduces a raw phone string to canonical digit form.
// Local forms (DDD + number, 10-11 digits) get the country code prepended;
// full forms already carrying the country code pass through unchanged.
func NormalizePhone(raw, countryCode string) (string, error) {
	var sb strings.Builder
	for _, r := range raw {
		if unicode.IsDigit(r) {
			sb.WriteRune(r)
		}
	}
	digits := sb.String()

	switch n := len(digits); {
	case n >= _minLocalPhoneDigits && n <= _maxLocalPhoneDigits:
		return countryCode + digits, nil
	case n >= _minFullPhoneDigits && n <= _maxFullPhoneDigits && strings.HasPrefix(digits, countryCode):
		return digits, nil
	default:
		return "", fmt.Errorf("malformed phone %q: %w", raw, ErrInvalidData)
	}
}
