package entity_test

import (
	"testing"

	"github.com/leohenricardoso/encomenda-zap-sub000/internal/entity"

	"github.com/stretchr/testify/require"
)

func TestDeliveryRange_Contains(t *testing.T) {
	r := &entity.DeliveryRange{CEPStart: "01000000", CEPEnd: "05999999"}

	testCases := []struct {
		desc string
		cep  string
		want bool
	}{
		{"InsideRange", "03000000", true},
		{"LowerBoundInclusive", "01000000", true},
		{"UpperBoundInclusive", "05999999", true},
		{"BelowRange", "00999999", false},
		{"AboveRange", "06000000", false},
		{"FarAbove", "99999999", false},
	}

	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			require.Equal(t, tC.want, r.Contains(tC.cep))
		})
	}
}

func TestNormalizeCEP(t *testing.T) {
	testCases := []struct {
		desc    string
		raw     string
		want    string
		wantErr bool
	}{
		{"Plain", "01310100", "01310100", false},
		{"Dashed", "01310-100", "01310100", false},
		{"Spaced", " 01310 100 ", "01310100", false},
		{"TooShort", "0131010", "", true},
		{"TooLong", "013101000", "", true},
		{"Empty", "", "", true},
	}

	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			got, err := entity.NormalizeCEP(tC.raw)
			if tC.wantErr {
				require.ErrorIs(t, err, entity.ErrInvalidData)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tC.want, got)
		})
	}
}
