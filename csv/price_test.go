package csv_test

import (
	"testing"

	"github.com/maxsviluppo/prezzario"
	"github.com/maxsviluppo/prezzario/csv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePrice(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want float64
	}{
		{"12,50", 12.5},
		{"1234.56", 1234.56},
		{"1.234,56 €", 1234.56},
		{"1,234.56", 1234.56},
		{"€ 99", 99},
		{"1.234.567,89", 1234567.89},
		{"1,234,567.89", 1234567.89},
		{"0", 0},
		{"  42  ", 42},
		{"15,00 EUR", 15},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			t.Parallel()
			got, err := csv.ParsePrice(tt.raw)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestParsePrice_Rejects(t *testing.T) {
	t.Parallel()

	tests := []string{"", "   ", "abc", "12,50,60", "€", "-5", "-12,50"}

	for _, raw := range tests {
		t.Run(raw, func(t *testing.T) {
			t.Parallel()
			_, err := csv.ParsePrice(raw)
			require.Error(t, err)
			assert.Equal(t, prezzario.EINVALID, prezzario.ErrorCode(err))
		})
	}
}
