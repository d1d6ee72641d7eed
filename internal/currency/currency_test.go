package currency_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/hoangkien2400-crypto/thongkesosach/internal/currency"
)

func TestFormatVND(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		want   string
	}{
		{"zero", "0", "0 ₫"},
		{"under a thousand", "999", "999 ₫"},
		{"exactly a thousand", "1000", "1.000 ₫"},
		{"millions", "15000000", "15.000.000 ₫"},
		{"odd grouping", "1234567", "1.234.567 ₫"},
		{"negative", "-8000000", "-8.000.000 ₫"},
		{"fraction rounds", "1999.6", "2.000 ₫"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount, err := decimal.NewFromString(tt.amount)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, currency.FormatVND(amount))
		})
	}
}
