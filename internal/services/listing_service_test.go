package services

import (
	"testing"

	"festacconnect_backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestPriceLabel(t *testing.T) {
	cases := []struct {
		price     float64
		priceType models.PriceType
		want      string
	}{
		{85000, models.PriceTypeFixed, "₦85,000"},
		{85000, models.PriceTypeNegotiable, "₦85,000"},
		{150000, models.PriceTypePerMonth, "₦150,000/month"},
		{800000, models.PriceTypePerYear, "₦800,000/year"},
		{5000, models.PriceTypeStarting, "From ₦5,000"},
		{950, models.PriceTypeFixed, "₦950"},
		{0, models.PriceTypeFixed, "₦0"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, priceLabel(tc.price, tc.priceType))
	}
}

func TestFormatThousands(t *testing.T) {
	assert.Equal(t, "0", formatThousands(0))
	assert.Equal(t, "999", formatThousands(999))
	assert.Equal(t, "1,000", formatThousands(1000))
	assert.Equal(t, "1,234,567", formatThousands(1234567))
	assert.Equal(t, "12,500.5", formatThousands(12500.5))
	assert.Equal(t, "-45,000", formatThousands(-45000))
}

func TestNormalizePage(t *testing.T) {
	page, size := normalizePage(0, 0)
	assert.Equal(t, 1, page)
	assert.Equal(t, 20, size)

	page, size = normalizePage(3, 500)
	assert.Equal(t, 3, page)
	assert.Equal(t, 100, size)
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, totalPages(0, 20))
	assert.Equal(t, 1, totalPages(1, 20))
	assert.Equal(t, 1, totalPages(20, 20))
	assert.Equal(t, 2, totalPages(21, 20))
}
