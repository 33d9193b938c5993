package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoostPlans(t *testing.T) {
	weekly, ok := boostPlans["weekly"]
	require.True(t, ok)
	assert.Equal(t, float64(2000), weekly.Amount)
	assert.Equal(t, 7, weekly.Days)

	monthly, ok := boostPlans["monthly"]
	require.True(t, ok)
	assert.Equal(t, float64(5000), monthly.Amount)
	assert.Equal(t, 30, monthly.Days)

	premium, ok := boostPlans["premium"]
	require.True(t, ok)
	assert.Equal(t, float64(10000), premium.Amount)
	assert.Equal(t, 90, premium.Days)
}

func TestPaymentReference(t *testing.T) {
	ref := paymentReference()
	assert.True(t, strings.HasPrefix(ref, "PAY-"))
	// ULIDs are 26 chars.
	assert.Len(t, ref, 4+26)

	// References must differ between calls.
	assert.NotEqual(t, ref, paymentReference())
}
