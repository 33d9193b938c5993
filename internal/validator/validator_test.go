package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type slugFixture struct {
	Slug string `json:"category_slug" validate:"required,slug"`
}

func TestSlugRule(t *testing.T) {
	v := New()

	valid := []string{"food-restaurants", "other", "a1-b2-c3"}
	for _, s := range valid {
		assert.NoError(t, v.Validate(&slugFixture{Slug: s}), s)
	}

	invalid := []string{"Food", "food_restaurants", "-leading", "trailing-", "two--dashes", "with space"}
	for _, s := range invalid {
		assert.Error(t, v.Validate(&slugFixture{Slug: s}), s)
	}
}

func TestValidationError_UsesJSONFieldNames(t *testing.T) {
	v := New()

	err := v.Validate(&slugFixture{Slug: "NOT A SLUG"})
	require.Error(t, err)

	vErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, vErr.Errors, "category_slug")
}
