package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestListingFeaturedNow(t *testing.T) {
	now := time.Now()
	future := now.Add(time.Hour)
	past := now.Add(-time.Hour)

	listing := &Listing{}
	assert.False(t, listing.FeaturedNow(now), "no flag, no window")

	listing = &Listing{IsFeatured: true}
	assert.False(t, listing.FeaturedNow(now), "flag without expiry never counts")

	listing = &Listing{IsFeatured: true, FeaturedUntil: &past}
	assert.False(t, listing.FeaturedNow(now), "expired window is not featured even before the sweep")

	listing = &Listing{IsFeatured: true, FeaturedUntil: &future}
	assert.True(t, listing.FeaturedNow(now))
}

func TestBusinessFeaturedNow(t *testing.T) {
	now := time.Now()
	future := now.Add(time.Hour)
	past := now.Add(-time.Hour)

	business := &Business{IsFeatured: true, FeaturedUntil: &past}
	assert.False(t, business.FeaturedNow(now))

	business = &Business{IsFeatured: true, FeaturedUntil: &future}
	assert.True(t, business.FeaturedNow(now))
}
