package integration_test

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"festacconnect_backend/internal/models"
	"festacconnect_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListingLifecycle(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	token, _ := helpers.RegisterAndLogin(t, ts, "seller")

	createBody := map[string]interface{}{
		"title":       "Solid wood dining table",
		"description": "Seats six, barely used",
		"category":    "furniture",
		"price":       85000,
		"price_type":  "negotiable",
		"location":    "Festac Phase 1",
	}
	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/listings", token, createBody)
	require.Equal(t, http.StatusCreated, res.StatusCode, bodyStr)
	assert.Contains(t, bodyStr, "₦85,000")

	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &created))

	// Public detail fetch bumps the view counter.
	res, bodyStr = ts.SendRequest(t, http.MethodGet, "/api/v1/listings/"+created.ID, "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	var listing models.Listing
	require.NoError(t, tx.First(&listing, "id = ?", created.ID).Error)
	assert.Equal(t, int64(1), listing.Views)

	res, bodyStr = ts.SendRequest(t, http.MethodPost, "/api/v1/listings/"+created.ID+"/sold", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	require.NoError(t, tx.First(&listing, "id = ?", created.ID).Error)
	assert.Equal(t, models.ListingStatusSold, listing.Status)
}

func TestListingBrowse_FiltersInactive(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	_, userID := helpers.RegisterAndLogin(t, ts, "browse")

	active := helpers.CreateTestListing(t, tx, userID, "Active phone", 120000)
	sold := helpers.CreateTestListing(t, tx, userID, "Sold phone", 90000)
	require.NoError(t, tx.Model(&sold).Update("status", models.ListingStatusSold).Error)

	res, bodyStr := ts.SendRequest(t, http.MethodGet, "/api/v1/listings?category=electronics", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)
	assert.Contains(t, bodyStr, active.Title)
	assert.NotContains(t, bodyStr, sold.Title)
}

func TestListingUpdate_NotOwner(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	_, ownerID := helpers.RegisterAndLogin(t, ts, "owner")
	otherToken, _ := helpers.RegisterAndLogin(t, ts, "other")

	listing := helpers.CreateTestListing(t, tx, ownerID, "Bike", 45000)

	updateBody := map[string]interface{}{"title": "Stolen bike"}
	res, bodyStr := ts.SendRequest(t, http.MethodPut, "/api/v1/listings/"+listing.ID, otherToken, updateBody)
	assert.Equal(t, http.StatusForbidden, res.StatusCode, bodyStr)
}

func TestListingDelete_AdminOverride(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	_, ownerID := helpers.RegisterAndLogin(t, ts, "victim")
	_, adminID := helpers.RegisterAndLogin(t, ts, "admin")
	adminToken := helpers.GrantRoleAndLogin(t, ts, tx, adminID, models.AppRoleAdmin)

	listing := helpers.CreateTestListing(t, tx, ownerID, "Spam listing", 1)

	res, bodyStr := ts.SendRequest(t, http.MethodDelete, "/api/v1/listings/"+listing.ID, adminToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	var count int64
	tx.Model(&models.Listing{}).Where("id = ?", listing.ID).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestListingBrowse_ExpiredFeaturedDoesNotOutrank(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	_, userID := helpers.RegisterAndLogin(t, ts, "ranking")

	now := time.Now()
	past := now.Add(-time.Hour)
	future := now.Add(24 * time.Hour)

	// Oldest row, genuinely featured.
	current := models.Listing{
		BaseModel:     models.BaseModel{CreatedAt: now.Add(-72 * time.Hour)},
		UserID:        userID,
		Title:         "Current boost sofa",
		Category:      "ranking-check",
		Status:        models.ListingStatusActive,
		IsFeatured:    true,
		FeaturedUntil: &future,
	}
	// Newest row, featured flag still set but the window has passed.
	expired := models.Listing{
		BaseModel:     models.BaseModel{CreatedAt: now},
		UserID:        userID,
		Title:         "Expired boost sofa",
		Category:      "ranking-check",
		Status:        models.ListingStatusActive,
		IsFeatured:    true,
		FeaturedUntil: &past,
	}
	plain := models.Listing{
		BaseModel: models.BaseModel{CreatedAt: now.Add(-48 * time.Hour)},
		UserID:    userID,
		Title:     "Plain sofa",
		Category:  "ranking-check",
		Status:    models.ListingStatusActive,
	}
	for _, l := range []*models.Listing{&current, &expired, &plain} {
		require.NoError(t, tx.Create(l).Error)
	}

	res, bodyStr := ts.SendRequest(t, http.MethodGet, "/api/v1/listings?category=ranking-check", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	// The live promotion leads despite being the oldest row; the expired
	// one falls back to plain recency ordering.
	idxCurrent := strings.Index(bodyStr, current.Title)
	idxExpired := strings.Index(bodyStr, expired.Title)
	idxPlain := strings.Index(bodyStr, plain.Title)
	require.NotEqual(t, -1, idxCurrent, bodyStr)
	require.NotEqual(t, -1, idxExpired, bodyStr)
	require.NotEqual(t, -1, idxPlain, bodyStr)
	assert.Less(t, idxCurrent, idxExpired)
	assert.Less(t, idxCurrent, idxPlain)
	assert.Less(t, idxExpired, idxPlain)

	// The detail read reports the effective state, not the stale flag.
	res, bodyStr = ts.SendRequest(t, http.MethodGet, "/api/v1/listings/"+expired.ID, "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)
	assert.Contains(t, bodyStr, `"is_featured":false`)
}
