package integration_test

import (
	"net/http"
	"testing"
	"time"

	"festacconnect_backend/internal/models"
	"festacconnect_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoostPlans_Public(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	res, bodyStr := ts.SendRequest(t, http.MethodGet, "/api/v1/boost/plans", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)
	assert.Contains(t, bodyStr, "weekly")
	assert.Contains(t, bodyStr, "monthly")
	assert.Contains(t, bodyStr, "premium")
}

func TestBoostListing(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	token, userID := helpers.RegisterAndLogin(t, ts, "booster")
	listing := helpers.CreateTestListing(t, tx, userID, "Boosted fridge", 200000)

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/listings/"+listing.ID+"/boost", token,
		map[string]interface{}{"plan": "weekly"})
	require.Equal(t, http.StatusCreated, res.StatusCode, bodyStr)
	assert.Contains(t, bodyStr, "PAY-")

	var stored models.Listing
	require.NoError(t, tx.First(&stored, "id = ?", listing.ID).Error)
	assert.True(t, stored.IsFeatured)
	require.NotNil(t, stored.FeaturedUntil)
	assert.True(t, stored.FeaturedUntil.After(time.Now().Add(6*24*time.Hour)))

	var payment models.Payment
	require.NoError(t, tx.First(&payment, "listing_id = ?", listing.ID).Error)
	assert.Equal(t, models.PaymentStatusCompleted, payment.Status)
	assert.Equal(t, "NGN", payment.Currency)
	assert.InDelta(t, 2000, payment.Amount, 0.001)

	res, bodyStr = ts.SendRequest(t, http.MethodGet, "/api/v1/payments", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)
	assert.Contains(t, bodyStr, payment.Reference)
}

func TestBoostListing_NotOwner(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	_, ownerID := helpers.RegisterAndLogin(t, ts, "boostowner")
	otherToken, _ := helpers.RegisterAndLogin(t, ts, "boostother")

	listing := helpers.CreateTestListing(t, tx, ownerID, "Not yours", 1000)

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/listings/"+listing.ID+"/boost", otherToken,
		map[string]interface{}{"plan": "weekly"})
	assert.Equal(t, http.StatusForbidden, res.StatusCode, bodyStr)
}

func TestBoostBusiness(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	token, userID := helpers.RegisterAndLogin(t, ts, "bizbooster")
	business := helpers.CreateTestBusiness(t, tx, userID, "Boosted Salon")

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/businesses/"+business.ID+"/boost", token,
		map[string]interface{}{"plan": "monthly"})
	require.Equal(t, http.StatusCreated, res.StatusCode, bodyStr)

	var stored models.Business
	require.NoError(t, tx.First(&stored, "id = ?", business.ID).Error)
	assert.True(t, stored.IsFeatured)
	require.NotNil(t, stored.FeaturedUntil)
	assert.True(t, stored.FeaturedUntil.After(time.Now().Add(29*24*time.Hour)))
}

func TestBoost_UnknownPlan(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	token, userID := helpers.RegisterAndLogin(t, ts, "badplan")
	listing := helpers.CreateTestListing(t, tx, userID, "Thing", 100)

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/listings/"+listing.ID+"/boost", token,
		map[string]interface{}{"plan": "lifetime"})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, bodyStr)
}
