package integration_test

import (
	"net/http"
	"testing"

	"festacconnect_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFavoriteListingFlow(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	_, sellerID := helpers.RegisterAndLogin(t, ts, "favseller")
	buyerToken, _ := helpers.RegisterAndLogin(t, ts, "favbuyer")

	listing := helpers.CreateTestListing(t, tx, sellerID, "Generator 2.5kVA", 150000)

	addBody := map[string]interface{}{"listing_id": listing.ID}
	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/favorites", buyerToken, addBody)
	require.Equal(t, http.StatusCreated, res.StatusCode, bodyStr)

	// Adding again is idempotent, not an error.
	res, bodyStr = ts.SendRequest(t, http.MethodPost, "/api/v1/favorites", buyerToken, addBody)
	require.Equal(t, http.StatusCreated, res.StatusCode, bodyStr)

	res, bodyStr = ts.SendRequest(t, http.MethodGet, "/api/v1/favorites", buyerToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)
	assert.Contains(t, bodyStr, listing.Title)
	assert.Contains(t, bodyStr, `"total":1`)

	res, bodyStr = ts.SendRequest(t, http.MethodDelete, "/api/v1/favorites/listings/"+listing.ID, buyerToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	res, bodyStr = ts.SendRequest(t, http.MethodGet, "/api/v1/favorites", buyerToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)
	assert.Contains(t, bodyStr, `"total":0`)
}

func TestFavorite_ExactlyOneTarget(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	token, userID := helpers.RegisterAndLogin(t, ts, "favboth")
	listing := helpers.CreateTestListing(t, tx, userID, "Chair", 5000)
	business := helpers.CreateTestBusiness(t, tx, userID, "Chairs R Us")

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/favorites", token,
		map[string]interface{}{"listing_id": listing.ID, "business_id": business.ID})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, bodyStr)

	res, bodyStr = ts.SendRequest(t, http.MethodPost, "/api/v1/favorites", token, map[string]interface{}{})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, bodyStr)
}

func TestFavoriteBusiness(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	_, ownerID := helpers.RegisterAndLogin(t, ts, "favbizowner")
	fanToken, _ := helpers.RegisterAndLogin(t, ts, "fan")

	business := helpers.CreateTestBusiness(t, tx, ownerID, "Festac Bakery")

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/favorites", fanToken,
		map[string]interface{}{"business_id": business.ID})
	require.Equal(t, http.StatusCreated, res.StatusCode, bodyStr)
	assert.Contains(t, bodyStr, business.Name)

	// The business detail carries the personalized flag for the fan only.
	res, bodyStr = ts.SendRequest(t, http.MethodGet, "/api/v1/businesses/"+business.ID, fanToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)
	assert.Contains(t, bodyStr, `"favorited":true`)

	res, bodyStr = ts.SendRequest(t, http.MethodGet, "/api/v1/businesses/"+business.ID, "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)
	assert.Contains(t, bodyStr, `"favorited":false`)
}

func TestListingDetail_FavoritedFlag(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	_, sellerID := helpers.RegisterAndLogin(t, ts, "flagseller")
	buyerToken, _ := helpers.RegisterAndLogin(t, ts, "flagbuyer")

	listing := helpers.CreateTestListing(t, tx, sellerID, "Ring light", 22000)

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/favorites", buyerToken,
		map[string]interface{}{"listing_id": listing.ID})
	require.Equal(t, http.StatusCreated, res.StatusCode, bodyStr)

	res, bodyStr = ts.SendRequest(t, http.MethodGet, "/api/v1/listings/"+listing.ID, buyerToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)
	assert.Contains(t, bodyStr, `"favorited":true`)

	res, bodyStr = ts.SendRequest(t, http.MethodGet, "/api/v1/listings/"+listing.ID, "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)
	assert.Contains(t, bodyStr, `"favorited":false`)
}

func TestFavoriteList_DropsDanglingRows(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	_, sellerID := helpers.RegisterAndLogin(t, ts, "danglingseller")
	buyerToken, _ := helpers.RegisterAndLogin(t, ts, "danglingbuyer")

	keeper := helpers.CreateTestListing(t, tx, sellerID, "Inverter battery", 250000)
	goner := helpers.CreateTestListing(t, tx, sellerID, "Phantom freezer", 90000)

	for _, id := range []string{keeper.ID, goner.ID} {
		res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/favorites", buyerToken,
			map[string]interface{}{"listing_id": id})
		require.Equal(t, http.StatusCreated, res.StatusCode, bodyStr)
	}

	// Remove the listing row directly, bypassing the delete transaction
	// that normally cleans favorites up, leaving a dangling bookmark.
	require.NoError(t, tx.Exec("DELETE FROM listings WHERE id = ?", goner.ID).Error)

	res, bodyStr := ts.SendRequest(t, http.MethodGet, "/api/v1/favorites", buyerToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)
	assert.Contains(t, bodyStr, keeper.Title)
	assert.NotContains(t, bodyStr, goner.Title)
	assert.Contains(t, bodyStr, `"total":1`)
}
