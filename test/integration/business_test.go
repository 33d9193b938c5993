package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"festacconnect_backend/internal/models"
	"festacconnect_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBusinessCreateWithCategory(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	token, _ := helpers.RegisterAndLogin(t, ts, "bizowner")

	createBody := map[string]interface{}{
		"name":          "Mama Nkechi Kitchen",
		"description":   "Home-style cooking",
		"category_slug": "food-restaurants",
		"location":      "23 Road",
		"phone":         "+2348012345678",
	}
	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/businesses", token, createBody)
	require.Equal(t, http.StatusCreated, res.StatusCode, bodyStr)
	assert.Contains(t, bodyStr, "Mama Nkechi Kitchen")
	assert.Contains(t, bodyStr, "food-restaurants")
}

func TestBusinessCreate_UnknownCategory(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	token, _ := helpers.RegisterAndLogin(t, ts, "badcat")

	createBody := map[string]interface{}{
		"name":          "Ghost Shop",
		"category_slug": "no-such-category",
	}
	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/businesses", token, createBody)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, bodyStr)
}

func TestBusinessCategories_Public(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	res, bodyStr := ts.SendRequest(t, http.MethodGet, "/api/v1/businesses/categories", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)
	assert.Contains(t, bodyStr, "food-restaurants")
	assert.Contains(t, bodyStr, "home-services")
}

func TestReviewFlow_RatingRecomputed(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	_, ownerID := helpers.RegisterAndLogin(t, ts, "reviewed")
	business := helpers.CreateTestBusiness(t, tx, ownerID, "Festac Barbers")

	aliceToken, _ := helpers.RegisterAndLogin(t, ts, "alice")
	bobToken, _ := helpers.RegisterAndLogin(t, ts, "bob")

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/businesses/"+business.ID+"/reviews", aliceToken,
		map[string]interface{}{"rating": 5, "comment": "Sharp fade"})
	require.Equal(t, http.StatusCreated, res.StatusCode, bodyStr)

	res, bodyStr = ts.SendRequest(t, http.MethodPost, "/api/v1/businesses/"+business.ID+"/reviews", bobToken,
		map[string]interface{}{"rating": 2})
	require.Equal(t, http.StatusCreated, res.StatusCode, bodyStr)

	var stored models.Business
	require.NoError(t, tx.First(&stored, "id = ?", business.ID).Error)
	assert.InDelta(t, 3.5, stored.Rating, 0.001)
	assert.Equal(t, 2, stored.ReviewCount)

	// One review per user per business.
	res, bodyStr = ts.SendRequest(t, http.MethodPost, "/api/v1/businesses/"+business.ID+"/reviews", aliceToken,
		map[string]interface{}{"rating": 1})
	assert.Equal(t, http.StatusConflict, res.StatusCode, bodyStr)
}

func TestReview_SelfReviewRejected(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	ownerToken, ownerID := helpers.RegisterAndLogin(t, ts, "selfrev")
	business := helpers.CreateTestBusiness(t, tx, ownerID, "Own Shop")

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/businesses/"+business.ID+"/reviews", ownerToken,
		map[string]interface{}{"rating": 5})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, bodyStr)
}

func TestReviewDelete_RecomputesRating(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	_, ownerID := helpers.RegisterAndLogin(t, ts, "delta")
	business := helpers.CreateTestBusiness(t, tx, ownerID, "Delta Stores")

	reviewerToken, _ := helpers.RegisterAndLogin(t, ts, "deleter")
	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/businesses/"+business.ID+"/reviews", reviewerToken,
		map[string]interface{}{"rating": 4, "comment": "Good"})
	require.Equal(t, http.StatusCreated, res.StatusCode, bodyStr)

	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &created))

	res, bodyStr = ts.SendRequest(t, http.MethodDelete, "/api/v1/reviews/"+created.ID, reviewerToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	var stored models.Business
	require.NoError(t, tx.First(&stored, "id = ?", business.ID).Error)
	assert.Zero(t, stored.Rating)
	assert.Zero(t, stored.ReviewCount)
}
