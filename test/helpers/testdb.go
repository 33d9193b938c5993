package helpers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"festacconnect_backend/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type sessionResponse struct {
	AccessToken string `json:"access_token"`
	User        struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	} `json:"user"`
}

// RegisterAndLogin registers a fresh user through the API and returns its
// access token and user id. The email gets a nanosecond suffix so parallel
// packages never collide.
func RegisterAndLogin(t *testing.T, ts *TestServer, prefix string) (string, string) {
	email := fmt.Sprintf("%s_%d@festac.test", prefix, time.Now().UnixNano())

	body := map[string]interface{}{
		"email":        email,
		"password":     "password123",
		"first_name":   "Test",
		"last_name":    "Neighbor",
		"account_type": "seller",
	}
	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/register", "", body)
	require.Equal(t, http.StatusCreated, res.StatusCode, "registration should succeed: "+bodyStr)

	var session sessionResponse
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &session))
	require.NotEmpty(t, session.AccessToken)
	require.NotEmpty(t, session.User.ID)

	return session.AccessToken, session.User.ID
}

// GrantRoleAndLogin adds a role grant and logs the user in again so the new
// role lands in the token claim.
func GrantRoleAndLogin(t *testing.T, ts *TestServer, tx *gorm.DB, userID string, role models.AppRole) string {
	require.NoError(t, tx.Create(&models.UserRole{UserID: userID, Role: role}).Error)

	var user models.User
	require.NoError(t, tx.First(&user, "id = ?", userID).Error)

	body := map[string]interface{}{
		"email":    user.Email,
		"password": "password123",
	}
	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", body)
	require.Equal(t, http.StatusOK, res.StatusCode, "login should succeed: "+bodyStr)

	var session sessionResponse
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &session))
	return session.AccessToken
}

func CreateTestListing(t *testing.T, tx *gorm.DB, userID, title string, price float64) models.Listing {
	listing := models.Listing{
		UserID:    userID,
		Title:     title,
		Category:  "electronics",
		Price:     price,
		PriceType: models.PriceTypeFixed,
		Location:  "Festac Town",
		Status:    models.ListingStatusActive,
	}
	require.NoError(t, tx.Create(&listing).Error)
	return listing
}

func CreateTestBusiness(t *testing.T, tx *gorm.DB, userID, name string) models.Business {
	business := models.Business{
		UserID:   userID,
		Name:     name,
		Location: "First Avenue",
		Status:   models.BusinessStatusActive,
	}
	require.NoError(t, tx.Create(&business).Error)
	return business
}

func CreateTestJob(t *testing.T, tx *gorm.DB, userID, title string) models.Job {
	job := models.Job{
		UserID:  userID,
		Title:   title,
		Company: "Festac Ventures",
		Type:    models.JobTypeFullTime,
		Status:  models.JobStatusActive,
	}
	require.NoError(t, tx.Create(&job).Error)
	return job
}

func CreateTestPost(t *testing.T, tx *gorm.DB, userID, title string) models.CommunityPost {
	post := models.CommunityPost{
		UserID:  userID,
		Type:    models.PostTypeDiscussion,
		Title:   title,
		Content: "Post body",
		Status:  models.PostStatusActive,
	}
	require.NoError(t, tx.Create(&post).Error)
	return post
}
