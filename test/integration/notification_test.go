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

func TestNotificationReadFlow(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	token, userID := helpers.RegisterAndLogin(t, ts, "notif")

	notifications := []models.Notification{
		{UserID: userID, Type: "review", Title: "New review on your business"},
		{UserID: userID, Type: "boost", Title: "Your listing is now featured"},
	}
	for i := range notifications {
		require.NoError(t, tx.Create(&notifications[i]).Error)
	}

	res, bodyStr := ts.SendRequest(t, http.MethodGet, "/api/v1/notifications", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	var list struct {
		Total       int64 `json:"total"`
		UnreadCount int64 `json:"unread_count"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &list))
	assert.Equal(t, int64(2), list.Total)
	assert.Equal(t, int64(2), list.UnreadCount)

	res, bodyStr = ts.SendRequest(t, http.MethodPost, "/api/v1/notifications/"+notifications[0].ID+"/read", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	res, bodyStr = ts.SendRequest(t, http.MethodGet, "/api/v1/notifications", token, nil)
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &list))
	assert.Equal(t, int64(1), list.UnreadCount)

	res, bodyStr = ts.SendRequest(t, http.MethodPost, "/api/v1/notifications/read-all", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	res, bodyStr = ts.SendRequest(t, http.MethodGet, "/api/v1/notifications?unread=true", token, nil)
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &list))
	assert.Equal(t, int64(0), list.UnreadCount)
}

func TestNotification_OwnerOnly(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	_, ownerID := helpers.RegisterAndLogin(t, ts, "notifowner")
	strangerToken, _ := helpers.RegisterAndLogin(t, ts, "stranger")

	notification := models.Notification{UserID: ownerID, Type: "review", Title: "Private"}
	require.NoError(t, tx.Create(&notification).Error)

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/notifications/"+notification.ID+"/read", strangerToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode, bodyStr)

	res, bodyStr = ts.SendRequest(t, http.MethodDelete, "/api/v1/notifications/"+notification.ID, strangerToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode, bodyStr)
}
