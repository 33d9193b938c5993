package integration_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"festacconnect_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	email := fmt.Sprintf("auth_%d@festac.test", time.Now().UnixNano())
	registerBody := map[string]interface{}{
		"email":        email,
		"password":     "password123",
		"first_name":   "Ada",
		"last_name":    "Obi",
		"account_type": "buyer",
	}

	regRes, regBodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/register", "", registerBody)
	require.Equal(t, http.StatusCreated, regRes.StatusCode, regBodyStr)
	assert.Contains(t, regBodyStr, "access_token")
	assert.Contains(t, regBodyStr, email)

	loginBody := map[string]interface{}{
		"email":    email,
		"password": "password123",
	}
	logRes, logBodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", loginBody)
	require.Equal(t, http.StatusOK, logRes.StatusCode, logBodyStr)
	assert.Contains(t, logBodyStr, "refresh_token")
}

func TestRegister_DuplicateEmail(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	email := fmt.Sprintf("dup_%d@festac.test", time.Now().UnixNano())
	body := map[string]interface{}{
		"email":        email,
		"password":     "password123",
		"first_name":   "First",
		"last_name":    "User",
		"account_type": "buyer",
	}

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/register", "", body)
	require.Equal(t, http.StatusCreated, res.StatusCode, bodyStr)

	res, bodyStr = ts.SendRequest(t, http.MethodPost, "/api/v1/auth/register", "", body)
	assert.Equal(t, http.StatusConflict, res.StatusCode)
	assert.Contains(t, bodyStr, "already exists")
}

func TestLogin_BadPassword(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	_, userID := helpers.RegisterAndLogin(t, ts, "badpass")
	_ = userID

	loginBody := map[string]interface{}{
		"email":    "nobody@festac.test",
		"password": "wrong-password",
	}
	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", loginBody)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	assert.Contains(t, bodyStr, "Invalid email or password")
}

func TestRefreshRotation(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	email := fmt.Sprintf("refresh_%d@festac.test", time.Now().UnixNano())
	registerBody := map[string]interface{}{
		"email":        email,
		"password":     "password123",
		"first_name":   "Ref",
		"last_name":    "Resh",
		"account_type": "buyer",
	}
	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/register", "", registerBody)
	require.Equal(t, http.StatusCreated, res.StatusCode, bodyStr)

	var session struct {
		RefreshToken string `json:"refresh_token"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &session))

	refreshBody := map[string]interface{}{"refresh_token": session.RefreshToken}
	res, bodyStr = ts.SendRequest(t, http.MethodPost, "/api/v1/auth/refresh", "", refreshBody)
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	// The old token was rotated out and must not work twice.
	res, _ = ts.SendRequest(t, http.MethodPost, "/api/v1/auth/refresh", "", refreshBody)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}

func TestGetMe(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	token, userID := helpers.RegisterAndLogin(t, ts, "me")

	res, bodyStr := ts.SendRequest(t, http.MethodGet, "/api/v1/me", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)
	assert.Contains(t, bodyStr, userID)
	assert.Contains(t, bodyStr, "Test")
}

func TestProtectedRoute_NoToken(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	res, _ := ts.SendRequest(t, http.MethodGet, "/api/v1/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}
