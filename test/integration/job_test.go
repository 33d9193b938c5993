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

func TestJobApplicationFlow(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	posterToken, posterID := helpers.RegisterAndLogin(t, ts, "poster")
	applicantToken, _ := helpers.RegisterAndLogin(t, ts, "applicant")

	job := helpers.CreateTestJob(t, tx, posterID, "Shop assistant")

	applyBody := map[string]interface{}{
		"cover_letter": "I live nearby and can start immediately.",
	}
	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/jobs/"+job.ID+"/apply", applicantToken, applyBody)
	require.Equal(t, http.StatusCreated, res.StatusCode, bodyStr)

	var application struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &application))

	// Applying twice to the same job is a conflict.
	res, bodyStr = ts.SendRequest(t, http.MethodPost, "/api/v1/jobs/"+job.ID+"/apply", applicantToken, applyBody)
	assert.Equal(t, http.StatusConflict, res.StatusCode, bodyStr)

	// The poster sees the application; the applicant cannot list them.
	res, bodyStr = ts.SendRequest(t, http.MethodGet, "/api/v1/jobs/"+job.ID+"/applications", posterToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)
	assert.Contains(t, bodyStr, application.ID)

	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/jobs/"+job.ID+"/applications", applicantToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	// Poster accepts; the applicant gets a notification.
	res, bodyStr = ts.SendRequest(t, http.MethodPut, "/api/v1/jobs/applications/"+application.ID+"/status", posterToken,
		map[string]interface{}{"status": "accepted"})
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	var stored models.JobApplication
	require.NoError(t, tx.First(&stored, "id = ?", application.ID).Error)
	assert.Equal(t, models.ApplicationStatusAccepted, stored.Status)

	res, bodyStr = ts.SendRequest(t, http.MethodGet, "/api/v1/notifications", applicantToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)
	assert.Contains(t, bodyStr, "application")
}

func TestJobApply_SelfApplyRejected(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	posterToken, posterID := helpers.RegisterAndLogin(t, ts, "selfapply")
	job := helpers.CreateTestJob(t, tx, posterID, "Cashier")

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/jobs/"+job.ID+"/apply", posterToken,
		map[string]interface{}{"cover_letter": "Hire me"})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, bodyStr)
}

func TestJobApply_ClosedJob(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	_, posterID := helpers.RegisterAndLogin(t, ts, "closedjob")
	applicantToken, _ := helpers.RegisterAndLogin(t, ts, "lateapp")

	job := helpers.CreateTestJob(t, tx, posterID, "Expired role")
	require.NoError(t, tx.Model(&job).Update("status", models.JobStatusClosed).Error)

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/jobs/"+job.ID+"/apply", applicantToken,
		map[string]interface{}{"cover_letter": "Too late"})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, bodyStr)
}

func TestJobWithdraw(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	_, posterID := helpers.RegisterAndLogin(t, ts, "withdrawjob")
	applicantToken, applicantID := helpers.RegisterAndLogin(t, ts, "withdrawer")

	job := helpers.CreateTestJob(t, tx, posterID, "Driver")

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/jobs/"+job.ID+"/apply", applicantToken,
		map[string]interface{}{})
	require.Equal(t, http.StatusCreated, res.StatusCode, bodyStr)

	res, bodyStr = ts.SendRequest(t, http.MethodDelete, "/api/v1/jobs/"+job.ID+"/apply", applicantToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	var count int64
	tx.Model(&models.JobApplication{}).
		Where("job_id = ? AND user_id = ?", job.ID, applicantID).Count(&count)
	assert.Equal(t, int64(0), count)
}
