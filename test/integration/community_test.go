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

func TestLikeToggle(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	_, authorID := helpers.RegisterAndLogin(t, ts, "author")
	likerToken, _ := helpers.RegisterAndLogin(t, ts, "liker")

	post := helpers.CreateTestPost(t, tx, authorID, "Power outage on 4th Avenue")

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/community/posts/"+post.ID+"/like", likerToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	var like struct {
		Liked      bool  `json:"liked"`
		LikesCount int64 `json:"likes_count"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &like))
	assert.True(t, like.Liked)
	assert.Equal(t, int64(1), like.LikesCount)

	// Second call removes the like.
	res, bodyStr = ts.SendRequest(t, http.MethodPost, "/api/v1/community/posts/"+post.ID+"/like", likerToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &like))
	assert.False(t, like.Liked)
	assert.Equal(t, int64(0), like.LikesCount)
}

func TestFeed_LikedFlagPersonalized(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	_, authorID := helpers.RegisterAndLogin(t, ts, "feedauthor")
	likerToken, _ := helpers.RegisterAndLogin(t, ts, "feedliker")

	post := helpers.CreateTestPost(t, tx, authorID, "Street cleanup this Saturday")

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/community/posts/"+post.ID+"/like", likerToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	// Signed-in viewer sees the liked flag; anonymous does not.
	res, bodyStr = ts.SendRequest(t, http.MethodGet, "/api/v1/community/posts/"+post.ID, likerToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)
	assert.Contains(t, bodyStr, `"liked":true`)

	res, bodyStr = ts.SendRequest(t, http.MethodGet, "/api/v1/community/posts/"+post.ID, "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)
	assert.Contains(t, bodyStr, `"liked":false`)
}

func TestCommentFlow(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	_, authorID := helpers.RegisterAndLogin(t, ts, "postowner")
	commenterToken, _ := helpers.RegisterAndLogin(t, ts, "commenter")

	post := helpers.CreateTestPost(t, tx, authorID, "New suya spot opened")

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/community/posts/"+post.ID+"/comments", commenterToken,
		map[string]interface{}{"content": "Their beef suya is excellent"})
	require.Equal(t, http.StatusCreated, res.StatusCode, bodyStr)

	var comment struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &comment))

	var stored models.CommunityPost
	require.NoError(t, tx.First(&stored, "id = ?", post.ID).Error)
	assert.Equal(t, int64(1), stored.CommentsCount)

	res, bodyStr = ts.SendRequest(t, http.MethodDelete, "/api/v1/community/comments/"+comment.ID, commenterToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	require.NoError(t, tx.First(&stored, "id = ?", post.ID).Error)
	assert.Equal(t, int64(0), stored.CommentsCount)
}

func TestPostDelete_ModeratorOverride(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	_, authorID := helpers.RegisterAndLogin(t, ts, "flagged")
	_, modID := helpers.RegisterAndLogin(t, ts, "mod")
	modToken := helpers.GrantRoleAndLogin(t, ts, tx, modID, models.AppRoleModerator)

	post := helpers.CreateTestPost(t, tx, authorID, "Off-topic rant")

	res, bodyStr := ts.SendRequest(t, http.MethodDelete, "/api/v1/community/posts/"+post.ID, modToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)
}

func TestCreatePost_EventFields(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	token, _ := helpers.RegisterAndLogin(t, ts, "eventhost")

	body := map[string]interface{}{
		"type":           "event",
		"title":          "Festac town hall meeting",
		"content":        "Agenda: security levy and road repairs",
		"event_date":     "2026-09-12",
		"event_time":     "10:00",
		"event_location": "Community hall, 2nd Avenue",
	}
	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/community/posts", token, body)
	require.Equal(t, http.StatusCreated, res.StatusCode, bodyStr)
	assert.Contains(t, bodyStr, "2026-09-12")
}

func TestCreatePost_FieldsMustMatchType(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	token, _ := helpers.RegisterAndLogin(t, ts, "typedposter")

	// A news post cannot carry a review rating.
	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/community/posts", token,
		map[string]interface{}{
			"type":    "news",
			"title":   "New speed bumps on 1st Avenue",
			"content": "Installed over the weekend",
			"rating":  5,
		})
	require.Equal(t, http.StatusBadRequest, res.StatusCode, bodyStr)

	// A discussion post cannot carry event details.
	res, bodyStr = ts.SendRequest(t, http.MethodPost, "/api/v1/community/posts", token,
		map[string]interface{}{
			"type":       "discussion",
			"title":      "Generator noise at night",
			"content":    "Anyone else affected?",
			"event_date": "2026-09-01",
		})
	require.Equal(t, http.StatusBadRequest, res.StatusCode, bodyStr)

	// Updates cannot sneak mismatched fields onto an existing post either.
	authorToken, authorID := helpers.RegisterAndLogin(t, ts, "typedauthor")
	post := helpers.CreateTestPost(t, tx, authorID, "Borehole water quality")

	res, bodyStr = ts.SendRequest(t, http.MethodPut, "/api/v1/community/posts/"+post.ID, authorToken,
		map[string]interface{}{"rating": 3})
	require.Equal(t, http.StatusBadRequest, res.StatusCode, bodyStr)
}
