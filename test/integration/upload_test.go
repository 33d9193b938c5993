package integration_test

import (
	"testing"
	"time"

	"festacconnect_backend/internal/models"
	"festacconnect_backend/internal/repositories"
	"festacconnect_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadGC_FindOrphanedBefore(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	_, userID := helpers.RegisterAndLogin(t, ts, "uploader")

	kept := helpers.CreateTestListing(t, tx, userID, "Standing fan", 15000)
	doomed := helpers.CreateTestListing(t, tx, userID, "Broken fridge", 5000)

	old := time.Now().Add(-48 * time.Hour)

	attachedLive := models.Upload{
		BaseModel:  models.BaseModel{CreatedAt: old},
		UserID:     userID,
		EntityKind: "listing",
		EntityID:   kept.ID,
		Path:       userID + "/listing/" + kept.ID + "/a.jpg",
	}
	attachedDeleted := models.Upload{
		BaseModel:  models.BaseModel{CreatedAt: old},
		UserID:     userID,
		EntityKind: "listing",
		EntityID:   doomed.ID,
		Path:       userID + "/listing/" + doomed.ID + "/b.jpg",
	}
	unattachedOld := models.Upload{
		BaseModel:  models.BaseModel{CreatedAt: old},
		UserID:     userID,
		EntityKind: "listing",
		Path:       userID + "/listing/c.jpg",
	}
	unattachedFresh := models.Upload{
		UserID:     userID,
		EntityKind: "listing",
		Path:       userID + "/listing/d.jpg",
	}
	for _, u := range []*models.Upload{&attachedLive, &attachedDeleted, &unattachedOld, &unattachedFresh} {
		require.NoError(t, tx.Create(u).Error)
	}

	// The listing row vanishes but its upload row stays behind.
	require.NoError(t, tx.Exec("DELETE FROM favorites WHERE listing_id = ?", doomed.ID).Error)
	require.NoError(t, tx.Exec("DELETE FROM listings WHERE id = ?", doomed.ID).Error)

	repo := repositories.NewUploadRepository()
	orphans, err := repo.FindOrphanedBefore(tx, time.Now().Add(-24*time.Hour))
	require.NoError(t, err)

	paths := make(map[string]bool, len(orphans))
	for _, o := range orphans {
		paths[o.Path] = true
	}
	assert.True(t, paths[attachedDeleted.Path], "upload of a deleted listing must be collected")
	assert.True(t, paths[unattachedOld.Path], "stale unattached upload must be collected")
	assert.False(t, paths[attachedLive.Path], "upload of a live listing must survive")
	assert.False(t, paths[unattachedFresh.Path], "fresh unattached upload is still inside the grace period")
}
