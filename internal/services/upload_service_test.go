package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildUploadPath(t *testing.T) {
	path := buildUploadPath("user-1", "listing", "listing-9", "Photo.JPG")
	parts := strings.Split(path, "/")
	assert.Len(t, parts, 4)
	assert.Equal(t, "user-1", parts[0])
	assert.Equal(t, "listing", parts[1])
	assert.Equal(t, "listing-9", parts[2])
	assert.True(t, strings.HasSuffix(parts[3], ".jpg"), "extension should be lowercased: %s", parts[3])

	// Unattached uploads skip the entity segment.
	path = buildUploadPath("user-1", "avatar", "", "me.png")
	parts = strings.Split(path, "/")
	assert.Len(t, parts, 3)
	assert.Equal(t, "avatar", parts[1])
}

func TestThumbnailPath(t *testing.T) {
	assert.Equal(t, "u/listing/e/thumb-123-ab.jpg", thumbnailPath("u/listing/e/123-ab.jpg"))
	assert.Equal(t, "u/avatar/thumb-x.png", thumbnailPath("u/avatar/x.png"))
}

func TestMimeAllowed(t *testing.T) {
	allowed := []string{"image/jpeg", "image/png", "application/pdf"}
	assert.True(t, mimeAllowed("image/png", allowed))
	assert.False(t, mimeAllowed("video/mp4", allowed))
	assert.False(t, mimeAllowed("", allowed))
}
