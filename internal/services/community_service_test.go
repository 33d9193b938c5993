package services

import (
	"testing"

	"festacconnect_backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestValidatePostFields(t *testing.T) {
	tests := []struct {
		name      string
		postType  models.PostType
		rating    *int
		eventDate *string
		wantErr   bool
	}{
		{"review with rating", models.PostTypeReview, intPtr(4), nil, false},
		{"news with rating", models.PostTypeNews, intPtr(5), nil, true},
		{"discussion with rating", models.PostTypeDiscussion, intPtr(1), nil, true},
		{"event with date", models.PostTypeEvent, nil, strPtr("2026-09-12"), false},
		{"news with event date", models.PostTypeNews, nil, strPtr("2026-09-12"), true},
		{"review with event date", models.PostTypeReview, intPtr(3), strPtr("2026-09-12"), true},
		{"plain discussion", models.PostTypeDiscussion, nil, nil, false},
		{"event without details", models.PostTypeEvent, nil, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validatePostFields(tt.postType, tt.rating, tt.eventDate, nil, nil)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidatePostFields_TimeAndLocationAlone(t *testing.T) {
	assert.Error(t, validatePostFields(models.PostTypeDiscussion, nil, nil, strPtr("18:00"), nil))
	assert.Error(t, validatePostFields(models.PostTypeNews, nil, nil, nil, strPtr("Festac Town Hall")))
	assert.NoError(t, validatePostFields(models.PostTypeEvent, nil, nil, strPtr("18:00"), strPtr("Festac Town Hall")))
}
