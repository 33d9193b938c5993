package services

import (
	"testing"

	"festacconnect_backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestPrimaryRole(t *testing.T) {
	assert.Equal(t, "user", primaryRole(nil))
	assert.Equal(t, "user", primaryRole([]string{"user"}))
	assert.Equal(t, "moderator", primaryRole([]string{"user", "moderator"}))
	assert.Equal(t, "admin", primaryRole([]string{"moderator", "admin", "user"}))
}

func TestRolesOf_DefaultsToUser(t *testing.T) {
	user := &models.User{}
	assert.Equal(t, []string{"user"}, rolesOf(user))

	user.Roles = []models.UserRole{{Role: models.AppRoleAdmin}, {Role: models.AppRoleUser}}
	assert.Equal(t, []string{"admin", "user"}, rolesOf(user))
}

func TestGenerateRandomToken(t *testing.T) {
	a := generateRandomToken()
	b := generateRandomToken()
	assert.Len(t, a, 64)
	assert.NotEqual(t, a, b)
}
