package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsAdminEmail(t *testing.T) {
	admins := []string{"admin@jodhpurpg.com", " owner@jodhpurpg.com "}

	assert.True(t, IsAdminEmail("admin@jodhpurpg.com", admins))
	assert.True(t, IsAdminEmail("Admin@JodhpurPG.com", admins))
	assert.True(t, IsAdminEmail("owner@jodhpurpg.com", admins))
	assert.False(t, IsAdminEmail("user@example.com", admins))
	assert.False(t, IsAdminEmail("", admins))
	assert.False(t, IsAdminEmail("admin@jodhpurpg.com", nil))
}
