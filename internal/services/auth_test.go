package services

import (
	"testing"

	"github.com/Tyrock1988/gamblecodez-platform/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestUpsertUser(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db)

	t.Run("Insert", func(t *testing.T) {
		user, err := svc.UpsertUser(models.User{ID: "admin", FirstName: "admin"})
		assert.NoError(t, err)
		assert.Equal(t, "admin", user.ID)

		var count int64
		db.Model(&models.User{}).Count(&count)
		assert.Equal(t, int64(1), count)
	})

	t.Run("Conflict Refreshes Profile", func(t *testing.T) {
		user, err := svc.UpsertUser(models.User{ID: "admin", FirstName: "operator", Email: "ops@example.com"})
		assert.NoError(t, err)
		assert.Equal(t, "admin", user.ID)

		got, err := svc.GetUser("admin")
		assert.NoError(t, err)
		assert.Equal(t, "operator", got.FirstName)
		assert.Equal(t, "ops@example.com", got.Email)

		var count int64
		db.Model(&models.User{}).Count(&count)
		assert.Equal(t, int64(1), count)
	})
}

func TestGetUser(t *testing.T) {
	db := setupTestDB(t)
	svc := NewAuthService(db)

	_, err := svc.GetUser("nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}
