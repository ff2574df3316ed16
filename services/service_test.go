package services

import (
	"fmt"
	"testing"

	"github.com/eoreilly0906/Spoon-API/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a throwaway in-memory database migrated with the real
// schema. Each test gets its own so they can't see each other's rows.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Recipe{}))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()

	auth := NewAuthService(db)
	user, err := auth.Register(username, username+"@example.com", "password123")
	require.NoError(t, err)
	return user
}
