package seed

import (
	"fmt"
	"strings"
	"testing"

	"quill/internal/database"
	"quill/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	return db
}

func TestRunPopulatesAllTables(t *testing.T) {
	db := newTestDB(t)

	opts := Options{Users: 2, Posts: 3, CommentsPerPost: 2}
	require.NoError(t, Run(db, opts))

	var users, posts, comments int64
	db.Model(&models.User{}).Count(&users)
	db.Model(&models.Post{}).Count(&posts)
	db.Model(&models.Comment{}).Count(&comments)

	assert.EqualValues(t, 2, users)
	assert.EqualValues(t, 3, posts)
	assert.EqualValues(t, 6, comments)
}

func TestSeededUsersCanLogIn(t *testing.T) {
	db := newTestDB(t)
	factory := NewFactory(db)

	user, err := factory.CreateUser()
	require.NoError(t, err)

	assert.NoError(t, bcrypt.CompareHashAndPassword(
		[]byte(user.Password), []byte(DefaultPassword)))
}

func TestResetWipesEverything(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, Run(db, Options{Users: 1, Posts: 1, CommentsPerPost: 1}))

	require.NoError(t, Reset(db))

	var users, posts, comments int64
	db.Model(&models.User{}).Count(&users)
	db.Model(&models.Post{}).Count(&posts)
	db.Model(&models.Comment{}).Count(&comments)

	assert.Zero(t, users)
	assert.Zero(t, posts)
	assert.Zero(t, comments)
}
