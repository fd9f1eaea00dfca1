package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type widget struct {
	Id   uint `gorm:"primaryKey"`
	Name string
}

func TestMigrateIsIdempotent(t *testing.T) {
	db, err := NewMemoryDB()
	require.NoError(t, err)

	require.NoError(t, Migrate(db, &widget{}))
	// A second run against the existing schema must be a no-op.
	require.NoError(t, Migrate(db, &widget{}))

	require.NoError(t, db.Create(&widget{Name: "a"}).Error)

	var count int64
	require.NoError(t, db.Model(&widget{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestNewGormDBCreatesParentDir(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "notes.db")

	db, err := NewGormDB(dbPath)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	assert.NoError(t, sqlDB.Ping())
}
