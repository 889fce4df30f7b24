package database

import (
	"testing"

	"github.com/dadprep/dadprep-backend/internal/config"
	"github.com/dadprep/dadprep-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectSQLiteAndMigrate(t *testing.T) {
	cfg := &config.Config{DBDriver: config.DriverSQLite, SQLitePath: ":memory:"}

	db, err := Connect(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })

	require.NoError(t, MigrateShared(db))
	require.NoError(t, Ping(db))

	for _, model := range []interface{}{&models.User{}, &models.RefreshToken{}, &models.StoredBlob{}, &models.SystemLog{}} {
		assert.True(t, db.Migrator().HasTable(model))
	}
}

func TestMigrateModelsEmpty(t *testing.T) {
	db, err := OpenSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })

	assert.NoError(t, MigrateModels(db, nil))
}
