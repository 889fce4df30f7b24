package logging

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/dadprep/dadprep-backend/internal/database"
	"github.com/dadprep/dadprep-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.OpenSQLite(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.MigrateShared(db))
	t.Cleanup(func() { _ = database.Close(db) })
	return db
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("nonsense"))
}

func TestMultiHandlerFansOutByLevel(t *testing.T) {
	var infoBuf, errBuf bytes.Buffer
	info := slog.NewJSONHandler(&infoBuf, &slog.HandlerOptions{Level: slog.LevelInfo})
	errOnly := slog.NewJSONHandler(&errBuf, &slog.HandlerOptions{Level: slog.LevelError})

	logger := slog.New(NewMultiHandler(info, errOnly)).With("collection", "registry-items")
	logger.Info("loaded")
	logger.Error("save failed")

	assert.Contains(t, infoBuf.String(), "loaded")
	assert.Contains(t, infoBuf.String(), "save failed")
	assert.NotContains(t, errBuf.String(), "loaded")
	assert.Contains(t, errBuf.String(), `"collection":"registry-items"`)
}

type failingHandler struct{ slog.Handler }

func (failingHandler) Handle(context.Context, slog.Record) error { return errors.New("sink down") }

func TestMultiHandlerKeepsWritingPastFailedSink(t *testing.T) {
	var buf bytes.Buffer
	console := slog.NewJSONHandler(&buf, nil)
	failing := failingHandler{slog.NewJSONHandler(&bytes.Buffer{}, nil)}

	h := NewMultiHandler(failing, nil, console)
	record := slog.NewRecord(time.Now(), slog.LevelInfo, "week advanced", 0)

	err := h.Handle(context.Background(), record)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sink down")
	assert.Contains(t, buf.String(), "week advanced")
}

func TestDBHandlerPersistsErrors(t *testing.T) {
	db := newTestDB(t)
	h := NewDBHandler(db, time.Hour)
	t.Cleanup(h.Stop)

	assert.False(t, h.Enabled(context.Background(), slog.LevelWarn))
	assert.True(t, h.Enabled(context.Background(), slog.LevelError))

	logger := slog.New(h).With("request_id", "req-1")
	logger.Error("store unavailable",
		"collection", "pregnancy-data",
		"user_email", "dad@example.com",
		"error", "connection refused",
		"attempt", 1,
	)
	h.Flush()

	var logs []models.SystemLog
	require.NoError(t, db.Find(&logs).Error)
	require.Len(t, logs, 1)
	assert.Equal(t, "store unavailable", logs[0].Message)
	assert.Equal(t, "req-1", logs[0].RequestID)
	assert.Equal(t, "pregnancy-data", logs[0].Collection)
	assert.Equal(t, "connection refused", logs[0].Error)
	require.NotNil(t, logs[0].UserEmail)
	assert.Equal(t, "dad@example.com", *logs[0].UserEmail)
	assert.JSONEq(t, `{"attempt":1}`, string(logs[0].Extra))
}

func TestPurgeOlderThan(t *testing.T) {
	db := newTestDB(t)
	now := time.Now()
	require.NoError(t, db.Create(&[]models.SystemLog{
		{Timestamp: now.AddDate(0, 0, -40), Level: "ERROR", Message: "old"},
		{Timestamp: now, Level: "ERROR", Message: "fresh"},
	}).Error)

	deleted := PurgeOlderThan(db, now.AddDate(0, 0, -30))
	assert.Equal(t, int64(1), deleted)

	var remaining []models.SystemLog
	require.NoError(t, db.Find(&remaining).Error)
	require.Len(t, remaining, 1)
	assert.Equal(t, "fresh", remaining[0].Message)
}
