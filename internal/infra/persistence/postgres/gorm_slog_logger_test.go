package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"marketplace/config"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newBufferedGormLogger(debug bool) (logger.Interface, *bytes.Buffer) {
	var buf bytes.Buffer
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	return newGormSlogLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), cfg), &buf
}

func sqlFn() (string, int64) { return "SELECT 1", 1 }

func TestGormSlogLogger_Trace(t *testing.T) {
	ctx := context.Background()

	t.Run("failed query is logged as error", func(t *testing.T) {
		l, buf := newBufferedGormLogger(false)
		l.Trace(ctx, time.Now(), sqlFn, errors.New("boom"))
		assert.Contains(t, buf.String(), "GORM query failed")
		assert.Contains(t, buf.String(), "boom")
	})

	t.Run("record not found is not logged", func(t *testing.T) {
		l, buf := newBufferedGormLogger(false)
		l.Trace(ctx, time.Now(), sqlFn, gorm.ErrRecordNotFound)
		assert.Empty(t, buf.String())
	})

	t.Run("slow query is logged as warning", func(t *testing.T) {
		l, buf := newBufferedGormLogger(false)
		l.Trace(ctx, time.Now().Add(-time.Second), sqlFn, nil)
		assert.Contains(t, buf.String(), "GORM slow query")
	})

	t.Run("fast query is only logged in debug", func(t *testing.T) {
		l, buf := newBufferedGormLogger(false)
		l.Trace(ctx, time.Now(), sqlFn, nil)
		assert.Empty(t, buf.String())

		l, buf = newBufferedGormLogger(true)
		l.Trace(ctx, time.Now(), sqlFn, nil)
		assert.Contains(t, buf.String(), "SELECT 1")
	})

	t.Run("silent mode drops everything", func(t *testing.T) {
		l, buf := newBufferedGormLogger(true)
		l.LogMode(logger.Silent).Trace(ctx, time.Now(), sqlFn, errors.New("boom"))
		assert.Empty(t, buf.String())
	})
}
