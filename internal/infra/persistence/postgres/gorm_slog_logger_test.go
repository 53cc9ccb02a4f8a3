package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"parkospace/config"
	deliverycontext "parkospace/internal/delivery/context"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newBufferedGormLogger(cfg *config.Config) (logger.Interface, *bytes.Buffer) {
	var buf bytes.Buffer

	return newGormSlogLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), cfg), &buf
}

func sqlRows() (string, int64) {
	return "SELECT * FROM listings", 2
}

func TestGormSlogLogger_SlowQuery(t *testing.T) {
	cfg := &config.Config{}
	cfg.Database.SlowQueryThreshold = time.Millisecond
	l, buf := newBufferedGormLogger(cfg)

	l.Trace(context.Background(), time.Now().Add(-10*time.Millisecond), sqlRows, nil)

	assert.Contains(t, buf.String(), "GORM slow query")
	assert.Contains(t, buf.String(), "slow_threshold=1ms")
}

func TestGormSlogLogger_FastQueryIsQuietOutsideDebug(t *testing.T) {
	l, buf := newBufferedGormLogger(&config.Config{})

	l.Trace(context.Background(), time.Now(), sqlRows, nil)

	assert.Empty(t, buf.String())
}

func TestGormSlogLogger_IgnoresRecordNotFound(t *testing.T) {
	l, buf := newBufferedGormLogger(&config.Config{})

	l.Trace(context.Background(), time.Now(), sqlRows, gorm.ErrRecordNotFound)

	assert.Empty(t, buf.String())
}

func TestGormSlogLogger_UsesRequestLogger(t *testing.T) {
	l, _ := newBufferedGormLogger(&config.Config{})
	var reqBuf bytes.Buffer
	reqLogger := slog.New(slog.NewTextHandler(&reqBuf, nil)).With(slog.String("request_id", "req-1"))
	ctx := deliverycontext.WithLogger(context.Background(), reqLogger)

	l.Trace(ctx, time.Now(), sqlRows, assert.AnError)

	assert.Contains(t, reqBuf.String(), "GORM query failed")
	assert.Contains(t, reqBuf.String(), "request_id=req-1")
}

func TestGormSlogLogger_Silent(t *testing.T) {
	l, buf := newBufferedGormLogger(&config.Config{})

	l.LogMode(logger.Silent).Trace(context.Background(), time.Now(), sqlRows, assert.AnError)
	l.Info(context.Background(), "hidden %d", 1)

	assert.Empty(t, buf.String())
}
