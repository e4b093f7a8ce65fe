package db

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func newBufferedLogger(debug bool) (*bytes.Buffer, *gormSlogLogger) {
	buf := &bytes.Buffer{}
	base := slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return buf, NewGormLogger(base, debug).(*gormSlogLogger)
}

func sqlFn(sql string) func() (string, int64) {
	return func() (string, int64) { return sql, 1 }
}

func TestGormLogger_Trace(t *testing.T) {
	t.Run("query failure is logged", func(t *testing.T) {
		buf, l := newBufferedLogger(false)
		l.Trace(context.Background(), time.Now(), sqlFn("SELECT 1"), errors.New("boom"))
		assert.Contains(t, buf.String(), "GORM query failed")
		assert.Contains(t, buf.String(), "boom")
	})

	t.Run("record not found is ignored", func(t *testing.T) {
		buf, l := newBufferedLogger(false)
		l.Trace(context.Background(), time.Now(), sqlFn("SELECT 1"), gorm.ErrRecordNotFound)
		assert.Empty(t, buf.String())
	})

	t.Run("slow query is a warning", func(t *testing.T) {
		buf, l := newBufferedLogger(false)
		l.Trace(context.Background(), time.Now().Add(-time.Second), sqlFn("SELECT 1"), nil)
		assert.Contains(t, buf.String(), "GORM slow query")
	})

	t.Run("statements only in debug", func(t *testing.T) {
		buf, l := newBufferedLogger(false)
		l.Trace(context.Background(), time.Now(), sqlFn("SELECT 1"), nil)
		assert.Empty(t, buf.String())

		buf, l = newBufferedLogger(true)
		l.Trace(context.Background(), time.Now(), sqlFn("SELECT 1"), nil)
		assert.Contains(t, buf.String(), "GORM query")
	})
}

func TestGormLogger_ParamsFilterDropsValues(t *testing.T) {
	_, l := newBufferedLogger(true)

	sql, params := l.ParamsFilter(context.Background(), "INSERT INTO users VALUES (?)", "$2a$12$digest")

	assert.Equal(t, "INSERT INTO users VALUES (?)", sql)
	assert.Nil(t, params)
}
