package database

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	gormLogger "gorm.io/gorm/logger"
)

type recordingObserver struct {
	calls []error
}

func (o *recordingObserver) ObserveQuery(_ time.Duration, err error) {
	o.calls = append(o.calls, err)
}

func newTestLogger(buf *bytes.Buffer, obs QueryObserver) *GormLogger {
	return NewGormLogger(100*time.Millisecond, obs).
		WithLogger(zerolog.New(buf).Level(zerolog.DebugLevel))
}

func sqlFn(sql string, rows int64) func() (string, int64) {
	return func() (string, int64) { return sql, rows }
}

func TestGormLogger_TraceError(t *testing.T) {
	var buf bytes.Buffer
	obs := &recordingObserver{}
	l := newTestLogger(&buf, obs)

	pgErr := &pgconn.PgError{Code: "42P01", Message: `relation "sgpa" does not exist`}
	l.Trace(context.Background(), time.Now(), sqlFn("SELECT 1", 0), fmt.Errorf("scan: %w", pgErr))

	out := buf.String()
	assert.Contains(t, out, `"level":"error"`)
	assert.Contains(t, out, `"sqlstate":"42P01"`)
	assert.Contains(t, out, `"message":"query failed"`)
	assert.Len(t, obs.calls, 1)
	assert.Error(t, obs.calls[0])
}

func TestGormLogger_TraceSlow(t *testing.T) {
	var buf bytes.Buffer
	l := newTestLogger(&buf, nil)

	l.Trace(context.Background(), time.Now().Add(-time.Second), sqlFn("SELECT pg_sleep(1)", 1), nil)

	assert.Contains(t, buf.String(), `"message":"slow query"`)
}

func TestGormLogger_SilentStillObserves(t *testing.T) {
	var buf bytes.Buffer
	obs := &recordingObserver{}
	l := newTestLogger(&buf, obs).LogMode(gormLogger.Silent)

	l.Trace(context.Background(), time.Now(), sqlFn("SELECT 1", 1), errors.New("boom"))

	assert.Empty(t, buf.String())
	assert.Len(t, obs.calls, 1)
}

func TestGormLogger_LogModeDoesNotMutateReceiver(t *testing.T) {
	l := NewGormLogger(time.Second, nil)
	_ = l.LogMode(gormLogger.Silent)
	assert.Equal(t, gormLogger.Info, l.LogLevel)
}

func TestPgErrorCode(t *testing.T) {
	assert.Equal(t, "22P02", PgErrorCode(fmt.Errorf("wrap: %w", &pgconn.PgError{Code: "22P02"})))
	assert.Equal(t, "", PgErrorCode(errors.New("plain")))
	assert.Equal(t, "", PgErrorCode(nil))
}
