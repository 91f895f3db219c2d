package database

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
	"gorm.io/gorm/utils"
)

// QueryObserver receives the latency and result of every statement.
type QueryObserver interface {
	ObserveQuery(elapsed time.Duration, err error)
}

// =======================
// GORM LOGGER (zerolog)
// =======================

// GormLogger routes gorm output through zerolog. Failed statements log at
// error, slow ones at warn, everything else at debug.
type GormLogger struct {
	SlowThreshold time.Duration
	LogLevel      gormLogger.LogLevel
	Observer      QueryObserver

	logger *zerolog.Logger
}

func NewGormLogger(slowThreshold time.Duration, observer QueryObserver) *GormLogger {
	return &GormLogger{
		SlowThreshold: slowThreshold,
		LogLevel:      gormLogger.Info,
		Observer:      observer,
	}
}

// WithLogger pins the logger instead of following the global one.
func (l *GormLogger) WithLogger(zl zerolog.Logger) *GormLogger {
	l.logger = &zl
	return l
}

func (l *GormLogger) log() *zerolog.Logger {
	if l.logger != nil {
		return l.logger
	}
	return &log.Logger
}

func (l *GormLogger) LogMode(level gormLogger.LogLevel) gormLogger.Interface {
	clone := *l
	clone.LogLevel = level
	return &clone
}

func (l *GormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Info {
		l.log().Info().Msgf(msg, data...)
	}
}

func (l *GormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Warn {
		l.log().Warn().Msgf(msg, data...)
	}
}

func (l *GormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Error {
		l.log().Error().Msgf(msg, data...)
	}
}

func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	elapsed := time.Since(begin)
	if l.Observer != nil {
		l.Observer.ObserveQuery(elapsed, err)
	}
	if l.LogLevel <= gormLogger.Silent {
		return
	}

	sql, rows := fc()
	file := utils.FileWithLineNum()

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && l.LogLevel >= gormLogger.Error:
		ev := l.log().Error().Err(err)
		if code := PgErrorCode(err); code != "" {
			ev = ev.Str("sqlstate", code)
		}
		ev.Str("caller", file).Dur("elapsed", elapsed).Int64("rows", rows).Str("sql", sql).Msg("query failed")
	case l.SlowThreshold > 0 && elapsed > l.SlowThreshold && l.LogLevel >= gormLogger.Warn:
		l.log().Warn().Str("caller", file).Dur("elapsed", elapsed).Int64("rows", rows).Str("sql", sql).Msg("slow query")
	case l.LogLevel >= gormLogger.Info:
		l.log().Debug().Str("caller", file).Dur("elapsed", elapsed).Int64("rows", rows).Str("sql", sql).Msg("query")
	}
}

// PgErrorCode returns the SQLSTATE of a postgres error anywhere in err's chain.
func PgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}
