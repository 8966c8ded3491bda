package store

import (
	"context"
	"errors"
	"time"

	"github.com/andrebq/todoapp/internal/logutil"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type (
	gormLogger struct {
		level         logger.LogLevel
		slowThreshold time.Duration
	}
)

func newGormLogger() logger.Interface {
	return gormLogger{level: logger.Warn, slowThreshold: 200 * time.Millisecond}
}

func (g gormLogger) LogMode(level logger.LogLevel) logger.Interface {
	g.level = level
	return g
}

func (g gormLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	if g.level >= logger.Info {
		log := logutil.GetOrDefault(ctx)
		log.Info().Msgf(msg, args...)
	}
}

func (g gormLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	if g.level >= logger.Warn {
		log := logutil.GetOrDefault(ctx)
		log.Warn().Msgf(msg, args...)
	}
}

func (g gormLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	if g.level >= logger.Error {
		log := logutil.GetOrDefault(ctx)
		log.Error().Msgf(msg, args...)
	}
}

func (g gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if g.level <= logger.Silent {
		return
	}
	elapsed := time.Since(begin)
	log := logutil.GetOrDefault(ctx)
	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && g.level >= logger.Error:
		sql, rows := fc()
		log.Error().Err(err).Str("sql", sql).Int64("rows", rows).Dur("elapsed", elapsed).Msg("Query failed")
	case elapsed > g.slowThreshold && g.level >= logger.Warn:
		sql, rows := fc()
		log.Warn().Str("sql", sql).Int64("rows", rows).Dur("elapsed", elapsed).Msg("Slow query")
	case g.level >= logger.Info:
		sql, rows := fc()
		log.Debug().Str("sql", sql).Int64("rows", rows).Dur("elapsed", elapsed).Msg("Query")
	}
}
