package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/contentply/contentply/internal/logging"
)

const slowQueryThreshold = 200 * time.Millisecond

// gormLogger routes GORM output into the contentply logger
type gormLogger struct {
	level logger.LogLevel
}

func (l *gormLogger) LogMode(level logger.LogLevel) logger.Interface {
	return &gormLogger{level: level}
}

func (l *gormLogger) Info(ctx context.Context, msg string, data ...any) {
	l.log(ctx, logger.Info, slog.LevelInfo, msg, data)
}

func (l *gormLogger) Warn(ctx context.Context, msg string, data ...any) {
	l.log(ctx, logger.Warn, slog.LevelWarn, msg, data)
}

func (l *gormLogger) Error(ctx context.Context, msg string, data ...any) {
	l.log(ctx, logger.Error, slog.LevelError, msg, data)
}

func (l *gormLogger) log(ctx context.Context, threshold logger.LogLevel, level slog.Level, msg string, data []any) {
	if l.level < threshold {
		return
	}
	logging.Logger.Log(ctx, level, fmt.Sprintf(msg, data...), "component", "gorm")
}

func (l *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.level < logger.Info {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
		logging.Logger.Error("gorm query error", "error", err, "duration", elapsed, "sql", sql, "rows", rows)
	case elapsed > slowQueryThreshold:
		logging.Logger.Warn("slow query", "duration", elapsed, "sql", sql, "rows", rows)
	default:
		logging.Logger.Debug("gorm query", "duration", elapsed, "sql", sql, "rows", rows)
	}
}

func newGormLogger() logger.Interface {
	if os.Getenv(logging.EnvDebug) == "1" {
		return (&gormLogger{}).LogMode(logger.Info)
	}
	return (&gormLogger{}).LogMode(logger.Silent)
}
