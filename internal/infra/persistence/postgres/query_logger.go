package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"lounas/config"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// defaultSlowQueryThreshold applies when the postgres config leaves
// slowQueryThreshold unset.
const defaultSlowQueryThreshold = 200 * time.Millisecond

// queryLogger routes GORM's internal logging through the service slog
// handler. Debug deployments trace every statement; everything else logs
// failures and slow queries only. gorm.ErrRecordNotFound is a routine
// signal for lookups here and never reaches the log.
type queryLogger struct {
	base      *slog.Logger
	level     gormlogger.LogLevel
	slowAfter time.Duration
}

func newQueryLogger(base *slog.Logger, cfg *config.Config) gormlogger.Interface {
	level := gormlogger.Warn
	if cfg.Env.Debug {
		level = gormlogger.Info
	}

	slowAfter := defaultSlowQueryThreshold
	if cfg.Postgres != nil && cfg.Postgres.SlowQueryThreshold > 0 {
		slowAfter = cfg.Postgres.SlowQueryThreshold
	}

	return &queryLogger{
		base:      base,
		level:     level,
		slowAfter: slowAfter,
	}
}

// LogMode satisfies gormlogger.Interface; GORM calls it for per-session
// overrides such as db.Debug().
func (l *queryLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *queryLogger) Info(ctx context.Context, msg string, args ...any) {
	if l.level >= gormlogger.Info {
		l.base.InfoContext(ctx, "gorm: "+fmt.Sprintf(msg, args...))
	}
}

func (l *queryLogger) Warn(ctx context.Context, msg string, args ...any) {
	if l.level >= gormlogger.Warn {
		l.base.WarnContext(ctx, "gorm: "+fmt.Sprintf(msg, args...))
	}
}

func (l *queryLogger) Error(ctx context.Context, msg string, args ...any) {
	if l.level >= gormlogger.Error {
		l.base.ErrorContext(ctx, "gorm: "+fmt.Sprintf(msg, args...))
	}
}

// Trace logs one executed statement. The fc callback renders the SQL and is
// only invoked when something will actually be logged.
func (l *queryLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && l.level >= gormlogger.Error:
		sql, rows := fc()
		l.base.ErrorContext(ctx, "query failed",
			slog.String("error", err.Error()),
			slog.Duration("elapsed", elapsed),
			slog.Int64("rows", rows),
			slog.String("sql", sql),
		)
	case elapsed > l.slowAfter && l.level >= gormlogger.Warn:
		sql, rows := fc()
		l.base.WarnContext(ctx, "slow query",
			slog.Duration("elapsed", elapsed),
			slog.Duration("threshold", l.slowAfter),
			slog.Int64("rows", rows),
			slog.String("sql", sql),
		)
	case l.level >= gormlogger.Info:
		sql, rows := fc()
		l.base.InfoContext(ctx, "query",
			slog.Duration("elapsed", elapsed),
			slog.Int64("rows", rows),
			slog.String("sql", sql),
		)
	}
}
