package database

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"backstage-api/pkg/utils"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/tracelog"
	"go.uber.org/zap"
)

// PgxIface is the slice of the pool API repositories depend on.
type PgxIface interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

// DB wraps the shared connection pool.
type DB struct {
	pool *pgxpool.Pool
}

func (db *DB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return db.pool.Query(ctx, sql, args...)
}

func (db *DB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return db.pool.QueryRow(ctx, sql, args...)
}

func (db *DB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return db.pool.Exec(ctx, sql, args...)
}

func (db *DB) Begin(ctx context.Context) (pgx.Tx, error) {
	return db.pool.Begin(ctx)
}

func (db *DB) Ping(ctx context.Context) error {
	return db.pool.Ping(ctx)
}

func (db *DB) Close() {
	db.pool.Close()
}

// Stat exposes pool counters for readiness reporting.
func (db *DB) Stat() *pgxpool.Stat {
	return db.pool.Stat()
}

// PoolConfig turns the application settings into a pgxpool configuration.
func PoolConfig(config utils.DatabaseConfig, log *zap.Logger, debug bool) (*pgxpool.Config, error) {
	poolConfig, err := pgxpool.ParseConfig(config.URL)
	if err != nil {
		return nil, fmt.Errorf("parse pool config: %w", err)
	}

	poolConfig.MaxConns = config.MaxConns()
	poolConfig.MinConns = config.PoolSize
	poolConfig.MaxConnLifetime = 30 * time.Minute
	poolConfig.MaxConnIdleTime = 5 * time.Minute
	poolConfig.HealthCheckPeriod = 1 * time.Minute
	poolConfig.ConnConfig.ConnectTimeout = config.ConnectTimeout

	if config.StatementTimeout > 0 {
		poolConfig.ConnConfig.RuntimeParams["statement_timeout"] = strconv.FormatInt(config.StatementTimeout.Milliseconds(), 10)
	}

	if debug && log != nil {
		poolConfig.ConnConfig.Tracer = &tracelog.TraceLog{
			Logger:   NewPgxLogger(log),
			LogLevel: tracelog.LogLevelDebug,
		}
	}

	return poolConfig, nil
}

// InitDB creates the pool and verifies the database is reachable.
func InitDB(ctx context.Context, config utils.DatabaseConfig, log *zap.Logger, debug bool) (*DB, error) {
	poolConfig, err := PoolConfig(config, log, debug)
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, config.ConnectTimeout)
	defer cancel()

	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database failed: %w", err)
	}

	return &DB{pool: pool}, nil
}

// NewPgxLogger routes pgx trace output into zap.
func NewPgxLogger(log *zap.Logger) tracelog.Logger {
	sqlLog := log.With(zap.String("component", "pgx")).WithOptions(zap.AddCallerSkip(2))

	return tracelog.LoggerFunc(func(ctx context.Context, level tracelog.LogLevel, msg string, data map[string]any) {
		fields := make([]zap.Field, 0, len(data))
		for k, v := range data {
			fields = append(fields, zap.Any(k, v))
		}

		switch level {
		case tracelog.LogLevelTrace, tracelog.LogLevelDebug:
			sqlLog.Debug(msg, fields...)
		case tracelog.LogLevelInfo:
			sqlLog.Info(msg, fields...)
		case tracelog.LogLevelWarn:
			sqlLog.Warn(msg, fields...)
		default:
			sqlLog.Error(msg, fields...)
		}
	})
}
