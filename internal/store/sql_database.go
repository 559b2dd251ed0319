package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-bug-triage/internal/config"
	"github.com/MKhiriev/go-bug-triage/internal/logger"
	"github.com/MKhiriev/go-bug-triage/migrations"
	sq "github.com/Masterminds/squirrel"
	"github.com/sethvargo/go-retry"
)

// DB wraps the shared connection pool together with everything that depends
// on the driver: the goose dialect, the squirrel placeholder format and the
// error classifier.
type DB struct {
	*sql.DB
	dialect            string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnection opens the database selected by cfg.DSN and pings it,
// retrying transient failures up to cfg.ConnectAttempts times.
//
// DSNs starting with postgres:// or postgresql://, or containing "host=",
// use the pgx driver; anything else is treated as a SQLite file.
func NewConnection(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	var (
		db  *DB
		err error
	)

	if isPostgresDSN(cfg.DSN) {
		db, err = openPostgres(cfg.DSN, log)
	} else {
		db, err = openSQLite(cfg.DSN, log)
	}
	if err != nil {
		return nil, err
	}

	if err = db.pingWithRetry(ctx, cfg.ConnectAttempts, cfg.ConnectInterval); err != nil {
		log.Err(err).Str("func", "NewConnection").Str("dialect", db.dialect).Msg("error connecting database (ping)")
		_ = db.Close()
		return nil, err
	}
	log.Info().Str("func", "NewConnection").Str("dialect", db.dialect).Msg("connected to database successfully")

	return db, nil
}

func newDB(conn *sql.DB, dialect string, log *logger.Logger) *DB {
	var placeholder sq.PlaceholderFormat = sq.Question
	var classifier ErrorClassificator = NewSQLiteErrorClassifier()
	if dialect == migrations.DialectPostgres {
		placeholder = sq.Dollar
		classifier = NewPostgresErrorClassifier()
	}

	return &DB{
		DB:                 conn,
		dialect:            dialect,
		builder:            sq.StatementBuilder.PlaceholderFormat(placeholder),
		errorClassificator: classifier,
		logger:             log,
	}
}

// Migrate applies pending schema migrations for the connected dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// Dialect returns the goose dialect name of the connection.
func (db *DB) Dialect() string {
	return db.dialect
}

func (db *DB) pingWithRetry(ctx context.Context, attempts int, interval time.Duration) error {
	if attempts < 1 {
		attempts = 1
	}
	if interval <= 0 {
		interval = time.Second
	}

	backoff := retry.WithMaxRetries(uint64(attempts-1), retry.NewConstant(interval))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := db.PingContext(ctx)
		if err == nil {
			return nil
		}

		if db.retryableOnConnect(err) {
			db.logger.Warn().Err(err).Str("func", "*DB.pingWithRetry").Msg("database is not ready, retrying")
			return retry.RetryableError(err)
		}
		return err
	})
}

// retryableOnConnect treats any error the server did not answer explicitly
// (refused connection, DNS, timeouts) as transient.
func (db *DB) retryableOnConnect(err error) bool {
	if !isDriverError(err) {
		return true
	}
	return db.errorClassificator.Classify(err) == Retryable
}

func isPostgresDSN(dsn string) bool {
	lower := strings.ToLower(strings.TrimSpace(dsn))
	return strings.HasPrefix(lower, "postgres://") ||
		strings.HasPrefix(lower, "postgresql://") ||
		strings.Contains(lower, "host=")
}

// withTx runs fn inside a transaction, committing on success.
func (db *DB) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}

	if err = fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}
	return nil
}
