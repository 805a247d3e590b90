package docstore

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"hash/fnv"
	"log/slog"
	"time"

	"restaurant-booking/internal/pkg/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"

	schemaSQL = `CREATE TABLE IF NOT EXISTS documents (
	name       text PRIMARY KEY,
	body       jsonb NOT NULL,
	updated_at timestamptz NOT NULL DEFAULT now()
)`
	readSQL  = `SELECT body FROM documents WHERE name = $1`
	writeSQL = `INSERT INTO documents (name, body, updated_at) VALUES ($1, $2, now())
ON CONFLICT (name) DO UPDATE SET body = EXCLUDED.body, updated_at = EXCLUDED.updated_at`
	lockSQL = `SELECT pg_advisory_xact_lock($1)`
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresBackend keeps every document as one row of the documents table.
type PostgresBackend struct {
	pool    *pgxpool.Pool
	lockKey int64
}

func NewPostgresBackend(pool *pgxpool.Pool) *PostgresBackend {
	h := fnv.New64a()
	_, _ = h.Write([]byte("restaurant-booking/docstore"))
	return &PostgresBackend{
		pool:    pool,
		lockKey: int64(h.Sum64() >> 1), // #nosec G115 -- shifted into int64 range
	}
}

func (p *PostgresBackend) Name() string { return "postgres" }

func (p *PostgresBackend) EnsureSchema(ctx context.Context) error {
	_, err := p.pool.Exec(ctx, schemaSQL)
	return err
}

func (p *PostgresBackend) Read(ctx context.Context, name string) ([]byte, error) {
	return readDocument(ctx, p.pool, name)
}

func (p *PostgresBackend) Write(ctx context.Context, name string, data []byte) error {
	return writeDocument(ctx, p.pool, name, data)
}

// InTx takes a transaction-scoped advisory lock so writers in other processes queue
// behind this one. Serialization failures and deadlocks are retried with backoff.
func (p *PostgresBackend) InTx(ctx context.Context, fn func(ctx context.Context, tx Backend) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := p.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		err = p.runLocked(ctx, pgxTx, fn)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries && isRetryableError(err) {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func (p *PostgresBackend) runLocked(ctx context.Context, tx pgx.Tx, fn func(ctx context.Context, tx Backend) error) error {
	if _, err := tx.Exec(ctx, lockSQL, p.lockKey); err != nil {
		return err
	}
	return fn(ctx, &pgTxBackend{tx: tx})
}

type pgTxBackend struct {
	tx pgx.Tx
}

func (b *pgTxBackend) Name() string { return "postgres-tx" }

func (b *pgTxBackend) Read(ctx context.Context, name string) ([]byte, error) {
	return readDocument(ctx, b.tx, name)
}

func (b *pgTxBackend) Write(ctx context.Context, name string, data []byte) error {
	return writeDocument(ctx, b.tx, name, data)
}

func readDocument(ctx context.Context, q querier, name string) ([]byte, error) {
	var body []byte
	err := q.QueryRow(ctx, readSQL, name).Scan(&body)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrDocumentMissing
	}
	return body, err
}

func writeDocument(ctx context.Context, q querier, name string, data []byte) error {
	_, err := q.Exec(ctx, writeSQL, name, data)
	return err
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- masked to a non-negative int64
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}
