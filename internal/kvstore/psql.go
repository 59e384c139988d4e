package kvstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/gymroutines/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var _ Store = (*PsqlStore)(nil)

const createTableSQL = `
CREATE TABLE IF NOT EXISTS kv_blob
(
    key        VARCHAR PRIMARY KEY,
    value      BYTEA     NOT NULL,
    updated_at TIMESTAMP WITHOUT TIME ZONE NOT NULL
);`

type PsqlStore struct {
	db *pgxpool.Pool
}

func NewPsqlStore(db *pgxpool.Pool) *PsqlStore {
	return &PsqlStore{
		db: db,
	}
}

// EnsureSchema creates the blob table if missing.
func (s *PsqlStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.Exec(ctx, createTableSQL); err != nil {
		return fmt.Errorf("create kv_blob table: %w", err)
	}
	return nil
}

func (s *PsqlStore) Get(ctx context.Context, key string) (_ []byte, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "kvstore.psql.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("key", key))

	var value []byte
	err = s.db.QueryRow(
		ctx,
		`SELECT value FROM kv_blob WHERE key = $1;`,
		key,
	).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrKeyNotFound
		}
		return nil, fmt.Errorf("select blob [%s]: %w", key, err)
	}
	return value, nil
}

func (s *PsqlStore) Set(ctx context.Context, key string, value []byte) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "kvstore.psql.set")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("key", key))
	span.SetAttributes(attribute.Int("size", len(value)))

	_, err = s.db.Exec(
		ctx,
		`INSERT INTO kv_blob (key, value, updated_at) VALUES ($1, $2, $3)
			ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at;`,
		key, value, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("upsert blob [%s]: %w", key, err)
	}
	return nil
}
