package prefstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Postgres stores one preference row per subject (a user, device, or
// session identifier). Expected schema:
//
//	CREATE TABLE locale_preferences (
//	    subject    TEXT PRIMARY KEY,
//	    locale     TEXT NOT NULL,
//	    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
//	);
type Postgres struct {
	pool      *pgxpool.Pool
	subject   string
	readSQL   string
	writeSQL  string
	deleteSQL string
}

// PostgresOption configures the Postgres store.
type PostgresOption func(*postgresConfig)

type postgresConfig struct {
	table string
}

// WithPostgresTable overrides the table name. The name is interpolated
// into SQL and must be a trusted identifier, never user input.
// Default: "locale_preferences".
func WithPostgresTable(table string) PostgresOption {
	return func(cfg *postgresConfig) {
		if table != "" {
			cfg.table = table
		}
	}
}

// NewPostgres creates a Postgres-backed preference store scoped to the
// given subject.
func NewPostgres(pool *pgxpool.Pool, subject string, opts ...PostgresOption) *Postgres {
	cfg := &postgresConfig{table: "locale_preferences"}
	for _, opt := range opts {
		opt(cfg)
	}

	return &Postgres{
		pool:    pool,
		subject: subject,
		readSQL: fmt.Sprintf(
			"SELECT locale FROM %s WHERE subject = $1", cfg.table),
		writeSQL: fmt.Sprintf(
			"INSERT INTO %s (subject, locale, updated_at) VALUES ($1, $2, now()) "+
				"ON CONFLICT (subject) DO UPDATE SET locale = EXCLUDED.locale, updated_at = now()", cfg.table),
		deleteSQL: fmt.Sprintf(
			"DELETE FROM %s WHERE subject = $1", cfg.table),
	}
}

// Read returns the stored code or ErrNotFound.
func (p *Postgres) Read(ctx context.Context) (string, error) {
	var code string
	err := p.pool.QueryRow(ctx, p.readSQL, p.subject).Scan(&code)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", err
	}
	return code, nil
}

// Write upserts the preference row for the subject.
func (p *Postgres) Write(ctx context.Context, code string) error {
	_, err := p.pool.Exec(ctx, p.writeSQL, p.subject, code)
	return err
}

// Clear deletes the preference row for the subject.
func (p *Postgres) Clear(ctx context.Context) error {
	_, err := p.pool.Exec(ctx, p.deleteSQL, p.subject)
	return err
}

var _ Store = (*Postgres)(nil)
