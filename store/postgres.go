package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DefaultTimeout bounds each Postgres round trip.
const DefaultTimeout = 5 * time.Second

const (
	createTableSQL = `CREATE TABLE IF NOT EXISTS sip_kv (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`
	getSQL    = `SELECT value FROM sip_kv WHERE key = $1`
	setSQL    = `INSERT INTO sip_kv (key, value) VALUES ($1, $2) ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`
	deleteSQL = `DELETE FROM sip_kv WHERE key = $1`
)

// querier is the subset of pgxpool.Pool used by Postgres.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Postgres is a store in a single PostgreSQL table.
type Postgres struct {
	db      querier
	pool    *pgxpool.Pool
	Timeout time.Duration
}

// OpenPostgres connects to 'databaseURL' and creates the table if needed.
func OpenPostgres(ctx context.Context, databaseURL string) (*Postgres, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("cannot connect to postgres: %w", err)
	}
	p := &Postgres{db: pool, pool: pool, Timeout: DefaultTimeout}
	if err := p.init(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return p, nil
}

func (p *Postgres) init(ctx context.Context) error {
	if _, err := p.db.Exec(ctx, createTableSQL); err != nil {
		return fmt.Errorf("cannot create table sip_kv: %w", err)
	}
	return nil
}

// Close releases the connection pool.
func (p *Postgres) Close() {
	if p.pool != nil {
		p.pool.Close()
	}
}

func (p *Postgres) withTimeout() (context.Context, context.CancelFunc) {
	timeout := p.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return context.WithTimeout(context.Background(), timeout)
}

func (p *Postgres) Get(key string) (string, bool, error) {
	ctx, cancel := p.withTimeout()
	defer cancel()
	var value string
	err := p.db.QueryRow(ctx, getSQL, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("cannot read key %q: %w", key, err)
	}
	return value, true, nil
}

func (p *Postgres) Set(key, value string) error {
	ctx, cancel := p.withTimeout()
	defer cancel()
	if _, err := p.db.Exec(ctx, setSQL, key, value); err != nil {
		return fmt.Errorf("cannot write key %q: %w", key, err)
	}
	return nil
}

func (p *Postgres) Delete(key string) error {
	ctx, cancel := p.withTimeout()
	defer cancel()
	if _, err := p.db.Exec(ctx, deleteSQL, key); err != nil {
		return fmt.Errorf("cannot delete key %q: %w", key, err)
	}
	return nil
}
