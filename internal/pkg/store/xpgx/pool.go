package xpgx

import (
	"context"
	"fmt"
	sq "github.com/Masterminds/squirrel"
	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ougirez/autocatalog/internal/pkg/logger"
)

// Pool runs squirrel-built statements.
type Pool interface {
	Execx(ctx context.Context, query sq.Sqlizer) (pgconn.CommandTag, error)
	Queryx(ctx context.Context, query sq.Sqlizer) (pgx.Rows, error)
	Selectx(ctx context.Context, dest interface{}, query sq.Sqlizer) error
	Getx(ctx context.Context, dest interface{}, query sq.Sqlizer) error
	Close()
}

type pool struct {
	pool *pgxpool.Pool
}

// NewPool opens a pgx pool and pings it, retrying with exponential backoff while the
// database comes up.
func NewPool(ctx context.Context, dsn string, retries uint64) (Pool, error) {
	p, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("pgxpool.New: %w", err)
	}

	attempt := 0
	err = backoff.Retry(
		func() error {
			attempt++
			pingErr := p.Ping(ctx)
			if pingErr != nil {
				logger.Warnf(ctx, "database ping attempt %d failed: %s", attempt, pingErr.Error())
			}
			return pingErr
		},
		backoff.WithContext(
			backoff.WithMaxRetries(backoff.NewExponentialBackOff(), retries),
			ctx,
		),
	)
	if err != nil {
		p.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}

	return &pool{pool: p}, nil
}

func (p *pool) Execx(ctx context.Context, query sq.Sqlizer) (pgconn.CommandTag, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return pgconn.CommandTag{}, fmt.Errorf("query.ToSql: %w", err)
	}
	return p.pool.Exec(ctx, sql, args...)
}

func (p *pool) Queryx(ctx context.Context, query sq.Sqlizer) (pgx.Rows, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("query.ToSql: %w", err)
	}
	return p.pool.Query(ctx, sql, args...)
}

func (p *pool) Close() {
	p.pool.Close()
}

// Selectx scans every row into dest, a pointer to a slice of structs or struct pointers.
func (p *pool) Selectx(ctx context.Context, dest interface{}, query sq.Sqlizer) error {
	rows, err := p.Queryx(ctx, query)
	if err != nil {
		return err
	}
	return ScanAll(rows, dest)
}

// Getx scans the first row into dest, a pointer to a struct; no rows yields pgx.ErrNoRows.
func (p *pool) Getx(ctx context.Context, dest interface{}, query sq.Sqlizer) error {
	rows, err := p.Queryx(ctx, query)
	if err != nil {
		return err
	}
	return ScanOne(rows, dest)
}
