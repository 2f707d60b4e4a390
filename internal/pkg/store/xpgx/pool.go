// Package xpgx is a thin squirrel-aware layer over a pgx connection
// pool: queries come in as sq.Sqlizer, rows come out scanned by db tag.
package xpgx

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Pool struct {
	db *pgxpool.Pool
}

func New(ctx context.Context, dsn string) (*Pool, error) {
	db, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}
	return &Pool{db: db}, nil
}

func (p *Pool) Ping(ctx context.Context) error {
	return p.db.Ping(ctx)
}

func (p *Pool) Close() {
	p.db.Close()
}

func (p *Pool) Execx(ctx context.Context, query sq.Sqlizer) (pgconn.CommandTag, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return pgconn.CommandTag{}, err
	}
	return p.db.Exec(ctx, sql, args...)
}

func (p *Pool) queryx(ctx context.Context, query sq.Sqlizer) (pgx.Rows, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}
	return p.db.Query(ctx, sql, args...)
}

// Getx scans the single row of query into a T. Returns pgx.ErrNoRows
// when the result set is empty.
func Getx[T any](ctx context.Context, p *Pool, query sq.Sqlizer) (*T, error) {
	rows, err := p.queryx(ctx, query)
	if err != nil {
		return nil, err
	}
	return pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByNameLax[T])
}

// Selectx scans all rows of query into a slice of T.
func Selectx[T any](ctx context.Context, p *Pool, query sq.Sqlizer) ([]T, error) {
	rows, err := p.queryx(ctx, query)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByNameLax[T])
}

// Scalarx scans a single-column single-row result, e.g. an aggregate.
func Scalarx[T any](ctx context.Context, p *Pool, query sq.Sqlizer) (T, error) {
	rows, err := p.queryx(ctx, query)
	if err != nil {
		var zero T
		return zero, err
	}
	return pgx.CollectOneRow(rows, pgx.RowTo[T])
}
