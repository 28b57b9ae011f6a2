package repository

import (
	"context"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/yakoovad/orgstructure/internal/db"
	"sort"
	"time"
)

// Table names a relation and its primary key column.
type Table struct {
	Name string
	Key  string
}

// Repository stores rows of one table scanned into E by column name.
type Repository[E any] interface {
	Create(ctx context.Context, fields map[string]any) (*E, error)
	Get(ctx context.Context, key string) (*E, error)
	Exists(ctx context.Context, key string) (bool, error)
	// List returns the rows matching every column = value pair of filter, ordered by key.
	List(ctx context.Context, filter map[string]any) ([]*E, error)
	FindFirst(ctx context.Context, filter map[string]any) (*E, error)
	Patch(ctx context.Context, key string, fields map[string]any) (*E, error)
	Delete(ctx context.Context, key string) error
}

type pgxRepository[E any] struct {
	pool  *pgxpool.Pool
	table Table
}

func NewPgxRepository[E any](pool *pgxpool.Pool, table Table) Repository[E] {
	return &pgxRepository[E]{pool: pool, table: table}
}

// query is any built bob statement.
type query interface {
	Build(ctx context.Context) (string, []any, error)
}

func sortedColumns(fields map[string]any) []string {
	cols := make([]string, 0, len(fields))
	for c := range fields {
		cols = append(cols, c)
	}
	sort.Strings(cols)
	return cols
}

func (r *pgxRepository[E]) where(filter map[string]any) []bob.Mod[*dialect.SelectQuery] {
	mods := make([]bob.Mod[*dialect.SelectQuery], 0, len(filter))
	for _, c := range sortedColumns(filter) {
		mods = append(mods, sm.Where(psql.Quote(c).EQ(psql.Arg(filter[c]))))
	}
	return mods
}

func (r *pgxRepository[E]) queryAll(ctx context.Context, q query) ([]*E, error) {
	e := db.GetPgxExecutorFromContext(ctx, r.pool)

	sql, args, err := q.Build(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := e.Query(ctx, sql, args...)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	items, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByNameLax[E])
	if err != nil {
		return nil, mapError(err)
	}
	return items, nil
}

func (r *pgxRepository[E]) queryOne(ctx context.Context, q query) (*E, error) {
	e := db.GetPgxExecutorFromContext(ctx, r.pool)

	sql, args, err := q.Build(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := e.Query(ctx, sql, args...)
	if err != nil {
		return nil, mapError(err)
	}
	defer rows.Close()

	item, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByNameLax[E])
	if err != nil {
		return nil, mapError(err)
	}
	return item, nil
}

func (r *pgxRepository[E]) Create(ctx context.Context, fields map[string]any) (*E, error) {
	cols := sortedColumns(fields)
	values := make([]bob.Expression, 0, len(cols))
	for _, c := range cols {
		values = append(values, psql.Arg(fields[c]))
	}

	q := psql.Insert(
		im.Into(r.table.Name, cols...),
		im.Values(values...),
		im.Returning("*"),
	)
	return r.queryOne(ctx, q)
}

func (r *pgxRepository[E]) Get(ctx context.Context, key string) (*E, error) {
	q := psql.Select(
		sm.Columns("*"),
		sm.From(r.table.Name),
		sm.Where(psql.Quote(r.table.Key).EQ(psql.Arg(key))),
	)
	return r.queryOne(ctx, q)
}

func (r *pgxRepository[E]) Exists(ctx context.Context, key string) (bool, error) {
	e := db.GetPgxExecutorFromContext(ctx, r.pool)

	q := psql.Select(
		sm.Columns(psql.Quote(r.table.Key)),
		sm.From(r.table.Name),
		sm.Where(psql.Quote(r.table.Key).EQ(psql.Arg(key))),
	)

	sql, args, err := q.Build(ctx)
	if err != nil {
		return false, err
	}

	var found string
	if err = e.QueryRow(ctx, sql, args...).Scan(&found); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, mapError(err)
	}
	return true, nil
}

func (r *pgxRepository[E]) List(ctx context.Context, filter map[string]any) ([]*E, error) {
	q := psql.Select(
		sm.Columns("*"),
		sm.From(r.table.Name),
		sm.OrderBy(psql.Quote(r.table.Key)),
	)
	q.Apply(r.where(filter)...)
	return r.queryAll(ctx, q)
}

func (r *pgxRepository[E]) FindFirst(ctx context.Context, filter map[string]any) (*E, error) {
	q := psql.Select(
		sm.Columns("*"),
		sm.From(r.table.Name),
		sm.OrderBy(psql.Quote(r.table.Key)),
		sm.Limit(1),
	)
	q.Apply(r.where(filter)...)
	return r.queryOne(ctx, q)
}

// Patch updates the given columns and touches updated_at.
func (r *pgxRepository[E]) Patch(ctx context.Context, key string, fields map[string]any) (*E, error) {
	sets := make([]bob.Mod[*dialect.UpdateQuery], 0, len(fields)+1)
	for _, c := range sortedColumns(fields) {
		sets = append(sets, um.SetCol(c).ToArg(fields[c]))
	}
	sets = append(sets, um.SetCol("updated_at").ToArg(time.Now().UTC()))

	q := psql.Update(
		um.Table(r.table.Name),
		um.Where(psql.Quote(r.table.Key).EQ(psql.Arg(key))),
		um.Returning("*"),
	)
	q.Apply(sets...)

	return r.queryOne(ctx, q)
}

func (r *pgxRepository[E]) Delete(ctx context.Context, key string) error {
	e := db.GetPgxExecutorFromContext(ctx, r.pool)

	q := psql.Delete(
		dm.From(r.table.Name),
		dm.Where(psql.Quote(r.table.Key).EQ(psql.Arg(key))),
	)

	sql, args, err := q.Build(ctx)
	if err != nil {
		return err
	}

	tag, err := e.Exec(ctx, sql, args...)
	if err != nil {
		return mapError(err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
