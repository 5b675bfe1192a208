package postgres

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"go-portfolio/internal/domain"
	"go-portfolio/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgreSQL error codes
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// table describes how one entity maps onto its table. columns lists the
// writable columns (no id or timestamps) in the order values returns them.
type table[T any] struct {
	name    string
	noun    string
	columns []string
	values  func(*T) []any
}

func (t table[T]) quotedColumns() []string {
	out := make([]string, len(t.columns))
	for i, c := range t.columns {
		out[i] = pgx.Identifier{c}.Sanitize()
	}
	return out
}

func (t table[T]) selectSQL() string {
	return fmt.Sprintf(`SELECT * FROM %s`, t.name)
}

func (t table[T]) insertSQL() string {
	placeholders := make([]string, len(t.columns))
	for i := range t.columns {
		placeholders[i] = "$" + strconv.Itoa(i+1)
	}
	return fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s) RETURNING *`,
		t.name, strings.Join(t.quotedColumns(), ", "), strings.Join(placeholders, ", "))
}

func (t table[T]) updateSQL() string {
	cols := t.quotedColumns()
	sets := make([]string, len(cols))
	for i, c := range cols {
		sets[i] = fmt.Sprintf("%s = $%d", c, i+1)
	}
	return fmt.Sprintf(`UPDATE %s SET %s, updated_at = NOW() WHERE id = $%d RETURNING *`,
		t.name, strings.Join(sets, ", "), len(cols)+1)
}

func (t table[T]) notFound() *apperror.AppError {
	return apperror.New(http.StatusNotFound, t.noun+" not found", domain.ErrNotFound)
}

type contentRepo[T any, P domain.Record[T]] struct {
	db    *pgxpool.Pool
	table table[T]
}

func newContentRepo[T any, P domain.Record[T]](db *pgxpool.Pool, t table[T]) *contentRepo[T, P] {
	return &contentRepo[T, P]{db: db, table: t}
}

func (r *contentRepo[T, P]) List(ctx context.Context) ([]T, error) {
	return r.query(ctx, r.table.selectSQL()+` ORDER BY "order", id`)
}

func (r *contentRepo[T, P]) query(ctx context.Context, sql string, args ...any) ([]T, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[T])
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func (r *contentRepo[T, P]) GetByID(ctx context.Context, id int64) (*T, error) {
	rows, err := r.db.Query(ctx, r.table.selectSQL()+` WHERE id = $1`, id)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	item, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[T])
	if err != nil {
		return nil, r.mapError(err)
	}
	return item, nil
}

func (r *contentRepo[T, P]) Create(ctx context.Context, item *T) error {
	return r.writeReturning(ctx, item, r.table.insertSQL(), r.table.values(item)...)
}

func (r *contentRepo[T, P]) Update(ctx context.Context, item *T) error {
	args := append(r.table.values(item), P(item).GetID())
	return r.writeReturning(ctx, item, r.table.updateSQL(), args...)
}

// writeReturning runs an INSERT/UPDATE ... RETURNING * and copies the
// stored row, with its id and timestamps, back into item.
func (r *contentRepo[T, P]) writeReturning(ctx context.Context, item *T, sql string, args ...any) error {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return r.mapError(err)
	}
	stored, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[T])
	if err != nil {
		return r.mapError(err)
	}
	*item = *stored
	return nil
}

func (r *contentRepo[T, P]) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, r.table.name), id)
	if err != nil {
		return apperror.Internal(err)
	}
	if tag.RowsAffected() == 0 {
		return r.table.notFound()
	}
	return nil
}

func (r *contentRepo[T, P]) mapError(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return r.table.notFound()
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return apperror.Conflict(r.table.noun + " already exists")
		case pgForeignKeyViolation:
			return apperror.New(http.StatusNotFound, "Experience not found", domain.ErrNotFound)
		}
	}
	return apperror.Internal(err)
}
