package postgres

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go-portfolio/internal/domain"
	"go-portfolio/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// singletonID is the fixed primary key of the only row of a singleton
// table.
const singletonID = 1

type singletonRepo[T any] struct {
	db    *pgxpool.Pool
	table table[T]
}

func NewAboutRepository(db *pgxpool.Pool) domain.SingletonRepository[domain.About] {
	return &singletonRepo[domain.About]{db: db, table: aboutTable}
}

func NewContactRepository(db *pgxpool.Pool) domain.SingletonRepository[domain.Contact] {
	return &singletonRepo[domain.Contact]{db: db, table: contactTable}
}

func (r *singletonRepo[T]) Get(ctx context.Context) (*T, error) {
	rows, err := r.db.Query(ctx, r.table.selectSQL()+` WHERE id = $1`, singletonID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	item, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[T])
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return item, nil
}

func (r *singletonRepo[T]) Upsert(ctx context.Context, item *T) error {
	rows, err := r.db.Query(ctx, r.upsertSQL(), append([]any{singletonID}, r.table.values(item)...)...)
	if err != nil {
		return apperror.Internal(err)
	}
	stored, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[T])
	if err != nil {
		return apperror.Internal(err)
	}
	*item = *stored
	return nil
}

func (r *singletonRepo[T]) upsertSQL() string {
	cols := r.table.quotedColumns()
	placeholders := make([]string, len(cols))
	updates := make([]string, len(cols))
	for i, c := range cols {
		placeholders[i] = "$" + strconv.Itoa(i+2)
		updates[i] = fmt.Sprintf("%s = EXCLUDED.%s", c, c)
	}
	return fmt.Sprintf(
		`INSERT INTO %s (id, %s) VALUES ($1, %s) ON CONFLICT (id) DO UPDATE SET %s, updated_at = NOW() RETURNING *`,
		r.table.name, strings.Join(cols, ", "), strings.Join(placeholders, ", "), strings.Join(updates, ", "))
}
