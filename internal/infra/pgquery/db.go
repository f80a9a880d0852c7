// Package pgquery holds the typed SQL the PostgreSQL backend runs. Statements
// are built with goqu's postgres dialect in prepared mode and executed over
// whatever DBTX the caller passes in: the pool or an open transaction.
package pgquery

import (
	"context"

	"car-rental-core/internal/pkg/errs"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const dialectPostgres = "postgres"

var ErrBuildingQueryFailed = errs.New("building query failed")

type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Queries struct {
	dialect goqu.DialectWrapper
}

func New() *Queries {
	return &Queries{dialect: goqu.Dialect(dialectPostgres)}
}

type sqlBuilder interface {
	ToSQL() (string, []any, error)
}

func build(ds sqlBuilder) (string, []any, error) {
	query, args, err := ds.ToSQL()
	if err != nil {
		return "", nil, errs.Wrap(ErrBuildingQueryFailed, err.Error())
	}
	return query, args, nil
}
