package repository

import (
	"context"
	"log/slog"

	"car-rental-core/internal/infra"
	"car-rental-core/internal/infra/pgquery"
)

type CarLockQueries interface {
	LockCar(ctx context.Context, db pgquery.DBTX, carID int64) error
}

// CarLocker serialises availability checks per car with a transaction-scoped
// advisory lock. It must run inside a transaction.
type CarLocker struct {
	queries CarLockQueries
	db      pgquery.DBTX
}

func NewCarLocker(queries CarLockQueries, db pgquery.DBTX) *CarLocker {
	return &CarLocker{
		queries: queries,
		db:      db,
	}
}

func (l *CarLocker) LockCar(ctx context.Context, carID int64) error {
	if err := l.queries.LockCar(ctx, l.db, carID); err != nil {
		return infra.ClassifyErr(slog.Default(), "failed to lock car", err)
	}
	return nil
}
