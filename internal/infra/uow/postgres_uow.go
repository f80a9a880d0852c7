package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"car-rental-core/internal/domain/offer"
	"car-rental-core/internal/domain/rental"
	"car-rental-core/internal/domain/resource"
	"car-rental-core/internal/infra"
	"car-rental-core/internal/infra/pgquery"
	"car-rental-core/internal/infra/readstore"
	"car-rental-core/internal/infra/repository"
	"car-rental-core/internal/pkg/errs"
	"car-rental-core/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

const (
	defaultMaxRetries = 3
	defaultRetryBase  = 100 * time.Millisecond
)

type PostgresUoW struct {
	pool *pgxpool.Pool
	q    *pgquery.Queries
}

func NewPostgresUoW(pool *pgxpool.Pool, q *pgquery.Queries) *PostgresUoW {
	return &PostgresUoW{
		pool: pool,
		q:    q,
	}
}

// ReadCommitted prevents dirty reads while allowing concurrent writes.
// Check-then-write sequences rely on the per-car advisory lock instead.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

// Read-only transaction for consistent multi-table snapshots
func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, reads shared.CommandReads) error) error {
	return u.runReadOnlyTx(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly}, fn)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return newCommandReads(u.q, u.pool)
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	for attempt := 0; attempt <= defaultMaxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{
			dbtx: pgxTx,
			q:    u.q,
		}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, defaultMaxRetries) {
			if attempt == defaultMaxRetries && isRetryableError(err) {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, defaultRetryBase)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func (u *PostgresUoW) runReadOnlyTx(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, reads shared.CommandReads) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, options)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	defer func() {
		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("failed to rollback read-only transaction", "error", rollbackErr.Error())
			}
		}
	}()

	if err := fn(ctx, newCommandReads(u.q, pgxTx)); err != nil {
		return err
	}

	return pgxTx.Commit(ctx)
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	// Mask the sign bit so the conversion stays positive.
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- masked above
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case infra.CodeSerializationFailure, infra.CodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx pgquery.DBTX
	q    *pgquery.Queries

	// Lazy-initialized repositories
	offerRepo    shared.OfferRepository
	rentalRepo   shared.RentalRepository
	returnRepo   shared.ReturnRepository
	locker       shared.ResourceLocker
	commandReads shared.CommandReads
}

func (t *pgTx) Offers() shared.OfferRepository {
	if t.offerRepo == nil {
		t.offerRepo = repository.NewOfferRepository(t.q, t.dbtx)
	}
	return t.offerRepo
}

func (t *pgTx) Rentals() shared.RentalRepository {
	if t.rentalRepo == nil {
		t.rentalRepo = repository.NewRentalRepository(t.q, t.dbtx)
	}
	return t.rentalRepo
}

func (t *pgTx) Returns() shared.ReturnRepository {
	if t.returnRepo == nil {
		t.returnRepo = repository.NewReturnRepository(t.q, t.dbtx)
	}
	return t.returnRepo
}

func (t *pgTx) Locks() shared.ResourceLocker {
	if t.locker == nil {
		t.locker = repository.NewCarLocker(t.q, t.dbtx)
	}
	return t.locker
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = newCommandReads(t.q, t.dbtx)
	}
	return t.commandReads
}

// commandReads stitches the readstores into the single read surface the
// usecases see. Every store shares the same DBTX.
type commandReads struct {
	reference *readstore.ReferenceReadStore
	offers    *readstore.OfferReadStore
	rentals   *readstore.RentalReadStore
}

func newCommandReads(q *pgquery.Queries, db pgquery.DBTX) *commandReads {
	return &commandReads{
		reference: readstore.NewReferenceReadStore(q, db),
		offers:    readstore.NewOfferReadStore(q, db),
		rentals:   readstore.NewRentalReadStore(q, db),
	}
}

func (r *commandReads) CarByID(ctx context.Context, id int64) (*resource.Car, error) {
	return r.reference.CarByID(ctx, id)
}

func (r *commandReads) CustomerByID(ctx context.Context, id int64) (*shared.CustomerSnapshot, error) {
	return r.reference.CustomerByID(ctx, id)
}

func (r *commandReads) InsuranceByID(ctx context.Context, id int64) (*shared.InsuranceSnapshot, error) {
	return r.reference.InsuranceByID(ctx, id)
}

func (r *commandReads) OfferByID(ctx context.Context, id int64) (*offer.Offer, error) {
	return r.offers.OfferByID(ctx, id)
}

func (r *commandReads) OfferByCriteria(ctx context.Context, c offer.Criteria) (*offer.Offer, error) {
	return r.offers.OfferByCriteria(ctx, c)
}

func (r *commandReads) RentalByID(ctx context.Context, id int64) (*rental.Rental, error) {
	return r.rentals.RentalByID(ctx, id)
}

func (r *commandReads) RentalByOfferID(ctx context.Context, offerID int64) (*rental.Rental, error) {
	return r.rentals.RentalByOfferID(ctx, offerID)
}

func (r *commandReads) ListRentals(ctx context.Context, filter shared.RentalFilter) ([]*rental.Rental, error) {
	return r.rentals.ListRentals(ctx, filter)
}

func (r *commandReads) LatestReturn(ctx context.Context, rentalID int64) (*rental.Return, error) {
	return r.rentals.LatestReturn(ctx, rentalID)
}

func (r *commandReads) HasOverlappingRental(ctx context.Context, carID int64, dates offer.DateRange, excludeCompleted bool) (bool, error) {
	return r.rentals.HasOverlappingRental(ctx, carID, dates, excludeCompleted)
}
