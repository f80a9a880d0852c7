package pgquery

import (
	"context"

	"github.com/doug-martin/goqu/v9"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

var rentalColumns = []any{"id", "offer_id", "status_id", "created_at"}

func scanRental(row pgx.Row) (Rentals, error) {
	var r Rentals
	err := row.Scan(&r.ID, &r.OfferID, &r.StatusID, &r.CreatedAt)
	return r, err
}

func (q *Queries) GetRental(ctx context.Context, db DBTX, id int64) (Rentals, error) {
	query, args, err := build(q.dialect.From(tableRentals).Prepared(true).
		Select(rentalColumns...).
		Where(goqu.C("id").Eq(id)))
	if err != nil {
		return Rentals{}, err
	}
	return scanRental(db.QueryRow(ctx, query, args...))
}

func (q *Queries) GetRentalByOfferID(ctx context.Context, db DBTX, offerID int64) (Rentals, error) {
	query, args, err := build(q.dialect.From(tableRentals).Prepared(true).
		Select(rentalColumns...).
		Where(goqu.C("offer_id").Eq(offerID)))
	if err != nil {
		return Rentals{}, err
	}
	return scanRental(db.QueryRow(ctx, query, args...))
}

type ListRentalsParams struct {
	CustomerID int64
	StatusID   int16
	AfterID    int64
	Limit      uint
}

// ListRentals pages through rentals by id. Zero-valued filters are ignored.
func (q *Queries) ListRentals(ctx context.Context, db DBTX, arg ListRentalsParams) ([]Rentals, error) {
	ds := q.dialect.From(goqu.T(tableRentals).As("r")).Prepared(true).
		Select(goqu.I("r.id"), goqu.I("r.offer_id"), goqu.I("r.status_id"), goqu.I("r.created_at")).
		Where(goqu.I("r.id").Gt(arg.AfterID)).
		Order(goqu.I("r.id").Asc())
	if arg.CustomerID != 0 {
		ds = ds.Join(goqu.T(tableOffers).As("o"), goqu.On(goqu.I("o.id").Eq(goqu.I("r.offer_id")))).
			Where(goqu.I("o.customer_id").Eq(arg.CustomerID))
	}
	if arg.StatusID != 0 {
		ds = ds.Where(goqu.I("r.status_id").Eq(arg.StatusID))
	}
	if arg.Limit > 0 {
		ds = ds.Limit(arg.Limit)
	}

	query, args, err := build(ds)
	if err != nil {
		return nil, err
	}
	rows, err := db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (Rentals, error) {
		return scanRental(row)
	})
}

type CreateRentalParams struct {
	OfferID   int64
	StatusID  int16
	CreatedAt pgtype.Timestamptz
}

func (q *Queries) CreateRental(ctx context.Context, db DBTX, arg CreateRentalParams) (int64, error) {
	query, args, err := build(q.dialect.Insert(tableRentals).Prepared(true).
		Rows(goqu.Record{
			"offer_id":   arg.OfferID,
			"status_id":  arg.StatusID,
			"created_at": arg.CreatedAt,
		}).
		Returning("id"))
	if err != nil {
		return 0, err
	}
	var id int64
	err = db.QueryRow(ctx, query, args...).Scan(&id)
	return id, err
}

type UpdateRentalStatusParams struct {
	ID           int64
	FromStatusID int16
	ToStatusID   int16
}

// UpdateRentalStatus only touches the row while it is still in FromStatusID.
func (q *Queries) UpdateRentalStatus(ctx context.Context, db DBTX, arg UpdateRentalStatusParams) (int64, error) {
	query, args, err := build(q.dialect.Update(tableRentals).Prepared(true).
		Set(goqu.Record{"status_id": arg.ToStatusID}).
		Where(goqu.C("id").Eq(arg.ID), goqu.C("status_id").Eq(arg.FromStatusID)))
	if err != nil {
		return 0, err
	}
	tag, err := db.Exec(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

type CountOverlappingRentalsParams struct {
	CarID            int64
	StartDate        pgtype.Date
	EndDate          pgtype.Date
	ExcludeStatusID  int16
	ExcludeCompleted bool
}

// CountOverlappingRentals counts rentals of the car whose offer range shares
// at least one day with [StartDate, EndDate].
func (q *Queries) CountOverlappingRentals(ctx context.Context, db DBTX, arg CountOverlappingRentalsParams) (int64, error) {
	ds := q.dialect.From(goqu.T(tableRentals).As("r")).Prepared(true).
		Join(goqu.T(tableOffers).As("o"), goqu.On(goqu.I("o.id").Eq(goqu.I("r.offer_id")))).
		Select(goqu.COUNT(goqu.Star())).
		Where(
			goqu.I("o.car_id").Eq(arg.CarID),
			goqu.I("o.start_date").Lte(arg.EndDate),
			goqu.I("o.end_date").Gte(arg.StartDate),
		)
	if arg.ExcludeCompleted {
		ds = ds.Where(goqu.I("r.status_id").Neq(arg.ExcludeStatusID))
	}

	query, args, err := build(ds)
	if err != nil {
		return 0, err
	}
	var n int64
	err = db.QueryRow(ctx, query, args...).Scan(&n)
	return n, err
}
