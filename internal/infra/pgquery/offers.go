package pgquery

import (
	"context"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

var offerColumns = []any{
	"id", "car_id", "customer_id", "insurance_id", "start_date", "end_date",
	"total_price", "has_gps", "has_child_seat", "created_at",
}

func scanOffer(row pgx.Row) (Offers, error) {
	var o Offers
	err := row.Scan(&o.ID, &o.CarID, &o.CustomerID, &o.InsuranceID, &o.StartDate, &o.EndDate,
		&o.TotalPrice, &o.HasGps, &o.HasChildSeat, &o.CreatedAt)
	return o, err
}

func (q *Queries) GetOffer(ctx context.Context, db DBTX, id int64) (Offers, error) {
	query, args, err := build(q.dialect.From(tableOffers).Prepared(true).
		Select(offerColumns...).
		Where(goqu.C("id").Eq(id)))
	if err != nil {
		return Offers{}, err
	}
	return scanOffer(db.QueryRow(ctx, query, args...))
}

type FindOfferByCriteriaParams struct {
	CarID        int64
	CustomerID   int64
	InsuranceID  int64
	StartDate    pgtype.Date
	EndDate      pgtype.Date
	HasGps       bool
	HasChildSeat bool
}

// FindOfferByCriteria returns the oldest offer matching every criterion.
func (q *Queries) FindOfferByCriteria(ctx context.Context, db DBTX, arg FindOfferByCriteriaParams) (Offers, error) {
	query, args, err := build(q.dialect.From(tableOffers).Prepared(true).
		Select(offerColumns...).
		Where(goqu.Ex{
			"car_id":         arg.CarID,
			"customer_id":    arg.CustomerID,
			"insurance_id":   arg.InsuranceID,
			"start_date":     arg.StartDate,
			"end_date":       arg.EndDate,
			"has_gps":        arg.HasGps,
			"has_child_seat": arg.HasChildSeat,
		}).
		Order(goqu.C("id").Asc()).
		Limit(1))
	if err != nil {
		return Offers{}, err
	}
	return scanOffer(db.QueryRow(ctx, query, args...))
}

type CreateOfferParams struct {
	CarID        int64
	CustomerID   int64
	InsuranceID  int64
	StartDate    pgtype.Date
	EndDate      pgtype.Date
	TotalPrice   pgtype.Numeric
	HasGps       bool
	HasChildSeat bool
	CreatedAt    pgtype.Timestamptz
}

func (q *Queries) CreateOffer(ctx context.Context, db DBTX, arg CreateOfferParams) (int64, error) {
	query, args, err := build(q.dialect.Insert(tableOffers).Prepared(true).
		Rows(goqu.Record{
			"car_id":         arg.CarID,
			"customer_id":    arg.CustomerID,
			"insurance_id":   arg.InsuranceID,
			"start_date":     arg.StartDate,
			"end_date":       arg.EndDate,
			"total_price":    arg.TotalPrice,
			"has_gps":        arg.HasGps,
			"has_child_seat": arg.HasChildSeat,
			"created_at":     arg.CreatedAt,
		}).
		Returning("id"))
	if err != nil {
		return 0, err
	}
	var id int64
	err = db.QueryRow(ctx, query, args...).Scan(&id)
	return id, err
}

// DeleteUnconfirmedOffers removes offers created before cutoff that no rental
// references, and reports how many went.
func (q *Queries) DeleteUnconfirmedOffers(ctx context.Context, db DBTX, cutoff time.Time) (int64, error) {
	rented := q.dialect.From(tableRentals).Select("offer_id")
	query, args, err := build(q.dialect.Delete(tableOffers).Prepared(true).
		Where(
			goqu.C("created_at").Lt(cutoff),
			goqu.C("id").NotIn(rented),
		))
	if err != nil {
		return 0, err
	}
	tag, err := db.Exec(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
