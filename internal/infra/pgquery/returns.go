package pgquery

import (
	"context"

	"github.com/doug-martin/goqu/v9"
	"github.com/jackc/pgx/v5/pgtype"
)

type CreateReturnParams struct {
	RentalID             int64
	ReturnDate           pgtype.Timestamptz
	ConditionDescription pgtype.Text
	PhotoUrl             pgtype.Text
	ProcessedBy          int64
	CreatedAt            pgtype.Timestamptz
}

func (q *Queries) CreateReturn(ctx context.Context, db DBTX, arg CreateReturnParams) (int64, error) {
	query, args, err := build(q.dialect.Insert(tableReturns).Prepared(true).
		Rows(goqu.Record{
			"rental_id":             arg.RentalID,
			"return_date":           arg.ReturnDate,
			"condition_description": arg.ConditionDescription,
			"photo_url":             arg.PhotoUrl,
			"processed_by":          arg.ProcessedBy,
			"created_at":            arg.CreatedAt,
		}).
		Returning("id"))
	if err != nil {
		return 0, err
	}
	var id int64
	err = db.QueryRow(ctx, query, args...).Scan(&id)
	return id, err
}

// GetLatestReturn returns the most recently created return of a rental.
func (q *Queries) GetLatestReturn(ctx context.Context, db DBTX, rentalID int64) (Returns, error) {
	var r Returns
	query, args, err := build(q.dialect.From(tableReturns).Prepared(true).
		Select("id", "rental_id", "return_date", "condition_description", "photo_url", "processed_by", "created_at").
		Where(goqu.C("rental_id").Eq(rentalID)).
		Order(goqu.C("created_at").Desc(), goqu.C("id").Desc()).
		Limit(1))
	if err != nil {
		return r, err
	}
	err = db.QueryRow(ctx, query, args...).Scan(&r.ID, &r.RentalID, &r.ReturnDate, &r.ConditionDescription, &r.PhotoUrl, &r.ProcessedBy, &r.CreatedAt)
	return r, err
}
