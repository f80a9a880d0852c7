package readstore

import (
	"context"
	"log/slog"

	"car-rental-core/internal/domain/offer"
	"car-rental-core/internal/domain/rental"
	"car-rental-core/internal/infra"
	"car-rental-core/internal/infra/pgquery"
	"car-rental-core/internal/infra/repository/converter"
	"car-rental-core/internal/pkg/pgconv"
	"car-rental-core/internal/usecase/shared"
)

type RentalReadQueries interface {
	GetRental(ctx context.Context, db pgquery.DBTX, id int64) (pgquery.Rentals, error)
	GetRentalByOfferID(ctx context.Context, db pgquery.DBTX, offerID int64) (pgquery.Rentals, error)
	ListRentals(ctx context.Context, db pgquery.DBTX, arg pgquery.ListRentalsParams) ([]pgquery.Rentals, error)
	CountOverlappingRentals(ctx context.Context, db pgquery.DBTX, arg pgquery.CountOverlappingRentalsParams) (int64, error)
	GetLatestReturn(ctx context.Context, db pgquery.DBTX, rentalID int64) (pgquery.Returns, error)
}

type RentalReadStore struct {
	queries RentalReadQueries
	db      pgquery.DBTX
}

func NewRentalReadStore(queries RentalReadQueries, db pgquery.DBTX) *RentalReadStore {
	return &RentalReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *RentalReadStore) RentalByID(ctx context.Context, id int64) (*rental.Rental, error) {
	row, err := r.queries.GetRental(ctx, r.db, id)
	if err != nil {
		return nil, infra.ClassifyErr(slog.Default(), "rental not found", err)
	}
	return decodeRental(row)
}

func (r *RentalReadStore) RentalByOfferID(ctx context.Context, offerID int64) (*rental.Rental, error) {
	row, err := r.queries.GetRentalByOfferID(ctx, r.db, offerID)
	if err != nil {
		return nil, infra.ClassifyErr(slog.Default(), "rental not found", err)
	}
	return decodeRental(row)
}

func (r *RentalReadStore) ListRentals(ctx context.Context, filter shared.RentalFilter) ([]*rental.Rental, error) {
	params := pgquery.ListRentalsParams{
		CustomerID: filter.CustomerID,
		StatusID:   int16(filter.Status),
		AfterID:    filter.AfterID,
	}
	if filter.Limit > 0 {
		params.Limit = uint(filter.Limit)
	}

	rows, err := r.queries.ListRentals(ctx, r.db, params)
	if err != nil {
		return nil, infra.ClassifyErr(slog.Default(), "failed to list rentals", err)
	}

	out := make([]*rental.Rental, 0, len(rows))
	for _, row := range rows {
		rent, err := decodeRental(row)
		if err != nil {
			return nil, err
		}
		out = append(out, rent)
	}
	return out, nil
}

func (r *RentalReadStore) HasOverlappingRental(ctx context.Context, carID int64, dates offer.DateRange, excludeCompleted bool) (bool, error) {
	n, err := r.queries.CountOverlappingRentals(ctx, r.db, pgquery.CountOverlappingRentalsParams{
		CarID:            carID,
		StartDate:        pgconv.DateToPgtype(dates.Start()),
		EndDate:          pgconv.DateToPgtype(dates.End()),
		ExcludeStatusID:  int16(rental.StatusCompleted),
		ExcludeCompleted: excludeCompleted,
	})
	if err != nil {
		return false, infra.ClassifyErr(slog.Default(), "failed to check overlapping rentals", err)
	}
	return n > 0, nil
}

func (r *RentalReadStore) LatestReturn(ctx context.Context, rentalID int64) (*rental.Return, error) {
	row, err := r.queries.GetLatestReturn(ctx, r.db, rentalID)
	if err != nil {
		return nil, infra.ClassifyErr(slog.Default(), "return not found", err)
	}
	return converter.ReturnFromRow(row), nil
}

func decodeRental(row pgquery.Rentals) (*rental.Rental, error) {
	rent, err := converter.RentalFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to decode rental", err)
	}
	return rent, nil
}
