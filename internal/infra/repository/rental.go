package repository

import (
	"context"
	"log/slog"

	"car-rental-core/internal/domain/rental"
	"car-rental-core/internal/infra"
	"car-rental-core/internal/infra/pgquery"
	"car-rental-core/internal/infra/repository/converter"
)

type RentalWriteQueries interface {
	CreateRental(ctx context.Context, db pgquery.DBTX, arg pgquery.CreateRentalParams) (int64, error)
	UpdateRentalStatus(ctx context.Context, db pgquery.DBTX, arg pgquery.UpdateRentalStatusParams) (int64, error)
}

type RentalRepository struct {
	queries RentalWriteQueries
	db      pgquery.DBTX
}

func NewRentalRepository(queries RentalWriteQueries, db pgquery.DBTX) *RentalRepository {
	return &RentalRepository{
		queries: queries,
		db:      db,
	}
}

func (r *RentalRepository) Create(ctx context.Context, rent *rental.Rental) (int64, error) {
	id, err := r.queries.CreateRental(ctx, r.db, converter.RentalToCreateParams(rent))
	if err != nil {
		return 0, infra.ClassifyErr(slog.Default(), "failed to create rental", err)
	}
	return id, nil
}

func (r *RentalRepository) UpdateStatus(ctx context.Context, id int64, from, to rental.Status) error {
	n, err := r.queries.UpdateRentalStatus(ctx, r.db, pgquery.UpdateRentalStatusParams{
		ID:           id,
		FromStatusID: int16(from),
		ToStatusID:   int16(to),
	})
	if err != nil {
		return infra.ClassifyErr(slog.Default(), "failed to update rental status", err)
	}
	if n == 0 {
		return infra.NotFound("rental not found in status " + from.String())
	}
	return nil
}

type ReturnWriteQueries interface {
	CreateReturn(ctx context.Context, db pgquery.DBTX, arg pgquery.CreateReturnParams) (int64, error)
}

type ReturnRepository struct {
	queries ReturnWriteQueries
	db      pgquery.DBTX
}

func NewReturnRepository(queries ReturnWriteQueries, db pgquery.DBTX) *ReturnRepository {
	return &ReturnRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ReturnRepository) Create(ctx context.Context, ret *rental.Return) (int64, error) {
	id, err := r.queries.CreateReturn(ctx, r.db, converter.ReturnToCreateParams(ret))
	if err != nil {
		return 0, infra.ClassifyErr(slog.Default(), "failed to create return", err)
	}
	return id, nil
}
