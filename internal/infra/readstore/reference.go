package readstore

import (
	"context"
	"log/slog"

	"car-rental-core/internal/domain/resource"
	"car-rental-core/internal/infra"
	"car-rental-core/internal/infra/pgquery"
	"car-rental-core/internal/infra/repository/converter"
	"car-rental-core/internal/usecase/shared"
)

type ReferenceReadQueries interface {
	GetCar(ctx context.Context, db pgquery.DBTX, id int64) (pgquery.Cars, error)
	GetCustomer(ctx context.Context, db pgquery.DBTX, id int64) (pgquery.Customers, error)
	GetInsurance(ctx context.Context, db pgquery.DBTX, id int64) (pgquery.Insurances, error)
}

// ReferenceReadStore reads the catalogue tables owned by other services.
type ReferenceReadStore struct {
	queries ReferenceReadQueries
	db      pgquery.DBTX
}

func NewReferenceReadStore(queries ReferenceReadQueries, db pgquery.DBTX) *ReferenceReadStore {
	return &ReferenceReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ReferenceReadStore) CarByID(ctx context.Context, id int64) (*resource.Car, error) {
	row, err := r.queries.GetCar(ctx, r.db, id)
	if err != nil {
		return nil, infra.ClassifyErr(slog.Default(), "car not found", err)
	}
	car, err := converter.CarFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to decode car", err)
	}
	return car, nil
}

func (r *ReferenceReadStore) CustomerByID(ctx context.Context, id int64) (*shared.CustomerSnapshot, error) {
	row, err := r.queries.GetCustomer(ctx, r.db, id)
	if err != nil {
		return nil, infra.ClassifyErr(slog.Default(), "customer not found", err)
	}
	return converter.CustomerFromRow(row), nil
}

func (r *ReferenceReadStore) InsuranceByID(ctx context.Context, id int64) (*shared.InsuranceSnapshot, error) {
	row, err := r.queries.GetInsurance(ctx, r.db, id)
	if err != nil {
		return nil, infra.ClassifyErr(slog.Default(), "insurance not found", err)
	}
	ins, err := converter.InsuranceFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to decode insurance", err)
	}
	return ins, nil
}
