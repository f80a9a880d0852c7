package repository

import (
	"context"
	"log/slog"
	"time"

	"car-rental-core/internal/domain/offer"
	"car-rental-core/internal/infra"
	"car-rental-core/internal/infra/pgquery"
	"car-rental-core/internal/infra/repository/converter"
)

type OfferWriteQueries interface {
	CreateOffer(ctx context.Context, db pgquery.DBTX, arg pgquery.CreateOfferParams) (int64, error)
	DeleteUnconfirmedOffers(ctx context.Context, db pgquery.DBTX, cutoff time.Time) (int64, error)
}

type OfferRepository struct {
	queries OfferWriteQueries
	db      pgquery.DBTX
}

func NewOfferRepository(queries OfferWriteQueries, db pgquery.DBTX) *OfferRepository {
	return &OfferRepository{
		queries: queries,
		db:      db,
	}
}

func (r *OfferRepository) Create(ctx context.Context, o *offer.Offer) (int64, error) {
	id, err := r.queries.CreateOffer(ctx, r.db, converter.OfferToCreateParams(o))
	if err != nil {
		return 0, infra.ClassifyErr(slog.Default(), "failed to create offer", err)
	}
	return id, nil
}

func (r *OfferRepository) DeleteUnconfirmedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	n, err := r.queries.DeleteUnconfirmedOffers(ctx, r.db, cutoff)
	if err != nil {
		return 0, infra.ClassifyErr(slog.Default(), "failed to delete stale offers", err)
	}
	return n, nil
}
