package readstore

import (
	"context"
	"log/slog"

	"car-rental-core/internal/domain/offer"
	"car-rental-core/internal/infra"
	"car-rental-core/internal/infra/pgquery"
	"car-rental-core/internal/infra/repository/converter"
)

type OfferReadQueries interface {
	GetOffer(ctx context.Context, db pgquery.DBTX, id int64) (pgquery.Offers, error)
	FindOfferByCriteria(ctx context.Context, db pgquery.DBTX, arg pgquery.FindOfferByCriteriaParams) (pgquery.Offers, error)
}

type OfferReadStore struct {
	queries OfferReadQueries
	db      pgquery.DBTX
}

func NewOfferReadStore(queries OfferReadQueries, db pgquery.DBTX) *OfferReadStore {
	return &OfferReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *OfferReadStore) OfferByID(ctx context.Context, id int64) (*offer.Offer, error) {
	row, err := r.queries.GetOffer(ctx, r.db, id)
	if err != nil {
		return nil, infra.ClassifyErr(slog.Default(), "offer not found", err)
	}
	return decodeOffer(row)
}

func (r *OfferReadStore) OfferByCriteria(ctx context.Context, c offer.Criteria) (*offer.Offer, error) {
	row, err := r.queries.FindOfferByCriteria(ctx, r.db, converter.CriteriaToFindParams(c))
	if err != nil {
		return nil, infra.ClassifyErr(slog.Default(), "offer not found", err)
	}
	return decodeOffer(row)
}

func decodeOffer(row pgquery.Offers) (*offer.Offer, error) {
	o, err := converter.OfferFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr(slog.Default(), infra.KindDBFailure, "failed to decode offer", err)
	}
	return o, nil
}
