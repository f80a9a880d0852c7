package queries

import (
	"context"

	"car-rental-core/internal/domain/offer"
	"car-rental-core/internal/infra"
	"car-rental-core/internal/usecase/shared"
)

type OfferQueries interface {
	GetByID(ctx context.Context, actor Actor, id int64) (*OfferView, error)
}

type offerQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewOfferQueries(uow shared.UnitOfWork) OfferQueries {
	return &offerQueriesImpl{uow: uow}
}

func (q *offerQueriesImpl) GetByID(ctx context.Context, actor Actor, id int64) (*OfferView, error) {
	return shared.RunReadOnly(ctx, q.uow, func(ctx context.Context, reads shared.CommandReads) (*OfferView, error) {
		o, err := reads.OfferByID(ctx, id)
		if err != nil {
			return nil, notFoundAs(err, ErrOfferNotFound)
		}
		if !actor.CanSee(o.CustomerID()) {
			return nil, ErrOfferNotFound
		}
		return buildOfferView(ctx, reads, o)
	})
}

func buildOfferView(ctx context.Context, reads shared.CommandReads, o *offer.Offer) (*OfferView, error) {
	car, err := reads.CarByID(ctx, o.CarID())
	if err != nil {
		return nil, err
	}
	insurance, err := reads.InsuranceByID(ctx, o.InsuranceID())
	if err != nil {
		return nil, err
	}
	return &OfferView{
		ID:            o.ID(),
		CarID:         o.CarID(),
		CarName:       car.DisplayName(),
		CustomerID:    o.CustomerID(),
		InsuranceID:   o.InsuranceID(),
		InsuranceName: insurance.Name,
		StartDate:     o.Dates().Start().Format(offer.DateLayout),
		EndDate:       o.Dates().End().Format(offer.DateLayout),
		TotalPrice:    o.TotalPrice(),
		HasGPS:        o.HasGPS(),
		HasChildSeat:  o.HasChildSeat(),
		CreatedAt:     o.CreatedAt(),
	}, nil
}

func notFoundAs(err, sentinel error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return sentinel
	}
	return err
}
