package memstore

import (
	"context"
	"time"

	"car-rental-core/internal/domain/offer"
	"car-rental-core/internal/domain/rental"
	"car-rental-core/internal/infra"
)

type offerRepo struct {
	st *state
}

func (r *offerRepo) Create(_ context.Context, o *offer.Offer) (int64, error) {
	c := o.Criteria()
	if _, ok := r.st.cars[c.CarID]; !ok {
		return 0, infra.RepositoryError{Kind: infra.KindForeignKeyViolated}
	}
	r.st.nextOfferID++
	id := r.st.nextOfferID
	r.st.offers[id] = o.WithID(id)
	return id, nil
}

func (r *offerRepo) DeleteUnconfirmedBefore(_ context.Context, cutoff time.Time) (int64, error) {
	rented := make(map[int64]struct{}, len(r.st.rentals))
	for _, rt := range r.st.rentals {
		rented[rt.OfferID()] = struct{}{}
	}
	var deleted int64
	for id, o := range r.st.offers {
		if _, ok := rented[id]; ok || !o.IsStale(cutoff) {
			continue
		}
		delete(r.st.offers, id)
		deleted++
	}
	return deleted, nil
}

type rentalRepo struct {
	st *state
}

func (r *rentalRepo) Create(_ context.Context, rt *rental.Rental) (int64, error) {
	if _, ok := r.st.offers[rt.OfferID()]; !ok {
		return 0, infra.RepositoryError{Kind: infra.KindForeignKeyViolated}
	}
	for _, existing := range r.st.rentals {
		if existing.OfferID() == rt.OfferID() {
			return 0, infra.RepositoryError{Kind: infra.KindDuplicateKey}
		}
	}
	r.st.nextRentalID++
	id := r.st.nextRentalID
	r.st.rentals[id] = copyRental(rt.WithID(id))
	return id, nil
}

func (r *rentalRepo) UpdateStatus(_ context.Context, id int64, from, to rental.Status) error {
	rt, ok := r.st.rentals[id]
	if !ok || rt.Status() != from {
		return infra.NotFound("rental in expected status")
	}
	r.st.rentals[id] = rental.ReconstructRental(rt.ID(), rt.OfferID(), to, rt.CreatedAt())
	return nil
}

type returnRepo struct {
	st *state
}

func (r *returnRepo) Create(_ context.Context, ret *rental.Return) (int64, error) {
	if _, ok := r.st.rentals[ret.RentalID()]; !ok {
		return 0, infra.RepositoryError{Kind: infra.KindForeignKeyViolated}
	}
	r.st.nextReturnID++
	id := r.st.nextReturnID
	r.st.returns[id] = ret.WithID(id)
	return id, nil
}
