package memstore

import (
	"cmp"
	"context"
	"slices"

	"car-rental-core/internal/domain/offer"
	"car-rental-core/internal/domain/rental"
	"car-rental-core/internal/domain/resource"
	"car-rental-core/internal/infra"
	"car-rental-core/internal/usecase/shared"
)

type reads struct {
	st *state
}

func (r *reads) CarByID(_ context.Context, id int64) (*resource.Car, error) {
	car, ok := r.st.cars[id]
	if !ok {
		return nil, infra.NotFound("car")
	}
	return car, nil
}

func (r *reads) CustomerByID(_ context.Context, id int64) (*shared.CustomerSnapshot, error) {
	c, ok := r.st.customers[id]
	if !ok {
		return nil, infra.NotFound("customer")
	}
	return &c, nil
}

func (r *reads) InsuranceByID(_ context.Context, id int64) (*shared.InsuranceSnapshot, error) {
	ins, ok := r.st.insurances[id]
	if !ok {
		return nil, infra.NotFound("insurance")
	}
	return &ins, nil
}

func (r *reads) OfferByID(_ context.Context, id int64) (*offer.Offer, error) {
	o, ok := r.st.offers[id]
	if !ok {
		return nil, infra.NotFound("offer")
	}
	return o, nil
}

func (r *reads) OfferByCriteria(_ context.Context, c offer.Criteria) (*offer.Offer, error) {
	var found *offer.Offer
	for _, o := range r.st.offers {
		if o.Matches(c) && (found == nil || o.ID() < found.ID()) {
			found = o
		}
	}
	if found == nil {
		return nil, infra.NotFound("offer by criteria")
	}
	return found, nil
}

func (r *reads) RentalByID(_ context.Context, id int64) (*rental.Rental, error) {
	rt, ok := r.st.rentals[id]
	if !ok {
		return nil, infra.NotFound("rental")
	}
	return copyRental(rt), nil
}

func (r *reads) RentalByOfferID(_ context.Context, offerID int64) (*rental.Rental, error) {
	for _, rt := range r.st.rentals {
		if rt.OfferID() == offerID {
			return copyRental(rt), nil
		}
	}
	return nil, infra.NotFound("rental by offer")
}

func (r *reads) ListRentals(_ context.Context, filter shared.RentalFilter) ([]*rental.Rental, error) {
	out := make([]*rental.Rental, 0)
	for _, rt := range r.st.rentals {
		if rt.ID() <= filter.AfterID {
			continue
		}
		if filter.Status != 0 && rt.Status() != filter.Status {
			continue
		}
		if filter.CustomerID != 0 {
			o, ok := r.st.offers[rt.OfferID()]
			if !ok || o.CustomerID() != filter.CustomerID {
				continue
			}
		}
		out = append(out, copyRental(rt))
	}
	slices.SortFunc(out, func(a, b *rental.Rental) int {
		return cmp.Compare(a.ID(), b.ID())
	})
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (r *reads) LatestReturn(_ context.Context, rentalID int64) (*rental.Return, error) {
	var latest *rental.Return
	for _, ret := range r.st.returns {
		if ret.RentalID() != rentalID {
			continue
		}
		if latest == nil || ret.CreatedAt().After(latest.CreatedAt()) ||
			(ret.CreatedAt().Equal(latest.CreatedAt()) && ret.ID() > latest.ID()) {
			latest = ret
		}
	}
	if latest == nil {
		return nil, infra.NotFound("return")
	}
	return latest, nil
}

func (r *reads) HasOverlappingRental(_ context.Context, carID int64, dates offer.DateRange, excludeCompleted bool) (bool, error) {
	for _, rt := range r.st.rentals {
		if excludeCompleted && !rt.Status().Occupies() {
			continue
		}
		o, ok := r.st.offers[rt.OfferID()]
		if !ok || o.CarID() != carID {
			continue
		}
		if o.Dates().Overlaps(dates) {
			return true, nil
		}
	}
	return false, nil
}

// liveReads resolves the committed state per call, like autocommit reads.
type liveReads struct {
	store *Store
}

func (l *liveReads) current() *reads { return &reads{st: l.store.snapshot()} }

func (l *liveReads) CarByID(ctx context.Context, id int64) (*resource.Car, error) {
	return l.current().CarByID(ctx, id)
}

func (l *liveReads) CustomerByID(ctx context.Context, id int64) (*shared.CustomerSnapshot, error) {
	return l.current().CustomerByID(ctx, id)
}

func (l *liveReads) InsuranceByID(ctx context.Context, id int64) (*shared.InsuranceSnapshot, error) {
	return l.current().InsuranceByID(ctx, id)
}

func (l *liveReads) OfferByID(ctx context.Context, id int64) (*offer.Offer, error) {
	return l.current().OfferByID(ctx, id)
}

func (l *liveReads) OfferByCriteria(ctx context.Context, c offer.Criteria) (*offer.Offer, error) {
	return l.current().OfferByCriteria(ctx, c)
}

func (l *liveReads) RentalByID(ctx context.Context, id int64) (*rental.Rental, error) {
	return l.current().RentalByID(ctx, id)
}

func (l *liveReads) RentalByOfferID(ctx context.Context, offerID int64) (*rental.Rental, error) {
	return l.current().RentalByOfferID(ctx, offerID)
}

func (l *liveReads) ListRentals(ctx context.Context, filter shared.RentalFilter) ([]*rental.Rental, error) {
	return l.current().ListRentals(ctx, filter)
}

func (l *liveReads) LatestReturn(ctx context.Context, rentalID int64) (*rental.Return, error) {
	return l.current().LatestReturn(ctx, rentalID)
}

func (l *liveReads) HasOverlappingRental(ctx context.Context, carID int64, dates offer.DateRange, excludeCompleted bool) (bool, error) {
	return l.current().HasOverlappingRental(ctx, carID, dates, excludeCompleted)
}

func copyRental(r *rental.Rental) *rental.Rental {
	return rental.ReconstructRental(r.ID(), r.OfferID(), r.Status(), r.CreatedAt())
}
