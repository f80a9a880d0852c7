package queries

import (
	"context"

	"car-rental-core/internal/domain/offer"
	"car-rental-core/internal/domain/rental"
	"car-rental-core/internal/usecase/shared"
)

type RentalQueries interface {
	GetByID(ctx context.Context, actor Actor, id int64) (*RentalView, error)
	// ListByCustomer lists a customer's rentals, optionally narrowed to one status.
	ListByCustomer(ctx context.Context, customerID int64, status rental.Status, after *Cursor, limit int) ([]*RentalView, *Cursor, error)
	// ListByStatus is the employee worklist.
	ListByStatus(ctx context.Context, status rental.Status, after *Cursor, limit int) ([]*RentalView, *Cursor, error)
	// LatestReturn returns the authoritative return of a completed rental.
	LatestReturn(ctx context.Context, rentalID int64) (*ReturnView, error)
}

type rentalQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewRentalQueries(uow shared.UnitOfWork) RentalQueries {
	return &rentalQueriesImpl{uow: uow}
}

func (q *rentalQueriesImpl) GetByID(ctx context.Context, actor Actor, id int64) (*RentalView, error) {
	return shared.RunReadOnly(ctx, q.uow, func(ctx context.Context, reads shared.CommandReads) (*RentalView, error) {
		r, err := reads.RentalByID(ctx, id)
		if err != nil {
			return nil, notFoundAs(err, ErrRentalNotFound)
		}
		views, err := newRentalViewBuilder(reads).build(ctx, []*rental.Rental{r})
		if err != nil {
			return nil, err
		}
		if !actor.CanSee(views[0].CustomerID) {
			return nil, ErrRentalNotFound
		}
		return views[0], nil
	})
}

func (q *rentalQueriesImpl) ListByCustomer(ctx context.Context, customerID int64, status rental.Status, after *Cursor, limit int) ([]*RentalView, *Cursor, error) {
	return q.list(ctx, shared.RentalFilter{CustomerID: customerID, Status: status}, after, limit)
}

func (q *rentalQueriesImpl) ListByStatus(ctx context.Context, status rental.Status, after *Cursor, limit int) ([]*RentalView, *Cursor, error) {
	return q.list(ctx, shared.RentalFilter{Status: status}, after, limit)
}

func (q *rentalQueriesImpl) list(ctx context.Context, filter shared.RentalFilter, after *Cursor, limit int) ([]*RentalView, *Cursor, error) {
	if after != nil {
		afterID, err := DecodeAfterCursor(after.After)
		if err != nil {
			return nil, nil, err
		}
		filter.AfterID = afterID
	}
	filter.Limit = ValidateLimit(limit)

	views, err := shared.RunReadOnly(ctx, q.uow, func(ctx context.Context, reads shared.CommandReads) ([]*RentalView, error) {
		rentals, err := reads.ListRentals(ctx, filter)
		if err != nil {
			return nil, err
		}
		return newRentalViewBuilder(reads).build(ctx, rentals)
	})
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(views) == filter.Limit {
		next = &Cursor{After: EncodeAfterCursor(views[len(views)-1].ID)}
	}
	return views, next, nil
}

func (q *rentalQueriesImpl) LatestReturn(ctx context.Context, rentalID int64) (*ReturnView, error) {
	return shared.RunReadOnly(ctx, q.uow, func(ctx context.Context, reads shared.CommandReads) (*ReturnView, error) {
		if _, err := reads.RentalByID(ctx, rentalID); err != nil {
			return nil, notFoundAs(err, ErrRentalNotFound)
		}
		ret, err := reads.LatestReturn(ctx, rentalID)
		if err != nil {
			return nil, notFoundAs(err, ErrReturnNotFound)
		}
		return &ReturnView{
			ID:                   ret.ID(),
			RentalID:             ret.RentalID(),
			ReturnDate:           ret.ReturnDate(),
			ConditionDescription: ret.ConditionDescription(),
			PhotoURL:             ret.PhotoURL(),
			ProcessedBy:          ret.ProcessedBy(),
			CreatedAt:            ret.CreatedAt(),
		}, nil
	})
}

// rentalViewBuilder resolves offers and car names once per page.
type rentalViewBuilder struct {
	reads    shared.CommandReads
	carNames map[int64]string
}

func newRentalViewBuilder(reads shared.CommandReads) *rentalViewBuilder {
	return &rentalViewBuilder{reads: reads, carNames: make(map[int64]string)}
}

func (b *rentalViewBuilder) build(ctx context.Context, rentals []*rental.Rental) ([]*RentalView, error) {
	views := make([]*RentalView, 0, len(rentals))
	for _, r := range rentals {
		o, err := b.reads.OfferByID(ctx, r.OfferID())
		if err != nil {
			return nil, err
		}
		name, err := b.carName(ctx, o.CarID())
		if err != nil {
			return nil, err
		}
		views = append(views, &RentalView{
			ID:         r.ID(),
			OfferID:    o.ID(),
			Status:     r.Status().String(),
			CarID:      o.CarID(),
			CarName:    name,
			CustomerID: o.CustomerID(),
			StartDate:  o.Dates().Start().Format(offer.DateLayout),
			EndDate:    o.Dates().End().Format(offer.DateLayout),
			TotalPrice: o.TotalPrice(),
			CreatedAt:  r.CreatedAt(),
		})
	}
	return views, nil
}

func (b *rentalViewBuilder) carName(ctx context.Context, carID int64) (string, error) {
	if name, ok := b.carNames[carID]; ok {
		return name, nil
	}
	car, err := b.reads.CarByID(ctx, carID)
	if err != nil {
		return "", err
	}
	b.carNames[carID] = car.DisplayName()
	return b.carNames[carID], nil
}
