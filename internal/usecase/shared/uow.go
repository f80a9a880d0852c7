package shared

import (
	"context"
	"time"

	"car-rental-core/internal/domain/offer"
	"car-rental-core/internal/domain/rental"
	"car-rental-core/internal/domain/resource"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-record consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, reads CommandReads) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Offers() OfferRepository
	Rentals() RentalRepository
	Returns() ReturnRepository
	Locks() ResourceLocker
	Reads() CommandReads
}

type CommandReads interface {
	CarByID(ctx context.Context, id int64) (*resource.Car, error)
	CustomerByID(ctx context.Context, id int64) (*CustomerSnapshot, error)
	InsuranceByID(ctx context.Context, id int64) (*InsuranceSnapshot, error)
	OfferByID(ctx context.Context, id int64) (*offer.Offer, error)
	OfferByCriteria(ctx context.Context, c offer.Criteria) (*offer.Offer, error)
	RentalByID(ctx context.Context, id int64) (*rental.Rental, error)
	RentalByOfferID(ctx context.Context, offerID int64) (*rental.Rental, error)
	ListRentals(ctx context.Context, filter RentalFilter) ([]*rental.Rental, error)
	LatestReturn(ctx context.Context, rentalID int64) (*rental.Return, error)
	// HasOverlappingRental joins rentals to their offers and tests
	// start <= dates.End && end >= dates.Start for the car.
	HasOverlappingRental(ctx context.Context, carID int64, dates offer.DateRange, excludeCompleted bool) (bool, error)
}

// RentalFilter narrows ListRentals, which orders by id. Zero values do not filter.
type RentalFilter struct {
	CustomerID int64
	Status     rental.Status
	AfterID    int64
	Limit      int
}

type OfferRepository interface {
	Create(ctx context.Context, o *offer.Offer) (int64, error)
	// DeleteUnconfirmedBefore removes offers with no rental created before the cutoff.
	DeleteUnconfirmedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type RentalRepository interface {
	Create(ctx context.Context, r *rental.Rental) (int64, error)
	// UpdateStatus is a compare-and-set; a rental not in status from is NOT_FOUND.
	UpdateStatus(ctx context.Context, id int64, from, to rental.Status) error
}

type ReturnRepository interface {
	Create(ctx context.Context, ret *rental.Return) (int64, error)
}

// ResourceLocker serialises check-and-write sequences per car until the
// enclosing transaction ends.
type ResourceLocker interface {
	LockCar(ctx context.Context, carID int64) error
}
