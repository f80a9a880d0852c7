package shared

import (
	"context"

	"car-rental-core/internal/domain/offer"
	"car-rental-core/internal/pkg/errs"
)

var ErrDatesUnavailable = errs.Define("car is already rented for the selected dates", errs.ErrConflict)

type AvailabilityChecker interface {
	HasConflict(ctx context.Context, tx Tx, carID int64, dates offer.DateRange, excludeCompleted bool) (bool, error)
}

type availabilityChecker struct{}

func NewAvailabilityChecker() AvailabilityChecker {
	return availabilityChecker{}
}

// HasConflict locks the car for the rest of tx before reading, so a write
// made later in the same transaction cannot race another checker.
func (availabilityChecker) HasConflict(ctx context.Context, tx Tx, carID int64, dates offer.DateRange, excludeCompleted bool) (bool, error) {
	if err := tx.Locks().LockCar(ctx, carID); err != nil {
		return false, errs.Wrapf(err, "lock car %d", carID)
	}
	conflict, err := tx.Reads().HasOverlappingRental(ctx, carID, dates, excludeCompleted)
	if err != nil {
		return false, errs.Wrapf(err, "check availability of car %d", carID)
	}
	return conflict, nil
}
