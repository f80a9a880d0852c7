package rental

import (
	"time"

	"car-rental-core/internal/pkg/errs"
)

var (
	ErrNotConfirmed     = errs.Define("rental is not confirmed", errs.ErrInvalidState)
	ErrNotPendingReturn = errs.Define("rental is not pending return", errs.ErrInvalidState)
	ErrInvalidOffer     = errs.Define("rental requires an offer", errs.ErrValidation)
)

type Rental struct {
	id        int64
	offerID   int64
	status    Status
	createdAt time.Time
}

// NewRental starts a rental in its only initial state.
func NewRental(offerID int64, now time.Time) (*Rental, error) {
	if offerID <= 0 {
		return nil, ErrInvalidOffer
	}
	return &Rental{
		offerID:   offerID,
		status:    StatusConfirmed,
		createdAt: now.UTC(),
	}, nil
}

func ReconstructRental(id, offerID int64, status Status, createdAt time.Time) *Rental {
	return &Rental{
		id:        id,
		offerID:   offerID,
		status:    status,
		createdAt: createdAt,
	}
}

func (r *Rental) WithID(id int64) *Rental {
	cp := *r
	cp.id = id
	return &cp
}

func (r *Rental) InitReturn() error {
	if r.status != StatusConfirmed {
		return ErrNotConfirmed
	}
	r.status = StatusPendingReturn
	return nil
}

func (r *Rental) Complete() error {
	if r.status != StatusPendingReturn {
		return ErrNotPendingReturn
	}
	r.status = StatusCompleted
	return nil
}

func (r *Rental) ID() int64            { return r.id }
func (r *Rental) OfferID() int64       { return r.offerID }
func (r *Rental) Status() Status       { return r.status }
func (r *Rental) CreatedAt() time.Time { return r.createdAt }
