package offer

import (
	"time"

	"car-rental-core/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidDateRange = errs.Define("start date must not be after end date", errs.ErrValidation)
	ErrInvalidReference = errs.Define("offer references must be positive ids", errs.ErrValidation)
	ErrNegativePrice    = errs.Define("offer price cannot be negative", errs.ErrValidation)
)

// Criteria identifies an offer by everything a customer chose. Two requests
// with equal criteria resolve to the same offer.
type Criteria struct {
	CarID        int64
	CustomerID   int64
	InsuranceID  int64
	Dates        DateRange
	HasGPS       bool
	HasChildSeat bool
}

func (c Criteria) Validate() error {
	if c.CarID <= 0 || c.CustomerID <= 0 || c.InsuranceID <= 0 {
		return ErrInvalidReference
	}
	if c.Dates.start.IsZero() || c.Dates.start.After(c.Dates.end) {
		return ErrInvalidDateRange
	}
	return nil
}

func (c Criteria) Equal(other Criteria) bool {
	return c.CarID == other.CarID &&
		c.CustomerID == other.CustomerID &&
		c.InsuranceID == other.InsuranceID &&
		c.Dates.start.Equal(other.Dates.start) &&
		c.Dates.end.Equal(other.Dates.end) &&
		c.HasGPS == other.HasGPS &&
		c.HasChildSeat == other.HasChildSeat
}

// Offer is a priced quote. It never changes once persisted.
type Offer struct {
	id         int64
	criteria   Criteria
	totalPrice decimal.Decimal
	createdAt  time.Time
}

func NewOffer(c Criteria, totalPrice decimal.Decimal, createdAt time.Time) (*Offer, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if totalPrice.IsNegative() {
		return nil, ErrNegativePrice
	}
	return &Offer{
		criteria:   c,
		totalPrice: totalPrice,
		createdAt:  createdAt.UTC(),
	}, nil
}

func ReconstructOffer(id int64, c Criteria, totalPrice decimal.Decimal, createdAt time.Time) *Offer {
	return &Offer{
		id:         id,
		criteria:   c,
		totalPrice: totalPrice,
		createdAt:  createdAt,
	}
}

// WithID returns a copy carrying the store-assigned id.
func (o *Offer) WithID(id int64) *Offer {
	cp := *o
	cp.id = id
	return &cp
}

func (o *Offer) Matches(c Criteria) bool {
	return o.criteria.Equal(c)
}

// IsStale reports whether the offer was created strictly before cutoff, the
// janitor's "now minus expiration".
func (o *Offer) IsStale(cutoff time.Time) bool {
	return o.createdAt.Before(cutoff)
}

func (o *Offer) ID() int64                   { return o.id }
func (o *Offer) Criteria() Criteria          { return o.criteria }
func (o *Offer) CarID() int64                { return o.criteria.CarID }
func (o *Offer) CustomerID() int64           { return o.criteria.CustomerID }
func (o *Offer) InsuranceID() int64          { return o.criteria.InsuranceID }
func (o *Offer) Dates() DateRange            { return o.criteria.Dates }
func (o *Offer) HasGPS() bool                { return o.criteria.HasGPS }
func (o *Offer) HasChildSeat() bool          { return o.criteria.HasChildSeat }
func (o *Offer) TotalPrice() decimal.Decimal { return o.totalPrice }
func (o *Offer) CreatedAt() time.Time        { return o.createdAt }
