package resource

import (
	"strings"

	"car-rental-core/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	ErrCarUnavailable   = errs.Define("car is not available for rent", errs.ErrConflict)
	ErrNegativeBaseRate = errs.Define("car base rate cannot be negative", errs.ErrValidation)
)

type Status string

const (
	StatusAvailable   Status = "available"
	StatusUnavailable Status = "unavailable"
)

// Car is owned by the inventory; the rental core only reads it.
type Car struct {
	id       int64
	brand    string
	model    string
	year     int
	baseRate decimal.Decimal
	status   Status
}

func NewCar(id int64, brand, model string, year int, baseRate decimal.Decimal, status Status) (*Car, error) {
	if baseRate.IsNegative() {
		return nil, ErrNegativeBaseRate
	}
	return &Car{
		id:       id,
		brand:    strings.TrimSpace(brand),
		model:    strings.TrimSpace(model),
		year:     year,
		baseRate: baseRate,
		status:   status,
	}, nil
}

func (c *Car) IsRentable() bool {
	return c.status == StatusAvailable
}

func (c *Car) DisplayName() string {
	return strings.TrimSpace(c.brand + " " + c.model)
}

func (c *Car) ID() int64                 { return c.id }
func (c *Car) Brand() string             { return c.brand }
func (c *Car) Model() string             { return c.model }
func (c *Car) Year() int                 { return c.year }
func (c *Car) BaseRate() decimal.Decimal { return c.baseRate }
func (c *Car) Status() Status            { return c.status }
