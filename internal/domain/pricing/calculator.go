package pricing

import (
	"time"

	"car-rental-core/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidDateRange     = errs.Define("start date must not be after end date", errs.ErrValidation)
	ErrNegativeDrivingYears = errs.Define("driving years cannot be negative", errs.ErrValidation)
	ErrNegativeRate         = errs.Define("rate cannot be negative", errs.ErrValidation)
)

// Places is the number of decimal places a final price carries.
const Places = 2

// Quote is the input of a price calculation. Start and End are inclusive
// calendar days; the time of day is ignored.
type Quote struct {
	BaseRate      decimal.Decimal
	InsuranceRate decimal.Decimal
	DrivingYears  int
	Start         time.Time
	End           time.Time
	HasGPS        bool
	HasChildSeat  bool
}

// Rates holds the daily prices of optional equipment.
type Rates struct {
	GPSDaily       decimal.Decimal
	ChildSeatDaily decimal.Decimal
}

type Line struct {
	Name   string
	Amount decimal.Decimal
}

// Breakdown is the running state handed from step to step.
type Breakdown struct {
	Days  int64
	Total decimal.Decimal
	Lines []Line
}

func (b *Breakdown) add(name string, amount decimal.Decimal) {
	b.Total = b.Total.Add(amount)
	b.Lines = append(b.Lines, Line{Name: name, Amount: amount})
}

type Calculator interface {
	CalculatePrice(q Quote) (decimal.Decimal, error)
	Explain(q Quote) (Breakdown, error)
}

type PipelineCalculator struct {
	steps []Step
}

type Option func(*PipelineCalculator)

// WithSteps appends steps after the default pipeline.
func WithSteps(steps ...Step) Option {
	return func(c *PipelineCalculator) {
		c.steps = append(c.steps, steps...)
	}
}

func NewCalculator(rates Rates, opts ...Option) *PipelineCalculator {
	c := &PipelineCalculator{steps: DefaultSteps(rates)}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func DefaultSteps(rates Rates) []Step {
	return []Step{
		RentalDaysStep{},
		BaseRateStep{},
		DrivingExperienceStep{},
		InsuranceStep{},
		DailyAddOnStep{Name: "gps", Rate: rates.GPSDaily, Enabled: func(q Quote) bool { return q.HasGPS }},
		DailyAddOnStep{Name: "child_seat", Rate: rates.ChildSeatDaily, Enabled: func(q Quote) bool { return q.HasChildSeat }},
	}
}

func (c *PipelineCalculator) CalculatePrice(q Quote) (decimal.Decimal, error) {
	b, err := c.Explain(q)
	if err != nil {
		return decimal.Zero, err
	}
	return b.Total, nil
}

func (c *PipelineCalculator) Explain(q Quote) (Breakdown, error) {
	if q.BaseRate.IsNegative() || q.InsuranceRate.IsNegative() {
		return Breakdown{}, ErrNegativeRate
	}

	b := Breakdown{Total: decimal.Zero}
	for _, step := range c.steps {
		if err := step.Apply(q, &b); err != nil {
			return Breakdown{}, err
		}
	}
	b.Total = b.Total.Round(Places)
	return b, nil
}

// DayNumber counts days since the Unix epoch for the calendar date of t.
func DayNumber(t time.Time) int64 {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix() / int64(24*time.Hour/time.Second)
}

// RentalDays returns the inclusive number of calendar days between start and end.
func RentalDays(start, end time.Time) (int64, error) {
	days := DayNumber(end) - DayNumber(start) + 1
	if days < 1 {
		return 0, ErrInvalidDateRange
	}
	return days, nil
}
