package pricing

import "github.com/shopspring/decimal"

// Step is one stage of the price pipeline. Steps hold no state of their own.
type Step interface {
	Apply(q Quote, b *Breakdown) error
}

type StepFunc func(q Quote, b *Breakdown) error

func (f StepFunc) Apply(q Quote, b *Breakdown) error { return f(q, b) }

type RentalDaysStep struct{}

func (RentalDaysStep) Apply(q Quote, b *Breakdown) error {
	days, err := RentalDays(q.Start, q.End)
	if err != nil {
		return err
	}
	b.Days = days
	return nil
}

type BaseRateStep struct{}

func (BaseRateStep) Apply(q Quote, b *Breakdown) error {
	b.add("base", q.BaseRate.Mul(decimal.NewFromInt(b.Days)))
	return nil
}

// DrivingExperienceStep surcharges drivers by base/years; a driver with no
// experience pays the whole base again.
type DrivingExperienceStep struct{}

func (DrivingExperienceStep) Apply(q Quote, b *Breakdown) error {
	if q.DrivingYears < 0 {
		return ErrNegativeDrivingYears
	}
	base := b.Total
	tax := base
	if q.DrivingYears > 0 {
		tax = base.Div(decimal.NewFromInt(int64(q.DrivingYears)))
	}
	b.add("driving_experience", tax)
	return nil
}

type InsuranceStep struct{}

func (InsuranceStep) Apply(q Quote, b *Breakdown) error {
	b.add("insurance", q.InsuranceRate.Mul(decimal.NewFromInt(b.Days)))
	return nil
}

type DailyAddOnStep struct {
	Name    string
	Rate    decimal.Decimal
	Enabled func(q Quote) bool
}

func (s DailyAddOnStep) Apply(q Quote, b *Breakdown) error {
	if s.Enabled == nil || !s.Enabled(q) {
		return nil
	}
	if s.Rate.IsNegative() {
		return ErrNegativeRate
	}
	b.add(s.Name, s.Rate.Mul(decimal.NewFromInt(b.Days)))
	return nil
}
