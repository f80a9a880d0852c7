//go:build unit

package pricing_test

import (
	"testing"
	"time"

	"car-rental-core/internal/domain/pricing"
	"car-rental-core/internal/pkg/errs"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var defaultRates = pricing.Rates{
	GPSDaily:       decimal.NewFromInt(10),
	ChildSeatDaily: decimal.NewFromInt(15),
}

func day(d int) time.Time {
	return time.Date(2025, time.March, d, 0, 0, 0, 0, time.UTC)
}

func baseQuote() pricing.Quote {
	return pricing.Quote{
		BaseRate:      decimal.NewFromInt(100),
		InsuranceRate: decimal.NewFromInt(20),
		DrivingYears:  5,
		Start:         day(10),
		End:           day(10),
	}
}

func TestCalculatePrice(t *testing.T) {
	calc := pricing.NewCalculator(defaultRates)

	testCases := []struct {
		name    string
		mutate  func(q *pricing.Quote)
		want    string
		wantErr error
	}{
		{
			name:   "one day experienced driver without add-ons",
			mutate: func(q *pricing.Quote) {},
			want:   "140",
		},
		{
			name:   "inexperienced driver pays full surcharge",
			mutate: func(q *pricing.Quote) { q.DrivingYears = 0 },
			want:   "220",
		},
		{
			name: "two days with gps",
			mutate: func(q *pricing.Quote) {
				q.End = day(11)
				q.HasGPS = true
			},
			want: "300",
		},
		{
			name: "two days with gps and child seat",
			mutate: func(q *pricing.Quote) {
				q.End = day(11)
				q.HasGPS = true
				q.HasChildSeat = true
			},
			want: "330",
		},
		{
			name:   "repeating fraction is rounded to cents",
			mutate: func(q *pricing.Quote) { q.DrivingYears = 3 },
			want:   "153.33",
		},
		{
			name: "time of day is ignored",
			mutate: func(q *pricing.Quote) {
				q.Start = day(10).Add(22 * time.Hour)
				q.End = day(10).Add(time.Hour)
			},
			want: "140",
		},
		{
			name:    "negative driving years",
			mutate:  func(q *pricing.Quote) { q.DrivingYears = -1 },
			wantErr: pricing.ErrNegativeDrivingYears,
		},
		{
			name:    "start after end",
			mutate:  func(q *pricing.Quote) { q.Start = day(12) },
			wantErr: pricing.ErrInvalidDateRange,
		},
		{
			name:    "negative base rate",
			mutate:  func(q *pricing.Quote) { q.BaseRate = decimal.NewFromInt(-1) },
			wantErr: pricing.ErrNegativeRate,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			q := baseQuote()
			tc.mutate(&q)

			got, err := calc.CalculatePrice(q)
			if tc.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errs.Is(err, tc.wantErr))
				assert.True(t, errs.Is(err, errs.ErrValidation))
				return
			}
			require.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tc.want).Equal(got), "want %s got %s", tc.want, got)
		})
	}
}

func TestCalculatePrice_IsDeterministic(t *testing.T) {
	calc := pricing.NewCalculator(defaultRates)
	q := baseQuote()
	q.End = day(14)
	q.HasChildSeat = true
	q.DrivingYears = 7

	first, err := calc.CalculatePrice(q)
	require.NoError(t, err)
	for range 20 {
		again, err := calc.CalculatePrice(q)
		require.NoError(t, err)
		assert.True(t, first.Equal(again))
	}
}

func TestExplain_Breakdown(t *testing.T) {
	calc := pricing.NewCalculator(defaultRates)
	q := baseQuote()
	q.End = day(11)
	q.HasGPS = true

	got, err := calc.Explain(q)
	require.NoError(t, err)

	want := []string{"base=200", "driving_experience=40", "insurance=40", "gps=20"}
	lines := make([]string, 0, len(got.Lines))
	for _, l := range got.Lines {
		lines = append(lines, l.Name+"="+l.Amount.String())
	}
	if diff := cmp.Diff(want, lines); diff != "" {
		t.Errorf("breakdown mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, int64(2), got.Days)
}

func TestWithSteps_AppendsAfterDefaults(t *testing.T) {
	airportFee := pricing.StepFunc(func(_ pricing.Quote, b *pricing.Breakdown) error {
		b.Total = b.Total.Add(decimal.NewFromInt(5))
		return nil
	})
	calc := pricing.NewCalculator(defaultRates, pricing.WithSteps(airportFee))

	got, err := calc.CalculatePrice(baseQuote())
	require.NoError(t, err)
	assert.Equal(t, "145", got.String())
}

func TestRentalDays(t *testing.T) {
	days, err := pricing.RentalDays(day(1), day(1))
	require.NoError(t, err)
	assert.Equal(t, int64(1), days)

	days, err = pricing.RentalDays(time.Date(2024, time.February, 28, 0, 0, 0, 0, time.UTC), time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, int64(3), days)
}
