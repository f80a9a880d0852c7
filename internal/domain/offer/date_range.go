package offer

import (
	"time"

	"car-rental-core/internal/domain/pricing"
)

const DateLayout = "2006-01-02"

// DateRange is a closed interval of calendar days in UTC.
type DateRange struct {
	start time.Time
	end   time.Time
}

func NewDateRange(start, end time.Time) (DateRange, error) {
	s, e := TruncateDay(start), TruncateDay(end)
	if s.After(e) {
		return DateRange{}, ErrInvalidDateRange
	}
	return DateRange{start: s, end: e}, nil
}

func TruncateDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (r DateRange) Start() time.Time { return r.start }
func (r DateRange) End() time.Time   { return r.end }

func (r DateRange) Days() int64 {
	return pricing.DayNumber(r.end) - pricing.DayNumber(r.start) + 1
}

// Overlaps reports whether both ranges share at least one day.
func (r DateRange) Overlaps(other DateRange) bool {
	return !r.start.After(other.end) && !r.end.Before(other.start)
}

func (r DateRange) String() string {
	return r.start.Format(DateLayout) + "/" + r.end.Format(DateLayout)
}

// ReconstructDateRange rebuilds a range read back from storage.
func ReconstructDateRange(start, end time.Time) DateRange {
	return DateRange{start: TruncateDay(start), end: TruncateDay(end)}
}
