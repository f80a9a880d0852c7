package rental

// Status ids match the rental_statuses lookup table.
type Status int16

const (
	StatusConfirmed     Status = 1
	StatusPendingReturn Status = 2
	StatusCompleted     Status = 3
)

func (s Status) String() string {
	switch s {
	case StatusConfirmed:
		return "confirmed"
	case StatusPendingReturn:
		return "pending_return"
	case StatusCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

func (s Status) IsValid() bool {
	switch s {
	case StatusConfirmed, StatusPendingReturn, StatusCompleted:
		return true
	default:
		return false
	}
}

// Occupies reports whether a rental in this status blocks its car's dates.
func (s Status) Occupies() bool {
	return s != StatusCompleted
}

func ParseStatus(v string) (Status, bool) {
	for _, s := range []Status{StatusConfirmed, StatusPendingReturn, StatusCompleted} {
		if s.String() == v {
			return s, true
		}
	}
	return 0, false
}
