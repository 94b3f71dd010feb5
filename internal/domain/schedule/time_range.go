package schedule

// TimeRange is a half-open [start, end) window within a single day.
type TimeRange struct {
	start TimeOfDay
	end   TimeOfDay
}

func NewTimeRange(start, end TimeOfDay) (TimeRange, error) {
	if !start.Before(end) {
		return TimeRange{}, ErrInvalidTimeRange
	}
	return TimeRange{start: start, end: end}, nil
}

// ParseTimeRange parses both endpoints and validates their ordering.
func ParseTimeRange(start, end string) (TimeRange, error) {
	s, err := ParseTimeOfDay(start)
	if err != nil {
		return TimeRange{}, err
	}
	e, err := ParseTimeOfDay(end)
	if err != nil {
		return TimeRange{}, err
	}
	return NewTimeRange(s, e)
}

func (r TimeRange) Start() TimeOfDay {
	return r.start
}

func (r TimeRange) End() TimeOfDay {
	return r.end
}

// Contains reports whether inner lies entirely within r.
func (r TimeRange) Contains(inner TimeRange) bool {
	return r.start <= inner.start && inner.end <= r.end
}

// Overlaps uses half-open semantics: ranges that merely touch at an
// endpoint (back-to-back bookings) do not overlap.
func (r TimeRange) Overlaps(other TimeRange) bool {
	return r.start < other.end && other.start < r.end
}

func (r TimeRange) String() string {
	return r.start.String() + "-" + r.end.String()
}
