package domain

import "time"

// Interval is a half-open time range [Start, End)
type Interval struct {
	Start time.Time
	End   time.Time
}

// NewInterval creates an interval
func NewInterval(start, end time.Time) Interval {
	return Interval{Start: start, End: end}
}

// IsValid returns true if Start is strictly before End
func (i Interval) IsValid() bool {
	return i.Start.Before(i.End)
}

// Overlaps returns true if the intervals share at least one instant.
// Back-to-back intervals (one ends exactly when the other starts) do not overlap.
func (i Interval) Overlaps(other Interval) bool {
	return i.Start.Before(other.End) && i.End.After(other.Start)
}

// Intersection returns the overlap window [max(starts), min(ends)).
// The result is only meaningful when Overlaps is true.
func (i Interval) Intersection(other Interval) Interval {
	start := i.Start
	if other.Start.After(start) {
		start = other.Start
	}
	end := i.End
	if other.End.Before(end) {
		end = other.End
	}
	return Interval{Start: start, End: end}
}

// Duration returns the length of the interval
func (i Interval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}

// Hours returns the length of the interval in fractional hours
func (i Interval) Hours() float64 {
	return i.Duration().Hours()
}

// Contains returns true if the other interval lies entirely inside this one
func (i Interval) Contains(other Interval) bool {
	return !other.Start.Before(i.Start) && !other.End.After(i.End)
}

// UTC returns the interval with both bounds converted to UTC
func (i Interval) UTC() Interval {
	return Interval{Start: i.Start.UTC(), End: i.End.UTC()}
}
