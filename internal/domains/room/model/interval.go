package model

import (
	"fmt"
	"time"
)

// Interval is the half-open range [Start, End). Build it with NewInterval so
// that Start is always strictly before End.
type Interval struct {
	Start time.Time
	End   time.Time
}

func NewInterval(start, end time.Time) (Interval, error) {
	if !start.Before(end) {
		return Interval{}, fmt.Errorf("%w: start %s, end %s",
			ErrInvalidInterval, start.Format(time.RFC3339), end.Format(time.RFC3339))
	}

	return Interval{Start: start, End: end}, nil
}

// Overlaps reports whether the two ranges share an instant. Ranges that only
// touch at a boundary do not overlap.
func (i Interval) Overlaps(other Interval) bool {
	return i.Start.Before(other.End) && i.End.After(other.Start)
}

func (i Interval) Bounds() (start, end time.Time) {
	return i.Start, i.End
}

func (i Interval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}
