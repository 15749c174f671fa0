package run

import (
	"errors"
	"fmt"
	"time"
)

// MaxDistanceMiles is the largest distance accepted for a single run.
const MaxDistanceMiles = 200.0

var (
	// ErrDistanceRange is wrapped by every distance bound violation.
	ErrDistanceRange = errors.New("distance out of range")
	// ErrDistanceNotPositive is returned for distances <= 0.
	ErrDistanceNotPositive = fmt.Errorf("%w: distance must be positive", ErrDistanceRange)
	// ErrDistanceUnrealistic is returned for distances above MaxDistanceMiles.
	ErrDistanceUnrealistic = fmt.Errorf("%w: distance seems unrealistic (>200 miles)", ErrDistanceRange)
)

// Run is a single logged run.
type Run struct {
	ID            int64 // 0 until the store assigns one
	Date          Date
	TimeStarted   TimeOfDay
	DistanceMiles float64
	Note          string // empty means no note
	CreatedAt     time.Time
}

// New validates distance and returns an unsaved Run stamped with the current UTC time.
func New(date Date, started TimeOfDay, distance float64, note string) (Run, error) {
	if err := ValidateDistance(distance); err != nil {
		return Run{}, err
	}
	return Run{
		Date:          date,
		TimeStarted:   started,
		DistanceMiles: distance,
		Note:          note,
		CreatedAt:     time.Now().UTC(),
	}, nil
}

// ValidateDistance checks the (0, MaxDistanceMiles] invariant.
func ValidateDistance(distance float64) error {
	// NaN fails both comparisons, so test the valid range directly.
	if !(distance > 0) {
		return ErrDistanceNotPositive
	}
	if distance > MaxDistanceMiles {
		return ErrDistanceUnrealistic
	}
	return nil
}

// Saved reports whether the run has been persisted.
func (r Run) Saved() bool {
	return r.ID != 0
}

// HasNote reports whether the run carries a note.
func (r Run) HasNote() bool {
	return r.Note != ""
}

// Less orders runs most recent first (date, then start time, both descending).
func Less(a, b Run) bool {
	if c := a.Date.Compare(b.Date); c != 0 {
		return c > 0
	}
	return a.TimeStarted.Compare(b.TimeStarted) > 0
}
