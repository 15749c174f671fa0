package run

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	ErrInvalidDate      = errors.New("invalid date format, use YYYY-MM-DD")
	ErrInvalidTime      = errors.New("invalid time format, use HH:MM or HH:MM:SS")
	ErrDistanceRequired = errors.New("distance is required")
	ErrInvalidDistance  = errors.New("invalid distance, enter a number (e.g. 3.5)")
)

// dateLayouts are tried in order. Month and day may be unpadded; US
// formats put the month first.
var dateLayouts = []string{
	"2006-1-2",
	"1/2/2006",
	"1-2-2006",
}

var timeLayouts = []string{
	"15:04:05",
	"15:04",
	"3:04 PM",
	"3:04:05 PM",
}

// plainDecimal matches "3", "3.5", ".5" and "-3" but not "+3", exponents, hex or inf/nan.
var plainDecimal = regexp.MustCompile(`^-?(\d+\.?\d*|\.\d+)$`)

// ParseDate parses s using the accepted date layouts.
// An empty string yields now's calendar date.
func ParseDate(s string, now time.Time) (Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return DateOf(now), nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return DateOf(t), nil
		}
	}
	return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
}

// ParseTime parses s using the accepted 24-hour and 12-hour layouts.
// An empty string yields now's time of day.
func ParseTime(s string, now time.Time) (TimeOfDay, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return TimeOf(now), nil
	}
	// time.Parse only matches the PM marker in upper case
	s = strings.ToUpper(s)
	for _, layout := range timeLayouts {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		// the 12-hour clock has no hour 0, but time.Parse accepts it
		if strings.HasSuffix(layout, "PM") && strings.TrimLeft(s[:strings.IndexByte(s, ':')], "0") == "" {
			break
		}
		return TimeOf(t), nil
	}
	return TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidTime, s)
}

// ParseDistance parses a plain decimal number of miles.
// Range checks are left to ValidateDistance.
func ParseDistance(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrDistanceRequired
	}
	if !plainDecimal.MatchString(s) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDistance, s)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDistance, s)
	}
	return v, nil
}

// FormatDate returns the canonical storage form of d.
func FormatDate(d Date) string {
	return d.String()
}

// FormatTime returns the canonical storage form of t.
func FormatTime(t TimeOfDay) string {
	return t.String()
}

// FormatDistance renders miles without trailing zeros, e.g. 3.5 or 10.
func FormatDistance(miles float64) string {
	return strconv.FormatFloat(miles, 'f', -1, 64)
}

// Input holds the raw strings typed into the entry form.
type Input struct {
	ID       int64 // non-zero when editing an existing run
	Date     string
	Time     string
	Distance string
	Note     string
}

// FromInput parses every field of in and builds a validated Run.
// The first failing field determines the returned error.
func FromInput(in Input, now time.Time) (Run, error) {
	date, err := ParseDate(in.Date, now)
	if err != nil {
		return Run{}, err
	}
	started, err := ParseTime(in.Time, now)
	if err != nil {
		return Run{}, err
	}
	distance, err := ParseDistance(in.Distance)
	if err != nil {
		return Run{}, err
	}
	r, err := New(date, started, distance, strings.TrimSpace(in.Note))
	if err != nil {
		return Run{}, err
	}
	r.ID = in.ID
	return r, nil
}

// InputFrom fills a form from an existing run so it can be edited.
func InputFrom(r Run) Input {
	return Input{
		ID:       r.ID,
		Date:     FormatDate(r.Date),
		Time:     FormatTime(r.TimeStarted),
		Distance: FormatDistance(r.DistanceMiles),
		Note:     r.Note,
	}
}
