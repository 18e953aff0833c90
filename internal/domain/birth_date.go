package domain

import (
	"fmt"
	"time"
)

// Supported year window. Readings are for living people, so the year is
// bounded by a plausible lifespan rather than the full calendar.
const (
	MinBirthYear = 1900
	MaxBirthYear = 2100
)

// BirthDate is a validated calendar date. Construct it with NewBirthDate;
// the zero value is not a valid date.
type BirthDate struct {
	Day   int `json:"day"`
	Month int `json:"month"`
	Year  int `json:"year"`
}

// NewBirthDate creates a BirthDate after checking that year, month and day
// form a real calendar date within the supported year window.
// Returns ErrInvalidDate otherwise.
func NewBirthDate(year, month, day int) (BirthDate, error) {
	if year < MinBirthYear || year > MaxBirthYear {
		return BirthDate{}, fmt.Errorf("%w: year %d outside supported range %d-%d",
			ErrInvalidDate, year, MinBirthYear, MaxBirthYear)
	}

	// time.Date normalizes out-of-range components (Feb 30 becomes Mar 2),
	// so a round trip detects every malformed date.
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != time.Month(month) || t.Day() != day {
		return BirthDate{}, fmt.Errorf("%w: %04d-%02d-%02d is not a calendar date",
			ErrInvalidDate, year, month, day)
	}

	return BirthDate{Day: day, Month: month, Year: year}, nil
}

// String renders the date in ISO order: "1990-11-29".
func (d BirthDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}
