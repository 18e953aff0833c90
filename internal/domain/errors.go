package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrNonPositiveValue is returned when digit reduction is asked to
	// reduce zero or a negative number.
	ErrNonPositiveValue = errors.New("number to reduce must be positive")

	// ErrInvalidDate is returned when a birth date is not a real calendar
	// date or falls outside the supported year range.
	ErrInvalidDate = errors.New("invalid birth date")

	// ErrEmptyName is returned when a full name contains no letters after
	// normalization.
	ErrEmptyName = errors.New("name contains no letters")

	// ErrUnsupportedCharacter is returned when a name contains a character
	// outside the supported alphabet. Use errors.As with
	// *UnsupportedCharacterError to recover the offending rune and position.
	ErrUnsupportedCharacter = errors.New("unsupported character in name")

	// ErrInvalidReducedValue is returned when a value outside 1-9 and the
	// master numbers 11, 22, 33 is used where a reduced number is expected.
	ErrInvalidReducedValue = errors.New("value is not a valid reduced number")
)

// UnsupportedCharacterError reports a character that survived normalization
// but has no entry in the letter table. Position is the rune index within
// the normalized name, so callers can point the user at the exact spot.
type UnsupportedCharacterError struct {
	Rune     rune
	Position int
}

func (e *UnsupportedCharacterError) Error() string {
	return fmt.Sprintf("unsupported character %q at position %d", e.Rune, e.Position)
}

// Is makes the typed error match ErrUnsupportedCharacter under errors.Is.
func (e *UnsupportedCharacterError) Is(target error) bool {
	return target == ErrUnsupportedCharacter
}
