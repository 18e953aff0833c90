package domain

import (
	"fmt"
	"strings"
)

// FullName is an ordered sequence of name words as the caller supplied
// them. Words keep their original casing and diacritics; normalization is
// the letter mapper's job so the raw input stays available for error
// reporting.
type FullName struct {
	Words []string `json:"words"`
}

// NewFullName creates a FullName from raw input, splitting on whitespace.
// Returns ErrEmptyName when the input is blank.
func NewFullName(raw string) (FullName, error) {
	words := strings.Fields(raw)
	if len(words) == 0 {
		return FullName{}, fmt.Errorf("%w: blank name", ErrEmptyName)
	}
	return FullName{Words: words}, nil
}

// String joins the words with single spaces.
func (n FullName) String() string {
	return strings.Join(n.Words, " ")
}
