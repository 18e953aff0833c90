package numerology

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Letter table configuration errors.
var (
	// ErrTableIncomplete is returned when a letter table does not assign a
	// value to every letter A-Z.
	ErrTableIncomplete = errors.New("letter table must cover every letter A-Z")

	// ErrTableValueRange is returned when a letter table assigns a value
	// outside the 1-9 cycle.
	ErrTableValueRange = errors.New("letter table values must be between 1 and 9")

	// ErrTableBadKey is returned when a letter table entry is keyed by
	// something other than a single letter A-Z.
	ErrTableBadKey = errors.New("letter table keys must be single letters A-Z")
)

// LetterTable is the immutable letter-to-value correspondence used to
// derive name numbers. It covers exactly the letters A-Z with values in
// the 1-9 cycle; construction fails on anything else, so a built table
// needs no runtime checks.
type LetterTable struct {
	values map[rune]int
}

// NewDefaultTable returns the Pythagorean table: A=1 through I=9, then the
// cycle repeats (J=1, ..., R=9, S=1, ..., Z=8).
func NewDefaultTable() *LetterTable {
	values := make(map[rune]int, 26)
	for i, r := 0, 'A'; r <= 'Z'; i, r = i+1, r+1 {
		values[r] = (i % 9) + 1
	}
	return &LetterTable{values: values}
}

// NewTable builds a table from an explicit mapping, validating full A-Z
// coverage and the 1-9 value range.
func NewTable(values map[rune]int) (*LetterTable, error) {
	for r, v := range values {
		if r < 'A' || r > 'Z' {
			return nil, fmt.Errorf("%w: %q", ErrTableBadKey, r)
		}
		if v < 1 || v > 9 {
			return nil, fmt.Errorf("%w: %q has value %d", ErrTableValueRange, r, v)
		}
	}
	if len(values) != 26 {
		return nil, fmt.Errorf("%w: got %d letters", ErrTableIncomplete, len(values))
	}

	copied := make(map[rune]int, len(values))
	for r, v := range values {
		copied[r] = v
	}
	return &LetterTable{values: copied}, nil
}

// LoadTable builds a table from a YAML document of the form
//
//	letters:
//	  A: 1
//	  B: 2
//	  ...
//
// The same completeness rules as NewTable apply.
func LoadTable(data []byte) (*LetterTable, error) {
	var doc struct {
		Letters map[string]int `yaml:"letters"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse letter table: %w", err)
	}

	values := make(map[rune]int, len(doc.Letters))
	for key, v := range doc.Letters {
		runes := []rune(key)
		if len(runes) != 1 {
			return nil, fmt.Errorf("%w: %q", ErrTableBadKey, key)
		}
		values[runes[0]] = v
	}

	return NewTable(values)
}

// Value returns the table value for an uppercase letter and whether the
// letter is covered.
func (t *LetterTable) Value(r rune) (int, bool) {
	v, ok := t.values[r]
	return v, ok
}
