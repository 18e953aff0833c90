package numerology

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/phrazzld/tikkun-core/internal/domain"
)

// NameNumbers holds the three numbers derived from a full name.
type NameNumbers struct {
	Expression  domain.ReducedNumber
	Soul        domain.ReducedNumber
	Personality domain.ReducedNumber
}

// Mapper derives name numbers from a letter table. A Mapper is immutable
// and safe for concurrent use.
type Mapper struct {
	table *LetterTable
}

// NewMapper creates a Mapper over the given letter table.
func NewMapper(table *LetterTable) *Mapper {
	return &Mapper{table: table}
}

// NewDefaultMapper creates a Mapper over the Pythagorean table.
func NewDefaultMapper() *Mapper {
	return &Mapper{table: NewDefaultTable()}
}

// stripMarks decomposes characters and drops combining marks, so that
// "José" maps the same letters as "Jose".
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// MapName derives the expression, soul, and personality numbers in a
// single pass over one normalization of the name.
//
// Normalization uppercases the name and strips diacritics. Whitespace and
// common name punctuation (hyphen, apostrophe, period) are discarded.
// Any other rune without a letter-table entry fails with an
// *domain.UnsupportedCharacterError carrying the rune and its position in
// the normalized name. A name with no letters at all fails with
// ErrEmptyName, as does one whose vowels or consonants alone sum to
// nothing (a soul or personality number cannot be derived from zero).
func (m *Mapper) MapName(name domain.FullName) (NameNumbers, error) {
	normalized, err := normalizeName(name.String())
	if err != nil {
		return NameNumbers{}, err
	}

	var total, vowelSum, consonantSum, letters int
	for i, r := range []rune(normalized) {
		if skippableRune(r) {
			continue
		}

		value, ok := m.table.Value(r)
		if !ok {
			return NameNumbers{}, &domain.UnsupportedCharacterError{Rune: r, Position: i}
		}

		letters++
		total += value
		if isVowel(r) {
			vowelSum += value
		} else {
			consonantSum += value
		}
	}

	if letters == 0 {
		return NameNumbers{}, fmt.Errorf("%w: %q", domain.ErrEmptyName, name.String())
	}

	expression, err := Reduce(total)
	if err != nil {
		return NameNumbers{}, err
	}

	if vowelSum == 0 {
		return NameNumbers{}, fmt.Errorf("%w: %q has no vowels for a soul number",
			domain.ErrEmptyName, name.String())
	}
	soul, err := Reduce(vowelSum)
	if err != nil {
		return NameNumbers{}, err
	}

	if consonantSum == 0 {
		return NameNumbers{}, fmt.Errorf("%w: %q has no consonants for a personality number",
			domain.ErrEmptyName, name.String())
	}
	personality, err := Reduce(consonantSum)
	if err != nil {
		return NameNumbers{}, err
	}

	return NameNumbers{
		Expression:  expression,
		Soul:        soul,
		Personality: personality,
	}, nil
}

// MapExpression derives the expression number: the reduced sum over every
// letter of the full name.
func (m *Mapper) MapExpression(name domain.FullName) (domain.ReducedNumber, error) {
	nn, err := m.MapName(name)
	if err != nil {
		return domain.ReducedNumber{}, err
	}
	return nn.Expression, nil
}

// MapSoul derives the soul (heart's desire) number: the reduced sum over
// the vowels only.
func (m *Mapper) MapSoul(name domain.FullName) (domain.ReducedNumber, error) {
	nn, err := m.MapName(name)
	if err != nil {
		return domain.ReducedNumber{}, err
	}
	return nn.Soul, nil
}

// MapPersonality derives the personality number: the reduced sum over the
// consonants only.
func (m *Mapper) MapPersonality(name domain.FullName) (domain.ReducedNumber, error) {
	nn, err := m.MapName(name)
	if err != nil {
		return domain.ReducedNumber{}, err
	}
	return nn.Personality, nil
}

// normalizeName strips diacritics and uppercases the name. The result may
// still contain whitespace and punctuation; the mapping loop decides what
// to skip so that error positions refer to the normalized text.
func normalizeName(raw string) (string, error) {
	normalized, _, err := transform.String(stripMarks, raw)
	if err != nil {
		return "", fmt.Errorf("failed to normalize name: %w", err)
	}
	return strings.ToUpper(normalized), nil
}

// skippableRune reports whether a rune is silently discarded during
// mapping: whitespace and the punctuation that commonly appears inside
// names.
func skippableRune(r rune) bool {
	if unicode.IsSpace(r) {
		return true
	}
	switch r {
	case '-', '\'', '’', '.':
		return true
	}
	return false
}

// isVowel classifies the normalized letter for the soul/personality split.
// Y counts as a consonant.
func isVowel(r rune) bool {
	switch r {
	case 'A', 'E', 'I', 'O', 'U':
		return true
	}
	return false
}
