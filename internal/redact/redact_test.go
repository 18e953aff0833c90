package redact

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
		{
			name:     "quoted name",
			input:    `full name "Ana Lev" contains no letters`,
			expected: `full name [REDACTED_NAME] contains no letters`,
		},
		{
			name:     "quoted rune",
			input:    `unsupported character '4' at position 3`,
			expected: `unsupported character [REDACTED_CHAR] at position 3`,
		},
		{
			name:     "iso date",
			input:    "invalid birth date 1990-02-30",
			expected: "invalid birth date [REDACTED_DATE]",
		},
		{
			name:     "slash date",
			input:    "invalid birth date 30/2/1990",
			expected: "invalid birth date [REDACTED_DATE]",
		},
		{
			name:     "mixed personal data",
			input:    `name "María" born 1985-06-03 has unsupported character '4'`,
			expected: `name [REDACTED_NAME] born [REDACTED_DATE] has unsupported character [REDACTED_CHAR]`,
		},
		{
			name:     "no personal data",
			input:    "knowledge base gap: soul/10",
			expected: "knowledge base gap: soul/10",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.expected, String(tc.input))
		})
	}
}

func TestError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", Error(nil))

	err := fmt.Errorf("failed to map name %q: %w", "Ana Lev", errors.New("boom"))
	assert.Equal(t, "failed to map name [REDACTED_NAME]: boom", Error(err))
}
