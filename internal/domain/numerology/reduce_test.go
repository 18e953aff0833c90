package numerology

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/tikkun-core/internal/domain"
)

func TestReduce(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name   string
		input  int
		value  int
		master bool
	}{
		{name: "single digit is returned as is", input: 7, value: 7, master: false},
		{name: "two digits collapse", input: 10, value: 1, master: false},
		{name: "master 11 is a fixed point", input: 11, value: 11, master: true},
		{name: "master 22 is a fixed point", input: 22, value: 22, master: true},
		{name: "master 33 is a fixed point", input: 33, value: 33, master: true},
		{name: "29 halts at intermediate 11", input: 29, value: 11, master: true},
		{name: "38 halts at intermediate 11", input: 38, value: 11, master: true},
		{name: "large number reduces through chain", input: 1990, value: 1, master: false},
		{name: "chain passing 10 keeps reducing", input: 19, value: 1, master: false},
		{name: "44 is not a master", input: 44, value: 8, master: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := Reduce(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.value, got.Value)
			assert.Equal(t, tc.master, got.Master)
		})
	}
}

func TestReduceRejectsNonPositive(t *testing.T) {
	t.Parallel()

	for _, input := range []int{0, -1, -42} {
		_, err := Reduce(input)
		assert.ErrorIs(t, err, domain.ErrNonPositiveValue, "input %d", input)

		_, err = ReduceSimple(input)
		assert.ErrorIs(t, err, domain.ErrNonPositiveValue, "input %d", input)
	}
}

// TestReduceIsTotal sweeps a dense range and checks every result lands in
// 1-9 or a master number, so termination is exercised rather than assumed.
func TestReduceIsTotal(t *testing.T) {
	t.Parallel()

	for n := 1; n <= 20000; n++ {
		got, err := Reduce(n)
		require.NoError(t, err, "input %d", n)

		valid := (got.Value >= 1 && got.Value <= 9) || domain.MasterNumbers[got.Value]
		require.True(t, valid, "Reduce(%d) produced %d", n, got.Value)
		require.Equal(t, domain.MasterNumbers[got.Value], got.Master, "input %d", n)
	}
}

func TestReduceSimpleIgnoresMasters(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		input    int
		expected int
	}{
		{11, 2},
		{22, 4},
		{33, 6},
		{29, 2},
		{9, 9},
		{1990, 1},
	}

	for _, tc := range testCases {
		got, err := ReduceSimple(tc.input)
		require.NoError(t, err)
		assert.Equal(t, tc.expected, got, "input %d", tc.input)
	}
}

func TestReduceIsDeterministic(t *testing.T) {
	t.Parallel()

	first, err := Reduce(123456789)
	require.NoError(t, err)
	second, err := Reduce(123456789)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
