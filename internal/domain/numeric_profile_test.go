package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumericProfileNumber(t *testing.T) {
	t.Parallel()

	expression := ReducedNumber{Value: 11, Master: true}
	soul := ReducedNumber{Value: 9}
	personality := ReducedNumber{Value: 2}

	full := NumericProfile{
		LifePath:    ReducedNumber{Value: 5},
		DayEnergy:   ReducedNumber{Value: 11, Master: true},
		MonthEnergy: ReducedNumber{Value: 11, Master: true},
		YearEnergy:  ReducedNumber{Value: 1},
		Expression:  &expression,
		Soul:        &soul,
		Personality: &personality,
	}
	require.True(t, full.HasName())

	for _, dim := range AllDimensions {
		_, ok := full.Number(dim)
		assert.True(t, ok, "dimension %s", dim)
	}

	dateOnly := full
	dateOnly.Expression = nil
	dateOnly.Soul = nil
	dateOnly.Personality = nil
	require.False(t, dateOnly.HasName())

	for _, dim := range AllDimensions {
		_, ok := dateOnly.Number(dim)
		assert.Equal(t, !dim.FromName(), ok, "dimension %s", dim)
	}
}

func TestModifierDimensionOrder(t *testing.T) {
	t.Parallel()

	expected := []Dimension{
		DimensionDay, DimensionMonth, DimensionYear,
		DimensionExpression, DimensionSoul, DimensionPersonality,
	}
	assert.Equal(t, expected, ModifierDimensions)

	for _, dim := range AllDimensions {
		assert.True(t, dim.IsValid(), "dimension %s", dim)
		assert.NotEmpty(t, dim.Label(), "dimension %s", dim)
	}
	assert.False(t, Dimension("bogus").IsValid())
}
