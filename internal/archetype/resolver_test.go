package archetype

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/tikkun-core/internal/domain"
)

func mustNumber(t *testing.T, value int) domain.ReducedNumber {
	t.Helper()
	n, err := domain.NewReducedNumber(value)
	require.NoError(t, err)
	return n
}

func testProfile(t *testing.T, withName bool) domain.NumericProfile {
	t.Helper()

	date, err := domain.NewBirthDate(1990, 11, 29)
	require.NoError(t, err)

	profile := domain.NumericProfile{
		Date:        date,
		LifePath:    mustNumber(t, 5),
		DayEnergy:   mustNumber(t, 11),
		MonthEnergy: mustNumber(t, 11),
		YearEnergy:  mustNumber(t, 1),
	}
	if withName {
		expression := mustNumber(t, 5)
		soul := mustNumber(t, 7)
		personality := mustNumber(t, 3)
		profile.Expression = &expression
		profile.Soul = &soul
		profile.Personality = &personality
	}
	return profile
}

func TestResolvePrimaryIsLifePath(t *testing.T) {
	t.Parallel()

	catalog, err := NewDefaultCatalog()
	require.NoError(t, err)
	resolver := NewResolver(catalog)

	resolved, err := resolver.Resolve(testProfile(t, false))
	require.NoError(t, err)

	want, err := catalog.Descriptor(domain.DimensionLifePath, mustNumber(t, 5))
	require.NoError(t, err)
	assert.Equal(t, want, resolved.Primary)
	assert.Equal(t, 5, resolved.Numbers.LifePath.Value)
}

func TestResolveModifierOrder(t *testing.T) {
	t.Parallel()

	catalog, err := NewDefaultCatalog()
	require.NoError(t, err)
	resolver := NewResolver(catalog)

	resolved, err := resolver.Resolve(testProfile(t, true))
	require.NoError(t, err)

	require.Len(t, resolved.Modifiers, len(domain.ModifierDimensions))
	for i, dim := range domain.ModifierDimensions {
		assert.Equal(t, dim, resolved.Modifiers[i].Dimension)
	}
}

func TestResolveDateOnlySkipsNameDimensions(t *testing.T) {
	t.Parallel()

	catalog, err := NewDefaultCatalog()
	require.NoError(t, err)
	resolver := NewResolver(catalog)

	resolved, err := resolver.Resolve(testProfile(t, false))
	require.NoError(t, err)

	require.Len(t, resolved.Modifiers, 3)
	assert.Equal(t, domain.DimensionDay, resolved.Modifiers[0].Dimension)
	assert.Equal(t, domain.DimensionMonth, resolved.Modifiers[1].Dimension)
	assert.Equal(t, domain.DimensionYear, resolved.Modifiers[2].Dimension)
}

func TestResolveMarksEchoesOfThePrimary(t *testing.T) {
	t.Parallel()

	catalog, err := NewDefaultCatalog()
	require.NoError(t, err)
	resolver := NewResolver(catalog)

	resolved, err := resolver.Resolve(testProfile(t, true))
	require.NoError(t, err)

	echoes := make(map[domain.Dimension]bool, len(resolved.Modifiers))
	for _, modifier := range resolved.Modifiers {
		echoes[modifier.Dimension] = modifier.EchoesPrimary
	}

	// Only the expression number matches the life path 5.
	assert.True(t, echoes[domain.DimensionExpression])
	assert.False(t, echoes[domain.DimensionDay])
	assert.False(t, echoes[domain.DimensionSoul])
	assert.False(t, echoes[domain.DimensionPersonality])
}

func TestResolvePropagatesKnowledgeBaseGap(t *testing.T) {
	t.Parallel()

	catalog, err := NewDefaultCatalog()
	require.NoError(t, err)
	resolver := NewResolver(catalog)

	profile := testProfile(t, false)
	profile.LifePath = domain.ReducedNumber{Value: 10}

	_, err = resolver.Resolve(profile)
	assert.ErrorIs(t, err, ErrKnowledgeBaseGap)
}
