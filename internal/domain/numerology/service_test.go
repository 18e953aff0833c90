package numerology

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/tikkun-core/internal/domain"
)

func TestDeriveProfileDateOnly(t *testing.T) {
	t.Parallel()
	svc := NewDefaultService()

	profile, err := svc.DeriveProfile(mustDate(t, 1990, 11, 29), nil)
	require.NoError(t, err)

	assert.Equal(t, 5, profile.LifePath.Value)
	assert.Equal(t, 11, profile.DayEnergy.Value)
	assert.Equal(t, 11, profile.MonthEnergy.Value)
	assert.Equal(t, 1, profile.YearEnergy.Value)

	assert.False(t, profile.HasName())
	assert.Nil(t, profile.Expression)
	assert.Nil(t, profile.Soul)
	assert.Nil(t, profile.Personality)
}

func TestDeriveProfileWithName(t *testing.T) {
	t.Parallel()
	svc := NewDefaultService()

	name := mustName(t, "Lea Ruiz")
	profile, err := svc.DeriveProfile(mustDate(t, 1990, 11, 29), &name)
	require.NoError(t, err)

	require.True(t, profile.HasName())
	assert.Equal(t, 11, profile.Expression.Value)
	assert.True(t, profile.Expression.Master)
	assert.Equal(t, 9, profile.Soul.Value)
	assert.Equal(t, 2, profile.Personality.Value)
}

func TestDeriveProfilePropagatesNameErrors(t *testing.T) {
	t.Parallel()
	svc := NewDefaultService()

	name := mustName(t, "Lea 9uiz")
	_, err := svc.DeriveProfile(mustDate(t, 1990, 11, 29), &name)
	assert.ErrorIs(t, err, domain.ErrUnsupportedCharacter)
}

func TestServiceWithCustomTable(t *testing.T) {
	t.Parallel()

	// A flat table maps every letter to 1, so "Ana Lev" sums to 6.
	values := make(map[rune]int, 26)
	for r := 'A'; r <= 'Z'; r++ {
		values[r] = 1
	}
	table, err := NewTable(values)
	require.NoError(t, err)

	svc := NewServiceWithTable(table)
	name := mustName(t, "Ana Lev")
	profile, err := svc.DeriveProfile(mustDate(t, 2000, 1, 1), &name)
	require.NoError(t, err)

	assert.Equal(t, 6, profile.Expression.Value)
	assert.Equal(t, 3, profile.Soul.Value)
	assert.Equal(t, 3, profile.Personality.Value)
}
