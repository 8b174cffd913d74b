package deck

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dukaforge/arcana/pkg/types"
)

func TestSpreadLookup(t *testing.T) {
	s, err := Spread("Celtic Cross")
	require.NoError(t, err)
	assert.Equal(t, 10, s.CardCount)
	assert.Len(t, s.Positions, 10)

	_, err = Spread("celtic cross")
	assert.ErrorIs(t, err, types.ErrSpreadNotFound, "lookup is by exact name")

	_, err = Spread("No Such Spread")
	assert.ErrorIs(t, err, types.ErrSpreadNotFound)
}

func TestBuiltinSpreadsAreWellFormed(t *testing.T) {
	all := Spreads()
	require.NotEmpty(t, all)

	for _, s := range all {
		assert.NoError(t, s.Validate(), "spread %q", s.Name)
		assert.NotEmpty(t, s.Description, "spread %q", s.Name)
	}
}

func TestSpreadsSortedByName(t *testing.T) {
	all := Spreads()
	assert.True(t, sort.SliceIsSorted(all, func(i, j int) bool {
		return all[i].Name < all[j].Name
	}))
}

func TestDailyGuidanceSpread(t *testing.T) {
	s, err := Spread(DailyGuidance)
	require.NoError(t, err)
	assert.Equal(t, 1, s.CardCount)
}
