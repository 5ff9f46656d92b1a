package regions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedTableCoversAllStates(t *testing.T) {
	require.Equal(t, []string{"Midwest", "Northeast", "South", "West"}, All())

	// 50 states plus DC.
	assert.Len(t, Codes(), 51)

	region, ok := GroupOf("DC")
	require.True(t, ok)
	assert.Equal(t, "South", region)

	region, ok = GroupOf("WI")
	require.True(t, ok)
	assert.Equal(t, "Midwest", region)

	_, ok = GroupOf("PR")
	assert.False(t, ok)
}

func TestMembersUnknownRegion(t *testing.T) {
	assert.Nil(t, Members("Atlantis"))
}

func TestMembersAreCopies(t *testing.T) {
	a := Members("West")
	require.NotEmpty(t, a)
	a[0] = "XX"
	assert.NotEqual(t, "XX", Members("West")[0])
}
