package regions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func avail(codes ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(codes))
	for _, c := range codes {
		m[c] = struct{}{}
	}
	return m
}

func TestGroupStatus(t *testing.T) {
	available := avail("IL", "WI", "MN") // the Midwest this dataset has

	assert.Equal(t, StatusNone, GroupStatus(nil, "Midwest", available))
	assert.Equal(t, StatusSome, GroupStatus([]string{"IL"}, "Midwest", available))
	assert.Equal(t, StatusSome, GroupStatus([]string{"IL", "WI"}, "Midwest", available))
	assert.Equal(t, StatusAll, GroupStatus([]string{"IL", "WI", "MN"}, "Midwest", available))

	// Selections outside the region do not count toward it.
	assert.Equal(t, StatusAll, GroupStatus([]string{"TX", "IL", "WI", "MN"}, "Midwest", available))
}

func TestGroupStatusEmptyRegion(t *testing.T) {
	assert.Equal(t, StatusNone, GroupStatus([]string{"TX"}, "Midwest", avail("TX")))
}

func TestToggleGroupFlipsBetweenAllAndNone(t *testing.T) {
	available := avail("IL", "WI", "MN")

	on := ToggleGroup(nil, "Midwest", available)
	assert.ElementsMatch(t, []string{"IL", "WI", "MN"}, on)
	assert.Equal(t, StatusAll, GroupStatus(on, "Midwest", available))

	off := ToggleGroup(on, "Midwest", available)
	assert.Empty(t, off)
}

func TestToggleGroupFromPartialCompletes(t *testing.T) {
	available := avail("IL", "WI", "MN")

	got := ToggleGroup([]string{"WI"}, "Midwest", available)
	assert.Equal(t, "WI", got[0], "existing picks keep their position")
	assert.Equal(t, StatusAll, GroupStatus(got, "Midwest", available))
	assert.Len(t, got, 3)
}

func TestToggleGroupLeavesOtherRegionsAlone(t *testing.T) {
	available := avail("IL", "WI", "TX")

	got := ToggleGroup([]string{"TX", "IL", "WI"}, "Midwest", available)
	assert.Equal(t, []string{"TX"}, got)
}

func TestToggleGroupNoAvailableMembersIsNoop(t *testing.T) {
	selected := []string{"TX"}
	got := ToggleGroup(selected, "Midwest", avail("TX"))
	assert.Equal(t, selected, got)
}

func TestToggleGroupNilAvailableUsesFullRegion(t *testing.T) {
	got := ToggleGroup(nil, "Northeast", nil)
	require.Len(t, got, len(Members("Northeast")))
	assert.Equal(t, StatusAll, GroupStatus(got, "Northeast", nil))
}

func TestToggleEntity(t *testing.T) {
	got := ToggleEntity(nil, "TX")
	assert.Equal(t, []string{"TX"}, got)

	got = ToggleEntity(got, "CA")
	assert.Equal(t, []string{"TX", "CA"}, got)

	got = ToggleEntity(got, "TX")
	assert.Equal(t, []string{"CA"}, got)
}

func TestToggleEntityDoesNotMutateInput(t *testing.T) {
	in := []string{"TX", "CA", "NY"}
	_ = ToggleEntity(in, "CA")
	assert.Equal(t, []string{"TX", "CA", "NY"}, in)
}

func TestClearAll(t *testing.T) {
	assert.Nil(t, ClearAll())
}
