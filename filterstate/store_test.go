package filterstate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyMergesOnlyPatchedFields(t *testing.T) {
	st := NewStore(DefaultState())

	trend := true
	st.Apply(Patch{ShowTrend: &trend})

	yearStart := 2016
	got := st.Apply(Patch{YearStart: &yearStart})

	assert.Equal(t, 2016, got.YearStart)
	assert.Equal(t, DefaultYearEnd, got.YearEnd)
	assert.True(t, got.ShowTrend, "earlier patch must survive later ones")
	assert.Nil(t, got.States)
}

func TestApplyClearsSelectionWithEmptySlice(t *testing.T) {
	initial := DefaultState()
	initial.States = []string{"TX", "CA"}
	st := NewStore(initial)

	empty := []string{}
	got := st.Apply(Patch{States: &empty})
	assert.Empty(t, got.States)
}

func TestCurrentReturnsIsolatedSnapshot(t *testing.T) {
	initial := DefaultState()
	initial.States = []string{"TX", "CA"}
	st := NewStore(initial)

	snap := st.Current()
	snap.States[0] = "XX"

	assert.Equal(t, []string{"TX", "CA"}, st.Current().States)
}

func TestResetScatterViewportLeavesRestAlone(t *testing.T) {
	s := DefaultState()
	s.YearStart = 2018
	s.States = []string{"WA"}
	s.XRange = NewOptRange(1, 2)
	s.YRange = NewOptRange(3, 4)
	s.TimeXRange = NewOptRange(2015, 2020)
	st := NewStore(s)

	got := st.ResetScatterViewport()

	assert.False(t, got.XRange.Valid)
	assert.False(t, got.YRange.Valid)
	assert.True(t, got.TimeXRange.Valid, "time chart pin must survive a scatter reset")
	assert.Equal(t, 2018, got.YearStart)
	assert.Equal(t, []string{"WA"}, got.States)
}

func TestResetTimeViewport(t *testing.T) {
	s := DefaultState()
	s.XRange = NewOptRange(1, 2)
	s.TimeXRange = NewOptRange(2015, 2020)
	s.TimeYRange = NewOptRange(5, 9)
	st := NewStore(s)

	got := st.ResetTimeViewport()

	assert.False(t, got.TimeXRange.Valid)
	assert.False(t, got.TimeYRange.Valid)
	assert.True(t, got.XRange.Valid)
}

func TestOnChangeFiresPerMutation(t *testing.T) {
	st := NewStore(DefaultState())

	var seen []State
	st.OnChange(func(s State) { seen = append(seen, s) })

	trend := true
	st.Apply(Patch{ShowTrend: &trend})
	st.ResetScatterViewport()

	require.Len(t, seen, 2)
	assert.True(t, seen[0].ShowTrend)
	assert.True(t, seen[1].ShowTrend)
}
