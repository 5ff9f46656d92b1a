package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rkallio/gridsift/filterstate"
)

func TestDataExtentScatter(t *testing.T) {
	m := testModel(t)

	x, y, ok := m.dataExtent(false)
	require.True(t, ok)
	assert.Equal(t, 4.0, x.Low, "smallest VRE share")
	assert.Equal(t, 29.0, x.High)
	assert.Equal(t, 120.0, y.Low, "smallest SAIDI")
	assert.Equal(t, 310.0, y.High)
}

func TestDataExtentTimeChart(t *testing.T) {
	m := testModel(t)

	x, y, ok := m.dataExtent(true)
	require.True(t, ok)
	assert.Equal(t, 2015.0, x.Low)
	assert.Equal(t, 2020.0, x.High)
	assert.Equal(t, 8.4, y.Low)
	assert.Equal(t, 18.0, y.High)
}

func TestPanSeedsFromDataThenShifts(t *testing.T) {
	m := testModel(t)

	m.panViewport(+1)

	s := m.filters.Current()
	require.True(t, s.XRange.Valid, "panning pins the scatter axes")
	require.True(t, s.YRange.Valid)
	// Extent 4..29, width 25, one pan step moves a tenth of that.
	assert.Equal(t, 6.5, s.XRange.Low)
	assert.Equal(t, 31.5, s.XRange.High)
	assert.False(t, s.TimeXRange.Valid, "time chart untouched")
}

func TestZoomTargetRoutesToTimeChart(t *testing.T) {
	m := testModel(t)
	m.ui.zoomTime = true

	m.zoomViewport(true)

	s := m.filters.Current()
	assert.False(t, s.XRange.Valid, "scatter untouched")
	require.True(t, s.TimeXRange.Valid)
	require.True(t, s.TimeYRange.Valid)
	// Years 2015..2020, width 5, zooming in trims half a year per side.
	assert.Equal(t, 2015.5, s.TimeXRange.Low)
	assert.Equal(t, 2019.5, s.TimeXRange.High)
}

func TestZoomInNeverInvertsRange(t *testing.T) {
	r := filterstate.NewOptRange(10, 10.01)
	for i := 0; i < 50; i++ {
		r = scaleRange(r, true)
		require.LessOrEqual(t, r.Low, r.High)
	}
}

func TestPanWithNoDataRaisesNotice(t *testing.T) {
	m := testModel(t)
	start, end := 1901, 1902
	m.applyPatch(filterstate.Patch{YearStart: &start, YearEnd: &end})

	cmd := m.panViewport(+1)
	require.NotNil(t, cmd)
	assert.Equal(t, "Nothing to pan", m.ui.noticeMsg)
	assert.False(t, m.filters.Current().XRange.Valid)
}

func TestResetScatterViewportKeepsTimePin(t *testing.T) {
	m := testModel(t)
	m.ui.zoomTime = true
	m.zoomViewport(true)
	m.ui.zoomTime = false
	m.panViewport(+1)

	m.resetScatterViewport()

	s := m.filters.Current()
	assert.False(t, s.XRange.Valid)
	assert.False(t, s.YRange.Valid)
	assert.True(t, s.TimeXRange.Valid)
}
