package main

import (
	"math"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rkallio/gridsift/filterstate"
)

// Chart viewport navigation. Pan/zoom keys mutate the pinned ranges of the
// active chart (scatter by default, time chart after the target toggle); the
// reset keys clear them back to auto-fit. Fractions of a tenth per keypress
// keep a held-down key feeling like a drag.
const (
	panFraction  = 0.10
	zoomFraction = 0.10
)

// dataExtent computes the auto-fit bounds of the active chart from the rows
// matching the current filter. ok is false when no row has both coordinates.
func (m *model) dataExtent(timeChart bool) (x, y filterstate.Range, ok bool) {
	for _, idx := range m.data.filteredIndices {
		p := m.data.points[idx]
		var px, py float64
		if timeChart {
			px, py = float64(p.Year), p.RateAll
		} else {
			px, py = p.VREPct, p.SAIDI
		}
		if math.IsNaN(px) || math.IsNaN(py) {
			continue
		}
		if !ok {
			x = filterstate.Range{Low: px, High: px}
			y = filterstate.Range{Low: py, High: py}
			ok = true
			continue
		}
		x.Low = math.Min(x.Low, px)
		x.High = math.Max(x.High, px)
		y.Low = math.Min(y.Low, py)
		y.High = math.Max(y.High, py)
	}
	return x, y, ok
}

// seededRanges returns the active chart's pinned ranges, falling back to the
// data extent for any axis still on auto-fit.
func (m *model) seededRanges() (x, y filterstate.OptRange, ok bool) {
	s := m.filters.Current()
	if m.ui.zoomTime {
		x, y = s.TimeXRange, s.TimeYRange
	} else {
		x, y = s.XRange, s.YRange
	}
	if x.Valid && y.Valid {
		return x, y, true
	}
	ex, ey, haveData := m.dataExtent(m.ui.zoomTime)
	if !haveData {
		return x, y, x.Valid && y.Valid
	}
	if !x.Valid {
		x = filterstate.NewOptRange(filterstate.Round2(ex.Low), filterstate.Round2(ex.High))
	}
	if !y.Valid {
		y = filterstate.NewOptRange(filterstate.Round2(ey.Low), filterstate.Round2(ey.High))
	}
	return x, y, true
}

func (m *model) panViewport(dir float64) tea.Cmd {
	x, y, ok := m.seededRanges()
	if !ok {
		return m.startNotice("Nothing to pan", noticeWarn, noticeDuration)
	}
	shift := dir * panFraction * x.Width()
	x.Low = filterstate.Round2(x.Low + shift)
	x.High = filterstate.Round2(x.High + shift)
	return m.applyViewport(x, y)
}

func (m *model) zoomViewport(in bool) tea.Cmd {
	x, y, ok := m.seededRanges()
	if !ok {
		return m.startNotice("Nothing to zoom", noticeWarn, noticeDuration)
	}
	x = scaleRange(x, in)
	y = scaleRange(y, in)
	return m.applyViewport(x, y)
}

func scaleRange(r filterstate.OptRange, in bool) filterstate.OptRange {
	delta := zoomFraction * r.Width()
	if in {
		r.Low += delta
		r.High -= delta
	} else {
		r.Low -= delta
		r.High += delta
	}
	if r.Low > r.High {
		mid := (r.Low + r.High) / 2
		r.Low, r.High = mid, mid
	}
	r.Low = filterstate.Round2(r.Low)
	r.High = filterstate.Round2(r.High)
	return r
}

func (m *model) applyViewport(x, y filterstate.OptRange) tea.Cmd {
	p := filterstate.Patch{}
	if m.ui.zoomTime {
		p.TimeXRange, p.TimeYRange = &x, &y
	} else {
		p.XRange, p.YRange = &x, &y
	}
	return m.applyPatch(p)
}

func (m *model) resetScatterViewport() tea.Cmd {
	m.filters.ResetScatterViewport()
	return tea.Batch(
		m.scheduleShareSync(),
		m.startNotice("Scatter zoom reset", noticePlain, noticeDuration),
	)
}

func (m *model) resetTimeViewport() tea.Cmd {
	m.filters.ResetTimeViewport()
	return tea.Batch(
		m.scheduleShareSync(),
		m.startNotice("Time chart zoom reset", noticePlain, noticeDuration),
	)
}
