package filterstate

import (
	"math"
	"slices"
)

// ColorMode selects how scatter points are colored.
type ColorMode int

const (
	ColorByYear ColorMode = iota
	ColorByRegion
)

// Wire literals for ColorMode. Anything else decodes to the default.
const (
	colorModeYearLiteral   = "year"
	colorModeRegionLiteral = "region"
)

func (c ColorMode) String() string {
	if c == ColorByRegion {
		return colorModeRegionLiteral
	}
	return colorModeYearLiteral
}

func parseColorMode(s string) (ColorMode, bool) {
	switch s {
	case colorModeYearLiteral:
		return ColorByYear, true
	case colorModeRegionLiteral:
		return ColorByRegion, true
	}
	return ColorByYear, false
}

// Range is a closed interval [Low, High] in data units. No ordering is
// enforced between Low and High here; the producing UI keeps them sane.
type Range struct {
	Low  float64
	High float64
}

// OptRange is a Range that may be absent. Absent means auto-fit.
type OptRange struct {
	Range
	Valid bool
}

// NewOptRange returns a present range with the given bounds.
func NewOptRange(low, high float64) OptRange {
	return OptRange{Range: Range{Low: low, High: high}, Valid: true}
}

// Width is High-Low, or 0 for an absent range.
func (r OptRange) Width() float64 {
	if !r.Valid {
		return 0
	}
	return r.High - r.Low
}

// State is the canonical filter configuration for a session. It is a plain
// value; Store owns the mutable current one.
type State struct {
	YearStart int
	YearEnd   int
	// States holds selected state codes in insertion order; empty means
	// "all states" to consumers.
	States    []string
	ColorBy   ColorMode
	ShowTrend bool

	// Scatter chart viewport, each axis independently pinned or auto.
	XRange OptRange
	YRange OptRange
	// Time chart viewport.
	TimeXRange OptRange
	TimeYRange OptRange
}

// Default year window shown on first load.
const (
	DefaultYearStart = 2013
	DefaultYearEnd   = 2023
)

// DefaultState is the single source of the default configuration. Encode
// omission and decode fallback both compare against this, so keep it the
// only place defaults live.
func DefaultState() State {
	return State{
		YearStart: DefaultYearStart,
		YearEnd:   DefaultYearEnd,
	}
}

// Equal reports whether two states are identical, including selection order.
func (s State) Equal(o State) bool {
	return s.YearStart == o.YearStart &&
		s.YearEnd == o.YearEnd &&
		s.ColorBy == o.ColorBy &&
		s.ShowTrend == o.ShowTrend &&
		s.XRange == o.XRange &&
		s.YRange == o.YRange &&
		s.TimeXRange == o.TimeXRange &&
		s.TimeYRange == o.TimeYRange &&
		slices.Equal(s.States, o.States)
}

func (s State) clone() State {
	out := s
	out.States = slices.Clone(s.States)
	return out
}

// Round2 rounds v to two decimal places, the precision the wire format
// carries. Viewport producers should round through this so that a state
// survives an encode/decode round trip unchanged.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
