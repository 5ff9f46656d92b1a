package filterstate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestEncodeDefaultStateIsEmpty(t *testing.T) {
	assert.Equal(t, "", Encode(DefaultState()))
}

func TestDecodeEmptyStringIsDefault(t *testing.T) {
	assert.True(t, Decode("").Equal(DefaultState()))
}

func TestEncodeOmitsDefaults(t *testing.T) {
	s := DefaultState()
	s.YearEnd = 2021

	got := Encode(s)
	assert.Equal(t, "yearEnd=2021", got)
	assert.NotContains(t, got, "yearStart")
	assert.NotContains(t, got, "colorBy")
	assert.NotContains(t, got, "trend")
}

func TestEncodeKeyOrder(t *testing.T) {
	s := State{
		YearStart:  2015,
		YearEnd:    2020,
		States:     []string{"TX", "CA"},
		ColorBy:    ColorByRegion,
		ShowTrend:  true,
		XRange:     NewOptRange(0, 42.5),
		YRange:     NewOptRange(10, 900),
		TimeXRange: NewOptRange(2015, 2020),
		TimeYRange: NewOptRange(8.1, 23.45),
	}

	got := Encode(s)
	want := "yearStart=2015&yearEnd=2020&states=TX,CA&colorBy=region&trend=true" +
		"&xRange=0.00,42.50&yRange=10.00,900.00" +
		"&timeXRange=2015.00,2020.00&timeYRange=8.10,23.45"
	assert.Equal(t, want, got)
}

func TestDecodeSharedLink(t *testing.T) {
	s := Decode("yearStart=2015&yearEnd=2020&states=TX,CA&colorBy=region&trend=true")

	assert.Equal(t, 2015, s.YearStart)
	assert.Equal(t, 2020, s.YearEnd)
	assert.Equal(t, []string{"TX", "CA"}, s.States)
	assert.Equal(t, ColorByRegion, s.ColorBy)
	assert.True(t, s.ShowTrend)
	assert.False(t, s.XRange.Valid)
	assert.False(t, s.TimeYRange.Valid)
}

func TestDecodeRanges(t *testing.T) {
	s := Decode("xRange=1.25,42.50&timeYRange=-3.00,7.00")

	require.True(t, s.XRange.Valid)
	assert.Equal(t, 1.25, s.XRange.Low)
	assert.Equal(t, 42.5, s.XRange.High)
	require.True(t, s.TimeYRange.Valid)
	assert.Equal(t, -3.0, s.TimeYRange.Low)
	assert.False(t, s.YRange.Valid)
}

// A mangled field falls back to its default without touching its neighbors.
func TestDecodeBadFieldFallsBackAlone(t *testing.T) {
	cases := []struct {
		name string
		raw  string
	}{
		{"bad year", "yearStart=banana&states=TX"},
		{"bad color mode", "colorBy=rainbow&states=TX"},
		{"trend not literal true", "trend=1&states=TX"},
		{"range wrong arity", "xRange=1,2,3&states=TX"},
		{"range non numeric", "xRange=a,b&states=TX"},
		{"unknown key", "sparkles=yes&states=TX"},
	}
	def := DefaultState()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := Decode(tc.raw)
			assert.Equal(t, []string{"TX"}, s.States, "good field must survive")
			assert.Equal(t, def.YearStart, s.YearStart)
			assert.Equal(t, def.ColorBy, s.ColorBy)
			assert.False(t, s.ShowTrend)
			assert.False(t, s.XRange.Valid)
		})
	}
}

func TestDecodeStatesEmptyTokenInvalidatesField(t *testing.T) {
	for _, raw := range []string{"states=TX,,CA", "states=,TX", "states=TX,"} {
		s := Decode(raw)
		assert.Nil(t, s.States, "raw=%q", raw)
	}
}

func TestDecodeStatesDeduplicates(t *testing.T) {
	s := Decode("states=TX,CA,TX,NY,CA")
	assert.Equal(t, []string{"TX", "CA", "NY"}, s.States)
}

func TestDecodeNeverPanics(t *testing.T) {
	for _, raw := range []string{
		"&&&", "=", "a=b=c", "%zz", "yearStart=", "states=%2C",
		strings.Repeat("x=1&", 1000),
	} {
		assert.NotPanics(t, func() { Decode(raw) }, "raw=%q", raw)
	}
}

var stateCodeGen = rapid.SampledFrom([]string{
	"AL", "AK", "AZ", "CA", "CO", "FL", "IA", "IL", "MA", "MN",
	"NY", "OH", "OR", "TX", "VT", "WA", "WI", "WY", "DC",
})

func optRangeGen(t *rapid.T, label string) OptRange {
	if !rapid.Bool().Draw(t, label+"Valid") {
		return OptRange{}
	}
	low := Round2(rapid.Float64Range(-1000, 1000).Draw(t, label+"Low"))
	high := Round2(rapid.Float64Range(-1000, 1000).Draw(t, label+"High"))
	return NewOptRange(low, high)
}

// Any state whose range bounds sit on the two-decimal grid survives an
// encode/decode round trip exactly.
func TestRoundTripProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		codes := rapid.SliceOfNDistinct(stateCodeGen, 0, 10, rapid.ID[string]).Draw(rt, "states")

		s := State{
			YearStart:  rapid.IntRange(1990, 2035).Draw(rt, "yearStart"),
			YearEnd:    rapid.IntRange(1990, 2035).Draw(rt, "yearEnd"),
			States:     codes,
			ColorBy:    ColorMode(rapid.IntRange(0, 1).Draw(rt, "colorBy")),
			ShowTrend:  rapid.Bool().Draw(rt, "trend"),
			XRange:     optRangeGen(rt, "x"),
			YRange:     optRangeGen(rt, "y"),
			TimeXRange: optRangeGen(rt, "tx"),
			TimeYRange: optRangeGen(rt, "ty"),
		}
		if len(s.States) == 0 {
			s.States = nil
		}

		got := Decode(Encode(s))
		if !got.Equal(s) {
			rt.Fatalf("round trip changed state:\n  in:  %+v\n  out: %+v\n  wire: %q",
				s, got, Encode(s))
		}
	})
}
