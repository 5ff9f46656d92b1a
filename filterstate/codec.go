package filterstate

import (
	"net/url"
	"strconv"
	"strings"
)

// Wire keys of the view string. Order here is the encode order.
const (
	keyYearStart  = "yearStart"
	keyYearEnd    = "yearEnd"
	keyStates     = "states"
	keyColorBy    = "colorBy"
	keyTrend      = "trend"
	keyXRange     = "xRange"
	keyYRange     = "yRange"
	keyTimeXRange = "timeXRange"
	keyTimeYRange = "timeYRange"
)

// Encode renders s as a flat query string, omitting every field that still
// has its default value. Numeric range bounds are written with exactly two
// decimals, which is where the wire precision ends.
func Encode(s State) string {
	def := DefaultState()
	var b strings.Builder

	add := func(key, val string) {
		if b.Len() > 0 {
			b.WriteByte('&')
		}
		b.WriteString(key)
		b.WriteByte('=')
		b.WriteString(val)
	}

	if s.YearStart != def.YearStart {
		add(keyYearStart, strconv.Itoa(s.YearStart))
	}
	if s.YearEnd != def.YearEnd {
		add(keyYearEnd, strconv.Itoa(s.YearEnd))
	}
	if len(s.States) > 0 {
		escaped := make([]string, len(s.States))
		for i, code := range s.States {
			escaped[i] = url.QueryEscape(code)
		}
		add(keyStates, strings.Join(escaped, ","))
	}
	if s.ColorBy != def.ColorBy {
		add(keyColorBy, s.ColorBy.String())
	}
	if s.ShowTrend {
		add(keyTrend, "true")
	}
	if s.XRange.Valid {
		add(keyXRange, formatRange(s.XRange))
	}
	if s.YRange.Valid {
		add(keyYRange, formatRange(s.YRange))
	}
	if s.TimeXRange.Valid {
		add(keyTimeXRange, formatRange(s.TimeXRange))
	}
	if s.TimeYRange.Valid {
		add(keyTimeYRange, formatRange(s.TimeYRange))
	}
	return b.String()
}

// Decode parses a view string back into a State. It is total: a key whose
// value fails to parse falls back silently to that field's default, and
// unknown keys are skipped, so one mangled field never poisons the rest of
// a shared link. Decoding the empty string yields exactly DefaultState.
func Decode(raw string) State {
	s := DefaultState()

	// ParseQuery reports the first bad pair but still returns everything
	// that parsed; we keep whatever survived.
	values, _ := url.ParseQuery(raw)

	if v := values.Get(keyYearStart); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			s.YearStart = n
		}
	}
	if v := values.Get(keyYearEnd); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			s.YearEnd = n
		}
	}
	if v := values.Get(keyStates); v != "" {
		if codes, ok := parseStates(v); ok {
			s.States = codes
		}
	}
	if v := values.Get(keyColorBy); v != "" {
		if mode, ok := parseColorMode(v); ok {
			s.ColorBy = mode
		}
	}
	if values.Get(keyTrend) == "true" {
		s.ShowTrend = true
	}
	if r, ok := parseRange(values.Get(keyXRange)); ok {
		s.XRange = r
	}
	if r, ok := parseRange(values.Get(keyYRange)); ok {
		s.YRange = r
	}
	if r, ok := parseRange(values.Get(keyTimeXRange)); ok {
		s.TimeXRange = r
	}
	if r, ok := parseRange(values.Get(keyTimeYRange)); ok {
		s.TimeYRange = r
	}
	return s
}

func formatRange(r OptRange) string {
	return strconv.FormatFloat(r.Low, 'f', 2, 64) + "," + strconv.FormatFloat(r.High, 'f', 2, 64)
}

// parseRange expects exactly "low,high" with numeric bounds.
func parseRange(v string) (OptRange, bool) {
	if v == "" {
		return OptRange{}, false
	}
	parts := strings.Split(v, ",")
	if len(parts) != 2 {
		return OptRange{}, false
	}
	low, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return OptRange{}, false
	}
	high, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return OptRange{}, false
	}
	return NewOptRange(low, high), true
}

// parseStates splits a comma-joined code list. An empty token anywhere makes
// the whole field invalid; duplicates keep their first position.
func parseStates(v string) ([]string, bool) {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	seen := make(map[string]struct{}, len(parts))
	for _, p := range parts {
		if p == "" {
			return nil, false
		}
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out, true
}
