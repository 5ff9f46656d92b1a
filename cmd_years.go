package main

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rkallio/gridsift/filterstate"
)

// parseYearRange accepts "2015-2020", "2015:2020", "2015 2020" or a single
// "2015" (meaning that one year).
func parseYearRange(s string) (int, int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, 0, fmt.Errorf("empty year range")
	}

	var parts []string
	for _, sep := range []string{"-", ":", " "} {
		if strings.Contains(s, sep) {
			parts = strings.SplitN(s, sep, 2)
			break
		}
	}
	if parts == nil {
		parts = []string{s, s}
	}

	start, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, 0, fmt.Errorf("bad start year %q", parts[0])
	}
	end, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, 0, fmt.Errorf("bad end year %q", parts[1])
	}
	if start > end {
		return 0, 0, fmt.Errorf("start %d is after end %d", start, end)
	}
	return start, end, nil
}

func filterYearPatch(start, end int) filterstate.Patch {
	return filterstate.Patch{YearStart: &start, YearEnd: &end}
}

func (m *model) setYearRange(buf string) tea.Cmd {
	start, end, err := parseYearRange(buf)
	if err != nil {
		return m.startNotice("Years: "+err.Error(), noticeWarn, noticeDuration)
	}
	note := fmt.Sprintf("Years %d-%d", start, end)
	kind := noticePlain
	if end < m.data.yearMin || start > m.data.yearMax {
		note = fmt.Sprintf("Years %d-%d (dataset covers %d-%d)", start, end, m.data.yearMin, m.data.yearMax)
		kind = noticeWarn
	}
	return tea.Batch(
		m.applyPatch(filterYearPatch(start, end)),
		m.startNotice(note, kind, noticeDuration),
	)
}
