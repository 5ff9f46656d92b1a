package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rkallio/gridsift/logging"
)

// searchOnce moves the cursor to the next visible row whose state matches,
// scanning forward from the cursor and wrapping around.
func (m *model) searchOnce(query string) {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" || !m.checkViewPortHasData() {
		return
	}

	n := len(m.data.filteredIndices)
	for step := 1; step <= n; step++ {
		i := (m.cursor + step) % n
		p := m.data.points[m.data.filteredIndices[i]]
		if strings.Contains(strings.ToLower(p.State), query) ||
			strings.EqualFold(p.StateCode, query) {
			m.cursor = i
			return
		}
	}
	logging.Debugf("searchOnce: no match for %q", query)
}

func (m *model) jumpToLine(lineNo int) tea.Cmd {
	if !m.checkViewPortHasData() {
		return nil
	}
	if lineNo <= 0 || lineNo > len(m.data.filteredIndices) {
		return m.startNotice(fmt.Sprintf("Line %d out of bounds", lineNo), noticeWarn, noticeDuration)
	}
	m.cursor = lineNo - 1
	return nil
}
