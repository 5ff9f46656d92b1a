package main

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rkallio/gridsift/dialogs"
)

func (m *model) View() string {
	if !m.ready {
		return "loading..."
	}

	if m.help != nil && m.help.IsVisible() {
		return dialogs.Center(m.help.View(), m.width, m.height)
	}

	sections := []string{
		m.headerView(),
		tableStyle.Render(m.viewport.View()),
	}
	if m.ui.picker.open {
		sections = append(sections, m.renderPicker())
	}
	sections = append(sections, m.footerView(m.width))

	return appstyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m *model) headerView() string {
	var cells []string
	for _, col := range m.columns {
		if !col.Visible || col.Width <= 0 {
			continue
		}
		cells = append(cells, cellStyle.Width(col.Width).Render(col.Name))
	}
	return headerStyle.Render(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
}

func (m *model) renderTable() string {
	if !m.checkViewPortHasData() {
		return dimStyle.Render("no rows match the current filters")
	}

	total := len(m.data.filteredIndices)
	height := max(1, m.viewport.Height)
	m.lastVisibleRowCount = height

	// Keep the cursor roughly centered once the table is taller than the
	// viewport.
	start := m.cursor - height/2
	if start > total-height {
		start = total - height
	}
	if start < 0 {
		start = 0
	}
	end := min(total, start+height)

	var b strings.Builder
	for i := start; i < end; i++ {
		line := m.renderPointRow(m.data.points[m.data.filteredIndices[i]])
		if i == m.cursor {
			line = selectedStyle.Render(line)
		} else {
			line = rowTextStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

func (m *model) renderPointRow(p Point) string {
	values := []string{
		p.State,
		fmt.Sprintf("%d", p.Year),
		p.Region,
		formatMetric(p.SAIDI, 0),
		formatMetric(p.VREPct, 1),
		formatMetric(p.RateAll, 2),
	}

	var cells []string
	for i, col := range m.columns {
		if !col.Visible || col.Width <= 0 || i >= len(values) {
			continue
		}
		cells = append(cells, cellStyle.Width(col.Width).Render(values[i]))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

func formatMetric(v float64, decimals int) string {
	if math.IsNaN(v) {
		return "–"
	}
	return fmt.Sprintf("%.*f", decimals, v)
}
