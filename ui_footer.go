package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type footerState struct {
	Mode      Command
	ModeInput string

	FileName string

	YearsLabel  string
	StatesLabel string
	Trend       bool
	ZoomTarget  string

	Row       int
	TotalRows int

	StatusMessage string
	Legend        string
}

type footerStyles struct {
	Bar      lipgloss.Style
	Status   lipgloss.Style
	ModePill lipgloss.Style
	FileName lipgloss.Style
	Dim      lipgloss.Style
	Legend   lipgloss.Style
}

func defaultFooterStyles() footerStyles {
	return footerStyles{
		Bar: lipgloss.NewStyle().
			Background(lipgloss.Color("#2b2b2b")).
			Foreground(lipgloss.Color("#cfcfcf")),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#9a9a9a")),
		ModePill: lipgloss.NewStyle().
			Background(lipgloss.Color("#ff9f1c")).
			Foreground(lipgloss.Color("#000000")).
			Padding(0, 1),
		FileName: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#e0e0e0")),
		Dim: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a0a0a0")),
		Legend: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#b0b0b0")),
	}
}

func (m *model) footerView(width int) string {
	s := m.filters.Current()

	footerMode := CmdNone
	modeInput := ""
	if m.ui.mode == modeCommand {
		footerMode = m.ui.command.cmd
		modeInput = m.activeCommandLine()
	}

	statesLabel := "All"
	if len(s.States) > 0 {
		statesLabel = selectionChips(s.States)
	}

	status := noticeText(m.ui.noticeMsg, m.ui.noticeKind)
	if modeInput != "" {
		status = modeInput
	}

	legend := m.idleCommandHintsLine()
	if m.ui.mode == modeCommand {
		legend = m.commandHintsLine(m.ui.command.cmd)
	}

	st := footerState{
		Mode:          footerMode,
		ModeInput:     modeInput,
		FileName:      m.InitialPath,
		YearsLabel:    fmt.Sprintf("%d–%d", s.YearStart, s.YearEnd),
		StatesLabel:   statesLabel,
		Trend:         s.ShowTrend,
		ZoomTarget:    m.zoomTargetLabel(),
		Row:           m.cursor + 1,
		TotalRows:     len(m.data.filteredIndices),
		StatusMessage: status,
		Legend:        legend,
	}
	return renderFooter(width, st, defaultFooterStyles())
}

func renderFooter(width int, st footerState, styles footerStyles) string {
	if width <= 0 {
		return ""
	}
	if st.Row < 0 {
		st.Row = 0
	}

	line1 := renderControlBar(width, st, styles)
	line2 := renderStatusBar(width, st, styles)
	return line1 + "\n" + line2
}

func renderControlBar(width int, st footerState, styles footerStyles) string {
	pill := styles.ModePill.Render(commandLabel(st.Mode))

	name := strings.TrimSpace(st.FileName)
	if name == "" {
		name = "(no file)"
	}
	file := styles.FileName.Render("▸ " + name)

	trend := "off"
	if st.Trend {
		trend = "on"
	}
	filters := styles.Dim.Render(fmt.Sprintf(
		"[YEARS %s] · [STATES %s] · [TREND %s] · [ZOOM %s]",
		st.YearsLabel, st.StatesLabel, trend, st.ZoomTarget,
	))

	right := fmt.Sprintf(" Rows %d/%d", st.Row, st.TotalRows)

	left := pill + " " + file + " " + filters
	gap := width - lipgloss.Width(left) - runeWidth(right)
	if gap < 1 {
		// Squeeze the filter summary first, the pill and counts matter more.
		budget := width - lipgloss.Width(pill) - runeWidth(right) - runeWidth(name) - 5
		filters = styles.Dim.Render(truncatePlain(
			fmt.Sprintf("[YEARS %s] · [STATES %s]", st.YearsLabel, st.StatesLabel),
			max(0, budget)))
		left = pill + " " + file + " " + filters
		gap = max(1, width-lipgloss.Width(left)-runeWidth(right))
	}

	return styles.Bar.Render(left + strings.Repeat(" ", gap) + right)
}

func renderStatusBar(width int, st footerState, styles footerStyles) string {
	legendPlain := truncatePlain(st.Legend, width)
	legendW := runeWidth(legendPlain)

	leftW := width - legendW
	if leftW < 0 {
		leftW = 0
	}

	msgPlain := truncatePlain(st.StatusMessage, leftW)
	msgPlain = padRightPlain(msgPlain, leftW)

	return styles.Status.Render(msgPlain) + styles.Legend.Render(legendPlain)
}

func padRightPlain(s string, w int) string {
	if w <= 0 {
		return ""
	}
	cur := runeWidth(s)
	if cur >= w {
		return s
	}
	return s + strings.Repeat(" ", w-cur)
}

func truncatePlain(s string, w int) string {
	if w <= 0 {
		return ""
	}
	r := []rune(s)
	if len(r) <= w {
		return s
	}
	return string(r[:w])
}

func runeWidth(s string) int {
	return len([]rune(s))
}
