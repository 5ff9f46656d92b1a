package main

import (
	"log"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rkallio/gridsift/dialogs"
	"github.com/rkallio/gridsift/filterstate"
	"github.com/rkallio/gridsift/logging"
)

type mode int

const (
	modeView mode = iota
	modeCommand
	modePicker
)

type model struct {
	data dataState
	ui   uiState

	filters *filterstate.Store
	columns []ColumnMeta

	viewport            viewport.Model
	ready               bool
	cursor              int // index into data.filteredIndices
	lastVisibleRowCount int
	width               int
	height              int

	help dialogs.Dialog // nil unless the help overlay is up

	sessionPath string
	InitialPath string
}

func newModel(points []Point, initial filterstate.State, sessionPath string) *model {
	m := &model{
		data:        newDataState(points),
		filters:     filterstate.NewStore(initial),
		columns:     defaultColumns(),
		sessionPath: sessionPath,
	}

	// Filtered indices are derived from the state, so recompute them on
	// every mutation rather than at each call site.
	m.filters.OnChange(func(filterstate.State) { m.applyFilter() })

	m.ui.shareLink = filterstate.Encode(initial)
	m.applyFilter()
	return m
}

func (m *model) Init() tea.Cmd {
	log.Println("gridsift: Initialised")
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.updateKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport = viewport.New(msg.Width-6, msg.Height-6)
		m.columns = layoutColumns(m.columns, m.viewport.Width-2)
		m.lastVisibleRowCount = max(1, m.viewport.Height)
		m.ready = true
		m.viewport.SetContent(m.renderTable())
		return m, nil

	case clearNoticeMsg:
		if msg.id == m.ui.noticeSeq {
			m.ui.noticeMsg = ""
			m.ui.noticeKind = noticePlain
		}
		return m, nil

	case syncFlushMsg:
		return m, m.handleSyncFlush(msg)
	}

	return m, nil
}

func (m *model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.help != nil && m.help.IsVisible() {
		var cmd tea.Cmd
		m.help, cmd = m.help.Update(msg)
		if !m.help.IsVisible() {
			m.help = nil
		}
		return m, cmd
	}

	switch m.ui.mode {
	case modeView:
		return m.handleViewModeKey(msg)
	case modeCommand:
		return m.handleCommandKey(msg)
	case modePicker:
		return m.handlePickerKey(msg)
	}
	return m, nil
}

func (m *model) handleViewModeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch {
	case key.Matches(msg, Keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, Keys.RowDown):
		if m.cursor < len(m.data.filteredIndices)-1 {
			m.cursor++
		}
	case key.Matches(msg, Keys.RowUp):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, Keys.PageDown):
		m.pageDown()
	case key.Matches(msg, Keys.PageUp):
		m.pageUp()
	case key.Matches(msg, Keys.JumpStart):
		m.jumpToStart()
	case key.Matches(msg, Keys.JumpEnd):
		m.jumpToEnd()

	case key.Matches(msg, Keys.Years):
		m.enterCommandMode(CmdYears)
	case key.Matches(msg, Keys.Search):
		m.enterCommandMode(CmdSearch)
	case key.Matches(msg, Keys.Jump):
		m.enterCommandMode(CmdJump)

	case key.Matches(msg, Keys.Picker):
		m.openPicker()

	case key.Matches(msg, Keys.Trend):
		cur := m.filters.Current()
		next := !cur.ShowTrend
		cmd = m.applyPatch(filterstate.Patch{ShowTrend: &next})
	case key.Matches(msg, Keys.ColorBy):
		cur := m.filters.Current()
		next := filterstate.ColorByYear
		if cur.ColorBy == filterstate.ColorByYear {
			next = filterstate.ColorByRegion
		}
		cmd = tea.Batch(
			m.applyPatch(filterstate.Patch{ColorBy: &next}),
			m.startNotice("Coloring by "+next.String(), noticePlain, noticeDuration),
		)

	case key.Matches(msg, Keys.ZoomTarget):
		m.ui.zoomTime = !m.ui.zoomTime
		cmd = m.startNotice("Zoom target: "+m.zoomTargetLabel(), noticePlain, noticeDuration)
	case key.Matches(msg, Keys.PanLeft):
		cmd = m.panViewport(-1)
	case key.Matches(msg, Keys.PanRight):
		cmd = m.panViewport(+1)
	case key.Matches(msg, Keys.ZoomIn):
		cmd = m.zoomViewport(true)
	case key.Matches(msg, Keys.ZoomOut):
		cmd = m.zoomViewport(false)
	case key.Matches(msg, Keys.ResetScatter):
		cmd = m.resetScatterViewport()
	case key.Matches(msg, Keys.ResetTime):
		cmd = m.resetTimeViewport()

	case key.Matches(msg, Keys.CopyLink):
		cmd = m.copyShareLink()

	case key.Matches(msg, Keys.OpenHelp):
		m.help = dialogs.NewHelpDialog(Keys.Legend())
	}

	m.refreshView("view-key", false)
	return m, cmd
}

// applyPatch funnels every filter mutation: merge into the store (which
// recomputes filtered rows via the change hook) and schedule a debounced
// share-link write.
func (m *model) applyPatch(p filterstate.Patch) tea.Cmd {
	m.filters.Apply(p)
	return m.scheduleShareSync()
}

// region Filtering

func (m *model) includePoint(p Point, s filterstate.State, picked map[string]struct{}) bool {
	if p.Year < s.YearStart || p.Year > s.YearEnd {
		return false
	}
	if len(picked) > 0 {
		if _, ok := picked[p.StateCode]; !ok {
			return false
		}
	}
	return true
}

func (m *model) applyFilter() {
	logging.Debug("applyFilter called")
	s := m.filters.Current()

	picked := make(map[string]struct{}, len(s.States))
	for _, code := range s.States {
		picked[code] = struct{}{}
	}

	m.data.filteredIndices = m.data.filteredIndices[:0]
	for i, p := range m.data.points {
		if m.includePoint(p, s, picked) {
			m.data.filteredIndices = append(m.data.filteredIndices, i)
		}
	}

	if len(m.data.filteredIndices) == 0 {
		m.cursor = -1
	} else if m.cursor < 0 || m.cursor >= len(m.data.filteredIndices) {
		m.cursor = 0
	}
	m.refreshView("filter", true)
}

// endregion

func (m *model) checkViewPortHasData() bool {
	return len(m.data.filteredIndices) > 0 && m.cursor >= 0
}

func (m *model) refreshView(reason string, force bool) {
	if !m.ready {
		return
	}
	logging.Debugf("refreshView: %s", reason)
	m.viewport.SetContent(m.renderTable())
	_ = force
}

func (m *model) pageDown() {
	if m.cursor+m.lastVisibleRowCount < len(m.data.filteredIndices) {
		m.cursor += m.lastVisibleRowCount
	} else {
		m.cursor = len(m.data.filteredIndices) - 1
	}
}

func (m *model) pageUp() {
	m.cursor -= m.lastVisibleRowCount
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *model) jumpToStart() {
	if !m.checkViewPortHasData() {
		return
	}
	m.cursor = 0
}

func (m *model) jumpToEnd() {
	if !m.checkViewPortHasData() {
		return
	}
	m.cursor = len(m.data.filteredIndices) - 1
}

func (m *model) zoomTargetLabel() string {
	if m.ui.zoomTime {
		return "time chart"
	}
	return "scatter"
}
