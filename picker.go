package main

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rkallio/gridsift/filterstate"
	"github.com/rkallio/gridsift/regions"
)

// pickerRow is one line of the state picker drawer: either a region header
// (group toggle) or a single state.
type pickerRow struct {
	region string // set on region header rows
	code   string // set on state rows
}

type pickerUI struct {
	open   bool
	cursor int
	rows   []pickerRow
}

func (m *model) openPicker() {
	pk := &m.ui.picker
	pk.rows = pk.rows[:0]
	for _, region := range regions.All() {
		members := availableIn(region, m.data.available)
		if len(members) == 0 {
			continue // nothing selectable in this dataset
		}
		pk.rows = append(pk.rows, pickerRow{region: region})
		for _, code := range members {
			pk.rows = append(pk.rows, pickerRow{code: code})
		}
	}
	pk.open = true
	pk.cursor = 0
	m.ui.mode = modePicker
	m.refreshView("picker-open", true)
}

func (m *model) closePicker() {
	m.ui.picker.open = false
	m.ui.mode = modeView
	m.refreshView("picker-close", true)
}

func (m *model) handlePickerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	pk := &m.ui.picker

	switch msg.String() {
	case "esc", "s", "q":
		m.closePicker()
		return m, nil

	case "down", "j":
		if pk.cursor < len(pk.rows)-1 {
			pk.cursor++
		}
	case "up", "k":
		if pk.cursor > 0 {
			pk.cursor--
		}

	case "enter", " ":
		if pk.cursor < 0 || pk.cursor >= len(pk.rows) {
			return m, nil
		}
		row := pk.rows[pk.cursor]
		selected := m.filters.Current().States
		if row.region != "" {
			selected = regions.ToggleGroup(selected, row.region, m.data.available)
		} else {
			selected = regions.ToggleEntity(selected, row.code)
		}
		return m, m.applyPatch(filterstate.Patch{States: &selected})

	case "C":
		cleared := regions.ClearAll()
		return m, tea.Batch(
			m.applyPatch(filterstate.Patch{States: &cleared}),
			m.startNotice("Selection cleared", noticePlain, noticeDuration),
		)
	}

	m.refreshView("picker-key", false)
	return m, nil
}

func (m *model) renderPicker() string {
	pk := &m.ui.picker
	selected := m.filters.Current().States

	var b strings.Builder
	b.WriteString(chipsStyle.Render(selectionChips(selected)))
	b.WriteByte('\n')

	for i, row := range pk.rows {
		var line string
		if row.region != "" {
			marker := groupMarker(regions.GroupStatus(selected, row.region, m.data.available))
			line = marker + " " + row.region
		} else {
			marker := "[ ]"
			for _, code := range selected {
				if code == row.code {
					marker = "[x]"
					break
				}
			}
			line = "   " + marker + " " + row.code
		}
		if i == pk.cursor {
			line = pickerCursorStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	b.WriteString(dimStyle.Render("space: toggle   C: clear   esc: close"))

	return pickerArea.Render(b.String())
}

func groupMarker(st regions.Status) string {
	switch st {
	case regions.StatusAll:
		return "[x]"
	case regions.StatusSome:
		return "[~]"
	}
	return "[ ]"
}

// availableIn restricts a region's members to codes present in the dataset.
func availableIn(region string, available map[string]struct{}) []string {
	var out []string
	for _, code := range regions.Members(region) {
		if _, ok := available[code]; ok {
			out = append(out, code)
		}
	}
	return out
}

// selectionChips renders the selected states as a short chip line. Up to six
// are shown in full; beyond that the first five get a "+N" overflow marker.
// Display only, the selection itself is untouched.
const chipsShown = 5

func selectionChips(selected []string) string {
	if len(selected) == 0 {
		return "All states"
	}
	if len(selected) <= chipsShown+1 {
		return strings.Join(selected, " ")
	}
	return strings.Join(selected[:chipsShown], " ") + " +" + strconv.Itoa(len(selected)-chipsShown)
}
