package dialogs

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rkallio/gridsift/logging"
)

type HelpCanceledMsg struct{}

// Help renders the key legend as a modal overlay.
type Help struct {
	visible  bool
	bindings []key.Binding
}

func NewHelpDialog(bindings []key.Binding) *Help {
	return &Help{
		visible:  true,
		bindings: bindings,
	}
}

func (d Help) Init() tea.Cmd { return nil }

func (d *Help) Update(msg tea.Msg) (Dialog, tea.Cmd) {
	switch m := msg.(type) {
	case tea.KeyMsg:
		switch m.String() {
		case "enter", "esc", "?", "q":
			logging.Debug("HelpDialog: dismissed")
			d.visible = false
			return d, func() tea.Msg { return HelpCanceledMsg{} }
		}
	}
	return d, nil
}

func (d Help) View() string {
	if !d.visible {
		return ""
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("252")).
		BorderBackground(lipgloss.Color("236")).
		Padding(1, 2).
		Width(60)

	var lines []string
	for _, b := range d.bindings {
		h := b.Help()
		lines = append(lines, fmt.Sprintf("%-12s %s", h.Key, h.Desc))
	}

	hint := lipgloss.NewStyle().
		Faint(true).
		Render("enter/esc to return")

	content := fmt.Sprintf("%s\n\n%s", strings.Join(lines, "\n"), hint)
	return box.Render(content)
}

func (d *Help) Show()          { d.visible = true }
func (d *Help) Hide()          { d.visible = false }
func (d *Help) Focus() tea.Cmd { return nil }
func (d *Help) Blur()          {}
func (d Help) IsVisible() bool { return d.visible }
