package dialogs

import tea "github.com/charmbracelet/bubbletea"

// Dialog is the common interface modal overlays implement so the host
// model can route messages without knowing the concrete type.
type Dialog interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Dialog, tea.Cmd)
	View() string

	Focus() tea.Cmd
	Blur()
	IsVisible() bool
	Show()
	Hide()
}
