package dialogs

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHelpDialogDismiss(t *testing.T) {
	d := NewHelpDialog([]key.Binding{
		key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	})
	require.True(t, d.IsVisible())

	next, cmd := d.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, next.IsVisible())
	require.NotNil(t, cmd)
	assert.IsType(t, HelpCanceledMsg{}, cmd())
}

func TestHelpDialogIgnoresOtherKeys(t *testing.T) {
	d := NewHelpDialog(nil)

	next, _ := d.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	assert.True(t, next.IsVisible())
}

func TestHelpDialogViewListsBindings(t *testing.T) {
	old := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(termenv.Ascii)
	t.Cleanup(func() { lipgloss.SetColorProfile(old) })

	d := NewHelpDialog([]key.Binding{
		key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "toggle trend line")),
	})

	view := d.View()
	assert.Contains(t, view, "toggle trend line")

	d.Hide()
	assert.Equal(t, "", d.View())
}
