package main

import (
	"github.com/charmbracelet/bubbles/key"
)

type Keymap struct {
	Quit         key.Binding
	RowDown      key.Binding
	RowUp        key.Binding
	PageUp       key.Binding
	PageDown     key.Binding
	JumpStart    key.Binding
	JumpEnd      key.Binding
	Years        key.Binding
	Search       key.Binding
	Jump         key.Binding
	Picker       key.Binding
	Trend        key.Binding
	ColorBy      key.Binding
	ZoomTarget   key.Binding
	PanLeft      key.Binding
	PanRight     key.Binding
	ZoomIn       key.Binding
	ZoomOut      key.Binding
	ResetScatter key.Binding
	ResetTime    key.Binding
	CopyLink     key.Binding
	OpenHelp     key.Binding
}

var Keys = Keymap{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	RowDown: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "move down"),
	),
	RowUp: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "move up"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("u", "pgup"),
		key.WithHelp("u/pgup", "page up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("d", "pgdown"),
		key.WithHelp("d/pgdown", "page down"),
	),
	JumpStart: key.NewBinding(
		key.WithKeys("g", "home"),
		key.WithHelp("g", "first row"),
	),
	JumpEnd: key.NewBinding(
		key.WithKeys("G", "end"),
		key.WithHelp("G", "last row"),
	),
	Years: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "set year range"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search state"),
	),
	Jump: key.NewBinding(
		key.WithKeys(":"),
		key.WithHelp(":", "jump to line"),
	),
	Picker: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "state picker"),
	),
	Trend: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "toggle trend line"),
	),
	ColorBy: key.NewBinding(
		key.WithKeys("b"),
		key.WithHelp("b", "color by year/region"),
	),
	ZoomTarget: key.NewBinding(
		key.WithKeys("z"),
		key.WithHelp("z", "switch zoom target"),
	),
	PanLeft: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("h/←", "pan left"),
	),
	PanRight: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("l/→", "pan right"),
	),
	ZoomIn: key.NewBinding(
		key.WithKeys("+", "="),
		key.WithHelp("+", "zoom in"),
	),
	ZoomOut: key.NewBinding(
		key.WithKeys("-"),
		key.WithHelp("-", "zoom out"),
	),
	ResetScatter: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reset scatter zoom"),
	),
	ResetTime: key.NewBinding(
		key.WithKeys("R"),
		key.WithHelp("R", "reset time chart zoom"),
	),
	CopyLink: key.NewBinding(
		key.WithKeys("ctrl+y"),
		key.WithHelp("ctrl+y", "copy view link"),
	),
	OpenHelp: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help / keys"),
	),
}

func (k Keymap) Legend() []key.Binding {
	return []key.Binding{
		k.Quit,
		k.RowDown,
		k.RowUp,
		k.PageUp,
		k.PageDown,
		k.Years,
		k.Search,
		k.Picker,
		k.Trend,
		k.ColorBy,
		k.ZoomTarget,
		k.PanLeft,
		k.PanRight,
		k.ZoomIn,
		k.ZoomOut,
		k.ResetScatter,
		k.ResetTime,
		k.CopyLink,
	}
}
