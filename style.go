package main

import "github.com/charmbracelet/lipgloss"

const (
	rowTextFGColor         = "#c0c0c0"
	rowSelectedTextFGColor = "#e0e0e0"
	rowSelectedBGColor     = "#3a3a3a"
)

var (
	// Styles
	appstyle = lipgloss.NewStyle().Margin(1, 2)

	headerStyle = lipgloss.NewStyle().BorderStyle(lipgloss.Border{
		Left:  " ",
		Right: " ",
	}).BorderLeft(true).BorderRight(true)

	rowTextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(rowTextFGColor))

	selectedStyle = lipgloss.NewStyle().
			Background(lipgloss.Color(rowSelectedBGColor)).
			Foreground(lipgloss.Color(rowSelectedTextFGColor))

	cellStyle = lipgloss.NewStyle().Padding(0, 1)

	tableStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240"))

	pickerArea = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("245")).
			Padding(0, 1).BorderLeft(true)

	pickerCursorStyle = lipgloss.NewStyle().
				Background(lipgloss.Color(rowSelectedBGColor)).
				Foreground(lipgloss.Color(rowSelectedTextFGColor))

	chipsStyle = lipgloss.NewStyle().Bold(true)

	dimStyle = lipgloss.NewStyle().Faint(true)
)
