package main

type Command int

const (
	CmdNone Command = iota
	CmdJump
	CmdSearch
	CmdYears
)

type CommandInput struct {
	cmd Command
	buf string
}

func (m *model) commandBadge(cmd Command) string {
	switch cmd {
	case CmdSearch:
		return "[SEARCH]"
	case CmdJump:
		return "[JUMP]"
	case CmdYears:
		return "[YEARS]"
	default:
		return "[NORMAL]"
	}
}

func (m *model) commandPrompt(cmd Command) string {
	switch cmd {
	case CmdSearch:
		return "search: "
	case CmdJump:
		return "line: "
	case CmdYears:
		return "years: "
	default:
		return ""
	}
}

func (m *model) commandHintsLine(cmd Command) string {
	switch cmd {
	case CmdYears:
		return "start-end (e.g. 2015-2020)   enter: apply   esc: cancel"
	default:
		return "enter: apply   esc: cancel"
	}
}

func (m *model) idleCommandHintsLine() string {
	return "/ search   y years   : jump   s states   t trend   b color"
}

// activeCommandLine returns the command prompt text for the footer status line.
func (m *model) activeCommandLine() string {
	badge := m.commandBadge(m.ui.command.cmd)
	prompt := m.commandPrompt(m.ui.command.cmd)
	return badge + " " + prompt + m.ui.command.buf
}

func commandLabel(cmd Command) string {
	switch cmd {
	case CmdJump:
		return "JUMP"
	case CmdSearch:
		return "SEARCH"
	case CmdYears:
		return "YEARS"
	default:
		return "NORMAL"
	}
}
