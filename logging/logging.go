package logging

import (
	"fmt"
	"io"
	"log"

	tea "github.com/charmbracelet/bubbletea"
)

// Setup points the stdlib logger (and bubbletea's internal logging) at the
// given file. With an empty filename everything below Fatal is discarded; a
// TUI cannot log to the terminal it is drawing on.
func Setup(filename string) (cleanup func(), err error) {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	if filename == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}

	f, err := tea.LogToFile(filename, "gridsift")
	if err != nil {
		return nil, err
	}
	log.SetOutput(f)

	return func() { f.Close() }, nil
}

// Leveled helpers over the stdlib logger. Output still goes wherever Setup
// pointed it.

func Debug(msg string) {
	log.Output(2, "DEBUG "+msg)
}

func Debugf(format string, args ...any) {
	log.Output(2, "DEBUG "+fmt.Sprintf(format, args...))
}

func Infof(format string, args ...any) {
	log.Output(2, "INFO  "+fmt.Sprintf(format, args...))
}

func Warnf(format string, args ...any) {
	log.Output(2, "WARN  "+fmt.Sprintf(format, args...))
}
