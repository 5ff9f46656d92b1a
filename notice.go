package main

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type clearNoticeMsg struct{ id int }

const noticeDuration = 2 * time.Second

type noticeKind int

const (
	noticePlain noticeKind = iota
	noticeInfo
	noticeSuccess
	noticeWarn
	noticeError
)

func (k noticeKind) icon() string {
	switch k {
	case noticeInfo:
		return "ℹ"
	case noticeSuccess:
		return "✓"
	case noticeWarn:
		return "!"
	case noticeError:
		return "×"
	}
	return ""
}

func noticeText(msg string, kind noticeKind) string {
	if msg == "" {
		return ""
	}
	if icon := kind.icon(); icon != "" {
		return icon + " " + msg
	}
	return msg
}

// startNotice shows a transient footer message and arms its expiry. The
// sequence bump makes the clear timer of a replaced notice a no-op when it
// finally fires.
func (m *model) startNotice(msg string, kind noticeKind, d time.Duration) tea.Cmd {
	m.ui.noticeMsg = msg
	m.ui.noticeKind = kind

	m.ui.noticeSeq++
	id := m.ui.noticeSeq

	return tea.Tick(d, func(time.Time) tea.Msg { return clearNoticeMsg{id: id} })
}
