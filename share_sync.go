package main

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rkallio/gridsift/clipboard"
	"github.com/rkallio/gridsift/filterstate"
	"github.com/rkallio/gridsift/logging"
)

// The share link is rewritten only after the filter state has been quiet for
// this long. Without the gap every pan/zoom keypress would rewrite the link
// and the session file on its own.
const shareSyncQuiet = 150 * time.Millisecond

type syncFlushMsg struct{ seq int }

// scheduleShareSync arms (or re-arms) the deferred share-link write. Each
// call bumps the sequence, so a flush scheduled by an earlier mutation is
// recognized as stale when it finally arrives and gets dropped; only the
// last mutation of a burst lands.
func (m *model) scheduleShareSync() tea.Cmd {
	m.ui.syncSeq++
	id := m.ui.syncSeq
	return tea.Tick(shareSyncQuiet, func(time.Time) tea.Msg { return syncFlushMsg{seq: id} })
}

func (m *model) handleSyncFlush(msg syncFlushMsg) tea.Cmd {
	if msg.seq != m.ui.syncSeq {
		logging.Debugf("share sync: flush %d superseded by %d", msg.seq, m.ui.syncSeq)
		return nil
	}

	m.ui.shareLink = filterstate.Encode(m.filters.Current())
	logging.Infof("share sync: view %q", m.ui.shareLink)

	if m.sessionPath == "" {
		return nil
	}
	if err := saveSession(m.sessionPath, m.ui.shareLink); err != nil {
		logging.Warnf("share sync: session write failed: %v", err)
		return m.startNotice("Session save failed", noticeWarn, noticeDuration)
	}
	return nil
}

// copyShareLink encodes the state as it is right now (not the last flushed
// link, which may lag a burst) and puts it on the clipboard.
func (m *model) copyShareLink() tea.Cmd {
	link := filterstate.Encode(m.filters.Current())
	if link == "" {
		link = "(default view)"
	}
	if err := clipboard.Copy(link); err != nil {
		return m.startNotice("Copy failed: "+err.Error(), noticeError, noticeDuration)
	}
	return m.startNotice("View link copied", noticeSuccess, noticeDuration)
}
