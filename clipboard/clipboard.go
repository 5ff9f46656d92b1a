//go:build !linux
// +build !linux

package clipboard

import (
	"github.com/atotto/clipboard"

	"github.com/rkallio/gridsift/logging"
)

// Copy puts text on the system clipboard, falling back to an OSC52 escape
// when no native clipboard tool is reachable (e.g. over ssh).
func Copy(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		logging.Warnf("Clipboard: native copy failed (%v), trying OSC52", err)
		return copyOSC52(text)
	}
	return nil
}
