//go:build linux
// +build linux

package clipboard

import (
	"os"
	"os/exec"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/rkallio/gridsift/logging"
)

// Copy puts text on the clipboard. Wayland gets wl-copy directly, everything
// else goes through atotto/clipboard (xclip/xsel), and OSC52 is the fallback
// for bare terminals and ssh sessions.
func Copy(text string) error {
	if waylandSession() {
		if _, err := exec.LookPath("wl-copy"); err == nil {
			cmd := exec.Command("wl-copy")
			cmd.Stdin = strings.NewReader(text)
			if err := cmd.Run(); err == nil {
				return nil
			}
			logging.Warnf("Clipboard: wl-copy failed, trying fallbacks")
		}
	}
	if err := clipboard.WriteAll(text); err != nil {
		logging.Warnf("Clipboard: native copy failed (%v), trying OSC52", err)
		return copyOSC52(text)
	}
	return nil
}

func waylandSession() bool {
	return os.Getenv("WAYLAND_DISPLAY") != "" || os.Getenv("XDG_SESSION_TYPE") == "wayland"
}
