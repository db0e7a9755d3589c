// Copyright (c) 2026 Keymaster Team
// kvedit - key/value list editor
// This source code is licensed under the MIT license found in the LICENSE file.

package editor

import (
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/kvedit/internal/kvdata"
	"github.com/toeirei/kvedit/internal/logging"
	"github.com/toeirei/kvedit/util/slicest"
)

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

// Export renders entries as KEY=VALUE lines joined by "\n", without a
// trailing newline.
func Export(entries []kvdata.Entry) string {
	return strings.Join(slicest.Map(entries, func(e kvdata.Entry) string {
		return e.Key + "=" + FormatValue(e.Value)
	}), "\n")
}

// FormatValue quotes multiline values: embedded quotes become \", newlines
// become the two characters \n and the result is wrapped in quotes.
// Values without a newline are returned unchanged, quotes included.
func FormatValue(value string) string {
	if !strings.Contains(value, "\n") {
		return value
	}
	value = strings.ReplaceAll(value, `"`, `\"`)
	value = strings.ReplaceAll(value, "\n", `\n`)
	return `"` + value + `"`
}

// CopyToClipboard writes text to the system clipboard. Failures are logged
// and otherwise ignored.
func CopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := writeClipboard(text); err != nil {
			logging.Debugf("clipboard write failed: %v", err)
		}
		return nil
	}
}
