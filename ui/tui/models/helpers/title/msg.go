// Copyright (c) 2026 Keymaster Team
// kvedit - key/value list editor
// This source code is licensed under the MIT license found in the LICENSE file.
package windowtitle

import tea "github.com/charmbracelet/bubbletea"

type titleMsg string

type modifiedMsg bool

func Set(title string) tea.Cmd {
	return func() tea.Msg { return titleMsg(title) }
}

// SetModified marks the title as having unsaved changes.
func SetModified(modified bool) tea.Cmd {
	return func() tea.Msg { return modifiedMsg(modified) }
}
