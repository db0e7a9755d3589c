// Copyright (c) 2026 Keymaster Team
// kvedit - key/value list editor
// This source code is licensed under the MIT license found in the LICENSE file.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/kvedit/internal/editor"
	"github.com/toeirei/kvedit/internal/kvdata"
	"github.com/toeirei/kvedit/ui/tui/models/views/kveditor"
	"github.com/toeirei/kvedit/ui/tui/models/views/root"
)

// Run edits state in the terminal until the user submits or quits. It
// returns the submitted collection, or nil when the user quit.
func Run(state editor.State, opts kveditor.Options, name string, progOpts ...tea.ProgramOption) (*kvdata.Collection, error) {
	m := root.New(state, opts, name)
	progOpts = append([]tea.ProgramOption{tea.WithAltScreen()}, progOpts...)
	if _, err := tea.NewProgram(m, progOpts...).Run(); err != nil {
		return nil, err
	}
	return m.Submitted(), nil
}
