// Copyright (c) 2026 Keymaster Team
// kvedit - key/value list editor
// This source code is licensed under the MIT license found in the LICENSE file.

// Package keyhelp renders the key help footer. It listens for
// util.AnnounceKeyMapMsg and shows the announced bindings merged with the
// application-wide ones.
package keyhelp

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/kvedit/ui/tui/util"
)

type Model struct {
	KeyMap     help.KeyMap
	Expanded   bool
	baseKeyMap help.KeyMap
	size       util.Size
	help       help.Model
}

func New(baseKeyMap help.KeyMap) *Model {
	return &Model{
		baseKeyMap: baseKeyMap,
		help:       help.New(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if m.size.Update(msg) {
		m.help.Width = m.size.Width
		return nil
	}

	if msg, ok := msg.(util.AnnounceKeyMapMsg); ok {
		m.KeyMap = msg.KeyMap
	}
	return nil
}

func (m Model) keyMap() help.KeyMap {
	return util.MergeKeyMaps(m.KeyMap, m.baseKeyMap)
}

func (m Model) View() string {
	var content string
	if !m.Expanded {
		content = ShortHelpView(m.help, m.keyMap().ShortHelp())
	} else {
		content = FullHelpView(m.help, m.keyMap().FullHelp())
	}

	return lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		Width(m.size.Width).
		Render(content)
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	return nil, nil
}

func (m *Model) Blur() {}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)

func (m *Model) ToggleExpanded() {
	m.Expanded = !m.Expanded
}
