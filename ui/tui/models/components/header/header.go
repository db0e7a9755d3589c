// Copyright (c) 2026 Keymaster Team
// kvedit - key/value list editor
// This source code is licensed under the MIT license found in the LICENSE file.

// Package header renders the one-line title bar above the editor: the
// program title on the left and a short status on the right.
package header

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/toeirei/kvedit/ui/tui/util"
)

const logo string = "🗝️ kvedit"

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	borderStyle = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false).BorderBottom(true)
)

type Model struct {
	name   string
	status []string
	size   util.Size
}

// New creates a header for the file called name. An empty name shows the
// logo only.
func New(name string) *Model {
	return &Model{name: name}
}

// SetStatus replaces the status parts shown on the right.
func (m *Model) SetStatus(parts ...string) {
	m.status = parts
}

func (m Model) Title() string {
	if m.name == "" {
		return logo
	}
	return logo + " · " + m.name
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	m.size.Update(msg)
	return nil
}

func (m Model) View() string {
	left := titleStyle.Render(m.Title())
	right := statusStyle.Render(strings.Join(m.status, " · "))

	gap := m.size.Width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		// the status goes first when space runs out
		return borderStyle.Render(ansi.Truncate(left, max(m.size.Width, 0), "…"))
	}
	return borderStyle.Render(left + strings.Repeat(" ", gap) + right)
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	return nil, nil
}

func (m *Model) Blur() {}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)
