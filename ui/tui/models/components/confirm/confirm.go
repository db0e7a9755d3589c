// Copyright (c) 2026 Keymaster Team
// kvedit - key/value list editor
// This source code is licensed under the MIT license found in the LICENSE file.

// Package confirm provides a modal yes/no dialog meant to be shown through
// the popup injector.
package confirm

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/kvedit/internal/i18n"
	"github.com/toeirei/kvedit/ui/tui/models/components/popup"
	"github.com/toeirei/kvedit/ui/tui/util"
)

type KeyMap struct {
	Switch  key.Binding
	Choose  key.Binding
	Yes     key.Binding
	No      key.Binding
	Dismiss key.Binding
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Switch, k.Choose, k.Dismiss}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Switch, k.Choose}, {k.Yes, k.No, k.Dismiss}}
}

var DefaultKeyMap = KeyMap{
	Switch: key.NewBinding(
		key.WithKeys("left", "right", "tab", "shift+tab", "h", "l"),
		key.WithHelp("←/→", "switch"),
	),
	Choose: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("enter", "choose"),
	),
	Yes: key.NewBinding(
		key.WithKeys("y", "Y"),
		key.WithHelp("y", "yes"),
	),
	No: key.NewBinding(
		key.WithKeys("n", "N"),
		key.WithHelp("n", "no"),
	),
	Dismiss: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
}

// Model asks a yes/no question. The answer is handed to the result
// callback exactly once, after which the popup closes itself.
type Model struct {
	title    string
	message  string
	yes      string
	no       string
	onYes    bool // which button is focused
	answered bool
	onResult func(confirmed bool) tea.Cmd
	size     util.Size
}

// New creates a dialog for message. "No" is focused initially.
func New(message string, onResult func(confirmed bool) tea.Cmd) *Model {
	return &Model{
		title:    i18n.T("confirm.title"),
		message:  message,
		yes:      i18n.T("confirm.yes"),
		no:       i18n.T("confirm.no"),
		onResult: onResult,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if m.size.Update(msg) {
		return nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || m.answered {
		return nil
	}

	switch {
	case key.Matches(kmsg, DefaultKeyMap.Switch):
		m.onYes = !m.onYes
	case key.Matches(kmsg, DefaultKeyMap.Choose):
		return m.answer(m.onYes)
	case key.Matches(kmsg, DefaultKeyMap.Yes):
		return m.answer(true)
	case key.Matches(kmsg, DefaultKeyMap.No), key.Matches(kmsg, DefaultKeyMap.Dismiss):
		return m.answer(false)
	}
	return nil
}

func (m *Model) answer(confirmed bool) tea.Cmd {
	m.answered = true
	var resultCmd tea.Cmd
	if m.onResult != nil {
		resultCmd = m.onResult(confirmed)
	}
	return tea.Sequence(popup.Close(), resultCmd)
}

// Answered reports whether the user made a choice.
func (m Model) Answered() bool {
	return m.answered
}

func (m Model) View() string {
	width := 50
	if m.size.Width > 0 {
		width = min(width, m.size.Width)
	}

	header := lipgloss.NewStyle().
		Foreground(lipgloss.Color("255")).
		Background(lipgloss.Color("60")).
		Bold(true).
		Width(width).
		Render(" " + m.title)

	message := lipgloss.NewStyle().
		Width(width).
		Padding(1, 2, 0, 2).
		Render(m.message)

	return lipgloss.JoinVertical(lipgloss.Left, header, message, m.renderButtons())
}

func (m Model) renderButtons() string {
	base := lipgloss.NewStyle().
		Foreground(lipgloss.Color("255")).
		Background(lipgloss.Color("239")).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("239")).
		Padding(0, 3)
	focused := base.
		Background(lipgloss.Color("60")).
		BorderForeground(lipgloss.Color("60"))

	yesStyle, noStyle := base, focused
	if m.onYes {
		yesStyle, noStyle = focused, base
	}

	row := lipgloss.JoinHorizontal(lipgloss.Center, yesStyle.Render(m.yes), "  ", noStyle.Render(m.no))
	return lipgloss.NewStyle().Padding(1, 2).Render(row)
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	return nil, DefaultKeyMap
}

func (m *Model) Blur() {}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)
