// Copyright (c) 2026 Keymaster Team
// kvedit - key/value list editor
// This source code is licensed under the MIT license found in the LICENSE file.
package button

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/kvedit/ui/tui/util"
)

type Button struct {
	Label    string
	Title    string // shown in the key help while focused
	Icon     string
	Primary  bool
	Disabled bool
	KeyMap   KeyMap

	DisabledStyle lipgloss.Style
	BlurredStyle  lipgloss.Style
	FocusedStyle  lipgloss.Style

	focused bool
}

type KeyMap struct {
	Click key.Binding
}

func (k KeyMap) ShortHelp() []key.Binding { return []key.Binding{k.Click} }

func (k KeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{{k.Click}} }

func New(label, title string) *Button {
	base := lipgloss.NewStyle().
		Padding(0, 2).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240"))

	desc := title
	if desc == "" {
		desc = strings.ToLower(label)
	}

	return &Button{
		Label: label,
		Title: title,
		KeyMap: KeyMap{
			Click: key.NewBinding(
				key.WithKeys("enter", " "),
				key.WithHelp("enter", desc),
			),
		},
		DisabledStyle: base.
			Foreground(lipgloss.Color("238")).
			BorderForeground(lipgloss.Color("238")),
		BlurredStyle: base.
			Foreground(lipgloss.Color("250")),
		FocusedStyle: base.
			BorderForeground(lipgloss.Color("205")).
			Foreground(lipgloss.Color("255")).
			Bold(true),
	}
}

func (b *Button) Focus() (tea.Cmd, help.KeyMap) {
	b.focused = true
	return nil, b.KeyMap
}

func (b *Button) Blur() {
	b.focused = false
}

func (b Button) Focused() bool {
	return b.focused
}

// Clicked reports whether msg activates the button.
func (b Button) Clicked(msg tea.Msg) bool {
	kmsg, ok := msg.(tea.KeyMsg)
	return ok && b.focused && !b.Disabled && key.Matches(kmsg, b.KeyMap.Click)
}

func (b Button) View() string {
	label := b.Label
	if b.Icon != "" {
		label = b.Icon + " " + label
	}

	switch {
	case b.Disabled:
		return b.DisabledStyle.Render(label)
	case b.focused:
		return b.FocusedStyle.Render(label)
	case b.Primary:
		return b.BlurredStyle.BorderForeground(lipgloss.Color("60")).Render(label)
	default:
		return b.BlurredStyle.Render(label)
	}
}

var _ util.Focusable = (*Button)(nil)
