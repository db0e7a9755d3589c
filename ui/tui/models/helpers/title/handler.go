// Copyright (c) 2026 Keymaster Team
// kvedit - key/value list editor
// This source code is licensed under the MIT license found in the LICENSE file.

// Package windowtitle keeps the terminal title in sync with what is being
// edited.
package windowtitle

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

func NewHandler(base string, delimiter string) *TitleHandler {
	return &TitleHandler{
		Base:      base,
		Delimiter: delimiter,
	}
}

// TitleHandler renders "Base", or "Base<Delimiter>current" once a title
// was set, optionally marked as modified.
type TitleHandler struct {
	Base      string
	Delimiter string
	current   string
	modified  bool
}

func (t TitleHandler) Title() string {
	var b strings.Builder
	b.WriteString(t.Base)
	if t.current != "" {
		b.WriteString(t.Delimiter)
		b.WriteString(t.current)
	}
	if t.modified {
		b.WriteString(" *")
	}
	return b.String()
}

func (t TitleHandler) Init() tea.Cmd {
	return tea.SetWindowTitle(t.Title())
}

// Handle consumes title messages and returns the command updating the
// terminal title when it changed.
func (t *TitleHandler) Handle(msg tea.Msg) (tea.Cmd, bool) {
	switch msg := msg.(type) {
	case titleMsg:
		if t.current == string(msg) {
			return nil, true
		}
		t.current = string(msg)
	case modifiedMsg:
		if t.modified == bool(msg) {
			return nil, true
		}
		t.modified = bool(msg)
	default:
		return nil, false
	}
	return tea.SetWindowTitle(t.Title()), true
}
