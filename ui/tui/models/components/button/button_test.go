// Copyright (c) 2026 Keymaster Team
// kvedit - key/value list editor
// This source code is licensed under the MIT license found in the LICENSE file.
package button

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestClicked(t *testing.T) {
	b := New("copy", "Copy data to clipboard")
	enter := tea.KeyMsg{Type: tea.KeyEnter}

	if b.Clicked(enter) {
		t.Fatalf("blurred button must not react")
	}
	b.Focus()
	if !b.Clicked(enter) {
		t.Fatalf("focused button must react to enter")
	}
	if b.Clicked(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}) {
		t.Fatalf("button reacted to an unrelated key")
	}
	b.Disabled = true
	if b.Clicked(enter) {
		t.Fatalf("disabled button must not react")
	}
}

func TestViewIncludesIcon(t *testing.T) {
	b := New("Review Changes", "")
	b.Icon = "✓"
	if !strings.Contains(b.View(), "✓ Review Changes") {
		t.Fatalf("unexpected view: %s", b.View())
	}
	if got := b.KeyMap.Click.Help().Desc; got != "review changes" {
		t.Fatalf("unexpected help text: %q", got)
	}
}
