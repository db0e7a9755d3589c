// Copyright (c) 2026 Keymaster Team
// kvedit - key/value list editor
// This source code is licensed under the MIT license found in the LICENSE file.
package stack

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type box struct {
	lines   int
	size    tea.WindowSizeMsg
	keys    int
	focused bool
}

func (b *box) Init() tea.Cmd { return nil }
func (b *box) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.size = msg
	case tea.KeyMsg:
		b.keys++
	}
	return nil
}
func (b *box) View() string                  { return strings.Repeat("x\n", b.lines-1) + "x" }
func (b *box) Focus() (tea.Cmd, help.KeyMap) { b.focused = true; return nil, nil }
func (b *box) Blur()                         { b.focused = false }

func TestVerticalSizing(t *testing.T) {
	body := &box{lines: 1}
	footer := &box{lines: 3}
	s := New(
		WithOrientation(Vertical),
		WithItem(body, VariableSize(1)),
		WithItem(footer, FitContent(Vertical), DropKeys),
	)

	s.Update(tea.WindowSizeMsg{Width: 40, Height: 20})

	if footer.size.Height != 3 || footer.size.Width != 40 {
		t.Fatalf("footer size = %+v", footer.size)
	}
	if body.size.Height != 17 {
		t.Fatalf("body height = %d, want 17", body.size.Height)
	}

	// footer grows, body shrinks on the next update
	footer.lines = 5
	s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if body.size.Height != 15 {
		t.Fatalf("body height after growth = %d, want 15", body.size.Height)
	}
	if body.keys != 1 || footer.keys != 0 {
		t.Fatalf("key routing: body=%d footer=%d", body.keys, footer.keys)
	}
}

func TestFocusSwitching(t *testing.T) {
	a, b := &box{lines: 1}, &box{lines: 1}
	s := New(WithItem(a, VariableSize(1)), WithItem(b, VariableSize(1)), WithFocus(FocusIndex(0)))

	s.Focus()
	if !a.focused || b.focused {
		t.Fatalf("expected only a focused")
	}

	s.SetFocus(FocusIndex(5))
	if a.focused || !b.focused {
		t.Fatalf("expected focus clamped to last item")
	}

	s.SetFocus(FocusAll())
	if !a.focused || !b.focused {
		t.Fatalf("expected both focused")
	}
}

func TestHorizontalStaticSizeAndGap(t *testing.T) {
	side, main := &box{lines: 1}, &box{lines: 1}
	s := New(
		WithGap(2),
		WithAlign(lipgloss.Center),
		WithItem(side, StaticSize(10)),
		WithItem(main, VariableSize(1)),
		WithMsgFilter(DropKeys),
	)

	s.Update(tea.WindowSizeMsg{Width: 30, Height: 4})
	if side.size.Width != 10 || main.size.Width != 18 {
		t.Fatalf("widths side=%d main=%d", side.size.Width, main.size.Width)
	}
	if main.size.Height != 4 {
		t.Fatalf("height not passed on: %d", main.size.Height)
	}

	s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if side.keys != 0 || main.keys != 0 {
		t.Fatalf("stack-wide filter let keys through")
	}
	if w := lipgloss.Width(s.View()); w != 30 {
		t.Fatalf("view width = %d", w)
	}
}
