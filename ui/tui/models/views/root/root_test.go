// Copyright (c) 2026 Keymaster Team
// kvedit - key/value list editor
// This source code is licensed under the MIT license found in the LICENSE file.
package root

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/kvedit/internal/editor"
	"github.com/toeirei/kvedit/internal/kvdata"
	"github.com/toeirei/kvedit/ui/tui/models/views/kveditor"
)

func newRoot() *Model {
	state := editor.NewState([]kvdata.Entry{{Key: "A", Value: "1"}}, nil)
	m := New(state, kveditor.DefaultOptions(), ".env")
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return m
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestActionsUpdateState(t *testing.T) {
	m := newRoot()

	m.Update(editor.SetValueAction{Index: 0, Value: "2"})
	if e, _ := m.State().Data.Get(0); e.Value != "2" {
		t.Fatalf("action not applied: %+v", e)
	}

	m.Update(editor.ResetAction{})
	if m.State().Data.HasChanges() {
		t.Fatalf("reset not applied")
	}
}

func TestSubmitQuitsWithData(t *testing.T) {
	m := newRoot()
	m.Update(editor.SetKeyAction{Index: 1, Key: "B"})

	_, cmd := m.Update(editor.SubmitDataAction{Data: m.State().Data})
	if !isQuit(cmd) {
		t.Fatalf("submit should quit")
	}
	got := m.Submitted()
	if got == nil || got.Len() != 2 {
		t.Fatalf("unexpected submitted data %+v", got)
	}
}

func TestExitQuitsWithoutData(t *testing.T) {
	m := newRoot()
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if !isQuit(cmd) {
		t.Fatalf("ctrl+c should quit")
	}
	if m.Submitted() != nil {
		t.Fatalf("nothing was submitted")
	}
}

func TestHelpTogglesFooter(t *testing.T) {
	m := newRoot()
	before := m.View()
	m.Update(tea.KeyMsg{Type: tea.KeyF1})
	if m.View() == before {
		t.Fatalf("expected the expanded help to change the view")
	}
	if !strings.Contains(m.View(), "ctrl+c") {
		t.Fatalf("base bindings missing from the footer")
	}
}

func TestHeaderShowsFileAndStatus(t *testing.T) {
	m := newRoot()
	if !strings.Contains(m.View(), ".env") {
		t.Fatalf("file name missing from the header")
	}
	if strings.Contains(m.View(), "modified") {
		t.Fatalf("unchanged data reported as modified")
	}

	m.Update(editor.SetValueAction{Index: 0, Value: "2"})
	if !strings.Contains(m.View(), "1 entries · modified") {
		t.Fatalf("header status not updated:\n%s", m.View())
	}
}
