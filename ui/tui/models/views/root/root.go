// Copyright (c) 2026 Keymaster Team
// kvedit - key/value list editor
// This source code is licensed under the MIT license found in the LICENSE file.

// Package root is the top-level model. It owns the editor state, applies
// every dispatched action to it and hands the result to the editor view.
package root

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/kvedit/buildvars"
	"github.com/toeirei/kvedit/internal/editor"
	"github.com/toeirei/kvedit/internal/kvdata"
	"github.com/toeirei/kvedit/internal/logging"
	"github.com/toeirei/kvedit/internal/i18n"
	"github.com/toeirei/kvedit/ui/tui/models/components/header"
	"github.com/toeirei/kvedit/ui/tui/models/components/keyhelp"
	"github.com/toeirei/kvedit/ui/tui/models/components/popup"
	"github.com/toeirei/kvedit/ui/tui/models/components/stack"
	windowtitle "github.com/toeirei/kvedit/ui/tui/models/helpers/title"
	"github.com/toeirei/kvedit/ui/tui/models/views/kveditor"
	"github.com/toeirei/kvedit/ui/tui/util"
)

const title string = "kvedit"

type Model struct {
	state        editor.State
	keyMap       KeyMap
	stack        *stack.Model
	header       *header.Model
	footer       *keyhelp.Model
	titleHandler *windowtitle.TitleHandler
	name         string
	submitted    *kvdata.Collection
}

// New creates the root model editing state. name is shown in the header
// and the window title.
func New(state editor.State, opts kveditor.Options, name string) *Model {
	keyMap := BaseKeyMap()
	footer := keyhelp.New(keyMap)
	head := header.New(name)
	head.SetStatus(statusParts(state)...)

	return &Model{
		state:  state,
		keyMap: keyMap,
		stack: stack.New(
			stack.WithOrientation(stack.Vertical),
			stack.WithFocus(stack.FocusIndex(1)),
			stack.WithItem(head, header.SizeConfig, stack.DropKeys),
			stack.WithItem(
				popup.NewInjector(kveditor.New(state, opts, editor.Dispatch)),
				stack.VariableSize(1),
			),
			stack.WithItem(footer, stack.FitContent(stack.Vertical), stack.DropKeys),
		),
		header:       head,
		footer:       footer,
		titleHandler: windowtitle.NewHandler(fmt.Sprintf("%s %s", title, buildvars.VersionOrDefault("dev")), " | "),
		name:         name,
	}
}

func (m *Model) Init() tea.Cmd {
	titleCmd := m.titleHandler.Init()
	initCmd := m.stack.Init()
	focusCmd, keyMap := m.stack.Focus()
	keyMapCmd := util.AnnounceKeyMapCmd(keyMap)

	return tea.Sequence(titleCmd, windowtitle.Set(m.name), initCmd, focusCmd, keyMapCmd)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// handle key messages
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keyMap.Exit):
			logging.Infof("editor closed without submitting")
			return m, tea.Quit
		case key.Matches(msg, m.keyMap.Help):
			m.footer.ToggleExpanded()
		}
		return m, m.stack.Update(msg)
	}
	// handle editor actions
	if a, ok := msg.(editor.Action); ok {
		return m, m.apply(a)
	}
	// handle window title messages
	if cmd, ok := m.titleHandler.Handle(msg); ok {
		return m, cmd
	}
	// handle other messages
	return m, m.stack.Update(msg)
}

func (m *Model) apply(a editor.Action) tea.Cmd {
	if submit, ok := a.(editor.SubmitDataAction); ok {
		data := submit.Data
		m.submitted = &data
		logging.Infof("submitted %d entries", data.Len())
		return tea.Quit
	}

	logging.Debugf("action %T", a)
	changedBefore := m.state.Data.HasChanges()
	m.state = editor.Reduce(m.state, a)
	m.header.SetStatus(statusParts(m.state)...)

	cmds := []tea.Cmd{m.stack.Update(kveditor.StateMsg{State: m.state, Cause: a})}
	if changed := m.state.Data.HasChanges(); changed != changedBefore {
		cmds = append(cmds, windowtitle.SetModified(changed))
	}
	return tea.Batch(cmds...)
}

// statusParts summarizes state for the header.
func statusParts(state editor.State) []string {
	parts := []string{i18n.T("header.entries", state.Data.Len())}
	if state.Data.HasChanges() {
		parts = append(parts, i18n.T("header.modified"))
	}
	if state.HasConflicts() {
		parts = append(parts, i18n.T("header.conflicts"))
	}
	return parts
}

func (m *Model) View() string {
	return m.stack.View()
}

// Submitted returns the collection handed over by the submit button, nil
// when the user quit without submitting.
func (m *Model) Submitted() *kvdata.Collection {
	return m.submitted
}

// State returns the current editor state.
func (m *Model) State() editor.State {
	return m.state
}

// *Model implements tea.Model
var _ tea.Model = (*Model)(nil)
