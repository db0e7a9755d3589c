// Copyright (c) 2026 Keymaster Team
// kvedit - key/value list editor
// This source code is licensed under the MIT license found in the LICENSE file.

// Package kveditor is the key/value editor view: a search input, one row
// of key and value inputs per entry plus a blank row for new entries, and
// the submit, copy and reset buttons. It renders the editor.State it is
// given and reports every change as an editor.Action.
package kveditor

import (
	"slices"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/kvedit/internal/editor"
	"github.com/toeirei/kvedit/internal/i18n"
	"github.com/toeirei/kvedit/internal/kvdata"
	"github.com/toeirei/kvedit/internal/logging"
	"github.com/toeirei/kvedit/ui/tui/models/components/button"
	"github.com/toeirei/kvedit/ui/tui/models/components/confirm"
	"github.com/toeirei/kvedit/ui/tui/models/components/popup"
	"github.com/toeirei/kvedit/ui/tui/util"
	"github.com/toeirei/kvedit/util/slicest"
)

// StateMsg delivers the state produced by Cause.
type StateMsg struct {
	State editor.State
	Cause editor.Action
}

type targetKind int

const (
	searchTarget targetKind = iota
	fieldTarget
	submitTarget
	copyTarget
	resetTarget
)

// target is one stop of the focus ring.
type target struct {
	kind  targetKind
	index int
	slot  editor.Slot
}

func fieldOf(index int, slot editor.Slot) target {
	return target{kind: fieldTarget, index: index, slot: slot}
}

type Model struct {
	state    editor.State
	opts     Options
	keyMap   KeyMap
	dispatch editor.Dispatcher
	tracker  editor.Tracker

	search  *field
	rows    map[int]*row
	visible []int // rendered entry indexes, blank row last
	submit  *button.Button
	copy    *button.Button
	reset   *button.Button

	current target
	focused bool
	status  string
	size    util.Size
}

// New creates the editor for state. A nil dispatch uses editor.Dispatch.
func New(state editor.State, opts Options, dispatch editor.Dispatcher) *Model {
	if dispatch == nil {
		dispatch = editor.Dispatch
	}

	m := &Model{
		state:    state,
		opts:     opts,
		keyMap:   DefaultKeyMap(),
		dispatch: dispatch,
		search:   newField(i18n.T("editor.search_placeholder")),
		rows:     make(map[int]*row),
		submit:   button.New(opts.SubmitLabel, ""),
		copy:     button.New(i18n.T("editor.copy_label"), opts.CopyButtonTitle),
		reset:    button.New(i18n.T("editor.reset_label"), opts.ResetButtonTitle),
	}
	m.search.input.Prompt = "/ "
	m.submit.Primary = true

	m.syncState()
	m.current = m.fallback()
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if m.size.Update(msg) {
		m.resize()
		return nil
	}

	if cmd, ok := m.tracker.Restore(msg, m.refs()); ok {
		return cmd
	}

	switch msg := msg.(type) {
	case StateMsg:
		return m.applyState(msg)
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// cursor blinks
	if f := m.focusedField(); f != nil {
		return f.update(msg)
	}
	return nil
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	m.focused = true
	if !m.valid(m.current) {
		m.current = m.fallback()
	}
	return m.focusCurrent(), m.currentKeyMap()
}

func (m *Model) Blur() {
	m.tracker.Cancel()
	m.blurCurrent()
	m.focused = false
}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)

// State returns the state the editor currently shows.
func (m Model) State() editor.State {
	return m.state
}

func (m *Model) applyState(msg StateMsg) tea.Cmd {
	m.state = msg.State
	m.acknowledge(msg.Cause)
	m.syncState()

	var cmds []tea.Cmd
	switch msg.Cause.(type) {
	case editor.SetKeyAction, editor.SetValueAction, editor.RemoveEntryAction, editor.ResetAction:
		cmds = append(cmds, m.resolveSelection())
	}
	if !m.valid(m.current) {
		cmds = append(cmds, m.moveTo(m.fallback()))
	}
	return tea.Batch(cmds...)
}

func (m *Model) acknowledge(cause editor.Action) {
	var index int
	var slot editor.Slot
	switch a := cause.(type) {
	case editor.SetKeyAction:
		index, slot = a.Index, editor.KeySlot
	case editor.SetValueAction:
		index, slot = a.Index, editor.ValueSlot
	case editor.SetSearchAction:
		m.search.acknowledged()
		return
	default:
		return
	}
	if r, ok := m.rows[index]; ok {
		r.fields[slot].acknowledged()
	}
}

// resolveSelection keeps focus on the recorded selection after the
// collection changed.
func (m *Model) resolveSelection() tea.Cmd {
	res := m.tracker.Sync(m.state.Inputs.CurrentSelection, m.state.Data, m.refs())
	logging.Debugf("kveditor: selection %s", res.Kind)
	if res.Kind != editor.Advance {
		return res.Cmd
	}
	return tea.Batch(res.Cmd, m.dispatch(editor.SetSelectionAction{Selection: res.Target}))
}

// syncState brings rows, search and buttons in line with the state.
func (m *Model) syncState() {
	data := m.state.Data
	blank := data.NextFreeIndex()

	for index := range m.rows {
		if index != blank && !data.HasIndex(index) {
			delete(m.rows, index)
		}
	}

	visible := kvdata.MapEntries(data, func(index int, e kvdata.Entry) int {
		r, ok := m.rows[index]
		if !ok {
			r = newRow(index, m.opts)
			m.rows[index] = r
			m.resizeRow(r)
		}
		r.fields[editor.KeySlot].sync(e.Key)
		r.fields[editor.ValueSlot].sync(e.Value)

		if index == blank || kvdata.Matches(e, m.state.Search) {
			return index
		}
		return -1
	}, kvdata.AppendEmptyEntry)
	m.visible = slicest.Filter(visible, func(index int) bool { return index >= 0 })

	m.search.sync(m.state.Search)

	changed := data.HasChanges()
	m.submit.Disabled = !changed
	m.reset.Disabled = !changed
	m.submit.Icon = "✓"
	if m.state.HasConflicts() {
		m.submit.Icon = "⚠"
	}
}

func (m *Model) refs() editor.Refs {
	refs := make(editor.Refs, len(m.visible))
	for _, index := range m.visible {
		refs[index] = editor.InputPair{
			editor.KeySlot:   inputRef{m: m, target: fieldOf(index, editor.KeySlot)},
			editor.ValueSlot: inputRef{m: m, target: fieldOf(index, editor.ValueSlot)},
		}
	}
	return refs
}

// ring lists the focus stops in tab order.
func (m Model) ring() []target {
	ring := []target{{kind: searchTarget}}
	for _, index := range m.visible {
		ring = append(ring, fieldOf(index, editor.KeySlot), fieldOf(index, editor.ValueSlot))
	}
	for _, t := range []targetKind{submitTarget, copyTarget, resetTarget} {
		if !m.buttonAt(t).Disabled {
			ring = append(ring, target{kind: t})
		}
	}
	return ring
}

func (m Model) valid(t target) bool {
	return slices.Contains(m.ring(), t)
}

// fallback is the first row's key input.
func (m Model) fallback() target {
	if len(m.visible) == 0 {
		return target{kind: searchTarget}
	}
	return fieldOf(m.visible[0], editor.KeySlot)
}

func (m Model) fieldAt(t target) *field {
	switch t.kind {
	case searchTarget:
		return m.search
	case fieldTarget:
		if r, ok := m.rows[t.index]; ok {
			return r.fields[t.slot]
		}
	}
	return nil
}

func (m Model) focusedField() *field {
	if !m.focused {
		return nil
	}
	return m.fieldAt(m.current)
}

func (m Model) buttonAt(kind targetKind) *button.Button {
	switch kind {
	case submitTarget:
		return m.submit
	case copyTarget:
		return m.copy
	case resetTarget:
		return m.reset
	}
	return nil
}

// selectionAt is the selection to record for t, nil outside the rows.
func (m Model) selectionAt(t target) *editor.Selection {
	if t.kind != fieldTarget {
		return nil
	}
	f := m.fieldAt(t)
	if f == nil {
		return nil
	}
	pos := f.Position()
	return &editor.Selection{
		EntryIndex: t.index,
		Inner:      t.slot,
		Start:      pos,
		End:        pos,
		Direction:  editor.None,
	}
}

func (m *Model) blurCurrent() {
	if f := m.fieldAt(m.current); f != nil {
		f.input.Blur()
	}
	if b := m.buttonAt(m.current.kind); b != nil {
		b.Blur()
	}
}

func (m *Model) focusCurrent() tea.Cmd {
	if !m.focused {
		return nil
	}
	if f := m.fieldAt(m.current); f != nil {
		return f.input.Focus()
	}
	if b := m.buttonAt(m.current.kind); b != nil {
		cmd, _ := b.Focus()
		return cmd
	}
	return nil
}

// focus moves focus to t without recording a selection.
func (m *Model) focus(t target) tea.Cmd {
	m.blurCurrent()
	m.current = t
	if !m.focused {
		return nil
	}
	return tea.Batch(m.focusCurrent(), util.AnnounceKeyMapCmd(m.currentKeyMap()))
}

// moveTo is a focus change made by the editor itself. It drops a pending
// restore and records the new selection.
func (m *Model) moveTo(t target) tea.Cmd {
	m.tracker.Cancel()
	return tea.Batch(
		m.focus(t),
		m.dispatch(editor.SetSelectionAction{Selection: m.selectionAt(t)}),
	)
}

func (m *Model) moveBy(delta int) tea.Cmd {
	ring := m.ring()
	pos := slices.Index(ring, m.current)
	if pos < 0 {
		return m.moveTo(ring[0])
	}
	return m.moveTo(ring[(pos+delta+len(ring))%len(ring)])
}

func (m Model) currentKeyMap() help.KeyMap {
	km := m.keyMap
	onField := m.current.kind == fieldTarget
	onKey := onField && m.current.slot == editor.KeySlot
	km.Remove.SetEnabled(onField && m.state.Data.HasIndex(m.current.index))
	km.Suggest.SetEnabled(onKey && len(m.state.KeyInputSuggestions) > 0)
	km.Accept.SetEnabled(onField)
	km.ClearSearch.SetEnabled(m.current.kind == searchTarget)
	km.Submit.SetEnabled(!m.submit.Disabled)
	km.Reset.SetEnabled(!m.reset.Disabled)

	if b := m.buttonAt(m.current.kind); b != nil {
		return util.MergeKeyMaps(b.KeyMap, km)
	}
	return km
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	m.status = ""

	switch {
	case key.Matches(msg, m.keyMap.Submit):
		return m.submitCmd()
	case key.Matches(msg, m.keyMap.Copy):
		return m.copyCmd()
	case key.Matches(msg, m.keyMap.Reset):
		return m.resetCmd()
	case key.Matches(msg, m.keyMap.Next):
		return m.moveBy(1)
	case key.Matches(msg, m.keyMap.Prev):
		return m.moveBy(-1)
	}

	switch m.current.kind {
	case searchTarget:
		if key.Matches(msg, m.keyMap.ClearSearch) && m.search.Value() != "" {
			m.search.input.SetValue("")
			m.search.edited()
			return m.dispatch(editor.SetSearchAction{Query: ""})
		}
		return m.updateSearch(msg)
	case fieldTarget:
		return m.handleFieldKey(msg)
	}

	b := m.buttonAt(m.current.kind)
	if b == nil || !b.Clicked(msg) {
		return nil
	}
	switch m.current.kind {
	case submitTarget:
		return m.submitCmd()
	case copyTarget:
		return m.copyCmd()
	case resetTarget:
		return m.resetCmd()
	}
	return nil
}

func (m *Model) handleFieldKey(msg tea.KeyMsg) tea.Cmd {
	index, slot := m.current.index, m.current.slot

	switch {
	case key.Matches(msg, m.keyMap.Remove):
		if !m.state.Data.HasIndex(index) {
			return nil
		}
		return tea.Sequence(
			m.dispatch(editor.SetSelectionAction{Selection: m.selectionAt(m.current)}),
			m.dispatch(editor.RemoveEntryAction{Index: index}),
		)
	case slot == editor.KeySlot && key.Matches(msg, m.keyMap.Suggest):
		current, _ := m.state.SelectedSuggestion(index)
		next := editor.NextSuggestion(m.state.KeyInputSuggestions, current)
		if next == "" {
			return nil
		}
		return m.dispatch(editor.SelectSuggestionAction{Index: index, Suggestion: next})
	case key.Matches(msg, m.keyMap.Accept):
		if suggestion, ok := m.state.SelectedSuggestion(index); ok && slot == editor.KeySlot {
			return m.acceptSuggestion(index, suggestion)
		}
		return m.moveBy(1)
	}

	return m.updateField(msg)
}

func (m *Model) acceptSuggestion(index int, suggestion string) tea.Cmd {
	f := m.fieldAt(m.current)
	f.input.SetValue(suggestion)
	f.input.CursorEnd()
	f.edited()
	m.tracker.Cancel()
	return tea.Sequence(
		m.dispatch(editor.SetSelectionAction{Selection: m.selectionAt(m.current)}),
		m.dispatch(editor.SetKeyAction{Index: index, Key: suggestion}),
	)
}

// updateField hands msg to the focused row input and reports what
// changed: the selection first, then the value.
func (m *Model) updateField(msg tea.Msg) tea.Cmd {
	f := m.fieldAt(m.current)
	if f == nil {
		return nil
	}
	before, beforePos := f.Value(), f.Position()
	cmd := f.update(msg)
	if f.Value() == before && f.Position() == beforePos {
		return cmd
	}

	// the user moved on; a pending restore would move the cursor back
	m.tracker.Cancel()

	actions := []tea.Cmd{m.dispatch(editor.SetSelectionAction{Selection: m.selectionAt(m.current)})}
	if value := f.Value(); value != before {
		f.edited()
		if m.current.slot == editor.KeySlot {
			actions = append(actions, m.dispatch(editor.SetKeyAction{Index: m.current.index, Key: value}))
		} else {
			actions = append(actions, m.dispatch(editor.SetValueAction{Index: m.current.index, Value: value}))
		}
	}
	return tea.Batch(cmd, tea.Sequence(actions...))
}

func (m *Model) updateSearch(msg tea.Msg) tea.Cmd {
	before := m.search.Value()
	cmd := m.search.update(msg)
	if query := m.search.Value(); query != before {
		m.search.edited()
		return tea.Batch(cmd, m.dispatch(editor.SetSearchAction{Query: query}))
	}
	return cmd
}

func (m *Model) submitCmd() tea.Cmd {
	if m.submit.Disabled {
		return nil
	}
	return m.dispatch(editor.SubmitDataAction{Data: m.state.Data})
}

func (m *Model) copyCmd() tea.Cmd {
	entries := m.state.Data.Entries()
	m.status = i18n.T("editor.copied", len(entries))
	return editor.CopyToClipboard(editor.Export(entries))
}

func (m *Model) resetCmd() tea.Cmd {
	if m.reset.Disabled {
		return nil
	}
	dispatch := m.dispatch
	return popup.Open(confirm.New(m.opts.ResetConfirmText, func(confirmed bool) tea.Cmd {
		return editor.ConfirmReset(confirmed, dispatch)
	}))
}
