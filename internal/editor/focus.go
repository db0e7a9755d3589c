// Copyright (c) 2026 Keymaster Team
// kvedit - key/value list editor
// This source code is licensed under the MIT license found in the LICENSE file.

package editor

import (
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/kvedit/internal/kvdata"
)

// Input is a text input the tracker can focus and place a selection in.
type Input interface {
	Value() string
	Focus() tea.Cmd
	SetSelection(start, end int, dir Direction)
}

// InputPair holds the key and value input of a row, indexed by Slot.
type InputPair [2]Input

// Refs maps entry indexes to the inputs currently rendered for them.
type Refs map[int]InputPair

// Lookup returns the input for slot of the entry at index.
func (r Refs) Lookup(index int, slot Slot) (Input, bool) {
	pair, ok := r[index]
	if !ok || slot < KeySlot || slot > ValueSlot {
		return nil, false
	}
	input := pair[slot]
	return input, input != nil
}

// Resolution is the outcome of a Sync.
type Resolution int

const (
	// Idle means there was no selection to maintain.
	Idle Resolution = iota
	// Reapply means the selected entry still exists; Result.Cmd re-applies
	// the selection once the current update has settled.
	Reapply
	// Advance means the selected entry was removed; focus moved to the
	// entry chosen by NextIndex.
	Advance
)

func (r Resolution) String() string {
	switch r {
	case Reapply:
		return "reapply"
	case Advance:
		return "advance"
	default:
		return "idle"
	}
}

// Result describes what Sync did.
type Result struct {
	Kind Resolution
	// Target is the selection placed by an Advance. It is nil when no input
	// was registered for the next entry.
	Target *Selection
	Cmd    tea.Cmd
}

// RestoreMsg carries a deferred selection restore back to the Tracker.
type RestoreMsg struct {
	generation uint64
	selection  Selection
}

// Tracker keeps focus and selection on a logically equivalent input while
// the entry collection changes underneath it.
//
// Restoring the selection of an existing entry is deferred by one message
// round trip so that the input's own value handling (which may move the
// cursor) runs first. At most one restore is pending: every Sync or Cancel
// invalidates the previous one.
type Tracker struct {
	generation uint64
	pending    bool
}

// Cancel drops a pending restore.
func (t *Tracker) Cancel() {
	t.generation++
	t.pending = false
}

// Pending reports whether a restore is scheduled.
func (t *Tracker) Pending() bool {
	return t.pending
}

// Sync resolves sel against data. Call it after every update that changed
// the collection or the selection.
func (t *Tracker) Sync(sel *Selection, data kvdata.Collection, refs Refs) Result {
	t.Cancel()

	if sel == nil {
		return Result{Kind: Idle}
	}

	if data.HasIndex(sel.EntryIndex) {
		t.pending = true
		msg := RestoreMsg{generation: t.generation, selection: *sel}
		return Result{
			Kind: Reapply,
			Cmd:  func() tea.Msg { return msg },
		}
	}

	next := data.NextIndex(sel.EntryIndex)
	input, ok := refs.Lookup(next, sel.Inner)
	if !ok {
		return Result{Kind: Advance}
	}

	length := utf8.RuneCountInString(input.Value())
	target := Selection{
		EntryIndex: next,
		Inner:      sel.Inner,
		Start:      length,
		End:        length,
		Direction:  Forward,
	}
	cmd := input.Focus()
	input.SetSelection(target.Start, target.End, target.Direction)

	return Result{Kind: Advance, Target: &target, Cmd: cmd}
}

// Restore applies msg if it is the RestoreMsg of the latest Sync. The
// second return value reports whether msg was a RestoreMsg at all.
func (t *Tracker) Restore(msg tea.Msg, refs Refs) (tea.Cmd, bool) {
	restore, ok := msg.(RestoreMsg)
	if !ok {
		return nil, false
	}
	if !t.pending || restore.generation != t.generation {
		return nil, true
	}
	t.pending = false

	sel := restore.selection
	input, found := refs.Lookup(sel.EntryIndex, sel.Inner)
	if !found {
		return nil, true
	}
	cmd := input.Focus()
	input.SetSelection(sel.Start, sel.End, sel.Direction)
	return cmd, true
}
