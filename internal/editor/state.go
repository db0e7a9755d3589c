// Copyright (c) 2026 Keymaster Team
// kvedit - key/value list editor
// This source code is licensed under the MIT license found in the LICENSE file.

// Package editor contains the presentation-independent core of the
// key/value editor: the state value and its reducer, the clipboard
// exporter and the focus tracker that restores the input selection after
// the entry collection changes.
package editor

import (
	"maps"

	"github.com/toeirei/kvedit/internal/kvdata"
)

// Slot addresses one of the two inputs of a row.
type Slot int

const (
	KeySlot Slot = iota
	ValueSlot
)

func (s Slot) String() string {
	if s == ValueSlot {
		return "value"
	}
	return "key"
}

// Direction is the direction of a text selection.
type Direction int

const (
	None Direction = iota
	Forward
	Backward
)

// Selection records which input holds focus and its cursor range.
type Selection struct {
	EntryIndex int
	Inner      Slot
	Start      int
	End        int
	Direction  Direction
}

// Inputs is the input-registry part of the state. The input handles
// themselves live outside the state in a Refs table.
type Inputs struct {
	CurrentSelection *Selection
}

// State is the editor state. It is treated as immutable: Reduce returns a
// new value for every action.
type State struct {
	Data                kvdata.Collection
	Suggestions         []string
	SelectedSuggestions map[int]string
	KeyInputSuggestions []string
	Search              string
	Inputs              Inputs
}

// NewState creates the state for editing entries. suggestions are the
// candidate keys offered while typing a key.
func NewState(entries []kvdata.Entry, suggestions []string) State {
	data := kvdata.New(entries)
	return State{
		Data:        data,
		Suggestions: mergeSuggestions(suggestions, data.Keys()),
	}
}

// HasConflicts reports whether two or more entries share a key.
func (s State) HasConflicts() bool {
	return s.Data.HasConflicts()
}

// SelectedSuggestion returns the key suggestion chosen for the entry at
// index, if any.
func (s State) SelectedSuggestion(index int) (string, bool) {
	suggestion, ok := s.SelectedSuggestions[index]
	return suggestion, ok
}

func (s State) withSelectedSuggestion(index int, suggestion string) State {
	selected := maps.Clone(s.SelectedSuggestions)
	if selected == nil {
		selected = make(map[int]string)
	}
	if suggestion == "" {
		delete(selected, index)
	} else {
		selected[index] = suggestion
	}
	s.SelectedSuggestions = selected
	return s
}

func mergeSuggestions(lists ...[]string) []string {
	var merged []string
	seen := make(map[string]bool)
	for _, list := range lists {
		for _, s := range list {
			if s != "" && !seen[s] {
				seen[s] = true
				merged = append(merged, s)
			}
		}
	}
	return merged
}
