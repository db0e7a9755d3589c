// Copyright (c) 2026 Keymaster Team
// kvedit - key/value list editor
// This source code is licensed under the MIT license found in the LICENSE file.

package editor

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/kvedit/internal/kvdata"
)

type ActionType int

const (
	ActionReset ActionType = iota
	ActionSubmitData
	ActionSetKey
	ActionSetValue
	ActionRemoveEntry
	ActionSetSearch
	ActionSetSelection
	ActionSelectSuggestion
)

// Action is a state change request. Actions travel through the bubbletea
// loop as messages and are applied by Reduce.
type Action interface {
	Type() ActionType
}

type ResetAction struct{}

// SubmitDataAction hands the collection to whoever receives the action.
type SubmitDataAction struct {
	Data kvdata.Collection
}

type SetKeyAction struct {
	Index int
	Key   string
}

type SetValueAction struct {
	Index int
	Value string
}

type RemoveEntryAction struct {
	Index int
}

type SetSearchAction struct {
	Query string
}

// SetSelectionAction records the current selection. A nil Selection
// clears it.
type SetSelectionAction struct {
	Selection *Selection
}

// SelectSuggestionAction picks the key suggestion shown for a row. An
// empty Suggestion clears the pick.
type SelectSuggestionAction struct {
	Index      int
	Suggestion string
}

func (ResetAction) Type() ActionType            { return ActionReset }
func (SubmitDataAction) Type() ActionType       { return ActionSubmitData }
func (SetKeyAction) Type() ActionType           { return ActionSetKey }
func (SetValueAction) Type() ActionType         { return ActionSetValue }
func (RemoveEntryAction) Type() ActionType      { return ActionRemoveEntry }
func (SetSearchAction) Type() ActionType        { return ActionSetSearch }
func (SetSelectionAction) Type() ActionType     { return ActionSetSelection }
func (SelectSuggestionAction) Type() ActionType { return ActionSelectSuggestion }

// Dispatcher turns an action into a command delivering it.
type Dispatcher func(Action) tea.Cmd

// Dispatch is the Dispatcher used by the running program.
func Dispatch(a Action) tea.Cmd {
	return func() tea.Msg { return a }
}

// ConfirmReset dispatches a reset only when the user confirmed it.
func ConfirmReset(confirmed bool, dispatch Dispatcher) tea.Cmd {
	if !confirmed {
		return nil
	}
	return dispatch(ResetAction{})
}
