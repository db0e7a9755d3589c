// Copyright (c) 2026 Keymaster Team
// kvedit - key/value list editor
// This source code is licensed under the MIT license found in the LICENSE file.

package editor

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
	"github.com/toeirei/kvedit/internal/kvdata"
)

func newTestState() State {
	return NewState(
		[]kvdata.Entry{{Key: "DB_HOST", Value: "localhost"}, {Key: "DB_PORT", Value: "5432"}},
		[]string{"DB_USER", "DB_HOST", "LOG_LEVEL"},
	)
}

func TestNewStateMergesSuggestions(t *testing.T) {
	s := newTestState()
	require.Equal(t, []string{"DB_USER", "DB_HOST", "LOG_LEVEL", "DB_PORT"}, s.Suggestions)
	require.False(t, s.Data.HasChanges())
	require.False(t, s.HasConflicts())
}

func TestReduceEdits(t *testing.T) {
	s := newTestState()

	s = Reduce(s, SetValueAction{Index: 1, Value: "5433"})
	e, _ := s.Data.Get(1)
	require.Equal(t, "5433", e.Value)
	require.True(t, s.Data.HasChanges())

	s = Reduce(s, SetKeyAction{Index: 2, Key: "DB"})
	require.Equal(t, 3, s.Data.Len())
	require.Equal(t, []string{"DB_USER", "DB_HOST", "DB_PORT"}, s.KeyInputSuggestions)

	s = Reduce(s, SetKeyAction{Index: 2, Key: "DB_HOST"})
	require.True(t, s.HasConflicts())

	s = Reduce(s, RemoveEntryAction{Index: 2})
	require.False(t, s.HasConflicts())
	require.Equal(t, 2, s.Data.Len())
}

func TestReduceSuggestionSelection(t *testing.T) {
	s := newTestState()
	s = Reduce(s, SelectSuggestionAction{Index: 0, Suggestion: "DB_USER"})

	got, ok := s.SelectedSuggestion(0)
	require.True(t, ok)
	require.Equal(t, "DB_USER", got)

	// typing drops the pick
	s2 := Reduce(s, SetKeyAction{Index: 0, Key: "DB_"})
	_, ok = s2.SelectedSuggestion(0)
	require.False(t, ok)
	// earlier states are untouched
	_, ok = s.SelectedSuggestion(0)
	require.True(t, ok)

	s3 := Reduce(s, SelectSuggestionAction{Index: 0})
	_, ok = s3.SelectedSuggestion(0)
	require.False(t, ok)

	s4 := Reduce(s, RemoveEntryAction{Index: 0})
	_, ok = s4.SelectedSuggestion(0)
	require.False(t, ok)
}

func TestReduceSelectionAndSearch(t *testing.T) {
	s := newTestState()
	sel := &Selection{EntryIndex: 1, Inner: ValueSlot, Start: 2, End: 2, Direction: Forward}

	s = Reduce(s, SetSelectionAction{Selection: sel})
	require.Equal(t, *sel, *s.Inputs.CurrentSelection)
	sel.Start = 9
	require.Equal(t, 2, s.Inputs.CurrentSelection.Start, "state keeps its own copy")

	s = Reduce(s, SetSearchAction{Query: "port"})
	require.Equal(t, "port", s.Search)

	s = Reduce(s, SetSelectionAction{})
	require.Nil(t, s.Inputs.CurrentSelection)
}

func TestReduceReset(t *testing.T) {
	s := newTestState()
	s = Reduce(s, RemoveEntryAction{Index: 0})
	s = Reduce(s, SetSelectionAction{Selection: &Selection{EntryIndex: 1}})
	s = Reduce(s, SelectSuggestionAction{Index: 1, Suggestion: "DB_USER"})

	s = Reduce(s, ResetAction{})
	require.False(t, s.Data.HasChanges())
	require.Equal(t, []int{0, 1}, s.Data.Indexes())
	require.Nil(t, s.Inputs.CurrentSelection)
	require.Empty(t, s.SelectedSuggestions)
}

func TestReduceSubmitLeavesStateAlone(t *testing.T) {
	s := Reduce(newTestState(), SetValueAction{Index: 0, Value: "db"})
	after := Reduce(s, SubmitDataAction{Data: s.Data})
	require.Equal(t, s, after)
}

type recorder struct {
	actions []Action
}

func (r *recorder) dispatch(a Action) tea.Cmd {
	r.actions = append(r.actions, a)
	return func() tea.Msg { return a }
}

func TestConfirmReset(t *testing.T) {
	var rec recorder

	require.Nil(t, ConfirmReset(false, rec.dispatch))
	require.Empty(t, rec.actions)

	cmd := ConfirmReset(true, rec.dispatch)
	require.NotNil(t, cmd)
	require.Equal(t, []Action{ResetAction{}}, rec.actions)
	require.Equal(t, ResetAction{}, cmd())
}

func TestDispatch(t *testing.T) {
	a := SubmitDataAction{Data: kvdata.New(nil)}
	require.Equal(t, a, Dispatch(a)())
	require.Equal(t, ActionSubmitData, a.Type())
}

func TestReduceSelectionRanksFocusedKey(t *testing.T) {
	s := newTestState()

	s = Reduce(s, SetSelectionAction{Selection: &Selection{EntryIndex: 1, Inner: KeySlot}})
	require.Equal(t, []string{"DB_HOST", "DB_USER"}, s.KeyInputSuggestions)

	s = Reduce(s, SetSelectionAction{Selection: &Selection{EntryIndex: 0, Inner: ValueSlot}})
	require.Equal(t, []string{"DB_HOST", "DB_USER"}, s.KeyInputSuggestions, "value inputs leave suggestions alone")
}
