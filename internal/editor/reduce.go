// Copyright (c) 2026 Keymaster Team
// kvedit - key/value list editor
// This source code is licensed under the MIT license found in the LICENSE file.

package editor

import "github.com/toeirei/kvedit/internal/logging"

// Reduce applies a to s and returns the resulting state.
func Reduce(s State, a Action) State {
	switch a := a.(type) {
	case ResetAction:
		s.Data = s.Data.Reset()
		s.SelectedSuggestions = nil
		s.KeyInputSuggestions = nil
		s.Inputs.CurrentSelection = nil
	case SubmitDataAction:
		// handled by the receiver
	case SetKeyAction:
		s.Data = s.Data.SetKey(a.Index, a.Key)
		s.KeyInputSuggestions = RankSuggestions(s.Suggestions, a.Key, maxSuggestions)
		s = s.withSelectedSuggestion(a.Index, "")
	case SetValueAction:
		s.Data = s.Data.SetValue(a.Index, a.Value)
	case RemoveEntryAction:
		s.Data = s.Data.Remove(a.Index)
		s = s.withSelectedSuggestion(a.Index, "")
	case SetSearchAction:
		s.Search = a.Query
	case SetSelectionAction:
		if a.Selection == nil {
			s.Inputs.CurrentSelection = nil
		} else {
			sel := *a.Selection
			s.Inputs.CurrentSelection = &sel
			// suggestions follow the focused key input
			if e, ok := s.Data.Get(sel.EntryIndex); ok && sel.Inner == KeySlot {
				s.KeyInputSuggestions = RankSuggestions(s.Suggestions, e.Key, maxSuggestions)
			}
		}
	case SelectSuggestionAction:
		s = s.withSelectedSuggestion(a.Index, a.Suggestion)
	default:
		logging.Warnf("editor: unhandled action %T", a)
	}
	return s
}
