// Copyright (c) 2026 Keymaster Team
// kvedit - key/value list editor
// This source code is licensed under the MIT license found in the LICENSE file.
package stack

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/kvedit/ui/tui/util"
)

// MsgFilter may rewrite or drop (by returning nil) a message before it
// reaches model.
type MsgFilter = func(model util.Model, msg tea.Msg) tea.Msg

func applyMessageFilters(model util.Model, msg tea.Msg, msgFilters []MsgFilter) tea.Msg {
	for _, filter := range msgFilters {
		if msg == nil {
			return nil
		}
		msg = filter(model, msg)
	}
	return msg
}

// DropKeys keeps key presses away from an item that never handles them.
func DropKeys(_ util.Model, msg tea.Msg) tea.Msg {
	if _, ok := msg.(tea.KeyMsg); ok {
		return nil
	}
	return msg
}
