// Copyright (c) 2026 Keymaster Team
// kvedit - key/value list editor
// This source code is licensed under the MIT license found in the LICENSE file.
package popup

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/kvedit/ui/tui/util"
)

type openMsg struct {
	Model   util.Model
	OnClose func(util.Model) tea.Cmd
}

type closeMsg struct{}

// Open shows m above the injector's child until Close is sent.
func Open(m util.Model) tea.Cmd {
	return func() tea.Msg { return openMsg{Model: m} }
}

// OpenWithCallback is Open with a callback run when the popup closes.
func OpenWithCallback(m util.Model, cb func(util.Model) tea.Cmd) tea.Cmd {
	return func() tea.Msg { return openMsg{Model: m, OnClose: cb} }
}

// Close closes the topmost popup.
func Close() tea.Cmd {
	return func() tea.Msg { return closeMsg{} }
}
