// Copyright (c) 2026 Keymaster Team
// kvedit - key/value list editor
// This source code is licensed under the MIT license found in the LICENSE file.
package kveditor

import "github.com/charmbracelet/lipgloss"

var (
	bannerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("214")).
			Bold(true).
			Padding(0, 1)
	conflictStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))
	ghostStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)
	separatorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))
	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
	focusedPromptStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("205"))
)
