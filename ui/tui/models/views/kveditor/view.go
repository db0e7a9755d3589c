// Copyright (c) 2026 Keymaster Team
// kvedit - key/value list editor
// This source code is licensed under the MIT license found in the LICENSE file.
package kveditor

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/kvedit/internal/editor"
	"github.com/toeirei/kvedit/internal/i18n"
)

const (
	gutterWidth    = 2 // focus marker
	separatorWidth = 3
	markerWidth    = 2
	minKeyWidth    = 8
)

func (m Model) keyWidth() int {
	return max((m.size.Width-gutterWidth-separatorWidth-markerWidth)/3, minKeyWidth)
}

func (m Model) valueWidth() int {
	return max(m.size.Width-gutterWidth-separatorWidth-markerWidth-m.keyWidth(), minKeyWidth)
}

func (m *Model) resize() {
	m.search.input.Width = max(m.size.Width-lipgloss.Width(m.search.input.Prompt)-1, minKeyWidth)
	for _, r := range m.rows {
		m.resizeRow(r)
	}
}

func (m *Model) resizeRow(r *row) {
	if m.size.Width == 0 {
		return
	}
	// textinput renders one extra cell for the cursor
	r.fields[editor.KeySlot].input.Width = m.keyWidth() - 1
	r.fields[editor.ValueSlot].input.Width = m.valueWidth() - 1
}

func (m Model) View() string {
	var header []string
	if m.state.HasConflicts() {
		header = append(header, bannerStyle.Render("⚠ "+m.opts.ConflictsMessage))
	}
	header = append(header, m.search.input.View(), "")

	footer := []string{"", m.renderButtons()}
	if m.status != "" {
		footer = append(footer, statusStyle.Render(m.status))
	}

	fixed := lipgloss.Height(strings.Join(header, "\n")) + lipgloss.Height(strings.Join(footer, "\n"))
	rows := m.renderRows(m.size.Height - fixed)

	return lipgloss.JoinVertical(lipgloss.Left,
		strings.Join(header, "\n"),
		rows,
		strings.Join(footer, "\n"),
	)
}

// renderRows renders as many rows as fit into height, scrolled so that the
// focused row stays visible. A height <= 0 renders all rows.
func (m Model) renderRows(height int) string {
	conflicted := make(map[int]bool)
	for _, indexes := range m.state.Data.Conflicts() {
		for _, index := range indexes {
			conflicted[index] = true
		}
	}

	var lines []string
	if m.state.Search != "" && len(m.visible) <= 1 {
		lines = append(lines, mutedStyle.Render(i18n.T("editor.empty")))
	}

	focusedLine := 0
	for _, index := range m.visible {
		if m.current.kind == fieldTarget && m.current.index == index {
			focusedLine = len(lines)
		}
		lines = append(lines, m.renderRow(index, conflicted[index]))
	}

	if height <= 0 || len(lines) <= height {
		return strings.Join(lines, "\n")
	}
	start := 0
	if focusedLine >= height {
		start = focusedLine - height + 1
	}
	return strings.Join(lines[start:start+height], "\n")
}

func (m Model) renderRow(index int, conflicted bool) string {
	r := m.rows[index]

	gutter := strings.Repeat(" ", gutterWidth)
	if m.focused && m.current.kind == fieldTarget && m.current.index == index {
		gutter = focusedPromptStyle.Render(">") + " "
	}

	keyView := lipgloss.NewStyle().
		Width(m.keyWidth()).
		MaxWidth(m.keyWidth()).
		Render(r.fields[editor.KeySlot].input.View())
	valueView := lipgloss.NewStyle().
		Width(m.valueWidth()).
		MaxWidth(m.valueWidth()).
		Render(r.fields[editor.ValueSlot].input.View())

	marker := strings.Repeat(" ", markerWidth)
	if conflicted {
		marker = " " + conflictStyle.Render("⚠")
	}

	line := gutter + keyView + separatorStyle.Render(" = ") + valueView + marker
	if suggestion, ok := m.state.SelectedSuggestion(index); ok {
		line += " " + ghostStyle.Render("→ "+suggestion)
	}
	return line
}

func (m Model) renderButtons() string {
	return lipgloss.JoinHorizontal(lipgloss.Center,
		m.submit.View(), " ",
		m.copy.View(), " ",
		m.reset.View(),
	)
}
