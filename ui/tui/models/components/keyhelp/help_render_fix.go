// Copyright (c) 2026 Keymaster Team
// kvedit - key/value list editor
// This source code is licensed under the MIT license found in the LICENSE file.
package keyhelp

import (
	"slices"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// help.Model's own views drop the ellipsis and miscount separators when
// bindings are disabled, so both views are rendered here.

// ShortHelpView renders bindings on one line, cut with an ellipsis when
// they do not fit m.Width. A width <= 0 means unlimited.
func ShortHelpView(m help.Model, bindings []key.Binding) string {
	separator := m.Styles.ShortSeparator.Inline(true).Render(m.ShortSeparator)

	var items []string
	for _, kb := range bindings {
		if !kb.Enabled() {
			continue
		}
		var sep string
		if len(items) > 0 {
			sep = separator
		}
		items = append(items, sep+
			m.Styles.ShortKey.Inline(true).Render(kb.Help().Key)+" "+
			m.Styles.ShortDesc.Inline(true).Render(kb.Help().Desc))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, fit(m, items)...)
}

// FullHelpView renders one column per binding group.
func FullHelpView(m help.Model, groups [][]key.Binding) string {
	separator := m.Styles.FullSeparator.Inline(true).Render(m.FullSeparator)

	var cols []string
	for _, group := range groups {
		if !slices.ContainsFunc(group, key.Binding.Enabled) {
			// ignore groups with only disabled bindings
			continue
		}
		var keys, descriptions []string
		for _, binding := range group {
			if !binding.Enabled() {
				continue
			}
			keys = append(keys, binding.Help().Key)
			descriptions = append(descriptions, binding.Help().Desc)
		}

		var sep string
		if len(cols) > 0 {
			sep = separator
		}
		cols = append(cols, lipgloss.JoinHorizontal(lipgloss.Top,
			sep,
			m.Styles.FullKey.Render(lipgloss.JoinVertical(lipgloss.Left, keys...)),
			" ",
			m.Styles.FullDesc.Render(lipgloss.JoinVertical(lipgloss.Left, descriptions...)),
		))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, fit(m, cols)...)
}

// fit keeps the leading parts that fit m.Width, ending with the ellipsis
// tail when something had to be dropped.
func fit(m help.Model, parts []string) []string {
	if m.Width <= 0 {
		return parts
	}

	tail := " " + m.Styles.Ellipsis.Inline(true).Render(m.Ellipsis)
	tailLen := lipgloss.Width(tail)

	var result []string
	used := 0
	for i, part := range parts {
		partLen := lipgloss.Width(part)
		last := i == len(parts)-1
		switch {
		case last && used+partLen <= m.Width:
			result = append(result, part)
		case !last && used+partLen+tailLen <= m.Width:
			used += partLen
			result = append(result, part)
			continue
		case used+tailLen <= m.Width:
			result = append(result, tail)
		}
		break
	}
	return result
}
