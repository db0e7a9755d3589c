// Copyright (c) 2026 Keymaster Team
// kvedit - key/value list editor
// This source code is licensed under the MIT license found in the LICENSE file.
package kveditor

import (
	"github.com/toeirei/kvedit/internal/config"
	"github.com/toeirei/kvedit/internal/i18n"
)

// Options are the display strings of the editor.
type Options struct {
	KeyPlaceholder   string
	ValuePlaceholder string
	SubmitLabel      string
	ConflictsMessage string
	CopyButtonTitle  string
	ResetButtonTitle string
	ResetConfirmText string
}

// DefaultOptions returns the strings of the active language.
func DefaultOptions() Options {
	return Options{
		KeyPlaceholder:   i18n.T("editor.key_placeholder"),
		ValuePlaceholder: i18n.T("editor.value_placeholder"),
		SubmitLabel:      i18n.T("editor.submit_label"),
		ConflictsMessage: i18n.T("editor.conflicts_message"),
		CopyButtonTitle:  i18n.T("editor.copy_button_title"),
		ResetButtonTitle: i18n.T("editor.reset_button_title"),
		ResetConfirmText: i18n.T("editor.reset_confirm_text"),
	}
}

// OptionsFromConfig starts from DefaultOptions and applies every
// non-empty string of c.
func OptionsFromConfig(c config.EditorConfig) Options {
	o := DefaultOptions()
	override(&o.KeyPlaceholder, c.KeyPlaceholder)
	override(&o.ValuePlaceholder, c.ValuePlaceholder)
	override(&o.SubmitLabel, c.SubmitLabel)
	override(&o.ConflictsMessage, c.ConflictsMessage)
	override(&o.CopyButtonTitle, c.CopyButtonTitle)
	override(&o.ResetButtonTitle, c.ResetButtonTitle)
	override(&o.ResetConfirmText, c.ResetConfirmText)
	return o
}

func override(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}
