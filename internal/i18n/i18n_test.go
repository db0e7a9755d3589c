// Copyright (c) 2026 Keymaster Team
// kvedit - key/value list editor
// This source code is licensed under the MIT license found in the LICENSE file.

package i18n

import (
	"testing"
)

func TestInitAndAvailableLocales(t *testing.T) {
	Init("en")
	if GetLang() != "en" {
		t.Fatalf("expected lang 'en', got %q", GetLang())
	}

	av := GetAvailableLocales()
	for _, k := range []string{"en", "de"} {
		if _, ok := av[k]; !ok {
			t.Fatalf("expected available locale %q to be present, got %v", k, av)
		}
	}
	if av["de"] != "Deutsch" {
		t.Fatalf("unexpected display name for de: %q", av["de"])
	}
}

func TestT_BasicAndFormatting(t *testing.T) {
	Init("en")

	if got := T("editor.key_placeholder"); got != "Key" {
		t.Fatalf("expected 'Key', got %q", got)
	}

	if got := T("editor.copied", 3); got != "Copied 3 entries to clipboard" {
		t.Fatalf("unexpected formatted translation: %q", got)
	}

	SetLang("de")
	defer SetLang("en")
	if GetLang() != "de" {
		t.Fatalf("expected lang 'de', got %q", GetLang())
	}
	if got := T("editor.value_placeholder"); got != "Wert" {
		t.Fatalf("expected German 'Wert', got %q", got)
	}
}

func TestT_UnknownIDFallsBack(t *testing.T) {
	Init("en")
	if got := T("does.not.exist"); got != "does.not.exist" {
		t.Fatalf("expected message ID fallback, got %q", got)
	}
}

func TestT_AllEnglishIDsTranslatedInGerman(t *testing.T) {
	ids := []string{
		"editor.key_placeholder", "editor.value_placeholder", "editor.submit_label",
		"editor.conflicts_message", "editor.copy_button_title", "editor.reset_button_title",
		"editor.reset_confirm_text", "confirm.yes", "confirm.no",
	}
	SetLang("de")
	defer SetLang("en")
	for _, id := range ids {
		if got := T(id); got == id {
			t.Fatalf("missing German translation for %q", id)
		}
	}
}
