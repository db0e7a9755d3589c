// Copyright (c) 2026 Keymaster Team
// kvedit - key/value list editor
// This source code is licensed under the MIT license found in the LICENSE file.
package kveditor

import "testing"

func TestNewlineEscaping(t *testing.T) {
	tests := []struct {
		raw, shown string
	}{
		{"plain", "plain"},
		{"a\nb", `a\nb`},
		{`C:\temp`, `C:\temp`},
		{`C:\new`, `C:\\new`},
		{`trailing\`, `trailing\`},
		{`two\\`, `two\\\`},
		{"slash\\\nline", `slash\\\nline`},
	}
	for _, tt := range tests {
		if got := encodeNewlines(tt.raw); got != tt.shown {
			t.Errorf("encodeNewlines(%q) = %q, want %q", tt.raw, got, tt.shown)
		}
		if got := decodeNewlines(tt.shown); got != tt.raw {
			t.Errorf("decodeNewlines(%q) = %q, want %q", tt.shown, got, tt.raw)
		}
	}
}

func TestSyncShowsEscapedValue(t *testing.T) {
	f := newEscapedField("")
	f.sync("a\nb")
	if f.Text() != `a\nb` || f.Value() != "a\nb" {
		t.Fatalf("text=%q value=%q", f.Text(), f.Value())
	}

	// a pending edit is not overwritten
	f.edited()
	f.sync("other")
	if f.Value() != "a\nb" {
		t.Fatalf("pending edit overwritten: %q", f.Value())
	}
}
