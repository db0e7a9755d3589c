// Copyright (c) 2026 Keymaster Team
// kvedit - key/value list editor
// This source code is licensed under the MIT license found in the LICENSE file.
package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func write(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestFlattenYAML(t *testing.T) {
	keys := map[string]struct{}{}
	flattenYAML("", map[string]any{
		"editor.key_placeholder": "Key",
		"help": map[string]any{"exit": "exit"},
	}, keys)

	require.Contains(t, keys, "editor.key_placeholder")
	require.Contains(t, keys, "help.exit")
	require.Len(t, keys, 2)
}

func TestLint(t *testing.T) {
	dir := t.TempDir()
	write(t, filepath.Join(dir, "ui", "view.go"), `package ui
func f() {
	_ = i18n.T("editor.key_placeholder")
	_ = i18n.T("editor.copied", 3)
	_ = i18n.T("editor.unknown")
}`)
	write(t, filepath.Join(dir, "ui", "view_test.go"), `package ui
var _ = i18n.T("test.only")`)
	write(t, filepath.Join(dir, "tools", "x.go"), `package x
var _ = i18n.T("tools.only")`)

	locales := filepath.Join(dir, "locales")
	write(t, filepath.Join(locales, "en.yaml"), `"editor.key_placeholder": "Key"
"editor.copied": "Copied %d entries"
"editor.stale": "Stale"
`)
	write(t, filepath.Join(locales, "de.yaml"), `"editor.key_placeholder": "Schlüssel"
`)

	report, err := lint(dir, locales, "en.yaml")
	require.NoError(t, err)

	require.Equal(t, 3, report.Used)
	require.Equal(t, 3, report.Primary)
	require.Equal(t, []string{"editor.stale"}, report.Orphaned)
	require.Equal(t, []string{"editor.unknown"}, report.Unknown)
	require.Equal(t, map[string][]string{
		filepath.Join(locales, "de.yaml"): {"editor.copied", "editor.stale"},
	}, report.Missing)
	require.True(t, report.Failed())
}

func TestLintMissingPrimary(t *testing.T) {
	dir := t.TempDir()
	_, err := lint(dir, filepath.Join(dir, "locales"), "en.yaml")
	require.Error(t, err)
}
