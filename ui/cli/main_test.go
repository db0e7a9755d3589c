// Copyright (c) 2026 Keymaster Team
// kvedit - key/value list editor
// This source code is licensed under the MIT license found in the LICENSE file.
package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/kvedit/internal/editor"
	"github.com/toeirei/kvedit/internal/kvdata"
	"github.com/toeirei/kvedit/ui/tui/models/views/kveditor"
)

// isolate keeps user config and environment out of the test.
func isolate(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)
	t.Setenv("KVEDIT_LANGUAGE", "")
	return tmp
}

// fakeTerminal makes the command believe it talks to a terminal and
// replaces the editor with edit.
func fakeTerminal(t *testing.T, edit func(editor.State) *kvdata.Collection) *[]string {
	t.Helper()
	prevRun, prevTerm := runEditor, isTerminal
	t.Cleanup(func() { runEditor, isTerminal = prevRun, prevTerm })

	var names []string
	isTerminal = func(io.Writer) bool { return true }
	runEditor = func(state editor.State, _ kveditor.Options, name string, _ ...tea.ProgramOption) (*kvdata.Collection, error) {
		names = append(names, name)
		return edit(state), nil
	}
	return &names
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestNonTerminalPrintsNormalizedEntries(t *testing.T) {
	tmp := isolate(t)
	path := writeFile(t, tmp, ".env", "# comment\nA=1\n\nB=\"x\\ny\"\n")

	out, err := execute(t, "", path)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if out != "A=1\nB=\"x\\ny\"\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestStdinInput(t *testing.T) {
	isolate(t)
	out, err := execute(t, "K=V\n", "-")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if out != "K=V\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestParseErrorIsReported(t *testing.T) {
	tmp := isolate(t)
	path := writeFile(t, tmp, ".env", "A=1\nbroken\n")

	_, err := execute(t, "", path)
	if err == nil || !strings.Contains(err.Error(), "line 2") {
		t.Fatalf("expected parse error for line 2, got %v", err)
	}
}

func TestSubmitPrintsResult(t *testing.T) {
	tmp := isolate(t)
	path := writeFile(t, tmp, ".env", "A=1\n")
	names := fakeTerminal(t, func(s editor.State) *kvdata.Collection {
		s = editor.Reduce(s, editor.SetValueAction{Index: 0, Value: "2"})
		return &s.Data
	})

	out, err := execute(t, "", path)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if out != "A=2\n" {
		t.Fatalf("unexpected output %q", out)
	}
	if len(*names) != 1 || (*names)[0] != path {
		t.Fatalf("editor started with %v", *names)
	}
}

func TestSubmitWritesBack(t *testing.T) {
	tmp := isolate(t)
	path := writeFile(t, tmp, ".env", "A=1\n")
	fakeTerminal(t, func(s editor.State) *kvdata.Collection {
		s = editor.Reduce(s, editor.SetKeyAction{Index: 1, Key: "B"})
		return &s.Data
	})

	out, err := execute(t, "", "--write", path)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if out != "" {
		t.Fatalf("nothing should be printed, got %q", out)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "A=1\nB=\n" {
		t.Fatalf("unexpected file content %q", data)
	}
}

func TestQuitLeavesEverythingAlone(t *testing.T) {
	tmp := isolate(t)
	path := writeFile(t, tmp, ".env", "A=1\n")
	fakeTerminal(t, func(editor.State) *kvdata.Collection { return nil })

	out, err := execute(t, "", "-w", path)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	data, _ := os.ReadFile(path)
	if out != "" || string(data) != "A=1\n" {
		t.Fatalf("quit changed something: out=%q file=%q", out, data)
	}
}

func TestWriteNeedsFile(t *testing.T) {
	isolate(t)
	if _, err := execute(t, "", "--write"); err == nil {
		t.Fatalf("expected error without FILE")
	}
}

func TestWriteFlagsRejectedWithoutTerminal(t *testing.T) {
	tmp := isolate(t)
	path := writeFile(t, tmp, ".env", "A=1\n")
	target := filepath.Join(tmp, "out.env")

	for _, args := range [][]string{{"--write", path}, {"--output", target, path}} {
		out, err := execute(t, "", args...)
		if err == nil {
			t.Fatalf("%v: expected an error when stdout is not a terminal", args)
		}
		if out != "" {
			t.Fatalf("%v: nothing should be printed, got %q", args, out)
		}
	}
	if data, _ := os.ReadFile(path); string(data) != "A=1\n" {
		t.Fatalf("input file changed: %q", data)
	}
	if _, err := os.Stat(target); !os.IsNotExist(err) {
		t.Fatalf("output file created")
	}
}

func TestSuggestionsFromConfigReachEditor(t *testing.T) {
	tmp := isolate(t)
	cfgPath := writeFile(t, tmp, "cfg.yaml", "suggestions:\n  - DATABASE_URL\n")

	var got []string
	fakeTerminal(t, func(s editor.State) *kvdata.Collection {
		got = s.Suggestions
		return nil
	})

	if _, err := execute(t, "", "--config", cfgPath, "--suggestions", "LOG_LEVEL"); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if len(got) != 1 || got[0] != "LOG_LEVEL" {
		t.Fatalf("expected the flag to win, got %v", got)
	}

	if _, err := execute(t, "", "--config", cfgPath); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if len(got) != 1 || got[0] != "DATABASE_URL" {
		t.Fatalf("expected suggestions from the config file, got %v", got)
	}
}

func TestMissingConfigFile(t *testing.T) {
	isolate(t)
	if _, err := execute(t, "", "--config", filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("expected error for missing config file")
	}
}

func TestConfigInit(t *testing.T) {
	tmp := isolate(t)

	out, err := execute(t, "", "config", "init", "--language", "de")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	path := filepath.Join(tmp, "kvedit", "kvedit.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("config not written: %v", err)
	}
	if !strings.Contains(string(data), "language: de") {
		t.Fatalf("unexpected config %q", data)
	}
	if !strings.Contains(out, path) {
		t.Fatalf("output does not name the file: %q", out)
	}
}
