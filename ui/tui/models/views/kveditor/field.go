// Copyright (c) 2026 Keymaster Team
// kvedit - key/value list editor
// This source code is licensed under the MIT license found in the LICENSE file.
package kveditor

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/kvedit/internal/editor"
	"github.com/toeirei/kvedit/ui/tui/util"
)

// cursorMode is switched to a static cursor in tests.
var cursorMode = cursor.CursorBlink

// field is a text input bound to one string of the state. Edits made in
// the field are dispatched and come back as state; until they do, the
// field keeps what the user typed.
//
// An escaped field shows newlines as \n so that multiline values survive
// the single-line input. Value returns the decoded text, Text what is
// shown; cursor positions count in shown runes.
type field struct {
	input   textinput.Model
	escaped bool
	synced  string
	pending int
}

func newField(placeholder string) *field {
	input := textinput.New()
	input.Prompt = ""
	input.Placeholder = placeholder
	_ = input.Cursor.SetMode(cursorMode)
	return &field{input: input}
}

func newEscapedField(placeholder string) *field {
	f := newField(placeholder)
	f.escaped = true
	return f
}

func (f *field) Value() string {
	if f.escaped {
		return decodeNewlines(f.input.Value())
	}
	return f.input.Value()
}

func (f *field) Text() string {
	return f.input.Value()
}

func (f *field) Position() int {
	return f.input.Position()
}

// sync takes over value from the state unless an edit is in flight. The
// value is compared against what was synced last so that a typed, not yet
// canonical escape is left alone.
func (f *field) sync(value string) {
	if f.pending > 0 || value == f.synced {
		return
	}
	f.synced = value
	if value == f.Value() {
		return
	}
	if f.escaped {
		value = encodeNewlines(value)
	}
	f.input.SetValue(value)
}

// edited records a dispatched edit.
func (f *field) edited() {
	f.pending++
	f.synced = f.Value()
}

// acknowledged records that an edit made it into the state.
func (f *field) acknowledged() {
	f.pending = max(f.pending-1, 0)
}

func (f *field) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	return cmd
}

func (f *field) setCursor(pos int) {
	f.input.SetCursor(util.Clamp(0, pos, utf8.RuneCountInString(f.input.Value())))
}

// encodeNewlines writes newlines as \n. A backslash is doubled only where
// it would otherwise read as part of an escape, so paths like C:\temp
// show unchanged.
func encodeNewlines(value string) string {
	if !strings.ContainsAny(value, "\\\n") {
		return value
	}
	runes := []rune(value)
	var b strings.Builder
	b.Grow(len(value) + 8)
	for i, r := range runes {
		switch r {
		case '\n':
			b.WriteString(`\n`)
		case '\\':
			if i+1 < len(runes) && (runes[i+1] == 'n' || runes[i+1] == '\\' || runes[i+1] == '\n') {
				b.WriteString(`\\`)
			} else {
				b.WriteRune(r)
			}
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// decodeNewlines reverses encodeNewlines. Any other backslash is literal.
func decodeNewlines(text string) string {
	if !strings.Contains(text, `\`) {
		return text
	}
	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(text); i++ {
		if text[i] == '\\' && i+1 < len(text) {
			switch text[i+1] {
			case 'n':
				b.WriteByte('\n')
				i++
				continue
			case '\\':
				b.WriteByte('\\')
				i++
				continue
			}
		}
		b.WriteByte(text[i])
	}
	return b.String()
}

type row struct {
	index  int
	fields [2]*field
}

func newRow(index int, opts Options) *row {
	return &row{
		index: index,
		fields: [2]*field{
			editor.KeySlot:   newField(opts.KeyPlaceholder),
			editor.ValueSlot: newEscapedField(opts.ValuePlaceholder),
		},
	}
}

// inputRef exposes a row input to the focus tracker. Focusing goes
// through the model so that only one item holds focus.
type inputRef struct {
	m      *Model
	target target
}

// Value is the shown text, the unit of cursor positions.
func (r inputRef) Value() string {
	return r.m.fieldAt(r.target).Text()
}

func (r inputRef) Focus() tea.Cmd {
	return r.m.focus(r.target)
}

func (r inputRef) SetSelection(start, end int, dir editor.Direction) {
	// textinput has a cursor but no range; the cursor goes to the active end
	pos := end
	if dir == editor.Backward {
		pos = start
	}
	r.m.fieldAt(r.target).setCursor(pos)
}

var _ editor.Input = inputRef{}
