// Copyright (c) 2026 Keymaster Team
// kvedit - key/value list editor
// This source code is licensed under the MIT license found in the LICENSE file.

package kvdata

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ParseError reports a line that is not a KEY=VALUE pair.
type ParseError struct {
	Line int
	Text string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: expected KEY=VALUE, got %q", e.Line, e.Text)
}

// Parse reads KEY=VALUE lines. Blank lines and lines starting with '#' are
// skipped. Only a value in the form the exporter writes for multiline
// values, wrapped in double quotes with at least one \n inside, is
// unquoted, turning \" into " and \n into a newline. Every other value is
// kept verbatim, quotes included.
func Parse(r io.Reader) ([]Entry, error) {
	var entries []Entry

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSuffix(scanner.Text(), "\r")
		if trimmed := strings.TrimSpace(text); trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		key, value, ok := strings.Cut(text, "=")
		if !ok {
			return nil, &ParseError{Line: line, Text: text}
		}
		entries = append(entries, Entry{Key: key, Value: unquote(value)})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading entries: %w", err)
	}

	return entries, nil
}

func unquote(value string) string {
	if len(value) < 2 || value[0] != '"' || value[len(value)-1] != '"' {
		return value
	}
	inner := value[1 : len(value)-1]
	if !strings.Contains(inner, `\n`) {
		return value
	}

	var b strings.Builder
	b.Grow(len(inner))
	for i := 0; i < len(inner); i++ {
		if inner[i] == '\\' && i+1 < len(inner) {
			switch inner[i+1] {
			case 'n':
				b.WriteByte('\n')
				i++
				continue
			case '"':
				b.WriteByte('"')
				i++
				continue
			}
		}
		b.WriteByte(inner[i])
	}
	return b.String()
}
