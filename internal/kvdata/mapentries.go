// Copyright (c) 2026 Keymaster Team
// kvedit - key/value list editor
// This source code is licensed under the MIT license found in the LICENSE file.

package kvdata

import "strings"

type MapEntriesOption int

const (
	// AppendEmptyEntry adds a blank entry at NextFreeIndex after the
	// existing ones. Editors render it as the row used to add entries.
	AppendEmptyEntry MapEntriesOption = iota + 1
)

// MapEntries calls fn for every entry in collection order.
func MapEntries[T any](c Collection, fn func(index int, e Entry) T, opts ...MapEntriesOption) []T {
	result := make([]T, 0, c.Len()+1)
	for _, index := range c.indexes {
		result = append(result, fn(index, c.entries[index]))
	}
	for _, opt := range opts {
		if opt == AppendEmptyEntry {
			result = append(result, fn(c.nextFree, Entry{}))
		}
	}
	return result
}

// Matches reports whether key or value contains query, ignoring case.
// The empty query matches everything.
func Matches(e Entry, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(e.Key), q) ||
		strings.Contains(strings.ToLower(e.Value), q)
}
