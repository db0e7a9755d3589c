// Copyright (c) 2026 Keymaster Team
// kvedit - key/value list editor
// This source code is licensed under the MIT license found in the LICENSE file.

// Package kvdata holds the ordered key/value collection edited by kvedit.
// A Collection addresses its entries by a stable index: removing an entry
// never renumbers the others, so a row keeps its identity for the whole
// editing session. Every mutating method returns a new Collection and
// leaves the receiver untouched.
package kvdata

import (
	"maps"
	"slices"

	"github.com/toeirei/kvedit/util/slicest"
)

// Entry is one key/value pair.
type Entry struct {
	Key   string
	Value string
}

// IsBlank reports whether both key and value are empty.
func (e Entry) IsBlank() bool {
	return e.Key == "" && e.Value == ""
}

// Collection is an ordered set of entries plus the snapshot it was created
// from. The zero value is an empty collection.
type Collection struct {
	indexes  []int // ascending
	entries  map[int]Entry
	original []Entry
	nextFree int
}

// New creates a collection whose original snapshot is entries. The
// entries receive the indexes 0..len(entries)-1.
func New(entries []Entry) Collection {
	c := Collection{
		indexes:  make([]int, 0, len(entries)),
		entries:  make(map[int]Entry, len(entries)),
		original: slices.Clone(entries),
		nextFree: len(entries),
	}
	for i, e := range entries {
		c.indexes = append(c.indexes, i)
		c.entries[i] = e
	}
	return c
}

func (c Collection) clone() Collection {
	entries := maps.Clone(c.entries)
	if entries == nil {
		entries = make(map[int]Entry)
	}
	return Collection{
		indexes:  slices.Clone(c.indexes),
		entries:  entries,
		original: c.original,
		nextFree: c.nextFree,
	}
}

// Len returns the number of entries.
func (c Collection) Len() int {
	return len(c.indexes)
}

// Indexes returns the indexes of all entries in collection order.
func (c Collection) Indexes() []int {
	return slices.Clone(c.indexes)
}

// Get returns the entry stored at index.
func (c Collection) Get(index int) (Entry, bool) {
	e, ok := c.entries[index]
	return e, ok
}

// HasIndex reports whether an entry exists at index.
func (c Collection) HasIndex(index int) bool {
	_, ok := c.entries[index]
	return ok
}

// Entries returns all entries in collection order.
func (c Collection) Entries() []Entry {
	return slicest.Map(c.indexes, func(index int) Entry {
		return c.entries[index]
	})
}

// Original returns the snapshot the collection was created from.
func (c Collection) Original() []Entry {
	return slices.Clone(c.original)
}

// NextFreeIndex returns the index a newly appended entry receives.
func (c Collection) NextFreeIndex() int {
	return c.nextFree
}

// LastIndex returns the largest existing index.
func (c Collection) LastIndex() (int, bool) {
	if len(c.indexes) == 0 {
		return 0, false
	}
	return c.indexes[len(c.indexes)-1], true
}

// NextIndex picks the entry that takes over from index once it is gone:
// the smallest existing index >= index, else the last index. An empty
// collection yields NextFreeIndex.
func (c Collection) NextIndex(index int) int {
	pos, _ := slices.BinarySearch(c.indexes, index)
	if pos < len(c.indexes) {
		return c.indexes[pos]
	}
	if last, ok := c.LastIndex(); ok {
		return last
	}
	return c.nextFree
}

// Set stores e at index, creating the entry if needed.
func (c Collection) Set(index int, e Entry) Collection {
	n := c.clone()
	if _, ok := n.entries[index]; !ok {
		pos, _ := slices.BinarySearch(n.indexes, index)
		n.indexes = slices.Insert(n.indexes, pos, index)
	}
	n.entries[index] = e
	if index >= n.nextFree {
		n.nextFree = index + 1
	}
	return n
}

// SetKey replaces the key at index, creating the entry if needed.
func (c Collection) SetKey(index int, key string) Collection {
	e := c.entries[index]
	e.Key = key
	return c.Set(index, e)
}

// SetValue replaces the value at index, creating the entry if needed.
func (c Collection) SetValue(index int, value string) Collection {
	e := c.entries[index]
	e.Value = value
	return c.Set(index, e)
}

// Remove deletes the entry at index. Removing a missing index is a no-op.
func (c Collection) Remove(index int) Collection {
	if !c.HasIndex(index) {
		return c
	}
	n := c.clone()
	delete(n.entries, index)
	pos, _ := slices.BinarySearch(n.indexes, index)
	n.indexes = slices.Delete(n.indexes, pos, pos+1)
	return n
}

// Reset returns a collection rebuilt from the original snapshot.
func (c Collection) Reset() Collection {
	return New(c.original)
}

// HasChanges reports whether the entries differ from the original snapshot.
func (c Collection) HasChanges() bool {
	return !slices.Equal(c.Entries(), c.original)
}

// Conflicts maps every non-empty key used by more than one entry to the
// indexes using it.
func (c Collection) Conflicts() map[string][]int {
	byKey := make(map[string][]int)
	for _, index := range c.indexes {
		if key := c.entries[index].Key; key != "" {
			byKey[key] = append(byKey[key], index)
		}
	}
	maps.DeleteFunc(byKey, func(_ string, indexes []int) bool {
		return len(indexes) < 2
	})
	return byKey
}

// HasConflicts reports whether two or more entries share a key.
func (c Collection) HasConflicts() bool {
	return len(c.Conflicts()) > 0
}

// Keys returns the distinct non-empty keys in collection order.
func (c Collection) Keys() []string {
	var keys []string
	seen := make(map[string]bool)
	for _, e := range c.Entries() {
		if e.Key != "" && !seen[e.Key] {
			seen[e.Key] = true
			keys = append(keys, e.Key)
		}
	}
	return keys
}
