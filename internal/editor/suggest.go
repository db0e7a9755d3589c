// Copyright (c) 2026 Keymaster Team
// kvedit - key/value list editor
// This source code is licensed under the MIT license found in the LICENSE file.

package editor

import (
	"cmp"
	"slices"
	"strings"

	"github.com/agnivade/levenshtein"
)

const maxSuggestions = 5

// RankSuggestions orders the candidates for a partially typed key:
// candidates starting with input come first, then the rest by edit
// distance. Exact matches and an empty input yield nothing.
func RankSuggestions(candidates []string, input string, limit int) []string {
	if input == "" {
		return nil
	}
	needle := strings.ToUpper(input)

	type ranked struct {
		value  string
		prefix bool
		dist   int
	}
	var all []ranked
	for _, c := range candidates {
		upper := strings.ToUpper(c)
		if upper == needle {
			continue
		}
		all = append(all, ranked{
			value:  c,
			prefix: strings.HasPrefix(upper, needle),
			dist:   levenshtein.ComputeDistance(needle, upper),
		})
	}

	slices.SortStableFunc(all, func(a, b ranked) int {
		if a.prefix != b.prefix {
			if a.prefix {
				return -1
			}
			return 1
		}
		return cmp.Compare(a.dist, b.dist)
	})

	// distant non-prefix candidates are noise
	all = slices.DeleteFunc(all, func(r ranked) bool {
		return !r.prefix && r.dist > len(needle)/2+1
	})

	if len(all) > limit {
		all = all[:limit]
	}
	result := make([]string, len(all))
	for i, r := range all {
		result[i] = r.value
	}
	return result
}

// NextSuggestion cycles through suggestions starting after current.
func NextSuggestion(suggestions []string, current string) string {
	if len(suggestions) == 0 {
		return ""
	}
	i := slices.Index(suggestions, current)
	return suggestions[(i+1)%len(suggestions)]
}
