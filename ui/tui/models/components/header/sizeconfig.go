// Copyright (c) 2026 Keymaster Team
// kvedit - key/value list editor
// This source code is licensed under the MIT license found in the LICENSE file.
package header

import (
	"github.com/toeirei/kvedit/ui/tui/models/components/stack"
	"github.com/toeirei/kvedit/ui/tui/util"
)

// minBodyHeight is the height left to the editor below which the header
// is hidden.
const minBodyHeight = 8

// height of the title line plus its border
const height = 2

var SizeConfig stack.SizeConfig = sizeConfig{}

type sizeConfig struct{}

func (sizeConfig) Priority() int { return 5 }

func (sizeConfig) Calculate(_ util.Model, _ int, totalSize int) int {
	if totalSize >= minBodyHeight+height {
		return height
	}
	return 0
}
