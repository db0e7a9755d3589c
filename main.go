// Copyright (c) 2026 Keymaster Team
// kvedit - key/value list editor
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for kvedit.
//
// Usage:
//
//	go run . [flags] [FILE]
//	./kvedit [flags] [FILE]
//
// This opens FILE in the key/value editor. See --help for options.
package main

import (
	"os"

	"github.com/toeirei/kvedit/ui/cli"
)

func main() {
	// cobra already reported the error
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
