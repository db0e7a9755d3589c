// Copyright (c) 2026 Keymaster Team
// kvedit - key/value list editor
// This source code is licensed under the MIT license found in the LICENSE file.

// Package ui groups kvedit's user interfaces: the command line in ui/cli and
// the terminal editor in ui/tui.
package ui
