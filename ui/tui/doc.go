// Copyright (c) 2026 Keymaster Team
// kvedit - key/value list editor
// This source code is licensed under the MIT license found in the LICENSE file.

// Package tui runs the key/value editor as a bubbletea program. Models
// live under models/: reusable components, helpers and the views built
// from them. Editing semantics are provided by internal/editor.
package tui
