// Copyright (c) 2026 Keymaster Team
// kvedit - key/value list editor
// This source code is licensed under the MIT license found in the LICENSE file.
//
// Package cli implements the command-line interface of kvedit using Cobra.
// It loads the configuration, reads the entries, runs the editor and writes
// the submitted result.
package cli
