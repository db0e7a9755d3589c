// Copyright (c) 2026 Keymaster Team
// kvedit - key/value list editor
// This source code is licensed under the MIT license found in the LICENSE file.

// i18n-linter checks the locale files against the message IDs used in the
// Go sources. It fails when a locale lacks an ID the primary locale has and
// warns about IDs nothing uses.
package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	localesDir    = "internal/i18n/locales"
	primaryLocale = "en.yaml"
	projectRoot   = "."
)

// Report is the outcome of one lint run.
type Report struct {
	Used     int
	Primary  int
	Orphaned []string
	// Missing maps a locale file to the IDs it lacks.
	Missing map[string][]string
	// Unknown lists IDs used in code that the primary locale lacks.
	Unknown []string
}

func (r Report) Failed() bool {
	return len(r.Missing) > 0 || len(r.Unknown) > 0
}

func main() {
	fmt.Println("🔍 Running i18n linter...")

	report, err := lint(projectRoot, localesDir, primaryLocale)
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("✅ Found %d message IDs in source code, %d in %s.\n\n", report.Used, report.Primary, primaryLocale)

	printSection("Orphaned IDs (in the primary locale but not used in code)", report.Orphaned)
	printSection("Unknown IDs (used in code but not in the primary locale)", report.Unknown)

	fmt.Println("--- Missing IDs (in the primary locale but not in others) ---")
	files := make([]string, 0, len(report.Missing))
	for file := range report.Missing {
		files = append(files, file)
	}
	slices.Sort(files)
	for _, file := range files {
		fmt.Printf("%s:\n", file)
		for _, id := range report.Missing[file] {
			fmt.Printf("  - Missing: %s\n", id)
		}
	}
	if len(files) == 0 {
		fmt.Println("  ✨ All IDs present.")
	}

	fmt.Println("\n--- Linter Finished ---")
	switch {
	case report.Failed():
		fmt.Println("❌ Found issues that need to be addressed.")
		os.Exit(1)
	case len(report.Orphaned) > 0:
		fmt.Println("⚠️  Found orphaned IDs. Please consider removing them.")
	default:
		fmt.Println("✅ All translation files are consistent!")
	}
}

func printSection(title string, ids []string) {
	fmt.Printf("--- %s ---\n", title)
	for _, id := range ids {
		fmt.Printf("  - %s\n", id)
	}
	if len(ids) == 0 {
		fmt.Println("  ✨ None found.")
	}
	fmt.Println()
}

func lint(root, dir, primary string) (Report, error) {
	used, err := findUsedKeys(root)
	if err != nil {
		return Report{}, fmt.Errorf("finding used IDs: %w", err)
	}
	primaryKeys, err := loadKeysFromLocale(filepath.Join(dir, primary))
	if err != nil {
		return Report{}, fmt.Errorf("loading primary locale %s: %w", primary, err)
	}

	report := Report{
		Used:     len(used),
		Primary:  len(primaryKeys),
		Orphaned: difference(primaryKeys, used),
		Unknown:  difference(used, primaryKeys),
		Missing:  map[string][]string{},
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return Report{}, err
	}
	for _, file := range files {
		if filepath.Base(file) == primary {
			continue
		}
		keys, err := loadKeysFromLocale(file)
		if err != nil {
			return Report{}, fmt.Errorf("loading %s: %w", file, err)
		}
		if missing := difference(primaryKeys, keys); len(missing) > 0 {
			report.Missing[file] = missing
		}
	}
	return report, nil
}

// difference returns the sorted keys of a that b lacks.
func difference(a, b map[string]struct{}) []string {
	var out []string
	for k := range a {
		if _, ok := b[k]; !ok {
			out = append(out, k)
		}
	}
	slices.Sort(out)
	return out
}

// usedKeyRe matches i18n.T("some.id", ...) calls.
var usedKeyRe = regexp.MustCompile(`i18n\.T\("([^"]+)"`)

// findUsedKeys scans the non-test .go files below root for message IDs.
func findUsedKeys(root string) (map[string]struct{}, error) {
	keys := make(map[string]struct{})
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			switch d.Name() {
			case "tools", "_examples", "vendor", ".git":
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		for _, match := range usedKeyRe.FindAllStringSubmatch(string(content), -1) {
			keys[match[1]] = struct{}{}
		}
		return nil
	})
	return keys, err
}

// loadKeysFromLocale reads a YAML file and returns a flat set of its keys.
func loadKeysFromLocale(path string) (map[string]struct{}, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, err
	}

	keys := make(map[string]struct{})
	flattenYAML("", data, keys)
	return keys, nil
}

// flattenYAML collects the leaf keys of node, joining nested keys with
// dots. Flat files with dotted keys come out unchanged.
func flattenYAML(prefix string, node any, keys map[string]struct{}) {
	switch v := node.(type) {
	case map[string]any:
		for k, val := range v {
			next := k
			if prefix != "" {
				next = prefix + "." + k
			}
			flattenYAML(next, val, keys)
		}
	default:
		if prefix != "" {
			keys[prefix] = struct{}{}
		}
	}
}
