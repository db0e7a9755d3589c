// Copyright (c) 2026 Keymaster Team
// kvedit - key/value list editor
// This source code is licensed under the MIT license found in the LICENSE file.

package kvdata

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// Compression is picked from the file extension.
type Compression int

const (
	Plain Compression = iota
	Gzip
	Zstd
)

func CompressionOf(path string) Compression {
	switch {
	case strings.HasSuffix(path, ".gz"):
		return Gzip
	case strings.HasSuffix(path, ".zst"):
		return Zstd
	default:
		return Plain
	}
}

// Load parses the file at path, decompressing ".gz" and ".zst" files.
func Load(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	var r io.Reader = f
	switch CompressionOf(path) {
	case Gzip:
		zr, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("could not create gzip reader for %s: %w", path, err)
		}
		defer func() { _ = zr.Close() }()
		r = zr
	case Zstd:
		zr, err := zstd.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("could not create zstd reader for %s: %w", path, err)
		}
		defer zr.Close()
		r = zr
	}

	entries, err := Parse(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return entries, nil
}

// Save writes content to path, compressed like Load expects it. The file
// is written next to path first and renamed into place.
func Save(path string, content string) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("could not create file: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if err := writeCompressed(tmp, CompressionOf(path), content); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("could not write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("could not write %s: %w", path, err)
	}
	if info, err := os.Stat(path); err == nil {
		_ = os.Chmod(tmp.Name(), info.Mode().Perm())
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("could not replace %s: %w", path, err)
	}
	return nil
}

func writeCompressed(w io.Writer, c Compression, content string) error {
	var wc io.WriteCloser
	switch c {
	case Gzip:
		wc = gzip.NewWriter(w)
	case Zstd:
		zw, err := zstd.NewWriter(w)
		if err != nil {
			return fmt.Errorf("could not create zstd writer: %w", err)
		}
		wc = zw
	default:
		_, err := io.WriteString(w, content)
		return err
	}

	if _, err := io.WriteString(wc, content); err != nil {
		_ = wc.Close()
		return err
	}
	return wc.Close()
}
