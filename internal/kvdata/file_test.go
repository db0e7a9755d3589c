// Copyright (c) 2026 Keymaster Team
// kvedit - key/value list editor
// This source code is licensed under the MIT license found in the LICENSE file.

package kvdata

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompressionOf(t *testing.T) {
	require.Equal(t, Plain, CompressionOf(".env"))
	require.Equal(t, Gzip, CompressionOf("prod.env.gz"))
	require.Equal(t, Zstd, CompressionOf("prod.env.zst"))
}

func TestSaveAndLoad(t *testing.T) {
	content := "A=1\nB=\"x\\ny\""
	want := []Entry{{Key: "A", Value: "1"}, {Key: "B", Value: "x\ny"}}

	for _, name := range []string{"plain.env", "packed.env.gz", "packed.env.zst"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			require.NoError(t, Save(path, content))

			got, err := Load(path)
			require.NoError(t, err)
			require.Equal(t, want, got)
		})
	}
}

func TestSaveKeepsPermissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("A=0"), 0o600))

	require.NoError(t, Save(path, "A=1"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, entries, 1, "temporary file left behind")
}

func TestLoadErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.env.gz")
	require.NoError(t, os.WriteFile(path, []byte("not gzip"), 0o600))
	_, err := Load(path)
	require.Error(t, err)

	path = filepath.Join(t.TempDir(), "bad.env")
	require.NoError(t, os.WriteFile(path, []byte("A=1\nnope\n"), 0o600))
	_, err = Load(path)
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	require.Equal(t, 2, perr.Line)
}
