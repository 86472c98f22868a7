// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package snapshot_test

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/aibor/dirsnap/memfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var exampleTree = map[string]string{
	"config.toml":        "[server]\nport = 8080\n",
	"data.json":          `{"name": "ellie"}`,
	"README.md":          "# vfs\n",
	"some dir/ellie.txt": "Hi, I am Ellie.\n",
}

// mkTree creates the given files with their content below a new temporary
// directory and returns its path.
func mkTree(tb testing.TB, files map[string]string) string {
	tb.Helper()

	root := tb.TempDir()

	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))

		require.NoError(tb, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(tb, os.WriteFile(path, []byte(content), 0o644))
	}

	return root
}

// failingFS fails the call with the given number. Calls are counted from 1.
type failingFS struct {
	*memfs.FS

	failAt int
	calls  int
}

func (f *failingFS) fail() bool {
	f.calls++
	return f.calls == f.failAt
}

func (f *failingFS) CreateDir(name string) error {
	if f.fail() {
		return assert.AnError
	}

	return f.FS.CreateDir(name)
}

func (f *failingFS) CreateFile(name string) (io.WriteCloser, error) {
	if f.fail() {
		return nil, assert.AnError
	}

	return f.FS.CreateFile(name)
}

// shortWriteFS returns writers that refuse to take any byte.
type shortWriteFS struct {
	*memfs.FS
}

func (f *shortWriteFS) CreateFile(name string) (io.WriteCloser, error) {
	w, err := f.FS.CreateFile(name)
	if err != nil {
		return nil, err
	}

	return shortWriter{w}, nil
}

type shortWriter struct {
	io.WriteCloser
}

func (shortWriter) Write([]byte) (int, error) {
	return 0, nil
}
