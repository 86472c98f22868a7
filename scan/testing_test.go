// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package scan_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// mkTree creates the given files with their content below a new temporary
// directory and returns its canonical path. Names ending in "/" are created
// as directories.
func mkTree(tb testing.TB, files map[string]string) string {
	tb.Helper()

	root, err := filepath.EvalSymlinks(tb.TempDir())
	require.NoError(tb, err)

	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))

		if name[len(name)-1] == '/' {
			require.NoError(tb, os.MkdirAll(path, 0o755))
			continue
		}

		require.NoError(tb, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(tb, os.WriteFile(path, []byte(content), 0o644))
	}

	return root
}
