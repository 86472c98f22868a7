// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd_test

import (
	"bytes"
	"maps"
	"os"
	"path/filepath"
	"testing"

	"github.com/aibor/dirsnap/internal/cmd"
	"github.com/stretchr/testify/require"
)

var assetFiles = map[string]string{
	"assets/index.html":      "<h1>hello</h1>\n",
	"assets/css/style.css":   "h1 { color: teal; }\n",
	"assets/img/.keep":       "",
	"assets/data/users.json": `[{"name": "ellie"}]`,
}

// mkProject creates a project directory with a go.mod file and the given
// files and returns its path.
func mkProject(tb testing.TB, files map[string]string) string {
	tb.Helper()

	root := tb.TempDir()

	files = maps.Clone(files)
	files["go.mod"] = "module example.com/project\n"

	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))

		require.NoError(tb, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(tb, os.WriteFile(path, []byte(content), 0o644))
	}

	return root
}

type result struct {
	exitCode int
	stdout   bytes.Buffer
	stderr   bytes.Buffer
}

func runCmd(tb testing.TB, args ...string) *result {
	tb.Helper()

	var res result

	res.exitCode = cmd.Run(tb.Context(), args, cmd.IO{
		Stdin:  bytes.NewReader(nil),
		Stdout: &res.stdout,
		Stderr: &res.stderr,
	})

	return &res
}
