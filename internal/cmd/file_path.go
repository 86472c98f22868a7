// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

const (
	projectMarker = "go.mod"
	stdoutName    = "-"
	outputPerm    = 0o644
)

// projectRoot returns the nearest directory containing a go.mod file,
// starting at dir and walking up. If there is none, dir is returned.
func projectRoot(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("absolute path: %w", err)
	}

	for current := abs; ; {
		_, err := os.Stat(filepath.Join(current, projectMarker))
		if err == nil {
			return current, nil
		}

		if !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("find project root: %w", err)
		}

		parent := filepath.Dir(current)
		if parent == current {
			return abs, nil
		}

		current = parent
	}
}

// writeOutput writes data to the named file, or to stdout if name is empty or
// "-".
//
// Files are written to a temporary file in the same directory first that is
// renamed once complete. So the file is either replaced completely or not at
// all.
func writeOutput(name string, data []byte, stdout io.Writer) error {
	if name == "" || name == stdoutName {
		_, err := stdout.Write(data)
		if err != nil {
			return fmt.Errorf("write stdout: %w", err)
		}

		return nil
	}

	tmp, err := os.CreateTemp(filepath.Dir(name), "."+filepath.Base(name)+".*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	err = writeFile(tmp, data)
	if err == nil {
		err = os.Rename(tmp.Name(), name)
	}

	if err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("write output: %w", err)
	}

	return nil
}

func writeFile(file *os.File, data []byte) error {
	_, err := file.Write(data)
	if err == nil {
		err = file.Chmod(outputPerm)
	}

	return errors.Join(err, file.Close())
}
