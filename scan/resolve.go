// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package scan

import (
	"fmt"
	"os"
	"path/filepath"
)

// Resolve returns the canonical path of dir.
//
// A relative dir is joined onto base first, base itself may be relative to
// the working directory. The result is absolute, free of symbolic links and
// "." or ".." elements. It must be a readable directory. Any failure is
// returned as [PathResolutionError] carrying the attempted path.
func Resolve(base, dir string) (string, error) {
	if dir == "" {
		return "", &PathResolutionError{Path: dir, Err: ErrEmptyPath}
	}

	path := dir
	if !filepath.IsAbs(path) {
		path = filepath.Join(base, path)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", &PathResolutionError{Path: path, Err: err}
	}

	canonical, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", &PathResolutionError{Path: abs, Err: err}
	}

	info, err := os.Stat(canonical)
	if err != nil {
		return "", &PathResolutionError{Path: abs, Err: err}
	}

	if !info.IsDir() {
		return "", &PathResolutionError{Path: abs, Err: ErrNotDir}
	}

	err = checkReadable(canonical)
	if err != nil {
		return "", &PathResolutionError{
			Path: abs,
			Err:  fmt.Errorf("%w: %w", ErrNotReadable, err),
		}
	}

	return canonical, nil
}
