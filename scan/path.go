// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package scan

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Root is the virtual path of the scanned directory itself.
const Root = "/"

// VirtualPath translates the host path into a virtual path relative to root.
//
// Both paths are expected to be canonical. The root itself maps to [Root]. It
// returns an error wrapping [ErrOutsideRoot] if path is not below root.
func VirtualPath(root, path string) (string, error) {
	return virtualPath(root, path, filepath.Separator)
}

func virtualPath(root, path string, separator rune) (string, error) {
	if path == root {
		return Root, nil
	}

	sep := string(separator)
	prefix := strings.TrimSuffix(root, sep) + sep

	rel, found := strings.CutPrefix(path, prefix)
	if !found || rel == "" {
		return "", fmt.Errorf("%w: %s", ErrOutsideRoot, path)
	}

	return Root + strings.ReplaceAll(rel, sep, "/"), nil
}
