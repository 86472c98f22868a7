// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package scan

import (
	"slices"
	"strings"
)

// Kind defines the type of an [Entry].
type Kind int

const (
	// KindFile is a regular file. Its content is captured when the snapshot
	// is built.
	KindFile Kind = iota

	// KindDirectory is a directory.
	KindDirectory
)

func (k Kind) String() string {
	switch k {
	case KindFile:
		return "file"
	case KindDirectory:
		return "directory"
	default:
		return "unknown"
	}
}

// Entry is a single node found by a scan.
type Entry struct {
	// RealPath is the absolute, canonical host path.
	RealPath string

	// VirtualPath is the absolute path in the virtual namespace, using "/"
	// as separator.
	VirtualPath string

	Kind Kind
}

// IsDir reports whether the entry is a directory.
func (e Entry) IsDir() bool {
	return e.Kind == KindDirectory
}

// compareEntries orders entries so that parents precede their children and
// siblings are sorted by name.
func compareEntries(a, b Entry) int {
	return slices.Compare(segments(a.VirtualPath), segments(b.VirtualPath))
}

func segments(virtualPath string) []string {
	trimmed := strings.TrimPrefix(virtualPath, "/")
	if trimmed == "" {
		return nil
	}

	return strings.Split(trimmed, "/")
}
