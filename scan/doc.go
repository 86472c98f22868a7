// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package scan walks a directory tree on the host and translates every
// directory and regular file found into an [Entry] with a virtual path.
//
// Virtual paths are absolute, always use "/" as separator and are rooted at
// the scanned directory, which itself maps to "/". Entries are returned in
// pre-order: a directory always precedes its descendants and siblings are
// sorted by name, so the result is stable across runs and hosts.
//
// Entries other than directories and regular files are not supported. The
// scan fails with a [WalkError] wrapping [ErrUnsupportedType] unless
// [WithIrregularAsFile] is given.
package scan
