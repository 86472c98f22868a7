// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package memfs

import (
	"errors"
	"io/fs"
)

var (
	// ErrFileNotExist is returned if a file that is looked up does not exist.
	ErrFileNotExist = fs.ErrNotExist

	// ErrFileExist is returned if a file exists that was not expected.
	ErrFileExist = fs.ErrExist

	// ErrFileInvalid is returned if a file is invalid for the requested
	// operation or the name is not valid.
	ErrFileInvalid = fs.ErrInvalid

	// ErrFileClosed is returned on writes to a closed file writer.
	ErrFileClosed = fs.ErrClosed

	// ErrFileNotDir is returned if a file exists but is not a directory.
	ErrFileNotDir = errors.New("not a directory")

	// ErrFileNotRegular is returned if a file exists but is not a regular
	// file.
	ErrFileNotRegular = errors.New("not a regular file")
)

// PathError records an error and the operation and file path that caused it.
type PathError = fs.PathError
