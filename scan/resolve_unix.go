// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

//go:build unix

package scan

import "golang.org/x/sys/unix"

// checkReadable checks that entries of the directory can be listed.
func checkReadable(dir string) error {
	return unix.Access(dir, unix.R_OK|unix.X_OK) //nolint:wrapcheck
}
