// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

//go:build !unix

package scan

import "os"

func checkReadable(dir string) error {
	file, err := os.Open(dir)
	if err != nil {
		return err //nolint:wrapcheck
	}

	return file.Close() //nolint:wrapcheck
}
