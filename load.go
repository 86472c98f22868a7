// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package dirsnap

import (
	"bytes"
	"fmt"

	"github.com/aibor/dirsnap/memfs"
	"github.com/aibor/dirsnap/snapshot"
)

// Load decodes the snapshot archive and replays it into fsys.
//
// On success fsys is returned. On any error the zero value is returned and
// fsys must be discarded, as it may be populated partially.
func Load[T snapshot.FS](archive []byte, fsys T) (T, error) {
	var zero T

	snap, err := snapshot.Decode(bytes.NewReader(archive))
	if err != nil {
		return zero, fmt.Errorf("decode snapshot: %w", err)
	}

	fsys, err = snapshot.Replay(snap, fsys)
	if err != nil {
		return zero, fmt.Errorf("replay snapshot: %w", err)
	}

	return fsys, nil
}

// LoadMemFS loads the snapshot archive into a new [memfs.FS].
func LoadMemFS(archive []byte) (*memfs.FS, error) {
	return Load(archive, memfs.New())
}

// Must returns fsys if err is nil and panics otherwise. It is intended for
// package level variable initialization.
func Must[T any](fsys T, err error) T {
	if err != nil {
		panic(err)
	}

	return fsys
}
