// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package scan

import (
	"errors"
	"io/fs"
	"slices"
	"strings"
	"sync"

	"github.com/charlievieth/fastwalk"
)

type walkFunc func(root string, fn fs.WalkDirFunc) error

// Option configures a scan.
type Option func(*scanner)

// WithWorkers sets the number of goroutines reading directories. Callers
// still get the same ordered result. Values below 1 are ignored.
func WithWorkers(n int) Option {
	return func(s *scanner) {
		if n > 0 {
			s.workers = n
		}
	}
}

// WithIrregularAsFile makes the scan treat every entry that is not a
// directory as [KindFile] instead of failing with [ErrUnsupportedType].
//
// Symbolic links are not followed by the walk, but reading the content of
// such an entry later on does follow them.
func WithIrregularAsFile() Option {
	return func(s *scanner) {
		s.irregularAsFile = true
	}
}

type scanner struct {
	root            string
	workers         int
	irregularAsFile bool
	walk            walkFunc

	mu      sync.Mutex
	entries []Entry
}

// Dir scans the directory tree at root.
//
// The root is resolved with [Resolve] relative to the working directory
// first, so failures to do so are returned as [PathResolutionError]. Any
// failure during the walk aborts the scan and is returned as [WalkError].
// There is no partial result.
func Dir(root string, opts ...Option) ([]Entry, error) {
	canonical, err := Resolve("", root)
	if err != nil {
		return nil, err
	}

	s := &scanner{
		root:    canonical,
		workers: 1,
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.walk == nil {
		s.walk = s.fastwalk
	}

	return s.run()
}

func (s *scanner) fastwalk(root string, fn fs.WalkDirFunc) error {
	conf := fastwalk.Config{
		Follow:     false,
		NumWorkers: s.workers,
	}

	return fastwalk.Walk(&conf, root, fn) //nolint:wrapcheck
}

func (s *scanner) run() ([]Entry, error) {
	s.entries = []Entry{{
		RealPath:    s.root,
		VirtualPath: Root,
		Kind:        KindDirectory,
	}}

	err := s.walk(s.root, s.visit)
	if err != nil {
		var walkErr *WalkError
		if !errors.As(err, &walkErr) {
			err = &WalkError{Path: s.root, Err: err}
		}

		return nil, err
	}

	slices.SortFunc(s.entries, compareEntries)

	return s.entries, nil
}

func (s *scanner) visit(path string, d fs.DirEntry, err error) error {
	if err != nil {
		return &WalkError{Path: path, Err: err}
	}

	// The root is added upfront, in case the walker reports it as well.
	if path == s.root {
		return nil
	}

	kind, err := s.kindOf(d)
	if err != nil {
		return &WalkError{Path: path, Err: err}
	}

	virtualPath, err := VirtualPath(s.root, path)
	if err != nil {
		return &WalkError{Path: path, Err: err}
	}

	if !fs.ValidPath(strings.TrimPrefix(virtualPath, Root)) {
		return &WalkError{Path: path, Err: ErrInvalidName}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = append(s.entries, Entry{
		RealPath:    path,
		VirtualPath: virtualPath,
		Kind:        kind,
	})

	return nil
}

func (s *scanner) kindOf(d fs.DirEntry) (Kind, error) {
	switch {
	case d.IsDir():
		return KindDirectory, nil
	case d.Type().IsRegular(), s.irregularAsFile:
		return KindFile, nil
	default:
		return 0, ErrUnsupportedType
	}
}
