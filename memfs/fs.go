// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package memfs

import (
	"bytes"
	"io"
	"io/fs"
	"path"
	"strings"
)

var (
	_ fs.FS         = (*FS)(nil)
	_ fs.StatFS     = (*FS)(nil)
	_ fs.ReadDirFS  = (*FS)(nil)
	_ fs.ReadFileFS = (*FS)(nil)
)

// FS is an in-memory tree of directories and regular files.
//
// Use [FS.CreateDir] or [FS.MkdirAll] to create directories and
// [FS.CreateFile] to add regular files. Parent directories are never created
// implicitly by [FS.CreateDir] and [FS.CreateFile].
type FS struct {
	root directory
}

// New creates a new empty [FS]. Only the root directory exists.
func New() *FS {
	return &FS{
		root: make(directory),
	}
}

// CreateDir creates a new directory at the given virtual path.
//
// The parent directory must exist. Creating the root directory is a no-op,
// as it always exists. It returns a [PathError] in case of errors.
func (fsys *FS) CreateDir(name string) error {
	if clean(name) == "" {
		return nil
	}

	err := fsys.add(name, &directory{})
	if err != nil {
		return &PathError{Op: "mkdir", Path: name, Err: err}
	}

	return nil
}

// MkdirAll creates a directory with the given name along with all necessary
// parents.
//
// It returns a [PathError] in case of errors. If the directory exists already,
// it does nothing and returns nil.
func (fsys *FS) MkdirAll(name string) error {
	cleaned := clean(name)

	file, err := fsys.find(cleaned)
	if err == nil {
		if file.mode().IsDir() {
			return nil
		}

		return &PathError{Op: "mkdir", Path: name, Err: ErrFileNotDir}
	}

	parent := path.Dir(cleaned)
	if parent != "." {
		err = fsys.MkdirAll(parent)
		if err != nil {
			return err
		}
	}

	return fsys.CreateDir(cleaned)
}

// CreateFile creates a new empty regular file at the given virtual path.
//
// The returned writer appends to the file until it is closed. The parent
// directory must exist and the file must not. It returns a [PathError] in
// case of errors.
func (fsys *FS) CreateFile(name string) (io.WriteCloser, error) {
	file := &regularFile{}

	err := fsys.add(name, file)
	if err != nil {
		return nil, &PathError{Op: "create", Path: name, Err: err}
	}

	return &fileWriter{name: name, file: file}, nil
}

// Open opens the named file. The name must be valid as defined by
// [fs.ValidPath].
//
// It returns a [PathError] in case of errors.
func (fsys *FS) Open(name string) (fs.File, error) {
	if !fs.ValidPath(name) {
		return nil, &PathError{Op: "open", Path: name, Err: ErrFileInvalid}
	}

	file, err := fsys.open(name)
	if err != nil {
		return nil, &PathError{Op: "open", Path: name, Err: err}
	}

	return file, nil
}

// OpenFile opens the file at the given virtual path.
//
// It returns a [PathError] in case of errors.
func (fsys *FS) OpenFile(name string) (fs.File, error) {
	file, err := fsys.open(clean(name))
	if err != nil {
		return nil, &PathError{Op: "open", Path: name, Err: err}
	}

	return file, nil
}

// Exists reports whether a file or directory exists at the given virtual
// path.
func (fsys *FS) Exists(name string) bool {
	_, err := fsys.find(clean(name))
	return err == nil
}

// Stat returns information about the named file.
//
// It returns a [PathError] in case of errors.
func (fsys *FS) Stat(name string) (fs.FileInfo, error) {
	file, err := fsys.Open(name)
	if err != nil {
		return nil, &PathError{Op: "stat", Path: name, Err: unwrap(err)}
	}
	defer file.Close()

	return file.Stat() //nolint:wrapcheck
}

// ReadDir reads the named directory and returns its entries sorted by name.
//
// It returns a [PathError] in case of errors.
func (fsys *FS) ReadDir(name string) ([]fs.DirEntry, error) {
	if !fs.ValidPath(name) {
		return nil, &PathError{Op: "readdir", Path: name, Err: ErrFileInvalid}
	}

	file, err := fsys.find(name)
	if err != nil {
		return nil, &PathError{Op: "readdir", Path: name, Err: err}
	}

	dir, isDir := file.(*directory)
	if !isDir {
		return nil, &PathError{Op: "readdir", Path: name, Err: ErrFileNotDir}
	}

	return dir.entries(), nil
}

// ReadFile returns a copy of the content of the named regular file.
//
// It returns a [PathError] in case of errors.
func (fsys *FS) ReadFile(name string) ([]byte, error) {
	if !fs.ValidPath(name) {
		return nil, &PathError{Op: "readfile", Path: name, Err: ErrFileInvalid}
	}

	file, err := fsys.find(name)
	if err != nil {
		return nil, &PathError{Op: "readfile", Path: name, Err: err}
	}

	regular, isRegular := file.(*regularFile)
	if !isRegular {
		return nil, &PathError{Op: "readfile", Path: name, Err: ErrFileNotRegular}
	}

	return bytes.Clone(regular.data), nil
}

func (fsys *FS) subDir(name string) (*directory, error) {
	file, err := fsys.find(name)
	if err != nil {
		return nil, err
	}

	dir, isDir := file.(*directory)
	if !isDir {
		return nil, ErrFileNotDir
	}

	return dir, nil
}

func (fsys *FS) add(name string, file file) error {
	dirName, fileName := path.Split(clean(name))

	parent, err := fsys.subDir(strings.TrimSuffix(dirName, "/"))
	if err != nil {
		return err
	}

	return parent.add(fileName, file)
}

func (fsys *FS) open(name string) (fs.File, error) {
	file, err := fsys.find(name)
	if err != nil {
		return nil, err
	}

	return file.open(dirEntry{name: name, file: file}), nil
}

//nolint:ireturn
func (fsys *FS) find(name string) (file, error) {
	var file file = &fsys.root

	if name == "" || name == "." {
		return file, nil
	}

	for name := range strings.SplitSeq(name, "/") {
		dir, isDir := file.(*directory)
		if !isDir {
			return nil, ErrFileNotExist
		}

		next, exists := (*dir)[name]
		if !exists {
			return nil, ErrFileNotExist
		}

		file = next
	}

	return file, nil
}

// clean turns a virtual path into a name relative to the root. The root
// itself is the empty string.
func clean(name string) string {
	return strings.TrimPrefix(path.Clean("/"+name), "/")
}

func unwrap(err error) error {
	pathErr, ok := err.(*PathError) //nolint:errorlint
	if !ok {
		return err
	}

	return pathErr.Err
}
