// SPDX-FileCopyrightText: 2026 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package snapshot

import (
	"bytes"
	_ "crypto/sha256" // Canonical digest algorithm.
	"fmt"
	"io"

	"github.com/opencontainers/go-digest"
)

// Op defines the operation of an [Instruction].
type Op int

const (
	// OpCreateDir creates a directory.
	OpCreateDir Op = iota

	// OpCreateFile creates a regular file and writes its content.
	OpCreateFile
)

func (o Op) String() string {
	switch o {
	case OpCreateDir:
		return "create_dir"
	case OpCreateFile:
		return "create_file"
	default:
		return fmt.Sprintf("op(%d)", int(o))
	}
}

// Instruction is a single step of reconstructing the tree.
type Instruction struct {
	Op   Op
	Path string

	// Content is only set for [OpCreateFile].
	Content Content
}

// CreateDir returns an instruction creating a directory at the given virtual
// path.
func CreateDir(path string) Instruction {
	return Instruction{Op: OpCreateDir, Path: path}
}

// CreateFile returns an instruction creating a regular file at the given
// virtual path with the given content.
func CreateFile(path string, content Content) Instruction {
	return Instruction{Op: OpCreateFile, Path: path, Content: content}
}

// Content is the immutable byte payload of a regular file, referenced by its
// digest. The zero value is empty content.
type Content struct {
	digest digest.Digest
	data   []byte
}

var emptyDigest = digest.FromBytes(nil)

// NewContent captures a copy of data.
func NewContent(data []byte) Content {
	return newContent(bytes.Clone(data))
}

func newContent(data []byte) Content {
	return Content{
		digest: digest.FromBytes(data),
		data:   data,
	}
}

// Digest returns the digest of the content.
func (c Content) Digest() digest.Digest {
	if c.digest == "" && len(c.data) == 0 {
		return emptyDigest
	}

	return c.digest
}

// Size returns the number of bytes of the content.
func (c Content) Size() int64 {
	return int64(len(c.data))
}

// Bytes returns a copy of the content.
func (c Content) Bytes() []byte {
	return bytes.Clone(c.data)
}

// Reader returns a new reader for the content.
func (c Content) Reader() io.Reader {
	return bytes.NewReader(c.data)
}

// Verify checks that the content matches its digest.
func (c Content) Verify() error {
	dgst := c.Digest()

	err := dgst.Validate()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrContentCorrupt, err)
	}

	verifier := dgst.Verifier()
	_, _ = verifier.Write(c.data)

	if !verifier.Verified() {
		return ErrContentCorrupt
	}

	return nil
}
