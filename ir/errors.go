// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ir

import "github.com/pkg/errors"

// Sentinel error kinds the core raises, per spec.md §7. Callers compare
// against these with errors.Is; each public operation wraps the sentinel
// with github.com/pkg/errors so a %+v format also carries a stack trace
// during development, without forcing every call site to construct its
// own error type.
var (
	// ErrOutOfMemory signals arena growth failure. The caller must abandon
	// the Function; no core operation retries internally.
	ErrOutOfMemory = errors.New("ir: out of memory")

	// ErrNoCurrentBlock is raised by a Builder operation invoked before
	// SwitchToBlock.
	ErrNoCurrentBlock = errors.New("ir: no current block")

	// ErrInstNotInserted is raised by InsertInstBefore/After when the
	// anchor instruction has no block in the Layout.
	ErrInstNotInserted = errors.New("ir: instruction not inserted in a block")

	// ErrInvalidHandle is raised, on a best-effort basis, when an
	// operation is given a handle this Function did not allocate.
	ErrInvalidHandle = errors.New("ir: invalid handle")
)

// wrapf attaches additional context to a sentinel error while preserving
// errors.Is compatibility with it.
func wrapf(sentinel error, format string, args ...any) error {
	return errors.Wrapf(sentinel, format, args...)
}
