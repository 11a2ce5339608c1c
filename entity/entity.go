// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package entity provides the dense, index-based storage substrate shared
// by every component of the ir package: primary maps that allocate fresh
// handles on push, secondary maps that attach sparse data to handles
// allocated elsewhere, and a pool for variable-length lists of handles.
//
// None of the types here know anything about blocks, instructions or
// values; they only know about Handle, a tiny interface that lets a
// concrete 32-bit ID type plug into the generic arena machinery without
// each concrete kind (Block, Inst, Value, ...) re-implementing its own
// growth and indexing logic.
package entity

// Handle is implemented by the small integer-backed ID types each ir
// package entity kind defines (ir.Block, ir.Inst, ir.Value, ...). It lets
// PrimaryMap and SecondaryMap work generically over any such kind.
type Handle interface {
	comparable
	// Index returns the dense array index this handle occupies.
	Index() int
}
