// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package entity

// List is a handle into a ListPool: an (offset, length) pair borrowed from
// the pool's shared backing array. The zero List is the empty list and
// needs no pool allocation at all.
type List struct {
	off, len int
}

// Len reports the number of elements in the list.
func (l List) Len() int { return l.len }

// Empty reports whether the list has zero elements.
func (l List) Empty() bool { return l.len == 0 }

// ListPool is a shared arena for variable-length sequences of T: block
// parameter lists, instruction argument lists, block-call argument lists.
// Handing out small (offset, length) handles instead of a per-owner slice
// keeps instruction payloads fixed-size and makes deep-clone a pool-level
// bulk copy instead of N small allocations.
type ListPool[T any] struct {
	data []T
}

// NewListPool returns an empty pool.
func NewListPool[T any]() *ListPool[T] { return &ListPool[T]{} }

// Default returns the canonical empty list; it aliases no storage.
func (p *ListPool[T]) Default() List { return List{} }

// Get returns the elements of l as a slice. The slice aliases the pool's
// backing array and is only valid until the next Push or Truncate that
// touches l or a list allocated after it.
func (p *ListPool[T]) Get(l List) []T {
	return p.data[l.off : l.off+l.len]
}

// First returns the first element of l, for callers that only need to
// peek without slicing.
func (p *ListPool[T]) First(l List) (T, bool) {
	if l.len == 0 {
		var zero T
		return zero, false
	}
	return p.data[l.off], true
}

// Push appends v to l, returning the (possibly relocated) list. If l
// already sits at the tail of the pool's arena the push is in place and
// O(1); otherwise the list's contents are copied to a fresh tail range
// first, so existing aliases of the old range remain valid for readers
// that already captured a Get slice.
func (p *ListPool[T]) Push(l List, v T) List {
	if l.off+l.len == len(p.data) {
		p.data = append(p.data, v)
		return List{l.off, l.len + 1}
	}
	newOff := len(p.data)
	p.data = append(p.data, p.data[l.off:l.off+l.len]...)
	p.data = append(p.data, v)
	return List{newOff, l.len + 1}
}

// Set overwrites the element at index i within l in place.
func (p *ListPool[T]) Set(l List, i int, v T) {
	p.data[l.off+i] = v
}

// Truncate shrinks l to at most n elements in place (the pool arena is
// never compacted; the trailing elements simply become unreachable).
func (p *ListPool[T]) Truncate(l List, n int) List {
	if n >= l.len {
		return l
	}
	return List{l.off, n}
}

// DeepClone copies l's elements into a fresh range of the pool and
// returns the new list, leaving the original untouched. Used when an
// instruction payload is duplicated (e.g. inlining, or cloning a
// block-call's argument list onto a new branch).
func (p *ListPool[T]) DeepClone(l List) List {
	newOff := len(p.data)
	p.data = append(p.data, p.data[l.off:l.off+l.len]...)
	return List{newOff, l.len}
}

// FromSlice allocates a fresh list at the tail of the pool containing a
// copy of vs.
func (p *ListPool[T]) FromSlice(vs []T) List {
	off := len(p.data)
	p.data = append(p.data, vs...)
	return List{off, len(vs)}
}
