// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package entity

// SecondaryMap attaches a V to handles allocated by some other PrimaryMap.
// Unlike PrimaryMap it never mints handles; Set grows the backing slice
// sparsely (filling the gap with zero values) to accommodate whatever key
// is given. Get on an unset key returns the zero value for V. For a
// handle-typed V such as ir.Block that zero value is the valid index-0
// handle, not the handle kind's invalid sentinel, so callers that must
// tell "unset" apart store an explicit flag or sentinel themselves.
type SecondaryMap[K Handle, V any] struct {
	items []V
}

// NewSecondaryMap returns an empty SecondaryMap.
func NewSecondaryMap[K Handle, V any]() *SecondaryMap[K, V] {
	return &SecondaryMap[K, V]{}
}

// Get returns the value mapped to k, or the zero V if k was never Set.
func (m *SecondaryMap[K, V]) Get(k K) V {
	i := k.Index()
	if i < 0 || i >= len(m.items) {
		var zero V
		return zero
	}
	return m.items[i]
}

// GetPtr returns a pointer into the backing slice, growing it if needed,
// so a caller can mutate in place without a Get/Set round trip.
func (m *SecondaryMap[K, V]) GetPtr(k K) *V {
	m.growTo(k.Index())
	return &m.items[k.Index()]
}

// Set records v for k, growing the backing slice as needed.
func (m *SecondaryMap[K, V]) Set(k K, v V) {
	m.growTo(k.Index())
	m.items[k.Index()] = v
}

func (m *SecondaryMap[K, V]) growTo(i int) {
	for i >= len(m.items) {
		var zero V
		m.items = append(m.items, zero)
	}
}

// Len returns the current backing length (not the number of keys
// explicitly Set — unset trailing entries still count once any later key
// forced growth past them).
func (m *SecondaryMap[K, V]) Len() int { return len(m.items) }

// Clear resets the map to empty without releasing its backing array.
func (m *SecondaryMap[K, V]) Clear() {
	m.items = m.items[:0]
}
