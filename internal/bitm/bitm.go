// Copyright 2026 Gustavo C. Viegas. All rights reserved.

// Package bitm defines a bitmap type useful for resource
// slot management (e.g., texture unit allocation).
package bitm

import (
	"math/bits"
	"unsafe"
)

// Uint represents the granularity of a bitmap.
type Uint interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Bitm is a growable bitmap with custom granularity.
type Bitm[T Uint] struct {
	m   []T
	rem int
}

// nbit returns the number of bits in T.
func (m *Bitm[T]) nbit() int { return int(unsafe.Sizeof(T(0))) * 8 }

// Len returns the number of bits set in the map.
func (m *Bitm[_]) Len() int { return len(m.m)*m.nbit() - m.rem }

// Cap returns the number of bits in the map.
func (m *Bitm[_]) Cap() int { return len(m.m) * m.nbit() }

// Rem returns the number of unset bits in the map.
func (m *Bitm[_]) Rem() int { return m.rem }

// Grow resizes the map to contain nplus additional words
// and returns the index of the first new bit.
func (m *Bitm[T]) Grow(nplus int) int {
	idx := m.Cap()
	if nplus > 0 {
		m.m = append(m.m, make([]T, nplus)...)
		m.rem += nplus * m.nbit()
	}
	return idx
}

// IsSet returns whether the bit at index idx is set.
func (m *Bitm[_]) IsSet(idx int) bool {
	n := m.nbit()
	return m.m[idx/n]&(1<<(idx%n)) != 0
}

// Set sets the bit at index idx.
func (m *Bitm[_]) Set(idx int) {
	n := m.nbit()
	if m.m[idx/n]&(1<<(idx%n)) == 0 {
		m.m[idx/n] |= 1 << (idx % n)
		m.rem--
	}
}

// Unset clears the bit at index idx.
func (m *Bitm[_]) Unset(idx int) {
	n := m.nbit()
	if m.m[idx/n]&(1<<(idx%n)) != 0 {
		m.m[idx/n] &^= 1 << (idx % n)
		m.rem++
	}
}

// Search locates the first unset bit, sets it, and
// returns its index. It returns -1, false if every bit
// in the map is set.
func (m *Bitm[T]) Search() (idx int, ok bool) {
	if m.rem == 0 {
		return -1, false
	}
	n := m.nbit()
	for i, w := range m.m {
		if w == ^T(0) {
			continue
		}
		b := bits.TrailingZeros64(^uint64(w))
		if b >= n {
			continue
		}
		idx = i*n + b
		m.m[i] |= 1 << b
		m.rem--
		return idx, true
	}
	return -1, false
}
