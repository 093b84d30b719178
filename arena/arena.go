/*
Package arena implements a concurrent record store addressed by generation-checked handles.
*/
package arena

import (
	"math"
	"sync"
)

type slot[R any] struct {
	rec  R
	gen  uint32
	live bool
}

// Arena stores records of type R in fixed-size chunks.
// A record's address stays stable for as long as its handle is live.
type Arena[R any] struct {
	mu        sync.RWMutex
	chunks    [][]slot[R]
	free      []uint32
	next      uint32
	chunkSize uint32
	len       int
}

// New creates an empty arena.
func New[R any](opts ...Option) *Arena[R] {
	o := newDefaultOptions()
	for _, opt := range opts {
		opt.apply(&o)
	}

	return &Arena[R]{
		chunkSize: uint32(o.chunkSize),
	}
}

// Len returns the number of live records.
func (a *Arena[R]) Len() int {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return a.len
}

// Alloc reserves a zeroed record and returns its handle.
func (a *Arena[R]) Alloc() (Handle, *R) {
	a.mu.Lock()
	defer a.mu.Unlock()

	var idx uint32
	if n := len(a.free); n > 0 {
		idx = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		if a.next == math.MaxUint32 {
			panic("arena: out of handles")
		}
		idx = a.next
		if idx%a.chunkSize == 0 {
			a.chunks = append(a.chunks, make([]slot[R], a.chunkSize))
		}
		a.next++
	}

	s := a.slot(idx)
	s.live = true
	a.len++

	return makeHandle(idx, s.gen), &s.rec
}

// Get returns the record for h or nil if h is None, stale or freed.
func (a *Arena[R]) Get(h Handle) *R {
	a.mu.RLock()
	defer a.mu.RUnlock()

	if s := a.lookup(h); s != nil {
		return &s.rec
	}

	return nil
}

// Valid reports whether h references a live record.
func (a *Arena[R]) Valid(h Handle) bool {
	return a.Get(h) != nil
}

// Free zeroes the record for h and recycles its slot. Handles to the
// slot become stale. It returns false if h was not live.
//
// The caller must detach the record from every list before freeing it.
func (a *Arena[R]) Free(h Handle) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	s := a.lookup(h)
	if s == nil {
		return false
	}

	var zero R
	s.rec = zero
	s.live = false
	s.gen++
	a.free = append(a.free, h.index())
	a.len--

	return true
}

func (a *Arena[R]) slot(idx uint32) *slot[R] {
	return &a.chunks[idx/a.chunkSize][idx%a.chunkSize]
}

func (a *Arena[R]) lookup(h Handle) *slot[R] {
	if h == None {
		return nil
	}

	idx := h.index()
	if idx >= a.next {
		return nil
	}

	if s := a.slot(idx); s.live && s.gen == h.gen() {
		return s
	}

	return nil
}
