package ilist

import "github.com/mgnsk/ilist/arena"

// EachStep calls f for each record from front to back, taking the list lock
// once per step: First, then Next until the back. If f returns false,
// EachStep stops the iteration.
//
// f may modify the list. The walk is not a snapshot: records added or
// removed by f or by other goroutines between steps may be seen or skipped,
// and the walk ends early if the current record leaves the list.
func (l *List[R]) EachStep(f func(h arena.Handle, rec *R) bool) {
	for h := l.First(); h != arena.None; h = l.Next(h) {
		rec := l.arena.Get(h)
		if rec == nil || !f(h, rec) {
			return
		}
	}
}

// Drain pops records from the front until the list is empty and calls f for
// each popped record. If f returns false, Drain stops. The record passed to f
// has already been removed.
func (l *List[R]) Drain(f func(h arena.Handle, rec *R) bool) {
	for h := l.Pop(); h != arena.None; h = l.Pop() {
		rec := l.arena.Get(h)
		if rec == nil || !f(h, rec) {
			return
		}
	}
}

// Scan calls f for each record from front to back while holding the list
// lock for the whole walk, so f observes a consistent snapshot. If f returns
// false, Scan stops the iteration.
//
// f must not call methods of l except Count and Empty.
func (l *List[R]) Scan(f func(h arena.Handle, rec *R) bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.checkOpen()

	for h := l.sentinel.next; h != arena.None; {
		ln := l.link(h)
		next := ln.next
		if !f(h, l.arena.Get(h)) {
			return
		}
		h = next
	}
}
