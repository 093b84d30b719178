package ilist

import "github.com/mgnsk/ilist/arena"

// The ring is threaded through Link.next and Link.prev. arena.None denotes
// the sentinel, so an empty ring is a sentinel whose next and prev are None.
// All functions here require l.mu to be held.

// link resolves a ring position to its link.
func (l *List[R]) link(h arena.Handle) *Link {
	if h == arena.None {
		return &l.sentinel
	}

	rec := l.arena.Get(h)
	if rec == nil {
		panic("ilist: ring references a freed record")
	}

	return l.linkOf(rec)
}

// member returns the link of the record referenced by h or nil if h is not live.
func (l *List[R]) member(h arena.Handle) *Link {
	if rec := l.arena.Get(h); rec != nil {
		return l.linkOf(rec)
	}
	return nil
}

// insertBefore links ln, the link of h, in front of the ring position at.
func (l *List[R]) insertBefore(h arena.Handle, ln *Link, at arena.Handle) {
	atLink := l.link(at)
	prev := atLink.prev

	ln.next = at
	ln.prev = prev

	l.link(prev).next = h
	atLink.prev = h
}

// unlink splices ln out of the ring and detaches it.
func (l *List[R]) unlink(ln *Link) {
	l.link(ln.prev).next = ln.next
	l.link(ln.next).prev = ln.prev

	ln.next = arena.None
	ln.prev = arena.None

	// Release ownership last so that another list attaching the link
	// observes the cleared ring pointers.
	ln.owner.Store(0)
}
