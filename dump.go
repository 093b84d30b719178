package ilist

import (
	"bytes"
	"fmt"
	"io"

	"github.com/mgnsk/ilist/arena"
)

// Dump writes the sentinel and every link of the list with the address of
// its record to w. The ring is captured under the lock and written after.
func (l *List[R]) Dump(w io.Writer) error {
	_, err := w.Write(l.snapshot())
	return err
}

func (l *List[R]) snapshot() []byte {
	var buf bytes.Buffer

	l.mu.Lock()
	defer l.mu.Unlock()

	l.checkOpen()

	fmt.Fprintf(&buf, "list %s: id: %d sentinel: %p next: %v prev: %v num: %d\n",
		l.name, l.id, &l.sentinel, l.sentinel.next, l.sentinel.prev, l.len)

	for h := l.sentinel.next; h != arena.None; {
		rec := l.arena.Get(h)
		if rec == nil {
			fmt.Fprintf(&buf, "link %v: freed\n", h)
			break
		}

		ln := l.linkOf(rec)
		fmt.Fprintf(&buf, "link %v: owner: %d node: %p next: %v prev: %v obj: %p\n",
			h, ln.owner.Load(), ln, ln.next, ln.prev, rec)

		h = ln.next
	}

	return buf.Bytes()
}

// Validate walks the ring under the lock and reports the first broken
// invariant: ring closure in both directions, link ownership and count.
func (l *List[R]) Validate() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.checkOpen()

	n := 0
	prev := arena.None

	for h := l.sentinel.next; h != arena.None; {
		if n == l.len {
			return fmt.Errorf("ilist: list %s: ring longer than count %d", l.name, l.len)
		}

		ln := l.member(h)
		if ln == nil {
			return fmt.Errorf("ilist: list %s: ring references freed record %v", l.name, h)
		}

		if owner := ln.owner.Load(); owner != l.id {
			return fmt.Errorf("ilist: list %s: link %v owned by list id %d", l.name, h, owner)
		}

		if ln.prev != prev {
			return fmt.Errorf("ilist: list %s: link %v prev is %v, expected %v", l.name, h, ln.prev, prev)
		}

		prev = h
		h = ln.next
		n++
	}

	if l.sentinel.prev != prev {
		return fmt.Errorf("ilist: list %s: sentinel prev is %v, expected %v", l.name, l.sentinel.prev, prev)
	}

	if n != l.len {
		return fmt.Errorf("ilist: list %s: ring has %d links, count is %d", l.name, n, l.len)
	}

	if c := l.count.Load(); c != int64(n) {
		return fmt.Errorf("ilist: list %s: published count %d, ring has %d links", l.name, c, n)
	}

	return nil
}
