/*
Package ilist implements a thread-safe intrusive doubly linked list.

Records embed a Link and live in an arena.Arena. A List threads the links of
arena records into a ring guarded by its own mutex, without allocating list
nodes. The function passed to New maps a record to the Link field that the
list uses, so one record type can embed several links and belong to several
lists at the same time.

	type object struct {
		i    int
		link ilist.Link
	}

	objects := arena.New[object]()
	l := ilist.New(objects, func(o *object) *ilist.Link { return &o.link })

	h, o := objects.Alloc()
	o.i = 1
	l.Add(h)

The list never owns record memory. A record must be removed from every list
and must not be referenced by an in-progress traversal step before it is freed.
*/
package ilist

import (
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/mgnsk/ilist/arena"
)

var lastID atomic.Uint64

// List is a mutex guarded circular doubly linked list of arena records.
type List[R any] struct {
	arena    *arena.Arena[R]
	linkOf   func(*R) *Link
	name     string
	id       uint64
	count    atomic.Int64
	mu       sync.Mutex
	sentinel Link
	len      int
	closed   bool
}

// New creates an empty list of records stored in a.
// linkOf must return the address of the same Link field for every record.
func New[R any](a *arena.Arena[R], linkOf func(*R) *Link, opts ...Option) *List[R] {
	if a == nil {
		panic("ilist: nil arena")
	}

	if linkOf == nil {
		panic("ilist: nil link accessor")
	}

	o := newDefaultListOptions()
	for _, opt := range opts {
		opt.apply(&o)
	}

	l := &List[R]{
		arena:  a,
		linkOf: linkOf,
		id:     lastID.Add(1),
	}

	l.name = o.name
	if l.name == "" {
		l.name = strconv.FormatUint(l.id, 10)
	}

	return l
}

// Close releases the list. Records still attached are left as they are.
// Any further use of the list except Count and Empty panics.
func (l *List[R]) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.checkOpen()
	l.closed = true
}

// Name returns the list label.
func (l *List[R]) Name() string {
	return l.name
}

// String implements fmt.Stringer.
func (l *List[R]) String() string {
	return "ilist.List(" + l.name + ", count=" + strconv.Itoa(l.Count()) + ")"
}

// Count returns the number of records in the list.
func (l *List[R]) Count() int {
	return int(l.count.Load())
}

// Empty reports whether the list has no records.
func (l *List[R]) Empty() bool {
	return l.count.Load() == 0
}

// Add appends the record referenced by h at the back of the list and returns
// the new count. It fails with ErrAttached if the record's link belongs to
// any list, this one included.
func (l *List[R]) Add(h arena.Handle) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.checkOpen()

	ln := l.member(h)
	if ln == nil {
		return 0, ErrInvalidHandle
	}

	if !ln.owner.CompareAndSwap(0, l.id) {
		return 0, ErrAttached
	}

	l.insertBefore(h, ln, arena.None)
	l.len++
	l.count.Store(int64(l.len))

	return l.len, nil
}

// Remove unlinks the record referenced by h and returns the new count.
// It fails with ErrNotMember if the record is not in this list.
func (l *List[R]) Remove(h arena.Handle) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.checkOpen()

	ln := l.member(h)
	if ln == nil {
		return 0, ErrInvalidHandle
	}

	if ln.owner.Load() != l.id {
		return 0, ErrNotMember
	}

	l.unlink(ln)
	l.len--
	l.count.Store(int64(l.len))

	return l.len, nil
}

// Pop removes the front record and returns its handle or arena.None if the list is empty.
func (l *List[R]) Pop() arena.Handle {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.checkOpen()

	h := l.sentinel.next
	if h == arena.None {
		return arena.None
	}

	l.unlink(l.link(h))
	l.len--
	l.count.Store(int64(l.len))

	return h
}

// First returns the front record handle or arena.None if the list is empty.
func (l *List[R]) First() arena.Handle {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.checkOpen()

	return l.sentinel.next
}

// Next returns the handle of the record following h or arena.None if h is
// the back record. It also returns arena.None if h is no longer in this list.
//
// Only the single step is atomic. A walk made of First and Next calls may
// skip records removed or see records added by others between steps.
func (l *List[R]) Next(h arena.Handle) arena.Handle {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.checkOpen()

	ln := l.member(h)
	if ln == nil || ln.owner.Load() != l.id {
		return arena.None
	}

	return ln.next
}

// Owns reports whether the record referenced by h is in this list.
func (l *List[R]) Owns(h arena.Handle) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.checkOpen()

	ln := l.member(h)

	return ln != nil && ln.owner.Load() == l.id
}

// Record returns the record referenced by h or nil if h is not live.
func (l *List[R]) Record(h arena.Handle) *R {
	return l.arena.Get(h)
}

// Link returns the link this list uses in the record referenced by h, or nil.
func (l *List[R]) Link(h arena.Handle) *Link {
	if rec := l.arena.Get(h); rec != nil {
		return l.linkOf(rec)
	}
	return nil
}

func (l *List[R]) checkOpen() {
	if l.closed {
		panic("ilist: use of closed list")
	}
}
