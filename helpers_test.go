package ilist_test

import (
	"github.com/mgnsk/ilist"
	"github.com/mgnsk/ilist/arena"
	. "github.com/onsi/gomega"
)

type object struct {
	i    int
	link ilist.Link
	aux  ilist.Link
}

func linkOf(o *object) *ilist.Link {
	return &o.link
}

func auxOf(o *object) *ilist.Link {
	return &o.aux
}

func newList(opts ...ilist.Option) (*arena.Arena[object], *ilist.List[object]) {
	a := arena.New[object]()
	return a, ilist.New(a, linkOf, opts...)
}

// allocObjects allocates n objects labeled 0..n-1.
func allocObjects(a *arena.Arena[object], n int) []arena.Handle {
	handles := make([]arena.Handle, n)
	for i := range handles {
		h, o := a.Alloc()
		o.i = i
		handles[i] = h
	}
	return handles
}

func addAll(g *WithT, l *ilist.List[object], handles []arena.Handle) {
	for _, h := range handles {
		_, err := l.Add(h)
		g.Expect(err).NotTo(HaveOccurred())
	}
}

// labels walks the list step by step and returns the labels in order.
func labels(l *ilist.List[object]) []int {
	res := []int{}
	l.EachStep(func(_ arena.Handle, o *object) bool {
		res = append(res, o.i)
		return true
	})
	return res
}

func seq(from, to int, skip ...int) []int {
	res := []int{}
loop:
	for i := from; i <= to; i++ {
		for _, s := range skip {
			if i == s {
				continue loop
			}
		}
		res = append(res, i)
	}
	return res
}
