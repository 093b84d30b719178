package ilist_test

import (
	"github.com/mgnsk/ilist"
	"github.com/mgnsk/ilist/arena"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("a list of ten labeled records", func() {
	var (
		objects *arena.Arena[object]
		l       *ilist.List[object]
		handles []arena.Handle
	)

	BeforeEach(func() {
		objects, l = newList(ilist.WithName("scenario"))
		handles = allocObjects(objects, 10)

		for _, h := range handles {
			_, err := l.Add(h)
			Expect(err).NotTo(HaveOccurred())
		}
	})

	AfterEach(func() {
		Expect(l.Validate()).To(Succeed())
		l.Close()
	})

	Specify("first and next walk the records in insertion order", func() {
		Expect(l.Record(l.First()).i).To(Equal(0))
		Expect(labels(l)).To(Equal(seq(0, 9)))
		Expect(l.Count()).To(Equal(10))
	})

	When("the record labeled 4 is removed", func() {
		BeforeEach(func() {
			n, err := l.Remove(handles[4])
			Expect(err).NotTo(HaveOccurred())
			Expect(n).To(Equal(9))
		})

		Specify("the walk skips it", func() {
			Expect(labels(l)).To(Equal([]int{0, 1, 2, 3, 5, 6, 7, 8, 9}))
			Expect(l.Count()).To(Equal(9))
		})

		When("the back and then the front records are removed", func() {
			BeforeEach(func() {
				_, err := l.Remove(handles[9])
				Expect(err).NotTo(HaveOccurred())

				_, err = l.Remove(handles[0])
				Expect(err).NotTo(HaveOccurred())
			})

			Specify("the walk yields the remaining records", func() {
				Expect(labels(l)).To(Equal([]int{1, 2, 3, 5, 6, 7, 8}))
				Expect(l.Count()).To(Equal(7))
			})

			Specify("removing them again fails without changes", func() {
				for _, i := range []int{0, 4, 9} {
					_, err := l.Remove(handles[i])
					Expect(err).To(MatchError(ilist.ErrNotMember))
				}
				Expect(l.Count()).To(Equal(7))
			})
		})
	})

	When("the list is drained by popping", func() {
		var popped []int

		BeforeEach(func() {
			popped = nil
			for h := l.Pop(); h != arena.None; h = l.Pop() {
				popped = append(popped, objects.Get(h).i)
			}
		})

		Specify("records come out in insertion order", func() {
			Expect(popped).To(Equal(seq(0, 9)))
		})

		Specify("a further pop returns none", func() {
			Expect(l.Pop()).To(Equal(arena.None))
			Expect(l.Count()).To(BeZero())
			Expect(l.Empty()).To(BeTrue())
		})

		Specify("the records can be added again", func() {
			for _, h := range handles {
				_, err := l.Add(h)
				Expect(err).NotTo(HaveOccurred())
			}

			var drained []int
			l.Drain(func(_ arena.Handle, o *object) bool {
				drained = append(drained, o.i)
				return true
			})

			Expect(drained).To(Equal(seq(0, 9)))
			Expect(l.Count()).To(BeZero())
		})
	})
})

var _ = Describe("a freshly created list", func() {
	var l *ilist.List[object]

	BeforeEach(func() {
		_, l = newList()
	})

	Specify("first, next and pop return none", func() {
		Expect(l.First()).To(Equal(arena.None))
		Expect(l.Next(l.First())).To(Equal(arena.None))
		Expect(l.Pop()).To(Equal(arena.None))
		Expect(l.Count()).To(BeZero())
		Expect(l.Empty()).To(BeTrue())
	})
})
