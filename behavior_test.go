package list_test

import (
	"slices"

	"github.com/mgnsk/list"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

var _ = Describe("a list of integers", func() {
	var l *list.List[int]

	BeforeEach(func() {
		l = list.New[int]()
	})

	AfterEach(func() {
		Expect(list.Validate(l)).To(Succeed())
	})

	When("values are pushed to the back", func() {
		BeforeEach(func() {
			for _, v := range []int{1, 2, 3} {
				Expect(l.PushBack(v)).To(Succeed())
			}
		})

		Specify("they are traversed in insertion order", func() {
			Expect(elements(l)).To(Equal([]int{1, 2, 3}))
			Expect(slices.Collect(l.Backward())).To(Equal([]int{3, 2, 1}))
		})

		Specify("erase, insert, pop and splice keep the sequence", func() {
			l.Erase(l.Begin())
			Expect(elements(l)).To(Equal([]int{2, 3}))

			_, err := l.Insert(l.Begin(), 9)
			Expect(err).NotTo(HaveOccurred())
			Expect(elements(l)).To(Equal([]int{9, 2, 3}))

			l.PopBack()
			Expect(elements(l)).To(Equal([]int{9, 2}))

			other := list.New[int]()
			other.Splice(other.Begin(), l, l.Begin(), l.End())

			Expect(list.Validate(other)).To(Succeed())
			Expect(l.Empty()).To(BeTrue())
			Expect(elements(other)).To(Equal([]int{9, 2}))
		})

		Specify("a copy is not affected by later changes", func() {
			c, err := l.Clone()
			Expect(err).NotTo(HaveOccurred())

			l.PopFront()
			Expect(l.PushBack(4)).To(Succeed())

			Expect(elements(c)).To(Equal([]int{1, 2, 3}))
			Expect(elements(l)).To(Equal([]int{2, 3, 4}))
		})
	})

	When("the list is cleared", func() {
		Specify("it is empty", func() {
			Expect(l.PushBack(1)).To(Succeed())

			l.Clear()

			Expect(l.Empty()).To(BeTrue())
			Expect(l.Begin()).To(BeIdenticalTo(l.End()))
		})
	})
})

var _ = DescribeTable("swapping lists",
	func(a, b []int) {
		x := fromSlice(a)
		y := fromSlice(b)

		list.Swap(x, y)

		Expect(list.Validate(x)).To(Succeed())
		Expect(list.Validate(y)).To(Succeed())
		Expect(elements(x)).To(Equal(b))
		Expect(elements(y)).To(Equal(a))
		Expect(x.Empty()).To(Equal(len(b) == 0))
		Expect(y.Empty()).To(Equal(len(a) == 0))
	},
	Entry("both empty", []int{}, []int{}),
	Entry("first empty", []int{}, []int{1, 2}),
	Entry("second empty", []int{1}, []int{}),
	Entry("both non-empty", []int{1, 2, 3}, []int{4}),
)

var _ = DescribeTable("splicing a range into another list",
	func(src []int, first, last int, dst []int, at int) {
		s := fromSlice(src)
		d := fromSlice(dst)

		moved := advance(s.Begin(), first)

		d.Splice(advance(d.Begin(), at), s, moved, advance(s.Begin(), last))

		wantDst := slices.Insert(slices.Clone(dst), at, src[first:last]...)
		wantSrc := slices.Delete(slices.Clone(src), first, last)

		Expect(list.Validate(s)).To(Succeed())
		Expect(list.Validate(d)).To(Succeed())
		Expect(elements(d)).To(Equal(wantDst))
		Expect(elements(s)).To(Equal(wantSrc))
		Expect(s.Len() + d.Len()).To(Equal(len(src) + len(dst)))

		if first < last {
			Expect(moved.Value()).To(Equal(src[first]))
		}
	},
	Entry("everything into an empty list", []int{9, 2}, 0, 2, []int{}, 0),
	Entry("a prefix to the back", []int{1, 2, 3}, 0, 2, []int{7}, 1),
	Entry("a suffix to the front", []int{1, 2, 3}, 1, 3, []int{7, 8}, 0),
	Entry("a middle range into the middle", []int{1, 2, 3, 4}, 1, 3, []int{7, 8}, 1),
	Entry("an empty range", []int{1, 2}, 1, 1, []int{7}, 0),
)

func fromSlice(values []int) *list.List[int] {
	l := list.New[int]()
	for _, v := range values {
		Expect(l.PushBack(v)).To(Succeed())
	}
	return l
}
