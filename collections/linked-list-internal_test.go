package collections

import (
	"testing"

	"github.com/tychoish/fun/assert"
	"github.com/tychoish/fun/assert/check"
)

func TestSinglyLinkedListInternals(t *testing.T) {
	t.Run("ReverseKeepsIdentities", func(t *testing.T) {
		l := NewSinglyList(1, 2, 3, 4).(*singlyLinkedList[int])
		head, tail := l.head, l.tail
		l.Reverse()
		check.True(t, l.head == tail)
		check.True(t, l.tail == head)
		l.Reverse()
		check.True(t, l.head == head)
		check.True(t, l.tail == tail)
	})
	t.Run("RewiringDoesNotAllocate", func(t *testing.T) {
		l := NewSinglyList(5, 1, 3, 2, 4).(*singlyLinkedList[int])
		before := NewHashMap[*singlyLinkedListElement[int]]()
		for e := l.head; e != nil; e = e.next {
			before.Store(e)
		}
		l.PartitionList(3)
		l.SwapPairs()
		assert.NotError(t, l.ReverseBetween(1, 3))
		for e := l.head; e != nil; e = e.next {
			check.True(t, before.Has(e))
		}
		assert.NotError(t, l.Validate())
	})
	t.Run("RemovedElementsAreUnlinked", func(t *testing.T) {
		l := NewSinglyList(1, 2, 3, 4).(*singlyLinkedList[int])
		first := l.head
		l.Shift()
		check.True(t, first.next == nil)

		middle := l.head.next
		_, err := l.RemoveAt(1)
		assert.NotError(t, err)
		check.True(t, middle.next == nil)

		d := NewSinglyList(1, 1, 2).(*singlyLinkedList[int])
		duplicate := d.head.next
		d.FindDuplicatesLoop()
		check.True(t, duplicate.next == nil)
	})
	t.Run("HasLoop", func(t *testing.T) {
		l := NewSinglyList(1, 2, 3, 4, 5).(*singlyLinkedList[int])
		l.tail.next = l.head.next
		check.True(t, l.HasLoop())
		assert.ErrorIs(t, l.Validate(), ErrCorrupted)

		l.tail.next = nil
		check.True(t, !l.HasLoop())
		assert.NotError(t, l.Validate())

		self := NewSinglyList(1).(*singlyLinkedList[int])
		self.head.next = self.head
		check.True(t, self.HasLoop())
	})
	t.Run("ValidateDetectsCorruption", func(t *testing.T) {
		l := NewSinglyList(1, 2, 3).(*singlyLinkedList[int])
		l.length = 4
		assert.ErrorIs(t, l.Validate(), ErrCorrupted)
		l.length = 3
		assert.NotError(t, l.Validate())

		l.tail = l.head
		assert.ErrorIs(t, l.Validate(), ErrCorrupted)
	})
}

func TestDoublyLinkedListInternals(t *testing.T) {
	t.Run("ReverseKeepsIdentities", func(t *testing.T) {
		l := NewDoublyList(1, 2, 3, 4).(*doublyLinkedList[int])
		head, tail := l.head, l.tail
		l.Reverse()
		check.True(t, l.head == tail)
		check.True(t, l.tail == head)
		check.True(t, l.head.prev == nil)
		l.Reverse()
		check.True(t, l.head == head)
		check.True(t, l.tail == tail)
	})
	t.Run("PrevLinksAfterRewiring", func(t *testing.T) {
		l := NewDoublyList(0, 1, 2, 3, 4, 5, 6).(*doublyLinkedList[int])
		assert.NotError(t, l.ReverseBetween(0, 6))
		assert.NotError(t, l.Validate())
		l.SwapPairs()
		assert.NotError(t, l.Validate())
		l.PartitionList(3)
		assert.NotError(t, l.Validate())

		// Walking back from the tail sees the same values in reverse
		forward := l.Values()
		backward := []int{}
		l.EachReverse(func(index int, value int) bool {
			check.Equal(t, forward[index], value)
			backward = append(backward, value)
			return true
		})
		assert.Equal(t, len(forward), len(backward))
		for i := range forward {
			check.Equal(t, forward[i], backward[len(backward)-1-i])
		}
	})
	t.Run("GetFromEitherEnd", func(t *testing.T) {
		l := NewDoublyList(Range(0, 9)...).(*doublyLinkedList[int])
		for i := 0; i < 9; i++ {
			check.True(t, l.elementAt(i).value == i)
		}
	})
	t.Run("RemovedElementsAreUnlinked", func(t *testing.T) {
		l := NewDoublyList(1, 2, 3, 4, 5).(*doublyLinkedList[int])
		last := l.tail
		l.Pop()
		check.True(t, last.prev == nil)
		check.True(t, last.next == nil)

		first := l.head
		l.Shift()
		check.True(t, first.next == nil)
		check.True(t, l.head.prev == nil)

		middle := l.head.next
		_, err := l.RemoveAt(1)
		assert.NotError(t, err)
		check.True(t, middle.next == nil)
		check.True(t, middle.prev == nil)
		assert.NotError(t, l.Validate())
	})
	t.Run("HasLoop", func(t *testing.T) {
		l := NewDoublyList(1, 2, 3, 4).(*doublyLinkedList[int])
		l.tail.next = l.head
		check.True(t, l.HasLoop())
		assert.ErrorIs(t, l.Validate(), ErrCorrupted)
	})
	t.Run("ValidateDetectsBrokenPrev", func(t *testing.T) {
		l := NewDoublyList(1, 2, 3).(*doublyLinkedList[int])
		l.head.next.prev = nil
		assert.ErrorIs(t, l.Validate(), ErrCorrupted)
		l.head.next.prev = l.head

		l.head.prev = l.tail
		assert.ErrorIs(t, l.Validate(), ErrCorrupted)
		l.head.prev = nil
		assert.NotError(t, l.Validate())
	})
	t.Run("EachReverseStops", func(t *testing.T) {
		l := NewDoublyList(1, 2, 3, 4)
		seen := []int{}
		l.EachReverse(func(index int, value int) bool {
			seen = append(seen, value)
			return len(seen) < 2
		})
		assert.True(t, SliceEqual(seen, []int{4, 3}))
	})
}

func TestHashMap(t *testing.T) {
	hm := NewHashMap(1, 2, 2, 3)
	check.Equal(t, 3, hm.Length())
	check.True(t, hm.Has(2))
	check.True(t, hm.Delete(2))
	check.True(t, !hm.Delete(2))
	check.True(t, !hm.Has(2))
	hm.Store(4)
	check.Equal(t, 3, hm.Length())
}

func TestSliceHelpers(t *testing.T) {
	src := []int{1, 2, 3}
	cp := CopySlice(src)
	cp[0] = 9
	check.Equal(t, 1, src[0])
	check.True(t, CopySlice[int](nil) == nil)

	check.True(t, SliceEqual(FilterSlice(src, func(v int) bool { return v > 1 }), []int{2, 3}))
	check.True(t, SliceEqual([]int{}, nil))
	check.True(t, !SliceEqual([]int{1}, []int{2}))
}

func TestRange(t *testing.T) {
	check.True(t, SliceEqual(Range(2, 5), []int{2, 3, 4}))
	check.Equal(t, 0, len(Range(3, 3)))
	check.True(t, SliceEqual(Range[uint8](0, 2), []uint8{0, 1}))
}
