package collections

import (
	"github.com/Invicton-Labs/go-linkedlists/constraints"
	"github.com/Invicton-Labs/go-stackerr"
	"go.uber.org/multierr"
)

// SinglyList is a linked list whose elements only link forward. Operations
// that need an element's predecessor track it during a forward scan, so Pop
// is O(n).
type SinglyList[T constraints.Ordered] interface {
	List[T]
}

// singlyLinkedListElement[T] is an element of a singly linked list.
type singlyLinkedListElement[T constraints.Ordered] struct {
	// The next element, or nil for the tail. The list owns elements
	// exclusively through this chain.
	next *singlyLinkedListElement[T]

	// The value stored with this element.
	value T
}

// singlyLinkedList[T] represents a singly linked list.
// The zero value for singlyLinkedList[T] is an empty list ready to use.
type singlyLinkedList[T constraints.Ordered] struct {
	head   *singlyLinkedListElement[T]
	tail   *singlyLinkedListElement[T] // always reachable from head, tail.next is nil
	length int
}

// NewSinglyList returns a singly linked list containing the given values, in order.
func NewSinglyList[T constraints.Ordered](values ...T) SinglyList[T] {
	l := &singlyLinkedList[T]{}
	for _, v := range values {
		l.Push(v)
	}
	return l
}

func (l *singlyLinkedList[T]) Len() int { return l.length }

func (l *singlyLinkedList[T]) Front() (value T, ok bool) {
	if l.head == nil {
		return value, false
	}
	return l.head.value, true
}

func (l *singlyLinkedList[T]) Back() (value T, ok bool) {
	if l.tail == nil {
		return value, false
	}
	return l.tail.value, true
}

func (l *singlyLinkedList[T]) Each(f func(index int, value T) bool) {
	for i, e := 0, l.head; i < l.length && e != nil; i, e = i+1, e.next {
		if !f(i, e.value) {
			return
		}
	}
}

func (l *singlyLinkedList[T]) Values() []T {
	values := make([]T, 0, l.length)
	l.Each(func(_ int, value T) bool {
		values = append(values, value)
		return true
	})
	return values
}

func (l *singlyLinkedList[T]) String() string {
	head, _ := l.Front()
	tail, _ := l.Back()
	return render[T](l, head, tail)
}

func (l *singlyLinkedList[T]) Push(value T) {
	e := &singlyLinkedListElement[T]{value: value}
	if l.head == nil {
		l.head = e
	} else {
		l.tail.next = e
	}
	l.tail = e
	l.length++
}

func (l *singlyLinkedList[T]) Pop() (value T, ok bool) {
	if l.head == nil {
		return value, false
	}
	last := l.tail
	if l.head == l.tail {
		l.head, l.tail = nil, nil
		l.length = 0
		return last.value, true
	}
	// There is no back-reference, so find the new tail by scanning
	previous := l.head
	for previous.next != last {
		previous = previous.next
	}
	previous.next = nil
	l.tail = previous
	l.length--
	return last.value, true
}

func (l *singlyLinkedList[T]) Unshift(value T) {
	e := &singlyLinkedListElement[T]{value: value, next: l.head}
	l.head = e
	if l.tail == nil {
		l.tail = e
	}
	l.length++
}

func (l *singlyLinkedList[T]) Shift() (value T, ok bool) {
	if l.head == nil {
		return value, false
	}
	first := l.head
	l.head = first.next
	first.next = nil // avoid memory leaks
	if l.head == nil {
		l.tail = nil
	}
	l.length--
	return first.value, true
}

// elementAt returns the element at index, which must already have been
// checked to be within [0, l.length).
func (l *singlyLinkedList[T]) elementAt(index int) *singlyLinkedListElement[T] {
	e := l.head
	for i := 0; i < index; i++ {
		e = e.next
	}
	return e
}

func (l *singlyLinkedList[T]) Get(index int) (value T, err stackerr.Error) {
	if index < 0 || index >= l.length {
		return value, outOfRange(index, 0, l.length-1)
	}
	return l.elementAt(index).value, nil
}

func (l *singlyLinkedList[T]) Set(index int, value T) stackerr.Error {
	if index < 0 || index >= l.length {
		return outOfRange(index, 0, l.length-1)
	}
	l.elementAt(index).value = value
	return nil
}

func (l *singlyLinkedList[T]) InsertAt(index int, value T) stackerr.Error {
	if index < 0 || index > l.length {
		return outOfRange(index, 0, l.length)
	}
	if index == 0 {
		l.Unshift(value)
		return nil
	}
	if index == l.length {
		l.Push(value)
		return nil
	}
	previous := l.elementAt(index - 1)
	previous.next = &singlyLinkedListElement[T]{value: value, next: previous.next}
	l.length++
	return nil
}

func (l *singlyLinkedList[T]) RemoveAt(index int) (value T, err stackerr.Error) {
	if index < 0 || index >= l.length {
		return value, outOfRange(index, 0, l.length-1)
	}
	if index == 0 {
		value, _ = l.Shift()
		return value, nil
	}
	if index == l.length-1 {
		value, _ = l.Pop()
		return value, nil
	}
	previous := l.elementAt(index - 1)
	target := previous.next
	previous.next = target.next
	target.next = nil // avoid memory leaks
	l.length--
	return target.value, nil
}

func (l *singlyLinkedList[T]) Clear() {
	for e := l.head; e != nil; {
		next := e.next
		e.next = nil
		e = next
	}
	l.head, l.tail = nil, nil
	l.length = 0
}

// reverseChain reverses the chain starting at head and returns the new head.
func reverseChain[T constraints.Ordered](head *singlyLinkedListElement[T]) *singlyLinkedListElement[T] {
	var previous *singlyLinkedListElement[T]
	for current := head; current != nil; {
		next := current.next
		current.next = previous
		previous = current
		current = next
	}
	return previous
}

func (l *singlyLinkedList[T]) Reverse() {
	if l.length < 2 {
		return
	}
	l.head, l.tail = reverseChain(l.head), l.head
}

func (l *singlyLinkedList[T]) ReverseBetween(start int, end int) stackerr.Error {
	if start < 0 || end >= l.length || start >= end {
		return stackerr.Errorf("%w: range [%d, %d] must satisfy 0 <= start < end < %d", ErrOutOfRange, start, end, l.length)
	}

	sentinel := &singlyLinkedListElement[T]{next: l.head}
	splice := sentinel
	for i := 0; i < start; i++ {
		splice = splice.next
	}

	// The element at start ends up at end; each pass moves the element
	// after it to the front of the range.
	last := splice.next
	for i := 0; i < end-start; i++ {
		moved := last.next
		last.next = moved.next
		moved.next = splice.next
		splice.next = moved
	}

	l.head = sentinel.next
	if last.next == nil {
		l.tail = last
	}
	sentinel.next = nil
	return nil
}

func (l *singlyLinkedList[T]) SwapPairs() {
	if l.length < 2 {
		return
	}
	sentinel := &singlyLinkedListElement[T]{next: l.head}
	previous := sentinel
	for previous.next != nil && previous.next.next != nil {
		first := previous.next
		second := first.next

		first.next = second.next
		second.next = first
		previous.next = second

		previous = first
	}
	l.head = sentinel.next
	// With an even length the last swapped element is the new tail
	if previous.next == nil {
		l.tail = previous
	}
	sentinel.next = nil
}

func (l *singlyLinkedList[T]) PartitionList(pivot T) {
	if l.length < 2 {
		return
	}
	var less, greater singlyLinkedListElement[T]
	lessTail, greaterTail := &less, &greater

	for current := l.head; current != nil; {
		next := current.next
		current.next = nil
		if current.value < pivot {
			lessTail.next = current
			lessTail = current
		} else {
			greaterTail.next = current
			greaterTail = current
		}
		current = next
	}

	lessTail.next = greater.next
	l.head = less.next
	if greaterTail != &greater {
		l.tail = greaterTail
	} else {
		l.tail = lessTail
	}
}

// middle returns the element at index length/2 using the slow/fast technique.
func (l *singlyLinkedList[T]) middle() *singlyLinkedListElement[T] {
	slow, fast := l.head, l.head
	for fast != nil && fast.next != nil {
		slow = slow.next
		fast = fast.next.next
	}
	return slow
}

func (l *singlyLinkedList[T]) MiddleNode() (value T, ok bool) {
	if l.head == nil {
		return value, false
	}
	return l.middle().value, true
}

func (l *singlyLinkedList[T]) IsPalindrome() bool {
	if l.length == 0 {
		return false
	}
	if l.length == 1 {
		return true
	}

	// Find the last element of the first half (the middle itself for an odd length)
	firstEnd, fast := l.head, l.head
	for fast.next != nil && fast.next.next != nil {
		firstEnd = firstEnd.next
		fast = fast.next.next
	}

	// Reverse the second half in place, compare, then put it back
	secondHead := reverseChain(firstEnd.next)
	isPalindrome := true
	for left, right := l.head, secondHead; right != nil; left, right = left.next, right.next {
		if left.value != right.value {
			isPalindrome = false
			break
		}
	}
	firstEnd.next = reverseChain(secondHead)
	return isPalindrome
}

func (l *singlyLinkedList[T]) HasLoop() bool {
	slow, fast := l.head, l.head
	for fast != nil && fast.next != nil {
		slow = slow.next
		fast = fast.next.next
		if slow == fast {
			return true
		}
	}
	return false
}

func (l *singlyLinkedList[T]) NthFromEnd(n int) (value T, err stackerr.Error) {
	if n <= 0 || n > l.length {
		return value, outOfRange(n, 1, l.length)
	}
	lead := l.head
	for i := 1; i < n; i++ {
		lead = lead.next
	}
	trail := l.head
	for lead != l.tail {
		lead = lead.next
		trail = trail.next
	}
	return trail.value, nil
}

func (l *singlyLinkedList[T]) FindDuplicatesLoop() {
	for current := l.head; current != nil; current = current.next {
		runner := current
		for runner.next != nil {
			if runner.next.value == current.value {
				duplicate := runner.next
				runner.next = duplicate.next
				duplicate.next = nil // avoid memory leaks
				l.length--
			} else {
				runner = runner.next
			}
		}
		// The runner always stops on the last element
		l.tail = runner
	}
}

func (l *singlyLinkedList[T]) RemoveDuplicates() {
	seen := NewHashMapPreallocated[T](l.length)
	var previous *singlyLinkedListElement[T]
	for current := l.head; current != nil; {
		next := current.next
		if seen.Has(current.value) {
			// The head is never a duplicate, so previous is set
			previous.next = next
			current.next = nil // avoid memory leaks
			l.length--
		} else {
			seen.Store(current.value)
			previous = current
		}
		current = next
	}
	l.tail = previous
}

func (l *singlyLinkedList[T]) Validate() stackerr.Error {
	var errs error
	if (l.length == 0) != (l.head == nil) || (l.head == nil) != (l.tail == nil) {
		errs = multierr.Append(errs, stackerr.Errorf("length %d disagrees with head (nil=%t) and tail (nil=%t)", l.length, l.head == nil, l.tail == nil))
	}

	visited := NewHashMapPreallocated[*singlyLinkedListElement[T]](l.length)
	count := 0
	var last *singlyLinkedListElement[T]
	for e := l.head; e != nil; e = e.next {
		if visited.Has(e) {
			errs = multierr.Append(errs, stackerr.Errorf("cycle detected after %d elements", count))
			break
		}
		visited.Store(e)
		last = e
		count++
	}

	if count != l.length {
		errs = multierr.Append(errs, stackerr.Errorf("length is %d but %d elements are reachable", l.length, count))
	}
	if l.tail != nil && l.tail != last {
		errs = multierr.Append(errs, stackerr.Errorf("tail is not the last reachable element"))
	}
	if l.tail != nil && l.tail.next != nil {
		errs = multierr.Append(errs, stackerr.Errorf("tail has a next element"))
	}

	if errs != nil {
		return stackerr.Errorf("%w: %v", ErrCorrupted, errs)
	}
	return nil
}
