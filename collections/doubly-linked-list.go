package collections

import (
	"github.com/Invicton-Labs/go-linkedlists/constraints"
	"github.com/Invicton-Labs/go-stackerr"
	"go.uber.org/multierr"
)

// DoublyList is a linked list whose elements link in both directions, which
// makes tail operations O(1) and lets positional lookups start from
// whichever end is nearer.
type DoublyList[T constraints.Ordered] interface {
	List[T]
	// EachReverse calls f for every element from tail to head, stopping early
	// if f returns false. The index passed to f is the element's position
	// counted from the head.
	EachReverse(f func(index int, value T) bool)
}

// doublyLinkedListElement[T] is an element of a doubly linked list.
type doublyLinkedListElement[T constraints.Ordered] struct {
	// Next and previous pointers in the doubly-linked list of elements.
	// Only next owns; prev is a back-reference used for traversal and
	// rewiring. The head's prev and the tail's next are nil.
	next, prev *doublyLinkedListElement[T]

	// The value stored with this element.
	value T
}

// doublyLinkedList[T] represents a doubly linked list.
// The zero value for doublyLinkedList[T] is an empty list ready to use.
type doublyLinkedList[T constraints.Ordered] struct {
	head   *doublyLinkedListElement[T]
	tail   *doublyLinkedListElement[T]
	length int // current number of elements
}

// NewDoublyList returns a doubly linked list containing the given values, in order.
func NewDoublyList[T constraints.Ordered](values ...T) DoublyList[T] {
	l := &doublyLinkedList[T]{}
	for _, v := range values {
		l.Push(v)
	}
	return l
}

// Len returns the number of elements of list l.
// The complexity is O(1).
func (l *doublyLinkedList[T]) Len() int { return l.length }

// Front returns the first value of list l or false if the list is empty.
func (l *doublyLinkedList[T]) Front() (value T, ok bool) {
	if l.head == nil {
		return value, false
	}
	return l.head.value, true
}

// Back returns the last value of list l or false if the list is empty.
func (l *doublyLinkedList[T]) Back() (value T, ok bool) {
	if l.tail == nil {
		return value, false
	}
	return l.tail.value, true
}

func (l *doublyLinkedList[T]) Each(f func(index int, value T) bool) {
	for i, e := 0, l.head; i < l.length && e != nil; i, e = i+1, e.next {
		if !f(i, e.value) {
			return
		}
	}
}

func (l *doublyLinkedList[T]) EachReverse(f func(index int, value T) bool) {
	for i, e := l.length-1, l.tail; i >= 0 && e != nil; i, e = i-1, e.prev {
		if !f(i, e.value) {
			return
		}
	}
}

func (l *doublyLinkedList[T]) Values() []T {
	values := make([]T, 0, l.length)
	l.Each(func(_ int, value T) bool {
		values = append(values, value)
		return true
	})
	return values
}

func (l *doublyLinkedList[T]) String() string {
	head, _ := l.Front()
	tail, _ := l.Back()
	return render[T](l, head, tail)
}

// unlink clears the links of an element that has been removed from the
// list so that it can't be mistaken for live structure.
func (e *doublyLinkedListElement[T]) unlink() {
	e.next = nil // avoid memory leaks
	e.prev = nil // avoid memory leaks
}

// Push inserts a new element with the given value at the tail of list l.
func (l *doublyLinkedList[T]) Push(value T) {
	e := &doublyLinkedListElement[T]{value: value, prev: l.tail}
	if l.tail == nil {
		l.head = e
	} else {
		l.tail.next = e
	}
	l.tail = e
	l.length++
}

func (l *doublyLinkedList[T]) Pop() (value T, ok bool) {
	if l.tail == nil {
		return value, false
	}
	last := l.tail
	l.tail = last.prev
	if l.tail == nil {
		l.head = nil
	} else {
		l.tail.next = nil
	}
	last.unlink()
	l.length--
	return last.value, true
}

func (l *doublyLinkedList[T]) Unshift(value T) {
	e := &doublyLinkedListElement[T]{value: value, next: l.head}
	if l.head == nil {
		l.tail = e
	} else {
		l.head.prev = e
	}
	l.head = e
	l.length++
}

func (l *doublyLinkedList[T]) Shift() (value T, ok bool) {
	if l.head == nil {
		return value, false
	}
	first := l.head
	l.head = first.next
	if l.head == nil {
		l.tail = nil
	} else {
		l.head.prev = nil
	}
	first.unlink()
	l.length--
	return first.value, true
}

// elementAt returns the element at index, which must already have been
// checked to be within [0, l.length). It scans from whichever end is nearer.
func (l *doublyLinkedList[T]) elementAt(index int) *doublyLinkedListElement[T] {
	if 2*index < l.length {
		e := l.head
		for i := 0; i < index; i++ {
			e = e.next
		}
		return e
	}
	e := l.tail
	for i := l.length - 1; i > index; i-- {
		e = e.prev
	}
	return e
}

func (l *doublyLinkedList[T]) Get(index int) (value T, err stackerr.Error) {
	if index < 0 || index >= l.length {
		return value, outOfRange(index, 0, l.length-1)
	}
	return l.elementAt(index).value, nil
}

func (l *doublyLinkedList[T]) Set(index int, value T) stackerr.Error {
	if index < 0 || index >= l.length {
		return outOfRange(index, 0, l.length-1)
	}
	l.elementAt(index).value = value
	return nil
}

func (l *doublyLinkedList[T]) InsertAt(index int, value T) stackerr.Error {
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
	e := &doublyLinkedListElement[T]{value: value, prev: previous, next: previous.next}
	previous.next.prev = e
	previous.next = e
	l.length++
	return nil
}

func (l *doublyLinkedList[T]) RemoveAt(index int) (value T, err stackerr.Error) {
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
	target := l.elementAt(index)
	target.prev.next = target.next
	target.next.prev = target.prev
	target.unlink()
	l.length--
	return target.value, nil
}

func (l *doublyLinkedList[T]) Clear() {
	for e := l.head; e != nil; {
		next := e.next
		e.unlink()
		e = next
	}
	l.head, l.tail = nil, nil
	l.length = 0
}

func (l *doublyLinkedList[T]) Reverse() {
	if l.length < 2 {
		return
	}
	for current := l.head; current != nil; {
		next := current.next
		current.next, current.prev = current.prev, next
		current = next
	}
	l.head, l.tail = l.tail, l.head
}

func (l *doublyLinkedList[T]) ReverseBetween(start int, end int) stackerr.Error {
	if start < 0 || end >= l.length || start >= end {
		return stackerr.Errorf("%w: range [%d, %d] must satisfy 0 <= start < end < %d", ErrOutOfRange, start, end, l.length)
	}

	sentinel := &doublyLinkedListElement[T]{next: l.head}
	l.head.prev = sentinel
	splice := sentinel
	for i := 0; i < start; i++ {
		splice = splice.next
	}

	last := splice.next
	for i := 0; i < end-start; i++ {
		moved := last.next

		// Detach moved from behind last
		last.next = moved.next
		if moved.next != nil {
			moved.next.prev = last
		}

		// Reattach it right after the splice point
		moved.next = splice.next
		moved.prev = splice
		splice.next.prev = moved
		splice.next = moved
	}

	if last.next == nil {
		l.tail = last
	}
	l.head = sentinel.next
	l.head.prev = nil
	sentinel.next = nil
	return nil
}

func (l *doublyLinkedList[T]) SwapPairs() {
	if l.length < 2 {
		return
	}
	sentinel := &doublyLinkedListElement[T]{next: l.head}
	l.head.prev = sentinel
	previous := sentinel
	for previous.next != nil && previous.next.next != nil {
		first := previous.next
		second := first.next
		after := second.next

		previous.next = second
		second.prev = previous
		second.next = first
		first.prev = second
		first.next = after
		if after != nil {
			after.prev = first
		}

		previous = first
	}
	if previous.next == nil {
		l.tail = previous
	}
	l.head = sentinel.next
	l.head.prev = nil
	sentinel.next = nil
}

func (l *doublyLinkedList[T]) PartitionList(pivot T) {
	if l.length < 2 {
		return
	}
	var less, greater doublyLinkedListElement[T]
	lessTail, greaterTail := &less, &greater

	for current := l.head; current != nil; {
		next := current.next
		current.next = nil
		if current.value < pivot {
			current.prev = lessTail
			lessTail.next = current
			lessTail = current
		} else {
			current.prev = greaterTail
			greaterTail.next = current
			greaterTail = current
		}
		current = next
	}

	lessTail.next = greater.next
	if greater.next != nil {
		greater.next.prev = lessTail
	}
	l.head = less.next
	l.head.prev = nil
	if greaterTail != &greater {
		l.tail = greaterTail
	} else {
		l.tail = lessTail
	}
}

func (l *doublyLinkedList[T]) MiddleNode() (value T, ok bool) {
	if l.head == nil {
		return value, false
	}
	slow, fast := l.head, l.head
	for fast != nil && fast.next != nil {
		slow = slow.next
		fast = fast.next.next
	}
	return slow.value, true
}

func (l *doublyLinkedList[T]) IsPalindrome() bool {
	if l.length == 0 {
		return false
	}
	start, end := l.head, l.tail
	for i := 0; i < l.length/2; i++ {
		if start.value != end.value {
			return false
		}
		start = start.next
		end = end.prev
	}
	return true
}

func (l *doublyLinkedList[T]) HasLoop() bool {
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

func (l *doublyLinkedList[T]) NthFromEnd(n int) (value T, err stackerr.Error) {
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

// removeAfter splices out the element after e, which must exist.
func (l *doublyLinkedList[T]) removeAfter(e *doublyLinkedListElement[T]) {
	target := e.next
	e.next = target.next
	if target.next != nil {
		target.next.prev = e
	} else {
		l.tail = e
	}
	target.unlink()
	l.length--
}

func (l *doublyLinkedList[T]) FindDuplicatesLoop() {
	for current := l.head; current != nil; current = current.next {
		runner := current
		for runner.next != nil {
			if runner.next.value == current.value {
				l.removeAfter(runner)
			} else {
				runner = runner.next
			}
		}
	}
}

func (l *doublyLinkedList[T]) RemoveDuplicates() {
	seen := NewHashMapPreallocated[T](l.length)
	for current := l.head; current != nil; {
		seen.Store(current.value)
		for current.next != nil && seen.Has(current.next.value) {
			l.removeAfter(current)
		}
		current = current.next
	}
}

func (l *doublyLinkedList[T]) Validate() stackerr.Error {
	var errs error
	if (l.length == 0) != (l.head == nil) || (l.head == nil) != (l.tail == nil) {
		errs = multierr.Append(errs, stackerr.Errorf("length %d disagrees with head (nil=%t) and tail (nil=%t)", l.length, l.head == nil, l.tail == nil))
	}
	if l.head != nil && l.head.prev != nil {
		errs = multierr.Append(errs, stackerr.Errorf("head has a previous element"))
	}

	visited := NewHashMapPreallocated[*doublyLinkedListElement[T]](l.length)
	count := 0
	var last *doublyLinkedListElement[T]
	for e := l.head; e != nil; e = e.next {
		if visited.Has(e) {
			errs = multierr.Append(errs, stackerr.Errorf("cycle detected after %d elements", count))
			break
		}
		visited.Store(e)
		if e.next != nil && e.next.prev != e {
			errs = multierr.Append(errs, stackerr.Errorf("element %d is not the previous element of its next element", count))
		}
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
