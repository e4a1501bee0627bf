// Package collections implements generic data structures, most notably a
// singly linked list and a doubly linked list that share one operation set:
// positional access, insertion and removal, plus in-place rearrangement
// algorithms (reversal, sub-range reversal, pair swapping, stable partitioning)
// and diagnostics (palindrome, midpoint, cycle detection, nth-from-end).
//
// To iterate over a list (where l is a SinglyList[T] or DoublyList[T]):
//
//	l.Each(func(index int, value T) bool {
//		// do something with value
//		return true
//	})
//
// Lists are not safe for concurrent use. Each list owns its chain of
// elements exclusively and callers must serialize access to a shared list.
package collections

import (
	"fmt"
	"strings"

	"github.com/Invicton-Labs/go-linkedlists/constraints"
	"github.com/Invicton-Labs/go-stackerr"
)

// Sequence is the read-only view of a list that package-level algorithms operate on.
type Sequence[T any] interface {
	// Len returns the number of elements in the list.
	// The complexity is O(1).
	Len() int
	// Each calls f for every element from head to tail, stopping early
	// if f returns false.
	Each(f func(index int, value T) bool)
}

// List is the operation set shared by SinglyList and DoublyList.
type List[T constraints.Ordered] interface {
	Sequence[T]

	// Front returns the value of the first element, or false if the list is empty.
	Front() (T, bool)
	// Back returns the value of the last element, or false if the list is empty.
	Back() (T, bool)

	// Push appends a value at the tail of the list.
	Push(value T)
	// Pop removes the last element and returns its value, or false if the list is empty.
	Pop() (T, bool)
	// Unshift prepends a value at the head of the list.
	Unshift(value T)
	// Shift removes the first element and returns its value, or false if the list is empty.
	Shift() (T, bool)

	// Get returns the value at the 0-based index.
	Get(index int) (T, stackerr.Error)
	// Set overwrites the value at the 0-based index.
	Set(index int, value T) stackerr.Error
	// InsertAt inserts a value so that it ends up at the given index, which
	// must be in [0, Len()].
	InsertAt(index int, value T) stackerr.Error
	// RemoveAt removes the element at the given index, which must be in [0, Len()-1].
	RemoveAt(index int) (T, stackerr.Error)
	// Clear removes all elements.
	Clear()

	// Reverse reverses the order of the elements in place.
	Reverse()
	// ReverseBetween reverses the elements at positions [start, end] in place.
	// It requires 0 <= start < end < Len() and otherwise returns ErrOutOfRange
	// without modifying the list.
	ReverseBetween(start int, end int) stackerr.Error
	// SwapPairs exchanges the elements at positions 2i and 2i+1 by relinking them.
	// An odd final element stays in place.
	SwapPairs()
	// PartitionList stably moves every element less than pivot in front of
	// every element greater than or equal to pivot.
	PartitionList(pivot T)

	// IsPalindrome returns whether the values read the same in both directions.
	// An empty list is not a palindrome; a single element is.
	IsPalindrome() bool
	// MiddleNode returns the value at index Len()/2, or false if the list is empty.
	MiddleNode() (T, bool)
	// HasLoop returns whether following next links from the head ever revisits an element.
	HasLoop() bool
	// NthFromEnd returns the value n positions from the end (n=1 is the tail).
	NthFromEnd(n int) (T, stackerr.Error)
	// FindDuplicatesLoop removes every element whose value already appeared
	// earlier in the list, without auxiliary storage. O(n²) time, O(1) space.
	FindDuplicatesLoop()
	// RemoveDuplicates has the same result as FindDuplicatesLoop but tracks
	// seen values in a HashMap. O(n) time, O(n) space.
	RemoveDuplicates()

	// Values returns a copy of the values, from head to tail.
	Values() []T
	// Validate walks the list and returns every structural invariant violation
	// it finds, wrapped around ErrCorrupted.
	Validate() stackerr.Error
	// String returns a human-readable dump of the head, tail, length, and values.
	String() string
}

// Binary interprets the values of a sequence of 0s and 1s as the digits of
// a binary number, with the head as the most significant bit.
func Binary[T constraints.Integer](seq Sequence[T]) (uint64, stackerr.Error) {
	if seq.Len() == 0 {
		return 0, stackerr.Errorf("%w: no binary digits", ErrEmptyStructure)
	}
	if seq.Len() > 64 {
		return 0, stackerr.Errorf("%w: %d binary digits do not fit in 64 bits", ErrOverflow, seq.Len())
	}
	var total uint64
	var err stackerr.Error
	seq.Each(func(index int, value T) bool {
		if value != 0 && value != 1 {
			err = stackerr.Errorf("%w: value %v at index %d is not a binary digit", ErrInvalidElement, value, index)
			return false
		}
		total = total*2 + uint64(value)
		return true
	})
	if err != nil {
		return 0, err
	}
	return total, nil
}

// render produces the diagnostic dump shared by both list types.
func render[T any](seq Sequence[T], head T, tail T) string {
	b := &strings.Builder{}
	if seq.Len() == 0 {
		b.WriteString("head: <nil>\ntail: <nil>\nlength: 0\n")
		return b.String()
	}
	fmt.Fprintf(b, "head: %v\ntail: %v\nlength: %d\n\n", head, tail, seq.Len())
	seq.Each(func(index int, value T) bool {
		fmt.Fprintf(b, "node %d: %v\n", index+1, value)
		return true
	})
	return b.String()
}
