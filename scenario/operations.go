package scenario

import (
	"strconv"

	"github.com/Invicton-Labs/go-linkedlists/collections"
	"github.com/Invicton-Labs/go-stackerr"
)

// Output written for queries that found nothing (e.g. Pop on an empty list)
const emptyOutput = "<empty>"

type operation struct {
	arity int
	apply func(l collections.List[int], args []int) (output string, err stackerr.Error)
}

func found(value int, ok bool) string {
	if !ok {
		return emptyOutput
	}
	return strconv.Itoa(value)
}

func valueOrError(value int, err stackerr.Error) (string, stackerr.Error) {
	if err != nil {
		return "", err
	}
	return strconv.Itoa(value), nil
}

var operations = map[string]operation{
	"len": {0, func(l collections.List[int], _ []int) (string, stackerr.Error) {
		return strconv.Itoa(l.Len()), nil
	}},
	"front": {0, func(l collections.List[int], _ []int) (string, stackerr.Error) {
		return found(l.Front()), nil
	}},
	"back": {0, func(l collections.List[int], _ []int) (string, stackerr.Error) {
		return found(l.Back()), nil
	}},
	"push": {1, func(l collections.List[int], args []int) (string, stackerr.Error) {
		l.Push(args[0])
		return "", nil
	}},
	"pop": {0, func(l collections.List[int], _ []int) (string, stackerr.Error) {
		return found(l.Pop()), nil
	}},
	"unshift": {1, func(l collections.List[int], args []int) (string, stackerr.Error) {
		l.Unshift(args[0])
		return "", nil
	}},
	"shift": {0, func(l collections.List[int], _ []int) (string, stackerr.Error) {
		return found(l.Shift()), nil
	}},
	"get": {1, func(l collections.List[int], args []int) (string, stackerr.Error) {
		return valueOrError(l.Get(args[0]))
	}},
	"set": {2, func(l collections.List[int], args []int) (string, stackerr.Error) {
		return "", l.Set(args[0], args[1])
	}},
	"insertAt": {2, func(l collections.List[int], args []int) (string, stackerr.Error) {
		return "", l.InsertAt(args[0], args[1])
	}},
	"removeAt": {1, func(l collections.List[int], args []int) (string, stackerr.Error) {
		return valueOrError(l.RemoveAt(args[0]))
	}},
	"clear": {0, func(l collections.List[int], _ []int) (string, stackerr.Error) {
		l.Clear()
		return "", nil
	}},
	"reverse": {0, func(l collections.List[int], _ []int) (string, stackerr.Error) {
		l.Reverse()
		return "", nil
	}},
	"reverseBetween": {2, func(l collections.List[int], args []int) (string, stackerr.Error) {
		return "", l.ReverseBetween(args[0], args[1])
	}},
	"swapPairs": {0, func(l collections.List[int], _ []int) (string, stackerr.Error) {
		l.SwapPairs()
		return "", nil
	}},
	"partitionList": {1, func(l collections.List[int], args []int) (string, stackerr.Error) {
		l.PartitionList(args[0])
		return "", nil
	}},
	"isPalindrome": {0, func(l collections.List[int], _ []int) (string, stackerr.Error) {
		return strconv.FormatBool(l.IsPalindrome()), nil
	}},
	"middleNode": {0, func(l collections.List[int], _ []int) (string, stackerr.Error) {
		return found(l.MiddleNode()), nil
	}},
	"hasLoop": {0, func(l collections.List[int], _ []int) (string, stackerr.Error) {
		return strconv.FormatBool(l.HasLoop()), nil
	}},
	"nthFromEnd": {1, func(l collections.List[int], args []int) (string, stackerr.Error) {
		return valueOrError(l.NthFromEnd(args[0]))
	}},
	"findDuplicatesLoop": {0, func(l collections.List[int], _ []int) (string, stackerr.Error) {
		l.FindDuplicatesLoop()
		return "", nil
	}},
	"removeDuplicates": {0, func(l collections.List[int], _ []int) (string, stackerr.Error) {
		l.RemoveDuplicates()
		return "", nil
	}},
	"binary": {0, func(l collections.List[int], _ []int) (string, stackerr.Error) {
		total, err := collections.Binary[int](l)
		if err != nil {
			return "", err
		}
		return strconv.FormatUint(total, 10), nil
	}},
}
