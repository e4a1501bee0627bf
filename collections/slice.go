package collections

// CopySlice will create a copy of the given slice.
func CopySlice[T any](src []T) []T {
	if src == nil {
		return nil
	}
	dst := make([]T, len(src))
	copy(dst, src)
	return dst
}

// FilterSlice creates a new slice of elements that meet a given condition function,
// in their original order.
func FilterSlice[T any](in []T, filterFunc func(value T) (include bool)) []T {
	if in == nil {
		return nil
	}
	r := []T{}
	for _, v := range in {
		if filterFunc(v) {
			r = append(r, v)
		}
	}
	return r
}

// SliceEqual checks whether two slices hold equal values in the same order.
// A nil slice and an empty slice are equal.
func SliceEqual[T comparable](in1 []T, in2 []T) bool {
	if len(in1) != len(in2) {
		return false
	}
	for i := range in1 {
		if in1[i] != in2[i] {
			return false
		}
	}
	return true
}
