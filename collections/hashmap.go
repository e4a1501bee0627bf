package collections

// HashMap is an interface that represents a keys-only map. It is useful
// for tracking values that have already been seen, such as when removing
// duplicates from a list or checking a list for cycles.
type HashMap[T comparable] interface {
	// Store will store a key in the hash map.
	Store(key T)
	// Delete will delete a key from the hash map if it exists, and returns a bool of whether
	// the key existed and was deleted.
	Delete(key T) bool
	// Has returns a bool of whether the key exists in the hash map.
	Has(key T) bool
	// Length returns the length of the hash map
	Length() int
}

type hashMap[T comparable] map[T]struct{}

// NewHashMap returns a hash map containing the given keys.
func NewHashMap[T comparable](initial ...T) HashMap[T] {
	hm := make(hashMap[T], len(initial))
	for _, v := range initial {
		hm[v] = struct{}{}
	}
	return hm
}

// NewHashMapPreallocated returns an empty hash map with room for size keys.
func NewHashMapPreallocated[T comparable](size int) HashMap[T] {
	return make(hashMap[T], size)
}

func (hm hashMap[T]) Store(key T) {
	hm[key] = struct{}{}
}

func (hm hashMap[T]) Delete(key T) bool {
	_, exists := hm[key]
	if exists {
		delete(hm, key)
	}
	return exists
}

func (hm hashMap[T]) Has(key T) bool {
	_, ok := hm[key]
	return ok
}

func (hm hashMap[T]) Length() int {
	return len(hm)
}
