package pool

import "sync"

var runeSlicePool = sync.Pool{
	New: func() any { return &[]rune{} },
}

// GetRuneSlice returns a zero-length rune slice with capacity of at least size.
//
// The caller must call the returned cleanup function once the slice is no
// longer referenced:
//
//	runes, cleanup := pool.GetRuneSlice(len(s))
//	defer cleanup()
func GetRuneSlice(size int) ([]rune, func()) {
	ptr, _ := runeSlicePool.Get().(*[]rune)
	slice := (*ptr)[:0]

	if cap(slice) < size {
		slice = make([]rune, 0, size)
	}
	*ptr = slice

	return slice, func() { runeSlicePool.Put(ptr) }
}
