package memctx

import "unsafe"

// Alloc returns a pointer to a T stored inside the arena with zeroed memory.
// The returned pointer is valid as long as the arena hasn't been released.
// Returns nil if the arena is nil or released.
func Alloc[T any](a *Arena) *T {
	var zero T
	b := a.Alloc(int(unsafe.Sizeof(zero)))
	if b == nil {
		return nil
	}
	clear(b)
	return (*T)(unsafe.Pointer(&b[0]))
}

// AllocUninitialized returns a *T located in the arena without zeroing
// memory. Faster than Alloc but the contents are undefined; initialize
// before use.
func AllocUninitialized[T any](a *Arena) *T {
	var zero T
	b := a.Alloc(int(unsafe.Sizeof(zero)))
	if b == nil {
		return nil
	}
	return (*T)(unsafe.Pointer(&b[0]))
}

// AllocSlice allocates a slice of n elements of type T inside the arena.
// The elements are not initialized (contain garbage data).
// Returns nil if n <= 0 or the arena is nil or released.
func AllocSlice[T any](a *Arena, n int) []T {
	if n <= 0 {
		return nil
	}
	var zero T
	b := a.Alloc(int(unsafe.Sizeof(zero)) * n)
	if b == nil {
		return nil
	}
	return unsafe.Slice((*T)(unsafe.Pointer(&b[0])), n)
}

// AllocSliceZeroed allocates a slice of n elements of type T with zeroed
// memory. Slower than AllocSlice but ensures clean initialization.
func AllocSliceZeroed[T any](a *Arena, n int) []T {
	s := AllocSlice[T](a, n)
	if s == nil {
		return nil
	}
	clear(s)
	return s
}
