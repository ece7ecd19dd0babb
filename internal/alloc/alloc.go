// Package alloc provides aligned buffer allocation for plane data.
//
// The Go runtime only guarantees natural alignment for slice backing
// arrays, so this package over-allocates and re-slices to place the
// first element on an Alignment-byte boundary. SIMD kernels operating
// on plane rows rely on that placement.
package alloc

import "unsafe"

// Element is the set of storage types planes allocate. It mirrors the
// pixel element set: exactly 1-byte and 2-byte unsigned kinds.
type Element interface {
	~uint8 | ~uint16
}

// Slice returns a zero-filled slice of n elements whose backing storage
// starts on an Alignment-byte boundary. The returned slice has its
// capacity clipped to n so appends cannot silently grow into the
// alignment slack.
func Slice[T Element](n int) []T {
	if n <= 0 {
		return nil
	}

	var zero T
	elemSize := int(unsafe.Sizeof(zero))
	slack := int(Alignment) / elemSize

	raw := make([]T, n+slack)
	addr := uintptr(unsafe.Pointer(unsafe.SliceData(raw)))
	off := 0
	if rem := int(addr % Alignment); rem != 0 {
		off = (int(Alignment) - rem) / elemSize
	}
	return raw[off : off+n : off+n]
}

// IsAligned reports whether the first element of s sits on an
// Alignment-byte boundary. Empty slices are trivially aligned.
func IsAligned[T Element](s []T) bool {
	if len(s) == 0 {
		return true
	}
	return uintptr(unsafe.Pointer(unsafe.SliceData(s)))%Alignment == 0
}
