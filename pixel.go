package vframe

import "unsafe"

// Pixel is the constraint for plane element types. It is a closed set of
// exactly two kinds: uint8 for 8-bit content and uint16 for 9-16 bit
// content. Stride and byte-width arithmetic throughout the library assumes
// elements are exactly 1 or 2 bytes wide, so the set must never grow to
// arbitrary numeric types.
type Pixel interface {
	~uint8 | ~uint16
}

// bytesPerPixel returns the storage width of T in bytes (1 or 2).
func bytesPerPixel[T Pixel]() int {
	var zero T
	width := int(unsafe.Sizeof(zero))
	if width > 2 {
		// Unreachable with the closed Pixel set.
		panic("vframe: unsupported pixel byte width")
	}
	return width
}

// appendPixelLE appends the little-endian byte representation of pix:
// one byte for the 1-byte kind, two bytes for the 2-byte kind. This is
// the canonical external byte layout for all byte-oriented paths.
func appendPixelLE[T Pixel](dst []byte, pix T) []byte {
	if bytesPerPixel[T]() == 1 {
		return append(dst, byte(pix))
	}
	return append(dst, byte(pix), byte(uint16(pix)>>8))
}

// pixelFromLE decodes one element from its little-endian byte
// representation. src must hold at least bytesPerPixel[T]() bytes.
func pixelFromLE[T Pixel](src []byte) T {
	if bytesPerPixel[T]() == 1 {
		return T(src[0])
	}
	return T(uint16(src[0]) | uint16(src[1])<<8)
}
