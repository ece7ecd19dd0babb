package vframe

import "math"

// PlaneGeometry describes the layout of a plane's data buffer: the visible
// dimensions and the padding on all four sides.
//
// Stride is the number of elements per stored row, including padding. For
// planes produced by [FrameBuilder] it always equals
// Width + PadLeft + PadRight; a geometry assembled by other means must
// still satisfy Stride >= Width.
//
// This is a low-level type intended for functions that require access to
// the padding; the default Plane API hides it entirely.
type PlaneGeometry struct {
	// Width of the visible area in pixels. Always positive.
	Width int
	// Height of the visible area in pixels. Always positive.
	Height int
	// Stride is the number of pixels per row in the buffer, including
	// padding. Always positive and >= Width.
	Stride int
	// PadLeft is the number of padding pixels on the left side.
	PadLeft int
	// PadRight is the number of padding pixels on the right side.
	PadRight int
	// PadTop is the number of padding pixels on the top.
	PadTop int
	// PadBottom is the number of padding pixels on the bottom.
	PadBottom int
}

// Origin returns the linear index of the first visible pixel in the
// plane's data buffer.
func (g PlaneGeometry) Origin() int {
	return g.Stride*g.PadTop + g.PadLeft
}

// storedRows returns the total number of stored rows, including padding.
func (g PlaneGeometry) storedRows() int {
	return g.Height + g.PadTop + g.PadBottom
}

// bufferLen returns the required data buffer length in elements.
func (g PlaneGeometry) bufferLen() int {
	return g.Stride * g.storedRows()
}

// validate reports whether the geometry can describe a real buffer.
// Every Plane is created through this check, which is what lets the
// iteration paths slice the buffer without further bounds arithmetic.
func (g PlaneGeometry) validate() error {
	if g.Width < 1 || g.Height < 1 || g.Stride < 1 {
		return ErrInvalidDimensions
	}
	if g.PadLeft < 0 || g.PadRight < 0 || g.PadTop < 0 || g.PadBottom < 0 {
		return ErrInvalidDimensions
	}
	if g.Stride < g.Width {
		return &InvalidStrideError{Stride: g.Stride, Width: g.Width}
	}
	// The buffer length arithmetic must not wrap: a wrapped length would
	// allocate a buffer smaller than the geometry describes, and the
	// iteration paths slice by this geometry without re-checking.
	if g.PadTop > math.MaxInt-g.Height || g.Height+g.PadTop > math.MaxInt-g.PadBottom {
		return ErrInvalidDimensions
	}
	if g.Stride > math.MaxInt/g.storedRows() {
		return ErrInvalidDimensions
	}
	return nil
}
