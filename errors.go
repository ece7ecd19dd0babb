package vframe

import (
	"errors"
	"fmt"
)

// Common errors for frame and plane construction.
var (
	// ErrInvalidDimensions is returned when a frame width, height, or
	// padding value is out of range (width and height must be positive,
	// padding must be non-negative).
	ErrInvalidDimensions = errors.New("vframe: invalid dimensions")

	// ErrDataTypeMismatch is returned when the pixel element type does not
	// match the requested bit depth: 8-bit frames must use uint8, while
	// 9-16 bit frames must use uint16.
	ErrDataTypeMismatch = errors.New("vframe: bit depth did not match requested data type")

	// ErrUnsupportedResolution is returned when frame dimensions or padding
	// are incompatible with the chroma subsampling format. For example,
	// Yuv420 requires even width and height.
	ErrUnsupportedResolution = errors.New("vframe: selected chroma subsampling does not support odd resolutions")
)

// DataLengthError is returned by copy operations when the provided source
// buffer does not match the required element or byte count.
type DataLengthError struct {
	// Expected is the required source length.
	Expected int
	// Found is the actual length of the provided source.
	Found int
}

func (e *DataLengthError) Error() string {
	return fmt.Sprintf("vframe: data length mismatch, expected %d, found %d", e.Expected, e.Found)
}

// UnsupportedBitDepthError is returned when building a frame with a bit
// depth outside the supported 8-16 range.
type UnsupportedBitDepthError struct {
	// Found is the requested bit depth which triggered the error.
	Found int
}

func (e *UnsupportedBitDepthError) Error() string {
	return fmt.Sprintf("vframe: only 8-16 bit frame data is supported, tried to create %d bit frame", e.Found)
}

// InvalidStrideError is returned when a caller-supplied input row stride is
// smaller than the visible width of the destination plane.
type InvalidStrideError struct {
	// Stride is the stride which triggered the error.
	Stride int
	// Width is the visible width of the plane.
	Width int
}

func (e *InvalidStrideError) Error() string {
	return fmt.Sprintf("vframe: provided stride %d was less than the visible width %d", e.Stride, e.Width)
}
