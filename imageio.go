package vframe

import (
	"image/png"
	"io"

	"golang.org/x/image/tiff"
)

// Snapshot writers for inspecting plane contents during development.
// Each plane is written as a grayscale image; the frame-level layout
// (subsampling, padding) is not part of the output.

// WritePNG writes the visible pixels of an 8-bit plane to w as a
// grayscale PNG.
func WritePNG(w io.Writer, p *Plane[uint8]) error {
	return png.Encode(w, GrayImage(p))
}

// WriteTIFF writes the visible pixels of a 16-bit plane to w as an
// uncompressed 16-bit grayscale TIFF. TIFF is used here because 16-bit
// grayscale viewers handle it more uniformly than PNG.
func WriteTIFF(w io.Writer, p *Plane[uint16]) error {
	return tiff.Encode(w, Gray16Image(p), nil)
}
