package vframe

import (
	"iter"

	"github.com/gogpu/vframe/internal/alloc"
)

// Plane is a two-dimensional plane of pixel data with optional padding.
//
// Plane[T] represents a rectangular array of pixels of type T (uint8 or
// uint16). The visible width x height rectangle is surrounded by optional
// padding pixels on all four sides, which video codec algorithms use to
// read beyond the frame boundary without special-casing edges.
//
// # Memory Layout
//
// All pixels, padding included, live in one contiguous buffer aligned to
// a SIMD-friendly boundary (64 bytes on general-purpose targets, 8 bytes
// on wasm). Rows are Stride elements apart; the first visible pixel sits
// at [Plane.DataOrigin]. The buffer never resizes after creation.
//
// # Accessing Pixels
//
// The default API works on the visible area only:
//   - [Plane.Row]: one row as a slice
//   - [Plane.Rows]: iterate over all visible rows
//   - [Plane.Pixels]: iterate over all visible pixels in row-major order
//   - [Plane.Pixel] / [Plane.SetPixel]: individual pixel access
//
// Planes are only created through [FrameBuilder], which validates the
// geometry before allocation. The iteration paths rely on that check to
// slice the buffer without re-validating bounds on every row.
//
// Thread safety: a Plane may be read concurrently by multiple readers.
// Mutating operations (SetPixel, the Copy* methods, writes through row
// slices) require exclusive access.
type Plane[T Pixel] struct {
	data     []T
	geometry PlaneGeometry
}

// newPlane creates a plane with the given geometry, initialized with
// zero-valued pixels. geometry must have passed validate.
func newPlane[T Pixel](geometry PlaneGeometry) *Plane[T] {
	return &Plane[T]{
		data:     alloc.Slice[T](geometry.bufferLen()),
		geometry: geometry,
	}
}

// Width returns the visible width of the plane in pixels. Always positive.
func (p *Plane[T]) Width() int {
	return p.geometry.Width
}

// Height returns the visible height of the plane in pixels. Always positive.
func (p *Plane[T]) Height() int {
	return p.geometry.Height
}

// Row returns the visible pixels of the row at vertical index y, or nil
// if y is out of range. The slice aliases plane storage: writes through
// it modify the plane. Its capacity is clipped to the visible width, so
// it cannot be grown into the padding.
func (p *Plane[T]) Row(y int) []T {
	if y < 0 || y >= p.geometry.Height {
		return nil
	}
	start := p.geometry.Origin() + y*p.geometry.Stride
	end := start + p.geometry.Width
	return p.data[start:end:end]
}

// Rows returns an iterator over the visible pixels of each row in the
// plane, from top to bottom. Each yielded slice has exactly Width
// elements and aliases plane storage, so ranging over Rows is also the
// way to mutate the plane row by row. Padding is skipped entirely.
//
// This uses Go 1.25+ iter.Seq for zero-allocation iteration with a
// for-range loop. A fresh call restarts from the top row.
func (p *Plane[T]) Rows() iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		off := p.geometry.Origin()
		for y := 0; y < p.geometry.Height; y++ {
			end := off + p.geometry.Width
			if !yield(p.data[off:end:end]) {
				return
			}
			off += p.geometry.Stride
		}
	}
}

// Pixels returns an iterator over the visible pixels in the plane, in
// row-major order. A fresh call restarts from the first pixel.
func (p *Plane[T]) Pixels() iter.Seq[T] {
	return func(yield func(T) bool) {
		for row := range p.Rows() {
			for _, pix := range row {
				if !yield(pix) {
					return
				}
			}
		}
	}
}

// pixelIndex maps (x, y) to a linear buffer index, reporting false when
// the coordinate falls outside the buffer. The row bound is checked by
// division before multiplying, so oversized coordinates fail cleanly
// instead of wrapping the index arithmetic.
func (p *Plane[T]) pixelIndex(x, y int) (int, bool) {
	if x < 0 || y < 0 || x >= len(p.data) {
		return 0, false
	}
	stride := p.geometry.Stride
	if y > (len(p.data)-1)/stride {
		return 0, false
	}
	index := p.geometry.Origin() + stride*y + x
	if index < 0 || index >= len(p.data) {
		return 0, false
	}
	return index, true
}

// Pixel returns the value of the pixel at the given (x, y) coordinate.
// ok is false if the computed index falls outside the plane's buffer.
//
// This is a low-level accessor: the bounds check is against the whole
// buffer including padding, not against the visible area. Pixel(Width(), 0)
// may therefore still return a defined value from padding or the next
// row's storage. Use [Plane.Rows] or [Plane.Pixels] when visible-area
// correctness matters.
func (p *Plane[T]) Pixel(x, y int) (pix T, ok bool) {
	index, ok := p.pixelIndex(x, y)
	if !ok {
		return pix, false
	}
	return p.data[index], true
}

// SetPixel sets the pixel at the given (x, y) coordinate and reports
// whether the write happened. Like [Plane.Pixel], the bounds check is
// against the whole buffer, not the visible area.
func (p *Plane[T]) SetPixel(x, y int, pix T) bool {
	index, ok := p.pixelIndex(x, y)
	if !ok {
		return false
	}
	p.data[index] = pix
	return true
}

// ByteData returns an iterator over the visible pixel data as bytes, in
// row-major order. The 1-byte kind emits one byte per pixel; the 2-byte
// kind emits two little-endian bytes per pixel. Rows are tightly packed
// with no interior padding. This layout is the canonical external byte
// representation shared with the CopyFromBytes* methods.
func (p *Plane[T]) ByteData() iter.Seq[byte] {
	byteWidth := bytesPerPixel[T]()
	return func(yield func(byte) bool) {
		for row := range p.Rows() {
			for _, pix := range row {
				if !yield(byte(pix)) {
					return
				}
				if byteWidth == 2 {
					if !yield(byte(uint16(pix) >> 8)) {
						return
					}
				}
			}
		}
	}
}

// AppendByteData appends the plane's visible pixel data to dst in the
// [Plane.ByteData] layout and returns the extended slice.
func (p *Plane[T]) AppendByteData(dst []byte) []byte {
	byteWidth := bytesPerPixel[T]()
	if need := p.geometry.Width * p.geometry.Height * byteWidth; cap(dst)-len(dst) < need {
		grown := make([]byte, len(dst), len(dst)+need)
		copy(grown, dst)
		dst = grown
	}
	for row := range p.Rows() {
		for _, pix := range row {
			dst = appendPixelLE(dst, pix)
		}
	}
	return dst
}

// CopyFromSlice copies src into the plane's visible pixels in row-major
// order. Padding is left untouched.
//
// Returns a [DataLengthError] if len(src) does not equal Width * Height.
func (p *Plane[T]) CopyFromSlice(src []T) error {
	pixelCount := p.geometry.Width * p.geometry.Height
	if len(src) != pixelCount {
		return &DataLengthError{Expected: pixelCount, Found: len(src)}
	}

	for row := range p.Rows() {
		copy(row, src[:p.geometry.Width])
		src = src[p.geometry.Width:]
	}
	return nil
}

// CopyFromBytes copies raw byte data into the plane's visible pixels.
// This accepts what decoders typically hand out even for high-bit-depth
// content: a []byte with two little-endian bytes per pixel for the
// 2-byte kind, or one byte per pixel for the 1-byte kind.
//
// Returns a [DataLengthError] if len(src) does not equal
// Width * Height * bytes-per-pixel.
func (p *Plane[T]) CopyFromBytes(src []byte) error {
	return p.CopyFromBytesWithStride(src, p.geometry.Width)
}

// CopyFromBytesWithStride copies raw byte data whose rows are
// inputStride pixels apart into the plane's visible pixels. This is the
// primary ingestion path for decoder and demuxer output, which is often
// row-padded and always little-endian regardless of host byte order.
// The trailing inputStride - Width pixels of every input row are skipped.
//
// Returns an [InvalidStrideError] if inputStride is smaller than the
// visible width, or a [DataLengthError] if len(src) does not equal
// inputStride * Height * bytes-per-pixel.
func (p *Plane[T]) CopyFromBytesWithStride(src []byte, inputStride int) error {
	byteWidth := bytesPerPixel[T]()
	width := p.geometry.Width

	if inputStride < width {
		return &InvalidStrideError{Stride: inputStride, Width: width}
	}
	byteCount := inputStride * p.geometry.Height * byteWidth
	if len(src) != byteCount {
		return &DataLengthError{Expected: byteCount, Found: len(src)}
	}

	rowIdx := 0
	if byteWidth == 1 {
		for row := range p.Rows() {
			srcRow := src[rowIdx*inputStride:][:width]
			for x, b := range srcRow {
				row[x] = T(b)
			}
			rowIdx++
		}
		return nil
	}

	for row := range p.Rows() {
		srcRow := src[rowIdx*inputStride*2:][:width*2]
		for x := range row {
			row[x] = pixelFromLE[T](srcRow[x*2:])
		}
		rowIdx++
	}
	return nil
}

// Fill sets every pixel in the plane, padding included, to pix.
func (p *Plane[T]) Fill(pix T) {
	for i := range p.data {
		p.data[i] = pix
	}
}

// Clear sets every pixel in the plane, padding included, to zero.
func (p *Plane[T]) Clear() {
	clear(p.data)
}

// Clone creates a deep copy of the plane. The clone shares no storage
// with the original and may be handed to another goroutine without
// coordination.
func (p *Plane[T]) Clone() *Plane[T] {
	c := newPlane[T](p.geometry)
	copy(c.data, p.data)
	return c
}

// Geometry returns the geometry of the plane.
//
// This is a low-level API intended only for functions that require
// access to the padding.
func (p *Plane[T]) Geometry() PlaneGeometry {
	return p.geometry
}

// Data returns the plane's raw data buffer, including padding.
// Writes through the returned slice modify the plane.
//
// This is a low-level API intended only for functions that require
// access to the padding.
func (p *Plane[T]) Data() []T {
	return p.data
}

// DataOrigin returns the index of the first visible pixel in [Plane.Data].
//
// This is a low-level API intended only for functions that require
// access to the padding.
func (p *Plane[T]) DataOrigin() int {
	return p.geometry.Origin()
}
