package vframe

import (
	"iter"
	"math"
)

// Frame is a raw multi-plane video frame.
//
// A frame owns a full-resolution luma plane and, unless its subsampling
// is [Monochrome], two independently-allocated chroma planes at the
// resolution derived from the subsampling ratio. The fields are public
// and directly inspectable; the planes themselves enforce their own
// invariants.
//
// Frames are created through [FrameBuilder] and [BuildFrame] only, and
// are immutable in shape after creation: planes are never added,
// removed, or resized. Pixel contents are mutated through the plane
// accessors.
type Frame[T Pixel] struct {
	// Y is the luma plane. Never nil.
	Y *Plane[T]
	// U is the first chroma plane, or nil for monochrome frames.
	U *Plane[T]
	// V is the second chroma plane, or nil for monochrome frames.
	V *Plane[T]
	// Subsampling relates the chroma planes to the luma plane.
	Subsampling ChromaSubsampling
	// BitDepth is the number of meaningful bits per sample, in [8, 16].
	BitDepth int
}

// Planes returns an iterator over the frame's planes in Y, U, V order,
// skipping nil chroma planes. Monochrome frames yield only the luma
// plane.
func (f *Frame[T]) Planes() iter.Seq[*Plane[T]] {
	return func(yield func(*Plane[T]) bool) {
		if !yield(f.Y) {
			return
		}
		if f.U != nil && !yield(f.U) {
			return
		}
		if f.V != nil {
			yield(f.V)
		}
	}
}

// Clone creates a deep copy of the frame. The clone shares no storage
// with the original and may be handed to another goroutine without
// coordination.
func (f *Frame[T]) Clone() *Frame[T] {
	c := &Frame[T]{
		Y:           f.Y.Clone(),
		Subsampling: f.Subsampling,
		BitDepth:    f.BitDepth,
	}
	if f.U != nil {
		c.U = f.U.Clone()
	}
	if f.V != nil {
		c.V = f.V.Clone()
	}
	return c
}

// FrameBuilder accumulates the layout parameters for a frame: visible
// dimensions, chroma subsampling, and luma padding on each side
// (default 0). Call [BuildFrame] to validate the configuration and
// allocate the planes.
//
// The builder holds plain configuration and performs no validation
// itself; the same builder may be passed to [BuildFrame] repeatedly,
// including with different element types or bit depths, and each call
// re-validates from scratch.
type FrameBuilder struct {
	width       int
	height      int
	subsampling ChromaSubsampling

	padLeft   int
	padRight  int
	padTop    int
	padBottom int
}

// NewFrameBuilder returns a builder for a frame with the given visible
// dimensions and chroma subsampling, with zero padding on all sides.
func NewFrameBuilder(width, height int, subsampling ChromaSubsampling) *FrameBuilder {
	return &FrameBuilder{
		width:       width,
		height:      height,
		subsampling: subsampling,
	}
}

// LumaPaddingLeft sets the left padding of the luma plane in pixels.
func (b *FrameBuilder) LumaPaddingLeft(pixels int) *FrameBuilder {
	b.padLeft = pixels
	return b
}

// LumaPaddingRight sets the right padding of the luma plane in pixels.
func (b *FrameBuilder) LumaPaddingRight(pixels int) *FrameBuilder {
	b.padRight = pixels
	return b
}

// LumaPaddingTop sets the top padding of the luma plane in pixels.
func (b *FrameBuilder) LumaPaddingTop(pixels int) *FrameBuilder {
	b.padTop = pixels
	return b
}

// LumaPaddingBottom sets the bottom padding of the luma plane in pixels.
func (b *FrameBuilder) LumaPaddingBottom(pixels int) *FrameBuilder {
	b.padBottom = pixels
	return b
}

// BuildFrame validates the builder's configuration for the element type
// T and the given bit depth, allocates the planes, and returns the
// assembled frame. This is the only way to obtain a [Frame] or a
// [Plane]; centralizing the checks here is what lets plane iteration
// skip per-access bounds arithmetic.
//
// Chroma padding is derived from luma padding by the subsampling ratio
// rather than accepted independently, keeping the border regions of all
// planes in registration for border-dependent algorithms. Luma padding
// that does not divide evenly by the ratio is rejected, never rounded.
//
// BuildFrame is a top-level function rather than a method because Go
// methods cannot introduce type parameters.
//
// Errors, first failing check wins:
//   - [ErrInvalidDimensions]: width or height < 1, or negative padding
//   - [UnsupportedBitDepthError]: bit depth outside [8, 16]
//   - [ErrDataTypeMismatch]: uint8 with depth != 8, or uint16 with depth == 8
//   - [ErrUnsupportedResolution]: dimensions or padding not divisible by
//     the subsampling ratio
func BuildFrame[T Pixel](b *FrameBuilder, bitDepth int) (*Frame[T], error) {
	if b.width < 1 || b.height < 1 {
		return nil, ErrInvalidDimensions
	}
	if b.padLeft < 0 || b.padRight < 0 || b.padTop < 0 || b.padBottom < 0 {
		return nil, ErrInvalidDimensions
	}
	// The luma stride sum must not wrap before validate can see it.
	if b.padLeft > math.MaxInt-b.width || b.width+b.padLeft > math.MaxInt-b.padRight {
		return nil, ErrInvalidDimensions
	}
	if bitDepth < 8 || bitDepth > 16 {
		return nil, &UnsupportedBitDepthError{Found: bitDepth}
	}
	if byteWidth := bytesPerPixel[T](); (byteWidth == 1) != (bitDepth == 8) {
		return nil, ErrDataTypeMismatch
	}

	lumaGeometry := PlaneGeometry{
		Width:     b.width,
		Height:    b.height,
		Stride:    b.width + b.padLeft + b.padRight,
		PadLeft:   b.padLeft,
		PadRight:  b.padRight,
		PadTop:    b.padTop,
		PadBottom: b.padBottom,
	}
	if err := lumaGeometry.validate(); err != nil {
		return nil, err
	}

	if !b.subsampling.HasChroma() {
		f := &Frame[T]{
			Y:           newPlane[T](lumaGeometry),
			Subsampling: b.subsampling,
			BitDepth:    bitDepth,
		}
		logBuild(b, bitDepth, f.Y.geometry, PlaneGeometry{})
		return f, nil
	}

	chromaWidth, chromaHeight, ok := b.subsampling.ChromaDimensions(b.width, b.height)
	if !ok {
		return nil, ErrUnsupportedResolution
	}

	ssX, ssY, _ := b.subsampling.SubsampleRatio()
	if b.padLeft%ssX != 0 || b.padRight%ssX != 0 || b.padTop%ssY != 0 || b.padBottom%ssY != 0 {
		return nil, ErrUnsupportedResolution
	}

	chromaPadLeft := b.padLeft / ssX
	chromaPadRight := b.padRight / ssX
	chromaGeometry := PlaneGeometry{
		Width:     chromaWidth,
		Height:    chromaHeight,
		Stride:    chromaWidth + chromaPadLeft + chromaPadRight,
		PadLeft:   chromaPadLeft,
		PadRight:  chromaPadRight,
		PadTop:    b.padTop / ssY,
		PadBottom: b.padBottom / ssY,
	}
	if err := chromaGeometry.validate(); err != nil {
		return nil, err
	}

	f := &Frame[T]{
		Y:           newPlane[T](lumaGeometry),
		U:           newPlane[T](chromaGeometry),
		V:           newPlane[T](chromaGeometry),
		Subsampling: b.subsampling,
		BitDepth:    bitDepth,
	}
	logBuild(b, bitDepth, f.Y.geometry, chromaGeometry)
	return f, nil
}

// logBuild emits a debug record for a successful allocation.
func logBuild(b *FrameBuilder, bitDepth int, luma, chroma PlaneGeometry) {
	Logger().Debug("vframe: allocated frame",
		"width", b.width,
		"height", b.height,
		"subsampling", b.subsampling.String(),
		"bit_depth", bitDepth,
		"luma_stride", luma.Stride,
		"chroma_stride", chroma.Stride,
	)
}
