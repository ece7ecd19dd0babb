// Package vframe provides type-safe buffers for multi-plane video frames.
//
// # Overview
//
// vframe manages the storage and shape of raw YUV pixel data for video
// encoding and decoding pipelines. A [Frame] owns one luma plane and,
// depending on its [ChromaSubsampling], zero or two chroma planes. Each
// [Plane] stores its pixels in a single contiguous, SIMD-aligned buffer
// with optional hidden padding around the visible rectangle, so codec
// algorithms that read past frame borders never need a separate copy.
//
// The library manages pixel storage only. It never interprets pixel
// values: color conversion, filtering, resampling, and compression are
// out of scope.
//
// # Quick Start
//
//	import "github.com/gogpu/vframe"
//
//	// Describe the frame layout.
//	b := vframe.NewFrameBuilder(1920, 1080, vframe.Yuv420).
//		LumaPaddingLeft(16).
//		LumaPaddingRight(16).
//		LumaPaddingTop(16).
//		LumaPaddingBottom(16)
//
//	// Allocate an 8-bit frame. Chroma geometry and padding are derived
//	// from the luma plane by the subsampling ratio.
//	frame, err := vframe.BuildFrame[uint8](b, 8)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Fill the luma plane row by row.
//	for row := range frame.Y.Rows() {
//		for x := range row {
//			row[x] = 128
//		}
//	}
//
// # Pixel Types
//
// Planes are generic over exactly two element types: uint8 for 8-bit
// content and uint16 for 9-16 bit content. The bit depth passed to
// [BuildFrame] must match the element type, and the library validates
// the combination at build time.
//
// # Visible Area vs. Padding
//
// The default API exposes only the visible width x height rectangle.
// [Plane.Rows], [Plane.Pixels], and [Plane.Row] skip padding entirely.
// Low-level access to the padded buffer is available through
// [Plane.Geometry], [Plane.Data], and [Plane.DataOrigin] for border-
// dependent algorithms; see their documentation before using them.
//
// # Architecture
//
// The library is organized into:
//   - Public API: Frame, FrameBuilder, Plane, PlaneGeometry, ChromaSubsampling
//   - Internal: alloc (aligned buffer allocation)
package vframe
