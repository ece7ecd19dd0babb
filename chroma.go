package vframe

// ChromaSubsampling specifies how chroma (color) information is sampled
// relative to luma (brightness) information in a YUV frame.
//
// Each format imposes constraints on valid frame dimensions: the luma
// width and height must be exactly divisible by the subsample ratio so
// that chroma dimensions come out as exact integers. The library never
// rounds; incompatible combinations are rejected.
type ChromaSubsampling uint8

const (
	// Yuv420 stores chroma at half width and half height. This is the
	// most common format in video compression.
	Yuv420 ChromaSubsampling = iota

	// Yuv422 stores chroma at half width and full height. Common in
	// professional video.
	Yuv422

	// Yuv444 stores chroma at full resolution.
	Yuv444

	// Monochrome has no chroma planes.
	Monochrome

	// subsamplingCount is the number of formats (for internal use).
	subsamplingCount
)

// HasChroma returns true if the format has chroma planes.
// It is false only for Monochrome.
func (s ChromaSubsampling) HasChroma() bool {
	return s != Monochrome
}

// SubsampleRatio returns the integer divisors applied to luma dimensions
// to obtain chroma dimensions. ok is false for Monochrome, which has no
// chroma planes. The ratios are always 1 or 2.
func (s ChromaSubsampling) SubsampleRatio() (ssX, ssY int, ok bool) {
	switch s {
	case Yuv420:
		return 2, 2, true
	case Yuv422:
		return 2, 1, true
	case Yuv444:
		return 1, 1, true
	default:
		return 0, 0, false
	}
}

// ChromaDimensions computes the dimensions of a chroma plane for the given
// luma dimensions. ok is false if the format has no chroma planes, or if
// either luma dimension is not exactly divisible by its subsample ratio
// (e.g. odd width for Yuv420). Silent rounding would desynchronize plane
// dimensions from the bitstream geometry, so the division must be exact.
func (s ChromaSubsampling) ChromaDimensions(lumaWidth, lumaHeight int) (w, h int, ok bool) {
	ssX, ssY, ok := s.SubsampleRatio()
	if !ok {
		return 0, 0, false
	}
	if lumaWidth%ssX != 0 || lumaHeight%ssY != 0 {
		return 0, 0, false
	}
	return lumaWidth / ssX, lumaHeight / ssY, true
}

// IsValid returns true if the value is a known subsampling format.
func (s ChromaSubsampling) IsValid() bool {
	return s < subsamplingCount
}

// String returns a string representation of the subsampling format.
func (s ChromaSubsampling) String() string {
	switch s {
	case Yuv420:
		return "Yuv420"
	case Yuv422:
		return "Yuv422"
	case Yuv444:
		return "Yuv444"
	case Monochrome:
		return "Monochrome"
	default:
		return "Unknown"
	}
}
