package vframe

import "image"

// Interop with the standard library image package. These functions map
// plane and frame storage to the equivalent image types sample for
// sample; they never convert, scale, or otherwise interpret pixel
// values.

// GrayImage copies the visible pixels of an 8-bit plane into a new
// *image.Gray of the same dimensions.
func GrayImage(p *Plane[uint8]) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, p.Width(), p.Height()))
	y := 0
	for row := range p.Rows() {
		copy(img.Pix[y*img.Stride:], row)
		y++
	}
	return img
}

// Gray16Image copies the visible pixels of a 16-bit plane into a new
// *image.Gray16 of the same dimensions. image.Gray16 stores big-endian
// bytes, so this is a byte-order swap of the plane's little-endian
// external layout; the sample values are unchanged.
func Gray16Image(p *Plane[uint16]) *image.Gray16 {
	img := image.NewGray16(image.Rect(0, 0, p.Width(), p.Height()))
	y := 0
	for row := range p.Rows() {
		off := y * img.Stride
		for _, pix := range row {
			img.Pix[off] = byte(pix >> 8)
			img.Pix[off+1] = byte(pix)
			off += 2
		}
		y++
	}
	return img
}

// subsampleRatioForImage maps a ChromaSubsampling to the corresponding
// image.YCbCrSubsampleRatio.
func subsampleRatioForImage(s ChromaSubsampling) (image.YCbCrSubsampleRatio, bool) {
	switch s {
	case Yuv420:
		return image.YCbCrSubsampleRatio420, true
	case Yuv422:
		return image.YCbCrSubsampleRatio422, true
	case Yuv444:
		return image.YCbCrSubsampleRatio444, true
	default:
		return 0, false
	}
}

// subsamplingForImage maps an image.YCbCrSubsampleRatio back to a
// ChromaSubsampling.
func subsamplingForImage(r image.YCbCrSubsampleRatio) (ChromaSubsampling, bool) {
	switch r {
	case image.YCbCrSubsampleRatio420:
		return Yuv420, true
	case image.YCbCrSubsampleRatio422:
		return Yuv422, true
	case image.YCbCrSubsampleRatio444:
		return Yuv444, true
	default:
		return 0, false
	}
}

// YCbCrImage copies the visible pixels of an 8-bit frame into a new
// *image.YCbCr with the matching subsample ratio.
//
// Returns [ErrUnsupportedResolution] for monochrome frames, which have
// no YCbCr equivalent; use [GrayImage] on the luma plane instead.
func YCbCrImage(f *Frame[uint8]) (*image.YCbCr, error) {
	ratio, ok := subsampleRatioForImage(f.Subsampling)
	if !ok {
		return nil, ErrUnsupportedResolution
	}

	img := image.NewYCbCr(image.Rect(0, 0, f.Y.Width(), f.Y.Height()), ratio)
	copyPlaneTo(f.Y, img.Y, img.YStride)
	copyPlaneTo(f.U, img.Cb, img.CStride)
	copyPlaneTo(f.V, img.Cr, img.CStride)
	return img, nil
}

// copyPlaneTo copies a plane's visible rows into a packed byte buffer
// with the given stride.
func copyPlaneTo(p *Plane[uint8], dst []byte, stride int) {
	y := 0
	for row := range p.Rows() {
		copy(dst[y*stride:], row)
		y++
	}
}

// FrameFromYCbCr allocates a zero-padding 8-bit frame matching img and
// copies its pixel data in. The image's Y and C strides are honored, so
// row-padded images (e.g. from the jpeg decoder) ingest correctly. The
// image must have a zero-origin bounds rectangle, as produced by
// image.NewYCbCr or the standard decoders.
//
// Returns [ErrUnsupportedResolution] if the image uses a subsample
// ratio other than 4:2:0, 4:2:2, or 4:4:4, or if its dimensions are
// incompatible with that ratio.
func FrameFromYCbCr(img *image.YCbCr) (*Frame[uint8], error) {
	subsampling, ok := subsamplingForImage(img.SubsampleRatio)
	if !ok {
		return nil, ErrUnsupportedResolution
	}

	bounds := img.Bounds()
	f, err := BuildFrame[uint8](NewFrameBuilder(bounds.Dx(), bounds.Dy(), subsampling), 8)
	if err != nil {
		return nil, err
	}

	if err := copyImagePlane(f.Y, img.Y, img.YStride); err != nil {
		return nil, err
	}
	if err := copyImagePlane(f.U, img.Cb, img.CStride); err != nil {
		return nil, err
	}
	if err := copyImagePlane(f.V, img.Cr, img.CStride); err != nil {
		return nil, err
	}
	return f, nil
}

// copyImagePlane ingests one image plane, tolerating source buffers
// longer than stride * height (decoders often over-allocate to MCU
// multiples).
func copyImagePlane(p *Plane[uint8], src []byte, stride int) error {
	if stride < p.Width() {
		return &InvalidStrideError{Stride: stride, Width: p.Width()}
	}
	need := stride * p.Height()
	if len(src) < need {
		return &DataLengthError{Expected: need, Found: len(src)}
	}
	return p.CopyFromBytesWithStride(src[:need], stride)
}
