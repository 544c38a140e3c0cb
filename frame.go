//go:build !ios && !android && (amd64 || arm64)

package ffshim

import (
	"unsafe"

	"github.com/obinnaokechukwu/ffshim/internal/bindings"
	"github.com/obinnaokechukwu/ffshim/internal/layout"
)

// ColorRange represents the MPEG vs JPEG YUV range (AVColorRange).
type ColorRange int32

const (
	ColorRangeUnspecified ColorRange = 0
	ColorRangeMPEG        ColorRange = 1 // Limited range, 219*2^(n-8)
	ColorRangeJPEG        ColorRange = 2 // Full range, 2^n-1
)

// ColorPrimaries represents chromaticity coordinates of the source
// primaries (AVColorPrimaries).
type ColorPrimaries int32

const (
	ColorPrimariesBT709       ColorPrimaries = 1
	ColorPrimariesUnspecified ColorPrimaries = 2
	ColorPrimariesBT470BG     ColorPrimaries = 5
	ColorPrimariesSMPTE170M   ColorPrimaries = 6
	ColorPrimariesBT2020      ColorPrimaries = 9
)

// ColorTransfer represents the color transfer characteristic
// (AVColorTransferCharacteristic).
type ColorTransfer int32

const (
	ColorTransferBT709       ColorTransfer = 1
	ColorTransferUnspecified ColorTransfer = 2
	ColorTransferSMPTE170M   ColorTransfer = 6
	ColorTransferBT2020_10   ColorTransfer = 14
	ColorTransferSMPTE2084   ColorTransfer = 16 // PQ, HDR10
	ColorTransferARIB_B67    ColorTransfer = 18 // HLG
)

// ColorSpace represents the YUV colorspace type (AVColorSpace).
type ColorSpace int32

const (
	ColorSpaceRGB         ColorSpace = 0
	ColorSpaceBT709       ColorSpace = 1
	ColorSpaceUnspecified ColorSpace = 2
	ColorSpaceBT470BG     ColorSpace = 5
	ColorSpaceSMPTE170M   ColorSpace = 6
	ColorSpaceBT2020NCL   ColorSpace = 9
)

// ColorSpec bundles the four color metadata fields of a frame.
type ColorSpec struct {
	Range     ColorRange
	Primaries ColorPrimaries
	Transfer  ColorTransfer
	Space     ColorSpace
}

// A Frame wraps a native AVFrame. Only the color metadata fields are
// exposed; everything else stays behind the opaque pointer.
type Frame struct {
	ptr unsafe.Pointer
}

// WrapFrame wraps an existing native frame pointer.
func WrapFrame(ptr unsafe.Pointer) *Frame {
	return &Frame{ptr: ptr}
}

// Pointer returns the underlying native pointer.
func (f *Frame) Pointer() unsafe.Pointer {
	if f == nil {
		return nil
	}
	return f.ptr
}

func (f *Frame) frameLayout() (layout.Frame, bool) {
	if f == nil || f.ptr == nil {
		return layout.Frame{}, false
	}
	return layout.ForFrame(bindings.AVUtilVersion() >> 16)
}

// ColorSpec reads the frame's color metadata. A nil frame or unknown
// library version yields all-unspecified values.
func (f *Frame) ColorSpec() ColorSpec {
	lo, ok := f.frameLayout()
	if !ok {
		return ColorSpec{
			Range:     ColorRangeUnspecified,
			Primaries: ColorPrimariesUnspecified,
			Transfer:  ColorTransferUnspecified,
			Space:     ColorSpaceUnspecified,
		}
	}
	return ColorSpec{
		Range:     ColorRange(readI32(f.ptr, lo.ColorRange)),
		Primaries: ColorPrimaries(readI32(f.ptr, lo.ColorPrimaries)),
		Transfer:  ColorTransfer(readI32(f.ptr, lo.ColorTransfer)),
		Space:     ColorSpace(readI32(f.ptr, lo.ColorSpace)),
	}
}

// SetColorSpec writes the frame's color metadata. A nil frame or unknown
// library version is a no-op and reports an error.
func (f *Frame) SetColorSpec(spec ColorSpec) error {
	lo, ok := f.frameLayout()
	if !ok {
		return NewError(AVERROR_EINVAL, "set_color_spec")
	}
	writeI32(f.ptr, lo.ColorRange, int32(spec.Range))
	writeI32(f.ptr, lo.ColorPrimaries, int32(spec.Primaries))
	writeI32(f.ptr, lo.ColorTransfer, int32(spec.Transfer))
	writeI32(f.ptr, lo.ColorSpace, int32(spec.Space))
	return nil
}
