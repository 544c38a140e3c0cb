//go:build !ios && !android && (amd64 || arm64)

package ffshim

import (
	"unsafe"

	"github.com/obinnaokechukwu/ffshim/internal/bindings"
	"github.com/obinnaokechukwu/ffshim/internal/layout"
)

// CodecParameters wraps a native AVCodecParameters, typically owned by a
// stream.
type CodecParameters struct {
	ptr unsafe.Pointer
}

// WrapCodecParameters wraps an existing native codec parameters pointer.
func WrapCodecParameters(ptr unsafe.Pointer) *CodecParameters {
	return &CodecParameters{ptr: ptr}
}

// Pointer returns the underlying native pointer.
func (p *CodecParameters) Pointer() unsafe.Pointer {
	if p == nil {
		return nil
	}
	return p.ptr
}

func (p *CodecParameters) parLayout() (layout.CodecParameters, bool) {
	if p == nil || p.ptr == nil {
		return layout.CodecParameters{}, false
	}
	return layout.ForCodecParameters(bindings.AVCodecVersion() >> 16)
}

// Width returns the video width in pixels, or 0.
func (p *CodecParameters) Width() int {
	lo, ok := p.parLayout()
	if !ok {
		return 0
	}
	return int(readI32(p.ptr, lo.Width))
}

// Height returns the video height in pixels, or 0.
func (p *CodecParameters) Height() int {
	lo, ok := p.parLayout()
	if !ok {
		return 0
	}
	return int(readI32(p.ptr, lo.Height))
}

// Format returns the pixel format for video or sample format for audio,
// or -1 (the native "none" value) when unavailable.
func (p *CodecParameters) Format() int {
	lo, ok := p.parLayout()
	if !ok {
		return -1
	}
	return int(readI32(p.ptr, lo.Format))
}

// SampleRate returns the audio sample rate in Hz, or 0.
func (p *CodecParameters) SampleRate() int {
	lo, ok := p.parLayout()
	if !ok {
		return 0
	}
	return int(readI32(p.ptr, lo.SampleRate))
}

// Channels returns the audio channel count from the channel layout, or 0.
func (p *CodecParameters) Channels() int {
	lo, ok := p.parLayout()
	if !ok {
		return 0
	}
	// AVChannelLayout stores nb_channels right after the order enum.
	return int(readI32(p.ptr, lo.ChLayout+4))
}
