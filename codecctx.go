//go:build !ios && !android && (amd64 || arm64)

package ffshim

import (
	"unsafe"

	"github.com/obinnaokechukwu/ffshim/internal/bindings"
	"github.com/obinnaokechukwu/ffshim/internal/layout"
)

var avChannelLayoutDefault func(chLayout unsafe.Pointer, nbChannels int32)

// CodecContext wraps a native AVCodecContext. The context is owned by
// the caller; the wrapper reads and writes the configuration fields a
// transcoding setup touches before opening the codec.
type CodecContext struct {
	ptr unsafe.Pointer
}

// WrapCodecContext wraps an existing native codec context pointer.
func WrapCodecContext(ptr unsafe.Pointer) *CodecContext {
	return &CodecContext{ptr: ptr}
}

// Pointer returns the underlying native pointer.
func (c *CodecContext) Pointer() unsafe.Pointer {
	if c == nil {
		return nil
	}
	return c.ptr
}

func (c *CodecContext) ctxLayout() (layout.CodecContext, bool) {
	if c == nil || c.ptr == nil {
		return layout.CodecContext{}, false
	}
	return layout.ForCodecContext(bindings.AVCodecVersion() >> 16)
}

// Width returns the video width in pixels, or 0.
func (c *CodecContext) Width() int {
	lo, ok := c.ctxLayout()
	if !ok {
		return 0
	}
	return int(readI32(c.ptr, lo.Width))
}

// SetWidth sets the video width in pixels.
func (c *CodecContext) SetWidth(w int) error {
	lo, ok := c.ctxLayout()
	if !ok {
		return NewError(AVERROR_EINVAL, "set_width")
	}
	writeI32(c.ptr, lo.Width, int32(w))
	return nil
}

// Height returns the video height in pixels, or 0.
func (c *CodecContext) Height() int {
	lo, ok := c.ctxLayout()
	if !ok {
		return 0
	}
	return int(readI32(c.ptr, lo.Height))
}

// SetHeight sets the video height in pixels.
func (c *CodecContext) SetHeight(h int) error {
	lo, ok := c.ctxLayout()
	if !ok {
		return NewError(AVERROR_EINVAL, "set_height")
	}
	writeI32(c.ptr, lo.Height, int32(h))
	return nil
}

// PixelFormat returns the pixel format, or -1 (the native "none" value).
func (c *CodecContext) PixelFormat() int {
	lo, ok := c.ctxLayout()
	if !ok {
		return -1
	}
	return int(readI32(c.ptr, lo.PixFmt))
}

// SetPixelFormat sets the pixel format.
func (c *CodecContext) SetPixelFormat(f int) error {
	lo, ok := c.ctxLayout()
	if !ok {
		return NewError(AVERROR_EINVAL, "set_pixel_format")
	}
	writeI32(c.ptr, lo.PixFmt, int32(f))
	return nil
}

// SampleFormat returns the sample format, or -1 (the native "none"
// value).
func (c *CodecContext) SampleFormat() int {
	lo, ok := c.ctxLayout()
	if !ok {
		return -1
	}
	return int(readI32(c.ptr, lo.SampleFmt))
}

// SetSampleFormat sets the sample format.
func (c *CodecContext) SetSampleFormat(f int) error {
	lo, ok := c.ctxLayout()
	if !ok {
		return NewError(AVERROR_EINVAL, "set_sample_format")
	}
	writeI32(c.ptr, lo.SampleFmt, int32(f))
	return nil
}

// SampleRate returns the audio sample rate in Hz, or 0.
func (c *CodecContext) SampleRate() int {
	lo, ok := c.ctxLayout()
	if !ok {
		return 0
	}
	return int(readI32(c.ptr, lo.SampleRate))
}

// SetSampleRate sets the audio sample rate in Hz.
func (c *CodecContext) SetSampleRate(rate int) error {
	lo, ok := c.ctxLayout()
	if !ok {
		return NewError(AVERROR_EINVAL, "set_sample_rate")
	}
	writeI32(c.ptr, lo.SampleRate, int32(rate))
	return nil
}

// TimeBase returns the codec time base, or the zero Rational.
func (c *CodecContext) TimeBase() Rational {
	lo, ok := c.ctxLayout()
	if !ok {
		return Rational{}
	}
	return readQ(c.ptr, lo.TimeBase)
}

// SetTimeBase sets the codec time base.
func (c *CodecContext) SetTimeBase(tb Rational) error {
	lo, ok := c.ctxLayout()
	if !ok {
		return NewError(AVERROR_EINVAL, "set_time_base")
	}
	writeQ(c.ptr, lo.TimeBase, tb)
	return nil
}

// FrameRate returns the nominal frame rate, or the zero Rational.
func (c *CodecContext) FrameRate() Rational {
	lo, ok := c.ctxLayout()
	if !ok {
		return Rational{}
	}
	return readQ(c.ptr, lo.Framerate)
}

// SetFrameRate sets the nominal frame rate.
func (c *CodecContext) SetFrameRate(fr Rational) error {
	lo, ok := c.ctxLayout()
	if !ok {
		return NewError(AVERROR_EINVAL, "set_frame_rate")
	}
	writeQ(c.ptr, lo.Framerate, fr)
	return nil
}

// Channels returns the audio channel count from the channel layout, or 0.
func (c *CodecContext) Channels() int {
	lo, ok := c.ctxLayout()
	if !ok {
		return 0
	}
	return int(readI32(c.ptr, lo.ChLayout+4))
}

// SetChannelLayoutDefault sets the channel layout to the native default
// order for the given channel count (av_channel_layout_default).
func (c *CodecContext) SetChannelLayoutDefault(channels int) error {
	lo, ok := c.ctxLayout()
	if !ok {
		return NewError(AVERROR_EINVAL, "set_channel_layout_default")
	}
	if avChannelLayoutDefault == nil {
		return bindings.ErrNotLoaded
	}
	avChannelLayoutDefault(unsafe.Add(c.ptr, lo.ChLayout), int32(channels))
	return nil
}
