//go:build !ios && !android && (amd64 || arm64)

package ffshim

import (
	"unsafe"

	"github.com/obinnaokechukwu/ffshim/internal/bindings"
	"github.com/obinnaokechukwu/ffshim/internal/layout"
)

// A FormatContext wraps a native AVFormatContext. The native context is
// owned by the caller (or by FFmpeg code that created it); the wrapper
// only reads and writes fields through the version-keyed layout tables,
// so it stays valid across FFmpeg minor releases without recompiling
// against headers.
type FormatContext struct {
	ptr unsafe.Pointer
}

// WrapFormatContext wraps an existing native format context pointer.
func WrapFormatContext(ptr unsafe.Pointer) *FormatContext {
	return &FormatContext{ptr: ptr}
}

// Pointer returns the underlying native pointer.
func (c *FormatContext) Pointer() unsafe.Pointer {
	if c == nil {
		return nil
	}
	return c.ptr
}

// formatLayout returns the field table for the loaded libavformat, or
// false when the context is nil, FFmpeg is not loaded, or the major
// version is unknown.
func (c *FormatContext) formatLayout() (layout.FormatContext, bool) {
	if c == nil || c.ptr == nil {
		return layout.FormatContext{}, false
	}
	return layout.ForFormatContext(bindings.AVFormatVersion() >> 16)
}

// IO returns the context's byte I/O context (the pb field), or nil.
func (c *FormatContext) IO() *IOContext {
	lo, ok := c.formatLayout()
	if !ok {
		return nil
	}
	pb := deref(c.ptr, lo.Pb)
	if pb == nil {
		return nil
	}
	return &IOContext{ptr: pb}
}

// NumStreams returns the number of streams, or 0.
func (c *FormatContext) NumStreams() int {
	lo, ok := c.formatLayout()
	if !ok {
		return 0
	}
	return int(readU32(c.ptr, lo.NbStreams))
}

// Duration returns the stream duration in AV_TIME_BASE units, or 0.
func (c *FormatContext) Duration() int64 {
	lo, ok := c.formatLayout()
	if !ok {
		return 0
	}
	return readI64(c.ptr, lo.Duration)
}

// BitRate returns the total stream bitrate in bits per second, or 0.
func (c *FormatContext) BitRate() int64 {
	lo, ok := c.formatLayout()
	if !ok {
		return 0
	}
	return readI64(c.ptr, lo.BitRate)
}

// NumChapters returns the number of chapters, or 0.
func (c *FormatContext) NumChapters() int {
	lo, ok := c.formatLayout()
	if !ok {
		return 0
	}
	return int(readU32(c.ptr, lo.NbChapters))
}

// ChapterAt returns the i'th chapter, or nil if out of range.
func (c *FormatContext) ChapterAt(i int) *Chapter {
	lo, ok := c.formatLayout()
	if !ok || i < 0 || i >= int(readU32(c.ptr, lo.NbChapters)) {
		return nil
	}
	arr := deref(c.ptr, lo.Chapters)
	if arr == nil {
		return nil
	}
	ch := deref(arr, uintptr(i)*unsafe.Sizeof(uintptr(0)))
	if ch == nil {
		return nil
	}
	return &Chapter{ptr: ch}
}

// NumPrograms returns the number of programs, or 0.
func (c *FormatContext) NumPrograms() int {
	lo, ok := c.formatLayout()
	if !ok {
		return 0
	}
	return int(readU32(c.ptr, lo.NbPrograms))
}

// ProgramAt returns the i'th program, or nil if out of range.
func (c *FormatContext) ProgramAt(i int) *Program {
	lo, ok := c.formatLayout()
	if !ok || i < 0 || i >= int(readU32(c.ptr, lo.NbPrograms)) {
		return nil
	}
	arr := deref(c.ptr, lo.Programs)
	if arr == nil {
		return nil
	}
	p := deref(arr, uintptr(i)*unsafe.Sizeof(uintptr(0)))
	if p == nil {
		return nil
	}
	return &Program{ptr: p}
}

// Metadata returns the context's metadata dictionary. The dictionary is
// owned by the context; callers must not Free it.
func (c *FormatContext) Metadata() *Dictionary {
	lo, ok := c.formatLayout()
	if !ok {
		return wrapDictionary(nil)
	}
	return wrapDictionary(deref(c.ptr, lo.Metadata))
}

// A Chapter wraps a native AVChapter owned by its format context.
type Chapter struct {
	ptr unsafe.Pointer
}

// ID returns the chapter id.
func (ch *Chapter) ID() int64 {
	if ch == nil || ch.ptr == nil {
		return 0
	}
	return readI64(ch.ptr, layout.ChapterID)
}

// TimeBase returns the time base of the chapter's start and end.
func (ch *Chapter) TimeBase() Rational {
	if ch == nil || ch.ptr == nil {
		return Rational{}
	}
	return readQ(ch.ptr, layout.ChapterTimeBase)
}

// Start returns the chapter start in TimeBase units.
func (ch *Chapter) Start() int64 {
	if ch == nil || ch.ptr == nil {
		return 0
	}
	return readI64(ch.ptr, layout.ChapterStart)
}

// End returns the chapter end in TimeBase units.
func (ch *Chapter) End() int64 {
	if ch == nil || ch.ptr == nil {
		return 0
	}
	return readI64(ch.ptr, layout.ChapterEnd)
}

// Metadata returns the chapter's metadata dictionary, owned by the
// chapter.
func (ch *Chapter) Metadata() *Dictionary {
	if ch == nil || ch.ptr == nil {
		return wrapDictionary(nil)
	}
	return wrapDictionary(deref(ch.ptr, layout.ChapterMetadata))
}

// A Program wraps a native AVProgram owned by its format context.
type Program struct {
	ptr unsafe.Pointer
}

// ID returns the program id.
func (p *Program) ID() int {
	if p == nil || p.ptr == nil {
		return 0
	}
	return int(readI32(p.ptr, layout.ProgramID))
}

// StreamIndexes returns a copy of the program's stream index array.
func (p *Program) StreamIndexes() []int {
	if p == nil || p.ptr == nil {
		return nil
	}
	n := int(readU32(p.ptr, layout.ProgramNbStreamIndexes))
	arr := deref(p.ptr, layout.ProgramStreamIndex)
	if n == 0 || arr == nil {
		return nil
	}
	out := make([]int, n)
	for i := range out {
		out[i] = int(readU32(arr, uintptr(i)*4))
	}
	return out
}

// Metadata returns the program's metadata dictionary, owned by the
// program.
func (p *Program) Metadata() *Dictionary {
	if p == nil || p.ptr == nil {
		return wrapDictionary(nil)
	}
	return wrapDictionary(deref(p.ptr, layout.ProgramMetadata))
}
