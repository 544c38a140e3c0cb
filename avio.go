//go:build !ios && !android && (amd64 || arm64)

package ffshim

import (
	"runtime"
	"unsafe"

	"github.com/obinnaokechukwu/ffshim/internal/bindings"
)

// An IOContext wraps an FFmpeg byte I/O context (AVIOContext). The native
// context is owned by whoever created it, typically an open format
// context; the wrapper only forwards writes.
type IOContext struct {
	ptr unsafe.Pointer
}

// NewIOContext wraps an existing native I/O context pointer.
func NewIOContext(ptr unsafe.Pointer) *IOContext {
	return &IOContext{ptr: ptr}
}

// Pointer returns the underlying native pointer.
func (c *IOContext) Pointer() unsafe.Pointer {
	if c == nil {
		return nil
	}
	return c.ptr
}

var avioWrite func(ctx unsafe.Pointer, buf *byte, size int32)

// Write writes the buffer to the I/O context (avio_write). A nil context
// or empty buffer is a no-op; errors surface later through the context's
// own error state, as they do natively.
func (c *IOContext) Write(p []byte) error {
	if c == nil || c.ptr == nil || len(p) == 0 {
		return nil
	}
	if avioWrite == nil {
		return bindings.ErrNotLoaded
	}
	avioWrite(c.ptr, &p[0], int32(len(p)))
	runtime.KeepAlive(p)
	return nil
}

// WriteString writes the string to the I/O context. A nil context or
// empty string is a no-op.
func (c *IOContext) WriteString(s string) error {
	if s == "" {
		return nil
	}
	return c.Write([]byte(s))
}
