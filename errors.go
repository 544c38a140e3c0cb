//go:build !ios && !android && (amd64 || arm64)

package ffshim

import (
	"errors"
	"fmt"
	"syscall"
	"unsafe"
)

// Common FFmpeg error codes (AVERROR values)
const (
	AVERROR_EOF         int32 = -541478725             // End of file
	AVERROR_EAGAIN      int32 = -int32(syscall.EAGAIN) // Resource temporarily unavailable
	AVERROR_EINVAL      int32 = -int32(syscall.EINVAL) // Invalid argument
	AVERROR_ENOMEM      int32 = -int32(syscall.ENOMEM) // Out of memory
	AVERROR_ENOSYS      int32 = -int32(syscall.ENOSYS) // Function not implemented
	AVERROR_INVALIDDATA int32 = -1094995529            // Invalid data
	AVERROR_BUG         int32 = -558323010             // Bug detected
	AVERROR_UNKNOWN     int32 = -1313558101            // Unknown error
)

// Binding registered in registerCoreBindings.
var avStrerror func(errnum int32, errbuf unsafe.Pointer, errbufSize uintptr) int32

// Error represents an FFmpeg error.
type Error struct {
	Code    int32  // Raw FFmpeg error code
	Message string // Human-readable message
	Op      string // Operation that failed
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("ffmpeg %s: %s (code %d)", e.Op, e.Message, e.Code)
}

// NewError creates a new FFmpeg error from an error code.
// Returns nil for non-negative codes.
func NewError(code int32, op string) error {
	if code >= 0 {
		return nil
	}
	return &Error{
		Code:    code,
		Message: ErrorString(code),
		Op:      op,
	}
}

// Code returns the FFmpeg error code from an error, or 0 if err does not
// wrap an *Error.
func Code(err error) int32 {
	var ffErr *Error
	if errors.As(err, &ffErr) {
		return ffErr.Code
	}
	return 0
}

// IsEOF returns true if the error indicates end of file.
func IsEOF(err error) bool {
	return Code(err) == AVERROR_EOF
}

// IsAgain returns true if the error indicates to try again (EAGAIN).
func IsAgain(err error) bool {
	return Code(err) == AVERROR_EAGAIN
}

// IsNotImplemented returns true if the error indicates a capability that is
// not available in this FFmpeg installation (e.g. libavdevice is missing).
func IsNotImplemented(err error) bool {
	return Code(err) == AVERROR_ENOSYS
}

// Strerror writes a human-readable description of errnum into buf,
// forwarding av_strerror. At most len(buf) bytes are written, including
// the NUL terminator. Returns av_strerror's own indicator: 0 on success,
// a negative code if errnum is unrecognized (a generic description is
// still written).
func Strerror(errnum int32, buf []byte) int32 {
	if len(buf) == 0 {
		return AVERROR_EINVAL
	}
	if avStrerror == nil {
		buf[0] = 0
		return AVERROR_ENOSYS
	}
	return avStrerror(errnum, unsafe.Pointer(&buf[0]), uintptr(len(buf)))
}

// ErrorString returns a human-readable error message for an FFmpeg error code.
func ErrorString(errnum int32) string {
	if avStrerror == nil {
		return "unknown error (FFmpeg not loaded)"
	}

	buf := make([]byte, 256)
	avStrerror(errnum, unsafe.Pointer(&buf[0]), uintptr(len(buf)))

	for i, b := range buf {
		if b == 0 {
			return string(buf[:i])
		}
	}
	return string(buf)
}
