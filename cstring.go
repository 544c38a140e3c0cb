//go:build !ios && !android && (amd64 || arm64)

package ffshim

import "unsafe"

// cString converts a Go string to a NUL-terminated byte slice and returns
// a pointer to its first byte. The caller must keep the returned pointer
// alive (runtime.KeepAlive) across the native call that consumes it.
func cString(s string) *byte {
	buf := make([]byte, len(s)+1)
	copy(buf, s)
	return &buf[0]
}

// goString copies a NUL-terminated C string into a Go string. Returns ""
// for a nil pointer.
func goString(p unsafe.Pointer) string {
	if p == nil {
		return ""
	}
	n := 0
	for *(*byte)(unsafe.Add(p, n)) != 0 {
		n++
	}
	if n == 0 {
		return ""
	}
	return string(unsafe.Slice((*byte)(p), n))
}

// deref reads a pointer-sized field at the given offset from base.
func deref(base unsafe.Pointer, offset uintptr) unsafe.Pointer {
	return *(*unsafe.Pointer)(unsafe.Add(base, offset))
}

func readU32(base unsafe.Pointer, offset uintptr) uint32 {
	return *(*uint32)(unsafe.Add(base, offset))
}

func readI32(base unsafe.Pointer, offset uintptr) int32 {
	return *(*int32)(unsafe.Add(base, offset))
}

func writeI32(base unsafe.Pointer, offset uintptr, v int32) {
	*(*int32)(unsafe.Add(base, offset)) = v
}

func readI64(base unsafe.Pointer, offset uintptr) int64 {
	return *(*int64)(unsafe.Add(base, offset))
}

func writeI64(base unsafe.Pointer, offset uintptr, v int64) {
	*(*int64)(unsafe.Add(base, offset)) = v
}

func readQ(base unsafe.Pointer, offset uintptr) Rational {
	return Rational{
		Num: readI32(base, offset),
		Den: readI32(base, offset+4),
	}
}

func writeQ(base unsafe.Pointer, offset uintptr, q Rational) {
	writeI32(base, offset, q.Num)
	writeI32(base, offset+4, q.Den)
}
