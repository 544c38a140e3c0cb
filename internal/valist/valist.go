//go:build !ios && !android && (amd64 || arm64)

// Package valist fabricates C va_list values.
//
// purego cannot call variadic functions, but FFmpeg exposes v-style
// counterparts (av_vlog) that take an explicit va_list. A va_list built
// here describes a fixed, already-known argument sequence, which is enough
// to drive those entry points from Go. On every supported 64-bit ABI the
// va_list parameter itself travels as a single pointer: SysV amd64 passes
// a pointer to the one-element __va_list_tag array, AAPCS64 passes the
// 32-byte struct by reference, and Apple arm64 and Windows define va_list
// as a plain char* into the argument area.
package valist

import "unsafe"

// List is a fabricated va_list. Ptr is the value to pass where a C
// function expects a va_list parameter. The receiver must be kept alive
// (runtime.KeepAlive) until the native call returns, together with any
// memory the argument words point at.
type List struct {
	Ptr unsafe.Pointer

	// args and tag pin the backing memory for the duration of the call.
	args []uintptr
	tag  unsafe.Pointer
}
