//go:build (linux || freebsd) && arm64

package valist

import "unsafe"

// AAPCS64 va_list. Non-negative gr_offs/vr_offs mean the named-register
// save areas are exhausted and va_arg reads from the stack pointer.
type aapcsTag struct {
	stack  unsafe.Pointer
	grTop  unsafe.Pointer
	vrTop  unsafe.Pointer
	grOffs int32
	vrOffs int32
}

// New builds a va_list whose arguments are the given pointer-sized words,
// all read from the fabricated stack area in order.
func New(args []uintptr) *List {
	if len(args) == 0 {
		args = make([]uintptr, 1)
	}
	tag := &aapcsTag{
		stack: unsafe.Pointer(&args[0]),
	}
	return &List{
		Ptr:  unsafe.Pointer(tag),
		args: args,
		tag:  unsafe.Pointer(tag),
	}
}
