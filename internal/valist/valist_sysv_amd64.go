//go:build (linux || darwin || freebsd) && amd64

package valist

import "unsafe"

// SysV amd64 va_list tag. va_arg consults gp_offset/fp_offset to decide
// whether the next argument lives in the register save area or the
// overflow area.
type sysvTag struct {
	gpOffset        uint32
	fpOffset        uint32
	overflowArgArea unsafe.Pointer
	regSaveArea     unsafe.Pointer
}

// New builds a va_list whose arguments are the given pointer-sized words.
// gp_offset 48 and fp_offset 304 mark every register save slot as already
// consumed, so va_arg reads each argument from the overflow area in order.
func New(args []uintptr) *List {
	if len(args) == 0 {
		args = make([]uintptr, 1)
	}
	tag := &sysvTag{
		gpOffset:        48,
		fpOffset:        304,
		overflowArgArea: unsafe.Pointer(&args[0]),
	}
	return &List{
		Ptr:  unsafe.Pointer(tag),
		args: args,
		tag:  unsafe.Pointer(tag),
	}
}
