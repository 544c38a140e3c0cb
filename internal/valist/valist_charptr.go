//go:build (darwin && arm64) || windows

package valist

import "unsafe"

// Apple arm64 and Windows define va_list as a char* into the argument
// area, so the list is simply a pointer to the packed argument words.
func New(args []uintptr) *List {
	if len(args) == 0 {
		args = make([]uintptr, 1)
	}
	return &List{
		Ptr:  unsafe.Pointer(&args[0]),
		args: args,
	}
}
