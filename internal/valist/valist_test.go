//go:build !ios && !android && (amd64 || arm64)

package valist

import "testing"

func TestNewNonNil(t *testing.T) {
	l := New([]uintptr{42})
	if l == nil || l.Ptr == nil {
		t.Fatal("New should return a usable list")
	}
}

func TestNewEmptyArgs(t *testing.T) {
	l := New(nil)
	if l == nil || l.Ptr == nil {
		t.Fatal("New with no arguments should still yield a valid list")
	}
}
