//go:build !ios && !android && (amd64 || arm64)

package ffshim

import (
	"strings"
	"testing"
)

func TestNewError(t *testing.T) {
	if err := NewError(0, "op"); err != nil {
		t.Errorf("expected nil for success code, got %v", err)
	}
	if err := NewError(42, "op"); err != nil {
		t.Errorf("expected nil for positive code, got %v", err)
	}

	err := NewError(AVERROR_EOF, "av_read_frame")
	if err == nil {
		t.Fatal("expected error for negative code")
	}
	if !strings.Contains(err.Error(), "av_read_frame") {
		t.Errorf("error %q does not mention the operation", err.Error())
	}
}

func TestErrorPredicates(t *testing.T) {
	if !IsEOF(NewError(AVERROR_EOF, "op")) {
		t.Error("IsEOF false for AVERROR_EOF")
	}
	if !IsAgain(NewError(AVERROR_EAGAIN, "op")) {
		t.Error("IsAgain false for AVERROR_EAGAIN")
	}
	if !IsNotImplemented(NewError(AVERROR_ENOSYS, "op")) {
		t.Error("IsNotImplemented false for AVERROR_ENOSYS")
	}
	if IsEOF(NewError(AVERROR_EINVAL, "op")) {
		t.Error("IsEOF true for AVERROR_EINVAL")
	}
	if IsEOF(nil) {
		t.Error("IsEOF true for nil")
	}
}

func TestCode(t *testing.T) {
	if got := Code(NewError(AVERROR_EINVAL, "op")); got != AVERROR_EINVAL {
		t.Errorf("Code = %d, want %d", got, AVERROR_EINVAL)
	}
	if got := Code(nil); got != 0 {
		t.Errorf("Code(nil) = %d, want 0", got)
	}
}

func TestErrorString(t *testing.T) {
	// Works loaded or not: the fallback still produces something.
	s := ErrorString(AVERROR_EOF)
	if s == "" {
		t.Fatal("empty error string")
	}
	if ffmpegAvailable {
		if !strings.Contains(strings.ToLower(s), "end of file") {
			t.Errorf("AVERROR_EOF string = %q, want mention of end of file", s)
		}
	}
}
