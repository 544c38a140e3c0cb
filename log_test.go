//go:build !ios && !android && (amd64 || arm64)

package ffshim

import (
	"strings"
	"sync"
	"testing"
	"unsafe"
)

func TestLogLevelString(t *testing.T) {
	tests := []struct {
		level LogLevel
		want  string
	}{
		{LogQuiet, "quiet"},
		{LogPanic, "panic"},
		{LogFatal, "fatal"},
		{LogError, "error"},
		{LogWarning, "warning"},
		{LogInfo, "info"},
		{LogVerbose, "verbose"},
		{LogDebug, "debug"},
		{LogTrace, "trace"},
		{LogLevel(100), "trace"},
	}
	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("LogLevel(%d).String() = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestClampLogLine(t *testing.T) {
	buf := func(s string, size int) []byte {
		b := make([]byte, size)
		copy(b, s)
		return b
	}

	t.Run("negative is dropped", func(t *testing.T) {
		if got := clampLogLine(buf("x", 16), -22); got != nil {
			t.Errorf("got %q, want nil", got)
		}
	})

	t.Run("plain passthrough", func(t *testing.T) {
		if got := clampLogLine(buf("hello", 16), 5); string(got) != "hello" {
			t.Errorf("got %q, want %q", got, "hello")
		}
	})

	t.Run("one trailing newline stripped", func(t *testing.T) {
		if got := clampLogLine(buf("hello\n", 16), 6); string(got) != "hello" {
			t.Errorf("got %q, want %q", got, "hello")
		}
	})

	t.Run("only one newline stripped", func(t *testing.T) {
		if got := clampLogLine(buf("hello\n\n", 16), 7); string(got) != "hello\n" {
			t.Errorf("got %q, want %q", got, "hello\n")
		}
	})

	t.Run("truncated to buffer", func(t *testing.T) {
		// n says the full message needed 100 bytes; only the buffer's
		// worth minus the NUL slot survives.
		got := clampLogLine(buf("0123456789", 11), 100)
		if string(got) != "0123456789" {
			t.Errorf("got %q, want %q", got, "0123456789")
		}
	})

	t.Run("empty message", func(t *testing.T) {
		got := clampLogLine(buf("", 16), 0)
		if got == nil || len(got) != 0 {
			t.Errorf("got %v, want empty non-nil", got)
		}
	})
}

func TestLogLevelRoundTrip(t *testing.T) {
	skipIfNoFFmpeg(t)

	orig, err := GetLogLevel()
	if err != nil {
		t.Fatalf("GetLogLevel failed: %v", err)
	}
	defer SetLogLevel(orig)

	if err := SetLogLevel(LogError); err != nil {
		t.Fatalf("SetLogLevel failed: %v", err)
	}
	got, err := GetLogLevel()
	if err != nil {
		t.Fatalf("GetLogLevel failed: %v", err)
	}
	if got != LogError {
		t.Errorf("GetLogLevel = %v, want %v", got, LogError)
	}
}

func TestLogCallback(t *testing.T) {
	skipIfNoFFmpeg(t)

	var mu sync.Mutex
	var lines []string
	err := SetLogCallback(func(cls unsafe.Pointer, level LogLevel, msg string) {
		mu.Lock()
		lines = append(lines, msg)
		mu.Unlock()
	})
	if err != nil {
		t.Fatalf("SetLogCallback failed: %v", err)
	}
	defer SetLogCallback(nil)

	orig, _ := GetLogLevel()
	SetLogLevel(LogInfo)
	defer SetLogLevel(orig)

	// 100% sequences must come through literally, not as directives.
	if err := Log(nil, LogInfo, "capture test 100% done"); err != nil {
		t.Fatalf("Log failed: %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if len(lines) == 0 {
		t.Fatal("callback never invoked")
	}
	found := false
	for _, l := range lines {
		if strings.Contains(l, "capture test 100% done") {
			found = true
			if strings.HasSuffix(l, "\n") {
				t.Errorf("line %q still carries the trailing newline", l)
			}
		}
	}
	if !found {
		t.Errorf("message not seen in %q", lines)
	}
}

func TestLogCallbackRestoreDefault(t *testing.T) {
	skipIfNoFFmpeg(t)

	if err := SetLogCallback(func(unsafe.Pointer, LogLevel, string) {}); err != nil {
		t.Fatalf("SetLogCallback failed: %v", err)
	}
	if err := SetLogCallback(nil); err != nil {
		t.Fatalf("SetLogCallback(nil) failed: %v", err)
	}
	// With the default restored the sink must stay silent even if FFmpeg
	// logs again.
	if logSink.Load() != nil {
		t.Error("sink not cleared after restoring the default callback")
	}
}
