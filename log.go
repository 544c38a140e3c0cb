//go:build !ios && !android && (amd64 || arm64)

package ffshim

import (
	"runtime"
	"sync"
	"sync/atomic"
	"unsafe"

	"github.com/ebitengine/purego"
	"github.com/obinnaokechukwu/ffshim/internal/bindings"
	"github.com/obinnaokechukwu/ffshim/internal/valist"
)

// LogLevel represents FFmpeg log levels.
type LogLevel int32

// Log level constants matching FFmpeg's AV_LOG_* values.
const (
	LogQuiet   LogLevel = -8 // Print no output
	LogPanic   LogLevel = 0  // Something went really wrong, crash
	LogFatal   LogLevel = 8  // Something went wrong, exit now
	LogError   LogLevel = 16 // Something went wrong, recovery possible
	LogWarning LogLevel = 24 // Something unexpected but recovery possible
	LogInfo    LogLevel = 32 // Standard information
	LogVerbose LogLevel = 40 // Detailed information
	LogDebug   LogLevel = 48 // Stuff for debugging
	LogTrace   LogLevel = 56 // Extremely verbose debugging
)

// String returns the string representation of the log level.
func (l LogLevel) String() string {
	switch {
	case l <= LogQuiet:
		return "quiet"
	case l <= LogPanic:
		return "panic"
	case l <= LogFatal:
		return "fatal"
	case l <= LogError:
		return "error"
	case l <= LogWarning:
		return "warning"
	case l <= LogInfo:
		return "info"
	case l <= LogVerbose:
		return "verbose"
	case l <= LogDebug:
		return "debug"
	default:
		return "trace"
	}
}

// LogCallback is called for each FFmpeg log message. cls is the opaque
// AVClass context FFmpeg logged against (often nil), and msg is the fully
// formatted message with the trailing newline already stripped.
type LogCallback func(cls unsafe.Pointer, level LogLevel, msg string)

// logLineSize bounds message formatting; longer messages are truncated.
const logLineSize = 4096

// Bindings registered in registerCoreBindings.
var (
	avLogSetCallback func(cb uintptr)
	avLogSetLevel    func(level int32)
	avLogGetLevel    func() int32
	avLogFormatLine2 func(ptr uintptr, level int32, format uintptr, vl uintptr, line unsafe.Pointer, lineSize int32, printPrefix *int32) int32
	avVlog           func(avcl uintptr, level int32, format string, vl uintptr)
)

var (
	logSink           atomic.Pointer[LogCallback]
	logTrampolineOnce sync.Once
	logTrampoline     uintptr
)

// SetLogCallback installs cb as the process-wide sink for FFmpeg log
// messages, replacing any previous sink. The sink is swapped atomically,
// so installation is safe against logging in flight on other threads.
// Passing nil restores FFmpeg's default logging behavior.
func SetLogCallback(cb LogCallback) error {
	if err := Init(); err != nil {
		return err
	}
	if avLogSetCallback == nil {
		return bindings.ErrNotLoaded
	}

	if cb == nil {
		logSink.Store(nil)
		def, err := bindings.Symbol(bindings.LibAVUtil(), "av_log_default_callback")
		if err != nil {
			return err
		}
		avLogSetCallback(def)
		return nil
	}

	logSink.Store(&cb)

	// One callback for the life of the process; purego callbacks are a
	// finite resource and cannot be released.
	logTrampolineOnce.Do(func() {
		logTrampoline = purego.NewCallback(logLineTrampoline)
	})
	avLogSetCallback(logTrampoline)
	return nil
}

// SetLogLevel sets FFmpeg's global minimum log level.
func SetLogLevel(level LogLevel) error {
	if err := Init(); err != nil {
		return err
	}
	if avLogSetLevel == nil {
		return bindings.ErrNotLoaded
	}
	avLogSetLevel(int32(level))
	return nil
}

// GetLogLevel returns FFmpeg's global minimum log level.
func GetLogLevel() (LogLevel, error) {
	if err := Init(); err != nil {
		return 0, err
	}
	if avLogGetLevel == nil {
		return 0, bindings.ErrNotLoaded
	}
	return LogLevel(avLogGetLevel()), nil
}

// Log re-emits an already-formatted message through FFmpeg's logging
// machinery. The message is passed behind a literal "%s" format, so
// percent signs in msg are never interpreted as directives. cls may be
// nil to log without an AVClass context.
func Log(cls unsafe.Pointer, level LogLevel, msg string) error {
	if err := Init(); err != nil {
		return err
	}
	if avVlog == nil {
		return bindings.ErrNotLoaded
	}

	payload := make([]byte, len(msg)+1)
	copy(payload, msg)
	vl := valist.New([]uintptr{uintptr(unsafe.Pointer(&payload[0]))})
	avVlog(uintptr(cls), int32(level), "%s", uintptr(vl.Ptr))
	runtime.KeepAlive(payload)
	runtime.KeepAlive(vl)
	return nil
}

// logLineTrampoline is the callback FFmpeg invokes for every log message.
// Signature: void (*)(void *avcl, int level, const char *fmt, va_list vl).
// The va_list arrives as an opaque pointer on every supported ABI and is
// forwarded untouched into av_log_format_line2, which renders the message
// for us; print_prefix stays 0 so no "[ctx @ 0x...]" prefix is added.
func logLineTrampoline(avcl uintptr, level int32, format uintptr, vl uintptr) {
	cbp := logSink.Load()
	if cbp == nil {
		return
	}

	var buf [logLineSize]byte
	printPrefix := int32(0)
	n := avLogFormatLine2(avcl, level, format, vl,
		unsafe.Pointer(&buf[0]), logLineSize, &printPrefix)

	line := clampLogLine(buf[:], n)
	if line == nil {
		return
	}
	(*cbp)(unsafe.Pointer(avcl), LogLevel(level), string(line))
}

// clampLogLine reduces a formatted buffer to the message that was actually
// written: n is the snprintf-style required length (may exceed the buffer,
// in which case the message was truncated), and exactly one trailing
// newline is stripped so sinks can apply their own line handling.
func clampLogLine(buf []byte, n int32) []byte {
	if n < 0 {
		return nil
	}
	w := int(n)
	if w > len(buf)-1 {
		w = len(buf) - 1
	}
	line := buf[:w]
	if len(line) > 0 && line[len(line)-1] == '\n' {
		line = line[:len(line)-1]
	}
	return line
}
