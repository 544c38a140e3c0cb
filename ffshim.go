//go:build !ios && !android && (amd64 || arm64)

// Package ffshim exposes the FFmpeg capabilities that purego cannot reach
// directly: variadic logging (av_log), the va_list-based log callback,
// struct-by-value rational arithmetic, chapter construction inside an
// AVFormatContext, device enumeration, and field access on opaque FFmpeg
// structs. It is the pure-Go counterpart of the small C helper library
// that bindings built on purego otherwise have to ship.
//
// Everything here is a thin forward onto FFmpeg. Handles are strongly
// typed wrappers around pointers owned by FFmpeg; a zero-value handle is
// always safe and makes every accessor return its documented sentinel.
// Native error codes pass through verbatim as *Error values.
package ffshim

import (
	"github.com/ebitengine/purego"
	"github.com/obinnaokechukwu/ffshim/internal/bindings"
)

var coreRegistered bool

func init() {
	registerCoreBindings()
}

// Init loads the FFmpeg libraries and registers all function bindings.
// It is called automatically on first use, but can be called explicitly to
// check for errors. Safe to call multiple times.
func Init() error {
	if err := bindings.Load(); err != nil {
		return err
	}
	registerCoreBindings()
	return nil
}

// IsLoaded returns true if the FFmpeg libraries have been successfully loaded.
func IsLoaded() bool {
	return bindings.IsLoaded()
}

// Version returns the loaded FFmpeg library versions, or zeros if the
// libraries are not loaded.
func Version() (avutil, avcodec, avformat uint32) {
	return bindings.AVUtilVersion(), bindings.AVCodecVersion(), bindings.AVFormatVersion()
}

func registerCoreBindings() {
	if coreRegistered {
		return
	}
	if err := bindings.Load(); err != nil {
		return // Functions stay nil and report ErrNotLoaded when called.
	}

	u := bindings.LibAVUtil()
	f := bindings.LibAVFormat()
	if u == 0 || f == 0 {
		return
	}

	// Logging
	purego.RegisterLibFunc(&avLogSetCallback, u, "av_log_set_callback")
	purego.RegisterLibFunc(&avLogSetLevel, u, "av_log_set_level")
	purego.RegisterLibFunc(&avLogGetLevel, u, "av_log_get_level")
	purego.RegisterLibFunc(&avLogFormatLine2, u, "av_log_format_line2")
	purego.RegisterLibFunc(&avVlog, u, "av_vlog")

	// Rational arithmetic
	purego.RegisterLibFunc(&avMulQ, u, "av_mul_q")
	purego.RegisterLibFunc(&avDivQ, u, "av_div_q")
	purego.RegisterLibFunc(&avAddQ, u, "av_add_q")
	purego.RegisterLibFunc(&avSubQ, u, "av_sub_q")
	purego.RegisterLibFunc(&avD2Q, u, "av_d2q")

	// Errors
	purego.RegisterLibFunc(&avStrerror, u, "av_strerror")

	// Memory
	purego.RegisterLibFunc(&avMallocz, u, "av_mallocz")
	purego.RegisterLibFunc(&avFreep, u, "av_freep")
	purego.RegisterLibFunc(&avReallocArray, u, "av_realloc_array")

	// Dictionaries
	purego.RegisterLibFunc(&avDictSet, u, "av_dict_set")
	purego.RegisterLibFunc(&avDictGet, u, "av_dict_get")
	purego.RegisterLibFunc(&avDictFree, u, "av_dict_free")
	purego.RegisterLibFunc(&avDictCount, u, "av_dict_count")

	// Channel layout (FFmpeg 5.1+)
	purego.RegisterLibFunc(&avChannelLayoutDefault, u, "av_channel_layout_default")

	// avformat
	purego.RegisterLibFunc(&avioWrite, f, "avio_write")
	purego.RegisterLibFunc(&avFindInputFormat, f, "av_find_input_format")

	coreRegistered = true
}
