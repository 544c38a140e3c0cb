//go:build !ios && !android && (amd64 || arm64)

package bindings

import (
	"testing"
)

func TestLibrarySearchPaths(t *testing.T) {
	paths := LibrarySearchPaths()
	if len(paths) == 0 {
		t.Error("LibrarySearchPaths should return at least one path")
	}
}

func TestLibrarySearchPaths_EnvOverrideFirst(t *testing.T) {
	t.Setenv("FFSHIM_FFMPEG_DIR", "/nonexistent/ffmpeg/lib")

	paths := LibrarySearchPaths()
	if len(paths) == 0 || paths[0] != "/nonexistent/ffmpeg/lib" {
		t.Errorf("FFSHIM_FFMPEG_DIR should be the first search path, got %v", paths)
	}
}

func TestSymbolBeforeLoad(t *testing.T) {
	if _, err := Symbol(0, "avutil_version"); err == nil {
		t.Error("Symbol with a zero library handle should fail")
	}
}

// Integration test - only runs if FFmpeg is available.
func TestLoadFFmpeg(t *testing.T) {
	if testing.Short() {
		t.Log("Skipping FFmpeg load test in short mode")
		return
	}

	err := Load()
	if err != nil {
		t.Skipf("FFmpeg not available: %v", err)
	}

	if !IsLoaded() {
		t.Error("IsLoaded should be true after successful Load")
	}

	ver := AVUtilVersion()
	if ver == 0 {
		t.Error("AVUtilVersion should return non-zero after Load")
	}

	if _, err := Symbol(LibAVUtil(), "av_log_default_callback"); err != nil {
		t.Errorf("av_log_default_callback should resolve: %v", err)
	}

	t.Logf("FFmpeg loaded: avutil version %d.%d.%d",
		ver>>16, (ver>>8)&0xFF, ver&0xFF)
}
