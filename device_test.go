//go:build !ios && !android && (amd64 || arm64)

package ffshim

import (
	"testing"
	"unsafe"
)

func TestListInputSourcesEmptyName(t *testing.T) {
	// Validated before anything is loaded, so this works without FFmpeg.
	_, err := ListInputSources("", "", nil)
	if err == nil {
		t.Fatal("expected error for empty format name")
	}
	if Code(err) != AVERROR_EINVAL {
		t.Errorf("code = %d, want AVERROR_EINVAL", Code(err))
	}
}

func TestListInputSourcesUnknownFormat(t *testing.T) {
	skipIfNoFFmpeg(t)
	if err := RegisterDevices(); err != nil {
		t.Skipf("libavdevice not available: %v", err)
	}

	_, err := ListInputSources("definitely-not-a-device-format", "", nil)
	if err == nil {
		t.Fatal("expected error for unknown format")
	}
	if Code(err) != AVERROR_EINVAL {
		t.Errorf("code = %d, want AVERROR_EINVAL", Code(err))
	}
}

func TestRegisterDevicesIdempotent(t *testing.T) {
	skipIfNoFFmpeg(t)
	first := RegisterDevices()
	second := RegisterDevices()
	if (first == nil) != (second == nil) {
		t.Errorf("RegisterDevices not stable: first=%v second=%v", first, second)
	}
}

func TestFreeDeviceListNilSafe(t *testing.T) {
	freeDeviceList(nil)
	var p unsafe.Pointer
	freeDeviceList(&p)
}

func TestCopyDeviceListNil(t *testing.T) {
	if got := copyDeviceList(nil); got != nil {
		t.Errorf("copyDeviceList(nil) = %v, want nil", got)
	}
}
