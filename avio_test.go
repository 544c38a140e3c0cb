//go:build !ios && !android && (amd64 || arm64)

package ffshim

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"unsafe"

	"github.com/ebitengine/purego"
	"github.com/obinnaokechukwu/ffshim/internal/bindings"
)

const avioFlagWrite = 2 // AVIO_FLAG_WRITE

var (
	avioTestOnce sync.Once

	avioOpen   func(s *unsafe.Pointer, url string, flags int32) int32
	avioClosep func(s *unsafe.Pointer) int32
)

func registerAVIOTestBindings(t *testing.T) {
	t.Helper()
	skipIfNoFFmpeg(t)
	avioTestOnce.Do(func() {
		f := bindings.LibAVFormat()
		purego.RegisterLibFunc(&avioOpen, f, "avio_open")
		purego.RegisterLibFunc(&avioClosep, f, "avio_closep")
	})
}

func TestIOContextWriteFile(t *testing.T) {
	registerAVIOTestBindings(t)

	path := filepath.Join(t.TempDir(), "out.bin")
	var native unsafe.Pointer
	if ret := avioOpen(&native, path, avioFlagWrite); ret < 0 {
		t.Fatalf("avio_open failed: %s", ErrorString(ret))
	}

	io := NewIOContext(native)
	if err := io.WriteString("chunk one, 100% literal"); err != nil {
		t.Fatalf("WriteString: %v", err)
	}
	if err := io.WriteString(""); err != nil {
		t.Fatalf("empty WriteString: %v", err)
	}
	// Raw bytes pass through unmodified, interior NUL included.
	if err := io.Write([]byte{0x00, 0xff, '\n'}); err != nil {
		t.Fatalf("Write: %v", err)
	}

	if ret := avioClosep(&native); ret < 0 {
		t.Fatalf("avio_closep failed: %s", ErrorString(ret))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	want := "chunk one, 100% literal\x00\xff\n"
	if string(data) != want {
		t.Errorf("file contents %q, want %q", data, want)
	}
}
