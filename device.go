//go:build !ios && !android && (amd64 || arm64)

package ffshim

import (
	"runtime"
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"
	"github.com/obinnaokechukwu/ffshim/internal/bindings"
	"github.com/obinnaokechukwu/ffshim/internal/layout"
)

// DeviceInfo describes one capture device reported by an input format.
type DeviceInfo struct {
	Name        string // Device name, usable as a URL for the format
	Description string // Human readable description
}

var (
	avFindInputFormat func(name *byte) unsafe.Pointer

	avdeviceRegisterAll      func()
	avdeviceListInputSources func(device unsafe.Pointer, name *byte, opts unsafe.Pointer, list *unsafe.Pointer) int32
	avdeviceFreeListDevices  func(list *unsafe.Pointer)

	avdeviceOnce sync.Once
	avdeviceErr  error
)

// loadAVDevice loads libavdevice on first use and registers all device
// input and output formats. libavdevice is optional: when it is not
// installed the error is remembered and every enumeration call reports
// AVERROR_ENOSYS.
func loadAVDevice() error {
	avdeviceOnce.Do(func() {
		lib, err := bindings.LoadLibrary("avdevice", []int{62, 61, 60, 59, 58})
		if err != nil {
			avdeviceErr = NewError(AVERROR_ENOSYS, "avdevice")
			return
		}
		purego.RegisterLibFunc(&avdeviceRegisterAll, lib, "avdevice_register_all")
		purego.RegisterLibFunc(&avdeviceListInputSources, lib, "avdevice_list_input_sources")
		purego.RegisterLibFunc(&avdeviceFreeListDevices, lib, "avdevice_free_list_devices")
		avdeviceRegisterAll()
	})
	return avdeviceErr
}

// RegisterDevices loads libavdevice and registers its formats. Safe to
// call more than once; only the first call does work. Returns an error
// wrapping AVERROR_ENOSYS when libavdevice is not available.
func RegisterDevices() error {
	if err := bindings.Load(); err != nil {
		return err
	}
	return loadAVDevice()
}

// ListInputSources enumerates the capture sources of a device input
// format such as "v4l2", "alsa" or "avfoundation". deviceName and options
// are handed to the device's own probing and may be "" and nil. The
// returned slice is owned by the caller; the native device list is freed
// before returning.
//
// An empty or unknown format name reports AVERROR_EINVAL. A missing
// libavdevice reports AVERROR_ENOSYS. Zero devices is success.
func ListInputSources(formatName, deviceName string, options *Dictionary) ([]DeviceInfo, error) {
	if formatName == "" {
		return nil, NewError(AVERROR_EINVAL, "avdevice_list_input_sources")
	}
	if err := RegisterDevices(); err != nil {
		return nil, err
	}
	if avFindInputFormat == nil {
		return nil, bindings.ErrNotLoaded
	}

	cformat := cString(formatName)
	format := avFindInputFormat(cformat)
	runtime.KeepAlive(cformat)
	if format == nil {
		return nil, NewError(AVERROR_EINVAL, "av_find_input_format")
	}

	var cdevice *byte
	if deviceName != "" {
		cdevice = cString(deviceName)
	}
	var opts unsafe.Pointer
	if options != nil {
		opts = options.Pointer()
	}

	var list unsafe.Pointer
	ret := avdeviceListInputSources(format, cdevice, opts, &list)
	runtime.KeepAlive(cdevice)
	if ret < 0 {
		freeDeviceList(&list)
		return nil, NewError(ret, "avdevice_list_input_sources")
	}
	defer freeDeviceList(&list)

	return copyDeviceList(list), nil
}

// copyDeviceList copies the entries of a native AVDeviceInfoList into Go
// strings so the native list can be freed immediately.
func copyDeviceList(list unsafe.Pointer) []DeviceInfo {
	if list == nil {
		return nil
	}
	n := int(readI32(list, layout.DeviceListNbDevices))
	devices := deref(list, layout.DeviceListDevices)
	if n <= 0 || devices == nil {
		return []DeviceInfo{}
	}
	out := make([]DeviceInfo, 0, n)
	for i := 0; i < n; i++ {
		dev := deref(devices, uintptr(i)*unsafe.Sizeof(uintptr(0)))
		if dev == nil {
			continue
		}
		out = append(out, DeviceInfo{
			Name:        goString(deref(dev, layout.DeviceInfoName)),
			Description: goString(deref(dev, layout.DeviceInfoDescription)),
		})
	}
	return out
}

// freeDeviceList releases a native device list. Nil-safe on both the
// pointer and the pointee, like avdevice_free_list_devices itself.
func freeDeviceList(list *unsafe.Pointer) {
	if list == nil || *list == nil || avdeviceFreeListDevices == nil {
		return
	}
	avdeviceFreeListDevices(list)
}
