//go:build !ios && !android && (amd64 || arm64)

package ffshim

import (
	"runtime"
	"unsafe"

	"github.com/obinnaokechukwu/ffshim/internal/bindings"
	"github.com/obinnaokechukwu/ffshim/internal/layout"
)

// Dictionary flags (AV_DICT_*)
const (
	dictMatchCase    = 1
	dictIgnoreSuffix = 2
)

// A Dictionary wraps an FFmpeg key/value dictionary (AVDictionary). The
// zero value is an empty dictionary; the native dictionary is allocated
// lazily on the first Set, matching native semantics where a NULL
// AVDictionary* is a valid empty dictionary.
type Dictionary struct {
	ptr unsafe.Pointer
}

var (
	avDictSet   func(pm *unsafe.Pointer, key, value *byte, flags int32) int32
	avDictGet   func(m unsafe.Pointer, key *byte, prev unsafe.Pointer, flags int32) unsafe.Pointer
	avDictFree  func(pm *unsafe.Pointer)
	avDictCount func(m unsafe.Pointer) int32
)

// NewDictionary creates a dictionary from a Go map. Returns an error if
// any entry cannot be set; the partially built dictionary is freed.
func NewDictionary(entries map[string]string) (*Dictionary, error) {
	d := &Dictionary{}
	for k, v := range entries {
		if err := d.Set(k, v); err != nil {
			d.Free()
			return nil, err
		}
	}
	return d, nil
}

// wrapDictionary wraps an existing native dictionary pointer without
// taking ownership.
func wrapDictionary(ptr unsafe.Pointer) *Dictionary {
	return &Dictionary{ptr: ptr}
}

// Set stores a key/value pair (av_dict_set), replacing any existing value
// for the key.
func (d *Dictionary) Set(key, value string) error {
	if d == nil {
		return NewError(AVERROR_EINVAL, "av_dict_set")
	}
	if avDictSet == nil {
		return bindings.ErrNotLoaded
	}
	ck := cString(key)
	cv := cString(value)
	ret := avDictSet(&d.ptr, ck, cv, 0)
	runtime.KeepAlive(ck)
	runtime.KeepAlive(cv)
	return NewError(ret, "av_dict_set")
}

// Get returns the value for a key, or "" and false if the key is absent
// or the dictionary is empty.
func (d *Dictionary) Get(key string) (string, bool) {
	if d == nil || d.ptr == nil || avDictGet == nil {
		return "", false
	}
	ck := cString(key)
	entry := avDictGet(d.ptr, ck, nil, dictMatchCase)
	runtime.KeepAlive(ck)
	if entry == nil {
		return "", false
	}
	return goString(deref(entry, layout.DictEntryValue)), true
}

// Len returns the number of entries (av_dict_count).
func (d *Dictionary) Len() int {
	if d == nil || d.ptr == nil || avDictCount == nil {
		return 0
	}
	return int(avDictCount(d.ptr))
}

// Map copies all entries into a Go map.
func (d *Dictionary) Map() map[string]string {
	out := make(map[string]string)
	if d == nil || d.ptr == nil || avDictGet == nil {
		return out
	}
	empty := cString("")
	var entry unsafe.Pointer
	for {
		entry = avDictGet(d.ptr, empty, entry, dictIgnoreSuffix)
		if entry == nil {
			break
		}
		key := goString(deref(entry, layout.DictEntryKey))
		out[key] = goString(deref(entry, layout.DictEntryValue))
	}
	runtime.KeepAlive(empty)
	return out
}

// Pointer returns the underlying native pointer. The pointer may change
// across Set calls since the native dictionary reallocates.
func (d *Dictionary) Pointer() unsafe.Pointer {
	if d == nil {
		return nil
	}
	return d.ptr
}

// Free releases the native dictionary (av_dict_free). Safe on a nil or
// empty dictionary, and safe to call more than once.
func (d *Dictionary) Free() {
	if d == nil || d.ptr == nil || avDictFree == nil {
		return
	}
	avDictFree(&d.ptr)
	d.ptr = nil
}
