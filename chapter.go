//go:build !ios && !android && (amd64 || arm64)

package ffshim

import (
	"unsafe"

	"github.com/obinnaokechukwu/ffshim/internal/bindings"
	"github.com/obinnaokechukwu/ffshim/internal/layout"
)

var (
	avMallocz      func(size uintptr) unsafe.Pointer
	avFreep        func(ptr unsafe.Pointer)
	avReallocArray func(ptr unsafe.Pointer, nmemb, size uintptr) unsafe.Pointer
)

// MetadataOwnership reports who owns a metadata dictionary after an
// AddChapter call. On success the chapter steals the dictionary; on any
// failure the caller keeps it and remains responsible for freeing it.
// The ownership value is meaningful on both paths, so callers never have
// to guess from the error which side must free.
type MetadataOwnership int

const (
	// MetadataRetainedByCaller means the dictionary was not attached and
	// the caller must still free it.
	MetadataRetainedByCaller MetadataOwnership = iota
	// MetadataOwnedByChapter means the chapter took the dictionary and
	// will free it with the format context.
	MetadataOwnedByChapter
)

func (o MetadataOwnership) String() string {
	if o == MetadataOwnedByChapter {
		return "owned by chapter"
	}
	return "retained by caller"
}

// AddChapter appends a chapter to the format context's chapter array,
// the way avpriv_new_chapter does: allocate the chapter, grow the array,
// and only then attach it. Start and end are in timeBase units.
//
// The metadata dictionary (which may be nil) transfers to the chapter
// only on success; the returned MetadataOwnership says which side must
// free it. On any error the context is left unchanged.
func (c *FormatContext) AddChapter(id int64, timeBase Rational, start, end int64, metadata *Dictionary) (*Chapter, MetadataOwnership, error) {
	if c == nil || c.ptr == nil {
		return nil, MetadataRetainedByCaller, NewError(AVERROR_EINVAL, "add_chapter")
	}
	if avMallocz == nil || avReallocArray == nil {
		return nil, MetadataRetainedByCaller, bindings.ErrNotLoaded
	}
	lo, ok := layout.ForFormatContext(bindings.AVFormatVersion() >> 16)
	if !ok {
		return nil, MetadataRetainedByCaller, NewError(AVERROR_ENOSYS, "add_chapter")
	}

	ch := avMallocz(layout.ChapterSize)
	if ch == nil {
		return nil, MetadataRetainedByCaller, NewError(AVERROR_ENOMEM, "av_mallocz")
	}
	writeI64(ch, layout.ChapterID, id)
	writeQ(ch, layout.ChapterTimeBase, timeBase)
	writeI64(ch, layout.ChapterStart, start)
	writeI64(ch, layout.ChapterEnd, end)

	nb := uintptr(readU32(c.ptr, lo.NbChapters))
	ptrSize := unsafe.Sizeof(uintptr(0))
	chapters := avReallocArray(deref(c.ptr, lo.Chapters), nb+1, ptrSize)
	if chapters == nil {
		avFreep(unsafe.Pointer(&ch))
		return nil, MetadataRetainedByCaller, NewError(AVERROR_ENOMEM, "av_realloc_array")
	}

	*(*unsafe.Pointer)(unsafe.Add(chapters, nb*ptrSize)) = ch
	*(*unsafe.Pointer)(unsafe.Add(c.ptr, lo.Chapters)) = chapters
	*(*uint32)(unsafe.Add(c.ptr, lo.NbChapters)) = uint32(nb + 1)

	// Attach metadata last: every failure path above leaves it with the
	// caller, and this store cannot fail.
	if metadata != nil && metadata.ptr != nil {
		*(*unsafe.Pointer)(unsafe.Add(ch, layout.ChapterMetadata)) = metadata.ptr
		metadata.ptr = nil
	}
	return &Chapter{ptr: ch}, MetadataOwnedByChapter, nil
}
