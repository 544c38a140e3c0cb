//go:build !ios && !android && (amd64 || arm64)

package layout

import "testing"

func TestForFrameKnownMajors(t *testing.T) {
	for _, major := range []uint32{57, 58, 59} {
		l, ok := ForFrame(major)
		if !ok {
			t.Errorf("avutil major %d should have a frame layout", major)
			continue
		}
		// The four color fields are consecutive ints in every known major.
		if l.ColorPrimaries != l.ColorRange+4 ||
			l.ColorTransfer != l.ColorRange+8 ||
			l.ColorSpace != l.ColorRange+12 {
			t.Errorf("avutil major %d: color fields not consecutive: %+v", major, l)
		}
	}
}

func TestForFrameUnknownMajor(t *testing.T) {
	if _, ok := ForFrame(42); ok {
		t.Error("unknown avutil major should report no layout")
	}
}

func TestForCodecContextUnknownMajor(t *testing.T) {
	if _, ok := ForCodecContext(55); ok {
		t.Error("unknown avcodec major should report no layout")
	}
}

func TestForCodecParametersOrdering(t *testing.T) {
	for _, major := range []uint32{59, 60, 61} {
		l, ok := ForCodecParameters(major)
		if !ok {
			t.Errorf("avcodec major %d should have a codecpar layout", major)
			continue
		}
		if l.Height != l.Width+4 {
			t.Errorf("avcodec major %d: height should follow width: %+v", major, l)
		}
	}
}

func TestForFormatContextChapterFields(t *testing.T) {
	for _, major := range []uint32{59, 60, 61} {
		l, ok := ForFormatContext(major)
		if !ok {
			t.Errorf("avformat major %d should have a format context layout", major)
			continue
		}
		if l.Chapters != l.NbChapters+4 && l.Chapters != l.NbChapters+8 {
			t.Errorf("avformat major %d: chapters pointer should directly follow nb_chapters: %+v", major, l)
		}
	}
}

func TestChapterRecordSize(t *testing.T) {
	// id + time_base + start + end + metadata
	if ChapterSize != ChapterMetadata+8 {
		t.Errorf("chapter size %d does not cover the metadata pointer", ChapterSize)
	}
}
