//go:build !ios && !android && (amd64 || arm64)

package ffshim

import "testing"

func TestAddChapterNilContext(t *testing.T) {
	var ctx *FormatContext
	md, _ := NewDictionary(nil)

	ch, owner, err := ctx.AddChapter(1, TimeBaseMilli, 0, 1000, md)
	if err == nil {
		t.Fatal("expected error on nil context")
	}
	if ch != nil {
		t.Error("got a chapter from a nil context")
	}
	if owner != MetadataRetainedByCaller {
		t.Errorf("ownership = %v, want retained by caller", owner)
	}

	ctx = WrapFormatContext(nil)
	if _, owner, err := ctx.AddChapter(1, TimeBaseMilli, 0, 1000, nil); err == nil || owner != MetadataRetainedByCaller {
		t.Errorf("nil pointer: err=%v owner=%v", err, owner)
	}
}

func TestMetadataOwnershipString(t *testing.T) {
	if MetadataRetainedByCaller.String() != "retained by caller" {
		t.Error("bad String for retained")
	}
	if MetadataOwnedByChapter.String() != "owned by chapter" {
		t.Error("bad String for owned")
	}
}

func TestAddChapter(t *testing.T) {
	registerTestBindings(t)

	native := avformatAllocContext()
	if native == nil {
		t.Fatal("avformat_alloc_context returned nil")
	}
	defer avformatFreeContext(native)
	ctx := WrapFormatContext(native)

	if n := ctx.NumChapters(); n != 0 {
		t.Fatalf("fresh context has %d chapters", n)
	}

	md, err := NewDictionary(map[string]string{"title": "Intro"})
	if err != nil {
		t.Fatalf("NewDictionary failed: %v", err)
	}

	ch, owner, err := ctx.AddChapter(1, TimeBaseMilli, 0, 60000, md)
	if err != nil {
		t.Fatalf("AddChapter failed: %v", err)
	}
	if owner != MetadataOwnedByChapter {
		t.Errorf("ownership = %v, want owned by chapter", owner)
	}
	if md.Pointer() != nil {
		t.Error("dictionary pointer not stolen on success")
	}

	if got := ch.ID(); got != 1 {
		t.Errorf("ID = %d, want 1", got)
	}
	if got := ch.TimeBase(); got != TimeBaseMilli {
		t.Errorf("TimeBase = %d/%d, want 1/1000", got.Num, got.Den)
	}
	if got := ch.Start(); got != 0 {
		t.Errorf("Start = %d, want 0", got)
	}
	if got := ch.End(); got != 60000 {
		t.Errorf("End = %d, want 60000", got)
	}
	if title, ok := ch.Metadata().Get("title"); !ok || title != "Intro" {
		t.Errorf("metadata title = %q/%v, want Intro", title, ok)
	}

	// Chapters append in order.
	for i := int64(2); i <= 4; i++ {
		if _, _, err := ctx.AddChapter(i, TimeBaseMilli, (i-1)*60000, i*60000, nil); err != nil {
			t.Fatalf("AddChapter %d failed: %v", i, err)
		}
	}
	if n := ctx.NumChapters(); n != 4 {
		t.Fatalf("NumChapters = %d, want 4", n)
	}
	for i := 0; i < 4; i++ {
		got := ctx.ChapterAt(i)
		if got == nil {
			t.Fatalf("ChapterAt(%d) = nil", i)
		}
		if got.ID() != int64(i+1) {
			t.Errorf("ChapterAt(%d).ID = %d, want %d", i, got.ID(), i+1)
		}
	}
	if ctx.ChapterAt(4) != nil {
		t.Error("ChapterAt past the end should be nil")
	}
	if ctx.ChapterAt(-1) != nil {
		t.Error("ChapterAt(-1) should be nil")
	}
}
