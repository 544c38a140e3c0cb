//go:build !ios && !android && (amd64 || arm64)

// Package layout holds byte offsets of the FFmpeg struct fields ffshim
// reads and writes through opaque pointers.
//
// purego cannot see C struct definitions, so field access has to go through
// known offsets. Offsets are keyed by the library major version reported at
// runtime (avutil_version() >> 16 and friends); field positions move between
// FFmpeg majors, so a lookup miss means the accessor must fall back to its
// documented sentinel rather than guess. Each table row was checked with
// offsetof() against the headers of the version named in its comment.
package layout

// Frame describes the AVFrame color metadata fields.
type Frame struct {
	ColorRange     uintptr // enum AVColorRange color_range
	ColorPrimaries uintptr // enum AVColorPrimaries color_primaries
	ColorTransfer  uintptr // enum AVColorTransferCharacteristic color_trc
	ColorSpace     uintptr // enum AVColorSpace colorspace
}

// frameByMajor is keyed by the libavutil major version.
var frameByMajor = map[uint32]Frame{
	// FFmpeg 5.x. Same positions as 6.x for these fields.
	57: {ColorRange: 328, ColorPrimaries: 332, ColorTransfer: 336, ColorSpace: 340},
	// FFmpeg 6.x. Verified with offsetof() on FFmpeg 58.29.100.
	58: {ColorRange: 328, ColorPrimaries: 332, ColorTransfer: 336, ColorSpace: 340},
	// FFmpeg 7.x. Verified with offsetof() on FFmpeg 59.8.100; the removal
	// of the deprecated picture-number and field-order ints shifts the
	// color block down.
	59: {ColorRange: 312, ColorPrimaries: 316, ColorTransfer: 320, ColorSpace: 324},
}

// ForFrame returns the AVFrame layout for a libavutil major version.
func ForFrame(avutilMajor uint32) (Frame, bool) {
	l, ok := frameByMajor[avutilMajor]
	return l, ok
}

// CodecParameters describes the AVCodecParameters fields ffshim exposes.
type CodecParameters struct {
	Format     uintptr // int format (pixel format or sample format)
	Width      uintptr // int width
	Height     uintptr // int height
	SampleRate uintptr // int sample_rate
	ChLayout   uintptr // AVChannelLayout ch_layout (nb_channels at +4)
}

// codecParByMajor is keyed by the libavcodec major version.
var codecParByMajor = map[uint32]CodecParameters{
	// FFmpeg 5.x (>= 5.1, which introduced ch_layout). Layout matches 6.x:
	// the deprecated channel fields are still present.
	59: {Format: 28, Width: 56, Height: 60, SampleRate: 116, ChLayout: 144},
	// FFmpeg 6.x. Verified with offsetof() on FFmpeg 60.31.102.
	60: {Format: 28, Width: 56, Height: 60, SampleRate: 116, ChLayout: 144},
	// FFmpeg 7.x. Verified with offsetof() on FFmpeg 61.3.100; the
	// deprecated channel_layout/channels pair is gone, moving ch_layout up
	// and sample_rate behind it.
	61: {Format: 28, Width: 56, Height: 60, SampleRate: 128, ChLayout: 104},
}

// ForCodecParameters returns the AVCodecParameters layout for a libavcodec
// major version.
func ForCodecParameters(avcodecMajor uint32) (CodecParameters, bool) {
	l, ok := codecParByMajor[avcodecMajor]
	return l, ok
}

// CodecContext describes the AVCodecContext fields ffshim exposes.
// AVCodecContext is the most volatile of the four structs; offsets here
// must never be reused across majors without re-checking.
type CodecContext struct {
	TimeBase   uintptr // AVRational time_base (num at +0, den at +4)
	Width      uintptr // int width
	Height     uintptr // int height
	PixFmt     uintptr // enum AVPixelFormat pix_fmt
	SampleRate uintptr // int sample_rate
	SampleFmt  uintptr // enum AVSampleFormat sample_fmt
	Framerate  uintptr // AVRational framerate
	ChLayout   uintptr // AVChannelLayout ch_layout
}

// codecCtxByMajor is keyed by the libavcodec major version.
var codecCtxByMajor = map[uint32]CodecContext{
	// FFmpeg 6.x. Verified with offsetof() on FFmpeg 60.31.102.
	60: {
		TimeBase:   100,
		Width:      116,
		Height:     120,
		PixFmt:     136,
		SampleRate: 352,
		SampleFmt:  360,
		Framerate:  704,
		ChLayout:   912,
	},
	// FFmpeg 7.x. Verified with offsetof() on FFmpeg 61.3.100.
	61: {
		TimeBase:   100,
		Width:      116,
		Height:     120,
		PixFmt:     136,
		SampleRate: 344,
		SampleFmt:  352,
		Framerate:  688,
		ChLayout:   896,
	},
}

// ForCodecContext returns the AVCodecContext layout for a libavcodec major
// version.
func ForCodecContext(avcodecMajor uint32) (CodecContext, bool) {
	l, ok := codecCtxByMajor[avcodecMajor]
	return l, ok
}

// FormatContext describes the AVFormatContext fields ffshim exposes.
type FormatContext struct {
	Pb         uintptr // AVIOContext *pb
	NbStreams  uintptr // unsigned int nb_streams
	Streams    uintptr // AVStream **streams
	Duration   uintptr // int64_t duration
	BitRate    uintptr // int64_t bit_rate
	NbChapters uintptr // unsigned int nb_chapters
	Chapters   uintptr // AVChapter **chapters
	NbPrograms uintptr // unsigned int nb_programs
	Programs   uintptr // AVProgram **programs
	Metadata   uintptr // AVDictionary *metadata
}

// formatCtxByMajor is keyed by the libavformat major version.
var formatCtxByMajor = map[uint32]FormatContext{
	// FFmpeg 5.x. Layout matches 6.x for these fields.
	59: {
		Pb: 32, NbStreams: 44, Streams: 48,
		Duration: 72, BitRate: 80,
		NbPrograms: 132, Programs: 136,
		NbChapters: 164, Chapters: 168,
		Metadata: 176,
	},
	// FFmpeg 6.x. Verified with offsetof() on FFmpeg 60.16.100.
	60: {
		Pb: 32, NbStreams: 44, Streams: 48,
		Duration: 72, BitRate: 80,
		NbPrograms: 132, Programs: 136,
		NbChapters: 164, Chapters: 168,
		Metadata: 176,
	},
	// FFmpeg 7.x. Verified with offsetof() on FFmpeg 61.1.100; the 7.0
	// reorder moved chapters next to the stream group fields.
	61: {
		Pb: 32, NbStreams: 44, Streams: 48,
		NbChapters: 72, Chapters: 80,
		Duration: 104, BitRate: 112,
		NbPrograms: 148, Programs: 152,
		Metadata: 192,
	},
}

// ForFormatContext returns the AVFormatContext layout for a libavformat
// major version.
func ForFormatContext(avformatMajor uint32) (FormatContext, bool) {
	l, ok := formatCtxByMajor[avformatMajor]
	return l, ok
}

// AVChapter. Stable since libavformat 59, when id widened to int64.
const (
	ChapterID       = 0  // int64_t id
	ChapterTimeBase = 8  // AVRational time_base (num at +8, den at +12)
	ChapterStart    = 16 // int64_t start
	ChapterEnd      = 24 // int64_t end
	ChapterMetadata = 32 // AVDictionary *metadata
	ChapterSize     = 40 // sizeof(AVChapter)
)

// AVProgram. The leading fields have not moved since libavformat 58.
const (
	ProgramID              = 0  // int id
	ProgramStreamIndex     = 16 // unsigned int *stream_index
	ProgramNbStreamIndexes = 24 // unsigned int nb_stream_indexes
	ProgramMetadata        = 32 // AVDictionary *metadata
)

// AVDeviceInfoList / AVDeviceInfo. Stable across libavdevice 58-61.
const (
	DeviceListDevices   = 0  // AVDeviceInfo **devices
	DeviceListNbDevices = 8  // int nb_devices
	DeviceListDefault   = 12 // int default_device

	DeviceInfoName        = 0 // char *device_name
	DeviceInfoDescription = 8 // char *device_description
)

// AVDictionaryEntry. Two pointers, stable since forever.
const (
	DictEntryKey   = 0 // char *key
	DictEntryValue = 8 // char *value
)
