package texconv

import (
	"strings"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/texconv/internal/bytecast"
)

// Format is the closed set of texture pixel formats texconv produces and
// reads. Multi-byte samples are stored little-endian.
type Format uint8

const (
	// FormatR8Unorm is one 8-bit normalized unsigned channel.
	FormatR8Unorm Format = iota + 1

	// FormatRG8Unorm is two 8-bit normalized unsigned channels.
	FormatRG8Unorm

	// FormatRGBA8Unorm is 8-bit RGBA, normalized unsigned, linear.
	FormatRGBA8Unorm

	// FormatRGBA8UnormSrgb is 8-bit RGBA, normalized unsigned, sRGB encoded.
	FormatRGBA8UnormSrgb

	// FormatR8Uint is one 8-bit unsigned integer channel.
	FormatR8Uint

	// FormatR16Uint is one 16-bit unsigned integer channel.
	FormatR16Uint

	// FormatRG16Uint is two 16-bit unsigned integer channels.
	FormatRG16Uint

	// FormatRGBA16Uint is four 16-bit unsigned integer channels.
	FormatRGBA16Uint

	// FormatR32Float is one 32-bit float channel.
	FormatR32Float

	// FormatRGBA32Float is four 32-bit float channels.
	FormatRGBA32Float

	formatEnd
)

// SampleKind is the numeric interpretation of a format's samples.
type SampleKind uint8

const (
	// KindUnorm samples are unsigned integers normalized to [0,1].
	KindUnorm SampleKind = iota + 1
	// KindUint samples are plain unsigned integers.
	KindUint
	// KindFloat samples are IEEE 754 floats.
	KindFloat
)

// FormatInfo contains metadata about a texture format.
type FormatInfo struct {
	// Name is the WebGPU name of the format, e.g. "rgba8unorm-srgb".
	Name string

	// TexelSize is the number of bytes per texel.
	TexelSize int

	// Channels is the number of channels per texel.
	Channels int

	// BitsPerChannel is the width of one sample in bits.
	BitsPerChannel int

	// Kind is how samples are interpreted.
	Kind SampleKind

	// IsSRGB reports that color channels are sRGB encoded.
	IsSRGB bool

	// GPU is the matching WebGPU texture format.
	GPU gputypes.TextureFormat
}

var formatInfoTable = [formatEnd]FormatInfo{
	FormatR8Unorm: {
		Name: "r8unorm", TexelSize: 1, Channels: 1, BitsPerChannel: 8,
		Kind: KindUnorm, GPU: gputypes.TextureFormatR8Unorm,
	},
	FormatRG8Unorm: {
		Name: "rg8unorm", TexelSize: 2, Channels: 2, BitsPerChannel: 8,
		Kind: KindUnorm, GPU: gputypes.TextureFormatRG8Unorm,
	},
	FormatRGBA8Unorm: {
		Name: "rgba8unorm", TexelSize: 4, Channels: 4, BitsPerChannel: 8,
		Kind: KindUnorm, GPU: gputypes.TextureFormatRGBA8Unorm,
	},
	FormatRGBA8UnormSrgb: {
		Name: "rgba8unorm-srgb", TexelSize: 4, Channels: 4, BitsPerChannel: 8,
		Kind: KindUnorm, IsSRGB: true, GPU: gputypes.TextureFormatRGBA8UnormSrgb,
	},
	FormatR8Uint: {
		Name: "r8uint", TexelSize: 1, Channels: 1, BitsPerChannel: 8,
		Kind: KindUint, GPU: gputypes.TextureFormatR8Uint,
	},
	FormatR16Uint: {
		Name: "r16uint", TexelSize: 2, Channels: 1, BitsPerChannel: 16,
		Kind: KindUint, GPU: gputypes.TextureFormatR16Uint,
	},
	FormatRG16Uint: {
		Name: "rg16uint", TexelSize: 4, Channels: 2, BitsPerChannel: 16,
		Kind: KindUint, GPU: gputypes.TextureFormatRG16Uint,
	},
	FormatRGBA16Uint: {
		Name: "rgba16uint", TexelSize: 8, Channels: 4, BitsPerChannel: 16,
		Kind: KindUint, GPU: gputypes.TextureFormatRGBA16Uint,
	},
	FormatR32Float: {
		Name: "r32float", TexelSize: 4, Channels: 1, BitsPerChannel: 32,
		Kind: KindFloat, GPU: gputypes.TextureFormatR32Float,
	},
	FormatRGBA32Float: {
		Name: "rgba32float", TexelSize: 16, Channels: 4, BitsPerChannel: 32,
		Kind: KindFloat, GPU: gputypes.TextureFormatRGBA32Float,
	},
}

// Info returns the FormatInfo for this format, or the zero FormatInfo for an
// invalid value.
func (f Format) Info() FormatInfo {
	if !f.IsValid() {
		return FormatInfo{}
	}
	return formatInfoTable[f]
}

// IsValid returns true if f is one of the defined formats.
func (f Format) IsValid() bool {
	return f > 0 && f < formatEnd
}

// TexelSize returns the number of bytes per texel.
func (f Format) TexelSize() int {
	return f.Info().TexelSize
}

// Channels returns the number of channels per texel.
func (f Format) Channels() int {
	return f.Info().Channels
}

// IsSRGB returns true if the color channels are sRGB encoded.
func (f Format) IsSRGB() bool {
	return f.Info().IsSRGB
}

// ImageBytes returns the buffer size of a width x height texture, or -1 when
// the format is invalid, a dimension is negative, or the size overflows int.
func (f Format) ImageBytes(width, height int) int {
	if !f.IsValid() {
		return -1
	}
	n, ok := bytecast.Len(width, height, f.TexelSize())
	if !ok {
		return -1
	}
	return n
}

// WithSRGB returns the sRGB or linear twin of an 8-bit RGBA format.
// Other formats carry no color-space distinction and are returned unchanged.
func (f Format) WithSRGB(srgb bool) Format {
	switch f {
	case FormatRGBA8Unorm, FormatRGBA8UnormSrgb:
		if srgb {
			return FormatRGBA8UnormSrgb
		}
		return FormatRGBA8Unorm
	default:
		return f
	}
}

// GPU returns the WebGPU texture format, or gputypes.TextureFormatUndefined
// for an invalid value.
func (f Format) GPU() gputypes.TextureFormat {
	if !f.IsValid() {
		return gputypes.TextureFormatUndefined
	}
	return formatInfoTable[f].GPU
}

// String returns the WebGPU name of the format.
func (f Format) String() string {
	if !f.IsValid() {
		return "unknown"
	}
	return formatInfoTable[f].Name
}

// Formats returns every defined format in declaration order.
func Formats() []Format {
	out := make([]Format, 0, formatEnd-1)
	for f := FormatR8Unorm; f < formatEnd; f++ {
		out = append(out, f)
	}
	return out
}

// ParseFormat looks up a format by its WebGPU name. Matching ignores case,
// and "_" may stand in for "-".
func ParseFormat(name string) (Format, bool) {
	name = strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	for f := FormatR8Unorm; f < formatEnd; f++ {
		if formatInfoTable[f].Name == name {
			return f, true
		}
	}
	return 0, false
}

// FormatFromGPU maps a WebGPU texture format back to a Format. It reports
// false for WebGPU formats outside the supported set.
func FormatFromGPU(g gputypes.TextureFormat) (Format, bool) {
	for f := FormatR8Unorm; f < formatEnd; f++ {
		if formatInfoTable[f].GPU == g {
			return f, true
		}
	}
	return 0, false
}
