package texconv

import (
	"fmt"

	"github.com/gogpu/gputypes"
)

// Texture is a single 2D texture: raw texel bytes tagged with a Format.
// Depth and array layer count are always 1.
//
// The invariant len(Data) == Format.ImageBytes(Width, Height) is checked by
// NewTexture. A Texture built as a literal skips that check, and
// TryIntoDynamic re-validates the length before reading Data.
type Texture struct {
	Width  int
	Height int
	Format Format
	Data   []byte
}

// NewTexture returns a texture that owns data.
//
// It panics if the format is invalid, a dimension is negative, the size
// overflows int, or len(data) does not match the format's texel size. These
// are programming errors.
func NewTexture(width, height int, format Format, data []byte) *Texture {
	if !format.IsValid() {
		panic(fmt.Sprintf("texconv: invalid texture format %d", format))
	}
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("texconv: invalid texture size %dx%d", width, height))
	}
	want := format.ImageBytes(width, height)
	if want < 0 {
		panic(fmt.Sprintf("texconv: %s texture %dx%d is too large", format, width, height))
	}
	if len(data) != want {
		panic(fmt.Sprintf("texconv: %s texture %dx%d needs %d bytes, got %d",
			format, width, height, want, len(data)))
	}
	return &Texture{Width: width, Height: height, Format: format, Data: data}
}

// Valid reports whether the texture satisfies the size invariant.
func (t *Texture) Valid() bool {
	if t == nil {
		return false
	}
	want := t.Format.ImageBytes(t.Width, t.Height)
	return want >= 0 && len(t.Data) == want
}

// TextureDescriptor describes the GPU texture that holds a Texture.
// It mirrors the WebGPU GPUTextureDescriptor.
type TextureDescriptor struct {
	// Label is an optional debug name.
	Label string

	// Size is the texture dimensions.
	Size gputypes.Extent3D

	// MipLevelCount is the number of mip levels.
	MipLevelCount uint32

	// SampleCount is the number of samples per pixel.
	SampleCount uint32

	// Dimension is always gputypes.TextureDimension2D.
	Dimension gputypes.TextureDimension

	// Format is the WebGPU pixel format.
	Format gputypes.TextureFormat

	// Usage allows sampling and uploading.
	Usage gputypes.TextureUsage
}

// Descriptor returns the descriptor a renderer needs to allocate a GPU
// texture for t and upload Data into it.
func (t *Texture) Descriptor(label string) TextureDescriptor {
	return TextureDescriptor{
		Label: label,
		Size: gputypes.Extent3D{
			Width:              safeIntToUint32(t.Width),
			Height:             safeIntToUint32(t.Height),
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        t.Format.GPU(),
		Usage:         gputypes.TextureUsageTextureBinding | gputypes.TextureUsageCopyDst,
	}
}

// DataLayout returns the layout of Data for a queue texture write.
// Rows are tightly packed.
func (t *Texture) DataLayout() gputypes.TextureDataLayout {
	return gputypes.TextureDataLayout{
		BytesPerRow:  safeIntToUint32(t.Width * t.Format.TexelSize()),
		RowsPerImage: safeIntToUint32(t.Height),
	}
}

// safeIntToUint32 converts int to uint32.
// Returns 0 for negative values and clamps values exceeding uint32 max.
func safeIntToUint32(v int) uint32 {
	if v < 0 {
		return 0
	}
	if uint64(v) > uint64(^uint32(0)) {
		return ^uint32(0)
	}
	return uint32(v)
}
