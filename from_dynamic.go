package texconv

import (
	"context"
	"image"
	"log/slog"

	"golang.org/x/image/draw"

	"github.com/gogpu/texconv/dynimage"
	"github.com/gogpu/texconv/internal/bytecast"
	"github.com/gogpu/texconv/internal/color"
)

// floatAlphaBits is the alpha lane written for RGB32F images by default: the
// maximum uint16 value zero-extended into a 32-bit float lane.
const floatAlphaBits uint32 = uint32(color.Opaque16)

// FromDynamic converts a decoded image into a texture. Every image converts;
// there is no failure result.
//
// isSRGB selects FormatRGBA8UnormSrgb over FormatRGBA8Unorm for the 8-bit
// variants and is ignored for every other variant:
//
//	Luma8, LumaA8, RGB8   expanded to RGBA8 (alpha 255 when absent)
//	RGBA8                 RGBA8, Pix reused as Data without copying
//	Luma16                R16Uint
//	LumaA16               RG16Uint
//	RGB16                 RGBA16Uint, alpha 0xFFFF
//	RGBA16                RGBA16Uint
//	RGB32F                RGBA32Float, alpha lane see WithOpaqueFloatAlpha
//	RGBA32F               RGBA32Float
//
// Any other image.Image is converted to straight-alpha RGBA8 and tagged
// FormatRGBA8UnormSrgb regardless of isSRGB. Standard library images take
// this path too unless adapted with dynimage.FromImage first.
//
// FromDynamic takes ownership of img: the texture may alias its samples.
// A variant whose Pix length does not match its Width and Height, or whose
// size is negative, is a programming error and panics as in NewTexture.
// Variants built with the dynimage constructors always match.
func FromDynamic(img image.Image, isSRGB bool, opts ...Option) *Texture {
	o := buildOptions(opts)
	rgba8 := FormatRGBA8Unorm.WithSRGB(isSRGB)

	var t *Texture
	switch m := img.(type) {
	case *dynimage.Luma8:
		t = NewTexture(m.Width, m.Height, rgba8, expandLuma8(m.Pix))
	case *dynimage.LumaA8:
		t = NewTexture(m.Width, m.Height, rgba8, expandLumaA8(m.Pix))
	case *dynimage.RGB8:
		t = NewTexture(m.Width, m.Height, rgba8, expandRGB8(m.Pix))
	case *dynimage.RGBA8:
		t = NewTexture(m.Width, m.Height, rgba8, m.Pix)
	case *dynimage.Luma16:
		t = NewTexture(m.Width, m.Height, FormatR16Uint, bytecast.Uint16s(m.Pix))
	case *dynimage.LumaA16:
		t = NewTexture(m.Width, m.Height, FormatRG16Uint, bytecast.Uint16s(m.Pix))
	case *dynimage.RGB16:
		t = NewTexture(m.Width, m.Height, FormatRGBA16Uint, expandRGB16(m.Pix))
	case *dynimage.RGBA16:
		t = NewTexture(m.Width, m.Height, FormatRGBA16Uint, bytecast.Uint16s(m.Pix))
	case *dynimage.RGB32F:
		t = NewTexture(m.Width, m.Height, FormatRGBA32Float, expandRGB32F(m.Pix, o.opaqueFloatAlpha))
	case *dynimage.RGBA32F:
		t = NewTexture(m.Width, m.Height, FormatRGBA32Float, bytecast.Float32s(m.Pix))
	default:
		// The caller's color space is unknown for arbitrary images.
		n := toNRGBA(img)
		t = NewTexture(n.Rect.Dx(), n.Rect.Dy(), FormatRGBA8UnormSrgb, n.Pix)
	}

	if o.logger.Enabled(context.Background(), slog.LevelDebug) {
		o.logger.Debug("texconv: image to texture",
			"image", variantName(img), "format", t.Format.String(),
			"width", t.Width, "height", t.Height)
	}
	return t
}

// toNRGBA draws any image into a tightly packed straight-alpha RGBA8 buffer
// anchored at the origin.
func toNRGBA(img image.Image) *image.NRGBA {
	b := img.Bounds()
	n := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(n, n.Rect, img, b.Min, draw.Src)
	return n
}

func expandLuma8(pix []uint8) []byte {
	out := make([]byte, 0, len(pix)*4)
	for _, l := range pix {
		out = append(out, l, l, l, color.Opaque)
	}
	return out
}

func expandLumaA8(pix []uint8) []byte {
	out := make([]byte, 0, len(pix)*2)
	for i := 0; i+1 < len(pix); i += 2 {
		l := pix[i]
		out = append(out, l, l, l, pix[i+1])
	}
	return out
}

func expandRGB8(pix []uint8) []byte {
	out := make([]byte, 0, len(pix)/3*4)
	for i := 0; i+2 < len(pix); i += 3 {
		out = append(out, pix[i], pix[i+1], pix[i+2], color.Opaque)
	}
	return out
}

func expandRGB16(pix []uint16) []byte {
	out := make([]byte, 0, len(pix)/3*8)
	for i := 0; i+2 < len(pix); i += 3 {
		out = bytecast.AppendUint16(out, pix[i])
		out = bytecast.AppendUint16(out, pix[i+1])
		out = bytecast.AppendUint16(out, pix[i+2])
		out = bytecast.AppendUint16(out, color.Opaque16)
	}
	return out
}

func expandRGB32F(pix []float32, opaqueAlpha bool) []byte {
	out := make([]byte, 0, len(pix)/3*16)
	for i := 0; i+2 < len(pix); i += 3 {
		out = bytecast.AppendFloat32(out, pix[i])
		out = bytecast.AppendFloat32(out, pix[i+1])
		out = bytecast.AppendFloat32(out, pix[i+2])
		if opaqueAlpha {
			out = bytecast.AppendFloat32(out, 1)
		} else {
			out = bytecast.AppendUint32(out, floatAlphaBits)
		}
	}
	return out
}

// variantName names the decoded-image arm for diagnostics.
func variantName(img image.Image) string {
	switch img.(type) {
	case *dynimage.Luma8:
		return "luma8"
	case *dynimage.LumaA8:
		return "lumaa8"
	case *dynimage.RGB8:
		return "rgb8"
	case *dynimage.RGBA8:
		return "rgba8"
	case *dynimage.Luma16:
		return "luma16"
	case *dynimage.LumaA16:
		return "lumaa16"
	case *dynimage.RGB16:
		return "rgb16"
	case *dynimage.RGBA16:
		return "rgba16"
	case *dynimage.RGB32F:
		return "rgb32f"
	case *dynimage.RGBA32F:
		return "rgba32f"
	default:
		return "other"
	}
}
