package texconv

import (
	"context"
	"image"
	"log/slog"

	"github.com/gogpu/texconv/dynimage"
	"github.com/gogpu/texconv/internal/bytecast"
	"github.com/gogpu/texconv/internal/color"
)

// TryIntoDynamic converts a texture back into a decoded image and reports
// whether its color channels are sRGB encoded.
//
//	R8Unorm          Luma8, linear
//	RG8Unorm         LumaA8, linear
//	RGBA8UnormSrgb   RGBA8, sRGB
//	RGBA8Unorm       RGBA8, linear
//	R8Uint           RGBA8 gray (R=G=B=value, A=255), linear
//	R32Float         RGBA8 false color, linear (see below)
//
// The unorm formats share t.Data with the returned image instead of copying
// it. R32Float texels are clamped to [-100,100] and drawn red for positive
// and green for negative values, scaled by magnitude.
//
// ok is false for every other format and whenever len(t.Data) does not match
// the texture size; nothing is allocated in those cases. An unsupported
// format is reported to the logger at Warn level on every call.
func TryIntoDynamic(t *Texture, opts ...Option) (img image.Image, isSRGB bool, ok bool) {
	if t == nil {
		return nil, false, false
	}
	o := buildOptions(opts)

	w, h := t.Width, t.Height
	switch t.Format {
	case FormatR8Unorm:
		if m, fits := dynimage.Luma8FromRaw(w, h, t.Data); fits {
			img, ok = m, true
		}
	case FormatRG8Unorm:
		if m, fits := dynimage.LumaA8FromRaw(w, h, t.Data); fits {
			img, ok = m, true
		}
	case FormatRGBA8UnormSrgb, FormatRGBA8Unorm:
		if m, fits := dynimage.RGBA8FromRaw(w, h, t.Data); fits {
			img, ok = m, true
		}
		isSRGB = t.Format == FormatRGBA8UnormSrgb
	case FormatR8Uint:
		img, ok = grayFromR8Uint(t)
	case FormatR32Float:
		img, ok = falseColorFromR32Float(t)
	default:
		o.logger.Warn("texconv: unsupported texture format",
			"format", t.Format.String(), "width", w, "height", h)
		return nil, false, false
	}

	if !ok {
		if o.logger.Enabled(context.Background(), slog.LevelDebug) {
			o.logger.Debug("texconv: texture data does not match its size",
				"format", t.Format.String(), "width", w, "height", h,
				"len", len(t.Data), "want", t.Format.ImageBytes(w, h))
		}
		return nil, false, false
	}
	return img, isSRGB, true
}

func grayFromR8Uint(t *Texture) (image.Image, bool) {
	if !t.Valid() {
		return nil, false
	}
	m := dynimage.NewRGBA8(t.Width, t.Height)
	for i, v := range t.Data {
		p := m.Pix[i*4 : i*4+4 : i*4+4]
		p[0], p[1], p[2], p[3] = v, v, v, color.Opaque
	}
	return m, true
}

func falseColorFromR32Float(t *Texture) (image.Image, bool) {
	if !t.Valid() {
		return nil, false
	}
	m := dynimage.NewRGBA8(t.Width, t.Height)
	for i := 0; i < t.Width*t.Height; i++ {
		c := color.FalseColor(bytecast.Float32At(t.Data, i))
		p := m.Pix[i*4 : i*4+4 : i*4+4]
		p[0], p[1], p[2], p[3] = c.R, c.G, c.B, c.A
	}
	return m, true
}
