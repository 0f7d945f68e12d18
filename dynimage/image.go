// Package dynimage defines the decoded-image variants that texconv converts
// to and from GPU textures.
//
// Each variant stores its samples in a contiguous Pix slice in row-major,
// channel-interleaved order, with the sample type implied by the variant:
//
//	Luma8, LumaA8, RGB8, RGBA8          uint8 samples
//	Luma16, LumaA16, RGB16, RGBA16      uint16 samples
//	RGB32F, RGBA32F                     float32 samples
//
// Every variant satisfies image.Image with its origin at (0, 0), so decoded
// images can be drawn, encoded and inspected with the standard library.
// Pix must hold exactly Width*Height*Channels samples; the FromRaw
// constructors enforce this.
package dynimage

import (
	"fmt"
	"image"
	"image/color"

	"github.com/gogpu/texconv/internal/bytecast"
	tcolor "github.com/gogpu/texconv/internal/color"
)

// Channel counts for each layout.
const (
	lumaChannels  = 1
	lumaAChannels = 2
	rgbChannels   = 3
	rgbaChannels  = 4
)

// Luma8 is an 8-bit single-channel image.
type Luma8 struct {
	Pix           []uint8
	Width, Height int
}

// LumaA8 is an 8-bit luma plus straight alpha image.
type LumaA8 struct {
	Pix           []uint8
	Width, Height int
}

// RGB8 is an 8-bit three-channel image without alpha.
type RGB8 struct {
	Pix           []uint8
	Width, Height int
}

// RGBA8 is an 8-bit straight-alpha RGBA image.
type RGBA8 struct {
	Pix           []uint8
	Width, Height int
}

// Luma16 is a 16-bit single-channel image.
type Luma16 struct {
	Pix           []uint16
	Width, Height int
}

// LumaA16 is a 16-bit luma plus straight alpha image.
type LumaA16 struct {
	Pix           []uint16
	Width, Height int
}

// RGB16 is a 16-bit three-channel image without alpha.
type RGB16 struct {
	Pix           []uint16
	Width, Height int
}

// RGBA16 is a 16-bit straight-alpha RGBA image.
type RGBA16 struct {
	Pix           []uint16
	Width, Height int
}

// RGB32F is a 32-bit float three-channel image without alpha.
type RGB32F struct {
	Pix           []float32
	Width, Height int
}

// RGBA32F is a 32-bit float straight-alpha RGBA image.
type RGBA32F struct {
	Pix           []float32
	Width, Height int
}

// NewLuma8 returns a zeroed Luma8 of the given size.
func NewLuma8(width, height int) *Luma8 {
	return &Luma8{Pix: make([]uint8, samples(width, height, lumaChannels)), Width: width, Height: height}
}

// NewLumaA8 returns a zeroed LumaA8 of the given size.
func NewLumaA8(width, height int) *LumaA8 {
	return &LumaA8{Pix: make([]uint8, samples(width, height, lumaAChannels)), Width: width, Height: height}
}

// NewRGB8 returns a zeroed RGB8 of the given size.
func NewRGB8(width, height int) *RGB8 {
	return &RGB8{Pix: make([]uint8, samples(width, height, rgbChannels)), Width: width, Height: height}
}

// NewRGBA8 returns a zeroed RGBA8 of the given size.
func NewRGBA8(width, height int) *RGBA8 {
	return &RGBA8{Pix: make([]uint8, samples(width, height, rgbaChannels)), Width: width, Height: height}
}

// NewLuma16 returns a zeroed Luma16 of the given size.
func NewLuma16(width, height int) *Luma16 {
	return &Luma16{Pix: make([]uint16, samples(width, height, lumaChannels)), Width: width, Height: height}
}

// NewLumaA16 returns a zeroed LumaA16 of the given size.
func NewLumaA16(width, height int) *LumaA16 {
	return &LumaA16{Pix: make([]uint16, samples(width, height, lumaAChannels)), Width: width, Height: height}
}

// NewRGB16 returns a zeroed RGB16 of the given size.
func NewRGB16(width, height int) *RGB16 {
	return &RGB16{Pix: make([]uint16, samples(width, height, rgbChannels)), Width: width, Height: height}
}

// NewRGBA16 returns a zeroed RGBA16 of the given size.
func NewRGBA16(width, height int) *RGBA16 {
	return &RGBA16{Pix: make([]uint16, samples(width, height, rgbaChannels)), Width: width, Height: height}
}

// NewRGB32F returns a zeroed RGB32F of the given size.
func NewRGB32F(width, height int) *RGB32F {
	return &RGB32F{Pix: make([]float32, samples(width, height, rgbChannels)), Width: width, Height: height}
}

// NewRGBA32F returns a zeroed RGBA32F of the given size.
func NewRGBA32F(width, height int) *RGBA32F {
	return &RGBA32F{Pix: make([]float32, samples(width, height, rgbaChannels)), Width: width, Height: height}
}

// Luma8FromRaw wraps pix without copying. It reports false if len(pix) is
// not exactly width*height.
func Luma8FromRaw(width, height int, pix []uint8) (*Luma8, bool) {
	if !fits(width, height, lumaChannels, len(pix)) {
		return nil, false
	}
	return &Luma8{Pix: pix, Width: width, Height: height}, true
}

// LumaA8FromRaw wraps pix without copying. It reports false if len(pix) is
// not exactly width*height*2.
func LumaA8FromRaw(width, height int, pix []uint8) (*LumaA8, bool) {
	if !fits(width, height, lumaAChannels, len(pix)) {
		return nil, false
	}
	return &LumaA8{Pix: pix, Width: width, Height: height}, true
}

// RGB8FromRaw wraps pix without copying. It reports false if len(pix) is not
// exactly width*height*3.
func RGB8FromRaw(width, height int, pix []uint8) (*RGB8, bool) {
	if !fits(width, height, rgbChannels, len(pix)) {
		return nil, false
	}
	return &RGB8{Pix: pix, Width: width, Height: height}, true
}

// RGBA8FromRaw wraps pix without copying. It reports false if len(pix) is
// not exactly width*height*4.
func RGBA8FromRaw(width, height int, pix []uint8) (*RGBA8, bool) {
	if !fits(width, height, rgbaChannels, len(pix)) {
		return nil, false
	}
	return &RGBA8{Pix: pix, Width: width, Height: height}, true
}

// Luma16FromRaw wraps pix without copying.
func Luma16FromRaw(width, height int, pix []uint16) (*Luma16, bool) {
	if !fits(width, height, lumaChannels, len(pix)) {
		return nil, false
	}
	return &Luma16{Pix: pix, Width: width, Height: height}, true
}

// LumaA16FromRaw wraps pix without copying.
func LumaA16FromRaw(width, height int, pix []uint16) (*LumaA16, bool) {
	if !fits(width, height, lumaAChannels, len(pix)) {
		return nil, false
	}
	return &LumaA16{Pix: pix, Width: width, Height: height}, true
}

// RGB16FromRaw wraps pix without copying.
func RGB16FromRaw(width, height int, pix []uint16) (*RGB16, bool) {
	if !fits(width, height, rgbChannels, len(pix)) {
		return nil, false
	}
	return &RGB16{Pix: pix, Width: width, Height: height}, true
}

// RGBA16FromRaw wraps pix without copying.
func RGBA16FromRaw(width, height int, pix []uint16) (*RGBA16, bool) {
	if !fits(width, height, rgbaChannels, len(pix)) {
		return nil, false
	}
	return &RGBA16{Pix: pix, Width: width, Height: height}, true
}

// RGB32FFromRaw wraps pix without copying.
func RGB32FFromRaw(width, height int, pix []float32) (*RGB32F, bool) {
	if !fits(width, height, rgbChannels, len(pix)) {
		return nil, false
	}
	return &RGB32F{Pix: pix, Width: width, Height: height}, true
}

// RGBA32FFromRaw wraps pix without copying.
func RGBA32FFromRaw(width, height int, pix []float32) (*RGBA32F, bool) {
	if !fits(width, height, rgbaChannels, len(pix)) {
		return nil, false
	}
	return &RGBA32F{Pix: pix, Width: width, Height: height}, true
}

// samples returns the Pix length for a new image. A size that overflows int
// panics; a non-positive dimension yields an empty image.
func samples(width, height, channels int) int {
	if width <= 0 || height <= 0 {
		return 0
	}
	n, ok := bytecast.Len(width, height, channels)
	if !ok {
		panic(fmt.Sprintf("dynimage: image size %dx%d overflows int", width, height))
	}
	return n
}

// fits reports whether n samples exactly cover a width x height image.
func fits(width, height, channels, n int) bool {
	want, ok := bytecast.Len(width, height, channels)
	return ok && want == n
}

func rect(width, height int) image.Rectangle {
	return image.Rect(0, 0, width, height)
}

// offset returns the index of the first sample of (x, y), or -1 when the
// point is outside the image.
func offset(x, y, width, height, channels int) int {
	if x < 0 || y < 0 || x >= width || y >= height {
		return -1
	}
	return (y*width + x) * channels
}

// ColorModel returns color.GrayModel.
func (m *Luma8) ColorModel() color.Model { return color.GrayModel }

// Bounds returns the image rectangle anchored at the origin.
func (m *Luma8) Bounds() image.Rectangle { return rect(m.Width, m.Height) }

// At returns the gray value at (x, y).
func (m *Luma8) At(x, y int) color.Color {
	i := offset(x, y, m.Width, m.Height, lumaChannels)
	if i < 0 {
		return color.Gray{}
	}
	return color.Gray{Y: m.Pix[i]}
}

// ColorModel returns color.NRGBAModel.
func (m *LumaA8) ColorModel() color.Model { return color.NRGBAModel }

// Bounds returns the image rectangle anchored at the origin.
func (m *LumaA8) Bounds() image.Rectangle { return rect(m.Width, m.Height) }

// At returns the luma replicated into RGB with the stored alpha.
func (m *LumaA8) At(x, y int) color.Color {
	i := offset(x, y, m.Width, m.Height, lumaAChannels)
	if i < 0 {
		return color.NRGBA{}
	}
	l := m.Pix[i]
	return color.NRGBA{R: l, G: l, B: l, A: m.Pix[i+1]}
}

// ColorModel returns color.NRGBAModel.
func (m *RGB8) ColorModel() color.Model { return color.NRGBAModel }

// Bounds returns the image rectangle anchored at the origin.
func (m *RGB8) Bounds() image.Rectangle { return rect(m.Width, m.Height) }

// At returns the opaque color at (x, y).
func (m *RGB8) At(x, y int) color.Color {
	i := offset(x, y, m.Width, m.Height, rgbChannels)
	if i < 0 {
		return color.NRGBA{}
	}
	s := m.Pix[i : i+3 : i+3]
	return color.NRGBA{R: s[0], G: s[1], B: s[2], A: tcolor.Opaque}
}

// ColorModel returns color.NRGBAModel.
func (m *RGBA8) ColorModel() color.Model { return color.NRGBAModel }

// Bounds returns the image rectangle anchored at the origin.
func (m *RGBA8) Bounds() image.Rectangle { return rect(m.Width, m.Height) }

// At returns the straight-alpha color at (x, y).
func (m *RGBA8) At(x, y int) color.Color {
	i := offset(x, y, m.Width, m.Height, rgbaChannels)
	if i < 0 {
		return color.NRGBA{}
	}
	s := m.Pix[i : i+4 : i+4]
	return color.NRGBA{R: s[0], G: s[1], B: s[2], A: s[3]}
}

// ColorModel returns color.Gray16Model.
func (m *Luma16) ColorModel() color.Model { return color.Gray16Model }

// Bounds returns the image rectangle anchored at the origin.
func (m *Luma16) Bounds() image.Rectangle { return rect(m.Width, m.Height) }

// At returns the 16-bit gray value at (x, y).
func (m *Luma16) At(x, y int) color.Color {
	i := offset(x, y, m.Width, m.Height, lumaChannels)
	if i < 0 {
		return color.Gray16{}
	}
	return color.Gray16{Y: m.Pix[i]}
}

// ColorModel returns color.NRGBA64Model.
func (m *LumaA16) ColorModel() color.Model { return color.NRGBA64Model }

// Bounds returns the image rectangle anchored at the origin.
func (m *LumaA16) Bounds() image.Rectangle { return rect(m.Width, m.Height) }

// At returns the luma replicated into RGB with the stored alpha.
func (m *LumaA16) At(x, y int) color.Color {
	i := offset(x, y, m.Width, m.Height, lumaAChannels)
	if i < 0 {
		return color.NRGBA64{}
	}
	l := m.Pix[i]
	return color.NRGBA64{R: l, G: l, B: l, A: m.Pix[i+1]}
}

// ColorModel returns color.NRGBA64Model.
func (m *RGB16) ColorModel() color.Model { return color.NRGBA64Model }

// Bounds returns the image rectangle anchored at the origin.
func (m *RGB16) Bounds() image.Rectangle { return rect(m.Width, m.Height) }

// At returns the opaque color at (x, y).
func (m *RGB16) At(x, y int) color.Color {
	i := offset(x, y, m.Width, m.Height, rgbChannels)
	if i < 0 {
		return color.NRGBA64{}
	}
	s := m.Pix[i : i+3 : i+3]
	return color.NRGBA64{R: s[0], G: s[1], B: s[2], A: tcolor.Opaque16}
}

// ColorModel returns color.NRGBA64Model.
func (m *RGBA16) ColorModel() color.Model { return color.NRGBA64Model }

// Bounds returns the image rectangle anchored at the origin.
func (m *RGBA16) Bounds() image.Rectangle { return rect(m.Width, m.Height) }

// At returns the straight-alpha color at (x, y).
func (m *RGBA16) At(x, y int) color.Color {
	i := offset(x, y, m.Width, m.Height, rgbaChannels)
	if i < 0 {
		return color.NRGBA64{}
	}
	s := m.Pix[i : i+4 : i+4]
	return color.NRGBA64{R: s[0], G: s[1], B: s[2], A: s[3]}
}

// ColorModel returns color.NRGBA64Model. Samples outside [0,1] are clamped.
func (m *RGB32F) ColorModel() color.Model { return color.NRGBA64Model }

// Bounds returns the image rectangle anchored at the origin.
func (m *RGB32F) Bounds() image.Rectangle { return rect(m.Width, m.Height) }

// At returns the opaque color at (x, y), clamped to [0,1] per channel.
func (m *RGB32F) At(x, y int) color.Color {
	i := offset(x, y, m.Width, m.Height, rgbChannels)
	if i < 0 {
		return color.NRGBA64{}
	}
	s := m.Pix[i : i+3 : i+3]
	return color.NRGBA64{
		R: tcolor.UnitToU16(s[0]),
		G: tcolor.UnitToU16(s[1]),
		B: tcolor.UnitToU16(s[2]),
		A: tcolor.Opaque16,
	}
}

// ColorModel returns color.NRGBA64Model. Samples outside [0,1] are clamped.
func (m *RGBA32F) ColorModel() color.Model { return color.NRGBA64Model }

// Bounds returns the image rectangle anchored at the origin.
func (m *RGBA32F) Bounds() image.Rectangle { return rect(m.Width, m.Height) }

// At returns the straight-alpha color at (x, y), clamped to [0,1] per channel.
func (m *RGBA32F) At(x, y int) color.Color {
	i := offset(x, y, m.Width, m.Height, rgbaChannels)
	if i < 0 {
		return color.NRGBA64{}
	}
	s := m.Pix[i : i+4 : i+4]
	return color.NRGBA64{
		R: tcolor.UnitToU16(s[0]),
		G: tcolor.UnitToU16(s[1]),
		B: tcolor.UnitToU16(s[2]),
		A: tcolor.UnitToU16(s[3]),
	}
}
