package dynimage

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	"image/png"
	"io"
	"os"
	"path/filepath"

	_ "golang.org/x/image/bmp" // register BMP decoder
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder
)

// I/O errors.
var (
	// ErrEmptyData is returned when image data is empty.
	ErrEmptyData = errors.New("dynimage: empty data")
)

// Load decodes the image file at path and adapts it with FromImage.
// It returns the codec name reported by image.Decode.
func Load(path string) (image.Image, string, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, "", fmt.Errorf("dynimage: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f)
}

// LoadFromBytes decodes an encoded image held in memory.
func LoadFromBytes(data []byte) (image.Image, string, error) {
	if len(data) == 0 {
		return nil, "", ErrEmptyData
	}
	return Decode(bytes.NewReader(data))
}

// Decode decodes PNG, JPEG, GIF, BMP, TIFF or WebP data from r and adapts the
// result with FromImage.
func Decode(r io.Reader) (image.Image, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("dynimage: decode: %w", err)
	}
	return FromImage(img), format, nil
}

// FromImage returns the variant matching the layout of a standard library
// image, or img itself when no variant matches (for example *image.YCbCr,
// *image.Paletted or premultiplied *image.RGBA). Variants are returned
// unchanged.
//
// 8-bit images whose rows are tightly packed at the origin are wrapped without
// copying. 16-bit standard library images are big-endian and are always
// copied into native samples.
func FromImage(img image.Image) image.Image {
	switch m := img.(type) {
	case *image.Gray:
		w, h := m.Rect.Dx(), m.Rect.Dy()
		return &Luma8{Pix: packRows(m.Pix, m.Stride, m.PixOffset(m.Rect.Min.X, m.Rect.Min.Y), w, h), Width: w, Height: h}
	case *image.NRGBA:
		w, h := m.Rect.Dx(), m.Rect.Dy()
		return &RGBA8{Pix: packRows(m.Pix, m.Stride, m.PixOffset(m.Rect.Min.X, m.Rect.Min.Y), w*4, h), Width: w, Height: h}
	case *image.Gray16:
		w, h := m.Rect.Dx(), m.Rect.Dy()
		return &Luma16{Pix: bigEndianRows(m.Pix, m.Stride, m.PixOffset(m.Rect.Min.X, m.Rect.Min.Y), w, h), Width: w, Height: h}
	case *image.NRGBA64:
		w, h := m.Rect.Dx(), m.Rect.Dy()
		return &RGBA16{Pix: bigEndianRows(m.Pix, m.Stride, m.PixOffset(m.Rect.Min.X, m.Rect.Min.Y), w*4, h), Width: w, Height: h}
	default:
		return img
	}
}

// packRows returns rowBytes*h bytes of pix starting at start, sharing pix
// when the rows are already contiguous.
func packRows(pix []uint8, stride, start, rowBytes, h int) []uint8 {
	if rowBytes <= 0 || h <= 0 {
		return []uint8{}
	}
	if stride == rowBytes {
		return pix[start : start+rowBytes*h : start+rowBytes*h]
	}
	out := make([]uint8, 0, rowBytes*h)
	for y := 0; y < h; y++ {
		off := start + y*stride
		out = append(out, pix[off:off+rowBytes]...)
	}
	return out
}

// bigEndianRows decodes samplesPerRow*h big-endian uint16 samples.
func bigEndianRows(pix []uint8, stride, start, samplesPerRow, h int) []uint16 {
	if samplesPerRow <= 0 || h <= 0 {
		return []uint16{}
	}
	out := make([]uint16, 0, samplesPerRow*h)
	for y := 0; y < h; y++ {
		row := pix[start+y*stride:]
		for x := 0; x < samplesPerRow; x++ {
			out = append(out, binary.BigEndian.Uint16(row[x*2:]))
		}
	}
	return out
}

// ToStdImage converts a variant to the closest standard library image so the
// stdlib encoders keep its bit depth: *image.Gray for Luma8, *image.Gray16 for
// Luma16, *image.NRGBA for the other 8-bit variants and *image.NRGBA64 for
// the remaining 16-bit and float variants. Other images are returned as is.
func ToStdImage(img image.Image) image.Image {
	switch m := img.(type) {
	case *Luma8:
		g := image.NewGray(m.Bounds())
		copy(g.Pix, m.Pix)
		return g
	case *Luma16:
		g := image.NewGray16(m.Bounds())
		for i, v := range m.Pix {
			binary.BigEndian.PutUint16(g.Pix[i*2:], v)
		}
		return g
	case *RGBA8:
		n := image.NewNRGBA(m.Bounds())
		copy(n.Pix, m.Pix)
		return n
	case *LumaA8, *RGB8:
		return toNRGBA(img)
	case *LumaA16, *RGB16, *RGBA16, *RGB32F, *RGBA32F:
		return toNRGBA64(img)
	default:
		return img
	}
}

func toNRGBA(img image.Image) *image.NRGBA {
	b := img.Bounds()
	n := image.NewNRGBA(b)
	draw.Draw(n, b, img, b.Min, draw.Src)
	return n
}

func toNRGBA64(img image.Image) *image.NRGBA64 {
	b := img.Bounds()
	n := image.NewNRGBA64(b)
	draw.Draw(n, b, img, b.Min, draw.Src)
	return n
}

// EncodePNG encodes img as PNG, preserving 16-bit depth for 16-bit and float
// variants.
func EncodePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, ToStdImage(img)); err != nil {
		return fmt.Errorf("dynimage: encode PNG: %w", err)
	}
	return nil
}

// SavePNG writes img to path as PNG.
func SavePNG(path string, img image.Image) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("dynimage: create file: %w", err)
	}

	if err := EncodePNG(f, img); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
