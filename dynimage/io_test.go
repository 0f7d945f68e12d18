package dynimage

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"path/filepath"
	"testing"
)

func TestFromImageGrayZeroCopy(t *testing.T) {
	g := image.NewGray(image.Rect(0, 0, 3, 2))
	for i := range g.Pix {
		g.Pix[i] = uint8(i * 10)
	}

	m, ok := FromImage(g).(*Luma8)
	if !ok {
		t.Fatalf("FromImage(*image.Gray) = %T, want *Luma8", FromImage(g))
	}
	if m.Width != 3 || m.Height != 2 {
		t.Errorf("size = %dx%d, want 3x2", m.Width, m.Height)
	}
	if &m.Pix[0] != &g.Pix[0] {
		t.Error("tightly packed gray image was copied")
	}
}

func TestFromImageSubImage(t *testing.T) {
	n := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	n.SetNRGBA(2, 1, color.NRGBA{R: 10, G: 20, B: 30, A: 40})
	sub := n.SubImage(image.Rect(2, 1, 4, 3)).(*image.NRGBA)

	m, ok := FromImage(sub).(*RGBA8)
	if !ok {
		t.Fatalf("FromImage(sub NRGBA) = %T, want *RGBA8", FromImage(sub))
	}
	if m.Width != 2 || m.Height != 2 || len(m.Pix) != 16 {
		t.Fatalf("got %dx%d with %d samples, want 2x2 with 16", m.Width, m.Height, len(m.Pix))
	}
	if got := m.At(0, 0); got != (color.NRGBA{R: 10, G: 20, B: 30, A: 40}) {
		t.Errorf("At(0, 0) = %v, want the sub-image origin pixel", got)
	}
}

func TestFromImageSixteenBit(t *testing.T) {
	g := image.NewGray16(image.Rect(0, 0, 2, 1))
	g.SetGray16(1, 0, color.Gray16{Y: 0xABCD})

	m, ok := FromImage(g).(*Luma16)
	if !ok {
		t.Fatalf("FromImage(*image.Gray16) = %T, want *Luma16", FromImage(g))
	}
	if m.Pix[1] != 0xABCD {
		t.Errorf("Pix[1] = %#x, want 0xABCD", m.Pix[1])
	}

	n := image.NewNRGBA64(image.Rect(0, 0, 1, 1))
	n.SetNRGBA64(0, 0, color.NRGBA64{R: 1, G: 0x100, B: 0xFFFF, A: 0x8000})
	r, ok := FromImage(n).(*RGBA16)
	if !ok {
		t.Fatalf("FromImage(*image.NRGBA64) = %T, want *RGBA16", FromImage(n))
	}
	want := []uint16{1, 0x100, 0xFFFF, 0x8000}
	for i := range want {
		if r.Pix[i] != want[i] {
			t.Errorf("Pix[%d] = %#x, want %#x", i, r.Pix[i], want[i])
		}
	}
}

func TestFromImagePassThrough(t *testing.T) {
	p := image.NewPaletted(image.Rect(0, 0, 1, 1), color.Palette{color.Black})
	if got := FromImage(p); got != image.Image(p) {
		t.Errorf("FromImage(*image.Paletted) = %T, want the input", got)
	}

	v := NewRGB8(1, 1)
	if got := FromImage(v); got != image.Image(v) {
		t.Errorf("FromImage(variant) = %T, want the input", got)
	}
}

func TestToStdImage(t *testing.T) {
	tests := []struct {
		name string
		img  image.Image
		want string
	}{
		{"Luma8", NewLuma8(1, 1), "*image.Gray"},
		{"Luma16", NewLuma16(1, 1), "*image.Gray16"},
		{"RGBA8", NewRGBA8(1, 1), "*image.NRGBA"},
		{"LumaA8", NewLumaA8(1, 1), "*image.NRGBA"},
		{"RGB8", NewRGB8(1, 1), "*image.NRGBA"},
		{"RGB16", NewRGB16(1, 1), "*image.NRGBA64"},
		{"RGBA32F", NewRGBA32F(1, 1), "*image.NRGBA64"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToStdImage(tt.img)
			if name := typeName(got); name != tt.want {
				t.Errorf("ToStdImage() = %s, want %s", name, tt.want)
			}
		})
	}
}

func TestToStdImagePixels(t *testing.T) {
	rgb := &RGB8{Pix: []uint8{10, 20, 30, 40, 50, 60}, Width: 2, Height: 1}
	n, ok := ToStdImage(rgb).(*image.NRGBA)
	if !ok {
		t.Fatalf("ToStdImage(RGB8) = %T, want *image.NRGBA", ToStdImage(rgb))
	}
	want := []uint8{10, 20, 30, 255, 40, 50, 60, 255}
	if !bytes.Equal(n.Pix, want) {
		t.Errorf("RGB8 Pix = %v, want %v", n.Pix, want)
	}

	rgb16 := &RGB16{Pix: []uint16{0x1234, 0, 0xFFFF}, Width: 1, Height: 1}
	n64 := ToStdImage(rgb16).(*image.NRGBA64)
	if got := n64.NRGBA64At(0, 0); got != (color.NRGBA64{R: 0x1234, G: 0, B: 0xFFFF, A: 0xFFFF}) {
		t.Errorf("RGB16 pixel = %+v", got)
	}

	la := &LumaA8{Pix: []uint8{90, 255}, Width: 1, Height: 1}
	if got := ToStdImage(la).(*image.NRGBA).NRGBAAt(0, 0); got != (color.NRGBA{R: 90, G: 90, B: 90, A: 255}) {
		t.Errorf("LumaA8 pixel = %+v", got)
	}
}

func typeName(img image.Image) string {
	switch img.(type) {
	case *image.Gray:
		return "*image.Gray"
	case *image.Gray16:
		return "*image.Gray16"
	case *image.NRGBA:
		return "*image.NRGBA"
	case *image.NRGBA64:
		return "*image.NRGBA64"
	default:
		return "other"
	}
}

func TestPNGRoundTrip(t *testing.T) {
	src := &Luma16{Pix: []uint16{0, 0x1234, 0xFFFF, 0x8001}, Width: 2, Height: 2}

	var buf bytes.Buffer
	if err := EncodePNG(&buf, src); err != nil {
		t.Fatalf("EncodePNG() error = %v", err)
	}

	got, format, err := LoadFromBytes(buf.Bytes())
	if err != nil {
		t.Fatalf("LoadFromBytes() error = %v", err)
	}
	if format != "png" {
		t.Errorf("format = %q, want png", format)
	}
	m, ok := got.(*Luma16)
	if !ok {
		t.Fatalf("decoded %T, want *Luma16", got)
	}
	for i, v := range src.Pix {
		if m.Pix[i] != v {
			t.Errorf("Pix[%d] = %#x, want %#x", i, m.Pix[i], v)
		}
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	src := &RGB8{Pix: []uint8{255, 0, 0, 0, 255, 0}, Width: 2, Height: 1}

	if err := SavePNG(path, src); err != nil {
		t.Fatalf("SavePNG() error = %v", err)
	}
	got, _, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	// An opaque NRGBA is written as 8-bit truecolor and decodes to *image.RGBA,
	// which has no variant.
	if got.Bounds() != image.Rect(0, 0, 2, 1) {
		t.Errorf("Bounds() = %v", got.Bounds())
	}
	if r, g, b, _ := got.At(1, 0).RGBA(); r != 0 || g != 0xFFFF || b != 0 {
		t.Errorf("At(1, 0) = %v, want green", got.At(1, 0))
	}
}

func TestLoadErrors(t *testing.T) {
	if _, _, err := LoadFromBytes(nil); !errors.Is(err, ErrEmptyData) {
		t.Errorf("LoadFromBytes(nil) error = %v, want ErrEmptyData", err)
	}
	if _, _, err := LoadFromBytes([]byte("not an image")); err == nil {
		t.Error("LoadFromBytes(garbage) should fail")
	}
	if _, _, err := Load(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Error("Load(missing) should fail")
	}
}

func TestDecodeNRGBA(t *testing.T) {
	n := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	n.SetNRGBA(0, 0, color.NRGBA{R: 1, G: 2, B: 3, A: 128})
	var buf bytes.Buffer
	if err := png.Encode(&buf, n); err != nil {
		t.Fatal(err)
	}

	got, _, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if _, ok := got.(*RGBA8); !ok {
		t.Errorf("Decode() = %T, want *RGBA8", got)
	}
}
