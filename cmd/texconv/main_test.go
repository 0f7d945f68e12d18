package main

import (
	"bytes"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/texconv"
	"github.com/gogpu/texconv/dynimage"
	"github.com/gogpu/texconv/internal/bytecast"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Cleanup(func() { texconv.SetLogger(nil) })

	var stdout, stderr bytes.Buffer
	err := newApp(&stdout, &stderr).Run(append([]string{"texconv"}, args...))
	return stdout.String(), stderr.String(), err
}

func writePNG(t *testing.T, img image.Image) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "in.png")
	require.NoError(t, dynimage.SavePNG(path, img))
	return path
}

func twoPixels() *image.NRGBA {
	m := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	m.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	m.SetNRGBA(1, 0, color.NRGBA{G: 255, A: 255})
	return m
}

func TestInfo(t *testing.T) {
	in := writePNG(t, twoPixels())

	out, _, err := run(t, "info", in)
	require.NoError(t, err)
	assert.Contains(t, out, "codec:      png")
	assert.Contains(t, out, "size:       2x1")
	assert.Contains(t, out, "format:     rgba8unorm\n")
	assert.Contains(t, out, "row bytes:  8")

	out, _, err = run(t, "info", "--srgb", in)
	require.NoError(t, err)
	assert.Contains(t, out, "format:     rgba8unorm-srgb")
	assert.Contains(t, out, "srgb:       true")
}

func TestInfoSampleRange(t *testing.T) {
	g := image.NewGray16(image.Rect(0, 0, 3, 1))
	g.SetGray16(0, 0, color.Gray16{Y: 100})
	g.SetGray16(1, 0, color.Gray16{Y: 60000})
	g.SetGray16(2, 0, color.Gray16{Y: 7})
	in := writePNG(t, g)

	out, _, err := run(t, "info", in)
	require.NoError(t, err)
	assert.Contains(t, out, "format:     r16uint\n")
	assert.Contains(t, out, "range:      7..60000\n")

	out, _, err = run(t, "info", writePNG(t, twoPixels()))
	require.NoError(t, err)
	assert.NotContains(t, out, "range:")
}

func TestInfoErrors(t *testing.T) {
	_, _, err := run(t, "info")
	require.Error(t, err)

	_, _, err = run(t, "info", filepath.Join(t.TempDir(), "missing.png"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.png")
}

func TestEncode(t *testing.T) {
	in := writePNG(t, twoPixels())
	raw := filepath.Join(t.TempDir(), "out.raw")

	out, _, err := run(t, "encode", in, raw)
	require.NoError(t, err)
	assert.Equal(t, "rgba8unorm 2x1\n", out)

	data, err := os.ReadFile(raw)
	require.NoError(t, err)
	assert.Equal(t, []byte{255, 0, 0, 255, 0, 255, 0, 255}, data)
}

func TestEncodeGrayExpands(t *testing.T) {
	g := image.NewGray(image.Rect(0, 0, 2, 1))
	g.Pix[0], g.Pix[1] = 10, 20
	in := writePNG(t, g)
	raw := filepath.Join(t.TempDir(), "gray.raw")

	_, _, err := run(t, "encode", "--srgb", in, raw)
	require.NoError(t, err)

	data, err := os.ReadFile(raw)
	require.NoError(t, err)
	assert.Equal(t, []byte{10, 10, 10, 255, 20, 20, 20, 255}, data)
}

func TestPreview(t *testing.T) {
	dir := t.TempDir()
	raw := filepath.Join(dir, "tex.raw")
	require.NoError(t, os.WriteFile(raw, []byte{255, 0, 0, 255, 0, 0, 255, 255}, 0o600))
	png := filepath.Join(dir, "preview.png")

	_, _, err := run(t, "preview", "-f", "rgba8unorm", "--width", "2", "--height", "1", raw, png)
	require.NoError(t, err)

	img, codec, err := dynimage.Load(png)
	require.NoError(t, err)
	assert.Equal(t, "png", codec)
	m, ok := img.(*dynimage.RGBA8)
	require.True(t, ok, "got %T", img)
	assert.Equal(t, []uint8{255, 0, 0, 255, 0, 0, 255, 255}, m.Pix)
}

func TestPreviewFalseColor(t *testing.T) {
	dir := t.TempDir()
	raw := filepath.Join(dir, "depth.raw")
	require.NoError(t, os.WriteFile(raw, bytecast.Float32s([]float32{50, -25}), 0o600))
	png := filepath.Join(dir, "depth.png")

	out, _, err := run(t, "preview", "--format", "R32_FLOAT", "--width", "2", "--height", "1", raw, png)
	require.NoError(t, err)
	assert.Equal(t, "r32float 2x1 range -25..50\n", out)

	img, _, err := dynimage.Load(png)
	require.NoError(t, err)
	m := img.(*dynimage.RGBA8)
	assert.Equal(t, []uint8{127, 0, 0, 255, 0, 63, 0, 255}, m.Pix)
}

func TestPreviewResizeAndQuantize(t *testing.T) {
	dir := t.TempDir()
	raw := filepath.Join(dir, "tex.raw")
	require.NoError(t, os.WriteFile(raw, bytes.Repeat([]byte{200, 40, 40, 255}, 16), 0o600))
	png := filepath.Join(dir, "big.png")

	_, _, err := run(t, "preview", "-f", "rgba8unorm", "--width", "4", "--height", "4",
		"--resize-width", "8", "--colors", "4", "--encode-srgb", raw, png)
	require.NoError(t, err)

	img, _, err := dynimage.Load(png)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 8, 8), img.Bounds())
	_, paletted := img.(*image.Paletted)
	assert.True(t, paletted, "quantized preview should decode as paletted, got %T", img)
}

func TestPreviewErrors(t *testing.T) {
	dir := t.TempDir()
	raw := filepath.Join(dir, "tex.raw")
	require.NoError(t, os.WriteFile(raw, make([]byte, 8), 0o600))
	png := filepath.Join(dir, "out.png")

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown format", []string{"-f", "bc7", "--width", "1", "--height", "1", raw, png}, "unknown texture format"},
		{"size mismatch", []string{"-f", "rgba8unorm", "--width", "4", "--height", "4", raw, png}, "needs 64 bytes"},
		{"overflowing size", []string{"-f", "r8unorm", "--width", "4611686018427387904", "--height", "4", raw, png}, "not a valid size"},
		{"negative size", []string{"-f", "r8unorm", "--width", "-2", "--height", "-4", raw, png}, "not a valid size"},
		{"unsupported", []string{"-f", "rgba16uint", "--width", "1", "--height", "1", raw, png}, "cannot preview"},
		{"too many colors", []string{"-f", "rgba8unorm", "--width", "2", "--height", "1", "--colors", "300", raw, png}, "--colors"},
		{"missing file", []string{"-f", "r8unorm", "--width", "1", "--height", "1", filepath.Join(dir, "nope"), png}, "read texture"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(t, append([]string{"preview"}, tt.args...)...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
	assert.NoFileExists(t, png)
}

func TestVerboseLogsUnsupported(t *testing.T) {
	dir := t.TempDir()
	raw := filepath.Join(dir, "tex.raw")
	require.NoError(t, os.WriteFile(raw, make([]byte, 8), 0o600))

	_, stderr, err := run(t, "-v", "preview", "-f", "rgba16uint", "--width", "1", "--height", "1", raw, filepath.Join(dir, "x.png"))
	require.Error(t, err)
	assert.Contains(t, stderr, "unsupported texture format")
	assert.Contains(t, stderr, "format=rgba16uint")
}
