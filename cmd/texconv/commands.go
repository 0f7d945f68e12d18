package main

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"slices"

	"github.com/ericpauley/go-quantize/quantize"
	"github.com/nfnt/resize"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
	"golang.org/x/image/draw"

	"github.com/gogpu/texconv"
	"github.com/gogpu/texconv/dynimage"
	"github.com/gogpu/texconv/internal/bytecast"
	tcolor "github.com/gogpu/texconv/internal/color"
)

// maxColors is the largest palette an *image.Paletted can index.
const maxColors = 256

func requireArgs(c *cli.Context, n int) error {
	if c.NArg() < n {
		return cli.Exit(fmt.Sprintf("%s: expected %s", c.Command.FullName(), c.Command.ArgsUsage), 2)
	}
	return nil
}

func loadTexture(c *cli.Context, path string, opts ...texconv.Option) (*texconv.Texture, string, error) {
	img, codec, err := dynimage.Load(path)
	if err != nil {
		return nil, "", errors.Wrapf(err, "load %s", path)
	}
	return texconv.FromDynamic(img, c.Bool("srgb"), opts...), codec, nil
}

func infoAction(c *cli.Context) error {
	if err := requireArgs(c, 1); err != nil {
		return err
	}

	tex, codec, err := loadTexture(c, c.Args().First())
	if err != nil {
		return cli.Exit(err, 1)
	}

	desc := tex.Descriptor(filepath.Base(c.Args().First()))
	w := c.App.Writer
	fmt.Fprintf(w, "codec:      %s\n", codec)
	fmt.Fprintf(w, "size:       %dx%d\n", desc.Size.Width, desc.Size.Height)
	fmt.Fprintf(w, "format:     %s\n", tex.Format)
	fmt.Fprintf(w, "srgb:       %t\n", tex.Format.IsSRGB())
	fmt.Fprintf(w, "texel size: %d\n", tex.Format.TexelSize())
	fmt.Fprintf(w, "row bytes:  %d\n", tex.DataLayout().BytesPerRow)
	fmt.Fprintf(w, "bytes:      %d\n", len(tex.Data))
	if r, ok := sampleRange(tex); ok {
		fmt.Fprintf(w, "range:      %s\n", r)
	}
	return nil
}

// sampleRange formats the smallest and largest sample of a 16-bit or float
// texture. 8-bit textures report false.
func sampleRange(tex *texconv.Texture) (string, bool) {
	info := tex.Format.Info()
	switch {
	case info.Kind == texconv.KindUint && info.BitsPerChannel == 16:
		s := bytecast.ToUint16s(tex.Data)
		if len(s) == 0 {
			return "", false
		}
		return fmt.Sprintf("%d..%d", slices.Min(s), slices.Max(s)), true
	case info.Kind == texconv.KindFloat:
		s := bytecast.ToFloat32s(tex.Data)
		if len(s) == 0 {
			return "", false
		}
		return fmt.Sprintf("%g..%g", slices.Min(s), slices.Max(s)), true
	default:
		return "", false
	}
}

func encodeAction(c *cli.Context) error {
	if err := requireArgs(c, 2); err != nil {
		return err
	}

	var opts []texconv.Option
	if c.Bool("opaque-alpha") {
		opts = append(opts, texconv.WithOpaqueFloatAlpha())
	}
	tex, _, err := loadTexture(c, c.Args().Get(0), opts...)
	if err != nil {
		return cli.Exit(err, 1)
	}

	out := filepath.Clean(c.Args().Get(1))
	if err := os.WriteFile(out, tex.Data, 0o644); err != nil {
		return cli.Exit(errors.Wrap(err, "write texture"), 1)
	}

	fmt.Fprintf(c.App.Writer, "%s %dx%d\n", tex.Format, tex.Width, tex.Height)
	return nil
}

func previewAction(c *cli.Context) error {
	if err := requireArgs(c, 2); err != nil {
		return err
	}

	format, ok := texconv.ParseFormat(c.String("format"))
	if !ok {
		return cli.Exit(fmt.Sprintf("unknown texture format %q", c.String("format")), 2)
	}
	if n := c.Int("colors"); n < 0 || n > maxColors {
		return cli.Exit(fmt.Sprintf("--colors must be between 0 and %d", maxColors), 2)
	}

	data, err := os.ReadFile(filepath.Clean(c.Args().Get(0)))
	if err != nil {
		return cli.Exit(errors.Wrap(err, "read texture"), 1)
	}

	tex := &texconv.Texture{
		Width:  c.Int("width"),
		Height: c.Int("height"),
		Format: format,
		Data:   data,
	}
	if !tex.Valid() {
		want := format.ImageBytes(tex.Width, tex.Height)
		if want < 0 {
			return cli.Exit(errors.Errorf("%s texture %dx%d is not a valid size", format, tex.Width, tex.Height), 2)
		}
		return cli.Exit(errors.Errorf("%s texture %dx%d needs %d bytes, file has %d",
			format, tex.Width, tex.Height, want, len(data)), 1)
	}

	if r, ok := sampleRange(tex); ok {
		fmt.Fprintf(c.App.Writer, "%s %dx%d range %s\n", format, tex.Width, tex.Height, r)
	}

	img, srgb, ok := texconv.TryIntoDynamic(tex)
	if !ok {
		return cli.Exit(fmt.Sprintf("cannot preview %s textures", format), 1)
	}

	if c.Bool("encode-srgb") && !srgb {
		img = encodeSRGB(img)
	}
	img = scale(img, c.Uint("resize-width"), c.Uint("resize-height"))
	if n := c.Int("colors"); n > 0 {
		img = quantizeImage(img, n)
	}

	if err := dynimage.SavePNG(c.Args().Get(1), img); err != nil {
		return cli.Exit(errors.Wrap(err, "save preview"), 1)
	}
	return nil
}

// encodeSRGB gamma-encodes a linear RGBA8 preview so it displays correctly.
// Other images are returned unchanged.
func encodeSRGB(img image.Image) image.Image {
	m, ok := img.(*dynimage.RGBA8)
	if !ok {
		return img
	}
	out := &dynimage.RGBA8{Pix: append([]uint8(nil), m.Pix...), Width: m.Width, Height: m.Height}
	tcolor.EncodeSRGB8(out.Pix)
	return out
}

// scale resizes img with Lanczos resampling. A zero dimension keeps the
// aspect ratio; both zero leaves img untouched.
func scale(img image.Image, width, height uint) image.Image {
	if width == 0 && height == 0 {
		return img
	}
	return resize.Resize(width, height, img, resize.Lanczos3)
}

// quantizeImage reduces img to at most n colors with median cut and
// Floyd-Steinberg dithering.
func quantizeImage(img image.Image, n int) *image.Paletted {
	b := img.Bounds()
	q := quantize.MedianCutQuantizer{}
	p := image.NewPaletted(b, q.Quantize(make(color.Palette, 0, n), img))
	draw.FloydSteinberg.Draw(p, b, img, b.Min)
	return p
}
