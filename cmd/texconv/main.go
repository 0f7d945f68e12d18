// Command texconv converts images to raw GPU texture data and renders raw
// texture data back to PNG previews.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/gogpu/texconv"
)

func main() {
	if err := newApp(os.Stdout, os.Stderr).Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "texconv:", err)
		code := 1
		var ec cli.ExitCoder
		if errors.As(err, &ec) {
			code = ec.ExitCode()
		}
		os.Exit(code)
	}
}

func newApp(stdout, stderr io.Writer) *cli.App {
	app := cli.NewApp()

	app.Name = "texconv"
	app.Usage = "convert between decoded images and GPU texture data"
	app.Version = "0.1.0"
	app.Writer = stdout
	app.ErrWriter = stderr
	app.ExitErrHandler = func(*cli.Context, error) {}

	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			EnvVars: []string{"TEXCONV_VERBOSE"},
			Usage:   "log conversion diagnostics to stderr",
		},
	}

	app.Before = func(c *cli.Context) error {
		if c.Bool("verbose") {
			texconv.SetLogger(slog.New(slog.NewTextHandler(c.App.ErrWriter, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			})))
		} else {
			texconv.SetLogger(nil)
		}
		return nil
	}

	app.Commands = []*cli.Command{
		{
			Name:      "info",
			Usage:     "Describe the texture an image converts to",
			ArgsUsage: "IMAGE",
			Flags: []cli.Flag{
				&cli.BoolFlag{Name: "srgb", Usage: "tag 8-bit images as sRGB"},
			},
			Action: infoAction,
		},
		{
			Name:      "encode",
			Usage:     "Write the raw texture bytes of an image",
			ArgsUsage: "IMAGE OUTPUT",
			Flags: []cli.Flag{
				&cli.BoolFlag{Name: "srgb", Usage: "tag 8-bit images as sRGB"},
				&cli.BoolFlag{Name: "opaque-alpha", Usage: "fill RGB float alpha with 1.0"},
			},
			Action: encodeAction,
		},
		{
			Name:      "preview",
			Usage:     "Render raw texture bytes to a PNG",
			ArgsUsage: "RAW OUTPUT.png",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "format",
					Aliases:  []string{"f"},
					Usage:    "texture format, e.g. rgba8unorm-srgb or r32float",
					Required: true,
				},
				&cli.IntFlag{Name: "width", Usage: "texture width", Required: true},
				&cli.IntFlag{Name: "height", Usage: "texture height", Required: true},
				&cli.UintFlag{Name: "resize-width", Usage: "scale the preview to this width (0 keeps aspect)"},
				&cli.UintFlag{Name: "resize-height", Usage: "scale the preview to this height (0 keeps aspect)"},
				&cli.IntFlag{Name: "colors", Usage: "quantize the preview to at most N colors"},
				&cli.BoolFlag{Name: "encode-srgb", Usage: "gamma-encode linear 8-bit textures for display"},
			},
			Action: previewAction,
		},
	}

	return app
}
