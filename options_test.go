package texconv

import (
	"bytes"
	"log/slog"
	"testing"
)

func TestBuildOptionsDefaults(t *testing.T) {
	o := buildOptions(nil)
	if o.logger != Logger() {
		t.Error("default options should use the package logger")
	}
	if o.opaqueFloatAlpha {
		t.Error("opaqueFloatAlpha should default to false")
	}
}

func TestBuildOptionsApply(t *testing.T) {
	l := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	o := buildOptions([]Option{WithLogger(l), nil, WithOpaqueFloatAlpha()})

	if o.logger != l {
		t.Error("WithLogger was not applied")
	}
	if !o.opaqueFloatAlpha {
		t.Error("WithOpaqueFloatAlpha was not applied")
	}
}

func TestWithLoggerNilKeepsPackageLogger(t *testing.T) {
	o := buildOptions([]Option{WithLogger(nil)})
	if o.logger != Logger() {
		t.Error("WithLogger(nil) should fall back to the package logger")
	}
}
