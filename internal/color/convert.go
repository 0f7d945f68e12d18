package color

import "github.com/chewxy/math32"

// FalseColorRange is the magnitude at which FalseColor saturates.
const FalseColorRange float32 = 100

// FalseColor maps a signed scalar to a diagnostic RGBA8 color.
//
// v is clamped to [-FalseColorRange, FalseColorRange] and normalized to
// [-1,1]. Positive values scale the red channel, negative values scale the
// green channel, and the two are never lit together. Blue is always 0 and the
// result is opaque. Intensities are truncated, so 50 maps to red 127.
// NaN maps to opaque black.
func FalseColor(v float32) RGBA8 {
	if math32.IsNaN(v) {
		return RGBA8{A: Opaque}
	}
	n := math32.Max(-FalseColorRange, math32.Min(v, FalseColorRange)) / FalseColorRange
	if n > 0 {
		return RGBA8{R: uint8(n * 255), A: Opaque}
	}
	return RGBA8{G: uint8(math32.Abs(n) * 255), A: Opaque}
}

// UnitToU16 clamps a float sample to [0,1] and widens it to uint16 with
// rounding. NaN maps to 0.
func UnitToU16(v float32) uint16 {
	if math32.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= 1 {
		return Opaque16
	}
	return uint16(v*65535 + 0.5)
}

// LinearToSRGB converts a linear component in [0,1] to sRGB (OETF).
// Formula: if l <= 0.0031308: l*12.92; else: 1.055*pow(l, 1/2.4)-0.055
func LinearToSRGB(l float32) float32 {
	if l <= 0.0031308 {
		return l * 12.92
	}
	return 1.055*math32.Pow(l, 1.0/2.4) - 0.055
}
