// Package color provides the per-sample numeric conversions used when moving
// pixels between decoded images and texture bytes.
package color

// RGBA8 is a straight-alpha color with uint8 components in [0,255].
type RGBA8 struct {
	R, G, B, A uint8
}

// Opaque is the alpha value of a fully opaque 8-bit texel.
const Opaque uint8 = 0xFF

// Opaque16 is the alpha value of a fully opaque 16-bit texel.
const Opaque16 uint16 = 0xFFFF
