package color

// linearToSRGB8 maps a linear 8-bit component to its sRGB-encoded byte.
var linearToSRGB8 [256]uint8

func init() {
	for i := range linearToSRGB8 {
		s := LinearToSRGB(float32(i)/255)*255 + 0.5
		switch {
		case s < 0:
			s = 0
		case s > 255:
			s = 255
		}
		linearToSRGB8[i] = uint8(s)
	}
}

// LinearToSRGB8 returns the sRGB-encoded byte for a linear byte.
func LinearToSRGB8(l uint8) uint8 {
	return linearToSRGB8[l]
}

// EncodeSRGB8 gamma-encodes the color channels of straight-alpha RGBA8 pixels
// in place. Alpha is left untouched. A trailing partial pixel is ignored.
func EncodeSRGB8(pix []uint8) {
	for i := 0; i+3 < len(pix); i += 4 {
		pix[i+0] = linearToSRGB8[pix[i+0]]
		pix[i+1] = linearToSRGB8[pix[i+1]]
		pix[i+2] = linearToSRGB8[pix[i+2]]
	}
}
