// Package texconv converts decoded images to GPU textures and back.
//
// # Overview
//
// A decoded image is one of the dynimage variants (8-bit, 16-bit or float32
// samples with 1 to 4 channels) or any other image.Image. A Texture is a flat
// byte buffer tagged with a Format, its size, and, for the 8-bit RGBA formats,
// whether it is sRGB encoded.
//
//	img, _, err := dynimage.Load("albedo.png")
//	if err != nil {
//	    return err
//	}
//	tex := texconv.FromDynamic(img, true)
//	desc := tex.Descriptor("albedo")       // gputypes-based descriptor
//	layout := tex.DataLayout()             // for a queue texture write
//
//	back, srgb, ok := texconv.TryIntoDynamic(tex)
//	if !ok {
//	    // the format cannot be previewed
//	}
//
// # Layout
//
// Texture bytes are little-endian. GPU formats have no 3-channel variants, so
// RGB images are padded to RGBA: 8-bit and 16-bit alpha is filled with the
// maximum sample value. See WithOpaqueFloatAlpha for the float case.
//
// FromDynamic is total. TryIntoDynamic supports the 8-bit unorm formats,
// R8Uint and R32Float (as a false-color visualization) and reports ok == false
// for the rest.
//
// # Concurrency
//
// Both conversions are pure and safe to call from multiple goroutines.
// Diagnostics go to the logger configured with SetLogger or WithLogger.
package texconv
