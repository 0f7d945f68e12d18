// Package bytecast reinterprets typed sample slices as texture bytes and back.
//
// Texture bytes are always little-endian regardless of the host, which is the
// layout WebGPU queue writes expect. Each 16-bit sample occupies 2 bytes and
// each float32 sample occupies 4 bytes in the order the samples appear.
package bytecast

import (
	"encoding/binary"
	"math"
	"math/bits"
)

// Len returns width*height*per, the element count of a buffer holding per
// elements for each of width*height texels. It reports false for a negative
// argument or when the product does not fit in an int.
func Len(width, height, per int) (int, bool) {
	if width < 0 || height < 0 || per < 0 {
		return 0, false
	}
	hi, n := bits.Mul64(uint64(width), uint64(height))
	if hi != 0 {
		return 0, false
	}
	hi, n = bits.Mul64(n, uint64(per))
	if hi != 0 || n > math.MaxInt {
		return 0, false
	}
	return int(n), true
}

// Uint16s encodes samples as little-endian bytes into a new slice.
func Uint16s(samples []uint16) []byte {
	out := make([]byte, len(samples)*2)
	for i, v := range samples {
		binary.LittleEndian.PutUint16(out[i*2:], v)
	}
	return out
}

// Float32s encodes the IEEE 754 bits of samples as little-endian bytes.
func Float32s(samples []float32) []byte {
	out := make([]byte, len(samples)*4)
	for i, v := range samples {
		binary.LittleEndian.PutUint32(out[i*4:], math.Float32bits(v))
	}
	return out
}

// AppendUint16 appends v to dst as 2 little-endian bytes.
func AppendUint16(dst []byte, v uint16) []byte {
	return binary.LittleEndian.AppendUint16(dst, v)
}

// AppendUint32 appends v to dst as 4 little-endian bytes.
func AppendUint32(dst []byte, v uint32) []byte {
	return binary.LittleEndian.AppendUint32(dst, v)
}

// AppendFloat32 appends the bits of v to dst as 4 little-endian bytes.
func AppendFloat32(dst []byte, v float32) []byte {
	return binary.LittleEndian.AppendUint32(dst, math.Float32bits(v))
}

// ToUint16s decodes little-endian bytes into 16-bit samples.
// A trailing odd byte is ignored.
func ToUint16s(data []byte) []uint16 {
	out := make([]uint16, len(data)/2)
	for i := range out {
		out[i] = binary.LittleEndian.Uint16(data[i*2:])
	}
	return out
}

// Float32At reads the i-th little-endian float32 from data.
// The caller must ensure len(data) >= (i+1)*4.
func Float32At(data []byte, i int) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(data[i*4:]))
}

// ToFloat32s decodes little-endian bytes into float32 samples.
// Trailing bytes that do not form a full sample are ignored.
func ToFloat32s(data []byte) []float32 {
	out := make([]float32, len(data)/4)
	for i := range out {
		out[i] = Float32At(data, i)
	}
	return out
}
