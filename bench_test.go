package sct

import (
	"encoding/binary"
	"testing"

	"github.com/pierrec/lz4/v4"
)

// benchRGB565Pixels builds deterministic RGB565 pixel data.
func benchRGB565Pixels(width, height int) []byte {
	data := make([]byte, width*height*2)
	for i := 0; i < width*height; i++ {
		// Flat runs with periodic steps so the payload stays compressible.
		v := uint16(((i >> 5) * 37) & 0xffff) //nolint:gosec // bounded by mask
		binary.LittleEndian.PutUint16(data[2*i:], v)
	}

	return data
}

// benchLegacyContainer builds a compressed legacy RGB565 container.
func benchLegacyContainer(b *testing.B, width, height int) []byte {
	b.Helper()

	raw := benchRGB565Pixels(width, height)

	dst := make([]byte, lz4.CompressBlockBound(len(raw)))
	n, err := lz4.CompressBlock(raw, dst, nil)
	if err != nil {
		b.Fatalf("prepare compressed payload: %v", err)
	}
	if n == 0 {
		b.Fatal("prepare compressed payload: incompressible")
	}

	return buildLegacy(b, 4, width, height, lz4Frame(len(raw), dst[:n]))
}

func BenchmarkDecompress(b *testing.B) {
	buf := benchLegacyContainer(b, 256, 256)
	payload := buf[legacyHeaderSize:]

	b.SetBytes(int64(256 * 256 * 2))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		res, err := Decompress(payload)
		if err != nil {
			b.Fatalf("Decompress: %v", err)
		}
		if res.ActualSize != 256*256*2 {
			b.Fatalf("actual = %d", res.ActualSize)
		}
	}
}

func BenchmarkDecodeLegacyRGB565(b *testing.B) {
	buf := benchLegacyContainer(b, 256, 256)

	b.SetBytes(int64(len(buf)))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := Decode(buf); err != nil {
			b.Fatalf("Decode: %v", err)
		}
	}
}

func BenchmarkShouldDecompress(b *testing.B) {
	buf := benchLegacyContainer(b, 128, 128)
	payload := buf[legacyHeaderSize:]

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if !shouldDecompress(payload, 128, 128, 4) {
			b.Fatal("expected compressed payload to be detected")
		}
	}
}
