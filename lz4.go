package sct

import (
	"encoding/binary"
	"fmt"
)

// lz4FrameHeaderSize is the size prefix in front of the token stream:
// 4 bytes declared decompressed size, 4 bytes declared compressed size.
const lz4FrameHeaderSize = 8

// minMatchLength is the format floor added to every match run.
const minMatchLength = 4

// DecompressResult holds the outcome of decompressing one payload.
// ActualSize may fall short of DeclaredSize when the token stream ends
// early; Bytes is always trimmed to ActualSize and never zero-padded.
type DecompressResult struct {
	Bytes        []byte
	DeclaredSize int
	ActualSize   int
}

// Decompress inflates an SCT LZ4-variant frame.
//
// The frame is a declared-size prefix followed by raw LZ4-style block
// tokens: high nibble literal length, low nibble match length, both with
// open-ended 255-terminated extension bytes, a 2-byte little-endian
// back-reference offset, and a +4 match length floor. Unlike standard LZ4
// the stream is scanned to the end of payload (the declared compressed
// size is ignored) and a malformed or truncated stream is not an error:
// decoding stops and returns whatever was produced so far.
func Decompress(payload []byte) (*DecompressResult, error) {
	if len(payload) < lz4FrameHeaderSize {
		return nil, fmt.Errorf("%w: need %d bytes, have %d", ErrPayloadTooShort, lz4FrameHeaderSize, len(payload))
	}

	declared, err := i32FromUint32(binary.LittleEndian.Uint32(payload[0:4]))
	if err != nil {
		return nil, fmt.Errorf("%w: declared size %d", ErrSizeOverflow, binary.LittleEndian.Uint32(payload[0:4]))
	}

	src := payload[lz4FrameHeaderSize:]
	dst := make([]byte, declared)
	si, di := 0, 0

	for si < len(src) && di < len(dst) {
		token := src[si]
		si++

		litLen := int(token >> 4)
		matchLen := int(token & 0x0f)

		if litLen == 0x0f {
			litLen += readLengthExtension(src, &si)
		}

		n := litLen
		if n > len(src)-si {
			n = len(src) - si
		}
		if n > len(dst)-di {
			n = len(dst) - di
		}
		copy(dst[di:di+n], src[si:si+n])
		si += n
		di += n

		// A stream ending on a literal run is a normal end of stream.
		if si >= len(src) || di >= len(dst) {
			break
		}

		if len(src)-si < 2 {
			break
		}
		offset := int(binary.LittleEndian.Uint16(src[si : si+2]))
		si += 2

		if matchLen == 0x0f {
			matchLen += readLengthExtension(src, &si)
		}
		matchLen += minMatchLength

		matchStart := di - offset
		if matchStart < 0 {
			break
		}

		// Byte at a time: the match may overlap the bytes written by this
		// same copy (offset=1 run-length expands a single byte).
		for k := 0; k < matchLen && di < len(dst); k++ {
			if matchStart+k >= di {
				break
			}
			dst[di] = dst[matchStart+k]
			di++
		}
	}

	return &DecompressResult{
		Bytes:        dst[:di],
		DeclaredSize: declared,
		ActualSize:   di,
	}, nil
}

// readLengthExtension sums extension bytes until one below 255 terminates
// the run. The terminating byte's value is the final addend.
func readLengthExtension(src []byte, si *int) int {
	total := 0
	for *si < len(src) {
		b := src[*si]
		*si++
		total += int(b)
		if b != 0xff {
			break
		}
	}

	return total
}
