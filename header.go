package sct

import (
	"encoding/binary"
	"fmt"
)

// Variant identifies the on-disk container layout.
type Variant int

const (
	// VariantUnknown marks a buffer with no recognized SCT magic.
	VariantUnknown Variant = iota
	// VariantLegacy marks the legacy "SCT" layout with a 9-byte header.
	VariantLegacy
	// VariantV2 marks the "SCT2" layout with a 34-byte header.
	VariantV2
)

// String returns the variant name.
func (v Variant) String() string {
	switch v {
	case VariantLegacy:
		return "legacy"
	case VariantV2:
		return "v2"
	default:
		return "unknown"
	}
}

// magicV2 is "SCT2" read as a little-endian uint32.
const magicV2 = 0x32544353

const (
	legacyHeaderSize = 9
	v2HeaderSize     = 34
)

// V2 header flag bits. Legacy containers have no flag byte.
const (
	FlagHasAlpha   = 0x01
	FlagCrop       = 0x02
	FlagRaw        = 0x10
	FlagMipmap     = 0x20
	FlagCompressed = 0x80
)

// Header is the normalized view of either container layout.
type Header struct {
	Variant Variant

	// Width and Height are the logical image dimensions.
	Width  uint16
	Height uint16
	// TextureWidth and TextureHeight are the physical texture dimensions.
	// Equal to Width/Height for legacy; v2 may pad them to block boundaries.
	TextureWidth  uint16
	TextureHeight uint16

	// PixelFormatCode is the opaque format identifier resolved by Classify.
	PixelFormatCode uint32
	// DataOffset is the payload start, relative to the buffer start.
	DataOffset uint32
	// TotalSize is the v2 declared file size. Informational only; real files
	// disagree with it often enough that nothing downstream may rely on it.
	TotalSize uint32
	// Flags is the v2 flag byte; zero for legacy.
	Flags byte

	// DeclaredCompressed reports what the header claims about the payload.
	// Legacy payloads are always compressed; v2 derives this from FlagCompressed.
	// The claim is unreliable for v2, see shouldDecompress.
	DeclaredCompressed bool
}

// Sniff classifies the container layout from the first bytes of data.
// Buffers shorter than 4 bytes are VariantUnknown.
func Sniff(data []byte) Variant {
	if len(data) < 4 {
		return VariantUnknown
	}
	if binary.LittleEndian.Uint32(data) == magicV2 {
		return VariantV2
	}
	if binary.LittleEndian.Uint16(data) == 0x4353 && data[2] == 'T' {
		return VariantLegacy
	}

	return VariantUnknown
}

// DecodeHeader sniffs data and decodes the matching header layout.
func DecodeHeader(data []byte) (*Header, error) {
	switch Sniff(data) {
	case VariantLegacy:
		return decodeLegacyHeader(data)
	case VariantV2:
		return decodeV2Header(data)
	default:
		return nil, fmt.Errorf("%w: % x", ErrUnknownContainer, firstBytes(data, 4))
	}
}

// decodeLegacyHeader decodes the 9-byte legacy layout:
// bytes 0-2 signature, byte 3 padding, byte 4 pixel format,
// bytes 5-6 width, bytes 7-8 height. Payload follows immediately.
func decodeLegacyHeader(data []byte) (*Header, error) {
	if len(data) < legacyHeaderSize {
		return nil, fmt.Errorf("%w: legacy header needs %d bytes, have %d", ErrBufferTooShort, legacyHeaderSize, len(data))
	}

	h := &Header{
		Variant:            VariantLegacy,
		PixelFormatCode:    uint32(data[4]),
		Width:              binary.LittleEndian.Uint16(data[5:7]),
		Height:             binary.LittleEndian.Uint16(data[7:9]),
		DataOffset:         legacyHeaderSize,
		DeclaredCompressed: true,
	}
	h.TextureWidth = h.Width
	h.TextureHeight = h.Height

	if err := validateHeader(h, len(data)); err != nil {
		return nil, err
	}

	return h, nil
}

// decodeV2Header decodes the 34-byte SCT2 layout:
// bytes 0-3 signature, 4-7 total size, 8-11 reserved, 12-15 data offset,
// 16-19 reserved, 20-23 pixel format, 24-25 width, 26-27 height,
// 28-29 texture width, 30-31 texture height, 32 flags.
func decodeV2Header(data []byte) (*Header, error) {
	if len(data) < v2HeaderSize {
		return nil, fmt.Errorf("%w: v2 header needs %d bytes, have %d", ErrBufferTooShort, v2HeaderSize, len(data))
	}

	h := &Header{
		Variant:         VariantV2,
		TotalSize:       binary.LittleEndian.Uint32(data[4:8]),
		DataOffset:      binary.LittleEndian.Uint32(data[12:16]),
		PixelFormatCode: binary.LittleEndian.Uint32(data[20:24]),
		Width:           binary.LittleEndian.Uint16(data[24:26]),
		Height:          binary.LittleEndian.Uint16(data[26:28]),
		TextureWidth:    binary.LittleEndian.Uint16(data[28:30]),
		TextureHeight:   binary.LittleEndian.Uint16(data[30:32]),
		Flags:           data[32],
	}
	h.DeclaredCompressed = h.Flags&FlagCompressed != 0

	if err := validateHeader(h, len(data)); err != nil {
		return nil, err
	}

	return h, nil
}

func validateHeader(h *Header, bufLen int) error {
	if h.Width == 0 || h.Height == 0 {
		return fmt.Errorf("%w: %dx%d", ErrZeroDimensions, h.Width, h.Height)
	}

	offset, err := i32FromUint32(h.DataOffset)
	if err != nil {
		return fmt.Errorf("%w: data offset %d", ErrSizeOverflow, h.DataOffset)
	}
	if offset > bufLen {
		return fmt.Errorf("%w: offset %d, buffer %d", ErrDataOffsetOutOfRange, offset, bufLen)
	}

	return nil
}

func firstBytes(data []byte, n int) []byte {
	if len(data) < n {
		return data
	}

	return data[:n]
}
