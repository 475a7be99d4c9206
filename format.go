package sct

import "fmt"

// Pathway selects how payload bytes become pixels.
type Pathway int

const (
	// PathwayUnknown is the fallback for unmapped codes; bytes pass through as RGBA.
	PathwayUnknown Pathway = iota
	// PathwayRGB565 unpacks little-endian 5/6/5 words to RGB triples.
	PathwayRGB565
	// PathwayETC2 decodes ETC2 RGBA8 4x4 blocks via the block codec.
	PathwayETC2
	// PathwayASTC decodes ASTC blocks of the descriptor's block size via the block codec.
	PathwayASTC
	// PathwayPlainRGB passes 3-byte pixels through, padded to RGBA.
	PathwayPlainRGB
	// PathwayPlainRGBA passes 4-byte pixels through unchanged.
	PathwayPlainRGBA
	// PathwayCompressedGeneric surfaces unhandled block formats as raw RGBA bytes.
	PathwayCompressedGeneric
)

// String returns the pathway name.
func (p Pathway) String() string {
	switch p {
	case PathwayRGB565:
		return "RGB565"
	case PathwayETC2:
		return "ETC2"
	case PathwayASTC:
		return "ASTC"
	case PathwayPlainRGB:
		return "RGB"
	case PathwayPlainRGBA:
		return "RGBA"
	case PathwayCompressedGeneric:
		return "COMPRESSED"
	default:
		return "UNKNOWN"
	}
}

// PixelFormat describes how a numeric pixel format code is decoded.
type PixelFormat struct {
	Pathway  Pathway
	Channels int
	// BlockW and BlockH are the ASTC block dimensions; zero for other pathways.
	BlockW int
	BlockH int
}

// String returns a short descriptor like "ASTC6x6/4ch".
func (f PixelFormat) String() string {
	if f.Pathway == PathwayASTC {
		return fmt.Sprintf("ASTC%dx%d/%dch", f.BlockW, f.BlockH, f.Channels)
	}

	return fmt.Sprintf("%s/%dch", f.Pathway, f.Channels)
}

// Classify maps a pixel format code to its decode pathway. Exact codes win
// over the range rules; the two ranges are disjoint by construction.
func Classify(code uint32) PixelFormat {
	switch code {
	case 4:
		return PixelFormat{Pathway: PathwayRGB565, Channels: 3}
	case 6:
		return PixelFormat{Pathway: PathwayPlainRGB, Channels: 3}
	case 16:
		// Named RGB565 in the engine but the payload is plain RGB triples.
		return PixelFormat{Pathway: PathwayPlainRGB, Channels: 3}
	case 19:
		return PixelFormat{Pathway: PathwayETC2, Channels: 4}
	case 40:
		return PixelFormat{Pathway: PathwayASTC, Channels: 4, BlockW: 4, BlockH: 4}
	case 44:
		return PixelFormat{Pathway: PathwayASTC, Channels: 4, BlockW: 6, BlockH: 6}
	case 47:
		return PixelFormat{Pathway: PathwayASTC, Channels: 4, BlockW: 8, BlockH: 8}
	}

	switch {
	case code >= 17 && code <= 26:
		return PixelFormat{Pathway: PathwayPlainRGBA, Channels: 4}
	case code >= 41 && code <= 53:
		return PixelFormat{Pathway: PathwayCompressedGeneric, Channels: 4}
	}

	return PixelFormat{Pathway: PathwayUnknown, Channels: 4}
}

// astcFormatCode is the 4x4 block-compressed code the size heuristic
// special-cases.
const astcFormatCode = 40

// expectedPayloadSize estimates the uncompressed payload size for a format.
// Code 40 is 4x4 blocks of 16 bytes; everything else uses the rough
// 2-bytes-per-pixel estimate the heuristic was tuned against.
func expectedPayloadSize(code uint32, width, height int) int {
	if code == astcFormatCode {
		return blockCount(width, 4) * blockCount(height, 4) * 16
	}

	return width * height * bytesPerPixelEstimate
}

// blockCount returns ceil(dim / block).
func blockCount(dim, block int) int {
	return (dim + block - 1) / block
}
