package sct

import (
	"encoding/binary"
	"fmt"
	"image"
	"image/color"
	"os"
)

// DecodeOptions configures container decoding.
type DecodeOptions struct {
	// Codec handles the block-compressed pathways (ETC2, ASTC). Nil uses
	// the built-in pure Go codec.
	Codec BlockCodec
}

// DecodeConfig decodes a container's dimensions and color model without
// touching the pixel data.
func DecodeConfig(data []byte) (image.Config, error) {
	h, err := DecodeHeader(data)
	if err != nil {
		return image.Config{}, err
	}

	return image.Config{
		Width:      int(h.Width),
		Height:     int(h.Height),
		ColorModel: color.NRGBAModel,
	}, nil
}

// Decode decodes an SCT container into an RGBA image.
func Decode(data []byte) (image.Image, error) {
	return DecodeWithOptions(data, nil)
}

// DecodeWithOptions decodes an SCT container with the given options.
// Nil opts uses the built-in block codec.
func DecodeWithOptions(data []byte, opts *DecodeOptions) (image.Image, error) {
	hdr, err := DecodeHeader(data)
	if err != nil {
		return nil, err
	}

	var codec BlockCodec = defaultCodec{}
	if opts != nil && opts.Codec != nil {
		codec = opts.Codec
	}

	pixels, err := selectPayload(hdr, data[hdr.DataOffset:])
	if err != nil {
		return nil, err
	}

	width := int(hdr.Width)
	height := int(hdr.Height)
	format := Classify(hdr.PixelFormatCode)

	// The canvas is always width*height RGBA; pathways that produce fewer
	// bytes leave the remainder of the canvas untouched.
	img := image.NewNRGBA(image.Rect(0, 0, width, height))

	switch format.Pathway {
	case PathwayRGB565:
		fillRGB565(img, pixels)
	case PathwayETC2:
		fillETC2(img, pixels, codec)
	case PathwayASTC:
		fillASTC(img, pixels, format, codec)
	case PathwayPlainRGB:
		fillRGB(img, pixels)
	default:
		// PlainRGBA, CompressedGeneric and Unknown surface raw bytes.
		fillRGBA(img, pixels)
	}

	return img, nil
}

// ReadFile reads and decodes an SCT file.
func ReadFile(path string) (image.Image, error) {
	return ReadFileWithOptions(path, nil)
}

// ReadFileWithOptions reads and decodes an SCT file with the given options.
func ReadFileWithOptions(path string, opts *DecodeOptions) (image.Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrOpenFile, path, err)
	}

	img, err := DecodeWithOptions(data, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrDecodeImage, path, err)
	}

	return img, nil
}

// selectPayload applies the per-variant decompression policy and returns
// the bytes the pixel pathways should consume.
func selectPayload(h *Header, payload []byte) ([]byte, error) {
	if h.Variant == VariantLegacy {
		// Legacy payloads are always compressed.
		res, err := Decompress(payload)
		if err != nil {
			return nil, err
		}

		return res.Bytes, nil
	}

	if h.Flags&(FlagRaw|FlagHasAlpha) != 0 {
		// Neither flag reliably says whether the payload is compressed;
		// probe the data and keep the raw payload when in doubt.
		if len(payload) >= lz4FrameHeaderSize {
			if res, ok := probeCompression(payload, int(h.Width), int(h.Height), h.PixelFormatCode); ok {
				return res.Bytes, nil
			}
		}

		return payload, nil
	}

	// The compressed bit is as untrustworthy as the raw bit, and 4x4 block
	// files are compressed more often than flagged. Attempt the frame
	// whenever one fits and fall back to the raw payload.
	if len(payload) >= lz4FrameHeaderSize {
		if res, err := Decompress(payload); err == nil && res.ActualSize > 0 {
			return res.Bytes, nil
		}
	}

	return payload, nil
}

// fillRGB565 unpacks little-endian 5/6/5 words into opaque RGBA pixels.
func fillRGB565(img *image.NRGBA, pixels []byte) {
	n := len(pixels) / 2
	if limit := len(img.Pix) / 4; n > limit {
		n = limit
	}

	for i := 0; i < n; i++ {
		r, g, b := rgb565(binary.LittleEndian.Uint16(pixels[2*i:]))
		img.Pix[4*i+0] = r
		img.Pix[4*i+1] = g
		img.Pix[4*i+2] = b
		img.Pix[4*i+3] = 0xff
	}
}

// fillRGB pads 3-byte pixels to opaque RGBA.
func fillRGB(img *image.NRGBA, pixels []byte) {
	n := len(pixels) / 3
	if limit := len(img.Pix) / 4; n > limit {
		n = limit
	}

	for i := 0; i < n; i++ {
		img.Pix[4*i+0] = pixels[3*i+0]
		img.Pix[4*i+1] = pixels[3*i+1]
		img.Pix[4*i+2] = pixels[3*i+2]
		img.Pix[4*i+3] = 0xff
	}
}

// fillRGBA copies raw RGBA bytes onto the canvas.
func fillRGBA(img *image.NRGBA, pixels []byte) {
	n := len(pixels)
	if n > len(img.Pix) {
		n = len(img.Pix)
	}
	copy(img.Pix[:n], pixels[:n])
}

// fillETC2 decodes 4x4 ETC2 blocks at block-aligned dimensions and crops
// the result onto the canvas. Codec failure falls back to raw passthrough.
func fillETC2(img *image.NRGBA, pixels []byte, codec BlockCodec) {
	width := img.Rect.Dx()
	height := img.Rect.Dy()
	alignedW := blockCount(width, 4) * 4
	alignedH := blockCount(height, 4) * 4

	rgba, err := codec.DecodeETC2(pixels, alignedW, alignedH)
	if err != nil || len(rgba) < alignedW*alignedH*4 {
		fillRGBA(img, pixels)
		return
	}

	for y := 0; y < height; y++ {
		copy(img.Pix[y*img.Stride:y*img.Stride+width*4], rgba[y*alignedW*4:])
	}
}

// fillASTC decodes ASTC blocks via the codec and swaps the codec's native
// blue-green-red-alpha order into RGBA. On codec failure the payload is
// retried as ETC2 when its size matches the 4x4 block budget, then passed
// through raw as the last resort.
func fillASTC(img *image.NRGBA, pixels []byte, format PixelFormat, codec BlockCodec) {
	width := img.Rect.Dx()
	height := img.Rect.Dy()

	bgra, err := codec.DecodeASTC(pixels, width, height, format.BlockW, format.BlockH)
	if err == nil {
		n := len(bgra) &^ 3
		if n > len(img.Pix) {
			n = len(img.Pix)
		}
		for i := 0; i < n; i += 4 {
			img.Pix[i+0] = bgra[i+2]
			img.Pix[i+1] = bgra[i+1]
			img.Pix[i+2] = bgra[i+0]
			img.Pix[i+3] = bgra[i+3]
		}

		return
	}

	// ETC2 RGBA8 shares the 16-bytes-per-4x4-block budget, so a payload of
	// exactly that size may be a mistagged ETC2 texture.
	if len(pixels) == blockCount(width, 4)*blockCount(height, 4)*16 {
		fillETC2(img, pixels, codec)
		return
	}

	fillRGBA(img, pixels)
}
