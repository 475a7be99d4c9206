package sct

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"

	astc "github.com/arm-software/astc-encoder/astc"
	"github.com/nigeltao/etc2/lib/etc2"
)

// BlockCodec decodes block-compressed texture payloads into pixels.
// DecodeETC2 returns RGBA bytes for block-aligned dimensions (width and
// height multiples of 4). DecodeASTC returns bytes in blue-green-red-alpha
// order, the native order of the reference ASTC decoders; the caller swaps
// channels.
type BlockCodec interface {
	DecodeETC2(data []byte, width, height int) ([]byte, error)
	DecodeASTC(data []byte, width, height, blockW, blockH int) ([]byte, error)
}

// defaultCodec decodes ETC2 RGBA8 and ASTC LDR blocks in pure Go.
type defaultCodec struct{}

func (defaultCodec) DecodeETC2(data []byte, width, height int) ([]byte, error) {
	m, err := etc2.FormatETC2RGBA8.NewImage(width, height)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrETC2Decode, err)
	}

	if err := etc2.FormatETC2RGBA8.Decode(m, bytes.NewReader(data), width/4, height/4); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrETC2Decode, err)
	}

	out := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.Draw(out, out.Bounds(), m, image.Point{}, draw.Src)

	return out.Pix, nil
}

// astcSwizzleBGRA routes the decoded red channel into the blue slot and
// vice versa, producing the blue-green-red-alpha order the BlockCodec
// contract promises.
var astcSwizzleBGRA = astc.Swizzle{R: astc.SwzB, G: astc.SwzG, B: astc.SwzR, A: astc.SwzA}

func (defaultCodec) DecodeASTC(data []byte, width, height, blockW, blockH int) ([]byte, error) {
	cfg, err := astc.ConfigInit(astc.ProfileLDR, blockW, blockH, 1, 0, astc.FlagDecompressOnly)
	if err != nil {
		return nil, fmt.Errorf("%w: %dx%d blocks: %v", ErrASTCDecode, blockW, blockH, err)
	}

	ctx, err := astc.ContextAlloc(&cfg, 1)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrASTCDecode, err)
	}
	defer func() { _ = ctx.Close() }()

	img := &astc.Image{
		DimX:     width,
		DimY:     height,
		DimZ:     1,
		DataType: astc.TypeU8,
		DataU8:   make([]byte, width*height*4),
	}

	if err := ctx.DecompressImage(data, img, astcSwizzleBGRA, 0); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrASTCDecode, err)
	}

	return img.DataU8, nil
}
