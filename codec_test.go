package sct

import (
	"errors"
	"testing"
)

func TestDefaultCodecASTCSingleBlock(t *testing.T) {
	t.Parallel()

	// One 4x4 block of solid color; the codec must hand back BGRA order.
	block := astcVoidExtentBlock(0xffff, 0x0000, 0x0000, 0xffff)

	out, err := defaultCodec{}.DecodeASTC(block, 4, 4, 4, 4)
	if err != nil {
		t.Fatalf("DecodeASTC: %v", err)
	}
	if len(out) != 4*4*4 {
		t.Fatalf("len = %d, want 64", len(out))
	}

	for i := 0; i < len(out); i += 4 {
		if out[i] != 0 || out[i+1] != 0 || out[i+2] != 255 || out[i+3] != 255 {
			t.Fatalf("texel %d = % x, want 00 00 ff ff (BGRA red)", i/4, out[i:i+4])
		}
	}
}

func TestDefaultCodecASTCIllegalBlockSize(t *testing.T) {
	t.Parallel()

	_, err := defaultCodec{}.DecodeASTC(make([]byte, 16), 4, 4, 3, 3)
	if !errors.Is(err, ErrASTCDecode) {
		t.Fatalf("expected ErrASTCDecode, got %v", err)
	}
}

func TestDefaultCodecASTCShortBuffer(t *testing.T) {
	t.Parallel()

	// 8x8 pixels at 4x4 blocks needs four 16-byte blocks.
	_, err := defaultCodec{}.DecodeASTC(make([]byte, 3*16), 8, 8, 4, 4)
	if !errors.Is(err, ErrASTCDecode) {
		t.Fatalf("expected ErrASTCDecode, got %v", err)
	}
}
