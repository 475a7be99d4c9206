package sct

import "errors"

var (
	// ErrSizeOverflow indicates a size or dimension exceeds supported limits.
	ErrSizeOverflow = errors.New("size overflow")
	// ErrBufferTooShort indicates the buffer is too short for the claimed layout.
	ErrBufferTooShort = errors.New("buffer too short")
	// ErrUnknownContainer indicates the buffer does not start with a known SCT magic.
	ErrUnknownContainer = errors.New("unrecognized container magic")
	// ErrZeroDimensions indicates a header with zero width or height.
	ErrZeroDimensions = errors.New("zero image dimensions")
	// ErrDataOffsetOutOfRange indicates the header data offset exceeds the buffer.
	ErrDataOffsetOutOfRange = errors.New("data offset out of range")
	// ErrPayloadTooShort indicates a payload too short to carry an LZ4 frame.
	ErrPayloadTooShort = errors.New("compressed payload too short")
	// ErrASTCDecode indicates ASTC block decode failed.
	ErrASTCDecode = errors.New("ASTC decode failed")
	// ErrETC2Decode indicates ETC2 block decode failed.
	ErrETC2Decode = errors.New("ETC2 decode failed")
	// ErrOpenFile indicates SCT file open failed.
	ErrOpenFile = errors.New("open file failed")
	// ErrDecodeImage indicates image decode failed.
	ErrDecodeImage = errors.New("decode image failed")
)
