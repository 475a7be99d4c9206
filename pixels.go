package sct

// rgb565 expands a 16-bit 5/6/5 value to 8-bit RGB.
func rgb565(c uint16) (r, g, b uint8) {
	r = uint8((c >> 11) & 0x1f)
	g = uint8((c >> 5) & 0x3f)
	b = uint8(c & 0x1f)

	// Replicate high bits into the low bits for full 8-bit range.
	r = (r << 3) | (r >> 2)
	g = (g << 2) | (g >> 4)
	b = (b << 3) | (b >> 2)

	return
}
