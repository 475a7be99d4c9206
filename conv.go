// SPDX-License-Identifier: MIT
// Source: github.com/skyrien/sct

package sct

const maxInt32 = int(^uint32(0) >> 1)

// i32FromUint32 converts a uint32 to an int, rejecting values above int32 range.
func i32FromUint32(n uint32) (int, error) {
	if int(n) > maxInt32 || int(n) < 0 {
		return 0, ErrSizeOverflow
	}

	return int(n), nil
}
