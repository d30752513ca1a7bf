// SPDX-License-Identifier: MIT

package bsdiff

// Sign-magnitude 64-bit integer codec used by control tuples and the patch
// header. This is not two's complement: bit 63 is a sign flag and the
// remaining 63 bits hold the magnitude. The byte pattern with only the sign
// bit set (0x8000000000000000) is negative zero, and decodeInt64 returns 0
// for it rather than rejecting it.

// decodeInt64 interprets 8 little-endian bytes as a sign-magnitude integer.
func decodeInt64(b []byte) int64 {
	y := uint64(b[0]) | uint64(b[1])<<8 | uint64(b[2])<<16 | uint64(b[3])<<24 |
		uint64(b[4])<<32 | uint64(b[5])<<40 | uint64(b[6])<<48 | uint64(b[7])<<56

	if y&(1<<63) == 0 {
		return int64(y)
	}
	return -int64(y &^ (1 << 63))
}

// encodeInt64 writes x into b (which must have length 8 or more) as a
// sign-magnitude little-endian integer.
func encodeInt64(x int64, b []byte) {
	var y uint64
	if x < 0 {
		y = uint64(-x) | (1 << 63)
	} else {
		y = uint64(x)
	}

	b[0] = byte(y)
	b[1] = byte(y >> 8)
	b[2] = byte(y >> 16)
	b[3] = byte(y >> 24)
	b[4] = byte(y >> 32)
	b[5] = byte(y >> 40)
	b[6] = byte(y >> 48)
	b[7] = byte(y >> 56)
}
