package crc32fold

import "github.com/speedcrc/crc32fold/internal/crctables"

// braidLanes (N) and braidWordWidth (W) match spec §4.2's selection for
// 64-bit targets: N=5 interleaved word-wide running CRCs, W=8 bytes/word.
const (
	braidLanes      = 5
	braidWordWidth  = 8
	braidBlockBytes = braidLanes * braidWordWidth
)

// braidFoldWord is crc_word(w): the effect of running the base recurrence
// W=8 times over a 64-bit word w, computed as the XOR of eight table
// lookups instead of eight serial byte steps. This is the standard
// slice-by-8 identity, and holds because the base recurrence is GF(2)-linear
// (Base[i^j] == Base[i]^Base[j], pinned in tables_test.go): crc_word(w)
// decomposes into the sum of crc_word applied to each byte of w in
// isolation, which is exactly what Braid8[k][byte] precomputes.
func braidFoldWord(bt *[8][256]uint64, w uint64) uint64 {
	return bt[0][byte(w)] ^ bt[1][byte(w>>8)] ^ bt[2][byte(w>>16)] ^ bt[3][byte(w>>24)] ^
		bt[4][byte(w>>32)] ^ bt[5][byte(w>>40)] ^ bt[6][byte(w>>48)] ^ bt[7][byte(w>>56)]
}

// braidUpdate is the C3 kernel: N=5 interleaved 64-bit running CRCs, each
// advanced by braidFoldWord independently so the lanes have no data
// dependency on each other until the final combine, per spec §4.2. Per
// block, each lane absorbs its word and is then advanced over a full
// 40-byte block (braidLanes applications of braidFoldWord).
func braidUpdate(crc uint32, buf []byte) uint32 {
	blks := len(buf) / braidBlockBytes
	if blks == 0 {
		return baseUpdate(crc, buf)
	}

	bt := &crctables.Braid8
	var c [braidLanes]uint64
	c[0] = uint64(crc)

	off := 0
	for b := 0; b < blks-1; b++ {
		for i := 0; i < braidLanes; i++ {
			w := chorbaLoadLE(buf[off:])
			off += braidWordWidth
			c[i] = braidFoldWord(bt, c[i]^w)
			// braidFoldWord advances one word; the lane's next word is a
			// whole block later, so carry it across the other lanes' words.
			for k := 1; k < braidLanes; k++ {
				c[i] = braidFoldWord(bt, c[i])
			}
		}
	}

	var w [braidLanes]uint64
	for i := 0; i < braidLanes; i++ {
		w[i] = chorbaLoadLE(buf[off:])
		off += braidWordWidth
	}

	acc := braidFoldWord(bt, c[0]^w[0])
	for i := 1; i < braidLanes; i++ {
		acc = braidFoldWord(bt, c[i]^w[i]^acc)
	}

	return baseUpdate(uint32(acc), buf[off:])
}
