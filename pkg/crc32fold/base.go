package crc32fold

import "github.com/speedcrc/crc32fold/internal/crctables"

// baseUpdate is the C2 kernel: one byte at a time through the 256-entry
// table. It is the reference every other kernel is checked against and the
// fallback for inputs too short to amortize a wider kernel's setup cost.
//
// crc is the internal (already-complemented) running state; conditioning
// is the dispatcher's job, not the kernel's.
func baseUpdate(crc uint32, buf []byte) uint32 {
	for _, b := range buf {
		crc = crctables.Base[byte(crc)^b] ^ (crc >> 8)
	}
	return crc
}
