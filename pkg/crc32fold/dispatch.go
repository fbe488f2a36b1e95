package crc32fold

import "github.com/speedcrc/crc32fold/internal/cpufeature"

// Checksum returns the IEEE 802.3 CRC-32 of buf.
func Checksum(buf []byte) uint32 {
	return Update(0, buf)
}

// Update extends a running CRC (as returned by Checksum or a previous
// Update call) over buf, the same way hash/crc32's package-level functions
// do: crc is the external representation, pre-conditioned and
// post-conditioned internally by this function.
//
// Update is the C7 dispatcher: it picks among the base, braid, Chorba and
// CLMUL kernels by input length and detected CPU capability. Every branch
// is required to return the same value for the same (crc, buf) — that
// agreement, not any one kernel's internals, is this package's contract.
func Update(crc uint32, buf []byte) uint32 {
	internal := ^crc
	internal = dispatch(internal, buf)
	return ^internal
}

func dispatch(crc uint32, buf []byte) uint32 {
	n := len(buf)
	switch {
	case n <= baseKernelCeiling:
		return baseUpdate(crc, buf)
	case n <= chorbaSmallCeiling:
		return chorbaSmallUpdate(crc, buf)
	case n <= braidCeiling:
		if cpufeature.Detect().PCLMULQDQ {
			return clmulUpdate(crc, buf)
		}
		return braidUpdate(crc, buf)
	default:
		if feat := cpufeature.Detect(); feat.PCLMULQDQ || feat.VPCLMULQDQ512 {
			return clmulUpdate(crc, buf)
		}
		return chorbaLargeUpdate(crc, buf)
	}
}
