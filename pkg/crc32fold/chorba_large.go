package crc32fold

// chorbaLargeWindow is the window size the large-input Chorba kernel walks
// through, matching zlib-ng's 128 KiB chorba_118960 window: the point beyond
// which the original's 22-accumulator dual-distance buffering pays for
// itself. This kernel keeps the bounded-extra-memory contract (additional
// state never grows with input size) by processing the same size window,
// without replicating that 22-accumulator circular scratch buffer — see
// DESIGN.md for why.
const chorbaLargeWindow = 128 * 1024

// chorbaLargeUpdate is the C5 kernel. It walks the buffer in chorbaLargeWindow
// chunks, running each chunk through the real C4 shift-network recurrence
// (chorbaSmallUpdate) and chaining the resulting CRC into the next chunk —
// valid because chorbaSmallUpdate computes the same update function
// baseUpdate does, just via accumulators and shifts instead of a table, so
// sequential calls compose the same way sequential baseUpdate calls do. Any
// final remainder too short for chorbaSmallUpdate's own tail handling
// (chorbaSmallTail bytes or fewer) is finished directly with baseUpdate.
func chorbaLargeUpdate(crc uint32, buf []byte) uint32 {
	for len(buf) > chorbaSmallTail {
		n := len(buf)
		if n > chorbaLargeWindow {
			n = chorbaLargeWindow
		}
		crc = chorbaSmallUpdate(crc, buf[:n])
		buf = buf[n:]
	}
	return baseUpdate(crc, buf)
}
