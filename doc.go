// Package crc32fold is the root of a length-adaptive IEEE 802.3 CRC-32
// engine. It exists mostly as an import anchor: the interesting API lives in
// pkg/crc32fold, with supporting collaborators under internal/.
//
// The engine picks among several co-designed kernels — a braided
// table-driven walk, a "Chorba" GF(2) shift-network transform, and a
// lane-split fold kernel selected on capable hardware — based on input
// length and detected CPU capability, and guarantees every kernel produces
// bit-identical output for the same input. See pkg/crc32fold's doc comment
// for what each kernel actually does internally.
package crc32fold
