package crc32fold

// Length thresholds the dispatcher (C7) uses to pick a kernel, matching
// spec §4.6's decision table: <=72 B, (72 B, 8 KiB], (8 KiB, 512 KiB], and
// >512 KiB. These are plain constants rather than runtime-tuned values:
// every kernel here is portable Go with no cgo/asm variant, so there is
// nothing for a build-tag split (the teacher's
// threshold_cgo.go/threshold_nocgo.go pattern) to select between — see
// DESIGN.md.
const (
	// baseKernelCeiling: at or below this, chorbaSmallUpdate's stride loop
	// never runs (only its tail handling would); the plain table walk is
	// both simpler and sufficient.
	baseKernelCeiling = 72
	// chorbaSmallCeiling: spec's dedicated C4 band tops out at 8 KiB.
	chorbaSmallCeiling = 8 * 1024
	// braidCeiling: spec marks 8 KiB-32 KiB as an *optional* dedicated
	// mid-size Chorba variant; this module resolves that open question by
	// routing the whole 8 KiB-512 KiB gap to the braid kernel instead (see
	// DESIGN.md's Open Questions) rather than adding a second Chorba
	// specialization.
	braidCeiling = 512 * 1024
)
