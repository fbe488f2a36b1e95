// Package cpufeature is the external collaborator named in the engine's
// design as the "CPU feature probe": has_pclmulqdq, has_vpclmulqdq_512, and
// has_arm_crc32 are queried at most once per process and cached, matching
// the contract that results are immutable for the process lifetime.
package cpufeature

import (
	"sync"

	"golang.org/x/sys/cpu"
)

// Set is a snapshot of the capability flags the dispatcher cares about.
type Set struct {
	PCLMULQDQ     bool
	VPCLMULQDQ512 bool
	ARM64CRC32    bool
}

var (
	once  sync.Once
	cache Set
)

// Detect returns the process-wide capability snapshot, probing the hardware
// exactly once regardless of how many callers ask.
func Detect() Set {
	once.Do(func() {
		cache = Set{
			PCLMULQDQ:     cpu.X86.HasPCLMULQDQ && cpu.X86.HasSSE41,
			VPCLMULQDQ512: cpu.X86.HasAVX512F && cpu.X86.HasAVX512VPCLMULQDQ,
			ARM64CRC32:    cpu.ARM64.HasCRC32,
		}
	})
	return cache
}
