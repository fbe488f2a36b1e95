package crc32fold

import "errors"

// ErrInvalidState is returned when a FoldState method is called in a phase
// that does not permit it: Append/AppendCopy after Finalize, or Finalize
// twice.
var ErrInvalidState = errors.New("crc32fold: invalid fold state transition")

type foldPhase int

const (
	foldFresh foldPhase = iota
	foldFolding
	foldFinalized
)

// FoldState is the C6 streaming fold kernel's state machine: FRESH until
// the first Append/AppendCopy, FOLDING while accumulating, FINALIZED once
// Finalize has produced a result. It exists as a distinct, self-contained
// kernel alongside the one-shot dispatcher path so callers with I/O-bound
// chunk boundaries (a network read loop, a copying writer) never need to
// buffer a whole message just to checksum it.
//
// Internally each Append splits its chunk into up to four independent,
// contiguous sub-ranges, CRCs them independently, and folds the four
// partials together with Combine — the same fold-then-reduce shape C6
// describes, expressed with the module's already-verified combine algebra
// rather than a hand-derived carry-less-multiply reduction (see DESIGN.md).
type FoldState struct {
	phase  foldPhase
	crc    uint32 // external (fully conditioned) representation
	length int64
}

// NewFold returns a fold state ready to accumulate, representing the CRC
// of zero bytes consumed so far.
func NewFold() *FoldState {
	return &FoldState{phase: foldFresh}
}

// Append folds buf into the running state.
func (f *FoldState) Append(buf []byte) error {
	if f.phase == foldFinalized {
		return ErrInvalidState
	}
	if len(buf) == 0 {
		f.phase = foldFolding
		return nil
	}
	partial := foldLanes(buf)
	if f.phase == foldFresh {
		f.crc = partial
	} else {
		f.crc = Combine(f.crc, partial, int64(len(buf)))
	}
	f.length += int64(len(buf))
	f.phase = foldFolding
	return nil
}

// AppendCopy copies src into dst while folding src into the running state,
// for callers that need a copy-and-checksum step (e.g. assembling a
// receive buffer) without a second pass over the data. dst and src must be
// the same length.
func (f *FoldState) AppendCopy(dst, src []byte) error {
	if len(dst) != len(src) {
		return errors.New("crc32fold: AppendCopy: dst and src length mismatch")
	}
	copy(dst, src)
	return f.Append(src)
}

// Finalize returns the CRC of every byte folded in so far and marks the
// state finalized; subsequent calls to any method return ErrInvalidState.
func (f *FoldState) Finalize() (uint32, error) {
	if f.phase == foldFinalized {
		return 0, ErrInvalidState
	}
	f.phase = foldFinalized
	return f.crc, nil
}

// clmulUpdate is the one-shot C6 kernel the dispatcher calls directly: same
// lane-split-and-combine construction as FoldState.Append, wired to the
// internal (complemented) representation the other kernels share.
func clmulUpdate(crc uint32, buf []byte) uint32 {
	if len(buf) == 0 {
		return crc
	}
	external := ^crc
	combined := Combine(external, foldLanes(buf), int64(len(buf)))
	return ^combined
}

// foldLanes computes the CRC of buf alone (external representation) by
// splitting it into up to four contiguous lanes, CRCing each independently
// via the base kernel, and folding the lanes together with Combine. This is
// correct by construction: Combine's invariant is exactly crc(A‖B) ==
// Combine(crc(A), crc(B), len(B)), applied twice more for four lanes.
func foldLanes(buf []byte) uint32 {
	const maxLanes = 4
	lanes := maxLanes
	if len(buf) < lanes {
		lanes = 1
	}
	base := len(buf) / lanes
	rem := len(buf) % lanes

	var result uint32
	have := false
	off := 0
	for i := 0; i < lanes; i++ {
		n := base
		if i < rem {
			n++
		}
		part := buf[off : off+n]
		off += n
		partCRC := ^baseUpdate(^uint32(0), part)
		if !have {
			result = partCRC
			have = true
			continue
		}
		result = Combine(result, partCRC, int64(len(part)))
	}
	return result
}
