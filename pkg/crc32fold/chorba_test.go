package crc32fold

import "testing"

// chorbaSmallUpdate and chorbaLargeUpdate operate on the internal
// (complemented) representation, exactly like baseUpdate: starting from
// ^uint32(0) and complementing the result reproduces the external,
// fully-conditioned IEEE CRC-32 that referenceChecksum computes
// independently, so these tests check the shift network against a real
// oracle rather than against another kernel under test.
func TestChorbaSmallMatchesReference(t *testing.T) {
	for _, n := range []int{
		73, 74, 79, 80, 81, 96, 104, 105, 127, 128, 129, 200, 1000, 8192,
	} {
		buf := deterministicBytes(n)
		got := ^chorbaSmallUpdate(^uint32(0), buf)
		want := referenceChecksum(buf)
		if got != want {
			t.Fatalf("len %d: chorbaSmallUpdate=%#x want %#x", n, got, want)
		}
	}
}

func TestChorbaSmallBelowFloorMatchesReference(t *testing.T) {
	// chorbaSmallUpdate must still be correct for inputs at or below its
	// normal dispatch floor (chorbaSmallTail bytes), where no stride runs.
	for _, n := range []int{0, 1, 7, 8, 40, 41, 72} {
		buf := deterministicBytes(n)
		got := ^chorbaSmallUpdate(^uint32(0), buf)
		want := referenceChecksum(buf)
		if got != want {
			t.Fatalf("len %d: chorbaSmallUpdate=%#x want %#x", n, got, want)
		}
	}
}

func TestChorbaLargeMatchesReference(t *testing.T) {
	for _, n := range []int{
		0, 1, 72, 73, chorbaSmallTail + 1, chorbaLargeWindow - 1,
		chorbaLargeWindow, chorbaLargeWindow + 1, 2*chorbaLargeWindow + 17,
	} {
		buf := deterministicBytes(n)
		got := ^chorbaLargeUpdate(^uint32(0), buf)
		want := referenceChecksum(buf)
		if got != want {
			t.Fatalf("len %d: chorbaLargeUpdate=%#x want %#x", n, got, want)
		}
	}
}

// TestChorbaSmallChainsLikeBase pins the algebraic property chorbaLargeUpdate
// depends on: splitting an input across two chorbaSmallUpdate calls must
// give the same result as one call over the concatenation, the same way
// baseUpdate chains.
func TestChorbaSmallChainsLikeBase(t *testing.T) {
	for _, split := range []struct{ a, b int }{
		{100, 100}, {200, 73}, {1000, 5000}, {73, 73},
	} {
		whole := deterministicBytes(split.a + split.b)
		a, b := whole[:split.a], whole[split.a:]

		chained := chorbaSmallUpdate(chorbaSmallUpdate(^uint32(0), a), b)
		direct := chorbaSmallUpdate(^uint32(0), whole)
		if chained != direct {
			t.Fatalf("split %+v: chained=%#x direct=%#x", split, chained, direct)
		}
	}
}
