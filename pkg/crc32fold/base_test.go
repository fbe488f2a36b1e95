package crc32fold

import (
	"hash/crc32"
	"testing"
)

func TestBaseUpdateMatchesStdlib(t *testing.T) {
	for _, n := range []int{0, 1, 3, 8, 255, 256, 1024, 4099} {
		buf := deterministicBytes(n)
		got := ^baseUpdate(^uint32(0), buf)
		want := crc32.ChecksumIEEE(buf)
		if got != want {
			t.Fatalf("len %d: baseUpdate=%#x want %#x", n, got, want)
		}
	}
}
