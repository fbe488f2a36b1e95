package cpufeature

import "testing"

func TestDetectIsStable(t *testing.T) {
	a := Detect()
	b := Detect()
	if a != b {
		t.Fatalf("Detect() is not stable across calls: %+v vs %+v", a, b)
	}
}
