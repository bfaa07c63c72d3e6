package game

import "testing"

func TestSeededRNGDeterministic(t *testing.T) {
	rngA := seededRNG(12345)
	rngB := seededRNG(12345)

	for i := 0; i < 20; i++ {
		gotA := rngA.IntN(100000)
		gotB := rngB.IntN(100000)
		if gotA != gotB {
			t.Fatalf("expected deterministic sequence, mismatch at %d: %d != %d", i, gotA, gotB)
		}
	}
}

func TestSeedWordChangesWithSalt(t *testing.T) {
	a := seedWord(99, "a")
	b := seedWord(99, "b")
	if a == b {
		t.Fatalf("expected different seed words for different salts")
	}
}

func TestRandomSourceStaysInRange(t *testing.T) {
	src := NewRandomSource(7)
	seen := make(map[int]bool)
	for i := 0; i < 5000; i++ {
		v := src.Target(MinTarget, MaxTarget)
		if v < MinTarget || v > MaxTarget {
			t.Fatalf("target %d outside [%d,%d]", v, MinTarget, MaxTarget)
		}
		seen[v] = true
	}
	if !seen[MinTarget] || !seen[MaxTarget] {
		t.Fatalf("expected both bounds to be reachable, min=%v max=%v", seen[MinTarget], seen[MaxTarget])
	}
}

func TestRandomSourceSameSeedSameTargets(t *testing.T) {
	a := NewRandomSource(42)
	b := NewRandomSource(42)
	for i := 0; i < 10; i++ {
		if x, y := a.Target(1, 100), b.Target(1, 100); x != y {
			t.Fatalf("draw %d: %d != %d", i, x, y)
		}
	}
}

func TestFixedSourceClampsIntoRange(t *testing.T) {
	tests := []struct {
		in   FixedSource
		want int
	}{
		{in: 50, want: 50},
		{in: 0, want: 1},
		{in: -9, want: 1},
		{in: 101, want: 100},
	}
	for _, tc := range tests {
		if got := tc.in.Target(MinTarget, MaxTarget); got != tc.want {
			t.Fatalf("FixedSource(%d).Target()=%d want=%d", int(tc.in), got, tc.want)
		}
	}
}

func TestSequenceSourceWraps(t *testing.T) {
	src := &SequenceSource{Values: []int{10, 20, 300}}
	want := []int{10, 20, 100, 10}
	for i, w := range want {
		if got := src.Target(MinTarget, MaxTarget); got != w {
			t.Fatalf("draw %d: got %d want %d", i, got, w)
		}
	}
}

func TestEmptySequenceSourceReturnsMin(t *testing.T) {
	src := &SequenceSource{}
	if got := src.Target(MinTarget, MaxTarget); got != MinTarget {
		t.Fatalf("expected %d, got %d", MinTarget, got)
	}
}
