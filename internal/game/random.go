package game

import (
	"fmt"
	"hash/fnv"
	"math/rand/v2"
	"time"
)

// TargetSource picks the secret target for a new round.
type TargetSource interface {
	Target(min, max int) int
}

// RandomSource draws targets uniformly from a seeded PCG generator.
type RandomSource struct {
	rng *rand.Rand
}

// NewRandomSource returns a source seeded with seed, or with the clock when
// seed is zero.
func NewRandomSource(seed int64) *RandomSource {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RandomSource{rng: seededRNG(seed)}
}

func (s *RandomSource) Target(min, max int) int {
	if max <= min {
		return min
	}
	return min + s.rng.IntN(max-min+1)
}

// FixedSource always returns the same target.
type FixedSource int

func (f FixedSource) Target(min, max int) int {
	return clampInt(int(f), min, max)
}

// SequenceSource hands out its values in order and wraps around.
type SequenceSource struct {
	Values []int
	next   int
}

func (s *SequenceSource) Target(min, max int) int {
	if len(s.Values) == 0 {
		return min
	}
	v := s.Values[s.next%len(s.Values)]
	s.next++
	return clampInt(v, min, max)
}

func seededRNG(seed int64) *rand.Rand {
	// Non-cryptographic PRNG is fine for picking a guessing target.
	// #nosec G404
	return rand.New(rand.NewPCG(seedWord(seed, "a"), seedWord(seed, "b")))
}

func seedWord(seed int64, salt string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(fmt.Sprintf("%d:%s", seed, salt)))
	return h.Sum64()
}

func drawTarget(src TargetSource) int {
	return clampInt(src.Target(MinTarget, MaxTarget), MinTarget, MaxTarget)
}

func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
