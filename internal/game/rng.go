package game

import (
	"crypto/rand"
	"encoding/binary"
	mrand "math/rand"
)

// Source yields the uniform draws every game outcome is derived from.
// Production uses CryptoSource; tests inject a seeded source so rounds
// are reproducible.
type Source interface {
	// Float64 returns a uniform draw in [0, 1).
	Float64() float64
	// Intn returns a uniform int in [0, n). Panics if n <= 0.
	Intn(n int) int
	// Shuffle performs a Fisher-Yates shuffle over n elements.
	Shuffle(n int, swap func(i, j int))
}

// CryptoSource draws from crypto/rand.
type CryptoSource struct{}

func (CryptoSource) Float64() float64 {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// crypto/rand never fails on supported platforms
		panic("game: crypto source unavailable: " + err.Error())
	}
	// 53 random bits scaled into [0,1), same construction as math/rand
	return float64(binary.BigEndian.Uint64(buf[:])>>11) / (1 << 53)
}

func (s CryptoSource) Intn(n int) int {
	if n <= 0 {
		panic("game: Intn with non-positive n")
	}
	return int(s.Float64() * float64(n))
}

func (s CryptoSource) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		swap(i, s.Intn(i+1))
	}
}

type seededSource struct {
	r *mrand.Rand
}

// NewSeededSource returns a deterministic source for tests and the simulator.
func NewSeededSource(seed int64) Source {
	return &seededSource{r: mrand.New(mrand.NewSource(seed))}
}

func (s *seededSource) Float64() float64 { return s.r.Float64() }
func (s *seededSource) Intn(n int) int   { return s.r.Intn(n) }

func (s *seededSource) Shuffle(n int, f func(i, j int)) {
	s.r.Shuffle(n, f)
}
