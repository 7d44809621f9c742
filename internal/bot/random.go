package bot

import (
	"math/rand"
	"sync"
	"time"
)

// RandomSource - where the easy and medium strategies draw their randomness from.
// *rand.Rand satisfies it.
type RandomSource interface {
	Intn(n int) int
	Float64() float64
}

type lockedSource struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewLockedSource - a RandomSource safe for concurrent use. A zero seed means time-seeded.
func NewLockedSource(seed int64) RandomSource {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &lockedSource{
		rnd: rand.New(rand.NewSource(seed)), //nolint: gosec // game moves, not secrets
	}
}

func (that *lockedSource) Intn(n int) int {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.rnd.Intn(n)
}

func (that *lockedSource) Float64() float64 {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.rnd.Float64()
}
