package testutil

import (
	"math/rand"
	"sort"
	"sync"
)

// Config is an (interval length, shard count) pair.
type Config struct {
	IntervalLength int
	NumShards      int
}

// GeometricIDs returns 0, 1, 3, 7, ... (each step grows by one plus the
// previous id) for every id below limit.
func GeometricIDs(limit uint64) []uint64 {
	var ids []uint64
	for j := uint64(0); j < limit; j += 1 + j {
		ids = append(ids, j)
	}
	return ids
}

// ConfigGrid returns shard configurations from intervals of 10 up to one
// million vertices, each with every shard count (in steps of 13, below 100)
// large enough to hold ten million vertices.
func ConfigGrid() []Config {
	var grid []Config
	for interval := 10; interval < 1_000_000; interval += 100_000 {
		for shards := 10_000_000/interval + 1; shards < 100; shards += 13 {
			grid = append(grid, Config{IntervalLength: interval, NumShards: shards})
		}
	}
	return grid
}

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Uint64n returns a pseudo-random number in [0,n).
func (r *RNG) Uint64n(n uint64) uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	if n&(n-1) == 0 {
		return r.rand.Uint64() & (n - 1)
	}
	maxVal := ^uint64(0) - ^uint64(0)%n
	for {
		v := r.rand.Uint64()
		if v < maxVal {
			return v % n
		}
	}
}

// IDs returns count distinct ids in [0,limit), sorted ascending.
func (r *RNG) IDs(count int, limit uint64) []uint64 {
	seen := make(map[uint64]struct{}, count)
	for len(seen) < count && uint64(len(seen)) < limit {
		seen[r.Uint64n(limit)] = struct{}{}
	}
	ids := make([]uint64, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
