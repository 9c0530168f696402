package generator

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"svw.info/countdown/internal/domain"
	"svw.info/countdown/internal/ports"
)

// Generate draws largeCount large numbers without replacement, fills the
// remaining size slots from the small pool with replacement, and picks a
// target in [101, 999].
func (g *RandomGenerator) Generate(ctx context.Context, seed int64, largeCount, size int) (*domain.Puzzle, ports.Stats, error) {
	start := time.Now()
	if err := ctx.Err(); err != nil {
		return nil, ports.Stats{}, err
	}
	if size <= 0 {
		return nil, ports.Stats{}, fmt.Errorf("puzzle size %d must be positive", size)
	}
	if largeCount < 0 || largeCount > size || largeCount > len(domain.LargePool) {
		return nil, ports.Stats{}, fmt.Errorf("cannot draw %d large numbers for a %d-number puzzle", largeCount, size)
	}

	rng := rand.New(rand.NewSource(seed))
	numbers := make([]int, 0, size)

	pool := append([]int(nil), domain.LargePool...)
	for i := 0; i < largeCount; i++ {
		k := rng.Intn(len(pool))
		numbers = append(numbers, pool[k])
		pool = append(pool[:k], pool[k+1:]...)
	}
	for i := largeCount; i < size; i++ {
		numbers = append(numbers, domain.SmallPool[rng.Intn(len(domain.SmallPool))])
	}

	p := &domain.Puzzle{
		Numbers:    numbers,
		Target:     101 + rng.Intn(899),
		LargeCount: largeCount,
		Seed:       seed,
		CreatedAt:  time.Now().UnixNano(),
	}
	return p, ports.Stats{Duration: time.Since(start)}, nil
}

// GenerateClassic draws the classic round: six numbers, one to four large.
func (g *RandomGenerator) GenerateClassic(ctx context.Context, seed int64) (*domain.Puzzle, ports.Stats, error) {
	rng := rand.New(rand.NewSource(seed))
	return g.Generate(ctx, seed, 1+rng.Intn(4), 6)
}
