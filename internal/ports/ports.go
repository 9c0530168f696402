package ports

import (
	"context"
	"time"

	"svw.info/countdown/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Solver searches for the expression whose value is closest to the puzzle
// target. It always returns some Solution for a non-empty puzzle; a
// non-zero score is a near-miss, not an error.
type Solver interface {
	Solve(ctx context.Context, p *domain.Puzzle) (*domain.Solution, Stats, error)
}

// Generator draws new puzzles from the classic pools using a seed.
type Generator interface {
	Generate(ctx context.Context, seed int64, largeCount, size int) (*domain.Puzzle, Stats, error)
}

// Validator performs fast precondition checks (pool membership, counts,
// target range) on a puzzle before it reaches the solvers.
type Validator interface {
	Validate(ctx context.Context, p *domain.Puzzle) (ok bool, problems []string, err error)
}

// Hinter returns the best single next combination for a player.
type Hinter interface {
	Hint(ctx context.Context, numbers []int, target int) (domain.Hint, bool, error)
}
