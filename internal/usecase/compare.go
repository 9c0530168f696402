package usecase

import (
	"context"

	"svw.info/countdown/internal/domain"
	"svw.info/countdown/internal/ports"
)

// Outcome is one solver's result on a puzzle.
type Outcome struct {
	Solution *domain.Solution
	Stats    ports.Stats
}

// Comparison reports both solvers' results on the same puzzle, for
// benchmarking the heuristic search against the exhaustive one.
type Comparison struct {
	Puzzle     *domain.Puzzle
	Bruteforce Outcome
	Minimax    Outcome
}

// Verdict summarizes which solver matched the target exactly.
func (c *Comparison) Verdict() string {
	switch {
	case c.Bruteforce.Solution.Exact() && c.Minimax.Solution.Exact():
		return "both solvers found exact solutions"
	case c.Bruteforce.Solution.Exact():
		return "bruteforce found an exact solution, minimax an approximation"
	case c.Minimax.Solution.Exact():
		return "minimax found an exact solution, bruteforce an approximation"
	default:
		return "both solvers found approximations"
	}
}

// Compare runs both solvers on p.
func (u *Service) Compare(ctx context.Context, p *domain.Puzzle) (*Comparison, error) {
	if u.Bruteforce == nil || u.Minimax == nil {
		return nil, errNotConfigured
	}
	bs, bst, err := u.Bruteforce.Solve(ctx, p)
	if err != nil {
		return nil, err
	}
	ms, mst, err := u.Minimax.Solve(ctx, p)
	if err != nil {
		return nil, err
	}
	return &Comparison{
		Puzzle:     p,
		Bruteforce: Outcome{Solution: bs, Stats: bst},
		Minimax:    Outcome{Solution: ms, Stats: mst},
	}, nil
}
