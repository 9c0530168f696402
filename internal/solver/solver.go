// Package solver implements the two search strategies for the numbers game:
// an exhaustive bruteforce search and a depth-limited greedy-lookahead
// ("minimax") search. Both operate on the shared move generator in moves.go
// and the scoring in score.go, so their move semantics are identical.
package solver

import (
	"context"
	"errors"

	"svw.info/countdown/internal/domain"
	"svw.info/countdown/internal/ports"
)

// ErrEmptyPuzzle reports the only hard precondition violation: a puzzle
// with no source numbers.
var ErrEmptyPuzzle = errors.New("puzzle has no numbers")

// SolveBruteforce exhaustively solves numbers against target under cons.
func SolveBruteforce(ctx context.Context, numbers []int, target int, cons domain.Constraints) (*domain.Solution, ports.Stats, error) {
	return NewBruteforce(cons).Solve(ctx, &domain.Puzzle{Numbers: numbers, Target: target})
}

// SolveMinimax solves numbers against target under cons with the given
// lookahead depth. A negative depth selects DefaultDepth.
func SolveMinimax(ctx context.Context, numbers []int, target int, cons domain.Constraints, depth int) (*domain.Solution, ports.Stats, error) {
	return NewMinimax(cons, depth).Solve(ctx, &domain.Puzzle{Numbers: numbers, Target: target})
}
