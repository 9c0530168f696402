package solver

import (
	"context"
	"time"

	"svw.info/countdown/internal/domain"
	"svw.info/countdown/internal/ports"
)

// DefaultDepth covers the full game: six numbers allow at most five
// combination steps.
const DefaultDepth = 5

// Minimax is the depth-limited greedy-lookahead solver. At each state it
// evaluates every legal move by the best score reachable within Depth
// further moves, commits to the best-evaluated move, and repeats from the
// resulting state without backtracking. Candidates are registered from
// committed states only, so its score is never lower than the bruteforce
// solver's; in exchange it expands far fewer nodes on shallow depths.
// Despite the name there is no adversary: every ply minimizes the same
// distance-to-target score.
type Minimax struct {
	Constraints domain.Constraints
	// Depth bounds the lookahead beyond each candidate move. Zero degrades
	// to a single greedy local-score comparison.
	Depth int
}

// NewMinimax returns a lookahead solver under cons. A negative depth selects
// DefaultDepth.
func NewMinimax(cons domain.Constraints, depth int) *Minimax {
	if depth < 0 {
		depth = DefaultDepth
	}
	return &Minimax{Constraints: cons, Depth: depth}
}

func (m *Minimax) Solve(ctx context.Context, p *domain.Puzzle) (*domain.Solution, ports.Stats, error) {
	start := time.Now()
	if len(p.Numbers) == 0 {
		return nil, ports.Stats{Duration: time.Since(start)}, ErrEmptyPuzzle
	}

	nodes := 0
	cur := initialState(p.Numbers)
	var best *domain.Expression
	commit := func(s state) {
		for _, e := range s {
			if better(e, best, p.Target) {
				best = e
			}
		}
	}
	commit(cur)

	for len(cur) > 1 && Score(best, p.Target) != 0 && ctx.Err() == nil {
		var (
			chosen     state
			chosenEval = -1
		)
		forEachMove(cur, m.Constraints, func(i, j int, combined *domain.Expression) bool {
			succ := cur.successor(i, j, combined)
			eval := m.lookahead(ctx, succ, p.Target, m.Depth, &nodes)
			if chosenEval < 0 || eval < chosenEval {
				chosen, chosenEval = succ, eval
			}
			// An exact match within the horizon cannot be beaten; ties
			// between equal evaluations keep the first move enumerated.
			return eval != 0
		})
		if chosen == nil {
			break // no legal moves remain
		}
		cur = chosen
		commit(cur)
	}

	return &domain.Solution{Expr: best, Score: Score(best, p.Target), Target: p.Target},
		ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}

// lookahead estimates the best (minimum) score of any expression reachable
// from s within depth further moves.
func (m *Minimax) lookahead(ctx context.Context, s state, target, depth int, nodes *int) int {
	*nodes++
	best := Score(s[0], target)
	for _, e := range s[1:] {
		if sc := Score(e, target); sc < best {
			best = sc
		}
	}
	if best == 0 || depth == 0 || len(s) == 1 || ctx.Err() != nil {
		return best
	}
	forEachMove(s, m.Constraints, func(i, j int, combined *domain.Expression) bool {
		if sc := m.lookahead(ctx, s.successor(i, j, combined), target, depth-1, nodes); sc < best {
			best = sc
		}
		return best != 0
	})
	return best
}
