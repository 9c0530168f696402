package solver

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"svw.info/countdown/internal/domain"
	"svw.info/countdown/internal/ports"
)

// Bruteforce exhaustively explores the move tree and returns the reachable
// expression with the minimum score. Every constructed expression, the
// initial singletons included, is a candidate, since source numbers are used
// at most once rather than exactly once. The search short-circuits as soon
// as a score of zero appears: no better solution can exist.
type Bruteforce struct {
	Constraints domain.Constraints
	// Parallel distributes first-ply branches across goroutines, with a
	// shared solved flag so all branches stop expanding once any of them
	// finds an exact match. The returned score is identical to the
	// sequential search; when several exact matches exist the witness
	// expression may differ between runs.
	Parallel bool
}

// NewBruteforce returns a sequential exhaustive solver under cons.
func NewBruteforce(cons domain.Constraints) *Bruteforce {
	return &Bruteforce{Constraints: cons}
}

func (b *Bruteforce) Solve(ctx context.Context, p *domain.Puzzle) (*domain.Solution, ports.Stats, error) {
	start := time.Now()
	if len(p.Numbers) == 0 {
		return nil, ports.Stats{Duration: time.Since(start)}, ErrEmptyPuzzle
	}
	init := initialState(p.Numbers)
	if b.Parallel && len(init) > 1 {
		return b.solveParallel(ctx, init, p.Target, start)
	}

	r := &run{target: p.Target, cons: b.Constraints, solved: new(atomic.Bool)}
	for _, e := range init {
		r.consider(e)
	}
	if !r.solved.Load() {
		r.search(ctx, init)
	}
	return &domain.Solution{Expr: r.best, Score: Score(r.best, p.Target), Target: p.Target},
		ports.Stats{Nodes: r.nodes, Duration: time.Since(start)}, nil
}

// run tracks one search's best candidate and node count. The solved flag is
// shared across parallel branches so every in-flight branch observes an
// exact match found elsewhere before expanding further.
type run struct {
	target int
	cons   domain.Constraints
	best   *domain.Expression
	nodes  int
	solved *atomic.Bool
}

func (r *run) consider(e *domain.Expression) {
	if better(e, r.best, r.target) {
		r.best = e
		if Score(e, r.target) == 0 {
			r.solved.Store(true)
		}
	}
}

func (r *run) search(ctx context.Context, s state) {
	if ctx.Err() != nil {
		return
	}
	forEachMove(s, r.cons, func(i, j int, combined *domain.Expression) bool {
		r.nodes++
		r.consider(combined)
		if r.solved.Load() {
			return false
		}
		if len(s) > 2 {
			r.search(ctx, s.successor(i, j, combined))
			if r.solved.Load() {
				return false
			}
		}
		return true
	})
}

func (b *Bruteforce) solveParallel(ctx context.Context, init state, target int, start time.Time) (*domain.Solution, ports.Stats, error) {
	solved := new(atomic.Bool)
	seed := &run{target: target, cons: b.Constraints, solved: solved}
	for _, e := range init {
		seed.consider(e)
	}

	var (
		mu    sync.Mutex
		best  = seed.best
		nodes int
	)
	if !solved.Load() {
		g, gctx := errgroup.WithContext(ctx)
		// Expressions are immutable, so branches share init read-only and
		// build their own successor states.
		forEachMove(init, b.Constraints, func(i, j int, combined *domain.Expression) bool {
			br := &run{target: target, cons: b.Constraints, solved: solved}
			g.Go(func() error {
				br.consider(combined)
				if !br.solved.Load() && len(init) > 2 {
					br.search(gctx, init.successor(i, j, combined))
				}
				mu.Lock()
				defer mu.Unlock()
				nodes += br.nodes + 1
				if better(br.best, best, target) {
					best = br.best
				}
				return nil
			})
			return true
		})
		_ = g.Wait()
	}
	return &domain.Solution{Expr: best, Score: Score(best, target), Target: target},
		ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}
