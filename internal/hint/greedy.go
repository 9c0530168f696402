package hint

import (
	"context"
	"fmt"

	"svw.info/countdown/internal/domain"
	"svw.info/countdown/internal/solver"
)

// Greedy suggests the single next combination whose result lands closest to
// the target. It shares the solvers' move legality, so it never suggests an
// illegal step.
type Greedy struct {
	Constraints domain.Constraints
}

func NewGreedy(cons domain.Constraints) *Greedy { return &Greedy{Constraints: cons} }

func (g *Greedy) Hint(ctx context.Context, numbers []int, target int) (domain.Hint, bool, error) {
	if err := ctx.Err(); err != nil {
		return domain.Hint{}, false, err
	}
	e, ok := solver.BestMove(numbers, target, g.Constraints)
	if !ok {
		return domain.Hint{}, false, nil
	}
	h := domain.Hint{
		Left:   e.Left().Value(),
		Right:  e.Right().Value(),
		Op:     e.Op().String(),
		Result: e.Value(),
	}
	h.Message = fmt.Sprintf("try %d %s %d = %d", h.Left, h.Op, h.Right, h.Result)
	return h, true, nil
}
