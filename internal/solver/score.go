package solver

import "svw.info/countdown/internal/domain"

// Score is the absolute difference between the expression value and the
// target; zero denotes an exact solution.
func Score(e *domain.Expression, target int) int {
	d := e.Value() - target
	if d < 0 {
		d = -d
	}
	return d
}

// better reports whether candidate should replace best. Lower score wins,
// ties prefer fewer operations, and remaining ties take the
// lexicographically smaller rendering so repeated runs return identical
// solutions.
func better(candidate, best *domain.Expression, target int) bool {
	if candidate == nil {
		return false
	}
	if best == nil {
		return true
	}
	cs, bs := Score(candidate, target), Score(best, target)
	if cs != bs {
		return cs < bs
	}
	if candidate.Ops() != best.Ops() {
		return candidate.Ops() < best.Ops()
	}
	return candidate.Render() < best.Render()
}
