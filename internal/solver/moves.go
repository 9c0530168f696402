package solver

import "svw.info/countdown/internal/domain"

// state is the multiset of expressions still available for combination. A
// move replaces two of them with their combination, so the count strictly
// decreases and the search is acyclic; a state with one expression is
// terminal.
type state []*domain.Expression

// initialState builds one singleton expression per source number.
func initialState(numbers []int) state {
	s := make(state, len(numbers))
	for i, n := range numbers {
		s[i] = domain.NewSource(i, n)
	}
	return s
}

// successor returns a new state with positions i and j replaced by combined.
// The receiver is left untouched so sibling branches can reuse it.
func (s state) successor(i, j int, combined *domain.Expression) state {
	next := make(state, 0, len(s)-1)
	for k, e := range s {
		if k == i || k == j {
			continue
		}
		next = append(next, e)
	}
	return append(next, combined)
}

// forEachMove enumerates every legal combination of two available
// expressions, in a fixed order so repeated runs visit moves identically.
// Addition and multiplication are commutative and tried once per unordered
// pair; subtraction and division are tried in both orders. Candidates are
// validated eagerly through domain.Combine and invalid ones discarded, so
// callers never see an illegal move. Identity moves (multiplying or dividing
// by a value of 1) are skipped: their result duplicates an existing value
// with more operations. fn returns false to stop the enumeration.
func forEachMove(s state, cons domain.Constraints, fn func(i, j int, combined *domain.Expression) bool) {
	for i := 0; i < len(s); i++ {
		for j := i + 1; j < len(s); j++ {
			a, b := s[i], s[j]
			candidates := [...]struct {
				op   domain.Op
				x, y *domain.Expression
			}{
				{domain.OpAdd, a, b},
				{domain.OpMultiply, a, b},
				{domain.OpSubtract, a, b},
				{domain.OpSubtract, b, a},
				{domain.OpDivide, a, b},
				{domain.OpDivide, b, a},
			}
			for _, m := range candidates {
				switch m.op {
				case domain.OpMultiply:
					if m.x.Value() == 1 || m.y.Value() == 1 {
						continue
					}
				case domain.OpDivide:
					if m.y.Value() == 1 {
						continue
					}
				}
				combined, err := domain.Combine(m.op, m.x, m.y, cons)
				if err != nil {
					continue // invalid moves are filtered here, never surfaced
				}
				if !fn(i, j, combined) {
					return
				}
			}
		}
	}
}

// BestMove returns the single legal combination of two of the given numbers
// whose result lands closest to target, or ok=false when no legal move
// exists. It shares the solvers' move semantics and backs the hinter.
func BestMove(numbers []int, target int, cons domain.Constraints) (*domain.Expression, bool) {
	var best *domain.Expression
	forEachMove(initialState(numbers), cons, func(_, _ int, combined *domain.Expression) bool {
		if better(combined, best, target) {
			best = combined
		}
		return true
	})
	return best, best != nil
}
