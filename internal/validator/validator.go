package validator

import (
	"context"
	"fmt"

	"svw.info/countdown/internal/domain"
)

// FastValidator checks the classic-round preconditions the solvers trust:
// every number comes from a known pool, large numbers stay within the pool
// size, and the target is a three-digit value.
type FastValidator struct{}

func New() *FastValidator { return &FastValidator{} }

func (v *FastValidator) Validate(ctx context.Context, p *domain.Puzzle) (bool, []string, error) {
	if err := ctx.Err(); err != nil {
		return false, nil, err
	}
	problems := make([]string, 0, 4)
	if len(p.Numbers) == 0 {
		problems = append(problems, "puzzle has no numbers")
	}
	large := 0
	for i, n := range p.Numbers {
		switch {
		case contains(domain.LargePool, n):
			large++
		case contains(domain.SmallPool, n):
		default:
			problems = append(problems, fmt.Sprintf("number %d at position %d is in neither pool", n, i))
		}
	}
	if large > len(domain.LargePool) {
		problems = append(problems, fmt.Sprintf("%d large numbers exceed the pool of %d", large, len(domain.LargePool)))
	}
	if p.Target < 101 || p.Target > 999 {
		problems = append(problems, fmt.Sprintf("target %d outside [101, 999]", p.Target))
	}
	return len(problems) == 0, problems, nil
}

func contains(pool []int, n int) bool {
	for _, v := range pool {
		if v == n {
			return true
		}
	}
	return false
}
