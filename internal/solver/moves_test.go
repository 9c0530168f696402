package solver

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/countdown/internal/domain"
)

func moveValues(numbers []int, cons domain.Constraints) []int {
	values := []int{}
	forEachMove(initialState(numbers), cons, func(_, _ int, combined *domain.Expression) bool {
		values = append(values, combined.Value())
		return true
	})
	sort.Ints(values)
	return values
}

func TestMovesForPair(t *testing.T) {
	// 10+5, 10*5, 10-5 and 10/5; 5-10 and 5/10 are invalid under classic
	// rules and never surface.
	assert.Equal(t, []int{2, 5, 15, 50}, moveValues([]int{10, 5}, domain.Classic()))
}

func TestBothOrdersForNonCommutativeOps(t *testing.T) {
	classic := moveValues([]int{10, 4}, domain.Classic())
	assert.Equal(t, []int{6, 14, 40}, classic)

	negatives := moveValues([]int{10, 4}, domain.Constraints{AllowNegative: true, ExactDivision: true})
	assert.Equal(t, []int{-6, 6, 14, 40}, negatives)
}

func TestIdentityMovesSkipped(t *testing.T) {
	// Multiplying or dividing by 1 duplicates an existing value, so only
	// 7+1 and 7-1 remain.
	assert.Equal(t, []int{6, 8}, moveValues([]int{7, 1}, domain.Classic()))
}

func TestZeroOperandsNeverDivide(t *testing.T) {
	// Puzzle rules exclude 0, but the generator must still reject it.
	forEachMove(initialState([]int{5, 0}), domain.Classic(), func(_, _ int, combined *domain.Expression) bool {
		if combined.Op() == domain.OpDivide {
			require.NotZero(t, combined.Right().Value(), "division by zero surfaced: %s", combined.Render())
		}
		return true
	})
	assert.Equal(t, []int{0, 0, 5, 5}, moveValues([]int{5, 0}, domain.Classic()))
}

func TestMoveEnumerationIsBounded(t *testing.T) {
	n := 0
	forEachMove(initialState([]int{25, 50, 75, 100, 3, 6}), domain.Classic(), func(_, _ int, _ *domain.Expression) bool {
		n++
		return true
	})
	// At most C(6,2) pairs x 6 operator orderings.
	assert.LessOrEqual(t, n, 15*6)
	assert.Greater(t, n, 0)
}

func TestSuccessorLeavesStateUntouched(t *testing.T) {
	s := initialState([]int{2, 3, 4})
	combined, err := domain.Combine(domain.OpAdd, s[0], s[1], domain.Classic())
	require.NoError(t, err)

	next := s.successor(0, 1, combined)
	require.Len(t, next, 2)
	assert.Equal(t, 4, next[0].Value())
	assert.Equal(t, 5, next[1].Value())
	// original state unchanged
	require.Len(t, s, 3)
	assert.Equal(t, 2, s[0].Value())
}

func TestBestMove(t *testing.T) {
	e, ok := BestMove([]int{100, 6, 3}, 94, domain.Classic())
	require.True(t, ok)
	assert.Equal(t, 94, e.Value())
	assert.Equal(t, domain.OpSubtract, e.Op())

	_, ok = BestMove([]int{5}, 25, domain.Classic())
	assert.False(t, ok)
}
