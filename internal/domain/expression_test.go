package domain

import (
	"math/bits"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCombineArithmetic(t *testing.T) {
	cases := []struct {
		name   string
		op     Op
		a, b   int
		value  int
		render string
	}{
		{"addition", OpAdd, 10, 5, 15, "(10 + 5)"},
		{"subtraction", OpSubtract, 10, 3, 7, "(10 - 3)"},
		{"multiplication", OpMultiply, 6, 7, 42, "(6 * 7)"},
		{"division", OpDivide, 20, 4, 5, "(20 / 4)"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e, err := Combine(tc.op, NewSource(0, tc.a), NewSource(1, tc.b), Classic())
			require.NoError(t, err)
			assert.Equal(t, tc.value, e.Value())
			assert.Equal(t, tc.render, e.Render())
			assert.Equal(t, 1, e.Ops())
		})
	}
}

func TestCombineRejectsInvalidOperations(t *testing.T) {
	cls := Classic()

	_, err := Combine(OpDivide, NewSource(0, 10), NewSource(1, 0), cls)
	require.ErrorIs(t, err, ErrDivideByZero)
	require.ErrorIs(t, err, ErrInvalidOperation)

	_, err = Combine(OpDivide, NewSource(0, 10), NewSource(1, 3), cls)
	require.ErrorIs(t, err, ErrInexactDivision)

	_, err = Combine(OpSubtract, NewSource(0, 3), NewSource(1, 5), cls)
	require.ErrorIs(t, err, ErrNegativeResult)
}

func TestCombineRejectsOverlappingOperands(t *testing.T) {
	src := NewSource(0, 7)
	other, err := Combine(OpAdd, src, NewSource(1, 2), Classic())
	require.NoError(t, err)

	_, err = Combine(OpAdd, src, other, Classic())
	require.ErrorIs(t, err, ErrOperandsOverlap)
	require.NotErrorIs(t, err, ErrInvalidOperation)
}

func TestConstraintVariants(t *testing.T) {
	t.Run("negatives allowed", func(t *testing.T) {
		e, err := Combine(OpSubtract, NewSource(0, 3), NewSource(1, 5),
			Constraints{AllowNegative: true, ExactDivision: true})
		require.NoError(t, err)
		assert.Equal(t, -2, e.Value())
	})
	t.Run("truncating division", func(t *testing.T) {
		e, err := Combine(OpDivide, NewSource(0, 10), NewSource(1, 3),
			Constraints{ExactDivision: false})
		require.NoError(t, err)
		assert.Equal(t, 3, e.Value())
	})
}

func TestCombinePreservesDisjointness(t *testing.T) {
	// The union of the operands' source sets must have exactly as many bits
	// as the two sets together.
	sources := []*Expression{NewSource(0, 25), NewSource(1, 50), NewSource(2, 3), NewSource(3, 6)}
	ab, err := Combine(OpAdd, sources[0], sources[1], Classic())
	require.NoError(t, err)
	cd, err := Combine(OpMultiply, sources[2], sources[3], Classic())
	require.NoError(t, err)

	e, err := Combine(OpSubtract, ab, cd, Classic())
	require.NoError(t, err)
	assert.Equal(t,
		bits.OnesCount64(ab.Sources())+bits.OnesCount64(cd.Sources()),
		bits.OnesCount64(e.Sources()))
	assert.Equal(t, 57, e.Value())
	assert.Equal(t, 3, e.Ops())
}

func TestValueMatchesRenderedEquation(t *testing.T) {
	// A three-step chain, hand-checked against the rendered form.
	a, err := Combine(OpAdd, NewSource(0, 100), NewSource(1, 6), Classic())
	require.NoError(t, err)
	b, err := Combine(OpMultiply, a, NewSource(2, 3), Classic())
	require.NoError(t, err)
	c, err := Combine(OpSubtract, b, NewSource(3, 50), Classic())
	require.NoError(t, err)

	assert.Equal(t, "(((100 + 6) * 3) - 50)", c.Render())
	assert.Equal(t, (100+6)*3-50, c.Value())
}

func TestLeafAccessors(t *testing.T) {
	leaf := NewSource(2, 75)
	assert.True(t, leaf.IsLeaf())
	assert.Equal(t, "75", leaf.Render())
	assert.Equal(t, 0, leaf.Ops())
	assert.Equal(t, uint64(1<<2), leaf.Sources())
}
