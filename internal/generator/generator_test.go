package generator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/countdown/internal/domain"
	"svw.info/countdown/internal/validator"
)

func TestGenerateIsDeterministicPerSeed(t *testing.T) {
	g := New()
	a, _, err := g.Generate(context.Background(), 42, 2, 6)
	require.NoError(t, err)
	b, _, err := g.Generate(context.Background(), 42, 2, 6)
	require.NoError(t, err)

	assert.Equal(t, a.Numbers, b.Numbers)
	assert.Equal(t, a.Target, b.Target)

	c, _, err := g.Generate(context.Background(), 43, 2, 6)
	require.NoError(t, err)
	assert.NotEqual(t, a.Numbers, c.Numbers, "different seeds should diverge")
}

func TestGenerateRespectsPools(t *testing.T) {
	g := New()
	for seed := int64(0); seed < 20; seed++ {
		p, _, err := g.Generate(context.Background(), seed, 3, 6)
		require.NoError(t, err)
		require.Len(t, p.Numbers, 6)

		for i, n := range p.Numbers[:3] {
			assert.Contains(t, domain.LargePool, n, "seed %d position %d", seed, i)
		}
		for i, n := range p.Numbers[3:] {
			assert.Contains(t, domain.SmallPool, n, "seed %d position %d", seed, 3+i)
		}
		assert.GreaterOrEqual(t, p.Target, 101)
		assert.LessOrEqual(t, p.Target, 999)
	}
}

func TestGenerateLargeWithoutReplacement(t *testing.T) {
	g := New()
	for seed := int64(0); seed < 20; seed++ {
		p, _, err := g.Generate(context.Background(), seed, 4, 6)
		require.NoError(t, err)

		seen := map[int]bool{}
		for _, n := range p.Numbers[:4] {
			assert.False(t, seen[n], "seed %d drew large number %d twice", seed, n)
			seen[n] = true
		}
	}
}

func TestGenerateRejectsBadArguments(t *testing.T) {
	g := New()
	_, _, err := g.Generate(context.Background(), 1, 0, 0)
	require.Error(t, err)

	_, _, err = g.Generate(context.Background(), 1, 7, 6)
	require.Error(t, err)

	_, _, err = g.Generate(context.Background(), 1, 5, 8)
	require.Error(t, err) // only four distinct large numbers exist
}

func TestGenerateClassicRoundsValidate(t *testing.T) {
	g := New()
	v := validator.New()
	for seed := int64(0); seed < 50; seed++ {
		p, _, err := g.GenerateClassic(context.Background(), seed)
		require.NoError(t, err)
		require.Len(t, p.Numbers, 6)
		assert.GreaterOrEqual(t, p.LargeCount, 1)
		assert.LessOrEqual(t, p.LargeCount, 4)

		ok, problems, err := v.Validate(context.Background(), p)
		require.NoError(t, err)
		assert.True(t, ok, "seed %d: %v", seed, problems)
	}
}

func TestGenerateHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := New().Generate(ctx, 1, 2, 6)
	require.ErrorIs(t, err, context.Canceled)
}
