package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/countdown/internal/domain"
	"svw.info/countdown/internal/solver"
)

func TestDefaults(t *testing.T) {
	cfg := Default()
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "bruteforce", cfg.Solver.Strategy)
	assert.Equal(t, solver.DefaultDepth, cfg.Solver.Depth)
	assert.Equal(t, domain.Classic(), cfg.Solver.Constraints())
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
addr: ":9090"
solver:
  strategy: minimax
  depth: 2
  allow_negative: true
  exact_division: false
  parallel: true
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "minimax", cfg.Solver.Strategy)
	assert.Equal(t, 2, cfg.Solver.Depth)
	assert.True(t, cfg.Solver.Parallel)
	assert.Equal(t,
		domain.Constraints{AllowNegative: true, ExactDivision: false},
		cfg.Solver.Constraints())
}

func TestLoadPartialFileKeepsClassicDivision(t *testing.T) {
	// A file that never mentions exact_division must not flip the classic
	// default.
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("addr: \":7070\"\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.Addr)
	assert.True(t, cfg.Solver.Constraints().ExactDivision)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestLoadMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("addr: [unclosed"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse")
}
