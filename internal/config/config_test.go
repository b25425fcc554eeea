package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdrpinto/bestfirst"
	"github.com/pdrpinto/bestfirst/queens"
)

func load(t *testing.T, args ...string) (Config, error) {
	t.Helper()
	v := viper.New()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(flags)
	require.NoError(t, Bind(v, flags))
	require.NoError(t, flags.Parse(args))
	if err := ReadFile(v); err != nil {
		return Config{}, err
	}
	return Load(v)
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := load(t)
	require.NoError(t, err)

	assert.Equal(t, []int{6}, cfg.Sizes)
	assert.Equal(t, bestfirst.StrategyAStar, cfg.Strategy)
	assert.Equal(t, "zero", cfg.Heuristic)
	assert.False(t, cfg.Pruned)
	assert.Nil(t, cfg.Fixed)
	assert.Equal(t, "text", cfg.Format)
	assert.Equal(t, zerolog.InfoLevel, cfg.LogLevel)
	assert.Equal(t, 1500, cfg.Budget)
	assert.Equal(t, 12, cfg.MaxSize)
	assert.Equal(t, 0, cfg.MaxExpansions)
}

func TestLoadFlags(t *testing.T) {
	cfg, err := load(t,
		"--sizes", "4, 8,4",
		"--strategy", "uniform-cost",
		"--fixed", "0:1,2:3",
		"--pruned",
		"--legacy-keys",
		"--format", "YAML",
	)
	require.NoError(t, err)

	assert.Equal(t, []int{4, 8}, cfg.Sizes)
	assert.Equal(t, bestfirst.StrategyUniformCost, cfg.Strategy)
	assert.Equal(t, []queens.Square{{Row: 0, Col: 1}, {Row: 2, Col: 3}}, cfg.Fixed)
	assert.True(t, cfg.Pruned)
	assert.True(t, cfg.LegacyKeys)
	assert.Equal(t, "yaml", cfg.Format)
	assert.Len(t, cfg.SearchOptions(zerolog.Nop()), 4)
}

func TestLoadEnvironment(t *testing.T) {
	t.Setenv("QUEENS_STRATEGY", "greedy")
	t.Setenv("QUEENS_LOG_LEVEL", "debug")
	t.Setenv("QUEENS_SIZES", "5")

	cfg, err := load(t)
	require.NoError(t, err)
	assert.Equal(t, bestfirst.StrategyGreedy, cfg.Strategy)
	assert.Equal(t, zerolog.DebugLevel, cfg.LogLevel)
	assert.Equal(t, []int{5}, cfg.Sizes)

	// flags win over the environment
	cfg, err = load(t, "--strategy", "depth-first")
	require.NoError(t, err)
	assert.Equal(t, bestfirst.StrategyDepthFirst, cfg.Strategy)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "queens.yaml")
	content := "sizes: [4, 5]\nstrategy: breadth-first\nheuristic: remaining\nbudget: 200\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := load(t, "--config", path)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 5}, cfg.Sizes)
	assert.Equal(t, bestfirst.StrategyBreadthFirst, cfg.Strategy)
	assert.Equal(t, "remaining", cfg.Heuristic)
	assert.Equal(t, 200, cfg.Budget)

	_, err = load(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadRejectsBadValues(t *testing.T) {
	_, err := load(t, "--sizes", "4,x")
	assert.ErrorIs(t, err, ErrBadSize)

	_, err = load(t, "--sizes", "0")
	assert.ErrorIs(t, err, ErrBadSize)

	_, err = load(t, "--fixed", "0-1")
	assert.ErrorIs(t, err, ErrBadFixed)

	_, err = load(t, "--format", "xml")
	assert.ErrorIs(t, err, ErrBadFormat)

	_, err = load(t, "--strategy", "beam")
	assert.Error(t, err)

	_, err = load(t, "--log-level", "loud")
	assert.Error(t, err)
}
