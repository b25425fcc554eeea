// Package config loads the queens CLI settings from flags, QUEENS_*
// environment variables and an optional YAML file, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/pdrpinto/bestfirst"
	"github.com/pdrpinto/bestfirst/queens"
)

// Keys shared by flags, environment variables and the config file.
const (
	KeyConfig         = "config"
	KeySizes          = "sizes"
	KeyStrategy       = "strategy"
	KeyHeuristic      = "heuristic"
	KeyPruned         = "pruned"
	KeyPenalised      = "penalised"
	KeyFixed          = "fixed"
	KeyLegacyOrdering = "legacy-ordering"
	KeyLegacyKeys     = "legacy-keys"
	KeyMaxExpansions  = "max-expansions"
	KeyFormat         = "format"
	KeyLogLevel       = "log-level"
	KeyBudget         = "budget"
	KeyMaxSize        = "max-size"
)

// EnvPrefix is prepended to every key when read from the environment.
const EnvPrefix = "QUEENS"

var (
	ErrBadSize   = errors.New("config: board sizes must be positive integers")
	ErrBadFixed  = errors.New("config: fixed queens must look like row:col[,row:col...]")
	ErrBadFormat = errors.New("config: format must be text, json or yaml")
)

// Config is the validated CLI configuration.
type Config struct {
	Sizes          []int
	Strategy       bestfirst.Strategy
	Heuristic      string
	Pruned         bool
	Penalised      bool
	Fixed          []queens.Square
	LegacyOrdering bool
	LegacyKeys     bool
	MaxExpansions  int
	Format         string
	LogLevel       zerolog.Level

	// Budget stops the compare loop once a strategy expands this many nodes.
	Budget int
	// MaxSize caps the board size the compare loop will try.
	MaxSize int
}

// RegisterFlags declares every setting on the flag set with its default.
func RegisterFlags(flags *pflag.FlagSet) {
	flags.String(KeyConfig, "", "YAML config file")
	flags.String(KeySizes, "6", "comma separated board sizes")
	flags.String(KeyStrategy, bestfirst.StrategyAStar.String(), "best-first, uniform-cost, astar, greedy, breadth-first or depth-first")
	flags.String(KeyHeuristic, "zero", "zero, remaining or conflicts")
	flags.Bool(KeyPruned, false, "only place queens on unattacked squares")
	flags.Bool(KeyPenalised, false, "charge a penalty for attacked queens instead of a unit cost")
	flags.String(KeyFixed, "", "pre-placed queens, e.g. 0:3,2:4")
	flags.Bool(KeyLegacyOrdering, false, "break priority ties by comparing costs as strings")
	flags.Bool(KeyLegacyKeys, false, "derive candidate keys by joining squares with '-'")
	flags.Int(KeyMaxExpansions, 0, "stop a search after this many expansions (0 = unbounded)")
	flags.String(KeyFormat, "text", "output format: text, json or yaml")
	flags.String(KeyLogLevel, "info", "trace, debug, info, warn or error")
	flags.Int(KeyBudget, 1500, "compare: stop growing the board once this many nodes are expanded")
	flags.Int(KeyMaxSize, 12, "compare: largest board size to try")
}

// Bind wires the flag set and the environment into v.
func Bind(v *viper.Viper, flags *pflag.FlagSet) error {
	if err := v.BindPFlags(flags); err != nil {
		return fmt.Errorf("config: bind flags: %w", err)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return nil
}

// ReadFile merges the file named by the config key, if any.
func ReadFile(v *viper.Viper) error {
	path := v.GetString(KeyConfig)
	if path == "" {
		return nil
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	return nil
}

// Load validates the merged settings.
func Load(v *viper.Viper) (Config, error) {
	sizes, err := sizes(v)
	if err != nil {
		return Config{}, err
	}
	strategy, err := bestfirst.ParseStrategy(v.GetString(KeyStrategy))
	if err != nil {
		return Config{}, err
	}
	fixed, err := ParseFixed(v.GetString(KeyFixed))
	if err != nil {
		return Config{}, err
	}
	format := strings.ToLower(v.GetString(KeyFormat))
	if !lo.Contains([]string{"text", "json", "yaml"}, format) {
		return Config{}, fmt.Errorf("%w: %q", ErrBadFormat, format)
	}
	level, err := zerolog.ParseLevel(v.GetString(KeyLogLevel))
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}

	return Config{
		Sizes:          sizes,
		Strategy:       strategy,
		Heuristic:      v.GetString(KeyHeuristic),
		Pruned:         v.GetBool(KeyPruned),
		Penalised:      v.GetBool(KeyPenalised),
		Fixed:          fixed,
		LegacyOrdering: v.GetBool(KeyLegacyOrdering),
		LegacyKeys:     v.GetBool(KeyLegacyKeys),
		MaxExpansions:  v.GetInt(KeyMaxExpansions),
		Format:         format,
		LogLevel:       level,
		Budget:         v.GetInt(KeyBudget),
		MaxSize:        v.GetInt(KeyMaxSize),
	}, nil
}

// SearchOptions translates the configuration into engine options.
func (c Config) SearchOptions(logger zerolog.Logger) []bestfirst.Option {
	options := []bestfirst.Option{
		bestfirst.WithStrategy(c.Strategy),
		bestfirst.WithMaxExpansions(c.MaxExpansions),
		bestfirst.WithLogger(logger),
	}
	if c.LegacyOrdering {
		options = append(options, bestfirst.WithLegacyOrdering())
	}
	if c.LegacyKeys {
		options = append(options, bestfirst.WithKeyMode(bestfirst.KeyLegacy))
	}
	return options
}

// ParseFixed reads "row:col,row:col". An empty string means no fixed queens.
func ParseFixed(raw string) ([]queens.Square, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	var squares []queens.Square
	for _, field := range strings.Split(raw, ",") {
		rowText, colText, ok := strings.Cut(strings.TrimSpace(field), ":")
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrBadFixed, field)
		}
		row, rowErr := strconv.Atoi(rowText)
		col, colErr := strconv.Atoi(colText)
		if rowErr != nil || colErr != nil {
			return nil, fmt.Errorf("%w: %q", ErrBadFixed, field)
		}
		squares = append(squares, queens.Square{Row: row, Col: col})
	}
	return squares, nil
}

// sizes accepts "4,6,8" from flags and env, or a YAML list from the file.
func sizes(v *viper.Viper) ([]int, error) {
	var values []int
	if raw, ok := v.Get(KeySizes).(string); ok {
		for _, field := range strings.Split(raw, ",") {
			n, err := strconv.Atoi(strings.TrimSpace(field))
			if err != nil {
				return nil, fmt.Errorf("%w: %q", ErrBadSize, field)
			}
			values = append(values, n)
		}
	} else {
		values = v.GetIntSlice(KeySizes)
	}
	if len(values) == 0 || lo.SomeBy(values, func(n int) bool { return n <= 0 }) {
		return nil, ErrBadSize
	}
	return lo.Uniq(values), nil
}
