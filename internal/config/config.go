// Package config reads the lvmatch TOML configuration file.
//
//	[matching]
//	greedy = true
//	certify_limit = 1024
//
//	[reorder]
//	min_levels = 10
//	sort = false
//
// Missing keys keep their defaults; unknown keys are an error.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/lvmatch/matching"
	"github.com/katalvlaran/lvmatch/reorder"
)

// ErrInvalid reports a configuration that fails validation.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the decoded configuration file.
type Config struct {
	Matching Matching `toml:"matching"`
	Reorder  Reorder  `toml:"reorder"`
}

// Matching holds matcher settings.
type Matching struct {
	Greedy       bool `toml:"greedy"`
	CertifyLimit int  `toml:"certify_limit"`
}

// Reorder holds level reorder settings.
type Reorder struct {
	MinLevels int  `toml:"min_levels"`
	Sort      bool `toml:"sort"`
}

// Default mirrors the library defaults.
func Default() Config {
	mo := matching.DefaultOptions()
	ro := reorder.DefaultOptions()

	return Config{
		Matching: Matching{Greedy: mo.Greedy, CertifyLimit: mo.CertifyLimit},
		Reorder:  Reorder{MinLevels: ro.MinLevels, Sort: ro.Sort},
	}
}

// Load reads and validates the file at path on top of Default.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer f.Close()

	c, err := Decode(f)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return c, nil
}

// Decode reads and validates a configuration on top of Default.
func Decode(r io.Reader) (Config, error) {
	c := Default()
	md, err := toml.NewDecoder(r).Decode(&c)
	if err != nil {
		return Config{}, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%w: unknown keys %s", ErrInvalid, strings.Join(keys, ", "))
	}

	return c, c.Validate()
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.Matching.CertifyLimit < 0 {
		return fmt.Errorf("%w: matching.certify_limit must be ≥ 0 (got %d)", ErrInvalid, c.Matching.CertifyLimit)
	}
	if c.Reorder.MinLevels < 1 {
		return fmt.Errorf("%w: reorder.min_levels must be ≥ 1 (got %d)", ErrInvalid, c.Reorder.MinLevels)
	}

	return nil
}

// MatcherOptions converts the matching section into matcher options.
func (c Config) MatcherOptions() []matching.Option {
	return []matching.Option{
		matching.WithGreedy(c.Matching.Greedy),
		matching.WithCertifyLimit(c.Matching.CertifyLimit),
	}
}

// ReorderOptions converts the reorder section into reorder options,
// including the matcher options for the per-level runs.
func (c Config) ReorderOptions() []reorder.Option {
	return []reorder.Option{
		reorder.WithMinLevels(c.Reorder.MinLevels),
		reorder.WithSort(c.Reorder.Sort),
		reorder.WithMatcherOptions(c.MatcherOptions()...),
	}
}
