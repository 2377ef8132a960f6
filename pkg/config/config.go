// Package config loads and validates run configuration for the
// girvan-newman command.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jameshskoh/girvan-newman/pkg/algorithms"
	"github.com/jameshskoh/girvan-newman/pkg/logging"
	"github.com/jameshskoh/girvan-newman/pkg/validation"
)

// Output formats accepted by the report writer
const (
	FormatText = "text"
	FormatJSON = "json"
)

const defaultLogLevel = "info"

// Config is the full run configuration
type Config struct {
	Input      string       `yaml:"input" validate:"required"`
	Format     string       `yaml:"format"`
	MetricsOut string       `yaml:"metrics_out"`
	LogLevel   string       `yaml:"log_level" validate:"loglevel"`
	Solver     SolverConfig `yaml:"solver"`
}

// SolverConfig mirrors the tunable solver options
type SolverConfig struct {
	PatienceRatio float64 `yaml:"patience_ratio"`
	MinPatience   int     `yaml:"min_patience" validate:"gte=0"`
	MaxRounds     int     `yaml:"max_rounds" validate:"gte=0"`
	TieTolerance  float64 `yaml:"tie_tolerance" validate:"gte=0,lt=1"`
	Modularity    string  `yaml:"modularity"`
	ProgressEvery int     `yaml:"progress_every" validate:"gte=0"`
}

// Default returns the configuration used when no file is given. The log
// level comes from LOG_LEVEL when set, so a file or flag can still
// override it.
func Default() *Config {
	opts := algorithms.DefaultGirvanNewmanOptions()
	return &Config{
		Format:   FormatText,
		LogLevel: validation.DefaultOr(logging.LevelFromEnv(), defaultLogLevel),
		Solver: SolverConfig{
			PatienceRatio: opts.PatienceRatio,
			MinPatience:   opts.MinPatience,
			MaxRounds:     opts.MaxRounds,
			TieTolerance:  opts.TieTolerance,
			Modularity:    opts.Modularity.String(),
			ProgressEvery: opts.ProgressEvery,
		},
	}
}

// Load reads a YAML file over the defaults. Keys absent from the file keep
// their default values.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config %s: %w", path, err)
	}
	defer f.Close()

	cfg, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML from r over the defaults. Unknown keys are rejected
// and keys set to an empty string fall back to their defaults.
func Parse(r io.Reader) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if len(bytes.TrimSpace(data)) == 0 {
		return cfg, nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	def := Default()
	cfg.Format = validation.DefaultOr(cfg.Format, def.Format)
	cfg.LogLevel = validation.DefaultOr(cfg.LogLevel, def.LogLevel)
	cfg.Solver.Modularity = validation.DefaultOr(cfg.Solver.Modularity, def.Solver.Modularity)
	return cfg, nil
}

// Validate checks field ranges, then the combinations the tags cannot
// express.
func (c *Config) Validate() error {
	if err := validation.Struct(c); err != nil {
		return err
	}

	cv := validation.NewConfigValidator("Config")
	cv.OneOf("Format", c.Format, FormatText, FormatJSON)
	cv.OneOf("Solver.Modularity", c.Solver.Modularity,
		algorithms.PairwiseModularity.String(), algorithms.NewmanModularity.String())
	cv.RangeFloat("Solver.PatienceRatio", c.Solver.PatienceRatio, 0, 1)
	cv.When(c.MetricsOut != "", func(v *validation.ConfigValidator) {
		v.Custom("MetricsOut", func() error {
			if c.MetricsOut == c.Input {
				return errors.New("must not overwrite the input file")
			}
			return nil
		})
	})
	return cv.Validate()
}

// ToOptions converts the solver section to solver options. Logger and
// Metrics are left for the caller to attach.
func (c *Config) ToOptions() (algorithms.GirvanNewmanOptions, error) {
	form, err := algorithms.ParseModularityForm(c.Solver.Modularity)
	if err != nil {
		return algorithms.GirvanNewmanOptions{}, err
	}

	opts := algorithms.DefaultGirvanNewmanOptions()
	opts.PatienceRatio = c.Solver.PatienceRatio
	opts.MinPatience = c.Solver.MinPatience
	opts.MaxRounds = c.Solver.MaxRounds
	opts.TieTolerance = c.Solver.TieTolerance
	opts.Modularity = form
	opts.ProgressEvery = c.Solver.ProgressEvery

	if err := opts.Validate(); err != nil {
		return algorithms.GirvanNewmanOptions{}, err
	}
	return opts, nil
}

// Marshal renders the configuration as YAML
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
