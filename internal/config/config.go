// Package config loads formulaorder settings from a TOML file.
package config

import (
	"os"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// Output formats accepted by [output] format.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Config is the full settings file.
type Config struct {
	Log    LogConfig    `toml:"log"`
	Output OutputConfig `toml:"output"`
	Parser ParserConfig `toml:"parser"`
	Lint   LintConfig   `toml:"lint"`
}

// LogConfig selects the log level: "error", "warn", "info", "debug",
// "trace", or empty for no logging.
type LogConfig struct {
	Level string `toml:"level"`
}

type OutputConfig struct {
	Format   string `toml:"format"`
	Explain  bool   `toml:"explain"`
	ExitCode bool   `toml:"exit_code"`
	Color    *bool  `toml:"color"`
}

type ParserConfig struct {
	// MaxNesting bounds parenthesis and sign nesting; 0 is unlimited.
	MaxNesting int `toml:"max_nesting"`
}

type LintConfig struct {
	CrossCheck bool `toml:"crosscheck"`
}

var logLevels = []string{"", "error", "warn", "info", "debug", "trace"}

// Default returns the settings used when no file is given.
func Default() *Config {
	return &Config{Output: OutputConfig{Format: FormatText}}
}

// Load reads path over the defaults. Unknown keys are an error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading config")
	}
	cfg, err := Parse(string(data))
	if err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// Parse decodes TOML text over the defaults.
func Parse(text string) (*Config, error) {
	cfg := Default()
	md, err := toml.Decode(text, cfg)
	if err != nil {
		return nil, errors.Wrap(err, "parsing")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks enumerated values and limits.
func (c *Config) Validate() error {
	c.Log.Level = strings.ToLower(c.Log.Level)
	if !slices.Contains(logLevels, c.Log.Level) {
		return errors.Errorf("log.level: unknown level %q", c.Log.Level)
	}
	switch c.Output.Format {
	case FormatText, FormatJSON, FormatYAML:
	default:
		return errors.Errorf("output.format: unknown format %q", c.Output.Format)
	}
	if c.Parser.MaxNesting < 0 {
		return errors.Errorf("parser.max_nesting: must not be negative, got %d", c.Parser.MaxNesting)
	}
	return nil
}
