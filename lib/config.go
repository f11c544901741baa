package lib

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Precision       int           `toml:"precision"`
	ResultPrecision int           `toml:"result_precision"`
	Color           string        `toml:"color"`
	StopAtBlank     bool          `toml:"stop_at_blank"`
	History         HistoryConfig `toml:"history"`
}

type HistoryConfig struct {
	DSN string `toml:"dsn"`
}

func DefaultConfig() Config {
	return Config{
		Precision:       DefaultPrecision,
		ResultPrecision: DefaultResultPrecision,
		Color:           "auto",
		StopAtBlank:     true,
	}
}

// LoadConfig reads a TOML file on top of the defaults. Keys missing from the
// file keep their default value.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("%s: unknown key %q", path, undecoded[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Precision < 1 || c.Precision > 17 {
		return fmt.Errorf("precision must be between 1 and 17, got %d", c.Precision)
	}
	if c.ResultPrecision == 0 || c.ResultPrecision < -1 || c.ResultPrecision > 17 {
		return fmt.Errorf("result_precision must be -1 or between 1 and 17, got %d", c.ResultPrecision)
	}
	switch strings.ToLower(c.Color) {
	case "auto", "on", "off":
	default:
		return fmt.Errorf("color must be auto, on or off, got %q", c.Color)
	}
	return nil
}

func (c Config) Calculator() Calculator {
	return Calculator{Precision: c.Precision, ResultPrecision: c.ResultPrecision}
}
