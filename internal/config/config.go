// Package config loads the settings of the parfor-bench driver.
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	// DefaultSize is the number of elements in the demonstration workload.
	DefaultSize = 10000
	// DefaultRepeats is how often each loop is timed.
	DefaultRepeats = 1
	// DefaultEngine selects the engine chosen at build time.
	DefaultEngine = "default"
	// DefaultLogLevel is the level of the console logger.
	DefaultLogLevel = "info"
	// DefaultLogFormat is the formatter of the console logger.
	DefaultLogFormat = "text"
)

// Config holds the driver settings.
type Config struct {
	Size    int    `toml:"size"`
	Repeats int    `toml:"repeats"`
	Engine  string `toml:"engine"`

	LogLevel  string `toml:"log_level"`
	LogFormat string `toml:"log_format"`

	// Path is the configuration file that was loaded, if any.
	Path string `toml:"-"`
}

// Engines lists the engine names accepted by Validate.
var Engines = []string{"default", "threads", "dataparallel", "sequential"}

// Default returns a Config holding the defaults.
func Default() *Config {
	return &Config{
		Size:      DefaultSize,
		Repeats:   DefaultRepeats,
		Engine:    DefaultEngine,
		LogLevel:  DefaultLogLevel,
		LogFormat: DefaultLogFormat,
	}
}

// Load builds the configuration from, in increasing order of precedence,
// the defaults, a TOML file, environment variables, and flags.
//
// The file is named by the -config flag, or else by PARFOR_CONFIG. A
// missing file is an error only if it was named explicitly.
func Load(fs *flag.FlagSet, args []string) (*Config, error) {
	cfg := Default()

	path := fs.String("config", "", "Path to a TOML configuration file")
	size := fs.Int("size", 0, "Number of elements in the workload")
	repeats := fs.Int("repeats", 0, "Number of timed runs per loop")
	engine := fs.String("engine", "", "Engine: "+strings.Join(Engines, ", "))
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	file := *path
	if file == "" {
		file = os.Getenv("PARFOR_CONFIG")
	}
	if file != "" {
		if err := loadFile(cfg, file); err != nil {
			return nil, err
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}

	if *size != 0 {
		cfg.Size = *size
	}
	if *repeats != 0 {
		cfg.Repeats = *repeats
	}
	if *engine != "" {
		cfg.Engine = *engine
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadFile(cfg *Config, path string) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("read config %s: unknown key %q", path, undecoded[0].String())
	}
	cfg.Path = path
	return nil
}

func applyEnv(cfg *Config) error {
	if v := os.Getenv("PARFOR_SIZE"); v != "" {
		var i int
		if _, err := fmt.Sscanf(v, "%d", &i); err != nil {
			return fmt.Errorf("PARFOR_SIZE: %w", err)
		}
		cfg.Size = i
	}
	if v := os.Getenv("PARFOR_REPEATS"); v != "" {
		var i int
		if _, err := fmt.Sscanf(v, "%d", &i); err != nil {
			return fmt.Errorf("PARFOR_REPEATS: %w", err)
		}
		cfg.Repeats = i
	}
	if v := os.Getenv("PARFOR_ENGINE"); v != "" {
		cfg.Engine = v
	}
	if v := os.Getenv("PARFOR_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("PARFOR_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
	return nil
}

// ErrInvalid is wrapped by all errors returned from Validate.
var ErrInvalid = errors.New("invalid configuration")

// Validate checks that the configuration can be used.
func (c *Config) Validate() error {
	if c.Size < 1 {
		return fmt.Errorf("%w: size must be positive, got %d", ErrInvalid, c.Size)
	}
	if c.Repeats < 1 {
		return fmt.Errorf("%w: repeats must be positive, got %d", ErrInvalid, c.Repeats)
	}
	if !slices.Contains(Engines, c.Engine) {
		return fmt.Errorf("%w: unknown engine %q", ErrInvalid, c.Engine)
	}
	switch c.LogFormat {
	case "text", "json", "logfmt":
	default:
		return fmt.Errorf("%w: unknown log format %q", ErrInvalid, c.LogFormat)
	}
	return nil
}
