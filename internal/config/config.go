package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const envPrefix = "MATHRACER_"

type Config struct {
	Seed     int64 // 0 picks a time based seed
	Width    int
	Height   int
	Mute     bool
	Debug    bool
	LogFile  string
	MaxDelta float64 // seconds
}

func Default() Config {
	return Config{
		Width:    800,
		Height:   600,
		LogFile:  "mathracer.log",
		MaxDelta: 0.25,
	}
}

// Load reads an optional .env file (envFile may be empty to skip it), then
// MATHRACER_* variables, then command line flags. Later sources win.
func Load(envFile string, args []string) (Config, error) {
	cfg := Default()

	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return cfg, fmt.Errorf("config: load %s: %w", envFile, err)
		}
	}
	if err := cfg.fromEnv(os.Getenv); err != nil {
		return cfg, err
	}

	fset := flag.NewFlagSet("mathracer", flag.ContinueOnError)
	fset.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed (0 = time based)")
	fset.IntVar(&cfg.Width, "width", cfg.Width, "window width")
	fset.IntVar(&cfg.Height, "height", cfg.Height, "window height")
	fset.BoolVar(&cfg.Mute, "mute", cfg.Mute, "disable sound")
	fset.BoolVar(&cfg.Debug, "debug", cfg.Debug, "write a debug log")
	fset.StringVar(&cfg.LogFile, "log", cfg.LogFile, "debug log file")
	fset.Float64Var(&cfg.MaxDelta, "max-delta", cfg.MaxDelta, "largest frame step in seconds")
	if err := fset.Parse(args); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}

	return cfg, cfg.Validate()
}

func (c *Config) fromEnv(getenv func(string) string) error {
	for _, v := range []struct {
		key string
		set func(string) error
	}{
		{"SEED", func(s string) (err error) { c.Seed, err = strconv.ParseInt(s, 10, 64); return }},
		{"WIDTH", func(s string) (err error) { c.Width, err = strconv.Atoi(s); return }},
		{"HEIGHT", func(s string) (err error) { c.Height, err = strconv.Atoi(s); return }},
		{"MUTE", func(s string) (err error) { c.Mute, err = strconv.ParseBool(s); return }},
		{"DEBUG", func(s string) (err error) { c.Debug, err = strconv.ParseBool(s); return }},
		{"LOG_FILE", func(s string) error { c.LogFile = s; return nil }},
		{"MAX_DELTA", func(s string) (err error) { c.MaxDelta, err = strconv.ParseFloat(s, 64); return }},
	} {
		s := getenv(envPrefix + v.key)
		if s == "" {
			continue
		}
		if err := v.set(s); err != nil {
			return fmt.Errorf("config: %s%s: %w", envPrefix, v.key, err)
		}
	}
	return nil
}

func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("config: window size %dx%d must be positive", c.Width, c.Height)
	}
	if c.MaxDelta <= 0 {
		return fmt.Errorf("config: max delta %v must be positive", c.MaxDelta)
	}
	if c.Debug && c.LogFile == "" {
		return errors.New("config: debug logging needs a log file")
	}
	return nil
}

// SeedValue returns the configured seed, or a time based one when unset.
func (c Config) SeedValue() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}
