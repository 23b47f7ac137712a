// Package config resolves runtime settings from the environment. Command-line
// flags may override individual fields before Validate is called.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"strconv"
	"strings"

	"github.com/caarlos0/env/v11"
)

// RandomSeed asks for a seed drawn at startup.
const RandomSeed = "random"

var (
	ErrInvalidSeed      = errors.New("invalid seed")
	ErrInvalidFrameRate = errors.New("frame rate must be positive")
)

type Config struct {
	// Seed is RandomSeed or an unsigned integer. A fixed seed replays the
	// same piece sequence.
	Seed      string     `env:"TETRIS_SEED"       envDefault:"random"`
	FrameRate int        `env:"TETRIS_FRAME_RATE" envDefault:"60"`
	LogFile   string     `env:"TETRIS_LOG_FILE"`
	LogLevel  slog.Level `env:"TETRIS_LOG_LEVEL"  envDefault:"info"`
}

// Load reads the configuration from TETRIS_* environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if _, _, err := ParseSeed(c.Seed); err != nil {
		return err
	}
	if c.FrameRate <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidFrameRate, c.FrameRate)
	}
	return nil
}

// ParseSeed reports whether s asks for a random seed and, if not, the fixed
// seed it names. An empty string is treated as RandomSeed.
func ParseSeed(s string) (seed uint64, random bool, err error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, RandomSeed) {
		return 0, true, nil
	}
	seed, err = strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("%w: %q (use %q or a non-negative integer)", ErrInvalidSeed, s, RandomSeed)
	}
	return seed, false, nil
}

// ResolveSeed returns the configured seed, drawing one if the configuration
// asks for a random seed.
func (c Config) ResolveSeed() (uint64, error) {
	seed, random, err := ParseSeed(c.Seed)
	if err != nil {
		return 0, err
	}
	if random {
		return rand.Uint64(), nil
	}
	return seed, nil
}

// NewLogger returns a JSON logger writing to c.LogFile. The terminal belongs
// to the UI, so without a log file all output is discarded. The returned
// closer must be called on shutdown.
func (c Config) NewLogger() (*slog.Logger, io.Closer, error) {
	if c.LogFile == "" {
		return slog.New(slog.DiscardHandler), nopCloser{}, nil
	}
	f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	handler := slog.NewJSONHandler(f, &slog.HandlerOptions{Level: c.LogLevel})
	return slog.New(handler), f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
