// Copyright 2025 The go-pixelsort Authors. SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/ajroetker/go-pixelsort/internal/oops"
	"github.com/ajroetker/go-pixelsort/pixelsort"
	"github.com/ajroetker/go-pixelsort/pixelsort/key"
	"github.com/ajroetker/go-pixelsort/pixelsort/pixel"
)

const (
	EnvLogLevel = "PIXELSORT_LOG_LEVEL"
	EnvWorkers  = "PIXELSORT_WORKERS"
)

var ErrInvalidConfig = errors.New("invalid configuration")

type Config struct {
	ChunkSize int
	Key       string
	Order     string
	Workers   int // 0 means GOMAXPROCS
	Format    string
	LogLevel  string
}

func Default() Config {
	return Config{
		ChunkSize: pixelsort.DefaultChunkSize,
		Key:       key.Default.String(),
		Order:     pixelsort.Ascending.String(),
		Workers:   0,
		LogLevel:  zerolog.InfoLevel.String(),
	}
}

// ApplyEnv overrides the log level and worker count from the environment.
// Unset or empty variables leave the current values alone.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	if v, ok := lookup(EnvLogLevel); ok && strings.TrimSpace(v) != "" {
		c.LogLevel = strings.TrimSpace(v)
	}
	if v, ok := lookup(EnvWorkers); ok && strings.TrimSpace(v) != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return oops.New(ErrInvalidConfig, "%s=%q is not an integer", EnvWorkers, v)
		}
		c.Workers = n
	}
	return nil
}

func (c Config) Validate() error {
	if c.ChunkSize <= 0 {
		return oops.New(pixelsort.ErrInvalidChunkSize, "chunk size %d", c.ChunkSize)
	}
	if c.Workers < 0 {
		return oops.New(ErrInvalidConfig, "workers %d", c.Workers)
	}
	if _, err := key.Lookup(c.Key); err != nil {
		return err
	}
	if _, err := pixelsort.ParseOrder(c.Order); err != nil {
		return err
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

func (c Config) Level() (zerolog.Level, error) {
	if c.LogLevel == "" {
		return zerolog.InfoLevel, nil
	}
	level, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil {
		return zerolog.NoLevel, oops.New(ErrInvalidConfig, "log level %q", c.LogLevel)
	}
	return level, nil
}

// SortOptions builds engine options for a buffer of the given layout.
func (c Config) SortOptions(layout pixel.Layout) (pixelsort.Options, error) {
	criterion, err := key.Lookup(c.Key)
	if err != nil {
		return pixelsort.Options{}, err
	}
	order, err := pixelsort.ParseOrder(c.Order)
	if err != nil {
		return pixelsort.Options{}, err
	}
	return pixelsort.Options{
		ChunkSize: c.ChunkSize,
		Key:       criterion.Func(layout),
		Order:     order,
	}, nil
}
