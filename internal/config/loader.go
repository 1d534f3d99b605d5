package config

import (
	"context"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/cwbudde/algo-qens/dsp/conv"
	"github.com/cwbudde/algo-qens/internal/logger"
)

const (
	envPrefix = "LINESHAPE_"
	envConfig = "LINESHAPE_CONFIG"
)

// Load builds a Config from defaults, the YAML file at path (or
// LINESHAPE_CONFIG when path is empty) and LINESHAPE_* variables.
func Load(_ context.Context, path string) (*Config, error) {
	k := koanf.New(".")

	if path == "" {
		path = os.Getenv(envConfig)
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrLoadConfig, path, err)
		}
	}

	// LINESHAPE_DOMAIN_STEP -> domain_step; keys are flat.
	envProvider := env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: env: %w", ErrLoadConfig, err)
	}

	cfg := *New()
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks ranges and enumerations.
func (c *Config) Validate() error {
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log_format %q", ErrInvalidConfig, c.LogFormat)
	}
	if _, err := conv.ParseMethod(c.Method); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	if !(c.DomainStep > 0) {
		return fmt.Errorf("%w: domain_step must be > 0: %v", ErrInvalidConfig, c.DomainStep)
	}
	if !(c.DomainStop > c.DomainStart) {
		return fmt.Errorf("%w: domain_stop %v must exceed domain_start %v", ErrInvalidConfig, c.DomainStop, c.DomainStart)
	}
	n := math.Ceil((c.DomainStop - c.DomainStart) / c.DomainStep)
	if n < 2 || n > MaxSamples {
		return fmt.Errorf("%w: domain has %v samples, want 2..%d", ErrInvalidConfig, n, MaxSamples)
	}

	if !(c.PlotWidth > 0) || !(c.PlotHeight > 0) {
		return fmt.Errorf("%w: plot size %vx%v", ErrInvalidConfig, c.PlotWidth, c.PlotHeight)
	}
	return nil
}
