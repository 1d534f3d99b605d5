// Package config defines the settings of the lineshape tool and how they are
// loaded.
//
// Settings are layered, later sources winning:
//  1. defaults (New)
//  2. YAML file, from the path argument or LINESHAPE_CONFIG
//  3. environment variables prefixed LINESHAPE_, e.g. LINESHAPE_DOMAIN_STEP
package config

import (
	"github.com/cwbudde/algo-qens/lineshape"
)

// MaxSamples bounds the number of domain samples a configuration may request.
const MaxSamples = 1 << 20

// Config contains the tool configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// LogFormat selects text or json log records.
	LogFormat string `koanf:"log_format"`

	// DomainStart, DomainStop and DomainStep define the energy axis as
	// Arange(start, stop, step), in meV.
	DomainStart float64 `koanf:"domain_start"`
	DomainStop  float64 `koanf:"domain_stop"`
	DomainStep  float64 `koanf:"domain_step"`

	// Method selects the convolution engine: auto, direct or fft.
	Method string `koanf:"method"`

	// PlotWidth and PlotHeight size rendered plots, in inches.
	PlotWidth  float64 `koanf:"plot_width_in"`
	PlotHeight float64 `koanf:"plot_height_in"`
}

// New returns the default configuration: the energy window of the
// reference fits, -0.1 to 0.5 meV in 0.4 µeV steps.
func New() *Config {
	return &Config{
		LogLevel:    "info",
		LogFormat:   "text",
		DomainStart: -0.1,
		DomainStop:  0.5,
		DomainStep:  0.0004,
		Method:      "auto",
		PlotWidth:   6,
		PlotHeight:  4,
	}
}

// Domain returns the configured energy axis.
func (c *Config) Domain() []float64 {
	return lineshape.Arange(c.DomainStart, c.DomainStop, c.DomainStep)
}
