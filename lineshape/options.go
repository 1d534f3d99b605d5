package lineshape

// DefaultIndependentVar is the domain axis name used when none is configured.
const DefaultIndependentVar = "x"

// Config holds the naming settings shared by atomic models.
type Config struct {
	Prefix         string
	IndependentVar string
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns an unprefixed configuration over "x".
func DefaultConfig() Config {
	return Config{IndependentVar: DefaultIndependentVar}
}

// WithPrefix sets the prefix prepended to parameter names.
func WithPrefix(prefix string) Option {
	return func(cfg *Config) {
		cfg.Prefix = prefix
	}
}

// WithIndependentVar renames the domain axis.
func WithIndependentVar(name string) Option {
	return func(cfg *Config) {
		if name != "" {
			cfg.IndependentVar = name
		}
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Param returns the prefixed name of a parameter.
func (c Config) Param(name string) string {
	return c.Prefix + name
}

// Params returns the prefixed names of the given parameters.
func (c Config) Params(names ...string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = c.Param(n)
	}
	return out
}
