package vecintrin

import "github.com/cwbudde/algo-par/internal/cpu"

// DefaultWidth is the lane count of a Unit built without WithWidth.
const DefaultWidth = 4

// Config controls a Unit.
type Config struct {
	Width int
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns a four-lane configuration.
func DefaultConfig() Config {
	return Config{Width: DefaultWidth}
}

// WithWidth sets the lane count. Non-positive values are ignored.
func WithWidth(width int) Option {
	return func(cfg *Config) {
		if width > 0 {
			cfg.Width = width
		}
	}
}

// WithNativeWidth sets the lane count to the float32 lanes of the widest
// SIMD level the host supports (1 when none is available).
func WithNativeWidth() Option {
	return func(cfg *Config) {
		cfg.Width = cpu.NativeLanes()
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
