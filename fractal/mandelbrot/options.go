package mandelbrot

// Config controls a threaded render.
type Config struct {
	Workers  int
	Schedule Schedule
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns two workers on the block schedule.
func DefaultConfig() Config {
	return Config{
		Workers:  2,
		Schedule: Block,
	}
}

// WithWorkers sets the number of workers, including the calling goroutine.
// It is validated by Threaded, not here, so out-of-range counts surface as
// errors.
func WithWorkers(n int) Option {
	return func(cfg *Config) {
		cfg.Workers = n
	}
}

// WithSchedule sets the row decomposition.
func WithSchedule(s Schedule) Option {
	return func(cfg *Config) {
		cfg.Schedule = s
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
