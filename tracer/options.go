package tracer

import "github.com/katalvlaran/lvlath/rtlog"

// config holds New's tunables, set via Option (spec.md §7.2: declared
// beside the type configured, not in a shared options package).
type config struct {
	logger rtlog.Logger
}

func defaultConfig() config {
	return config{logger: rtlog.NopLogger{}}
}

// Option configures a Tracer at construction.
type Option func(*config)

// WithLogger sets the Logger a Tracer reports diagnostics to. The
// default is rtlog.NopLogger (silent).
func WithLogger(l rtlog.Logger) Option {
	return func(c *config) { c.logger = l }
}
