package shiny

import "log/slog"

// BuilderOption configures a PathBuilder during creation.
//
// Example:
//
//	b := shiny.NewPathBuilder(
//	    shiny.WithCapacity(64),
//	    shiny.WithLogger(slog.Default()),
//	)
type BuilderOption func(*builderOptions)

// builderOptions holds optional configuration for PathBuilder creation.
type builderOptions struct {
	capacity int
	logger   *slog.Logger
}

// defaultBuilderOptions returns the default builder options.
func defaultBuilderOptions() builderOptions {
	return builderOptions{
		capacity: 8,
		logger:   nil, // Falls back to Logger() at call time
	}
}

// WithCapacity preallocates room for n segments per subpath.
// Values below 1 are ignored.
func WithCapacity(n int) BuilderOption {
	return func(o *builderOptions) {
		if n > 0 {
			o.capacity = n
		}
	}
}

// WithLogger sets a logger for this builder only, overriding the
// package-level logger from SetLogger.
func WithLogger(l *slog.Logger) BuilderOption {
	return func(o *builderOptions) {
		o.logger = l
	}
}
