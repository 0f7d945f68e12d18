package texconv

import "log/slog"

// Option configures a single FromDynamic or TryIntoDynamic call.
//
// Example:
//
//	tex := texconv.FromDynamic(img, true, texconv.WithOpaqueFloatAlpha())
//	img, srgb, ok := texconv.TryIntoDynamic(tex, texconv.WithLogger(log))
type Option func(*options)

// options holds per-call configuration.
type options struct {
	logger           *slog.Logger
	opaqueFloatAlpha bool
}

// buildOptions applies opts over the defaults.
func buildOptions(opts []Option) options {
	o := options{}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.logger == nil {
		o.logger = Logger()
	}
	return o
}

// WithLogger sends diagnostics for this call to l instead of the package
// logger. A nil l keeps the package logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithOpaqueFloatAlpha makes FromDynamic fill the alpha lane of RGB32F
// images with 1.0.
//
// Without it the alpha lane holds the little-endian word 0x0000FFFF, the
// maximum uint16 value zero-extended to 32 bits. Read as a float that is a
// denormal close to zero, not an opaque alpha.
func WithOpaqueFloatAlpha() Option {
	return func(o *options) {
		o.opaqueFloatAlpha = true
	}
}
