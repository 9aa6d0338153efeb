package flexrect

import "log/slog"

// ResolveOption configures a single layout pass.
//
// Example:
//
//	list, err := flexrect.Resolve(t, root, 800, 600,
//	    flexrect.WithZRange(0, 0.5),
//	    flexrect.WithLogger(logger))
type ResolveOption func(*resolveOptions)

// resolveOptions holds optional configuration for a layout pass.
type resolveOptions struct {
	zMin, zMax float64
	logger     *slog.Logger
}

// defaultResolveOptions returns the default pass options.
func defaultResolveOptions() resolveOptions {
	return resolveOptions{
		zMin:   0,
		zMax:   1,
		logger: nil, // Falls back to Logger()
	}
}

// WithZRange sets the paint-order interval [zMin, zMax) that the root
// subdivides among the tree. The default is [0, 1).
//
// Use a sub-range to lay out several independent trees (for example a
// popup above the main window) into one display list without z collisions.
func WithZRange(zMin, zMax float64) ResolveOption {
	return func(o *resolveOptions) {
		o.zMin = zMin
		o.zMax = zMax
	}
}

// WithLogger sets the logger for one pass, overriding the package logger.
func WithLogger(l *slog.Logger) ResolveOption {
	return func(o *resolveOptions) {
		o.logger = l
	}
}

// ScreenOption configures a Screen during creation.
type ScreenOption func(*screenOptions)

// screenOptions holds optional configuration for a Screen.
type screenOptions struct {
	cacheSize int
	resolve   []ResolveOption
	logger    *slog.Logger
}

// defaultScreenOptions returns the default Screen options.
func defaultScreenOptions() screenOptions {
	return screenOptions{
		cacheSize: 8,
	}
}

// WithCacheSize sets how many display lists a Screen keeps for recently seen
// window sizes. Zero disables caching.
func WithCacheSize(n int) ScreenOption {
	return func(o *screenOptions) {
		if n < 0 {
			n = 0
		}
		o.cacheSize = n
	}
}

// WithResolveOptions sets the options a Screen passes to every Resolve call.
func WithResolveOptions(opts ...ResolveOption) ScreenOption {
	return func(o *screenOptions) {
		o.resolve = append(o.resolve, opts...)
	}
}

// WithScreenLogger sets the logger a Screen uses for relayout messages and
// passes to every Resolve call.
func WithScreenLogger(l *slog.Logger) ScreenOption {
	return func(o *screenOptions) {
		o.logger = l
	}
}
