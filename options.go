package interlock

// Option configures an Interlock with optional collaborators.
type Option func(*interlockOptions)

// interlockOptions holds optional Interlock configuration.
type interlockOptions struct {
	logger  Logger
	metrics MetricsCollector
	hooks   *Hooks
}

// WithLogger sets a logger.
//
// Parameters:
//   - logger: Logger implementation (compatible with zap.SugaredLogger)
//
// Returns:
//   - Option: Functional option for New
//
// Example:
//
//	logger := logging.NewSlogDefault()
//	il := interlock.New[*guard.Flag, bool](guard.NewFlag(false), interlock.WithLogger(logger))
func WithLogger(logger Logger) Option {
	return func(o *interlockOptions) {
		o.logger = logger
	}
}

// WithMetrics sets a metrics collector.
//
// Parameters:
//   - metrics: MetricsCollector implementation
//
// Returns:
//   - Option: Functional option for New
//
// Example:
//
//	collector := metrics.NewPrometheus(nil, "plant")
//	il := interlock.New[*guard.Flag, bool](guard.NewFlag(false), interlock.WithMetrics(collector))
func WithMetrics(metrics MetricsCollector) Option {
	return func(o *interlockOptions) {
		o.metrics = metrics
	}
}

// WithHooks sets latch lifecycle event hooks.
//
// Parameters:
//   - hooks: Hooks structure with callback functions
//
// Returns:
//   - Option: Functional option for New
//
// Example:
//
//	hooks := &interlock.Hooks{
//	    OnStateChanged: func(from, to interlock.State) {
//	        log.Printf("latch %s -> %s", from, to)
//	    },
//	}
//	il := interlock.New[*guard.Flag, bool](guard.NewFlag(false), interlock.WithHooks(hooks))
func WithHooks(hooks *Hooks) Option {
	return func(o *interlockOptions) {
		o.hooks = hooks
	}
}
