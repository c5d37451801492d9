package config

// Option mutates a Config under construction, adapted from the
// teacher's builder.BuilderOption (builder/options.go): each With*
// function is a narrow, named knob rather than exposing the struct
// directly, so call sites read as an intent list.
type Option func(*Config)

// New resolves a Config by applying opts over Default(), then
// validating the result (see Validate). It is the constructor every
// caller should use in place of building a Config struct literal.
func New(opts ...Option) (*Config, error) {
	cfg := Default()
	for _, opt := range opts {
		opt(cfg)
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// WithSegmentizeMaxLength overrides SegmentizeMaxLength.
func WithSegmentizeMaxLength(v float64) Option {
	return func(c *Config) { c.SegmentizeMaxLength = v }
}

// WithSnapTolerance overrides SnapTolerance.
func WithSnapTolerance(v float64) Option {
	return func(c *Config) { c.SnapTolerance = v }
}

// WithMinPolygonArea overrides MinPolygonArea.
func WithMinPolygonArea(v float64) Option {
	return func(c *Config) { c.MinPolygonArea = v }
}

// WithRatioThreshold overrides RatioThreshold.
func WithRatioThreshold(v float64) Option {
	return func(c *Config) { c.RatioThreshold = v }
}

// WithBoundaryNearDistance overrides BoundaryNearDistance.
func WithBoundaryNearDistance(v float64) Option {
	return func(c *Config) { c.BoundaryNearDistance = v }
}

// WithMinComponentLength overrides MinComponentLength.
func WithMinComponentLength(v float64) Option {
	return func(c *Config) { c.MinComponentLength = v }
}

// WithSpurAbsoluteLength overrides SpurAbsoluteLength.
func WithSpurAbsoluteLength(v float64) Option {
	return func(c *Config) { c.SpurAbsoluteLength = v }
}

// WithMergeThreshold overrides MergeThreshold.
func WithMergeThreshold(v float64) Option {
	return func(c *Config) { c.MergeThreshold = v }
}

// WithMinEdgeLength overrides MinEdgeLength.
func WithMinEdgeLength(v float64) Option {
	return func(c *Config) { c.MinEdgeLength = v }
}

// WithSmoothingWindow overrides SmoothingWindow.
func WithSmoothingWindow(v int) Option {
	return func(c *Config) { c.SmoothingWindow = v }
}

// WithSmoothingTolerance overrides SmoothingTolerance.
func WithSmoothingTolerance(v float64) Option {
	return func(c *Config) { c.SmoothingTolerance = v }
}

// WithForkWalkMaxLength overrides ForkWalkMaxLength.
func WithForkWalkMaxLength(v float64) Option {
	return func(c *Config) { c.ForkWalkMaxLength = v }
}

// WithTerminalNearBoundary overrides TerminalNearBoundary.
func WithTerminalNearBoundary(v float64) Option {
	return func(c *Config) { c.TerminalNearBoundary = v }
}

// WithInwardContinuation overrides InwardContinuation.
func WithInwardContinuation(v float64) Option {
	return func(c *Config) { c.InwardContinuation = v }
}

// WithBendAngleThreshold overrides BendAngleThreshold.
func WithBendAngleThreshold(v float64) Option {
	return func(c *Config) { c.BendAngleThreshold = v }
}

// WithBendMaxLength overrides BendMaxLength.
func WithBendMaxLength(v float64) Option {
	return func(c *Config) { c.BendMaxLength = v }
}

// WithSimplifyTolerance overrides SimplifyTolerance.
func WithSimplifyTolerance(v float64) Option {
	return func(c *Config) { c.SimplifyTolerance = v }
}

// WithSimplifyMaxHausdorff overrides SimplifyMaxHausdorff.
func WithSimplifyMaxHausdorff(v float64) Option {
	return func(c *Config) { c.SimplifyMaxHausdorff = v }
}

// WithTerminalGapWarn overrides TerminalGapWarn.
func WithTerminalGapWarn(v float64) Option {
	return func(c *Config) { c.TerminalGapWarn = v }
}

// WithDebugExportIntermediate overrides DebugExportIntermediate.
func WithDebugExportIntermediate(v bool) Option {
	return func(c *Config) { c.DebugExportIntermediate = v }
}
