package config

// Config is the flat, immutable configuration object spec.md §6 lists
// exhaustively. Field names mirror the spec's option names (camel-cased)
// so YAML files can use the spec's own snake_case keys via the yaml
// struct tags, and every numeric field carries the validator tag
// needed to enforce spec.md §7's ConfigurationInvalid checks.
type Config struct {
	// SegmentizeMaxLength is the Voronoi boundary sampling step, meters.
	SegmentizeMaxLength float64 `yaml:"segmentize_max_length" validate:"gt=0"`
	// SnapTolerance is the point-coincidence threshold, meters.
	SnapTolerance float64 `yaml:"snap_tolerance" validate:"gt=0"`
	// MinPolygonArea skips polygons below this area, square meters.
	MinPolygonArea float64 `yaml:"min_polygon_area" validate:"gt=0"`
	// RatioThreshold is the RatioPruner length/radius cutoff.
	RatioThreshold float64 `yaml:"ratio_threshold" validate:"gt=0"`
	// BoundaryNearDistance is the BoundaryNearPruner band, meters.
	BoundaryNearDistance float64 `yaml:"boundary_near_distance" validate:"gt=0"`
	// MinComponentLength is the ComponentPruner cutoff, meters.
	MinComponentLength float64 `yaml:"min_component_length" validate:"gt=0"`
	// SpurAbsoluteLength is the SpurPruner cutoff, meters.
	SpurAbsoluteLength float64 `yaml:"spur_absolute_length" validate:"gt=0"`
	// MergeThreshold is the IntersectionMerger cluster edge length, meters.
	MergeThreshold float64 `yaml:"merge_threshold" validate:"gt=0"`
	// MinEdgeLength is the post-merge collapse threshold, meters.
	MinEdgeLength float64 `yaml:"min_edge_length" validate:"gt=0"`
	// SmoothingWindow is the vertex window examined at junctions.
	SmoothingWindow int `yaml:"smoothing_window" validate:"gt=0"`
	// SmoothingTolerance is the lateral deviation bound, meters.
	SmoothingTolerance float64 `yaml:"smoothing_tolerance" validate:"gt=0"`
	// ForkWalkMaxLength is the TerminalForkCleaner walk budget, meters.
	ForkWalkMaxLength float64 `yaml:"fork_walk_max_length" validate:"gt=0"`
	// TerminalNearBoundary is the terminal-branch boundary band, meters.
	TerminalNearBoundary float64 `yaml:"terminal_near_boundary" validate:"gt=0"`
	// InwardContinuation is the required other-branch length, meters.
	InwardContinuation float64 `yaml:"inward_continuation" validate:"gt=0"`
	// BendAngleThreshold is the single-bend detection angle, degrees.
	BendAngleThreshold float64 `yaml:"bend_angle_threshold" validate:"gt=0,lt=180"`
	// BendMaxLength is the single-bend max chain length, meters.
	BendMaxLength float64 `yaml:"bend_max_length" validate:"gt=0"`
	// SimplifyTolerance is the Douglas-Peucker tolerance, meters.
	SimplifyTolerance float64 `yaml:"simplify_tolerance" validate:"gt=0"`
	// SimplifyMaxHausdorff is the max shape deviation, meters. Must be
	// >= SimplifyTolerance (spec.md §7's ConfigurationInvalid rule).
	SimplifyMaxHausdorff float64 `yaml:"simplify_max_hausdorff" validate:"gt=0"`
	// TerminalGapWarn is the Validator boundary-gap warning threshold, meters.
	TerminalGapWarn float64 `yaml:"terminal_gap_warn" validate:"gt=0"`
	// DebugExportIntermediate emits snapshots at Skeleton/Planarized/
	// Cleaned/Final when true.
	DebugExportIntermediate bool `yaml:"debug_export_intermediate"`
}

// Default returns spec.md §6's default Config.
func Default() *Config {
	return &Config{
		SegmentizeMaxLength:     0.5,
		SnapTolerance:           1e-6,
		MinPolygonArea:          1.0,
		RatioThreshold:          1.2,
		BoundaryNearDistance:    0.3,
		MinComponentLength:      5.0,
		SpurAbsoluteLength:      2.0,
		MergeThreshold:          1.5,
		MinEdgeLength:           0.05,
		SmoothingWindow:         3,
		SmoothingTolerance:      0.25,
		ForkWalkMaxLength:       8.0,
		TerminalNearBoundary:    0.5,
		InwardContinuation:      3.0,
		BendAngleThreshold:      60.0,
		BendMaxLength:           4.0,
		SimplifyTolerance:       0.35,
		SimplifyMaxHausdorff:    0.70,
		TerminalGapWarn:         2.0,
		DebugExportIntermediate: false,
	}
}
