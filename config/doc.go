// Package config defines the pipeline's single immutable configuration
// value (spec.md §6's option table) plus the ways to build one:
// functional options (config.New) and YAML decoding (config.Load) for
// CLI/service use. There is no environment-variable loader.
//
// Config is resolved once, validated once (struct tags via
// go-playground/validator, plus the cross-field ordering check spec.md
// §7 calls out), and never mutated afterward — pipeline.Context carries
// a *Config by reference and every stage treats it as read-only,
// adapted from the teacher's builder.BuilderOption /
// newBuilderConfig pattern (builder/config.go, builder/options.go).
package config
