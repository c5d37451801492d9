package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ErrConfigurationInvalid is the sentinel for spec.md §7's
// ConfigurationInvalid error kind: a tolerance is non-positive or
// violates an ordering constraint. Wrapped with %w so callers can still
// errors.Is against it after Validate adds context.
var ErrConfigurationInvalid = errors.New("config: configuration invalid")

var validate = validator.New()

// Validate checks every struct-tag constraint (positivity, the
// BendAngleThreshold range) via go-playground/validator, then the one
// cross-field rule validator tags cannot express: SimplifyMaxHausdorff
// must be >= SimplifyTolerance (spec.md §7).
func Validate(c *Config) error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %s", ErrConfigurationInvalid, err)
	}
	if c.SimplifyMaxHausdorff < c.SimplifyTolerance {
		return fmt.Errorf("%w: simplify_max_hausdorff (%.4f) must be >= simplify_tolerance (%.4f)",
			ErrConfigurationInvalid, c.SimplifyMaxHausdorff, c.SimplifyTolerance)
	}
	return nil
}
