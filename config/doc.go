// Package config loads the tunables of the segmentation graph builders from
// an HCL file.
//
// A file holds up to two optional blocks. Every attribute is optional, and
// omitted values keep the package defaults:
//
//	grid {
//	  depth_ratio          = 0.01
//	  angle_fallback       = 1.57
//	  first_column_weight  = 1.0
//	  zero_variance_weight = 0
//	  workers              = 4
//	}
//
//	relations {
//	  repair_probability = [1.0, 0.0]
//	}
//
// Load and Parse decode and validate in one step. Values are checked with
// Validate before they reach cutgraph options, so a bad file surfaces as an
// error wrapping ErrInvalidConfig rather than as an option panic.
package config
