// Package weight holds the pure numeric routines used to weight edges of a
// segmentation graph built over an organized RGB-D frame.
//
// What:
//
//   - ColorDistance: Euclidean distance between two colors in [0,1]-normalized RGB.
//   - Params.Normalize: divides a raw distance by the frame maximum, with an
//     explicit zero-variance policy instead of a division by zero.
//   - Params.Angle: angle between two unit normals, arccos(dot), with a fixed
//     fallback for invalid samples and out-of-domain dot products.
//   - Params.Continuous: depth-discontinuity gate |z_p - z_q| < ratio·z_p.
//
// Defaults:
//
//   - DepthRatio         = 0.01
//   - AngleFallback      = 1.57 rad (≈ π/2, "maximally uncertain")
//   - FirstColumnWeight  = 1.0
//   - ZeroVarianceWeight = 0.0
//
// Complexity: every routine is O(1) time and space.
//
// Errors:
//
//   - ErrDepthRatio:    DepthRatio is not a finite value > 0.
//   - ErrAngleFallback: AngleFallback is outside [0, π].
//   - ErrWeightRange:   FirstColumnWeight or ZeroVarianceWeight is outside [0, 1].
package weight
