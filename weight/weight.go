package weight

import (
	"errors"
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/spatial/r3"
)

// Sentinel errors for parameter validation.
var (
	// ErrDepthRatio indicates a depth-gating ratio that is not finite and > 0.
	ErrDepthRatio = errors.New("weight: depth ratio must be finite and > 0")
	// ErrAngleFallback indicates an angular fallback outside [0, π].
	ErrAngleFallback = errors.New("weight: angle fallback must lie in [0, π]")
	// ErrWeightRange indicates a fixed weight outside [0, 1].
	ErrWeightRange = errors.New("weight: fixed weight must lie in [0, 1]")
)

// Default parameter values.
const (
	DefaultDepthRatio         = 0.01
	DefaultAngleFallback      = 1.57
	DefaultFirstColumnWeight  = 1.0
	DefaultZeroVarianceWeight = 0.0
)

// channelMax is the full-scale value of an 8-bit color channel.
const channelMax = 255.0

// Params collects the tunables of the edge weight model.
type Params struct {
	// DepthRatio scales the depth of the first endpoint into the maximum
	// admissible depth step between two neighbors.
	DepthRatio float64
	// AngleFallback replaces w2 when no meaningful angle can be computed.
	AngleFallback float64
	// FirstColumnWeight is the fixed w of the first-column down-left edge.
	FirstColumnWeight float64
	// ZeroVarianceWeight is w for every edge of a frame whose maximum raw
	// color distance is zero.
	ZeroVarianceWeight float64
}

// DefaultParams returns Params populated with the package defaults.
func DefaultParams() Params {
	return Params{
		DepthRatio:         DefaultDepthRatio,
		AngleFallback:      DefaultAngleFallback,
		FirstColumnWeight:  DefaultFirstColumnWeight,
		ZeroVarianceWeight: DefaultZeroVarianceWeight,
	}
}

// Validate reports the first parameter outside its admissible domain.
func (p Params) Validate() error {
	if math.IsNaN(p.DepthRatio) || math.IsInf(p.DepthRatio, 0) || p.DepthRatio <= 0 {
		return fmt.Errorf("depth ratio %g: %w", p.DepthRatio, ErrDepthRatio)
	}
	if math.IsNaN(p.AngleFallback) || p.AngleFallback < 0 || p.AngleFallback > math.Pi {
		return fmt.Errorf("angle fallback %g: %w", p.AngleFallback, ErrAngleFallback)
	}
	if !unitInterval(p.FirstColumnWeight) {
		return fmt.Errorf("first column weight %g: %w", p.FirstColumnWeight, ErrWeightRange)
	}
	if !unitInterval(p.ZeroVarianceWeight) {
		return fmt.Errorf("zero variance weight %g: %w", p.ZeroVarianceWeight, ErrWeightRange)
	}

	return nil
}

// RGB converts 8-bit channels into a colorful.Color with channels in [0,1].
func RGB(r, g, b uint8) colorful.Color {
	return colorful.Color{
		R: float64(r) / channelMax,
		G: float64(g) / channelMax,
		B: float64(b) / channelMax,
	}
}

// ColorDistance returns the Euclidean distance between a and b in RGB space.
// For normalized inputs the result lies in [0, √3].
func ColorDistance(a, b colorful.Color) float64 {
	return a.DistanceRgb(b)
}

// Normalize maps a raw color distance into [0,1] by the frame maximum.
// A zero maximum yields ZeroVarianceWeight.
func (p Params) Normalize(raw, maxRaw float64) float64 {
	if maxRaw == 0 {
		return p.ZeroVarianceWeight
	}

	return raw / maxRaw
}

// Angle returns arccos(dot(a,b)) in radians. It substitutes AngleFallback and
// reports fellBack=true when either sample is invalid or the dot product is
// NaN or outside [-1,1].
func (p Params) Angle(a, b r3.Vec, validA, validB bool) (w2 float64, fellBack bool) {
	if !validA || !validB {
		return p.AngleFallback, true
	}
	dot := r3.Dot(a, b)
	if math.IsNaN(dot) || dot < -1 || dot > 1 {
		return p.AngleFallback, true
	}

	return math.Acos(dot), false
}

// Continuous reports whether two depths are finite and close enough to be
// treated as the same surface: |zP - zQ| < DepthRatio·zP.
func (p Params) Continuous(zP, zQ float64) bool {
	if !finite(zP) || !finite(zQ) {
		return false
	}

	return math.Abs(zP-zQ) < p.DepthRatio*zP
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func unitInterval(v float64) bool {
	return !math.IsNaN(v) && v >= 0 && v <= 1
}
