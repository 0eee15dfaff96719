package hsl

import "math"

// Op is the kind of an adjustment operator.
type Op int

const (
	// OpSet replaces the original value.
	OpSet Op = iota
	// OpAdd adds the operand to the original value.
	OpAdd
	// OpSub subtracts the operand from the original value.
	OpSub
)

// String returns the source-level symbol for the operator kind.
func (o Op) String() string {
	switch o {
	case OpSet:
		return "="
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	}
	return "?"
}

// Operator is a parsed adjustment token: an operator kind and its operand,
// e.g. "+120" or "=50".
type Operator struct {
	Op    Op
	Value float64
}

// ApplyHue applies the operator to a hue and normalizes the result
// into [0,360). Add and Subtract wrap in both directions.
func (op Operator) ApplyHue(hue float64) float64 {
	return NormalizeHue(op.apply(hue))
}

// ApplyPercent applies the operator to a saturation or lightness value
// and clamps the result into [0,100].
func (op Operator) ApplyPercent(v float64) float64 {
	return ClampPercent(op.apply(v))
}

func (op Operator) apply(original float64) float64 {
	switch op.Op {
	case OpSet:
		return op.Value
	case OpAdd:
		return original + op.Value
	case OpSub:
		return original - op.Value
	}
	return original
}

// NormalizeHue wraps a hue into [0,360). The result is never negative.
func NormalizeHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

// ClampPercent clamps a percent value into [0,100].
func ClampPercent(v float64) float64 {
	return math.Max(0, math.Min(100, v))
}

// AdjustSaturation applies the automatic perceptual saturation
// correction for the given hue and returns the corrected saturation,
// capped at 100.
//
// Greens ([90,150]°) read as oversaturated, so the factor dips linearly
// from 1.0 to 0.8 towards 120° on both sides. Blues through magentas
// ([180,300]°) get a sinusoidal boost peaking at 240°.
func AdjustSaturation(hue, saturation float64) float64 {
	factor := 1.0
	switch {
	case hue >= 90 && hue <= 150:
		factor = 0.8 + 0.2*(1-math.Abs(hue-120)/30)
	case hue >= 180 && hue <= 300:
		factor = 1 + 0.140625*math.Sin((hue-180)*math.Pi/120)
	}
	return math.Min(100, saturation*factor)
}

// AdjustLightnessForLuminance scales lightness so the color approaches
// the target relative luminance (in percent). A pure black input
// (luminance zero) is returned unchanged to avoid the log singularity.
// The result is clamped into [0,100].
func AdjustLightnessForLuminance(c HSL, target float64) float64 {
	y := c.Luminance()
	if y == 0 {
		return c.Lightness
	}
	return ClampPercent(c.Lightness * math.Log1p(target) / math.Log1p(y*100))
}
