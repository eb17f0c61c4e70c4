package mh

import (
	"math"

	"github.com/gonum/mathext"
)

// UniformPrior returns the log density of a uniform distribution on
// [min, max]. incmin and incmax control whether the boundaries are
// inside the support.
func UniformPrior(min, max float64, incmin, incmax bool) func(float64) float64 {
	if max <= min {
		panic("max <= min")
	}
	return func(x float64) float64 {
		if (incmin && x < min) ||
			(!incmin && x <= min) ||
			(incmax && x > max) ||
			(!incmax && x >= max) {
			return math.Inf(-1)
		}
		return -math.Log(max - min)
	}
}

// NormalPrior returns the log density of a normal distribution.
func NormalPrior(mean, sd float64) func(float64) float64 {
	if sd <= 0 {
		panic("sd should be > 0")
	}
	c := -math.Log(sd * math.Sqrt(2*math.Pi))
	return func(x float64) float64 {
		d := (x - mean) / sd
		return c - d*d/2
	}
}

// GammaPrior returns the log density of a gamma distribution with the
// given shape and scale.
func GammaPrior(shape, scale float64, inczero bool) func(float64) float64 {
	if shape <= 0 || scale <= 0 {
		panic("shape and scale of gamma distribution must be > 0")
	}
	return func(x float64) float64 {
		if x < 0 || (x == 0 && !inczero) {
			return math.Inf(-1)
		}
		g, _ := math.Lgamma(shape)
		return (shape-1)*math.Log(x) - x/scale - shape*math.Log(scale) - g
	}
}

// TruncatedGammaPrior returns the log density of a gamma distribution
// truncated to [0, max], renormalized by the regularized incomplete
// gamma function.
func TruncatedGammaPrior(shape, scale, max float64, inczero bool) func(float64) float64 {
	if max <= 0 {
		panic("truncation point must be > 0")
	}
	gamma := GammaPrior(shape, scale, inczero)
	norm := math.Log(mathext.GammaInc(shape, max/scale))
	return func(x float64) float64 {
		if x > max {
			return math.Inf(-1)
		}
		return gamma(x) - norm
	}
}

// ExponentialPrior returns the log density of an exponential
// distribution.
func ExponentialPrior(rate float64, inczero bool) func(float64) float64 {
	if rate <= 0 {
		panic("exponential rate should be > 0")
	}
	return func(x float64) float64 {
		if x < 0 || (x == 0 && !inczero) {
			return math.Inf(-1)
		}
		return math.Log(rate) - rate*x
	}
}

// ProductPrior returns the log density of the product of two
// densities, i.e. the sum of two log densities.
func ProductPrior(f, g func(float64) float64) func(float64) float64 {
	return func(x float64) float64 {
		return f(x) + g(x)
	}
}

// ScalarPrior lifts a scalar log density to a LogPrior on scalar
// states.
func ScalarPrior(f func(float64) float64) LogPrior {
	return func(s State) float64 {
		return f(s.Float())
	}
}

// IIDPrior lifts a scalar log density to a LogPrior applied
// independently to every component of a vector state.
func IIDPrior(f func(float64) float64) LogPrior {
	return func(s State) float64 {
		r := 0.0
		for _, v := range s.Values() {
			r += f(v)
		}
		return r
	}
}
