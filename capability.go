// capability.go -- the generator capability surface distributions dispatch against
//
// (c) 2024 the go-seqrand authors
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim is made to its
// suitability for any purpose.

package seqrand

// Generator is the minimal surface a distribution needs to sample: a
// uniform float in [0, 1). Both *Engine and a generic host generator (e.g.
// math/rand's *Rand, wrapped to expose Random) satisfy this.
type Generator interface {
	Random() float64
}

// The interfaces below are optional capabilities a Generator may expose.
// A distribution probes for these via probe() and prefers them over its own
// fallback implementation built only on Random() -- this is the Go-idiomatic
// replacement for the reference implementation's runtime method-swap: no
// mutation of the distribution happens, the probe runs fresh at every
// Sample call.

// GeometricSampler is implemented by generators that can sample a geometric
// distribution directly (the sequence Engine does, via an inverse-CDF
// method that consumes a fixed number of outer indices).
type GeometricSampler interface {
	Geometric(mean float64, includeZero bool) (int64, error)
}

// UniformProductSampler samples the product of n independent uniform(0,1)
// draws under a single outer index.
type UniformProductSampler interface {
	UniformProduct(n int) (float64, error)
}

// VonMisesSampler samples the von Mises distribution.
type VonMisesSampler interface {
	VonMisesVariate(mu, kappa float64) (float64, error)
}

// GammaSampler samples the gamma distribution.
type GammaSampler interface {
	GammaVariate(alpha, beta float64) (float64, error)
}

// GaussSampler samples a Gaussian via Box-Muller (or any other exact method).
type GaussSampler interface {
	Gauss(mu, sigma float64) (float64, error)
}

// ExpoSampler samples the exponential distribution.
type ExpoSampler interface {
	Expovariate(lambd float64) (float64, error)
}

// ParetoSampler samples the Pareto distribution.
type ParetoSampler interface {
	Paretovariate(alpha float64) (float64, error)
}

// WeibullSampler samples the Weibull distribution.
type WeibullSampler interface {
	Weibullvariate(alpha, beta float64) (float64, error)
}

// BetaSampler samples the beta distribution.
type BetaSampler interface {
	Betavariate(alpha, beta float64) (float64, error)
}

// LogNormalSampler samples the log-normal distribution.
type LogNormalSampler interface {
	Lognormvariate(mu, sigma float64) (float64, error)
}

// TriangularSampler samples the triangular distribution.
type TriangularSampler interface {
	Triangular(low, high, mode float64) (float64, error)
}

// RandRanger draws an integer in [start, stop) with the given step.
type RandRanger interface {
	RandRange(start, stop, step int64) (int64, error)
}

// Chooser draws a uniform index in [0, n).
type Chooser interface {
	Choice(n int) (int, error)
}

// ChoicesSampler draws k indices in [0, n) with replacement, optionally
// weighted.
type ChoicesSampler interface {
	Choices(n, k int, weights, cumWeights []float64) ([]int, error)
}

// probe reports whether g implements capability T, returning the asserted
// value and true if so. Distributions call this once per Sample invocation;
// there is no persistent state to keep in sync, unlike a method-pointer swap.
func probe[T any](g Generator) (T, bool) {
	v, ok := g.(T)
	return v, ok
}
