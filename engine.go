// engine.go -- the repeatable, seekable sequence engine
//
// (c) 2024 the go-seqrand authors
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim is made to its
// suitability for any purpose.

// Package seqrand implements a repeatable, seekable pseudo-random sequence:
// the value at any index is a pure function of (seed, index). On top of the
// sequence engine, it provides a catalog of named probability distributions
// that can sample from any compatible generator, serialize to and from a
// self-describing representation, and compare structurally.
package seqrand

import (
	"math"
	"math/big"
	"math/bits"
)

// Engine is a repeatable, seekable pseudo-random sequence generator. It is
// an owned, mutable resource: sharing one across goroutines needs external
// synchronization (see spec.md §5). The zero value is not usable; construct
// with New.
type Engine struct {
	seed     Seed
	seedHash uint64
	index    uint64

	cascade      []cascadeFrame
	cascadeOuter uint64
}

// New constructs an Engine seeded with seed, with index 0, not cascading.
func New(seed Seed) *Engine {
	e := &Engine{}
	e.Reseed(seed)
	return e
}

// Random returns a uniform float64 in [0, 1), taken from the top 53 bits of
// one block. Satisfies the Generator interface.
func (e *Engine) Random() float64 {
	blk := e.drawBlock()
	top53 := blk >> 11
	return float64(top53) / float64(uint64(1)<<53)
}

// NextBlock returns H(seedHash, index), then advances index by one if the
// engine is not cascading (otherwise it advances the private cascade
// sub-index and leaves the outer index untouched).
func (e *Engine) NextBlock() uint64 {
	return e.drawBlock()
}

// drawBlock is the single point where every block is actually produced.
func (e *Engine) drawBlock() uint64 {
	if e.InCascade() {
		return e.cascadeNextBlock()
	}
	blk := blockHash(e.seedHash, e.index)
	e.index++
	return blk
}

// Reseed replaces the seed and resets index to 0. Forbidden during a
// cascade.
func (e *Engine) Reseed(seed Seed) error {
	if err := e.requireFlat("Reseed"); err != nil {
		return err
	}
	e.seed = seed
	e.seedHash = seed.normalize()
	e.index = 0
	return nil
}

// Reset sets index to 0 without changing the seed. Forbidden during a
// cascade.
func (e *Engine) Reset() error {
	if err := e.requireFlat("Reset"); err != nil {
		return err
	}
	e.index = 0
	return nil
}

// Index returns the current index. Forbidden during a cascade.
func (e *Engine) Index() (uint64, error) {
	if err := e.requireFlat("Index"); err != nil {
		return 0, err
	}
	return e.index, nil
}

// SetIndex sets the current index to i, accepting any 64-bit value
// (including a rewind to a value less than the current index). Forbidden
// during a cascade. i is unsigned so the full 64-bit domain is always
// representable; callers storing indices in a signed field must check
// themselves (see SPEC_FULL.md §5).
func (e *Engine) SetIndex(i uint64) error {
	if err := e.requireFlat("SetIndex"); err != nil {
		return err
	}
	e.index = i
	return nil
}

// Snapshot is a serializable record of (seed, seedHash, index). cascading is
// never captured; taking a snapshot inside a cascade is forbidden.
type Snapshot struct {
	Seed     Seed
	SeedHash uint64
	Index    uint64
}

// Snapshot captures the engine's current (seed, seedHash, index). Forbidden
// during a cascade.
func (e *Engine) Snapshot() (Snapshot, error) {
	if err := e.requireFlat("Snapshot"); err != nil {
		return Snapshot{}, err
	}
	return Snapshot{Seed: e.seed, SeedHash: e.seedHash, Index: e.index}, nil
}

// Restore overwrites seed, seedHash, and index from s. Forbidden during a
// cascade.
func (e *Engine) Restore(s Snapshot) error {
	if err := e.requireFlat("Restore"); err != nil {
		return err
	}
	e.seed = s.Seed
	e.seedHash = s.SeedHash
	e.index = s.Index
	return nil
}

// ToDict renders the snapshot's dictionary form: seed in its original
// shape, seedHash and index as unsigned 64-bit integers.
func (s Snapshot) ToDict() map[string]interface{} {
	return map[string]interface{}{
		"seed":      s.Seed.Value(),
		"seed_hash": s.SeedHash,
		"index":     s.Index,
	}
}

// SnapshotFromDict parses the dictionary form produced by ToDict.
func SnapshotFromDict(d map[string]interface{}) (Snapshot, error) {
	seedHash, err := toUint64(d["seed_hash"])
	if err != nil {
		return Snapshot{}, typeRejected("SnapshotFromDict", "seed_hash: %s", err)
	}
	index, err := toUint64(d["index"])
	if err != nil {
		return Snapshot{}, typeRejected("SnapshotFromDict", "index: %s", err)
	}

	var seed Seed
	switch v := d["seed"].(type) {
	case int64:
		seed = IntSeed(v)
	case int:
		seed = IntSeed(int64(v))
	case []byte:
		seed = BytesSeed(v)
	case string:
		seed = TextSeed(v)
	default:
		return Snapshot{}, typeRejected("SnapshotFromDict", "seed: unsupported type %T", v)
	}

	return Snapshot{Seed: seed, SeedHash: seedHash, Index: index}, nil
}

// RandBytes produces n bytes by concatenating successive blocks
// little-endian; the final block is truncated to fit.
func (e *Engine) RandBytes(n int) []byte {
	out := make([]byte, n)
	var i int
	for i+8 <= n {
		blk := e.drawBlock()
		putUint64LE(out[i:i+8], blk)
		i += 8
	}
	if i < n {
		blk := e.drawBlock()
		var tmp [8]byte
		putUint64LE(tmp[:], blk)
		copy(out[i:], tmp[:n-i])
	}
	return out
}

func putUint64LE(b []byte, v uint64) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
	b[4] = byte(v >> 32)
	b[5] = byte(v >> 40)
	b[6] = byte(v >> 48)
	b[7] = byte(v >> 56)
}

// GetRandBits returns a k-bit unsigned integer.
//
// k <= 0 returns 0 and still consumes one block (index += 1).
// k <= 64 consumes one block, masked to the low k bits (index += 1).
// k > 64 consumes ceil(k/64) blocks under an implicit internal cascade, so
// the outer index still only advances by one; the top partial block is
// masked.
func (e *Engine) GetRandBits(k int) *big.Int {
	if k <= 64 {
		return new(big.Int).SetUint64(e.rawBits(k))
	}

	nblocks := (k + 63) / 64
	result := new(big.Int)
	draw := func() {
		for i := 0; i < nblocks; i++ {
			rem := k - i*64
			bitsHere := 64
			if rem < 64 {
				bitsHere = rem
			}
			blk := e.rawBits(bitsHere)
			part := new(big.Int).SetUint64(blk)
			part.Lsh(part, uint(i*64))
			result.Or(result, part)
		}
	}
	if e.InCascade() {
		draw()
	} else {
		e.withCascade(draw)
	}
	return result
}

// RandRange returns a uniform integer in [start, stop) with the given step
// (step may be negative). An empty range (nothing to draw) returns
// ErrIndexRejected, matching Choice's treatment of an empty sequence. step
// == 0 is ErrValueRejected.
func (e *Engine) RandRange(start, stop, step int64) (int64, error) {
	if step == 0 {
		return 0, valueRejected("RandRange", "step must not be 0")
	}

	var width int64
	if step > 0 {
		if start >= stop {
			return 0, indexRejected("RandRange", "empty range [%d, %d) step %d", start, stop, step)
		}
		width = (stop - start + step - 1) / step
	} else {
		if start <= stop {
			return 0, indexRejected("RandRange", "empty range [%d, %d) step %d", start, stop, step)
		}
		width = (start - stop + (-step) - 1) / (-step)
	}

	off, err := e.randBelow(uint64(width))
	if err != nil {
		return 0, err
	}
	return start + step*int64(off), nil
}

// RandInt returns a uniform integer in [a, b], inclusive. Equivalent to
// RandRange(a, b+1, 1).
func (e *Engine) RandInt(a, b int64) (int64, error) {
	return e.RandRange(a, b+1, 1)
}

// Choice returns a uniform index in [0, n). Rejects n <= 0 with
// ErrIndexRejected.
func (e *Engine) Choice(n int) (int, error) {
	if n <= 0 {
		return 0, indexRejected("Choice", "empty sequence")
	}
	off, err := e.randBelow(uint64(n))
	if err != nil {
		return 0, err
	}
	return int(off), nil
}

// Shuffle permutes data in place using Fisher-Yates, consuming exactly one
// outer index regardless of len(data) (the whole shuffle runs under one
// cascade).
func (e *Engine) Shuffle(n int, swap func(i, j int)) {
	e.withCascade(func() {
		for i := n - 1; i > 0; i-- {
			j := int(mustRandBelowCascaded(e, uint64(i+1)))
			swap(i, j)
		}
	})
}

// mustRandBelowCascaded draws a value in [0, n) assuming the engine is
// already inside a cascade (used by Shuffle/Sample so the whole operation
// only advances the outer index once).
func mustRandBelowCascaded(e *Engine, n uint64) uint64 {
	if n == 0 {
		return 0
	}
	if n == 1 {
		e.rawBits(0)
		return 0
	}
	k := bits.Len64(n - 1)
	for {
		v := e.rawBits(k)
		if v < n {
			return v
		}
	}
}

// Sample draws k items from population without replacement, in deterministic
// order, consuming exactly one outer index for the whole operation. Rejects
// k > len(population), including an empty population with k > 0, with
// ErrIndexRejected (mirroring Choice's treatment of "nothing to draw from").
func (e *Engine) Sample(populationLen, k int) ([]int, error) {
	if k == 0 {
		return []int{}, nil
	}
	if populationLen == 0 {
		return nil, indexRejected("Sample", "empty population")
	}
	if k > populationLen {
		return nil, indexRejected("Sample", "sample larger than population: k=%d len=%d", k, populationLen)
	}

	result := make([]int, k)
	e.withCascade(func() {
		pool := make([]int, populationLen)
		for i := range pool {
			pool[i] = i
		}
		n := populationLen
		for i := 0; i < k; i++ {
			j := int(mustRandBelowCascaded(e, uint64(n)))
			result[i] = pool[j]
			n--
			pool[j] = pool[n]
		}
	})
	return result, nil
}

// Choices draws k indices in [0, n) with replacement. weights and
// cum_weights are mutually exclusive (ErrArgConflict if both supplied); a
// length mismatch against n is ErrValueRejected; absent or all-zero weights
// sample uniformly.
func (e *Engine) Choices(n, k int, weights, cumWeights []float64) ([]int, error) {
	if weights != nil && cumWeights != nil {
		return nil, argConflict("Choices", "weights and cum_weights are mutually exclusive")
	}
	if n == 0 {
		if k == 0 {
			return []int{}, nil
		}
		return nil, indexRejected("Choices", "empty population")
	}
	if k == 0 {
		return []int{}, nil
	}

	cw := cumWeights
	if cw == nil && weights != nil {
		if len(weights) != n {
			return nil, valueRejected("Choices", "weights length %d != population length %d", len(weights), n)
		}
		cw = make([]float64, n)
		var total float64
		for i, w := range weights {
			total += w
			cw[i] = total
		}
	}
	if cw != nil && len(cw) != n {
		return nil, valueRejected("Choices", "cum_weights length %d != population length %d", len(cw), n)
	}
	if cw != nil {
		allZero := true
		for _, c := range cw {
			if c != 0 {
				allZero = false
				break
			}
		}
		if allZero {
			cw = nil
		}
	}

	result := make([]int, k)
	if cw == nil {
		e.withCascade(func() {
			for i := 0; i < k; i++ {
				result[i] = int(mustRandBelowCascaded(e, uint64(n)))
			}
		})
		return result, nil
	}

	total := cw[len(cw)-1]
	if total <= 0 {
		return nil, valueRejected("Choices", "cumulative weight total must be positive, got %v", total)
	}
	e.withCascade(func() {
		for i := 0; i < k; i++ {
			u := e.Random() * total
			result[i] = sampleDiscreteRoulette(u, cw)
		}
	})
	return result, nil
}

// -----------------------------------------------------------------------
// Continuous distributions
// -----------------------------------------------------------------------

// Uniform returns a uniform float64 in [a, b).
func (e *Engine) Uniform(a, b float64) (float64, error) {
	if a > b {
		return 0, valueRejected("Uniform", "min_val %v > max_val %v", a, b)
	}
	return a + (b-a)*e.Random(), nil
}

// Triangular returns a triangularly distributed float64 in [low, high] with
// the given mode. If mode is omitted by the caller (pass (low+high)/2),
// this reduces to the symmetric case.
func (e *Engine) Triangular(low, high, mode float64) (float64, error) {
	if low > high {
		return 0, valueRejected("Triangular", "low %v > high %v", low, high)
	}
	if mode < low || mode > high {
		return 0, valueRejected("Triangular", "mode %v outside [%v, %v]", mode, low, high)
	}
	if low == high {
		return low, nil
	}

	u := e.Random()
	c := (mode - low) / (high - low)
	if u <= c {
		return low + math.Sqrt(u*(high-low)*(mode-low)), nil
	}
	return high - math.Sqrt((1-u)*(high-low)*(high-mode)), nil
}

// Gauss returns a normally distributed float64 with the given mean and
// standard deviation, using the Box-Muller transform over two uniforms.
// Only the cosine branch is returned; the paired sine value is not cached
// across calls, keeping Gauss stateless-by-index. Consumes exactly two
// outer indices when flat; inside an already open cascade both uniforms
// come from that cascade's sub-stream and the outer index does not move.
func (e *Engine) Gauss(mu, sigma float64) (float64, error) {
	if sigma <= 0 {
		return 0, valueRejected("Gauss", "sigma must be > 0, got %v", sigma)
	}

	u1 := e.Random()
	u2 := e.Random()
	if u1 <= 1e-300 {
		u1 = 1e-300
	}
	r := math.Sqrt(-2.0 * math.Log(u1))
	z := r * math.Cos(2*math.Pi*u2)
	return mu + z*sigma, nil
}

// Lognormvariate returns a log-normally distributed float64: exp(Gauss(mu, sigma)).
func (e *Engine) Lognormvariate(mu, sigma float64) (float64, error) {
	if sigma <= 0 {
		return 0, valueRejected("Lognormvariate", "sigma must be > 0, got %v", sigma)
	}
	g, err := e.Gauss(mu, sigma)
	if err != nil {
		return 0, err
	}
	return math.Exp(g), nil
}

// Expovariate returns an exponentially distributed float64 with rate lambd.
func (e *Engine) Expovariate(lambd float64) (float64, error) {
	if lambd == 0 {
		return 0, valueRejected("Expovariate", "lambd must not be 0")
	}
	u := e.Random()
	for u <= 0 {
		u = e.Random()
	}
	return -math.Log(u) / lambd, nil
}

// VonMisesVariate returns a float64 in [0, 2*pi) drawn from the von Mises
// distribution (Best/Fisher method). When kappa == 0 this degenerates to a
// uniform distribution on [0, 2*pi). The result is always reduced modulo
// 2*pi. Runs under an internal cascade (rejection sampling).
func (e *Engine) VonMisesVariate(mu, kappa float64) (float64, error) {
	if kappa < 0 {
		return 0, valueRejected("VonMisesVariate", "kappa must be >= 0, got %v", kappa)
	}
	if kappa < 1e-9 {
		return 2 * math.Pi * e.Random(), nil
	}

	var result float64
	e.withCascade(func() {
		s := 0.5 / kappa
		r := s + math.Sqrt(1+s*s)

		for {
			u1 := e.Random()
			z := math.Cos(math.Pi * u1)

			d := z / (r + z)
			u2 := e.Random()
			if u2 < 1.0-d*d || u2 <= (1.0-d)*math.Exp(d) {
				q := 1.0 / r
				f := (q + z) / (1.0 + q*z)
				u3 := e.Random()
				var theta float64
				if u3 > 0.5 {
					theta = math.Mod(mu+math.Acos(f), 2*math.Pi)
				} else {
					theta = math.Mod(mu-math.Acos(f), 2*math.Pi)
				}
				if theta < 0 {
					theta += 2 * math.Pi
				}
				result = theta
				return
			}
		}
	})
	return result, nil
}

// GammaVariate returns a gamma-distributed float64 with shape alpha and
// scale beta. Dispatches to Marsaglia-Tsang for alpha >= 1, an
// Ahrens-Dieter style boost for alpha < 1, and an exponential shortcut for
// alpha == 1. Rejects non-positive parameters. Runs under an internal
// cascade (rejection sampling).
func (e *Engine) GammaVariate(alpha, beta float64) (float64, error) {
	if alpha <= 0 || beta <= 0 {
		return 0, valueRejected("GammaVariate", "alpha and beta must be > 0, got alpha=%v beta=%v", alpha, beta)
	}

	if alpha == 1.0 {
		u, err := e.Expovariate(1.0)
		if err != nil {
			return 0, err
		}
		return u * beta, nil
	}

	var result float64
	e.withCascade(func() {
		if alpha > 1.0 {
			d := alpha - 1.0/3.0
			c := 1.0 / math.Sqrt(9.0*d)
			for {
				var x, v float64
				for {
					x, _ = e.Gauss(0, 1)
					v = 1.0 + c*x
					if v > 0 {
						break
					}
				}
				v = v * v * v
				u := e.Random()
				if u < 1.0-0.0331*(x*x)*(x*x) {
					result = d * v * beta
					return
				}
				if math.Log(u) < 0.5*x*x+d*(1.0-v+math.Log(v)) {
					result = d * v * beta
					return
				}
			}
		}

		// 0 < alpha < 1: Ahrens-Dieter GS algorithm.
		e1 := math.E
		b := (e1 + alpha) / e1
		for {
			p := b * e.Random()
			if p <= 1.0 {
				x := math.Pow(p, 1.0/alpha)
				u := e.Random()
				if u <= math.Exp(-x) {
					result = x * beta
					return
				}
			} else {
				x := -math.Log((b - p) / alpha)
				u := e.Random()
				if u <= math.Pow(x, alpha-1.0) {
					result = x * beta
					return
				}
			}
		}
	})
	return result, nil
}

// Betavariate returns a beta-distributed float64, derived from two gamma
// draws: X/(X+Y) where X ~ Gamma(alpha,1), Y ~ Gamma(beta,1).
func (e *Engine) Betavariate(alpha, beta float64) (float64, error) {
	if alpha <= 0 || beta <= 0 {
		return 0, valueRejected("Betavariate", "alpha and beta must be > 0, got alpha=%v beta=%v", alpha, beta)
	}
	x, err := e.GammaVariate(alpha, 1.0)
	if err != nil {
		return 0, err
	}
	y, err := e.GammaVariate(beta, 1.0)
	if err != nil {
		return 0, err
	}
	if x == 0 && y == 0 {
		return 0, nil
	}
	return x / (x + y), nil
}

// Paretovariate returns a Pareto-distributed float64 with shape alpha.
func (e *Engine) Paretovariate(alpha float64) (float64, error) {
	if alpha <= 0 {
		return 0, valueRejected("Paretovariate", "alpha must be > 0, got %v", alpha)
	}
	u := e.Random()
	for u <= 0 {
		u = e.Random()
	}
	return math.Pow(1-u, -1.0/alpha), nil
}

// Weibullvariate returns a Weibull-distributed float64 with scale alpha and
// shape beta.
func (e *Engine) Weibullvariate(alpha, beta float64) (float64, error) {
	if beta <= 0 {
		return 0, valueRejected("Weibullvariate", "beta must be > 0, got %v", beta)
	}
	u := e.Random()
	for u <= 0 {
		u = e.Random()
	}
	return alpha * math.Pow(-math.Log(u), 1.0/beta), nil
}

// -----------------------------------------------------------------------
// Discrete distributions
// -----------------------------------------------------------------------

// Geometric returns the number of trials to the first success (k >= 1 when
// includeZero is false, k >= 0 when true), via inverse-CDF.
//
// includeZero == false: returns ceil(ln(1-u)/ln(1-1/mean)), mean must be > 1.
// includeZero == true: returns floor(ln(1-u)/ln(1-1/(mean+1))), mean must be > 0.
func (e *Engine) Geometric(mean float64, includeZero bool) (int64, error) {
	if includeZero {
		if mean <= 0 {
			return 0, valueRejected("Geometric", "mean must be > 0 when includeZero, got %v", mean)
		}
	} else {
		if mean <= 1 {
			return 0, valueRejected("Geometric", "mean must be > 1 when !includeZero, got %v", mean)
		}
	}

	u := e.Random()
	for u >= 1 {
		u = e.Random()
	}

	if includeZero {
		p := 1.0 / (mean + 1.0)
		return int64(math.Floor(math.Log(1-u) / math.Log(1-p))), nil
	}
	p := 1.0 / mean
	return int64(math.Ceil(math.Log(1-u) / math.Log(1-p))), nil
}

// FiniteGeometric returns a geometric-like sample truncated to {0, ..., n-1},
// decaying with rate s, via inverse-CDF over the truncated distribution.
func (e *Engine) FiniteGeometric(s float64, n int) (int, error) {
	if n < 1 {
		return 0, valueRejected("FiniteGeometric", "n must be >= 1, got %d", n)
	}
	cw, total := finiteGeometricTable(s, n)
	u := e.Random() * total
	return sampleDiscreteRoulette(u, cw), nil
}

// ZipfMandelbrot returns a sample from {0, ..., n-1} drawn from the
// Zipf-Mandelbrot distribution with exponent s and offset q.
func (e *Engine) ZipfMandelbrot(s, q float64, n int) (int, error) {
	if n < 1 {
		return 0, valueRejected("ZipfMandelbrot", "n must be >= 1, got %d", n)
	}
	cw, total := zipfMandelbrotTable(s, q, n)
	u := e.Random() * total
	return sampleDiscreteRoulette(u, cw), nil
}

// UniformProduct returns the product of n independent uniform(0,1) samples
// (1.0 for n == 0), drawn under an internal cascade so the outer index only
// advances by one.
func (e *Engine) UniformProduct(n int) (float64, error) {
	if n < 0 {
		return 0, valueRejected("UniformProduct", "n must be >= 0, got %d", n)
	}
	result := 1.0
	e.withCascade(func() {
		for i := 0; i < n; i++ {
			result *= e.Random()
		}
	})
	return result, nil
}
