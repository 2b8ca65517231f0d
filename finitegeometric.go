// finitegeometric.go -- the geometric distribution truncated to {0, ..., n-1}
//
// (c) 2024 the go-seqrand authors
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim is made to its
// suitability for any purpose.

package seqrand

// FiniteGeometric samples from {0, ..., N-1} with decay rate S. Not part of
// the optional generator capability set (spec.md §4.4's capability list
// omits it): every generator, including the engine, samples via the same
// cached cumulative-weight table and roulette draw.
type FiniteGeometric struct {
	S float64
	N int64
}

// NewFiniteGeometric validates N >= 1.
func NewFiniteGeometric(s float64, n int64) (FiniteGeometric, error) {
	if n < 1 {
		return FiniteGeometric{}, valueRejected("NewFiniteGeometric", "n must be >= 1, got %d", n)
	}
	return FiniteGeometric{S: s, N: n}, nil
}

func init() {
	registerDistribution("finitegeometric",
		func(params []interface{}) (Distribution, error) {
			if len(params) != 2 {
				return nil, valueRejected("finitegeometric.FromList", "expected 2 parameters, got %d", len(params))
			}
			s, err := toFloat64(params[0])
			if err != nil {
				return nil, typeRejected("finitegeometric.FromList", "s: %s", err)
			}
			n, err := toInt64(params[1])
			if err != nil {
				return nil, typeRejected("finitegeometric.FromList", "n: %s", err)
			}
			return NewFiniteGeometric(s, n)
		},
		func(d map[string]interface{}) (Distribution, error) {
			s, err := toFloat64(d["s"])
			if err != nil {
				return nil, typeRejected("finitegeometric.FromDict", "s: %s", err)
			}
			n, err := toInt64(d["n"])
			if err != nil {
				return nil, typeRejected("finitegeometric.FromDict", "n: %s", err)
			}
			return NewFiniteGeometric(s, n)
		},
	)
}

func (d FiniteGeometric) Tag() string { return "finitegeometric" }

func (d FiniteGeometric) Sample(g Generator) (interface{}, error) {
	cw, total := finiteGeometricTable(d.S, int(d.N))
	return sampleDiscreteRoulette(g.Random()*total, cw), nil
}

func (d FiniteGeometric) Samples(g Generator, m int) ([]interface{}, error) {
	return sampleMany(m, func() (interface{}, error) { return d.Sample(g) })
}

func (d FiniteGeometric) ToList() []interface{} {
	return []interface{}{d.Tag(), d.S, d.N}
}

func (d FiniteGeometric) ToDict() map[string]interface{} {
	return map[string]interface{}{"distribution": d.Tag(), "s": d.S, "n": d.N}
}

func (d FiniteGeometric) Equal(other Distribution) bool {
	o, ok := other.(FiniteGeometric)
	return ok && d.S == o.S && d.N == o.N
}

func (d FiniteGeometric) String() string {
	return "finitegeometric(s=" + reprFloat(d.S) + ", n=" + reprValue(d.N) + ")"
}
