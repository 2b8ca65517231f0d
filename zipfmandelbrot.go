// zipfmandelbrot.go -- the Zipf-Mandelbrot distribution over {0, ..., n-1}
//
// (c) 2024 the go-seqrand authors
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim is made to its
// suitability for any purpose.

package seqrand

// ZipfMandelbrot samples from {0, ..., N-1} with exponent S and offset Q.
// Like FiniteGeometric, this is not part of the optional generator
// capability set, so every generator samples via the same cached
// cumulative-weight table.
type ZipfMandelbrot struct {
	S, Q float64
	N    int64
}

// NewZipfMandelbrot validates N >= 1.
func NewZipfMandelbrot(s, q float64, n int64) (ZipfMandelbrot, error) {
	if n < 1 {
		return ZipfMandelbrot{}, valueRejected("NewZipfMandelbrot", "n must be >= 1, got %d", n)
	}
	return ZipfMandelbrot{S: s, Q: q, N: n}, nil
}

func init() {
	registerDistribution("zipfmandelbrot",
		func(params []interface{}) (Distribution, error) {
			if len(params) != 3 {
				return nil, valueRejected("zipfmandelbrot.FromList", "expected 3 parameters, got %d", len(params))
			}
			s, err := toFloat64(params[0])
			if err != nil {
				return nil, typeRejected("zipfmandelbrot.FromList", "s: %s", err)
			}
			q, err := toFloat64(params[1])
			if err != nil {
				return nil, typeRejected("zipfmandelbrot.FromList", "q: %s", err)
			}
			n, err := toInt64(params[2])
			if err != nil {
				return nil, typeRejected("zipfmandelbrot.FromList", "n: %s", err)
			}
			return NewZipfMandelbrot(s, q, n)
		},
		func(d map[string]interface{}) (Distribution, error) {
			s, err := toFloat64(d["s"])
			if err != nil {
				return nil, typeRejected("zipfmandelbrot.FromDict", "s: %s", err)
			}
			q, err := toFloat64(d["q"])
			if err != nil {
				return nil, typeRejected("zipfmandelbrot.FromDict", "q: %s", err)
			}
			n, err := toInt64(d["n"])
			if err != nil {
				return nil, typeRejected("zipfmandelbrot.FromDict", "n: %s", err)
			}
			return NewZipfMandelbrot(s, q, n)
		},
	)
}

func (d ZipfMandelbrot) Tag() string { return "zipfmandelbrot" }

func (d ZipfMandelbrot) Sample(g Generator) (interface{}, error) {
	cw, total := zipfMandelbrotTable(d.S, d.Q, int(d.N))
	return sampleDiscreteRoulette(g.Random()*total, cw), nil
}

func (d ZipfMandelbrot) Samples(g Generator, m int) ([]interface{}, error) {
	return sampleMany(m, func() (interface{}, error) { return d.Sample(g) })
}

func (d ZipfMandelbrot) ToList() []interface{} {
	return []interface{}{d.Tag(), d.S, d.Q, d.N}
}

func (d ZipfMandelbrot) ToDict() map[string]interface{} {
	return map[string]interface{}{"distribution": d.Tag(), "s": d.S, "q": d.Q, "n": d.N}
}

func (d ZipfMandelbrot) Equal(other Distribution) bool {
	o, ok := other.(ZipfMandelbrot)
	return ok && d.S == o.S && d.Q == o.Q && d.N == o.N
}

func (d ZipfMandelbrot) String() string {
	return "zipfmandelbrot(s=" + reprFloat(d.S) + ", q=" + reprFloat(d.Q) + ", n=" + reprValue(d.N) + ")"
}
