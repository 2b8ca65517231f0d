// zipfmandelbrotcategorical.go -- a Zipf-Mandelbrot distribution over an arbitrary population
//
// (c) 2024 the go-seqrand authors
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim is made to its
// suitability for any purpose.

package seqrand

// ZipfMandelbrotCategorical samples a value from Population with
// Zipf-Mandelbrot weighting (exponent S, offset Q) over population order.
// Not part of the optional generator capability set; every generator
// samples via the same cached cumulative-weight table.
type ZipfMandelbrotCategorical struct {
	Population []interface{}
	S, Q       float64
}

// NewZipfMandelbrotCategorical validates a non-empty population.
func NewZipfMandelbrotCategorical(population []interface{}, s, q float64) (ZipfMandelbrotCategorical, error) {
	if len(population) == 0 {
		return ZipfMandelbrotCategorical{}, valueRejected("NewZipfMandelbrotCategorical", "population must be non-empty")
	}
	return ZipfMandelbrotCategorical{Population: append([]interface{}(nil), population...), S: s, Q: q}, nil
}

func init() {
	registerDistribution("zipfmandelbrotcategorical",
		func(params []interface{}) (Distribution, error) {
			if len(params) != 3 {
				return nil, valueRejected("zipfmandelbrotcategorical.FromList", "expected 3 parameters, got %d", len(params))
			}
			pop, err := toAnySlice(params[0])
			if err != nil {
				return nil, typeRejected("zipfmandelbrotcategorical.FromList", "population: %s", err)
			}
			s, err := toFloat64(params[1])
			if err != nil {
				return nil, typeRejected("zipfmandelbrotcategorical.FromList", "s: %s", err)
			}
			q, err := toFloat64(params[2])
			if err != nil {
				return nil, typeRejected("zipfmandelbrotcategorical.FromList", "q: %s", err)
			}
			return NewZipfMandelbrotCategorical(pop, s, q)
		},
		func(d map[string]interface{}) (Distribution, error) {
			pop, err := toAnySlice(d["population"])
			if err != nil {
				return nil, typeRejected("zipfmandelbrotcategorical.FromDict", "population: %s", err)
			}
			s, err := toFloat64(d["s"])
			if err != nil {
				return nil, typeRejected("zipfmandelbrotcategorical.FromDict", "s: %s", err)
			}
			q, err := toFloat64(d["q"])
			if err != nil {
				return nil, typeRejected("zipfmandelbrotcategorical.FromDict", "q: %s", err)
			}
			return NewZipfMandelbrotCategorical(pop, s, q)
		},
	)
}

func (d ZipfMandelbrotCategorical) Tag() string { return "zipfmandelbrotcategorical" }

func (d ZipfMandelbrotCategorical) Sample(g Generator) (interface{}, error) {
	cw, total := zipfMandelbrotTable(d.S, d.Q, len(d.Population))
	i := sampleDiscreteRoulette(g.Random()*total, cw)
	return d.Population[i], nil
}

func (d ZipfMandelbrotCategorical) Samples(g Generator, m int) ([]interface{}, error) {
	return sampleMany(m, func() (interface{}, error) { return d.Sample(g) })
}

func (d ZipfMandelbrotCategorical) ToList() []interface{} {
	return []interface{}{d.Tag(), append([]interface{}(nil), d.Population...), d.S, d.Q}
}

func (d ZipfMandelbrotCategorical) ToDict() map[string]interface{} {
	return map[string]interface{}{
		"distribution": d.Tag(),
		"population":   append([]interface{}(nil), d.Population...),
		"s":            d.S,
		"q":            d.Q,
	}
}

func (d ZipfMandelbrotCategorical) Equal(other Distribution) bool {
	o, ok := other.(ZipfMandelbrotCategorical)
	return ok && d.S == o.S && d.Q == o.Q && equalAnySlice(d.Population, o.Population)
}

func (d ZipfMandelbrotCategorical) String() string {
	return "zipfmandelbrotcategorical(population=" + reprValue(d.Population) + ", s=" + reprFloat(d.S) + ", q=" + reprFloat(d.Q) + ")"
}
