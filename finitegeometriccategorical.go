// finitegeometriccategorical.go -- a finite-geometric distribution over an arbitrary population
//
// (c) 2024 the go-seqrand authors
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim is made to its
// suitability for any purpose.

package seqrand

// FiniteGeometricCategorical samples a value from Population with
// finite-geometric decay rate S over population order. Like
// FiniteGeometric, it is not part of the optional generator capability
// set; every generator samples via the same cached cumulative-weight table.
type FiniteGeometricCategorical struct {
	Population []interface{}
	S          float64
}

// NewFiniteGeometricCategorical validates a non-empty population.
func NewFiniteGeometricCategorical(population []interface{}, s float64) (FiniteGeometricCategorical, error) {
	if len(population) == 0 {
		return FiniteGeometricCategorical{}, valueRejected("NewFiniteGeometricCategorical", "population must be non-empty")
	}
	return FiniteGeometricCategorical{Population: append([]interface{}(nil), population...), S: s}, nil
}

func init() {
	registerDistribution("finitegeometriccategorical",
		func(params []interface{}) (Distribution, error) {
			if len(params) != 2 {
				return nil, valueRejected("finitegeometriccategorical.FromList", "expected 2 parameters, got %d", len(params))
			}
			pop, err := toAnySlice(params[0])
			if err != nil {
				return nil, typeRejected("finitegeometriccategorical.FromList", "population: %s", err)
			}
			s, err := toFloat64(params[1])
			if err != nil {
				return nil, typeRejected("finitegeometriccategorical.FromList", "s: %s", err)
			}
			return NewFiniteGeometricCategorical(pop, s)
		},
		func(d map[string]interface{}) (Distribution, error) {
			pop, err := toAnySlice(d["population"])
			if err != nil {
				return nil, typeRejected("finitegeometriccategorical.FromDict", "population: %s", err)
			}
			s, err := toFloat64(d["s"])
			if err != nil {
				return nil, typeRejected("finitegeometriccategorical.FromDict", "s: %s", err)
			}
			return NewFiniteGeometricCategorical(pop, s)
		},
	)
}

func (d FiniteGeometricCategorical) Tag() string { return "finitegeometriccategorical" }

func (d FiniteGeometricCategorical) Sample(g Generator) (interface{}, error) {
	cw, total := finiteGeometricTable(d.S, len(d.Population))
	i := sampleDiscreteRoulette(g.Random()*total, cw)
	return d.Population[i], nil
}

func (d FiniteGeometricCategorical) Samples(g Generator, m int) ([]interface{}, error) {
	return sampleMany(m, func() (interface{}, error) { return d.Sample(g) })
}

func (d FiniteGeometricCategorical) ToList() []interface{} {
	return []interface{}{d.Tag(), append([]interface{}(nil), d.Population...), d.S}
}

func (d FiniteGeometricCategorical) ToDict() map[string]interface{} {
	return map[string]interface{}{
		"distribution": d.Tag(),
		"population":   append([]interface{}(nil), d.Population...),
		"s":            d.S,
	}
}

func (d FiniteGeometricCategorical) Equal(other Distribution) bool {
	o, ok := other.(FiniteGeometricCategorical)
	return ok && d.S == o.S && equalAnySlice(d.Population, o.Population)
}

func (d FiniteGeometricCategorical) String() string {
	return "finitegeometriccategorical(population=" + reprValue(d.Population) + ", s=" + reprFloat(d.S) + ")"
}
