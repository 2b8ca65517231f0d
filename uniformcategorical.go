// uniformcategorical.go -- a uniform distribution over an arbitrary population
//
// (c) 2024 the go-seqrand authors
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim is made to its
// suitability for any purpose.

package seqrand

// UniformCategorical samples a value uniformly from Population. Dispatches
// to a generator's Chooser capability (the engine's rejection-sampled
// Choice) when available.
type UniformCategorical struct {
	Population []interface{}
}

// NewUniformCategorical validates a non-empty population.
func NewUniformCategorical(population []interface{}) (UniformCategorical, error) {
	if len(population) == 0 {
		return UniformCategorical{}, valueRejected("NewUniformCategorical", "population must be non-empty")
	}
	return UniformCategorical{Population: append([]interface{}(nil), population...)}, nil
}

func init() {
	registerDistribution("uniformcategorical",
		func(params []interface{}) (Distribution, error) {
			if len(params) != 1 {
				return nil, valueRejected("uniformcategorical.FromList", "expected 1 parameter, got %d", len(params))
			}
			pop, err := toAnySlice(params[0])
			if err != nil {
				return nil, typeRejected("uniformcategorical.FromList", "population: %s", err)
			}
			return NewUniformCategorical(pop)
		},
		func(d map[string]interface{}) (Distribution, error) {
			pop, err := toAnySlice(d["population"])
			if err != nil {
				return nil, typeRejected("uniformcategorical.FromDict", "population: %s", err)
			}
			return NewUniformCategorical(pop)
		},
	)
}

func (d UniformCategorical) Tag() string { return "uniformcategorical" }

func (d UniformCategorical) Sample(g Generator) (interface{}, error) {
	i, err := chooseIndex(g, len(d.Population))
	if err != nil {
		return nil, err
	}
	return d.Population[i], nil
}

func (d UniformCategorical) Samples(g Generator, m int) ([]interface{}, error) {
	return sampleMany(m, func() (interface{}, error) { return d.Sample(g) })
}

// SamplesUnique draws m distinct population members without replacement, in
// the order drawn, via a partial Fisher-Yates shuffle over indices.
func (d UniformCategorical) SamplesUnique(g Generator, m int) ([]interface{}, error) {
	n := len(d.Population)
	if m > n {
		return nil, valueRejected("UniformCategorical.SamplesUnique", "m=%d exceeds population size %d", m, n)
	}
	pool := make([]int, n)
	for i := range pool {
		pool[i] = i
	}
	out := make([]interface{}, m)
	remaining := n
	for i := 0; i < m; i++ {
		j, err := chooseIndex(g, remaining)
		if err != nil {
			return nil, err
		}
		out[i] = d.Population[pool[j]]
		remaining--
		pool[j] = pool[remaining]
	}
	return out, nil
}

func (d UniformCategorical) ToList() []interface{} {
	return []interface{}{d.Tag(), append([]interface{}(nil), d.Population...)}
}

func (d UniformCategorical) ToDict() map[string]interface{} {
	return map[string]interface{}{"distribution": d.Tag(), "population": append([]interface{}(nil), d.Population...)}
}

func (d UniformCategorical) Equal(other Distribution) bool {
	o, ok := other.(UniformCategorical)
	return ok && equalAnySlice(d.Population, o.Population)
}

func (d UniformCategorical) String() string {
	return "uniformcategorical(population=" + reprValue(d.Population) + ")"
}
