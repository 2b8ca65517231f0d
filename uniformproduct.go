// uniformproduct.go -- the product of n independent uniform(0,1) samples
//
// (c) 2024 the go-seqrand authors
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim is made to its
// suitability for any purpose.

package seqrand

// UniformProduct samples the product of N independent uniform(0,1) draws
// (1.0 when N == 0). Dispatches to a generator's UniformProductSampler
// capability (the engine's single-outer-index cascade) when available.
type UniformProduct struct {
	N int64
}

// NewUniformProduct validates N >= 0.
func NewUniformProduct(n int64) (UniformProduct, error) {
	if n < 0 {
		return UniformProduct{}, valueRejected("NewUniformProduct", "n must be >= 0, got %d", n)
	}
	return UniformProduct{N: n}, nil
}

func init() {
	registerDistribution("uniformproduct",
		func(params []interface{}) (Distribution, error) {
			if len(params) != 1 {
				return nil, valueRejected("uniformproduct.FromList", "expected 1 parameter, got %d", len(params))
			}
			n, err := toInt64(params[0])
			if err != nil {
				return nil, typeRejected("uniformproduct.FromList", "n: %s", err)
			}
			return NewUniformProduct(n)
		},
		func(d map[string]interface{}) (Distribution, error) {
			n, err := toInt64(d["n"])
			if err != nil {
				return nil, typeRejected("uniformproduct.FromDict", "n: %s", err)
			}
			return NewUniformProduct(n)
		},
	)
}

func (d UniformProduct) Tag() string { return "uniformproduct" }

func (d UniformProduct) Sample(g Generator) (interface{}, error) {
	if ps, ok := probe[UniformProductSampler](g); ok {
		return ps.UniformProduct(int(d.N))
	}
	return fallbackUniformProduct(g, int(d.N)), nil
}

func (d UniformProduct) Samples(g Generator, m int) ([]interface{}, error) {
	return sampleMany(m, func() (interface{}, error) { return d.Sample(g) })
}

func (d UniformProduct) ToList() []interface{} {
	return []interface{}{d.Tag(), d.N}
}

func (d UniformProduct) ToDict() map[string]interface{} {
	return map[string]interface{}{"distribution": d.Tag(), "n": d.N}
}

func (d UniformProduct) Equal(other Distribution) bool {
	o, ok := other.(UniformProduct)
	return ok && d.N == o.N
}

func (d UniformProduct) String() string {
	return "uniformproduct(n=" + reprValue(d.N) + ")"
}
