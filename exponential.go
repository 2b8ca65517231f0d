// exponential.go -- the exponential distribution
//
// (c) 2024 the go-seqrand authors
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim is made to its
// suitability for any purpose.

package seqrand

// Exponential samples an exponentially distributed float64 with rate
// Lambd. Dispatches to a generator's ExpoSampler capability when available.
type Exponential struct {
	Lambd float64
}

// NewExponential validates Lambd != 0.
func NewExponential(lambd float64) (Exponential, error) {
	if lambd == 0 {
		return Exponential{}, valueRejected("NewExponential", "lambd must not be 0")
	}
	return Exponential{Lambd: lambd}, nil
}

func init() {
	registerDistribution("exponential",
		func(params []interface{}) (Distribution, error) {
			if len(params) != 1 {
				return nil, valueRejected("exponential.FromList", "expected 1 parameter, got %d", len(params))
			}
			lambd, err := toFloat64(params[0])
			if err != nil {
				return nil, typeRejected("exponential.FromList", "lambd: %s", err)
			}
			return NewExponential(lambd)
		},
		func(d map[string]interface{}) (Distribution, error) {
			lambd, err := toFloat64(d["lambd"])
			if err != nil {
				return nil, typeRejected("exponential.FromDict", "lambd: %s", err)
			}
			return NewExponential(lambd)
		},
	)
}

func (d Exponential) Tag() string { return "exponential" }

func (d Exponential) Sample(g Generator) (interface{}, error) {
	if es, ok := probe[ExpoSampler](g); ok {
		return es.Expovariate(d.Lambd)
	}
	return fallbackExpo(g, d.Lambd), nil
}

func (d Exponential) Samples(g Generator, m int) ([]interface{}, error) {
	return sampleMany(m, func() (interface{}, error) { return d.Sample(g) })
}

func (d Exponential) ToList() []interface{} {
	return []interface{}{d.Tag(), d.Lambd}
}

func (d Exponential) ToDict() map[string]interface{} {
	return map[string]interface{}{"distribution": d.Tag(), "lambd": d.Lambd}
}

func (d Exponential) Equal(other Distribution) bool {
	o, ok := other.(Exponential)
	return ok && d.Lambd == o.Lambd
}

func (d Exponential) String() string {
	return "exponential(lambd=" + reprFloat(d.Lambd) + ")"
}
