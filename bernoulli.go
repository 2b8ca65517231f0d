// bernoulli.go -- the Bernoulli distribution
//
// (c) 2024 the go-seqrand authors
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim is made to its
// suitability for any purpose.

package seqrand

// Bernoulli samples true with probability P, false otherwise. Not part of
// the optional generator capability set; always built on Random().
type Bernoulli struct {
	P float64
}

// NewBernoulli validates 0 <= P <= 1.
func NewBernoulli(p float64) (Bernoulli, error) {
	if p < 0 || p > 1 {
		return Bernoulli{}, valueRejected("NewBernoulli", "p must be in [0, 1], got %v", p)
	}
	return Bernoulli{P: p}, nil
}

func init() {
	registerDistribution("bernoulli",
		func(params []interface{}) (Distribution, error) {
			if len(params) != 1 {
				return nil, valueRejected("bernoulli.FromList", "expected 1 parameter, got %d", len(params))
			}
			p, err := toFloat64(params[0])
			if err != nil {
				return nil, typeRejected("bernoulli.FromList", "p: %s", err)
			}
			return NewBernoulli(p)
		},
		func(d map[string]interface{}) (Distribution, error) {
			p, err := toFloat64(d["p"])
			if err != nil {
				return nil, typeRejected("bernoulli.FromDict", "p: %s", err)
			}
			return NewBernoulli(p)
		},
	)
}

func (d Bernoulli) Tag() string { return "bernoulli" }

func (d Bernoulli) Sample(g Generator) (interface{}, error) {
	return g.Random() < d.P, nil
}

func (d Bernoulli) Samples(g Generator, m int) ([]interface{}, error) {
	return sampleMany(m, func() (interface{}, error) { return d.Sample(g) })
}

func (d Bernoulli) ToList() []interface{} {
	return []interface{}{d.Tag(), d.P}
}

func (d Bernoulli) ToDict() map[string]interface{} {
	return map[string]interface{}{"distribution": d.Tag(), "p": d.P}
}

func (d Bernoulli) Equal(other Distribution) bool {
	o, ok := other.(Bernoulli)
	return ok && d.P == o.P
}

func (d Bernoulli) String() string {
	return "bernoulli(p=" + reprFloat(d.P) + ")"
}
