// vonmises.go -- the von Mises distribution
//
// (c) 2024 the go-seqrand authors
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim is made to its
// suitability for any purpose.

package seqrand

// VonMises samples a float64 in [0, 2*pi) via the Best/Fisher method,
// degenerating to uniform on [0, 2*pi) when Kappa == 0. Dispatches to a
// generator's VonMisesSampler capability when available.
type VonMises struct {
	Mu, Kappa float64
}

// NewVonMises validates Kappa >= 0.
func NewVonMises(mu, kappa float64) (VonMises, error) {
	if kappa < 0 {
		return VonMises{}, valueRejected("NewVonMises", "kappa must be >= 0, got %v", kappa)
	}
	return VonMises{Mu: mu, Kappa: kappa}, nil
}

func init() {
	registerDistribution("vonmises",
		func(params []interface{}) (Distribution, error) {
			if len(params) != 2 {
				return nil, valueRejected("vonmises.FromList", "expected 2 parameters, got %d", len(params))
			}
			mu, err := toFloat64(params[0])
			if err != nil {
				return nil, typeRejected("vonmises.FromList", "mu: %s", err)
			}
			kappa, err := toFloat64(params[1])
			if err != nil {
				return nil, typeRejected("vonmises.FromList", "kappa: %s", err)
			}
			return NewVonMises(mu, kappa)
		},
		func(d map[string]interface{}) (Distribution, error) {
			mu, err := toFloat64(d["mu"])
			if err != nil {
				return nil, typeRejected("vonmises.FromDict", "mu: %s", err)
			}
			kappa, err := toFloat64(d["kappa"])
			if err != nil {
				return nil, typeRejected("vonmises.FromDict", "kappa: %s", err)
			}
			return NewVonMises(mu, kappa)
		},
	)
}

func (d VonMises) Tag() string { return "vonmises" }

func (d VonMises) Sample(g Generator) (interface{}, error) {
	if vs, ok := probe[VonMisesSampler](g); ok {
		return vs.VonMisesVariate(d.Mu, d.Kappa)
	}
	return fallbackVonMises(g, d.Mu, d.Kappa), nil
}

func (d VonMises) Samples(g Generator, m int) ([]interface{}, error) {
	return sampleMany(m, func() (interface{}, error) { return d.Sample(g) })
}

func (d VonMises) ToList() []interface{} {
	return []interface{}{d.Tag(), d.Mu, d.Kappa}
}

func (d VonMises) ToDict() map[string]interface{} {
	return map[string]interface{}{"distribution": d.Tag(), "mu": d.Mu, "kappa": d.Kappa}
}

func (d VonMises) Equal(other Distribution) bool {
	o, ok := other.(VonMises)
	return ok && d.Mu == o.Mu && d.Kappa == o.Kappa
}

func (d VonMises) String() string {
	return "vonmises(mu=" + reprFloat(d.Mu) + ", kappa=" + reprFloat(d.Kappa) + ")"
}
