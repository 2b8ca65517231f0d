// gaussian.go -- the Gaussian (normal) distribution
//
// (c) 2024 the go-seqrand authors
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim is made to its
// suitability for any purpose.

package seqrand

// Gaussian samples a normally distributed float64 with mean Mu and standard
// deviation Sigma. Dispatches to a generator's GaussSampler capability
// (Box-Muller, consuming exactly two outer indices) when available.
type Gaussian struct {
	Mu, Sigma float64
}

// NewGaussian validates Sigma > 0.
func NewGaussian(mu, sigma float64) (Gaussian, error) {
	if sigma <= 0 {
		return Gaussian{}, valueRejected("NewGaussian", "sigma must be > 0, got %v", sigma)
	}
	return Gaussian{Mu: mu, Sigma: sigma}, nil
}

func init() {
	registerDistribution("gaussian",
		func(params []interface{}) (Distribution, error) {
			if len(params) != 2 {
				return nil, valueRejected("gaussian.FromList", "expected 2 parameters, got %d", len(params))
			}
			mu, err := toFloat64(params[0])
			if err != nil {
				return nil, typeRejected("gaussian.FromList", "mu: %s", err)
			}
			sigma, err := toFloat64(params[1])
			if err != nil {
				return nil, typeRejected("gaussian.FromList", "sigma: %s", err)
			}
			return NewGaussian(mu, sigma)
		},
		func(d map[string]interface{}) (Distribution, error) {
			mu, err := toFloat64(d["mu"])
			if err != nil {
				return nil, typeRejected("gaussian.FromDict", "mu: %s", err)
			}
			sigma, err := toFloat64(d["sigma"])
			if err != nil {
				return nil, typeRejected("gaussian.FromDict", "sigma: %s", err)
			}
			return NewGaussian(mu, sigma)
		},
	)
}

func (d Gaussian) Tag() string { return "gaussian" }

func (d Gaussian) Sample(g Generator) (interface{}, error) {
	if gs, ok := probe[GaussSampler](g); ok {
		return gs.Gauss(d.Mu, d.Sigma)
	}
	return d.Mu + d.Sigma*fallbackGauss(g), nil
}

func (d Gaussian) Samples(g Generator, m int) ([]interface{}, error) {
	return sampleMany(m, func() (interface{}, error) { return d.Sample(g) })
}

func (d Gaussian) ToList() []interface{} {
	return []interface{}{d.Tag(), d.Mu, d.Sigma}
}

func (d Gaussian) ToDict() map[string]interface{} {
	return map[string]interface{}{"distribution": d.Tag(), "mu": d.Mu, "sigma": d.Sigma}
}

func (d Gaussian) Equal(other Distribution) bool {
	o, ok := other.(Gaussian)
	return ok && d.Mu == o.Mu && d.Sigma == o.Sigma
}

func (d Gaussian) String() string {
	return "gaussian(mu=" + reprFloat(d.Mu) + ", sigma=" + reprFloat(d.Sigma) + ")"
}
