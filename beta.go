// beta.go -- the beta distribution
//
// (c) 2024 the go-seqrand authors
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim is made to its
// suitability for any purpose.

package seqrand

// Beta samples a beta-distributed float64 with shape parameters Alpha and
// Beta. Dispatches to a generator's BetaSampler capability when available.
type Beta struct {
	Alpha, Beta float64
}

// NewBeta validates Alpha > 0 and Beta > 0.
func NewBeta(alpha, beta float64) (Beta, error) {
	if alpha <= 0 || beta <= 0 {
		return Beta{}, valueRejected("NewBeta", "alpha and beta must be > 0, got alpha=%v beta=%v", alpha, beta)
	}
	return Beta{Alpha: alpha, Beta: beta}, nil
}

func init() {
	registerDistribution("beta",
		func(params []interface{}) (Distribution, error) {
			if len(params) != 2 {
				return nil, valueRejected("beta.FromList", "expected 2 parameters, got %d", len(params))
			}
			alpha, err := toFloat64(params[0])
			if err != nil {
				return nil, typeRejected("beta.FromList", "alpha: %s", err)
			}
			beta, err := toFloat64(params[1])
			if err != nil {
				return nil, typeRejected("beta.FromList", "beta: %s", err)
			}
			return NewBeta(alpha, beta)
		},
		func(d map[string]interface{}) (Distribution, error) {
			alpha, err := toFloat64(d["alpha"])
			if err != nil {
				return nil, typeRejected("beta.FromDict", "alpha: %s", err)
			}
			beta, err := toFloat64(d["beta"])
			if err != nil {
				return nil, typeRejected("beta.FromDict", "beta: %s", err)
			}
			return NewBeta(alpha, beta)
		},
	)
}

func (d Beta) Tag() string { return "beta" }

func (d Beta) Sample(g Generator) (interface{}, error) {
	if bs, ok := probe[BetaSampler](g); ok {
		return bs.Betavariate(d.Alpha, d.Beta)
	}
	return fallbackBeta(g, d.Alpha, d.Beta), nil
}

func (d Beta) Samples(g Generator, m int) ([]interface{}, error) {
	return sampleMany(m, func() (interface{}, error) { return d.Sample(g) })
}

func (d Beta) ToList() []interface{} {
	return []interface{}{d.Tag(), d.Alpha, d.Beta}
}

func (d Beta) ToDict() map[string]interface{} {
	return map[string]interface{}{"distribution": d.Tag(), "alpha": d.Alpha, "beta": d.Beta}
}

func (d Beta) Equal(other Distribution) bool {
	o, ok := other.(Beta)
	return ok && d.Alpha == o.Alpha && d.Beta == o.Beta
}

func (d Beta) String() string {
	return "beta(alpha=" + reprFloat(d.Alpha) + ", beta=" + reprFloat(d.Beta) + ")"
}
