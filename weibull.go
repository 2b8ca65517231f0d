// weibull.go -- the Weibull distribution
//
// (c) 2024 the go-seqrand authors
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim is made to its
// suitability for any purpose.

package seqrand

// Weibull samples a Weibull-distributed float64 with scale Alpha and shape
// Beta. Dispatches to a generator's WeibullSampler capability when
// available.
type Weibull struct {
	Alpha, Beta float64
}

// NewWeibull validates Beta > 0.
func NewWeibull(alpha, beta float64) (Weibull, error) {
	if beta <= 0 {
		return Weibull{}, valueRejected("NewWeibull", "beta must be > 0, got %v", beta)
	}
	return Weibull{Alpha: alpha, Beta: beta}, nil
}

func init() {
	registerDistribution("weibull",
		func(params []interface{}) (Distribution, error) {
			if len(params) != 2 {
				return nil, valueRejected("weibull.FromList", "expected 2 parameters, got %d", len(params))
			}
			alpha, err := toFloat64(params[0])
			if err != nil {
				return nil, typeRejected("weibull.FromList", "alpha: %s", err)
			}
			beta, err := toFloat64(params[1])
			if err != nil {
				return nil, typeRejected("weibull.FromList", "beta: %s", err)
			}
			return NewWeibull(alpha, beta)
		},
		func(d map[string]interface{}) (Distribution, error) {
			alpha, err := toFloat64(d["alpha"])
			if err != nil {
				return nil, typeRejected("weibull.FromDict", "alpha: %s", err)
			}
			beta, err := toFloat64(d["beta"])
			if err != nil {
				return nil, typeRejected("weibull.FromDict", "beta: %s", err)
			}
			return NewWeibull(alpha, beta)
		},
	)
}

func (d Weibull) Tag() string { return "weibull" }

func (d Weibull) Sample(g Generator) (interface{}, error) {
	if ws, ok := probe[WeibullSampler](g); ok {
		return ws.Weibullvariate(d.Alpha, d.Beta)
	}
	return fallbackWeibull(g, d.Alpha, d.Beta), nil
}

func (d Weibull) Samples(g Generator, m int) ([]interface{}, error) {
	return sampleMany(m, func() (interface{}, error) { return d.Sample(g) })
}

func (d Weibull) ToList() []interface{} {
	return []interface{}{d.Tag(), d.Alpha, d.Beta}
}

func (d Weibull) ToDict() map[string]interface{} {
	return map[string]interface{}{"distribution": d.Tag(), "alpha": d.Alpha, "beta": d.Beta}
}

func (d Weibull) Equal(other Distribution) bool {
	o, ok := other.(Weibull)
	return ok && d.Alpha == o.Alpha && d.Beta == o.Beta
}

func (d Weibull) String() string {
	return "weibull(alpha=" + reprFloat(d.Alpha) + ", beta=" + reprFloat(d.Beta) + ")"
}
