// pareto.go -- the Pareto distribution
//
// (c) 2024 the go-seqrand authors
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim is made to its
// suitability for any purpose.

package seqrand

// Pareto samples a Pareto-distributed float64 with shape Alpha. Dispatches
// to a generator's ParetoSampler capability when available.
type Pareto struct {
	Alpha float64
}

// NewPareto validates Alpha > 0.
func NewPareto(alpha float64) (Pareto, error) {
	if alpha <= 0 {
		return Pareto{}, valueRejected("NewPareto", "alpha must be > 0, got %v", alpha)
	}
	return Pareto{Alpha: alpha}, nil
}

func init() {
	registerDistribution("pareto",
		func(params []interface{}) (Distribution, error) {
			if len(params) != 1 {
				return nil, valueRejected("pareto.FromList", "expected 1 parameter, got %d", len(params))
			}
			alpha, err := toFloat64(params[0])
			if err != nil {
				return nil, typeRejected("pareto.FromList", "alpha: %s", err)
			}
			return NewPareto(alpha)
		},
		func(d map[string]interface{}) (Distribution, error) {
			alpha, err := toFloat64(d["alpha"])
			if err != nil {
				return nil, typeRejected("pareto.FromDict", "alpha: %s", err)
			}
			return NewPareto(alpha)
		},
	)
}

func (d Pareto) Tag() string { return "pareto" }

func (d Pareto) Sample(g Generator) (interface{}, error) {
	if ps, ok := probe[ParetoSampler](g); ok {
		return ps.Paretovariate(d.Alpha)
	}
	return fallbackPareto(g, d.Alpha), nil
}

func (d Pareto) Samples(g Generator, m int) ([]interface{}, error) {
	return sampleMany(m, func() (interface{}, error) { return d.Sample(g) })
}

func (d Pareto) ToList() []interface{} {
	return []interface{}{d.Tag(), d.Alpha}
}

func (d Pareto) ToDict() map[string]interface{} {
	return map[string]interface{}{"distribution": d.Tag(), "alpha": d.Alpha}
}

func (d Pareto) Equal(other Distribution) bool {
	o, ok := other.(Pareto)
	return ok && d.Alpha == o.Alpha
}

func (d Pareto) String() string {
	return "pareto(alpha=" + reprFloat(d.Alpha) + ")"
}
