// geometric.go -- the geometric distribution (trials to first success)
//
// (c) 2024 the go-seqrand authors
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim is made to its
// suitability for any purpose.

package seqrand

// Geometric samples the number of trials to the first success via
// inverse-CDF. Dispatches to a generator's GeometricSampler capability (the
// engine's fixed-block-count method) when available.
type Geometric struct {
	Mean        float64
	IncludeZero bool
}

// NewGeometric validates Mean against IncludeZero's domain: Mean > 1 when
// IncludeZero is false, Mean > 0 when true.
func NewGeometric(mean float64, includeZero bool) (Geometric, error) {
	if includeZero {
		if mean <= 0 {
			return Geometric{}, valueRejected("NewGeometric", "mean must be > 0 when include_zero, got %v", mean)
		}
	} else if mean <= 1 {
		return Geometric{}, valueRejected("NewGeometric", "mean must be > 1 when !include_zero, got %v", mean)
	}
	return Geometric{Mean: mean, IncludeZero: includeZero}, nil
}

func init() {
	registerDistribution("geometric",
		func(params []interface{}) (Distribution, error) {
			if len(params) != 2 {
				return nil, valueRejected("geometric.FromList", "expected 2 parameters, got %d", len(params))
			}
			mean, err := toFloat64(params[0])
			if err != nil {
				return nil, typeRejected("geometric.FromList", "mean: %s", err)
			}
			includeZero, err := toBool(params[1])
			if err != nil {
				return nil, typeRejected("geometric.FromList", "include_zero: %s", err)
			}
			return NewGeometric(mean, includeZero)
		},
		func(d map[string]interface{}) (Distribution, error) {
			mean, err := toFloat64(d["mean"])
			if err != nil {
				return nil, typeRejected("geometric.FromDict", "mean: %s", err)
			}
			includeZero, err := toBool(d["include_zero"])
			if err != nil {
				return nil, typeRejected("geometric.FromDict", "include_zero: %s", err)
			}
			return NewGeometric(mean, includeZero)
		},
	)
}

func (d Geometric) Tag() string { return "geometric" }

func (d Geometric) Sample(g Generator) (interface{}, error) {
	if gs, ok := probe[GeometricSampler](g); ok {
		return gs.Geometric(d.Mean, d.IncludeZero)
	}
	return fallbackGeometric(g, d.Mean, d.IncludeZero), nil
}

func (d Geometric) Samples(g Generator, m int) ([]interface{}, error) {
	return sampleMany(m, func() (interface{}, error) { return d.Sample(g) })
}

func (d Geometric) ToList() []interface{} {
	return []interface{}{d.Tag(), d.Mean, d.IncludeZero}
}

func (d Geometric) ToDict() map[string]interface{} {
	return map[string]interface{}{"distribution": d.Tag(), "mean": d.Mean, "include_zero": d.IncludeZero}
}

func (d Geometric) Equal(other Distribution) bool {
	o, ok := other.(Geometric)
	return ok && d.Mean == o.Mean && d.IncludeZero == o.IncludeZero
}

func (d Geometric) String() string {
	return "geometric(mean=" + reprFloat(d.Mean) + ", include_zero=" + reprValue(d.IncludeZero) + ")"
}
