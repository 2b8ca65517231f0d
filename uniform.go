// uniform.go -- the continuous uniform distribution
//
// (c) 2024 the go-seqrand authors
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim is made to its
// suitability for any purpose.

package seqrand

// Uniform samples a float64 uniformly in [MinVal, MaxVal). Not part of the
// optional generator capability set, so every generator uses the same
// fallback built on Random().
type Uniform struct {
	MinVal, MaxVal float64
}

// NewUniform validates MinVal <= MaxVal.
func NewUniform(minVal, maxVal float64) (Uniform, error) {
	if minVal > maxVal {
		return Uniform{}, valueRejected("NewUniform", "min_val %v > max_val %v", minVal, maxVal)
	}
	return Uniform{MinVal: minVal, MaxVal: maxVal}, nil
}

func init() {
	registerDistribution("uniform",
		func(params []interface{}) (Distribution, error) {
			if len(params) != 2 {
				return nil, valueRejected("uniform.FromList", "expected 2 parameters, got %d", len(params))
			}
			minVal, err := toFloat64(params[0])
			if err != nil {
				return nil, typeRejected("uniform.FromList", "min_val: %s", err)
			}
			maxVal, err := toFloat64(params[1])
			if err != nil {
				return nil, typeRejected("uniform.FromList", "max_val: %s", err)
			}
			return NewUniform(minVal, maxVal)
		},
		func(d map[string]interface{}) (Distribution, error) {
			minVal, err := toFloat64(d["min_val"])
			if err != nil {
				return nil, typeRejected("uniform.FromDict", "min_val: %s", err)
			}
			maxVal, err := toFloat64(d["max_val"])
			if err != nil {
				return nil, typeRejected("uniform.FromDict", "max_val: %s", err)
			}
			return NewUniform(minVal, maxVal)
		},
	)
}

func (u Uniform) Tag() string { return "uniform" }

func (u Uniform) Sample(g Generator) (interface{}, error) {
	return u.MinVal + (u.MaxVal-u.MinVal)*g.Random(), nil
}

func (u Uniform) Samples(g Generator, m int) ([]interface{}, error) {
	return sampleMany(m, func() (interface{}, error) { return u.Sample(g) })
}

func (u Uniform) ToList() []interface{} {
	return []interface{}{u.Tag(), u.MinVal, u.MaxVal}
}

func (u Uniform) ToDict() map[string]interface{} {
	return map[string]interface{}{"distribution": u.Tag(), "min_val": u.MinVal, "max_val": u.MaxVal}
}

func (u Uniform) Equal(other Distribution) bool {
	o, ok := other.(Uniform)
	return ok && u.MinVal == o.MinVal && u.MaxVal == o.MaxVal
}

func (u Uniform) String() string {
	return "uniform(min_val=" + reprFloat(u.MinVal) + ", max_val=" + reprFloat(u.MaxVal) + ")"
}
