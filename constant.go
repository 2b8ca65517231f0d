// constant.go -- the constant distribution: always returns the same value
//
// (c) 2024 the go-seqrand authors
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim is made to its
// suitability for any purpose.

package seqrand

// Constant always samples to the same value. It draws nothing from the
// generator.
type Constant struct {
	Value interface{}
}

func init() {
	registerDistribution("constant",
		func(params []interface{}) (Distribution, error) {
			if len(params) != 1 {
				return nil, valueRejected("constant.FromList", "expected 1 parameter, got %d", len(params))
			}
			return Constant{Value: params[0]}, nil
		},
		func(d map[string]interface{}) (Distribution, error) {
			v, ok := d["value"]
			if !ok {
				return nil, valueRejected("constant.FromDict", "missing \"value\"")
			}
			return Constant{Value: v}, nil
		},
	)
}

func (c Constant) Tag() string { return "constant" }

func (c Constant) Sample(g Generator) (interface{}, error) {
	return c.Value, nil
}

func (c Constant) Samples(g Generator, m int) ([]interface{}, error) {
	return sampleMany(m, func() (interface{}, error) { return c.Sample(g) })
}

func (c Constant) ToList() []interface{} {
	return []interface{}{c.Tag(), c.Value}
}

func (c Constant) ToDict() map[string]interface{} {
	return map[string]interface{}{"distribution": c.Tag(), "value": c.Value}
}

func (c Constant) Equal(other Distribution) bool {
	o, ok := other.(Constant)
	return ok && equalAny(c.Value, o.Value)
}

func (c Constant) String() string {
	return "constant(value=" + reprValue(c.Value) + ")"
}
