// convert.go -- type coercion helpers for the dynamic dict/list serialization boundary
//
// (c) 2024 the go-seqrand authors
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim is made to its
// suitability for any purpose.

package seqrand

import "fmt"

// toFloat64 coerces a decoded dict/list value to float64. This is the one
// place ErrTypeRejected is genuinely reachable at runtime: dict/list forms
// carry interface{} values (e.g. freshly decoded from JSON or built up by a
// caller), and a wrong concrete type here is a real mistake, not one the Go
// compiler could have caught for us.
func toFloat64(v interface{}) (float64, error) {
	switch x := v.(type) {
	case float64:
		return x, nil
	case float32:
		return float64(x), nil
	case int:
		return float64(x), nil
	case int64:
		return float64(x), nil
	default:
		return 0, fmt.Errorf("expected a number, got %T", v)
	}
}

// toInt64 coerces a decoded dict/list value to int64.
func toInt64(v interface{}) (int64, error) {
	switch x := v.(type) {
	case int64:
		return x, nil
	case int:
		return int64(x), nil
	case float64:
		if x != float64(int64(x)) {
			return 0, fmt.Errorf("expected an integer, got non-integral float %v", x)
		}
		return int64(x), nil
	default:
		return 0, fmt.Errorf("expected an integer, got %T", v)
	}
}

// toUint64 coerces a decoded dict/list value to uint64.
func toUint64(v interface{}) (uint64, error) {
	switch x := v.(type) {
	case uint64:
		return x, nil
	case int64:
		return uint64(x), nil
	case int:
		return uint64(x), nil
	case float64:
		if x < 0 || x != float64(uint64(x)) {
			return 0, fmt.Errorf("expected a non-negative integer, got %v", x)
		}
		return uint64(x), nil
	default:
		return 0, fmt.Errorf("expected an unsigned integer, got %T", v)
	}
}

// toBool coerces a decoded dict/list value to bool.
func toBool(v interface{}) (bool, error) {
	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("expected a boolean, got %T", v)
	}
	return b, nil
}

// toFloat64Slice coerces a decoded dict/list value to []float64.
func toFloat64Slice(v interface{}) ([]float64, error) {
	s, ok := v.([]interface{})
	if !ok {
		if fs, ok := v.([]float64); ok {
			return fs, nil
		}
		return nil, fmt.Errorf("expected a list, got %T", v)
	}
	out := make([]float64, len(s))
	for i, e := range s {
		f, err := toFloat64(e)
		if err != nil {
			return nil, fmt.Errorf("index %d: %w", i, err)
		}
		out[i] = f
	}
	return out, nil
}

// toAnySlice coerces a decoded dict/list value to []interface{}.
func toAnySlice(v interface{}) ([]interface{}, error) {
	s, ok := v.([]interface{})
	if !ok {
		return nil, fmt.Errorf("expected a list, got %T", v)
	}
	return s, nil
}
