// distribution.go -- the distribution catalog's common contract and registry
//
// (c) 2024 the go-seqrand authors
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim is made to its
// suitability for any purpose.

package seqrand

import (
	"fmt"
	"strconv"
	"strings"
)

// Distribution is the common contract every catalog variant satisfies: a
// tagged union member with a stable wire tag, round-trip serialization, and
// structural equality. There is no abstract base to misuse -- the tagged
// union is closed and every constructor returns a concrete, valid value or
// an error.
type Distribution interface {
	// Tag is the variant's stable wire name.
	Tag() string
	// Sample draws one value against g, preferring any specialized
	// capability g exposes over the variant's own fallback.
	Sample(g Generator) (interface{}, error)
	// Samples draws m independent values.
	Samples(g Generator, m int) ([]interface{}, error)
	// ToList renders the variant's list encoding: [tag, params...].
	ToList() []interface{}
	// ToDict renders the variant's dict encoding: {"distribution": tag, ...}.
	ToDict() map[string]interface{}
	// Equal reports structural equality: same tag, same parameters.
	Equal(other Distribution) bool
	// String renders a Tag(param=val, ...) form that ParseRepr can read back.
	String() string
}

// UniqueSampler is implemented by UniformCategorical and
// WeightedCategorical, which can draw m values without replacement.
// FiniteGeometricCategorical, ZipfMandelbrotCategorical and the
// non-categorical variants do not implement it; callers type-assert for it.
type UniqueSampler interface {
	SamplesUnique(g Generator, m int) ([]interface{}, error)
}

type listDecoder func(params []interface{}) (Distribution, error)
type dictDecoder func(d map[string]interface{}) (Distribution, error)

var (
	listRegistry = map[string]listDecoder{}
	dictRegistry = map[string]dictDecoder{}
)

// registerDistribution wires a variant's tag to its list- and dict-form
// decoders. Each variant file calls this from its own init().
func registerDistribution(tag string, fromList listDecoder, fromDict dictDecoder) {
	listRegistry[tag] = fromList
	dictRegistry[tag] = fromDict
}

// FromList reconstructs a Distribution from its list encoding: the first
// element is the variant tag, the rest are the declared parameters in order.
func FromList(l []interface{}) (Distribution, error) {
	if len(l) == 0 {
		return nil, valueRejected("FromList", "empty list has no variant tag")
	}
	tag, ok := l[0].(string)
	if !ok {
		return nil, typeRejected("FromList", "tag: expected a string, got %T", l[0])
	}
	dec, ok := listRegistry[tag]
	if !ok {
		return nil, valueRejected("FromList", "unknown distribution tag %q", tag)
	}
	return dec(l[1:])
}

// FromDict reconstructs a Distribution from its dict encoding: a
// "distribution" key naming the variant tag, plus one key per parameter.
func FromDict(d map[string]interface{}) (Distribution, error) {
	tagv, ok := d["distribution"]
	if !ok {
		return nil, valueRejected("FromDict", "missing \"distribution\" key")
	}
	tag, ok := tagv.(string)
	if !ok {
		return nil, typeRejected("FromDict", "distribution: expected a string, got %T", tagv)
	}
	dec, ok := dictRegistry[tag]
	if !ok {
		return nil, valueRejected("FromDict", "unknown distribution tag %q", tag)
	}
	return dec(d)
}

// ParseRepr parses the textual form produced by a Distribution's String()
// method -- Tag(param=val, ...) -- back into an equal Distribution. This
// plays the role the reference's eval(repr(d)) test does, without eval: a
// small recursive-descent parser over the repr grammar, then dispatch
// through the same registry FromDict uses.
func ParseRepr(s string) (Distribution, error) {
	p := &reprParser{s: s}
	tag, params, err := p.parseCall()
	if err != nil {
		return nil, valueRejected("ParseRepr", "%s", err)
	}
	p.skipSpace()
	if p.pos != len(p.s) {
		return nil, valueRejected("ParseRepr", "trailing input at byte %d", p.pos)
	}
	d := map[string]interface{}{"distribution": tag}
	for k, v := range params {
		d[k] = v
	}
	return FromDict(d)
}

type reprParser struct {
	s   string
	pos int
}

func (p *reprParser) skipSpace() {
	for p.pos < len(p.s) && (p.s[p.pos] == ' ' || p.s[p.pos] == '\t' || p.s[p.pos] == '\n') {
		p.pos++
	}
}

func (p *reprParser) parseCall() (string, map[string]interface{}, error) {
	p.skipSpace()
	start := p.pos
	for p.pos < len(p.s) && (isIdentByte(p.s[p.pos])) {
		p.pos++
	}
	if p.pos == start {
		return "", nil, fmt.Errorf("expected identifier at byte %d", start)
	}
	tag := p.s[start:p.pos]
	p.skipSpace()
	if p.pos >= len(p.s) || p.s[p.pos] != '(' {
		return "", nil, fmt.Errorf("expected '(' after %q", tag)
	}
	p.pos++

	params := map[string]interface{}{}
	p.skipSpace()
	if p.pos < len(p.s) && p.s[p.pos] == ')' {
		p.pos++
		return tag, params, nil
	}
	for {
		p.skipSpace()
		kstart := p.pos
		for p.pos < len(p.s) && isIdentByte(p.s[p.pos]) {
			p.pos++
		}
		if p.pos == kstart {
			return "", nil, fmt.Errorf("expected parameter name at byte %d", kstart)
		}
		key := p.s[kstart:p.pos]
		p.skipSpace()
		if p.pos >= len(p.s) || p.s[p.pos] != '=' {
			return "", nil, fmt.Errorf("expected '=' after %q", key)
		}
		p.pos++
		v, err := p.parseValue()
		if err != nil {
			return "", nil, err
		}
		params[key] = v
		p.skipSpace()
		if p.pos >= len(p.s) {
			return "", nil, fmt.Errorf("unterminated argument list")
		}
		if p.s[p.pos] == ',' {
			p.pos++
			continue
		}
		if p.s[p.pos] == ')' {
			p.pos++
			break
		}
		return "", nil, fmt.Errorf("expected ',' or ')' at byte %d", p.pos)
	}
	return tag, params, nil
}

func (p *reprParser) parseValue() (interface{}, error) {
	p.skipSpace()
	if p.pos >= len(p.s) {
		return nil, fmt.Errorf("unexpected end of input")
	}
	switch c := p.s[p.pos]; {
	case c == '\'' || c == '"':
		return p.parseString(c)
	case c == '[':
		return p.parseSeq('[', ']')
	case c == '(':
		return p.parseSeq('(', ')')
	case c == '-' || c == '+' || (c >= '0' && c <= '9'):
		return p.parseNumber()
	case isIdentByte(c):
		start := p.pos
		for p.pos < len(p.s) && isIdentByte(p.s[p.pos]) {
			p.pos++
		}
		word := p.s[start:p.pos]
		switch word {
		case "True", "true":
			return true, nil
		case "False", "false":
			return false, nil
		default:
			// a bare identifier followed by '(' is a nested distribution repr.
			if p.pos < len(p.s) && p.s[p.pos] == '(' {
				p.pos = start
				tag, params, err := p.parseCall()
				if err != nil {
					return nil, err
				}
				d := map[string]interface{}{"distribution": tag}
				for k, v := range params {
					d[k] = v
				}
				return FromDict(d)
			}
			return word, nil
		}
	default:
		return nil, fmt.Errorf("unexpected byte %q at %d", c, p.pos)
	}
}

func (p *reprParser) parseString(quote byte) (string, error) {
	p.pos++ // opening quote
	var b strings.Builder
	for p.pos < len(p.s) {
		c := p.s[p.pos]
		if c == quote {
			p.pos++
			return b.String(), nil
		}
		if c == '\\' && p.pos+1 < len(p.s) {
			p.pos++
			b.WriteByte(p.s[p.pos])
			p.pos++
			continue
		}
		b.WriteByte(c)
		p.pos++
	}
	return "", fmt.Errorf("unterminated string literal")
}

func (p *reprParser) parseNumber() (interface{}, error) {
	start := p.pos
	if p.s[p.pos] == '-' || p.s[p.pos] == '+' {
		p.pos++
	}
	isFloat := false
	for p.pos < len(p.s) {
		c := p.s[p.pos]
		if c >= '0' && c <= '9' {
			p.pos++
			continue
		}
		if c == '.' || c == 'e' || c == 'E' {
			isFloat = true
			p.pos++
			if p.pos < len(p.s) && (p.s[p.pos] == '+' || p.s[p.pos] == '-') {
				p.pos++
			}
			continue
		}
		break
	}
	text := p.s[start:p.pos]
	if isFloat {
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, fmt.Errorf("bad float literal %q: %w", text, err)
		}
		return f, nil
	}
	i, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("bad integer literal %q: %w", text, err)
	}
	return i, nil
}

func (p *reprParser) parseSeq(open, close byte) ([]interface{}, error) {
	p.pos++ // opening bracket
	var out []interface{}
	p.skipSpace()
	if p.pos < len(p.s) && p.s[p.pos] == close {
		p.pos++
		return out, nil
	}
	for {
		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		out = append(out, v)
		p.skipSpace()
		if p.pos >= len(p.s) {
			return nil, fmt.Errorf("unterminated sequence")
		}
		if p.s[p.pos] == ',' {
			p.pos++
			continue
		}
		if p.s[p.pos] == close {
			p.pos++
			break
		}
		return nil, fmt.Errorf("expected ',' or %q at byte %d", close, p.pos)
	}
	return out, nil
}

func isIdentByte(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

// reprFloat formats a float64 the way the catalog's String() methods render
// parameters: shortest round-trippable form, always with a decimal point so
// ParseRepr's number scanner treats it as a float rather than an int.
func reprFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// reprValue renders an arbitrary parameter value (as stored in a dict/list
// encoding) in repr form.
func reprValue(v interface{}) string {
	switch x := v.(type) {
	case string:
		return "'" + strings.ReplaceAll(x, "'", "\\'") + "'"
	case bool:
		if x {
			return "True"
		}
		return "False"
	case float64:
		return reprFloat(x)
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case []float64:
		parts := make([]string, len(x))
		for i, e := range x {
			parts[i] = reprFloat(e)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case []interface{}:
		parts := make([]string, len(x))
		for i, e := range x {
			parts[i] = reprValue(e)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	default:
		return fmt.Sprintf("%v", x)
	}
}

// equalAnySlice compares two []interface{} population/value slices for
// equality using sort-independent structural comparison is NOT appropriate
// here (population order matters for sampling); plain index-wise equality.
func equalAnySlice(a, b []interface{}) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !equalAny(a[i], b[i]) {
			return false
		}
	}
	return true
}

func equalAny(a, b interface{}) bool {
	switch av := a.(type) {
	case float64:
		bv, ok := b.(float64)
		return ok && av == bv
	case int64:
		bv, ok := b.(int64)
		return ok && av == bv
	case int:
		bv, ok := b.(int)
		return ok && av == bv
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	default:
		return a == b
	}
}

// sampleMany calls one m times, collecting results; used by every variant's
// Samples method so the looping logic isn't repeated 21 times over.
func sampleMany(m int, one func() (interface{}, error)) ([]interface{}, error) {
	out := make([]interface{}, m)
	for i := 0; i < m; i++ {
		v, err := one()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
