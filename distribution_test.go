// distribution_test.go -- test suite for the distribution catalog
//
// (c) 2024 the go-seqrand authors
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim is made to its
// suitability for any purpose.

package seqrand

import (
	"errors"
	"testing"
)

func sampleDistributions(t *testing.T) []Distribution {
	t.Helper()
	mk := func(d Distribution, err error) Distribution {
		if err != nil {
			t.Fatalf("construct %T: %v", d, err)
		}
		return d
	}
	uc := mk(NewUniformCategorical([]interface{}{"a", "b", "c"}))
	wc := mk(NewWeightedCategoricalItems([]WeightedItem{
		{Value: "x", CumWeight: 1},
		{Value: "y", CumWeight: 3},
		{Value: "z", CumWeight: 6},
	}))
	return []Distribution{
		Constant{Value: int64(7)},
		mk(NewUniform(0, 1)),
		mk(NewDiscreteUniform(1, 6)),
		mk(NewGeometric(2.5, false)),
		mk(NewFiniteGeometric(0.5, 10)),
		mk(NewZipfMandelbrot(1.0, 2.0, 10)),
		mk(NewGamma(2.0, 1.0)),
		mk(NewTriangular(0, 10, 5)),
		mk(NewUniformProduct(3)),
		mk(NewLogNormal(0, 1)),
		mk(NewExponential(1.5)),
		mk(NewVonMises(0, 0)),
		mk(NewBeta(2, 3)),
		mk(NewPareto(1.5)),
		mk(NewWeibull(1, 2)),
		mk(NewGaussian(0, 1)),
		mk(NewBernoulli(0.5)),
		wc,
		uc,
		mk(NewFiniteGeometricCategorical([]interface{}{"a", "b", "c"}, 0.5)),
		mk(NewZipfMandelbrotCategorical([]interface{}{"a", "b", "c"}, 1.0, 2.0)),
	}
}

// TestFromListToListRoundTrip checks P2's list half.
func TestFromListToListRoundTrip(t *testing.T) {
	for _, d := range sampleDistributions(t) {
		got, err := FromList(d.ToList())
		if err != nil {
			t.Errorf("%s: FromList(ToList()): %v", d.Tag(), err)
			continue
		}
		if !got.Equal(d) {
			t.Errorf("%s: round trip mismatch: %#v != %#v", d.Tag(), got, d)
		}
	}
}

// TestFromDictToDictRoundTrip checks P2's dict half.
func TestFromDictToDictRoundTrip(t *testing.T) {
	for _, d := range sampleDistributions(t) {
		got, err := FromDict(d.ToDict())
		if err != nil {
			t.Errorf("%s: FromDict(ToDict()): %v", d.Tag(), err)
			continue
		}
		if !got.Equal(d) {
			t.Errorf("%s: round trip mismatch: %#v != %#v", d.Tag(), got, d)
		}
	}
}

// TestParseReprRoundTrip checks P3.
func TestParseReprRoundTrip(t *testing.T) {
	for _, d := range sampleDistributions(t) {
		got, err := ParseRepr(d.String())
		if err != nil {
			t.Errorf("%s: ParseRepr(%q): %v", d.Tag(), d.String(), err)
			continue
		}
		if !got.Equal(d) {
			t.Errorf("%s: repr round trip mismatch: %#v != %#v (repr %q)", d.Tag(), got, d, d.String())
		}
	}
}

func TestUniformRejectsInvertedRange(t *testing.T) {
	_, err := NewUniform(2, 1)
	if !errors.Is(err, ErrValueRejected) {
		t.Fatalf("expected ErrValueRejected, got %v", err)
	}
}

func TestGeometricMeanDomain(t *testing.T) {
	if _, err := NewGeometric(1, false); !errors.Is(err, ErrValueRejected) {
		t.Fatalf("expected ErrValueRejected for mean<=1 without include_zero, got %v", err)
	}
	if _, err := NewGeometric(0, true); !errors.Is(err, ErrValueRejected) {
		t.Fatalf("expected ErrValueRejected for mean<=0 with include_zero, got %v", err)
	}
}

func TestWeightedCategoricalRejectsNonIncreasing(t *testing.T) {
	_, err := NewWeightedCategoricalItems([]WeightedItem{
		{Value: "a", CumWeight: 3},
		{Value: "b", CumWeight: 2},
	})
	if !errors.Is(err, ErrValueRejected) {
		t.Fatalf("expected ErrValueRejected, got %v", err)
	}
}

func TestCategoricalsRejectEmptyPopulation(t *testing.T) {
	if _, err := NewUniformCategorical(nil); !errors.Is(err, ErrValueRejected) {
		t.Fatalf("expected ErrValueRejected, got %v", err)
	}
	if _, err := NewFiniteGeometricCategorical(nil, 0.5); !errors.Is(err, ErrValueRejected) {
		t.Fatalf("expected ErrValueRejected, got %v", err)
	}
}

// sentinelGenerator is a minimal Generator whose Geometric/UniformProduct
// methods return a recognizable sentinel value instead of sampling,
// standing in for the original's monkey-patched "_impl" override test.
type sentinelGenerator struct{}

func (sentinelGenerator) Random() float64 { return 0.5 }
func (sentinelGenerator) Geometric(mean float64, includeZero bool) (int64, error) {
	return -999, nil
}
func (sentinelGenerator) UniformProduct(n int) (float64, error) {
	return -999, nil
}

// bareGenerator exposes only Random(), like a generic host generator with
// no specialized methods.
type bareGenerator struct{}

func (bareGenerator) Random() float64 { return 0.5 }

// TestDynamicDispatchByCapability checks P10: a generator exposing
// Geometric/UniformProduct is preferred over the fallback; a generator
// lacking them falls back to the catalog's own implementation.
func TestDynamicDispatchByCapability(t *testing.T) {
	geo, err := NewGeometric(2.0, false)
	if err != nil {
		t.Fatalf("NewGeometric: %v", err)
	}

	got, err := geo.Sample(sentinelGenerator{})
	if err != nil {
		t.Fatalf("Sample with sentinel capability: %v", err)
	}
	if got.(int64) != -999 {
		t.Fatalf("expected dispatch to sentinel capability, got %v", got)
	}

	got, err = geo.Sample(bareGenerator{})
	if err != nil {
		t.Fatalf("Sample with bare generator: %v", err)
	}
	if got.(int64) == -999 {
		t.Fatalf("bare generator should not reach the sentinel capability")
	}

	up, err := NewUniformProduct(2)
	if err != nil {
		t.Fatalf("NewUniformProduct: %v", err)
	}
	got, err = up.Sample(sentinelGenerator{})
	if err != nil {
		t.Fatalf("Sample with sentinel capability: %v", err)
	}
	if got.(float64) != -999 {
		t.Fatalf("expected dispatch to sentinel capability, got %v", got)
	}
}

func TestEngineSatisfiesCapabilities(t *testing.T) {
	e := New(IntSeed(1))
	var g Generator = e
	if _, ok := probe[GeometricSampler](g); !ok {
		t.Errorf("*Engine should satisfy GeometricSampler")
	}
	if _, ok := probe[GammaSampler](g); !ok {
		t.Errorf("*Engine should satisfy GammaSampler")
	}
	if _, ok := probe[VonMisesSampler](g); !ok {
		t.Errorf("*Engine should satisfy VonMisesSampler")
	}
	if _, ok := probe[RandRanger](g); !ok {
		t.Errorf("*Engine should satisfy RandRanger")
	}
	if _, ok := probe[Chooser](g); !ok {
		t.Errorf("*Engine should satisfy Chooser")
	}
	if _, ok := probe[ChoicesSampler](g); !ok {
		t.Errorf("*Engine should satisfy ChoicesSampler")
	}
}

func TestUniformCategoricalSamplesUnique(t *testing.T) {
	uc, err := NewUniformCategorical([]interface{}{"a", "b", "c", "d", "e"})
	if err != nil {
		t.Fatalf("NewUniformCategorical: %v", err)
	}
	e := New(IntSeed(3))
	got, err := uc.SamplesUnique(e, 5)
	if err != nil {
		t.Fatalf("SamplesUnique: %v", err)
	}
	seen := map[interface{}]bool{}
	for _, v := range got {
		if seen[v] {
			t.Fatalf("duplicate value %v in unique sample", v)
		}
		seen[v] = true
	}
	if len(seen) != 5 {
		t.Fatalf("expected 5 distinct values, got %d", len(seen))
	}
}

func TestWeightedCategoricalSamplesUnique(t *testing.T) {
	wc, err := NewWeightedCategoricalItems([]WeightedItem{
		{Value: "a", CumWeight: 1},
		{Value: "b", CumWeight: 3},
		{Value: "c", CumWeight: 6},
		{Value: "d", CumWeight: 10},
	})
	if err != nil {
		t.Fatalf("NewWeightedCategoricalItems: %v", err)
	}
	e := New(IntSeed(4))
	got, err := wc.SamplesUnique(e, 4)
	if err != nil {
		t.Fatalf("SamplesUnique: %v", err)
	}
	if len(got) != 4 {
		t.Fatalf("expected 4 values, got %d", len(got))
	}
	seen := map[interface{}]bool{}
	for _, v := range got {
		seen[v] = true
	}
	if len(seen) != 4 {
		t.Fatalf("expected 4 distinct values, got %d", len(seen))
	}
}
