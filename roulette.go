// roulette.go -- the roulette-wheel draw and the alias-table value type
//
// (c) 2024 the go-seqrand authors
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim is made to its
// suitability for any purpose.

package seqrand

import "sort"

// sampleDiscreteRoulette returns the index i such that cumWeights[i-1] <= u <
// cumWeights[i] (cumWeights[-1] treated as 0), i.e. the standard cumulative-
// weight roulette wheel. cumWeights must be sorted ascending. This is the
// textbook algorithm spec.md §1 calls out as explicitly out of scope for
// elaborate construction; what distributions need is exactly this draw.
func sampleDiscreteRoulette(u float64, cumWeights []float64) int {
	i := sort.Search(len(cumWeights), func(i int) bool {
		return u < cumWeights[i]
	})
	if i >= len(cumWeights) {
		i = len(cumWeights) - 1
	}
	return i
}

// AliasTable is a comparable value type for an (already constructed)
// alias-method sampling table. Building one from a weight vector is a
// standard textbook algorithm and is explicitly out of scope (spec.md §1);
// this type only carries the two parallel tables so a caller that built one
// elsewhere can compare or pass it around.
type AliasTable struct {
	Probability []float64
	Alias       []int
}

// NewAliasTable wraps pre-built probability/alias tables (see AliasTable).
func NewAliasTable(probability []float64, alias []int) AliasTable {
	p := make([]float64, len(probability))
	copy(p, probability)
	a := make([]int, len(alias))
	copy(a, alias)
	return AliasTable{Probability: p, Alias: a}
}

// Equal reports whether two alias tables carry identical entries.
func (a AliasTable) Equal(b AliasTable) bool {
	if len(a.Probability) != len(b.Probability) || len(a.Alias) != len(b.Alias) {
		return false
	}
	for i := range a.Probability {
		if a.Probability[i] != b.Probability[i] {
			return false
		}
	}
	for i := range a.Alias {
		if a.Alias[i] != b.Alias[i] {
			return false
		}
	}
	return true
}

// Sample draws an index from the alias table given two independent uniforms
// in [0, 1): i chooses the bucket, u decides between the bucket's primary
// and aliased outcome.
func (a AliasTable) Sample(i int, u float64) int {
	if u < a.Probability[i] {
		return i
	}
	return a.Alias[i]
}
