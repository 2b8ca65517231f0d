// weightedcategorical.go -- a categorical distribution with explicit per-value weights
//
// (c) 2024 the go-seqrand authors
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim is made to its
// suitability for any purpose.

package seqrand

import (
	"math"
	"sort"
)

// WeightedItem pairs a value with its cumulative weight, the canonical
// stored form of WeightedCategorical.Items.
type WeightedItem struct {
	Value     interface{}
	CumWeight float64
}

// WeightedCategorical samples a value with explicit weighting. Items is
// stored sorted by ascending cumulative weight, the canonical wire form; a
// generic roulette draw over Items' cumulative weights does the sampling
// for every generator (not part of the optional capability set).
type WeightedCategorical struct {
	Items []WeightedItem
}

// NewWeightedCategoricalItems builds a WeightedCategorical directly from
// (value, cumulative-weight) pairs, already sorted ascending. Rejects a
// non-strictly-increasing or non-positive cumulative weight sequence.
func NewWeightedCategoricalItems(items []WeightedItem) (WeightedCategorical, error) {
	if len(items) == 0 {
		return WeightedCategorical{}, valueRejected("NewWeightedCategoricalItems", "items must be non-empty")
	}
	prev := 0.0
	for i, it := range items {
		if it.CumWeight <= 0 {
			return WeightedCategorical{}, valueRejected("NewWeightedCategoricalItems", "cumulative weight at index %d must be positive, got %v", i, it.CumWeight)
		}
		if it.CumWeight <= prev {
			return WeightedCategorical{}, valueRejected("NewWeightedCategoricalItems", "cumulative weights must strictly increase, item %d (%v) <= previous (%v)", i, it.CumWeight, prev)
		}
		prev = it.CumWeight
	}
	out := make([]WeightedItem, len(items))
	copy(out, items)
	return WeightedCategorical{Items: out}, nil
}

// NewWeightedCategoricalFromWeights builds a WeightedCategorical from
// parallel population/weight slices, converting weights to cumulative form.
// Every weight must be positive.
func NewWeightedCategoricalFromWeights(population []interface{}, weights []float64) (WeightedCategorical, error) {
	if len(population) != len(weights) {
		return WeightedCategorical{}, valueRejected("NewWeightedCategoricalFromWeights", "population length %d != weights length %d", len(population), len(weights))
	}
	items := make([]WeightedItem, len(population))
	total := 0.0
	for i, w := range weights {
		if w <= 0 {
			return WeightedCategorical{}, valueRejected("NewWeightedCategoricalFromWeights", "weight at index %d must be positive, got %v", i, w)
		}
		total += w
		items[i] = WeightedItem{Value: population[i], CumWeight: total}
	}
	return NewWeightedCategoricalItems(items)
}

// NewWeightedCategoricalFromCumWeights builds a WeightedCategorical from
// parallel population/cumulative-weight slices.
func NewWeightedCategoricalFromCumWeights(population []interface{}, cumWeights []float64) (WeightedCategorical, error) {
	if len(population) != len(cumWeights) {
		return WeightedCategorical{}, valueRejected("NewWeightedCategoricalFromCumWeights", "population length %d != cum_weights length %d", len(population), len(cumWeights))
	}
	items := make([]WeightedItem, len(population))
	for i := range population {
		items[i] = WeightedItem{Value: population[i], CumWeight: cumWeights[i]}
	}
	return NewWeightedCategoricalItems(items)
}

func weightedCategoricalItemsFromAny(v interface{}) ([]WeightedItem, error) {
	raw, err := toAnySlice(v)
	if err != nil {
		return nil, err
	}
	items := make([]WeightedItem, len(raw))
	for i, e := range raw {
		pair, err := toAnySlice(e)
		if err != nil {
			return nil, err
		}
		if len(pair) != 2 {
			return nil, valueRejected("weightedCategoricalItemsFromAny", "item %d: expected a [value, cum_weight] pair", i)
		}
		cw, err := toFloat64(pair[1])
		if err != nil {
			return nil, err
		}
		items[i] = WeightedItem{Value: pair[0], CumWeight: cw}
	}
	return items, nil
}

func init() {
	registerDistribution("weightedcategorical",
		func(params []interface{}) (Distribution, error) {
			if len(params) != 1 {
				return nil, valueRejected("weightedcategorical.FromList", "expected 1 parameter, got %d", len(params))
			}
			items, err := weightedCategoricalItemsFromAny(params[0])
			if err != nil {
				return nil, typeRejected("weightedcategorical.FromList", "items: %s", err)
			}
			return NewWeightedCategoricalItems(items)
		},
		func(d map[string]interface{}) (Distribution, error) {
			if iv, ok := d["items"]; ok {
				items, err := weightedCategoricalItemsFromAny(iv)
				if err != nil {
					return nil, typeRejected("weightedcategorical.FromDict", "items: %s", err)
				}
				return NewWeightedCategoricalItems(items)
			}
			pop, err := toAnySlice(d["population"])
			if err != nil {
				return nil, typeRejected("weightedcategorical.FromDict", "population: %s", err)
			}
			if wv, ok := d["weights"]; ok {
				weights, err := toFloat64Slice(wv)
				if err != nil {
					return nil, typeRejected("weightedcategorical.FromDict", "weights: %s", err)
				}
				return NewWeightedCategoricalFromWeights(pop, weights)
			}
			if cv, ok := d["cum_weights"]; ok {
				cumWeights, err := toFloat64Slice(cv)
				if err != nil {
					return nil, typeRejected("weightedcategorical.FromDict", "cum_weights: %s", err)
				}
				return NewWeightedCategoricalFromCumWeights(pop, cumWeights)
			}
			return nil, argConflict("weightedcategorical.FromDict", "need one of items, (population, weights), (population, cum_weights)")
		},
	)
}

// pow1over returns u^(1/w), the Efraimidis-Spirakis reservoir key.
func pow1over(u, w float64) float64 {
	return math.Pow(u, 1.0/w)
}

func (d WeightedCategorical) Tag() string { return "weightedcategorical" }

func (d WeightedCategorical) cumWeights() []float64 {
	cw := make([]float64, len(d.Items))
	for i, it := range d.Items {
		cw[i] = it.CumWeight
	}
	return cw
}

func (d WeightedCategorical) Sample(g Generator) (interface{}, error) {
	cw := d.cumWeights()
	total := cw[len(cw)-1]
	i := sampleDiscreteRoulette(g.Random()*total, cw)
	return d.Items[i].Value, nil
}

func (d WeightedCategorical) Samples(g Generator, m int) ([]interface{}, error) {
	return sampleMany(m, func() (interface{}, error) { return d.Sample(g) })
}

// SamplesUnique draws m distinct values without replacement, weighted by
// each item's share of total weight, via the Efraimidis-Spirakis weighted
// reservoir key u^(1/w): drawing the m largest keys is equivalent to m
// sequential weighted draws without replacement.
func (d WeightedCategorical) SamplesUnique(g Generator, m int) ([]interface{}, error) {
	n := len(d.Items)
	if m > n {
		return nil, valueRejected("WeightedCategorical.SamplesUnique", "m=%d exceeds item count %d", m, n)
	}
	type keyed struct {
		key float64
		idx int
	}
	prev := 0.0
	keys := make([]keyed, n)
	for i, it := range d.Items {
		w := it.CumWeight - prev
		prev = it.CumWeight
		u := g.Random()
		for u <= 0 {
			u = g.Random()
		}
		keys[i] = keyed{key: pow1over(u, w), idx: i}
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].key > keys[j].key })
	out := make([]interface{}, m)
	for i := 0; i < m; i++ {
		out[i] = d.Items[keys[i].idx].Value
	}
	return out, nil
}

func (d WeightedCategorical) itemsToList() []interface{} {
	out := make([]interface{}, len(d.Items))
	for i, it := range d.Items {
		out[i] = []interface{}{it.Value, it.CumWeight}
	}
	return out
}

func (d WeightedCategorical) ToList() []interface{} {
	return []interface{}{d.Tag(), d.itemsToList()}
}

func (d WeightedCategorical) ToDict() map[string]interface{} {
	return map[string]interface{}{"distribution": d.Tag(), "items": d.itemsToList()}
}

func (d WeightedCategorical) Equal(other Distribution) bool {
	o, ok := other.(WeightedCategorical)
	if !ok || len(d.Items) != len(o.Items) {
		return false
	}
	for i := range d.Items {
		if d.Items[i].CumWeight != o.Items[i].CumWeight || !equalAny(d.Items[i].Value, o.Items[i].Value) {
			return false
		}
	}
	return true
}

func (d WeightedCategorical) String() string {
	return "weightedcategorical(items=" + reprValue(d.itemsToList()) + ")"
}
