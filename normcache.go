// normcache.go -- bounded cache of expensive distribution cumulative-weight tables
//
// (c) 2024 the go-seqrand authors
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim is made to its
// suitability for any purpose.

package seqrand

import (
	"fmt"
	"math"

	lru "github.com/opencoff/golang-lru"
)

// normCacheCapacity bounds how many (kind, s, q, n) cumulative-weight tables
// we keep around. Distribution instances are immutable and frequently
// reconstructed (e.g. once per FromDict call in a deserialization loop, or
// once per call into the engine's own ZipfMandelbrot/FiniteGeometric
// methods), so without a bound this would otherwise rebuild an O(n) table
// on every sample -- the same "opportunistic, bounded" caching role the
// teacher's DBReader plays for on-disk records.
const normCacheCapacity = 4096

var normCache *lru.ARCCache

func init() {
	c, err := lru.NewARC(normCacheCapacity)
	if err != nil {
		panic(fmt.Sprintf("seqrand: could not allocate normalization cache: %s", err))
	}
	normCache = c
}

type normKey struct {
	kind string
	s, q float64
	n    int
}

type normTable struct {
	cumWeights []float64
	total      float64
}

// zipfMandelbrotTable returns the cumulative-weight table and total for the
// Zipf-Mandelbrot distribution over {0, ..., n-1} with exponent s and offset
// q, building and caching it on first use.
func zipfMandelbrotTable(s, q float64, n int) (cumWeights []float64, total float64) {
	key := normKey{kind: "zipf", s: s, q: q, n: n}
	if v, ok := normCache.Get(key); ok {
		t := v.(normTable)
		return append([]float64(nil), t.cumWeights...), t.total
	}

	cw := make([]float64, n)
	acc := 0.0
	for i := 0; i < n; i++ {
		acc += 1.0 / math.Pow(float64(i)+1.0+q, s)
		cw[i] = acc
	}
	normCache.Add(key, normTable{cumWeights: cw, total: acc})
	return append([]float64(nil), cw...), acc
}

// finiteGeometricTable returns the cumulative-weight table and total for the
// truncated geometric distribution with decay rate s over {0, ..., n-1},
// building and caching it on first use.
func finiteGeometricTable(s float64, n int) (cumWeights []float64, total float64) {
	key := normKey{kind: "finitegeom", s: s, n: n}
	if v, ok := normCache.Get(key); ok {
		t := v.(normTable)
		return append([]float64(nil), t.cumWeights...), t.total
	}

	cw := make([]float64, n)
	acc := 0.0
	r := math.Exp(-s)
	w := 1.0
	for i := 0; i < n; i++ {
		acc += w
		cw[i] = acc
		w *= r
	}
	normCache.Add(key, normTable{cumWeights: cw, total: acc})
	return append([]float64(nil), cw...), acc
}
