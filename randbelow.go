// randbelow.go -- rejection-sampling core shared by randrange/choice/sample/choices
//
// (c) 2024 the go-seqrand authors
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim is made to its
// suitability for any purpose.

package seqrand

import "math/bits"

// rawBits draws one block and masks it to the low k bits (k in [0, 64]).
// It always consumes exactly one block, dispatched through drawBlock so it
// behaves correctly whether or not the engine is currently cascading.
func (e *Engine) rawBits(k int) uint64 {
	blk := e.drawBlock()
	switch {
	case k <= 0:
		return 0
	case k >= 64:
		return blk
	default:
		return blk & ((uint64(1) << uint(k)) - 1)
	}
}

// randBelow returns a uniform value in [0, n) using rejection sampling over
// the smallest number of bits that cover the range, so there is no modulo
// bias. The whole retry loop runs inside one cascade, so callers (RandRange,
// RandInt, Choice) each consume exactly one outer index no matter how many
// rejections occur. Shuffle, Sample and Choices instead call
// mustRandBelowCascaded inside their own single cascade.
func (e *Engine) randBelow(n uint64) (uint64, error) {
	if n == 0 {
		return 0, valueRejected("randBelow", "n must be > 0, got 0")
	}
	if n == 1 {
		// still consumes a block, for index-accounting consistency.
		e.withCascade(func() {
			e.rawBits(0)
		})
		return 0, nil
	}

	k := bits.Len64(n - 1)
	var result uint64
	e.withCascade(func() {
		for {
			v := e.rawBits(k)
			if v < n {
				result = v
				return
			}
		}
	})
	return result, nil
}
