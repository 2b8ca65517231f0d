// engine_test.go -- test suite for the sequence engine
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

// TestNextBlockPureFunction checks P1: next_block at (seed, i) equals
// H(seed_hash(seed), i).
func TestNextBlockPureFunction(t *testing.T) {
	assert := newAsserter(t)

	e := New(IntSeed(42))
	seedHash := e.seedHash
	for i := uint64(0); i < 10; i++ {
		got := e.NextBlock()
		want := blockHash(seedHash, i)
		assert(got == want, "block %d: got %x want %x", i, got, want)
	}
}

// TestEqualSeedsCoincide checks P6: engines with equal seeds produce
// identical block streams.
func TestEqualSeedsCoincide(t *testing.T) {
	assert := newAsserter(t)

	e1 := New(TextSeed("hello world"))
	e2 := New(TextSeed("hello world"))
	for i := 0; i < 20; i++ {
		assert(e1.NextBlock() == e2.NextBlock(), "block %d diverged", i)
	}
}

// TestDifferentSeedKindsDontCollide verifies the seed-kind discriminator:
// the integer 12345 and the text "12345" hash differently.
func TestDifferentSeedKindsDontCollide(t *testing.T) {
	assert := newAsserter(t)

	e1 := New(IntSeed(12345))
	e2 := New(TextSeed("12345"))
	assert(e1.seedHash != e2.seedHash, "int and text seed collided")
}

// TestModeViolation checks P4: forbidden operations inside a cascade return
// ErrModeViolation and leave the index unchanged, so the only movement seen
// after the cascade closes is the single step its release adds.
func TestModeViolation(t *testing.T) {
	assert := newAsserter(t)

	e := New(IntSeed(7))
	idxBefore, _ := e.Index()

	g := e.Cascade()
	defer g.Close()

	_, err := e.Index()
	assert(errors.Is(err, ErrModeViolation), "Index during cascade: expected ModeViolation, got %v", err)

	err = e.Reset()
	assert(errors.Is(err, ErrModeViolation), "Reset during cascade: expected ModeViolation, got %v", err)

	err = e.SetIndex(99)
	assert(errors.Is(err, ErrModeViolation), "SetIndex during cascade: expected ModeViolation, got %v", err)

	_, err = e.Snapshot()
	assert(errors.Is(err, ErrModeViolation), "Snapshot during cascade: expected ModeViolation, got %v", err)

	g.Close()
	idxAfter, err := e.Index()
	assert(err == nil, "Index after cascade close: %v", err)
	assert(idxAfter == idxBefore+1, "index mutated during rejected ops: before=%d after=%d (want before+1 from cascade release)", idxBefore, idxAfter)
}

// TestCascadeAdvancesOuterIndexByOne checks P5: after a cascade with n
// internal draws, the outer index advances by exactly one, and the next
// block matches H(seed_hash, old_index+1).
func TestCascadeAdvancesOuterIndexByOne(t *testing.T) {
	assert := newAsserter(t)

	e := New(IntSeed(99))
	before, _ := e.Index()

	g := e.Cascade()
	for i := 0; i < 7; i++ {
		e.NextBlock()
	}
	g.Close()

	after, _ := e.Index()
	assert(after == before+1, "outer index: before=%d after=%d", before, after)

	got := e.NextBlock()
	want := blockHash(e.seedHash, before+1)
	assert(got == want, "block at new index: got %x want %x", got, want)
}

// TestNestedCascadesSelfSimilar checks I4: nested cascades are permitted and
// release cleanly back to the outer cascade, still only advancing the
// outermost index by one on full exit.
func TestNestedCascadesSelfSimilar(t *testing.T) {
	assert := newAsserter(t)

	e := New(IntSeed(5))
	before, _ := e.Index()

	outer := e.Cascade()
	assert(e.InCascade(), "expected InCascade after outer open")
	inner := e.Cascade()
	assert(e.InCascade(), "expected InCascade while nested")
	e.NextBlock()
	inner.Close()
	assert(e.InCascade(), "expected still InCascade after inner close")
	e.NextBlock()
	outer.Close()
	assert(!e.InCascade(), "expected flat after outer close")

	after, _ := e.Index()
	assert(after == before+1, "nested cascade should still advance outer index by exactly one: before=%d after=%d", before, after)
}

// TestCascadeGuardIdempotentClose verifies Close is safe to call more than
// once (the deferred-release idiom relies on this).
func TestCascadeGuardIdempotentClose(t *testing.T) {
	e := New(IntSeed(1))
	g := e.Cascade()
	g.Close()
	g.Close()
	if e.InCascade() {
		t.Fatalf("expected flat after double close")
	}
}

// TestSnapshotRestoreExact checks P7: restoring a snapshot reproduces the
// exact state, and subsequent draws match those that would have followed.
func TestSnapshotRestoreExact(t *testing.T) {
	assert := newAsserter(t)

	e := New(IntSeed(123456))
	for i := 0; i < 5; i++ {
		e.NextBlock()
	}
	snap, err := e.Snapshot()
	assert(err == nil, "Snapshot: %v", err)

	var expected []uint64
	for i := 0; i < 5; i++ {
		expected = append(expected, e.NextBlock())
	}

	err = e.Restore(snap)
	assert(err == nil, "Restore: %v", err)
	for i, want := range expected {
		got := e.NextBlock()
		assert(got == want, "post-restore block %d: got %x want %x", i, got, want)
	}
}

func TestSnapshotDictRoundTrip(t *testing.T) {
	assert := newAsserter(t)

	e := New(TextSeed("round trip"))
	e.NextBlock()
	e.NextBlock()
	snap, err := e.Snapshot()
	assert(err == nil, "Snapshot: %v", err)

	d := snap.ToDict()
	got, err := SnapshotFromDict(d)
	assert(err == nil, "SnapshotFromDict: %v", err)
	assert(got.SeedHash == snap.SeedHash, "seed_hash mismatch")
	assert(got.Index == snap.Index, "index mismatch")
}

// TestGetRandBitsConsumesOneOuterIndex checks P8 for both the <=64 and >64
// branches.
func TestGetRandBitsConsumesOneOuterIndex(t *testing.T) {
	assert := newAsserter(t)

	e := New(IntSeed(1))
	before, _ := e.Index()
	e.GetRandBits(40)
	after, _ := e.Index()
	assert(after == before+1, "k<=64: before=%d after=%d", before, after)

	before, _ = e.Index()
	e.GetRandBits(130)
	after, _ = e.Index()
	assert(after == before+1, "k>64: before=%d after=%d", before, after)
}

// TestShufflePreservesMultisetAndIndex checks P9.
func TestShufflePreservesMultisetAndIndex(t *testing.T) {
	assert := newAsserter(t)

	e := New(IntSeed(2))
	data := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	before, _ := e.Index()
	e.Shuffle(len(data), func(i, j int) { data[i], data[j] = data[j], data[i] })
	after, _ := e.Index()
	assert(after == before+1, "shuffle should consume exactly one outer index: before=%d after=%d", before, after)

	seen := make(map[int]bool)
	for _, v := range data {
		seen[v] = true
	}
	assert(len(seen) == 10, "shuffle lost or duplicated elements: %v", data)
}

func TestRandRangeEmptyRange(t *testing.T) {
	e := New(IntSeed(1))
	_, err := e.RandRange(5, 5, 1)
	if !errors.Is(err, ErrIndexRejected) {
		t.Fatalf("expected ErrIndexRejected, got %v", err)
	}
}

func TestRandRangeStepZero(t *testing.T) {
	e := New(IntSeed(1))
	_, err := e.RandRange(1, 2, 0)
	if !errors.Is(err, ErrValueRejected) {
		t.Fatalf("expected ErrValueRejected, got %v", err)
	}
}

func TestChoiceEmpty(t *testing.T) {
	e := New(IntSeed(1))
	_, err := e.Choice(0)
	if !errors.Is(err, ErrIndexRejected) {
		t.Fatalf("expected ErrIndexRejected, got %v", err)
	}
}

func TestSampleEmptyPopulationPositiveK(t *testing.T) {
	e := New(IntSeed(1))
	_, err := e.Sample(0, 1)
	if !errors.Is(err, ErrIndexRejected) {
		t.Fatalf("expected ErrIndexRejected, got %v", err)
	}
}

func TestSampleZeroKEmptyResult(t *testing.T) {
	e := New(IntSeed(1))
	got, err := e.Sample(1, 0)
	if err != nil {
		t.Fatalf("Sample(1, 0): %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %v", got)
	}
}

func TestChoicesWeightsAndCumWeightsConflict(t *testing.T) {
	e := New(IntSeed(1))
	_, err := e.Choices(2, 1, []float64{1, 2}, []float64{1, 2})
	if !errors.Is(err, ErrArgConflict) {
		t.Fatalf("expected ErrArgConflict, got %v", err)
	}
}

func TestChoicesLengthMismatch(t *testing.T) {
	e := New(IntSeed(1))
	_, err := e.Choices(1, 1, []float64{1.0, 2.0}, nil)
	if !errors.Is(err, ErrValueRejected) {
		t.Fatalf("expected ErrValueRejected, got %v", err)
	}
}

func TestTriangularLowGreaterThanHigh(t *testing.T) {
	e := New(IntSeed(1))
	_, err := e.Triangular(2.0, 1.0, 1.5)
	if !errors.Is(err, ErrValueRejected) {
		t.Fatalf("expected ErrValueRejected, got %v", err)
	}
}

func TestTriangularDegenerate(t *testing.T) {
	e := New(IntSeed(1))
	got, err := e.Triangular(2, 2, 2)
	if err != nil {
		t.Fatalf("Triangular(2,2,2): %v", err)
	}
	if got != 2.0 {
		t.Fatalf("expected 2.0, got %v", got)
	}
}

func TestParetoRejectsNonPositive(t *testing.T) {
	e := New(IntSeed(1))
	_, err := e.Paretovariate(0)
	if !errors.Is(err, ErrValueRejected) {
		t.Fatalf("expected ErrValueRejected, got %v", err)
	}
}

func TestWeibullRejectsNonPositiveBeta(t *testing.T) {
	e := New(IntSeed(1))
	_, err := e.Weibullvariate(1, 0)
	if !errors.Is(err, ErrValueRejected) {
		t.Fatalf("expected ErrValueRejected, got %v", err)
	}
}

func TestGammaRejectsNonPositive(t *testing.T) {
	e := New(IntSeed(1))
	_, err := e.GammaVariate(-1, -1)
	if !errors.Is(err, ErrValueRejected) {
		t.Fatalf("expected ErrValueRejected, got %v", err)
	}
}

// TestRouletteWheel checks S8: a roulette draw over cumulative weights
// [1,3,6,10] with an input ramp of 0..99/100 lands on [0]*10+[1]*20+[2]*30+[3]*40.
func TestRouletteWheel(t *testing.T) {
	cw := []float64{1, 3, 6, 10}
	var counts [4]int
	for i := 0; i < 100; i++ {
		u := float64(i) / 100.0 * 10.0
		idx := sampleDiscreteRoulette(u, cw)
		counts[idx]++
	}
	want := [4]int{10, 20, 30, 40}
	if counts != want {
		t.Fatalf("roulette distribution mismatch: got %v want %v", counts, want)
	}
}
