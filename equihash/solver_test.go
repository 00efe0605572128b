// Copyright 2019 The Equihash-Go Authors. All rights reserved.
// Use of this source code is governed by a GNU GENERAL PUBLIC LICENSE v3
// license that can be found in the LICENSE file.

package equihash

import (
	"errors"
	"testing"
)

// solverParams are small enough to solve by brute force in a unit test.
// CollisionBitLength works out to 8, so buckets align on whole bytes.
// Production code only ever verifies at Zcash; nothing here relaxes that.
var solverParams = Params{N: 40, K: 4}

// solve does a direct, unoptimized Wagner search for a valid solution to
// header at p: it hashes every index in [0, 2^(CollisionBitLength+1)), then
// repeatedly buckets the current level's StepRows by their leading
// collision bytes and merges every same-bucket pair with the package's own
// collide/distinct/merge helpers. A StepRow it produces is valid by
// construction, since it is built with exactly the checks Verify runs
// against it. It reports (nil, false) if no solution turns up, which the
// caller retries with a different nonce.
func solve(p Params, header []byte) ([]uint32, bool) {
	base, err := newBaseState(p, header)
	if err != nil {
		return nil, false
	}

	rangeSize := uint32(1) << uint(p.collisionBitLength()+1)
	rows := make([]stepRow, rangeSize)
	for i := uint32(0); i < rangeSize; i++ {
		r, err := newLeafRow(base, p, i)
		if err != nil {
			return nil, false
		}
		rows[i] = r
	}

	collisionByteLen := p.collisionByteLength()
	for round := 0; round < p.K; round++ {
		buckets := make(map[string][]stepRow, len(rows))
		for _, r := range rows {
			key := string(r.hash[:collisionByteLen])
			buckets[key] = append(buckets[key], r)
		}

		var next []stepRow
		for _, bucket := range buckets {
			for i := 0; i < len(bucket); i++ {
				for j := i + 1; j < len(bucket); j++ {
					if !distinct(bucket[i], bucket[j]) {
						continue
					}
					next = append(next, merge(bucket[i], bucket[j], collisionByteLen))
				}
			}
		}
		if len(next) == 0 {
			return nil, false
		}
		rows = next
	}

	for _, r := range rows {
		if isZero(r.hash) {
			indices := make([]uint32, p.NumIndices())
			for i := range indices {
				indices[i] = bytesToIndex(r.indices[i*4 : i*4+4])
			}
			return indices, true
		}
	}
	return nil, false
}

// findSolution retries solve across synthetic nonces until one yields a
// solution, and returns the header it solved plus the winning indices.
// Each attempt succeeds roughly three times in four at solverParams, so a
// few hundred attempts make failure astronomically unlikely without
// slowing the test suite down.
func findSolution(t *testing.T, p Params) (header []byte, indices []uint32) {
	t.Helper()

	h := testHeader()
	for attempt := 0; attempt < 500; attempt++ {
		h[len(h)-1] = byte(attempt)
		h[len(h)-2] = byte(attempt >> 8)

		if idx, ok := solve(p, h); ok {
			return append([]byte(nil), h...), idx
		}
	}

	t.Fatal("findSolution: no solution found within attempt budget")
	return nil, nil
}

// encodeIndices renders indices in the minimal solution encoding for p.
func encodeIndices(p Params, indices []uint32) []byte {
	return packBits(indices, uint(p.collisionBitLength()+1), len(indices))
}

func TestVerifyAcceptsGenuineSolution(t *testing.T) {
	header, indices := findSolution(t, solverParams)
	solution := encodeIndices(solverParams, indices)

	ok, err := solverParams.Verify(header, solution)
	if !ok || err != nil {
		t.Fatalf("Verify(genuine solution) = (%v, %v), want (true, nil)", ok, err)
	}
}

func TestVerifyRejectsTruncatedSolution(t *testing.T) {
	header, indices := findSolution(t, solverParams)
	solution := encodeIndices(solverParams, indices)

	ok, err := solverParams.Verify(header, solution[:len(solution)-1])
	if ok || !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("Verify(truncated) = (%v, %v), want (false, ErrLengthMismatch)", ok, err)
	}
}

func TestVerifyRejectsBitFlippedSolution(t *testing.T) {
	header, indices := findSolution(t, solverParams)
	solution := encodeIndices(solverParams, indices)
	solution[len(solution)/2] ^= 0x40

	ok, err := solverParams.Verify(header, solution)
	if ok {
		t.Fatal("Verify(bit-flipped) = true, want false")
	}
	if err == nil {
		t.Error("Verify(bit-flipped) returned no error explaining the rejection")
	}
}

func TestVerifyRejectsSwappedIndexOrder(t *testing.T) {
	header, indices := findSolution(t, solverParams)

	swapped := append([]uint32(nil), indices...)
	// Swap the first pair: a valid solution's indices are never in
	// descending order within a pair, so this always breaks ordering.
	swapped[0], swapped[1] = swapped[1], swapped[0]
	solution := encodeIndices(solverParams, swapped)

	// The solver always emits each pair in ascending order, so swapping the
	// first pair always trips the strict ordering check.
	ok, err := solverParams.Verify(header, solution)
	if ok || !errors.Is(err, ErrOutOfOrder) {
		t.Errorf("Verify(swapped pair) = (%v, %v), want (false, ErrOutOfOrder)", ok, err)
	}
}

func TestVerifyRejectsDuplicatedIndex(t *testing.T) {
	header, indices := findSolution(t, solverParams)

	duplicated := append([]uint32(nil), indices...)
	duplicated[1] = duplicated[0]
	solution := encodeIndices(solverParams, duplicated)

	ok, err := solverParams.Verify(header, solution)
	if ok || !errors.Is(err, ErrRepeatedIndex) {
		t.Errorf("Verify(duplicated index) = (%v, %v), want (false, ErrRepeatedIndex)", ok, err)
	}
}

func TestPersonalizationTagIsBoundIntoDigest(t *testing.T) {
	header := testHeader()

	zcash, err := newBaseStateWithTag(solverParams, personalizationTag, header)
	if err != nil {
		t.Fatalf("newBaseStateWithTag(%q): %v", personalizationTag, err)
	}
	other, err := newBaseStateWithTag(solverParams, "ZcashXX", header)
	if err != nil {
		t.Fatalf("newBaseStateWithTag(%q): %v", "ZcashXX", err)
	}

	h1, err := zcash.generateHash(0)
	if err != nil {
		t.Fatalf("generateHash: %v", err)
	}
	h2, err := other.generateHash(0)
	if err != nil {
		t.Fatalf("generateHash: %v", err)
	}

	if string(h1) == string(h2) {
		t.Error("hash block identical across personalization tags, want distinct")
	}
}
