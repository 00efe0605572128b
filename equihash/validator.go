// Copyright 2019 The Equihash-Go Authors. All rights reserved.
// Use of this source code is governed by a GNU GENERAL PUBLIC LICENSE v3
// license that can be found in the LICENSE file.

package equihash

import "bytes"

// Verify reports whether solution is a valid Equihash proof of work for
// header at parameters (n, k). header must be exactly 140 bytes: a
// 108-byte prefix followed by a 32-byte nonce. solution must be exactly
// Params{n,k}.SolutionWidth() bytes. The error, when non-nil, names the
// reason for rejection; callers that only need the boolean can discard
// it.
func Verify(n, k int, header, solution []byte) (bool, error) {
	p, err := NewParams(n, k)
	if err != nil {
		return false, err
	}
	return p.Verify(header, solution)
}

// Verify is the Params-bound form of the package-level Verify.
func (p Params) Verify(header, solution []byte) (bool, error) {
	if len(solution) != p.SolutionWidth() {
		return false, ErrLengthMismatch
	}

	indices, err := indicesFromMinimal(p, solution)
	if err != nil {
		return false, err
	}

	base, err := newBaseState(p, header)
	if err != nil {
		return false, err
	}

	rows := make([]stepRow, len(indices))
	for i, idx := range indices {
		row, err := newLeafRow(base, p, idx)
		if err != nil {
			return false, err
		}
		rows[i] = row
	}

	collisionByteLen := p.collisionByteLength()
	for round := 0; round < p.K; round++ {
		next := make([]stepRow, 0, len(rows)/2)
		for i := 0; i < len(rows); i += 2 {
			a, b := rows[i], rows[i+1]

			if !collide(a, b, collisionByteLen) {
				return false, ErrInvalidCollision
			}
			// Strict: equality is unreachable once distinct(a, b) holds,
			// since equal non-empty index regions can never be disjoint.
			if bytes.Compare(b.indices, a.indices) < 0 {
				return false, ErrOutOfOrder
			}
			if !distinct(a, b) {
				return false, ErrRepeatedIndex
			}

			next = append(next, merge(a, b, collisionByteLen))
		}
		rows = next
	}

	if !isZero(rows[0].hash) {
		return false, ErrNonZeroTerminal
	}
	return true, nil
}
