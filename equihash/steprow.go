// Copyright 2019 The Equihash-Go Authors. All rights reserved.
// Use of this source code is governed by a GNU GENERAL PUBLIC LICENSE v3
// license that can be found in the LICENSE file.

package equihash

import "bytes"

// stepRow is the working element of a verification round: a collision
// prefix of hash bits plus the indices that contributed to it, stored in
// canonical order. At level 0 it holds one hash word and one index; at
// level l it holds 2^l indices.
type stepRow struct {
	hash    []byte // hashLen bytes for the current level
	indices []byte // 4*2^level bytes: big-endian indices, concatenated
}

// newLeafRow builds the level-0 StepRow for index i: the N-bit slice of
// hash block i/IndicesPerHashOutput starting at index i's offset within
// it, expanded to HashLength bytes.
func newLeafRow(base *baseState, p Params, i uint32) (stepRow, error) {
	ipho := p.indicesPerHashOutput()
	block, err := base.generateHash(i / uint32(ipho))
	if err != nil {
		return stepRow{}, err
	}

	wordLen := p.N / 8
	off := int(i%uint32(ipho)) * wordLen
	word := block[off : off+wordLen]

	hash, err := expandArray(word, uint(p.collisionBitLength()), 0)
	if err != nil {
		return stepRow{}, err
	}

	idx := indexToBytes(i)
	return stepRow{hash: hash, indices: idx[:]}, nil
}

// collide reports whether a and b agree on their leading collisionByteLen
// bytes of hash.
func collide(a, b stepRow, collisionByteLen int) bool {
	return bytes.Equal(a.hash[:collisionByteLen], b.hash[:collisionByteLen])
}

// distinct reports whether a and b's index sets are disjoint.
func distinct(a, b stepRow) bool {
	for i := 0; i < len(a.indices); i += 4 {
		ai := a.indices[i : i+4]
		for j := 0; j < len(b.indices); j += 4 {
			if bytes.Equal(ai, b.indices[j:j+4]) {
				return false
			}
		}
	}
	return true
}

// merge combines a and b at a round whose collision prefix is
// collisionByteLen bytes wide, producing the next level's StepRow: the
// XOR of their hash regions with the (now-zero) collision prefix
// stripped, and their index regions concatenated with the
// lexicographically smaller one first.
func merge(a, b stepRow, collisionByteLen int) stepRow {
	hashLen := len(a.hash)
	next := make([]byte, hashLen-collisionByteLen)
	for i := collisionByteLen; i < hashLen; i++ {
		next[i-collisionByteLen] = a.hash[i] ^ b.hash[i]
	}

	var indices []byte
	if bytes.Compare(a.indices, b.indices) <= 0 {
		indices = append(append([]byte(nil), a.indices...), b.indices...)
	} else {
		indices = append(append([]byte(nil), b.indices...), a.indices...)
	}

	return stepRow{hash: next, indices: indices}
}

// isZero reports whether every byte of hash is zero.
func isZero(hash []byte) bool {
	for _, b := range hash {
		if b != 0 {
			return false
		}
	}
	return true
}
