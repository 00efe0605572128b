// Copyright 2019 The Equihash-Go Authors. All rights reserved.
// Use of this source code is governed by a GNU GENERAL PUBLIC LICENSE v3
// license that can be found in the LICENSE file.

package equihash

import "encoding/binary"

// indexToBytes renders i as 4 big-endian bytes, so that lexicographic
// comparison of the bytes agrees with integer comparison of the indices.
func indexToBytes(i uint32) [4]byte {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], i)
	return b
}

// bytesToIndex is the inverse of indexToBytes.
func bytesToIndex(b []byte) uint32 {
	return binary.BigEndian.Uint32(b)
}

// indicesFromMinimal expands a minimally-encoded solution — NumIndices
// indices, each CollisionBitLength+1 bits wide, packed with no padding —
// back into NumIndices big-endian 32-bit indices.
func indicesFromMinimal(p Params, solution []byte) ([]uint32, error) {
	if len(solution) != p.SolutionWidth() {
		return nil, ErrLengthMismatch
	}

	bitLen := uint(p.collisionBitLength() + 1)
	bytePad := uint(4) - (bitLen+7)/8

	expanded, err := expandArray(solution, bitLen, bytePad)
	if err != nil {
		return nil, err
	}

	n := p.NumIndices()
	indices := make([]uint32, n)
	for i := 0; i < n; i++ {
		indices[i] = bytesToIndex(expanded[i*4 : i*4+4])
	}
	return indices, nil
}
