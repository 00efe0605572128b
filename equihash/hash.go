// Copyright 2019 The Equihash-Go Authors. All rights reserved.
// Use of this source code is governed by a GNU GENERAL PUBLIC LICENSE v3
// license that can be found in the LICENSE file.

package equihash

import (
	"encoding/binary"
	"fmt"

	"github.com/dchest/blake2b"
)

// headerSize is the fixed length of the opaque header the base state is
// built from: a 108-byte prefix followed by a 32-byte nonce.
const headerSize = 108 + 32

// personalizationTag is the eight-byte ASCII prefix of the BLAKE2b
// personalization, fixed by the Zcash consensus rules.
const personalizationTag = "ZcashPoW"

// baseState is the BLAKE2b personalization and header context shared by
// every hash-word derivation within one verification call. Neither
// golang.org/x/crypto/blake2b nor github.com/dchest/blake2b expose a way
// to clone a hash.Hash mid-stream, so instead of cloning a live state per
// index, baseState stores the personalized Config and the raw header
// bytes and replays them into a fresh hasher for each index — the
// "reinitialize per index from the snapshot" option this design allows
// for BLAKE2b libraries with only a consuming finalize.
type baseState struct {
	config *blake2b.Config
	prefix []byte // header prefix ‖ nonce, replayed before every index
}

// newBaseState builds the base state for header at parameters p. header
// must be exactly 140 bytes.
func newBaseState(p Params, header []byte) (*baseState, error) {
	return newBaseStateWithTag(p, personalizationTag, header)
}

// newBaseStateWithTag is newBaseState with the eight-byte personalization
// tag broken out, so tests can show that the tag itself is bound into the
// digest and not just (N, K). Production code only ever calls newBaseState;
// supporting an arbitrary tag is not part of the verified surface.
func newBaseStateWithTag(p Params, tag string, header []byte) (*baseState, error) {
	if len(header) != headerSize {
		return nil, fmt.Errorf("%w: header is %d bytes, want %d", ErrInvalidParameters, len(header), headerSize)
	}

	person := make([]byte, 16)
	copy(person, tag)
	binary.LittleEndian.PutUint32(person[8:12], uint32(p.N))
	binary.LittleEndian.PutUint32(person[12:16], uint32(p.K))

	return &baseState{
		config: &blake2b.Config{Size: uint8(p.hashOutput()), Person: person},
		prefix: append([]byte(nil), header...),
	}, nil
}

// generateHash returns the HashOutput-byte digest for hash block g: a
// fresh BLAKE2b hasher seeded with the shared personalization, updated
// with the header bytes and then the little-endian encoding of g.
func (b *baseState) generateHash(g uint32) ([]byte, error) {
	h, err := blake2b.New(b.config)
	if err != nil {
		return nil, err
	}
	if _, err := h.Write(b.prefix); err != nil {
		return nil, err
	}

	var le [4]byte
	binary.LittleEndian.PutUint32(le[:], g)
	if _, err := h.Write(le[:]); err != nil {
		return nil, err
	}

	return h.Sum(nil), nil
}
