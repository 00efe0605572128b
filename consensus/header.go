// Copyright 2018 The Gringo Developers. All rights reserved.
// Use of this source code is governed by a GNU GENERAL PUBLIC LICENSE v3
// license that can be found in the LICENSE file.

package consensus

import (
	"bytes"
	"fmt"
	"io"
)

// prefixLen and nonceLen are the sizes equihash.Verify expects a header to
// split into: a 108-byte prefix and a 32-byte nonce.
const (
	prefixLen = 108
	nonceLen  = 32
)

// BlockHeader is the thin carrier the proof of work is checked against: the
// serialized block prefix a miner cannot vary and the nonce it searches
// over. It does not model the rest of a block (Merkle roots, transaction
// lists, difficulty); those belong to a full chain package this repository
// does not implement.
type BlockHeader struct {
	Prefix [prefixLen]byte
	Nonce  [nonceLen]byte
}

// Bytes concatenates Prefix and Nonce into the 140-byte buffer
// equihash.Verify takes as its header argument.
func (h *BlockHeader) Bytes() []byte {
	buff := make([]byte, 0, prefixLen+nonceLen)
	buff = append(buff, h.Prefix[:]...)
	buff = append(buff, h.Nonce[:]...)
	return buff
}

// Read deserializes a BlockHeader from r.
func (h *BlockHeader) Read(r io.Reader) error {
	if _, err := io.ReadFull(r, h.Prefix[:]); err != nil {
		return fmt.Errorf("read header prefix: %w", err)
	}
	if _, err := io.ReadFull(r, h.Nonce[:]); err != nil {
		return fmt.Errorf("read header nonce: %w", err)
	}
	return nil
}

// NewBlockHeader builds a BlockHeader from a 140-byte buffer previously
// produced by Bytes.
func NewBlockHeader(buf []byte) (*BlockHeader, error) {
	h := new(BlockHeader)
	if err := h.Read(bytes.NewReader(buf)); err != nil {
		return nil, err
	}
	return h, nil
}
