// Copyright 2018 The Gringo Developers. All rights reserved.
// Use of this source code is governed by a GNU GENERAL PUBLIC LICENSE v3
// license that can be found in the LICENSE file.

package consensus

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/dblokhin/equihash/equihash"

	"github.com/dchest/siphash"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/blake2b"
)

// Proof is a block's Equihash proof of work: the (N, K) parameters it was
// mined under and the minimally-encoded solution bytes.
type Proof struct {
	N int
	K int

	Solution []byte
}

var errInvalidPow = errors.New("invalid pow verify")

// NewProof builds a Proof for the Zcash-standard parameters.
func NewProof(solution []byte) Proof {
	return Proof{N: equihash.Zcash.N, K: equihash.Zcash.K, Solution: solution}
}

// Validate checks the proof against header.
func (p *Proof) Validate(header *BlockHeader) error {
	logrus.WithFields(logrus.Fields{
		"n":           p.N,
		"k":           p.K,
		"fingerprint": p.fingerprint(),
	}).Info("validating equihash proof of work")

	ok, err := equihash.Verify(p.N, p.K, header.Bytes(), p.Solution)
	if err != nil {
		logrus.WithError(err).Warn("equihash proof of work rejected")
		return fmt.Errorf("%w: %v", errInvalidPow, err)
	}
	if !ok {
		return errInvalidPow
	}

	return nil
}

// fingerprint is a short SipHash-2-4 digest of the solution bytes, cheap
// enough to attach to every log line without printing the whole solution.
func (p *Proof) fingerprint() uint64 {
	return siphash.Hash(0, 0, p.Solution)
}

// Hash returns a content hash of the proof, for use as a log field or a
// cache key.
func (p *Proof) Hash() []byte {
	sum := blake2b.Sum256(p.Bytes())
	return sum[:]
}

// Bytes serializes the proof: N and K as big-endian uint32s, followed by
// the raw solution bytes.
func (p *Proof) Bytes() []byte {
	buff := new(bytes.Buffer)

	if err := binary.Write(buff, binary.BigEndian, uint32(p.N)); err != nil {
		logrus.Fatal(err)
	}
	if err := binary.Write(buff, binary.BigEndian, uint32(p.K)); err != nil {
		logrus.Fatal(err)
	}
	buff.Write(p.Solution)

	return buff.Bytes()
}

// Read deserializes a Proof previously written by Bytes. solutionWidth is
// the expected length of the solution field, known to the caller from the
// network's equihash.Params{N, K}.SolutionWidth().
func (p *Proof) Read(r io.Reader, solutionWidth int) error {
	var n, k uint32
	if err := binary.Read(r, binary.BigEndian, &n); err != nil {
		return err
	}
	if err := binary.Read(r, binary.BigEndian, &k); err != nil {
		return err
	}
	p.N, p.K = int(n), int(k)

	p.Solution = make([]byte, solutionWidth)
	if _, err := io.ReadFull(r, p.Solution); err != nil {
		return err
	}

	return nil
}
