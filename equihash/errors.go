// Copyright 2019 The Equihash-Go Authors. All rights reserved.
// Use of this source code is governed by a GNU GENERAL PUBLIC LICENSE v3
// license that can be found in the LICENSE file.

package equihash

import "errors"

// Rejection reasons Verify can return. Every one is fatal for the
// verification it occurred in; none is retryable.
var (
	// ErrLengthMismatch means the solution wasn't exactly SolutionWidth
	// bytes.
	ErrLengthMismatch = errors.New("equihash: solution length mismatch")

	// ErrInvalidCollision means a pair of StepRows at some round didn't
	// agree on their leading CollisionByteLength bytes.
	ErrInvalidCollision = errors.New("equihash: invalid collision")

	// ErrOutOfOrder means the right-hand StepRow of a pair precedes the
	// left-hand one lexicographically.
	ErrOutOfOrder = errors.New("equihash: indices out of canonical order")

	// ErrRepeatedIndex means two StepRows being merged share an index.
	ErrRepeatedIndex = errors.New("equihash: repeated index across siblings")

	// ErrNonZeroTerminal means the fully-merged StepRow's hash region
	// isn't all zero.
	ErrNonZeroTerminal = errors.New("equihash: non-zero terminal hash")

	// ErrInvalidParameters means Params, the BitPacker, or the IndexCodec
	// were called with inconsistent widths. Reachable only through a
	// programming error given fixed N and K.
	ErrInvalidParameters = errors.New("equihash: invalid parameters")
)
