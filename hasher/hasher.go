// Copyright (c) 2022, superwindstorm <fengwd.hc@gmail.com>
// All rights reserved.
// Use of this source code is governed by a BSD 3-Clause
// license that can be found in the LICENSE file.

// Package hasher drives block hash algorithms over arbitrary sized input.
//
// A Hasher buffers input in a WordArray, hands every complete block to
// its Algorithm, and on Finalize lets the algorithm pad the remainder
// and export its digest. HMAC wraps any Algorithm into a keyed hash.
package hasher

import (
	"errors"

	"github.com/superwindstorm/sha512x64/wordarray"
)

// ErrFinalized is returned when a finalized Hasher is used without Reset.
var ErrFinalized = errors.New("hasher: already finalized")

// Algorithm is the block function of a hash together with its state.
type Algorithm interface {
	// BlockSize is the block length in 32-bit words.
	BlockSize() int
	// Size is the digest length in bytes.
	Size() int
	// Reset loads the initial state.
	Reset()
	// ProcessBlock compresses words[offset:offset+BlockSize()].
	ProcessBlock(words []uint32, offset int)
	// Pad appends the final padding and the length of nBytes input bytes
	// to data, leaving a whole number of blocks.
	Pad(data *wordarray.WordArray, nBytes uint64)
	// Digest exports the current state.
	Digest() *wordarray.WordArray
	// Clone returns an independent copy of the state.
	Clone() Algorithm
}

// State is the lifecycle position of a Hasher.
type State int

const (
	Empty State = iota
	Accumulating
	Finalized
)

func (s State) String() string {
	switch s {
	case Empty:
		return "empty"
	case Accumulating:
		return "accumulating"
	case Finalized:
		return "finalized"
	}
	return "unknown"
}

// Hasher is the streaming state of one hash computation. It is not safe
// for concurrent use; use one Hasher per computation.
type Hasher struct {
	algo   Algorithm
	data   *wordarray.WordArray
	nBytes uint64
	state  State
}

// New returns a Hasher over algo, reset to its initial state.
func New(algo Algorithm) *Hasher {
	h := &Hasher{algo: algo}
	h.Reset()
	return h
}

// Reset discards all input and returns h to the Empty state.
func (h *Hasher) Reset() {
	h.algo.Reset()
	h.data = wordarray.New(nil, 0)
	h.nBytes = 0
	h.state = Empty
}

// Update feeds the significant bytes of data. data is not modified.
func (h *Hasher) Update(data *wordarray.WordArray) error {
	if h.state == Finalized {
		return ErrFinalized
	}
	h.data.Concat(data)
	h.nBytes += uint64(data.SigBytes)
	if h.nBytes > 0 {
		h.state = Accumulating
	}
	h.process()
	return nil
}

// UpdateString decodes s with enc (nil for the default encoder) and
// feeds the result.
func (h *Hasher) UpdateString(s string, enc wordarray.Encoder) error {
	data, err := wordarray.Parse(s, enc)
	if err != nil {
		return err
	}
	return h.Update(data)
}

// Finalize feeds data, if not nil, pads the input and returns the digest.
// h stays Finalized until Reset.
func (h *Hasher) Finalize(data *wordarray.WordArray) (*wordarray.WordArray, error) {
	if h.state == Finalized {
		return nil, ErrFinalized
	}
	if data != nil {
		if err := h.Update(data); err != nil {
			return nil, err
		}
	}
	h.algo.Pad(h.data, h.nBytes)
	h.process()
	h.state = Finalized
	return h.algo.Digest(), nil
}

// process compresses every whole block in the buffer and keeps the
// remainder.
func (h *Hasher) process() {
	blockSize := h.algo.BlockSize()
	nWords := h.data.SigBytes / (blockSize * 4) * blockSize
	if nWords == 0 {
		return
	}
	for off := 0; off < nWords; off += blockSize {
		h.algo.ProcessBlock(h.data.Words, off)
	}
	n := copy(h.data.Words, h.data.Words[nWords:])
	h.data.Words = h.data.Words[:n]
	h.data.SigBytes -= nWords * 4
}

// Clone returns an independent copy of h.
func (h *Hasher) Clone() *Hasher {
	return &Hasher{
		algo:   h.algo.Clone(),
		data:   h.data.Clone(),
		nBytes: h.nBytes,
		state:  h.state,
	}
}

// State reports where h is in its lifecycle.
func (h *Hasher) State() State { return h.state }

// Len is the number of bytes fed so far.
func (h *Hasher) Len() uint64 { return h.nBytes }

// Size is the digest length in bytes.
func (h *Hasher) Size() int { return h.algo.Size() }

// BlockSize is the block length in bytes.
func (h *Hasher) BlockSize() int { return h.algo.BlockSize() * 4 }

func (h *Hasher) fork() Streamer { return h.Clone() }
