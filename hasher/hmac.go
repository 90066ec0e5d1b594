// Copyright (c) 2022, superwindstorm <fengwd.hc@gmail.com>
// All rights reserved.
// Use of this source code is governed by a BSD 3-Clause
// license that can be found in the LICENSE file.

package hasher

import "github.com/superwindstorm/sha512x64/wordarray"

const (
	ipad = 0x36363636
	opad = 0x5c5c5c5c
)

// HMAC computes Hash(oKey || Hash(iKey || message)) as in RFC 2104.
type HMAC struct {
	hasher *Hasher
	iKey   *wordarray.WordArray
	oKey   *wordarray.WordArray
}

// NewHMAC keys algo with key. Keys longer than one block are hashed
// first; shorter ones are zero padded. key is not modified.
func NewHMAC(algo Algorithm, key *wordarray.WordArray) *HMAC {
	h := New(algo)
	blockSize := algo.BlockSize()

	if key.SigBytes > blockSize*4 {
		// a fresh Hasher cannot be finalized already
		key, _ = h.Finalize(key)
		h.Reset()
	} else {
		key = key.Clone()
	}
	key.Clamp()
	for len(key.Words) < blockSize {
		key.Words = append(key.Words, 0)
	}

	iKey := wordarray.New(make([]uint32, blockSize), blockSize*4)
	oKey := wordarray.New(make([]uint32, blockSize), blockSize*4)
	for i, w := range key.Words[:blockSize] {
		iKey.Words[i] = w ^ ipad
		oKey.Words[i] = w ^ opad
	}

	m := &HMAC{hasher: h, iKey: iKey, oKey: oKey}
	m.Reset()
	return m
}

// Reset restarts the MAC with the same key.
func (m *HMAC) Reset() {
	m.hasher.Reset()
	// cannot fail right after Reset
	_ = m.hasher.Update(m.iKey)
}

// Update feeds message bytes.
func (m *HMAC) Update(msg *wordarray.WordArray) error {
	return m.hasher.Update(msg)
}

// UpdateString decodes s with enc (nil for the default encoder) and
// feeds the result.
func (m *HMAC) UpdateString(s string, enc wordarray.Encoder) error {
	return m.hasher.UpdateString(s, enc)
}

// Finalize feeds msg, if not nil, and returns the MAC. m stays
// finalized until Reset.
func (m *HMAC) Finalize(msg *wordarray.WordArray) (*wordarray.WordArray, error) {
	inner, err := m.hasher.Finalize(msg)
	if err != nil {
		return nil, err
	}
	m.hasher.Reset()
	if err := m.hasher.Update(m.oKey); err != nil {
		return nil, err
	}
	return m.hasher.Finalize(inner)
}

// Clone returns an independent copy of m. The padded keys are never
// written to, so the copy shares them.
func (m *HMAC) Clone() *HMAC {
	return &HMAC{hasher: m.hasher.Clone(), iKey: m.iKey, oKey: m.oKey}
}

// Size is the MAC length in bytes.
func (m *HMAC) Size() int { return m.hasher.Size() }

// BlockSize is the block length in bytes.
func (m *HMAC) BlockSize() int { return m.hasher.BlockSize() }

func (m *HMAC) fork() Streamer { return m.Clone() }
