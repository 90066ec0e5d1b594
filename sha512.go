// Copyright (c) 2022, superwindstorm <fengwd.hc@gmail.com>
// All rights reserved.
// Use of this source code is governed by a BSD 3-Clause
// license that can be found in the LICENSE file.

// Package sha512 implements the SHA-512 hash algorithm as defined in
// FIPS 180-4, and HMAC-SHA512 on top of it.
//
// The digest state is kept as pairs of 32-bit halves; the compression
// function runs either on native uint64 words or entirely on the halves.
package sha512

import (
	"hash"

	"github.com/superwindstorm/sha512x64/hasher"
	"github.com/superwindstorm/sha512x64/wordarray"
	"github.com/superwindstorm/sha512x64/x64"
)

type digest struct {
	h     [8]x64.Word
	block func(dig *digest, p []uint32)
}

// NewAlgorithm returns the SHA-512 block function for use with
// package hasher.
func NewAlgorithm() hasher.Algorithm {
	return NewAlgorithmImpl(ImplAuto)
}

// NewAlgorithmImpl is like NewAlgorithm with a chosen engine.
func NewAlgorithmImpl(impl Impl) hasher.Algorithm {
	d := &digest{block: impl.blockFunc()}
	d.Reset()
	return d
}

// NewHasher returns a streaming SHA-512 Hasher.
func NewHasher() *hasher.Hasher {
	return hasher.New(NewAlgorithm())
}

// New returns a new hash.Hash computing the SHA-512 checksum.
func New() hash.Hash {
	return hasher.NewHash(NewHasher())
}

// NewHMAC returns a new hash.Hash computing HMAC-SHA512 with key.
func NewHMAC(key []byte) hash.Hash {
	return hasher.NewHash(hasher.NewHMAC(NewAlgorithm(), wordarray.FromBytes(key)))
}

// Reset reset the states
func (d *digest) Reset() {
	d.h[0] = x64.FromUint64(init0)
	d.h[1] = x64.FromUint64(init1)
	d.h[2] = x64.FromUint64(init2)
	d.h[3] = x64.FromUint64(init3)
	d.h[4] = x64.FromUint64(init4)
	d.h[5] = x64.FromUint64(init5)
	d.h[6] = x64.FromUint64(init6)
	d.h[7] = x64.FromUint64(init7)
}

// Size returns the size of hash digest
func (d *digest) Size() int { return Size }

// BlockSize return the words of one block
func (d *digest) BlockSize() int { return chunk }

func (d *digest) ProcessBlock(words []uint32, offset int) {
	d.block(d, words[offset:offset+chunk])
}

func (d *digest) Clone() hasher.Algorithm {
	d0 := *d
	return &d0
}

// Sum512 returns the SHA-512 checksum of the data.
func Sum512(data ...[]byte) [Size]byte {
	h := NewHasher()
	for _, x := range data {
		_ = h.Update(wordarray.FromBytes(x))
	}
	out, _ := h.Finalize(nil)

	var result [Size]byte
	copy(result[:], out.Bytes())
	return result
}

// Hash returns the digest of msg.
func Hash(msg *wordarray.WordArray) *wordarray.WordArray {
	out, _ := NewHasher().Finalize(msg)
	return out
}

// HashString decodes msg with enc (nil for UTF-8) and hashes it.
func HashString(msg string, enc wordarray.Encoder) (*wordarray.WordArray, error) {
	data, err := wordarray.Parse(msg, enc)
	if err != nil {
		return nil, err
	}
	return Hash(data), nil
}

// HMAC returns the HMAC-SHA512 of msg under key.
func HMAC(msg, key *wordarray.WordArray) *wordarray.WordArray {
	out, _ := hasher.NewHMAC(NewAlgorithm(), key).Finalize(msg)
	return out
}

// HMACString decodes msg and key with enc (nil for UTF-8) and returns
// their HMAC-SHA512.
func HMACString(msg, key string, enc wordarray.Encoder) (*wordarray.WordArray, error) {
	m, err := wordarray.Parse(msg, enc)
	if err != nil {
		return nil, err
	}
	k, err := wordarray.Parse(key, enc)
	if err != nil {
		return nil, err
	}
	return HMAC(m, k), nil
}
