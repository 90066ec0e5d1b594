// Copyright (c) 2022, superwindstorm <fengwd.hc@gmail.com>
// All rights reserved.
// Use of this source code is governed by a BSD 3-Clause
// license that can be found in the LICENSE file.

package hasher

import (
	"hash"

	"github.com/superwindstorm/sha512x64/wordarray"
)

// Streamer is implemented by *Hasher and *HMAC.
type Streamer interface {
	Update(data *wordarray.WordArray) error
	Finalize(data *wordarray.WordArray) (*wordarray.WordArray, error)
	Reset()
	Size() int
	BlockSize() int

	fork() Streamer
}

type digest struct {
	s Streamer
}

// NewHash adapts s to hash.Hash. s is reset first and must not be used
// directly afterwards.
func NewHash(s Streamer) hash.Hash {
	s.Reset()
	return &digest{s: s}
}

func (d *digest) Write(p []byte) (int, error) {
	if err := d.s.Update(wordarray.FromBytes(p)); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Sum appends the digest to in. It finalizes a copy, so the internal
// state remains the same.
func (d *digest) Sum(in []byte) []byte {
	out, err := d.s.fork().Finalize(nil)
	if err != nil {
		// the adapter never finalizes d.s itself
		panic(err)
	}
	return append(in, out.Bytes()...)
}

func (d *digest) Reset()         { d.s.Reset() }
func (d *digest) Size() int      { return d.s.Size() }
func (d *digest) BlockSize() int { return d.s.BlockSize() }
