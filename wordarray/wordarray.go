// Copyright (c) 2022, superwindstorm <fengwd.hc@gmail.com>
// All rights reserved.
// Use of this source code is governed by a BSD 3-Clause
// license that can be found in the LICENSE file.

// Package wordarray implements the word buffer shared by the hash
// engines: a growable sequence of big-endian 32-bit words together with
// the count of bytes that are significant.
package wordarray

import (
	"crypto/rand"
	"io"
)

// WordArray is a sequence of 32-bit words. Byte i of the buffer lives in
// Words[i/4] at bit offset 24-(i%4)*8, so the first byte is the most
// significant byte of the first word.
//
// Only the first SigBytes bytes carry data; anything after them is
// garbage until Clamp is called. A WordArray is owned by its holder:
// callers that want to keep the data must Clone it.
type WordArray struct {
	Words    []uint32
	SigBytes int
}

// New returns a WordArray over words with sigBytes significant bytes.
// The slice is used as is, not copied.
func New(words []uint32, sigBytes int) *WordArray {
	return &WordArray{Words: words, SigBytes: sigBytes}
}

// FromWords returns a WordArray where every byte of words is significant.
func FromWords(words []uint32) *WordArray {
	return New(words, len(words)*4)
}

// FromBytes packs b into a new WordArray.
func FromBytes(b []byte) *WordArray {
	w := &WordArray{Words: make([]uint32, (len(b)+3)/4), SigBytes: len(b)}
	for i, c := range b {
		w.Words[i>>2] |= uint32(c) << (24 - (i%4)*8)
	}
	return w
}

// Bytes unpacks the significant bytes.
func (w *WordArray) Bytes() []byte {
	b := make([]byte, w.SigBytes)
	for i := range b {
		b[i] = w.byteAt(i)
	}
	return b
}

func (w *WordArray) byteAt(i int) byte {
	if i>>2 >= len(w.Words) {
		return 0
	}
	return byte(w.Words[i>>2] >> (24 - (i%4)*8))
}

// grow makes room for n bytes, zero-filling new words.
func (w *WordArray) grow(n int) {
	for len(w.Words) < (n+3)/4 {
		w.Words = append(w.Words, 0)
	}
}

// Concat appends the significant bytes of other to w and returns w.
// Bytes are moved one at a time, so neither buffer needs to be word
// aligned.
func (w *WordArray) Concat(other *WordArray) *WordArray {
	// garbage past SigBytes would otherwise be OR-ed into the new bytes
	w.Clamp()

	n, m := w.SigBytes, other.SigBytes
	w.grow(n + m)
	for i := 0; i < m; i++ {
		w.Words[n>>2] |= uint32(other.byteAt(i)) << (24 - (n%4)*8)
		n++
	}
	w.SigBytes = n
	return w
}

// Clamp zeroes the bits past SigBytes and drops words that hold no
// significant byte.
func (w *WordArray) Clamp() {
	n := (w.SigBytes + 3) / 4
	w.grow(w.SigBytes)
	w.Words = w.Words[:n]
	if r := w.SigBytes % 4; r != 0 {
		w.Words[n-1] &= 0xffffffff << (32 - r*8)
	}
}

// Clone returns a copy of w that shares no storage with it.
func (w *WordArray) Clone() *WordArray {
	words := make([]uint32, len(w.Words))
	copy(words, w.Words)
	return New(words, w.SigBytes)
}

// Random returns nBytes bytes read from src. A nil src reads from
// crypto/rand.
func Random(nBytes int, src io.Reader) (*WordArray, error) {
	if src == nil {
		src = rand.Reader
	}
	b := make([]byte, (nBytes+3)/4*4)
	if _, err := io.ReadFull(src, b); err != nil {
		return nil, err
	}
	w := FromBytes(b)
	w.SigBytes = nBytes
	return w, nil
}

// ToString encodes w with enc, or with DefaultEncoder when enc is nil.
func (w *WordArray) ToString(enc Encoder) string {
	if enc == nil {
		enc = DefaultEncoder
	}
	return enc.Encode(w)
}

// Parse decodes s with enc, or with DefaultEncoder when enc is nil.
func Parse(s string, enc Encoder) (*WordArray, error) {
	if enc == nil {
		enc = DefaultEncoder
	}
	return enc.Decode(s)
}
