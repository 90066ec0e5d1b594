// Copyright (c) 2022, superwindstorm <fengwd.hc@gmail.com>
// All rights reserved.
// Use of this source code is governed by a BSD 3-Clause
// license that can be found in the LICENSE file.

// Package x64 emulates 64-bit words with pairs of 32-bit halves.
//
// Every operation is defined on the halves only, so the results match
// native uint64 arithmetic bit for bit without relying on a 64-bit
// integer type.
package x64

import "github.com/superwindstorm/sha512x64/wordarray"

// Word is a 64-bit value split at bit 32.
type Word struct {
	High uint32
	Low  uint32
}

// New returns the word high<<32 | low.
func New(high, low uint32) Word {
	return Word{High: high, Low: low}
}

// FromUint64 splits v.
func FromUint64(v uint64) Word {
	return Word{High: uint32(v >> 32), Low: uint32(v)}
}

// Uint64 joins the halves.
func (w Word) Uint64() uint64 {
	return uint64(w.High)<<32 | uint64(w.Low)
}

// Add returns a+b mod 2^64. The low halves wrap when their sum is
// smaller than an addend, and that carry moves into the high half.
func Add(a, b Word) Word {
	low := a.Low + b.Low
	high := a.High + b.High
	if low < a.Low {
		high++
	}
	return Word{High: high, Low: low}
}

// Sum adds ws left to right, carrying at every step.
func Sum(ws ...Word) Word {
	var s Word
	for _, w := range ws {
		s = Add(s, w)
	}
	return s
}

// RotR rotates w right by n bits, n in [0, 64).
func (w Word) RotR(n uint) Word {
	n &= 63
	hi, lo := w.High, w.Low
	if n >= 32 {
		hi, lo = lo, hi
		n -= 32
	}
	// shifts by 32 yield 0, so n == 0 falls through unchanged
	return Word{
		High: hi>>n | lo<<(32-n),
		Low:  lo>>n | hi<<(32-n),
	}
}

// RotL rotates w left by n bits.
func (w Word) RotL(n uint) Word {
	return w.RotR(64 - n&63)
}

// ShR shifts w right by n bits, n in [0, 64).
func (w Word) ShR(n uint) Word {
	n &= 63
	if n >= 32 {
		return Word{Low: w.High >> (n - 32)}
	}
	return Word{
		High: w.High >> n,
		Low:  w.Low>>n | w.High<<(32-n),
	}
}

func (w Word) Xor(o Word) Word { return Word{w.High ^ o.High, w.Low ^ o.Low} }
func (w Word) And(o Word) Word { return Word{w.High & o.High, w.Low & o.Low} }
func (w Word) Not() Word       { return Word{^w.High, ^w.Low} }

// WordArray is a sequence of 64-bit words with a significant byte count.
type WordArray struct {
	Words    []Word
	SigBytes int
}

// NewWordArray returns a WordArray where every byte of words is significant.
func NewWordArray(words []Word) *WordArray {
	return &WordArray{Words: words, SigBytes: len(words) * 8}
}

// ToX32 flattens a into a 32-bit word array, high half first.
func (a *WordArray) ToX32() *wordarray.WordArray {
	words := make([]uint32, 0, len(a.Words)*2)
	for _, w := range a.Words {
		words = append(words, w.High, w.Low)
	}
	return wordarray.New(words, a.SigBytes)
}

// Clone returns a copy of a that shares no storage with it.
func (a *WordArray) Clone() *WordArray {
	words := make([]Word, len(a.Words))
	copy(words, a.Words)
	return &WordArray{Words: words, SigBytes: a.SigBytes}
}
