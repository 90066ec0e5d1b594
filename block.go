// Copyright (c) 2022, superwindstorm <fengwd.hc@gmail.com>
// All rights reserved.
// Use of this source code is governed by a BSD 3-Clause
// license that can be found in the LICENSE file.

package sha512

import (
	"math/bits"

	"github.com/superwindstorm/sha512x64/wordarray"
	"github.com/superwindstorm/sha512x64/x64"
)

// Size is the bytes of digest
const Size = 64

// BlockSize is the bytes of each block
const BlockSize = 128

const (
	chunk = BlockSize / 4 // words per block
	init0 = 0x6a09e667f3bcc908
	init1 = 0xbb67ae8584caa73b
	init2 = 0x3c6ef372fe94f82b
	init3 = 0xa54ff53a5f1d36f1
	init4 = 0x510e527fade682d1
	init5 = 0x9b05688c2b3e6c1f
	init6 = 0x1f83d9abfb41bd6b
	init7 = 0x5be0cd19137e2179
)

// Pad appends 0x80, zeros up to 896 mod 1024 bits and the 128-bit
// big-endian bit length of the input.
func (d *digest) Pad(data *wordarray.WordArray, nBytes uint64) {
	data.Clamp()
	nBitsLeft := uint(data.SigBytes) * 8
	n := int((nBitsLeft+128)>>10+1) * chunk
	for len(data.Words) < n {
		data.Words = append(data.Words, 0)
	}
	data.Words[nBitsLeft>>5] |= 0x80 << (24 - nBitsLeft%32)

	hi, lo := nBytes>>61, nBytes<<3
	data.Words[n-4] = uint32(hi >> 32)
	data.Words[n-3] = uint32(hi)
	data.Words[n-2] = uint32(lo >> 32)
	data.Words[n-1] = uint32(lo)
	data.SigBytes = n * 4
}

// Digest exports the eight state words as sixteen 32-bit words.
func (d *digest) Digest() *wordarray.WordArray {
	h := make([]x64.Word, len(d.h))
	copy(h, d.h[:])
	return x64.NewWordArray(h).ToX32()
}

// Block functions
func blockGeneric(dig *digest, p []uint32) {
	var w [80]uint64
	h0, h1, h2, h3 := dig.h[0].Uint64(), dig.h[1].Uint64(), dig.h[2].Uint64(), dig.h[3].Uint64()
	h4, h5, h6, h7 := dig.h[4].Uint64(), dig.h[5].Uint64(), dig.h[6].Uint64(), dig.h[7].Uint64()

	for len(p) >= chunk {
		for i := 0; i < 16; i++ {
			w[i] = uint64(p[2*i])<<32 | uint64(p[2*i+1])
		}
		for i := 16; i < 80; i++ {
			v1 := w[i-2]
			t1 := bits.RotateLeft64(v1, -19) ^ bits.RotateLeft64(v1, -61) ^ (v1 >> 6)
			v2 := w[i-15]
			t2 := bits.RotateLeft64(v2, -1) ^ bits.RotateLeft64(v2, -8) ^ (v2 >> 7)
			w[i] = t1 + w[i-7] + t2 + w[i-16]
		}

		a, b, c, d, e, f, g, h := h0, h1, h2, h3, h4, h5, h6, h7
		for i := 0; i < 80; i++ {
			t1 := h + (bits.RotateLeft64(e, -14) ^ bits.RotateLeft64(e, -18) ^ bits.RotateLeft64(e, -41)) + ((e & f) ^ (^e & g)) + _K[i] + w[i]
			t2 := (bits.RotateLeft64(a, -28) ^ bits.RotateLeft64(a, -34) ^ bits.RotateLeft64(a, -39)) + ((a & b) ^ (a & c) ^ (b & c))

			h, g, f, e = g, f, e, d+t1
			d, c, b, a = c, b, a, t1+t2
		}

		p = p[chunk:]
		h0 += a
		h1 += b
		h2 += c
		h3 += d
		h4 += e
		h5 += f
		h6 += g
		h7 += h
	}
	dig.h[0], dig.h[1], dig.h[2], dig.h[3] = x64.FromUint64(h0), x64.FromUint64(h1), x64.FromUint64(h2), x64.FromUint64(h3)
	dig.h[4], dig.h[5], dig.h[6], dig.h[7] = x64.FromUint64(h4), x64.FromUint64(h5), x64.FromUint64(h6), x64.FromUint64(h7)
}

var _K = [80]uint64{
	0x428a2f98d728ae22, 0x7137449123ef65cd, 0xb5c0fbcfec4d3b2f, 0xe9b5dba58189dbbc,
	0x3956c25bf348b538, 0x59f111f1b605d019, 0x923f82a4af194f9b, 0xab1c5ed5da6d8118,
	0xd807aa98a3030242, 0x12835b0145706fbe, 0x243185be4ee4b28c, 0x550c7dc3d5ffb4e2,
	0x72be5d74f27b896f, 0x80deb1fe3b1696b1, 0x9bdc06a725c71235, 0xc19bf174cf692694,
	0xe49b69c19ef14ad2, 0xefbe4786384f25e3, 0x0fc19dc68b8cd5b5, 0x240ca1cc77ac9c65,
	0x2de92c6f592b0275, 0x4a7484aa6ea6e483, 0x5cb0a9dcbd41fbd4, 0x76f988da831153b5,
	0x983e5152ee66dfab, 0xa831c66d2db43210, 0xb00327c898fb213f, 0xbf597fc7beef0ee4,
	0xc6e00bf33da88fc2, 0xd5a79147930aa725, 0x06ca6351e003826f, 0x142929670a0e6e70,
	0x27b70a8546d22ffc, 0x2e1b21385c26c926, 0x4d2c6dfc5ac42aed, 0x53380d139d95b3df,
	0x650a73548baf63de, 0x766a0abb3c77b2a8, 0x81c2c92e47edaee6, 0x92722c851482353b,
	0xa2bfe8a14cf10364, 0xa81a664bbc423001, 0xc24b8b70d0f89791, 0xc76c51a30654be30,
	0xd192e819d6ef5218, 0xd69906245565a910, 0xf40e35855771202a, 0x106aa07032bbd1b8,
	0x19a4c116b8d2d0c8, 0x1e376c085141ab53, 0x2748774cdf8eeb99, 0x34b0bcb5e19b48a8,
	0x391c0cb3c5c95a63, 0x4ed8aa4ae3418acb, 0x5b9cca4f7763e373, 0x682e6ff3d6b2b8a3,
	0x748f82ee5defb2fc, 0x78a5636f43172f60, 0x84c87814a1f0ab72, 0x8cc702081a6439ec,
	0x90befffa23631e28, 0xa4506cebde82bde9, 0xbef9a3f7b2c67915, 0xc67178f2e372532b,
	0xca273eceea26619c, 0xd186b8c721c0c207, 0xeada7dd6cde0eb1e, 0xf57d4f7fee6ed178,
	0x06f067aa72176fba, 0x0a637dc5a2c898a6, 0x113f9804bef90dae, 0x1b710b35131c471b,
	0x28db77f523047d84, 0x32caab7b40c72493, 0x3c9ebe0a15c9bebc, 0x431d67c49c100d4c,
	0x4cc5d4becb3e42b6, 0x597f299cfc657e2a, 0x5fcb6fab3ad6faec, 0x6c44198c4a475817,
}
