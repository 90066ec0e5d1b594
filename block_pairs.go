// Copyright (c) 2022, superwindstorm <fengwd.hc@gmail.com>
// All rights reserved.
// Use of this source code is governed by a BSD 3-Clause
// license that can be found in the LICENSE file.

package sha512

import "github.com/superwindstorm/sha512x64/x64"

// blockPairs is the compression function on 32-bit halves only. Each
// rotation below is the 64-bit rotation written out per half: rotr by
// n < 32 takes the low n bits of the other half, rotr by n >= 32 swaps
// the halves and rotates by n-32.
func blockPairs(dig *digest, p []uint32) {
	var w [80]x64.Word
	h := dig.h

	for len(p) >= chunk {
		for i := 0; i < 16; i++ {
			w[i] = x64.New(p[2*i], p[2*i+1])
		}
		for i := 16; i < 80; i++ {
			w[i] = x64.Sum(sigma1(w[i-2]), w[i-7], sigma0(w[i-15]), w[i-16])
		}

		a, b, c, d, e, f, g, hh := h[0], h[1], h[2], h[3], h[4], h[5], h[6], h[7]
		for i := 0; i < 80; i++ {
			t1 := x64.Sum(hh, bigSigma1(e), ch(e, f, g), _KPairs[i], w[i])
			t2 := x64.Add(bigSigma0(a), maj(a, b, c))

			hh, g, f, e = g, f, e, x64.Add(d, t1)
			d, c, b, a = c, b, a, x64.Add(t1, t2)
		}

		p = p[chunk:]
		h[0] = x64.Add(h[0], a)
		h[1] = x64.Add(h[1], b)
		h[2] = x64.Add(h[2], c)
		h[3] = x64.Add(h[3], d)
		h[4] = x64.Add(h[4], e)
		h[5] = x64.Add(h[5], f)
		h[6] = x64.Add(h[6], g)
		h[7] = x64.Add(h[7], hh)
	}
	dig.h = h
}

// rotr 1 ^ rotr 8 ^ shr 7
func sigma0(x x64.Word) x64.Word {
	hi, lo := x.High, x.Low
	return x64.Word{
		High: (hi>>1 | lo<<31) ^ (hi>>8 | lo<<24) ^ hi>>7,
		Low:  (lo>>1 | hi<<31) ^ (lo>>8 | hi<<24) ^ (lo>>7 | hi<<25),
	}
}

// rotr 19 ^ rotr 61 ^ shr 6
func sigma1(x x64.Word) x64.Word {
	hi, lo := x.High, x.Low
	return x64.Word{
		High: (hi>>19 | lo<<13) ^ (hi<<3 | lo>>29) ^ hi>>6,
		Low:  (lo>>19 | hi<<13) ^ (lo<<3 | hi>>29) ^ (lo>>6 | hi<<26),
	}
}

// rotr 28 ^ rotr 34 ^ rotr 39
func bigSigma0(x x64.Word) x64.Word {
	hi, lo := x.High, x.Low
	return x64.Word{
		High: (hi>>28 | lo<<4) ^ (hi<<30 | lo>>2) ^ (hi<<25 | lo>>7),
		Low:  (lo>>28 | hi<<4) ^ (lo<<30 | hi>>2) ^ (lo<<25 | hi>>7),
	}
}

// rotr 14 ^ rotr 18 ^ rotr 41
func bigSigma1(x x64.Word) x64.Word {
	hi, lo := x.High, x.Low
	return x64.Word{
		High: (hi>>14 | lo<<18) ^ (hi>>18 | lo<<14) ^ (hi<<23 | lo>>9),
		Low:  (lo>>14 | hi<<18) ^ (lo>>18 | hi<<14) ^ (lo<<23 | hi>>9),
	}
}

func ch(x, y, z x64.Word) x64.Word {
	return x.And(y).Xor(x.Not().And(z))
}

func maj(x, y, z x64.Word) x64.Word {
	return x.And(y).Xor(x.And(z)).Xor(y.And(z))
}

// _KPairs is _K split into halves.
var _KPairs = func() (k [80]x64.Word) {
	for i, v := range _K {
		k[i] = x64.FromUint64(v)
	}
	return
}()
