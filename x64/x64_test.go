// Copyright (c) 2022, superwindstorm <fengwd.hc@gmail.com>
// All rights reserved.
// Use of this source code is governed by a BSD 3-Clause
// license that can be found in the LICENSE file.

package x64

import (
	"math/bits"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func values() []uint64 {
	vs := []uint64{0, 1, 0xffffffff, 0x100000000, 0xffffffffffffffff, 0x8000000000000000, 0x00000000ffffffff}
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		vs = append(vs, r.Uint64())
	}
	return vs
}

func TestAddCarry(t *testing.T) {
	got := Add(New(0, 0xffffffff), New(0, 1))
	assert.Equal(t, New(1, 0), got)

	got = Add(New(0xffffffff, 0xffffffff), New(0, 1))
	assert.Equal(t, New(0, 0), got)
}

func TestMatchesNative(t *testing.T) {
	vs := values()
	for i, a := range vs {
		b := vs[(i*7+3)%len(vs)]
		c := vs[(i*13+5)%len(vs)]
		wa, wb, wc := FromUint64(a), FromUint64(b), FromUint64(c)

		require.Equal(t, a, wa.Uint64())
		require.Equal(t, a+b, Add(wa, wb).Uint64())
		require.Equal(t, a+b+c+a, Sum(wa, wb, wc, wa).Uint64())
		require.Equal(t, a^b, wa.Xor(wb).Uint64())
		require.Equal(t, a&b, wa.And(wb).Uint64())
		require.Equal(t, ^a, wa.Not().Uint64())

		for n := uint(0); n < 64; n++ {
			require.Equal(t, bits.RotateLeft64(a, -int(n)), wa.RotR(n).Uint64(), "rotr %d", n)
			require.Equal(t, bits.RotateLeft64(a, int(n)), wa.RotL(n).Uint64(), "rotl %d", n)
			require.Equal(t, a>>n, wa.ShR(n).Uint64(), "shr %d", n)
		}
	}
}

func TestToX32(t *testing.T) {
	a := NewWordArray([]Word{New(0x01020304, 0x05060708), New(0x090a0b0c, 0x0d0e0f10)})
	w := a.ToX32()
	assert.Equal(t, 16, w.SigBytes)
	assert.Equal(t, []uint32{0x01020304, 0x05060708, 0x090a0b0c, 0x0d0e0f10}, w.Words)

	c := a.Clone()
	c.Words[0] = Word{}
	assert.Equal(t, New(0x01020304, 0x05060708), a.Words[0])
}
