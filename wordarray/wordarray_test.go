// Copyright (c) 2022, superwindstorm <fengwd.hc@gmail.com>
// All rights reserved.
// Use of this source code is governed by a BSD 3-Clause
// license that can be found in the LICENSE file.

package wordarray

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaults(t *testing.T) {
	w := FromWords([]uint32{0x01020304, 0x05060708})
	assert.Equal(t, 8, w.SigBytes)
	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6, 7, 8}, w.Bytes())

	w = New([]uint32{0x01020304, 0x05060708}, 5)
	assert.Equal(t, []byte{1, 2, 3, 4, 5}, w.Bytes())
}

func TestFromBytesPacking(t *testing.T) {
	w := FromBytes([]byte{0xde, 0xad, 0xbe, 0xef, 0x7f})
	assert.Equal(t, []uint32{0xdeadbeef, 0x7f000000}, w.Words)
	assert.Equal(t, 5, w.SigBytes)
}

func TestConcatUnaligned(t *testing.T) {
	a := FromBytes([]byte{0x11, 0x22, 0x33})
	b := FromBytes([]byte{0x44, 0x55, 0x66, 0x77, 0x88})
	got := a.Concat(b)
	assert.Same(t, a, got)
	assert.Equal(t, 8, a.SigBytes)
	assert.Equal(t, []uint32{0x11223344, 0x55667788}, a.Words)
	// b is untouched
	assert.Equal(t, []byte{0x44, 0x55, 0x66, 0x77, 0x88}, b.Bytes())
}

func TestConcatIgnoresTrailingGarbage(t *testing.T) {
	a := New([]uint32{0xaabbccdd, 0xffffffff}, 2)
	b := New([]uint32{0x1122ffff}, 2)
	a.Concat(b)
	assert.Equal(t, []uint32{0xaabb1122}, a.Words)
	assert.Equal(t, 4, a.SigBytes)
}

func TestConcatSelf(t *testing.T) {
	a := FromBytes([]byte("abc"))
	a.Concat(a)
	assert.Equal(t, "abcabc", string(a.Bytes()))
}

func TestConcatAssociative(t *testing.T) {
	parts := [][]byte{[]byte("x"), []byte("hello"), {}, []byte("0123456789"), []byte("yz")}
	for i := range parts {
		for j := range parts {
			for k := range parts {
				a, b, c := FromBytes(parts[i]), FromBytes(parts[j]), FromBytes(parts[k])
				left := a.Clone().Concat(b.Clone()).Concat(c.Clone())
				right := a.Clone().Concat(b.Clone().Concat(c.Clone()))
				require.Equal(t, left.Bytes(), right.Bytes())
				require.Equal(t, bytes.Join([][]byte{parts[i], parts[j], parts[k]}, nil), left.Bytes())
			}
		}
	}
}

func TestClamp(t *testing.T) {
	w := New([]uint32{0x01020304, 0x05060708, 0x090a0b0c}, 5)
	w.Clamp()
	assert.Equal(t, []uint32{0x01020304, 0x05000000}, w.Words)

	w = New([]uint32{0x01020304}, 0)
	w.Clamp()
	assert.Empty(t, w.Words)

	w = New([]uint32{0x01020304}, 4)
	w.Clamp()
	assert.Equal(t, []uint32{0x01020304}, w.Words)
}

func TestCloneIndependent(t *testing.T) {
	w := FromBytes([]byte("abcd"))
	c := w.Clone()
	c.Words[0] = 0
	c.Concat(FromBytes([]byte("e")))
	assert.Equal(t, "abcd", string(w.Bytes()))
	assert.Equal(t, 4, w.SigBytes)
}

func TestRandom(t *testing.T) {
	src := bytes.NewReader([]byte{1, 2, 3, 4, 5, 6, 7, 8})
	w, err := Random(6, src)
	require.NoError(t, err)
	assert.Equal(t, 6, w.SigBytes)
	assert.Len(t, w.Words, 2)
	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6}, w.Bytes())

	_, err = Random(16, bytes.NewReader([]byte{1}))
	assert.Error(t, err)

	w, err = Random(33, nil)
	require.NoError(t, err)
	assert.Equal(t, 33, w.SigBytes)
	assert.Len(t, w.Words, 9)
}
