// Copyright (c) 2022, superwindstorm <fengwd.hc@gmail.com>
// All rights reserved.
// Use of this source code is governed by a BSD 3-Clause
// license that can be found in the LICENSE file.

package sha512

import (
	"bytes"
	"crypto/hmac"
	stdsha512 "crypto/sha512"
	"encoding/hex"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/pbkdf2"

	"github.com/superwindstorm/sha512x64/hasher"
	"github.com/superwindstorm/sha512x64/wordarray"
)

// RFC 4231 test cases 1, 2, 6 and 7, plus a short text key.
var hmacTests = []struct {
	key  []byte
	msg  string
	want string
}{
	{
		bytes.Repeat([]byte{0x0b}, 20),
		"Hi There",
		"87aa7cdea5ef619d4ff0b4241a1d6cb02379f4e2ce4ec2787ad0b30545e17cde" +
			"daa833b7d6b8a702038b274eaea3f4e4be9d914eeb61f1702e696c203a126854",
	},
	{
		[]byte("Jefe"),
		"what do ya want for nothing?",
		"164b7a7bfcf819e2e395fbe73b56e0a387bd64222e831fd610270cd7ea250554" +
			"9758bf75c05a994a6d034f65f8f0e6fdcaeab1a34d4a6b4b636e070a38bce737",
	},
	{
		bytes.Repeat([]byte{0xaa}, 131),
		"Test Using Larger Than Block-Size Key - Hash Key First",
		"80b24263c7c1a3ebb71493c1dd7be8b49b46d1f41b4aeec1121b013783f8f352" +
			"6b56d037e05f2598bd0fd2215d6a1e5295e64f73f63f0aec8b915a985d786598",
	},
	{
		bytes.Repeat([]byte{0xaa}, 131),
		"This is a test using a larger than block-size key and a larger than block-size data. " +
			"The key needs to be hashed before being used by the HMAC algorithm.",
		"e37b6a775dc87dbaa4dfa9f96e5e3ffddebd71f8867289865df5a32d20cdc944" +
			"b6022cac3c4982b10d5eeb55c3e4de15134676fb6de0446065c97440fa8c6a58",
	},
	{
		[]byte("key"),
		"msg",
		"1e4b55b925ccc28ed90d9d18fc2393fcbe164c0d84e67e173cc5aa486b7afc10" +
			"6633c66bdc309076f5f8d9fdbbb62456f894f2c23377fbcc12f4ab2940eb6d70",
	},
}

func TestHMAC(t *testing.T) {
	for i, tst := range hmacTests {
		out := HMAC(wordarray.FromBytes([]byte(tst.msg)), wordarray.FromBytes(tst.key))
		assert.Equal(t, tst.want, out.ToString(wordarray.Hex), "case %d", i)

		m := NewHMAC(tst.key)
		m.Write([]byte(tst.msg))
		assert.Equal(t, tst.want, hex.EncodeToString(m.Sum(nil)), "case %d", i)
	}
}

func TestHMACString(t *testing.T) {
	out, err := HMACString("what do ya want for nothing?", "Jefe", nil)
	require.NoError(t, err)
	assert.Equal(t, hmacTests[1].want, out.ToString(wordarray.Hex))

	_, err = HMACString("ok", "\xff", nil)
	assert.ErrorIs(t, err, wordarray.ErrInvalidUtf8)
}

func TestHMACStreaming(t *testing.T) {
	tst := hmacTests[3]
	m := hasher.NewHMAC(NewAlgorithmImpl(ImplPairs), wordarray.FromBytes(tst.key))
	msg := []byte(tst.msg)
	for i := 0; i < len(msg); i += 7 {
		end := i + 7
		if end > len(msg) {
			end = len(msg)
		}
		require.NoError(t, m.Update(wordarray.FromBytes(msg[i:end])))
	}
	out, err := m.Finalize(nil)
	require.NoError(t, err)
	assert.Equal(t, tst.want, out.ToString(wordarray.Hex))

	_, err = m.Finalize(nil)
	assert.ErrorIs(t, err, hasher.ErrFinalized)
}

func TestHMACMatchesStdlib(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	for _, keyLen := range []int{0, 1, 64, 127, 128, 129, 300} {
		key := make([]byte, keyLen)
		r.Read(key)
		msg := make([]byte, r.Intn(400))
		r.Read(msg)

		want := hmac.New(stdsha512.New, key)
		want.Write(msg)
		got := NewHMAC(key)
		got.Write(msg)
		require.Equal(t, want.Sum(nil), got.Sum(nil), "key len %d", keyLen)

		// crypto/hmac driving this package's hash.Hash
		mixed := hmac.New(New, key)
		mixed.Write(msg)
		require.Equal(t, want.Sum(nil), mixed.Sum(nil), "key len %d", keyLen)
	}
}

func TestPBKDF2(t *testing.T) {
	password, salt := []byte("password"), []byte("salt")
	want := pbkdf2.Key(password, salt, 3, 80, stdsha512.New)
	got := pbkdf2.Key(password, salt, 3, 80, New)
	assert.Equal(t, want, got)
}
