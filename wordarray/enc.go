// Copyright (c) 2022, superwindstorm <fengwd.hc@gmail.com>
// All rights reserved.
// Use of this source code is governed by a BSD 3-Clause
// license that can be found in the LICENSE file.

package wordarray

import (
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Decoding errors. Decoders never return a partial buffer.
var (
	ErrInvalidHex    = errors.New("wordarray: invalid hex string")
	ErrInvalidLatin1 = errors.New("wordarray: character outside latin-1")
	ErrInvalidUtf8   = errors.New("wordarray: invalid utf-8 string")
	ErrInvalidBase64 = errors.New("wordarray: invalid base64 string")
)

// Encoder converts between a WordArray and its string form.
type Encoder interface {
	Encode(w *WordArray) string
	Decode(s string) (*WordArray, error)
}

var (
	// Hex uses two lowercase hex digits per byte.
	Hex Encoder = hexEncoder{}
	// Latin1 maps every byte to the rune with the same value.
	Latin1 Encoder = latin1Encoder{}
	// Utf8 treats the significant bytes as UTF-8 text.
	Utf8 Encoder = utf8Encoder{}
	// Base64 is standard padded base64.
	Base64 Encoder = base64Encoder{}

	// DefaultEncoder is used by ToString and Parse when no encoder is given.
	DefaultEncoder = Utf8
)

type hexEncoder struct{}

func (hexEncoder) Encode(w *WordArray) string {
	return hex.EncodeToString(w.Bytes())
}

func (hexEncoder) Decode(s string) (*WordArray, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidHex, err)
	}
	return FromBytes(b), nil
}

type latin1Encoder struct{}

func (latin1Encoder) Encode(w *WordArray) string {
	var sb strings.Builder
	sb.Grow(w.SigBytes)
	for i := 0; i < w.SigBytes; i++ {
		sb.WriteRune(rune(w.byteAt(i)))
	}
	return sb.String()
}

func (latin1Encoder) Decode(s string) (*WordArray, error) {
	w := &WordArray{Words: make([]uint32, 0, (len(s)+3)/4)}
	for off, r := range s {
		// invalid utf-8 decodes to utf8.RuneError, which is also > 0xff
		if r > 0xff {
			return nil, fmt.Errorf("%w: %q at offset %d", ErrInvalidLatin1, r, off)
		}
		n := w.SigBytes
		w.grow(n + 1)
		w.Words[n>>2] |= uint32(r) << (24 - (n%4)*8)
		w.SigBytes++
	}
	return w, nil
}

type utf8Encoder struct{}

func (utf8Encoder) Encode(w *WordArray) string {
	return string(w.Bytes())
}

func (utf8Encoder) Decode(s string) (*WordArray, error) {
	if !utf8.ValidString(s) {
		return nil, ErrInvalidUtf8
	}
	return FromBytes([]byte(s)), nil
}

type base64Encoder struct{}

func (base64Encoder) Encode(w *WordArray) string {
	return base64.StdEncoding.EncodeToString(w.Bytes())
}

func (base64Encoder) Decode(s string) (*WordArray, error) {
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBase64, err)
	}
	return FromBytes(b), nil
}
