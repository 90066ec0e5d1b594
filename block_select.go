// Copyright (c) 2022, superwindstorm <fengwd.hc@gmail.com>
// All rights reserved.
// Use of this source code is governed by a BSD 3-Clause
// license that can be found in the LICENSE file.

package sha512

import (
	"fmt"
	"math/bits"
)

// Impl selects a compression function.
type Impl int

const (
	// ImplAuto picks the native engine on 64-bit platforms and the
	// word-pair engine elsewhere.
	ImplAuto Impl = iota
	// ImplNative works on uint64 words.
	ImplNative
	// ImplPairs works on pairs of uint32 halves with explicit carries.
	ImplPairs
)

func (i Impl) String() string {
	switch i {
	case ImplAuto:
		return "auto"
	case ImplNative:
		return "native"
	case ImplPairs:
		return "pairs"
	}
	return fmt.Sprintf("Impl(%d)", int(i))
}

// ParseImpl is the inverse of Impl.String.
func ParseImpl(s string) (Impl, error) {
	for _, i := range []Impl{ImplAuto, ImplNative, ImplPairs} {
		if i.String() == s {
			return i, nil
		}
	}
	return ImplAuto, fmt.Errorf("sha512: unknown implementation %q", s)
}

var useNative = bits.UintSize == 64

var block func(dig *digest, p []uint32)

func init() {
	if useNative {
		block = blockGeneric
	} else {
		block = blockPairs
	}
}

// Implementation reports the engine ImplAuto resolves to.
func Implementation() Impl {
	if useNative {
		return ImplNative
	}
	return ImplPairs
}

func (i Impl) blockFunc() func(dig *digest, p []uint32) {
	switch i {
	case ImplNative:
		return blockGeneric
	case ImplPairs:
		return blockPairs
	}
	return block
}

// export
var BlockGeneric = blockGeneric
var BlockPairs = blockPairs
