// Copyright 2025 the srsecrets authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package gf256

import "sync"

const (
	// irreducible polynomial (x^8 + x^4 + x^3 + x + 1)
	irreduciblePolynomial = 0x11B
	// 3 generates the full multiplicative group of GF(2^8) under 0x11B.
	generator = 0x03
)

var (
	tablesOnce sync.Once

	// expTable[i] = generator^i; logTable is its inverse mapping for
	// nonzero elements. Both are intermediates for the product and
	// inverse tables but are kept for exhaustive tests.
	expTable [255]byte
	logTable [256]byte

	mulTable [256][256]byte
	invTable [256]byte
)

// shiftMultiply is the branching shift-and-reduce product. It is only ever
// used to seed the exp table during one-time construction; runtime
// multiplication goes through mulTable.
func shiftMultiply(a, b byte) byte {
	var product uint16
	x, y := uint16(a), uint16(b)
	for i := 0; i < 8; i++ {
		if y&1 == 1 {
			product ^= x
		}
		x <<= 1
		if x&0x100 != 0 {
			x ^= irreduciblePolynomial
		}
		y >>= 1
	}
	return byte(product)
}

func buildTables() {
	x := byte(1)
	for i := 0; i < 255; i++ {
		expTable[i] = x
		logTable[x] = byte(i)
		x = shiftMultiply(x, generator)
	}
	// log(0) is undefined; the slot stays 0 and is never consulted because
	// products with a zero operand are taken from the zero row/column below.
	for a := 1; a < 256; a++ {
		for b := 1; b < 256; b++ {
			mulTable[a][b] = expTable[(int(logTable[a])+int(logTable[b]))%255]
		}
	}
	// inverse(a) = generator^(255 - log(a)); inverse(0) = 0 by convention.
	for a := 1; a < 256; a++ {
		invTable[a] = expTable[(255-int(logTable[a]))%255]
	}
}
