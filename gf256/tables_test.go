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

import "testing"

func TestProductTableMatchesShiftMultiply(t *testing.T) {
	New()
	for a := 0; a < 256; a++ {
		for b := 0; b < 256; b++ {
			if got, want := mulTable[a][b], shiftMultiply(byte(a), byte(b)); got != want {
				t.Fatalf("mulTable[%d][%d] = %d, shift-and-reduce = %d", a, b, got, want)
			}
		}
	}
}

func TestGeneratorCoversMultiplicativeGroup(t *testing.T) {
	New()
	seen := make(map[byte]bool, 255)
	for _, e := range expTable {
		if e == 0 {
			t.Fatal("exp table contains zero")
		}
		seen[e] = true
	}
	if len(seen) != 255 {
		t.Fatalf("generator %d produced %d distinct elements, want 255", generator, len(seen))
	}
	for a := 1; a < 256; a++ {
		if got := expTable[logTable[a]]; got != byte(a) {
			t.Fatalf("exp(log(%d)) = %d", a, got)
		}
	}
}
