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

// Package gf256 implements arithmetic over GF(2^8), the 256-element Galois
// field used by AES, with the irreducible polynomial x^8 + x^4 + x^3 + x + 1
// (0x11B).
//
// All operations after construction are table lookups or short loops over
// table lookups. Multiplication in particular is a single lookup in a
// precomputed 256x256 product table, so its cost does not depend on the
// operand bit patterns the way a shift-and-reduce loop's branches would.
package gf256

import (
	"fmt"

	srsecrets "github.com/samuraisatoshi/srsecrets-sub003"
)

// Field provides GF(2^8) arithmetic. The zero value is not usable; obtain a
// Field from New. All methods are safe for unsynchronized concurrent use:
// the backing tables are built once and read-only afterwards.
type Field struct{}

// New returns a Field, building the shared lookup tables on first call.
// Construction is idempotent and safe under concurrent first access.
func New() *Field {
	tablesOnce.Do(buildTables)
	return &Field{}
}

// Add returns a + b. Addition in GF(2^8) is XOR.
func (f *Field) Add(a, b byte) byte {
	return a ^ b
}

// Subtract returns a - b. In characteristic 2 every element is its own
// additive inverse, so subtraction coincides with addition.
func (f *Field) Subtract(a, b byte) byte {
	return a ^ b
}

// Multiply returns a * b via the precomputed product table.
func (f *Field) Multiply(a, b byte) byte {
	return mulTable[a][b]
}

// Divide returns a / b, i.e. a * b^-1. Division by zero is undefined and
// returns an error wrapping [srsecrets.ErrArithmetic].
func (f *Field) Divide(a, b byte) (byte, error) {
	if b == 0 {
		return 0, fmt.Errorf("%w: division by zero in GF(2^8)", srsecrets.ErrArithmetic)
	}
	return mulTable[a][invTable[b]], nil
}

// Inverse returns the multiplicative inverse of a. Zero has no inverse;
// Inverse(0) returns 0 by convention.
func (f *Field) Inverse(a byte) byte {
	return invTable[a]
}

// Power returns a^n by square-and-multiply. The multiplicative group of
// GF(2^8) has order 255, so for nonzero a the exponent is first reduced
// mod 255. Power(a, 0) is 1 for every a; Power(0, n) is 0 for n > 0.
func (f *Field) Power(a byte, n int) byte {
	if n == 0 {
		return 1
	}
	if a == 0 {
		return 0
	}
	e := n % 255
	if e < 0 {
		e += 255
	}
	if e == 0 {
		return 1
	}
	var result byte = 1
	base := a
	for e > 0 {
		if e&1 == 1 {
			result = mulTable[result][base]
		}
		base = mulTable[base][base]
		e >>= 1
	}
	return result
}

// EvaluatePolynomial evaluates the polynomial with the given coefficients at
// x using Horner's method. Coefficients are ordered from the constant term
// upward: coeffs[i] is the coefficient of x^i. An empty coefficient slice
// evaluates to 0.
func (f *Field) EvaluatePolynomial(coeffs []byte, x byte) byte {
	var result byte
	for i := len(coeffs) - 1; i >= 0; i-- {
		result = mulTable[result][x] ^ coeffs[i]
	}
	return result
}

// Interpolate performs Lagrange interpolation over the points (xs[i], ys[i])
// and returns the interpolated polynomial's value at x = 0, which for a
// sharing polynomial is the secret constant term:
//
//	∑i y[i] * ( ∏j≠i x[j] / (x[j] - x[i]) )
//
// The slices must have equal nonzero length and the xs must be pairwise
// distinct, otherwise an error wrapping [srsecrets.ErrValidation] is
// returned.
func (f *Field) Interpolate(xs, ys []byte) (byte, error) {
	if len(xs) != len(ys) {
		return 0, fmt.Errorf("%w: point count mismatch, %d x values vs %d y values", srsecrets.ErrValidation, len(xs), len(ys))
	}
	if len(xs) == 0 {
		return 0, fmt.Errorf("%w: no points to interpolate", srsecrets.ErrValidation)
	}
	var secret byte
	for i := range xs {
		// ∏j≠i ( x[j] / (x[j] - x[i]) ), the Lagrange basis at x = 0.
		// In characteristic 2, 0 - x[j] = x[j].
		var basis byte = 1
		for j := range xs {
			if i == j {
				continue
			}
			diff := xs[j] ^ xs[i]
			if diff == 0 {
				return 0, fmt.Errorf("%w: duplicate x value %d", srsecrets.ErrValidation, xs[j])
			}
			basis = mulTable[basis][mulTable[xs[j]][invTable[diff]]]
		}
		secret ^= mulTable[ys[i]][basis]
	}
	return secret, nil
}
