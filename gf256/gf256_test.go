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

package gf256_test

import (
	"crypto/rand"
	"errors"
	"testing"

	srsecrets "github.com/samuraisatoshi/srsecrets-sub003"
	"github.com/samuraisatoshi/srsecrets-sub003/gf256"
)

func getRandomBytes(t *testing.T, n int) []byte {
	t.Helper()
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		t.Fatalf("Failed to read random bytes: %v", err)
	}
	return b
}

func TestAddSubtractAreXOR(t *testing.T) {
	f := gf256.New()
	for rangeLoopIdx := 0; rangeLoopIdx < 20; rangeLoopIdx++ {
		elems := getRandomBytes(t, 2)
		a, b := elems[0], elems[1]
		if got, want := f.Add(a, b), a^b; got != want {
			t.Errorf("Add(%d, %d) = %d, want %d", a, b, got, want)
		}
		if got, want := f.Subtract(a, b), a^b; got != want {
			t.Errorf("Subtract(%d, %d) = %d, want %d", a, b, got, want)
		}
	}
}

func TestMultiplyKnownAnswers(t *testing.T) {
	f := gf256.New()
	for _, tc := range []struct {
		a    byte
		b    byte
		want byte
	}{
		// AES finite field examples over the same irreducible polynomial:
		// https://en.wikipedia.org/wiki/Finite_field_arithmetic#Rijndael's_(AES)_finite_field
		{a: 0x02, b: 0x03, want: 0x06},
		{a: 0x53, b: 0xCA, want: 0x01},
		{a: 0x02, b: 0x87, want: 0x15},
		{a: 0x03, b: 0x6E, want: 0xB2},
		{a: 161, b: 56, want: 102},
		{a: 0x00, b: 0xFF, want: 0x00},
		{a: 0xFF, b: 0x00, want: 0x00},
		{a: 0x01, b: 0xAB, want: 0xAB},
	} {
		if got := f.Multiply(tc.a, tc.b); got != tc.want {
			t.Errorf("Multiply(%#x, %#x) = %#x, want %#x", tc.a, tc.b, got, tc.want)
		}
		if got := f.Multiply(tc.b, tc.a); got != tc.want {
			t.Errorf("Multiply(%#x, %#x) = %#x, want %#x", tc.b, tc.a, got, tc.want)
		}
	}
}

func TestMultiplyDistributesOverAdd(t *testing.T) {
	f := gf256.New()
	for rangeLoopIdx := 0; rangeLoopIdx < 50; rangeLoopIdx++ {
		elems := getRandomBytes(t, 3)
		a, b, c := elems[0], elems[1], elems[2]
		left := f.Multiply(a, f.Add(b, c))
		right := f.Add(f.Multiply(a, b), f.Multiply(a, c))
		if left != right {
			t.Fatalf("a*(b+c) = %d, a*b + a*c = %d for a=%d b=%d c=%d", left, right, a, b, c)
		}
	}
}

func TestInverse(t *testing.T) {
	f := gf256.New()
	if got, want := f.Inverse(2), byte(141); got != want {
		t.Errorf("Inverse(2) = %d, want %d", got, want)
	}
	if got := f.Inverse(0); got != 0 {
		t.Errorf("Inverse(0) = %d, want 0 by convention", got)
	}
	// a * a^-1 = 1 must hold for every nonzero element.
	for a := 1; a < 256; a++ {
		if got := f.Multiply(byte(a), f.Inverse(byte(a))); got != 1 {
			t.Fatalf("Multiply(%d, Inverse(%d)) = %d, want 1", a, a, got)
		}
	}
}

func TestDivide(t *testing.T) {
	f := gf256.New()
	got, err := f.Divide(6, 2)
	if err != nil {
		t.Fatalf("Divide(6, 2) err = %v, want nil", err)
	}
	if got != 3 {
		t.Errorf("Divide(6, 2) = %d, want 3", got)
	}

	if _, err := f.Divide(1, 0); !errors.Is(err, srsecrets.ErrArithmetic) {
		t.Errorf("Divide(1, 0) err = %v, want ErrArithmetic", err)
	}

	// Division must invert multiplication for every nonzero divisor.
	for rangeLoopIdx := 0; rangeLoopIdx < 50; rangeLoopIdx++ {
		elems := getRandomBytes(t, 2)
		a := elems[0]
		b := elems[1]
		if b == 0 {
			b = 1
		}
		q, err := f.Divide(f.Multiply(a, b), b)
		if err != nil {
			t.Fatal(err)
		}
		if q != a {
			t.Fatalf("Divide(%d*%d, %d) = %d, want %d", a, b, b, q, a)
		}
	}
}

func TestPower(t *testing.T) {
	f := gf256.New()
	for _, tc := range []struct {
		a    byte
		n    int
		want byte
	}{
		{a: 0, n: 0, want: 1},
		{a: 0, n: 7, want: 0},
		{a: 5, n: 0, want: 1},
		{a: 2, n: 1, want: 2},
		{a: 2, n: 2, want: 4},
		{a: 2, n: 8, want: 0x1B}, // x^8 reduced by the AES polynomial
		{a: 3, n: 255, want: 1},  // group order
		{a: 3, n: 256, want: 3},  // exponent reduced mod 255
	} {
		if got := f.Power(tc.a, tc.n); got != tc.want {
			t.Errorf("Power(%d, %d) = %#x, want %#x", tc.a, tc.n, got, tc.want)
		}
	}

	// Power must agree with repeated multiplication.
	for rangeLoopIdx := 0; rangeLoopIdx < 20; rangeLoopIdx++ {
		elems := getRandomBytes(t, 2)
		a, n := elems[0], int(elems[1]%16)
		var want byte = 1
		for rangeLoopIdx := 0; rangeLoopIdx < n; rangeLoopIdx++ {
			want = f.Multiply(want, a)
		}
		if got := f.Power(a, n); got != want {
			t.Fatalf("Power(%d, %d) = %d, want %d", a, n, got, want)
		}
	}
}

func TestEvaluatePolynomial(t *testing.T) {
	f := gf256.New()
	// f(x) = 7 + 2x + 5x^2 evaluated by Horner must match the naive sum.
	coeffs := []byte{7, 2, 5}
	for x := 0; x < 256; x++ {
		xb := byte(x)
		want := f.Add(f.Add(coeffs[0], f.Multiply(coeffs[1], xb)), f.Multiply(coeffs[2], f.Multiply(xb, xb)))
		if got := f.EvaluatePolynomial(coeffs, xb); got != want {
			t.Fatalf("EvaluatePolynomial(%v, %d) = %d, want %d", coeffs, x, got, want)
		}
	}

	if got := f.EvaluatePolynomial(nil, 42); got != 0 {
		t.Errorf("EvaluatePolynomial(nil, 42) = %d, want 0", got)
	}
	if got := f.EvaluatePolynomial([]byte{9}, 200); got != 9 {
		t.Errorf("constant polynomial evaluated = %d, want 9", got)
	}
}

func TestInterpolateRecoversConstantTerm(t *testing.T) {
	f := gf256.New()
	for rangeLoopIdx := 0; rangeLoopIdx < 20; rangeLoopIdx++ {
		coeffs := getRandomBytes(t, 4)
		xs := []byte{1, 2, 3, 4}
		ys := make([]byte, len(xs))
		for i, x := range xs {
			ys[i] = f.EvaluatePolynomial(coeffs, x)
		}
		got, err := f.Interpolate(xs, ys)
		if err != nil {
			t.Fatalf("Interpolate() err = %v, want nil", err)
		}
		if got != coeffs[0] {
			t.Fatalf("Interpolate() = %d, want constant term %d", got, coeffs[0])
		}
	}
}

func TestInterpolateErrors(t *testing.T) {
	f := gf256.New()
	for _, tc := range []struct {
		name string
		xs   []byte
		ys   []byte
	}{
		{name: "length mismatch", xs: []byte{1, 2, 3}, ys: []byte{1, 2}},
		{name: "empty", xs: nil, ys: nil},
		{name: "duplicate x", xs: []byte{1, 2, 2}, ys: []byte{5, 6, 7}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := f.Interpolate(tc.xs, tc.ys); !errors.Is(err, srsecrets.ErrValidation) {
				t.Errorf("Interpolate(%v, %v) err = %v, want ErrValidation", tc.xs, tc.ys, err)
			}
		})
	}
}

func TestConcurrentFirstUse(t *testing.T) {
	done := make(chan byte, 8)
	for rangeLoopIdx := 0; rangeLoopIdx < 8; rangeLoopIdx++ {
		go func() {
			f := gf256.New()
			done <- f.Multiply(0x53, 0xCA)
		}()
	}
	for rangeLoopIdx := 0; rangeLoopIdx < 8; rangeLoopIdx++ {
		if got := <-done; got != 1 {
			t.Fatalf("Multiply(0x53, 0xCA) = %d under concurrent init, want 1", got)
		}
	}
}
