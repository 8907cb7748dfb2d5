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

package polynomial_test

import (
	"bytes"
	"errors"
	"testing"

	srsecrets "github.com/samuraisatoshi/srsecrets-sub003"
	"github.com/samuraisatoshi/srsecrets-sub003/gf256"
	"github.com/samuraisatoshi/srsecrets-sub003/polynomial"
	"github.com/samuraisatoshi/srsecrets-sub003/securerandom"
)

func newEngine() *polynomial.Engine {
	return polynomial.NewEngine(gf256.New(), securerandom.New())
}

func TestGeneratePolynomial(t *testing.T) {
	e := newEngine()
	for _, threshold := range []int{2, 3, 10, 255} {
		coeffs, err := e.GeneratePolynomial(0xAB, threshold)
		if err != nil {
			t.Fatalf("GeneratePolynomial(0xAB, %d) err = %v, want nil", threshold, err)
		}
		if len(coeffs) != threshold {
			t.Errorf("got %d coefficients, want %d", len(coeffs), threshold)
		}
		if coeffs[0] != 0xAB {
			t.Errorf("constant term = %#x, want 0xAB", coeffs[0])
		}
	}

	for _, threshold := range []int{1, 0, -3} {
		if _, err := e.GeneratePolynomial(1, threshold); !errors.Is(err, srsecrets.ErrValidation) {
			t.Errorf("GeneratePolynomial(1, %d) err = %v, want ErrValidation", threshold, err)
		}
	}
}

func TestGeneratePolynomialZeroCoefficientsAllowed(t *testing.T) {
	// A reader of all zeros must still produce a valid polynomial: zero is
	// a legitimate coefficient draw.
	rng := securerandom.NewFromReader(bytes.NewReader(make([]byte, 16)))
	e := polynomial.NewEngine(gf256.New(), rng)
	coeffs, err := e.GeneratePolynomial(7, 5)
	if err != nil {
		t.Fatalf("GeneratePolynomial() err = %v, want nil", err)
	}
	if want := []byte{7, 0, 0, 0, 0}; !bytes.Equal(coeffs, want) {
		t.Errorf("coefficients = %v, want %v", coeffs, want)
	}
}

func TestGenerateEvaluationPoints(t *testing.T) {
	e := newEngine()
	for _, n := range []int{1, 2, 5, 254, 255} {
		points, err := e.GenerateEvaluationPoints(n)
		if err != nil {
			t.Fatalf("GenerateEvaluationPoints(%d) err = %v, want nil", n, err)
		}
		if len(points) != n {
			t.Fatalf("got %d points, want %d", len(points), n)
		}
		seen := make(map[byte]bool, n)
		for _, p := range points {
			if p == 0 {
				t.Fatal("evaluation point 0 generated")
			}
			if seen[p] {
				t.Fatalf("duplicate evaluation point %d", p)
			}
			seen[p] = true
		}
	}

	for _, n := range []int{0, -1, 256, 1000} {
		if _, err := e.GenerateEvaluationPoints(n); !errors.Is(err, srsecrets.ErrValidation) {
			t.Errorf("GenerateEvaluationPoints(%d) err = %v, want ErrValidation", n, err)
		}
	}
}

func TestEvaluateMatchesField(t *testing.T) {
	f := gf256.New()
	e := polynomial.NewEngine(f, securerandom.New())
	coeffs := []byte{0x17, 0x2A, 0x9C}
	for x := 1; x < 256; x++ {
		if got, want := e.Evaluate(coeffs, byte(x)), f.EvaluatePolynomial(coeffs, byte(x)); got != want {
			t.Fatalf("Evaluate(%v, %d) = %d, want %d", coeffs, x, got, want)
		}
	}
}
