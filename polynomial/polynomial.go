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

// Package polynomial builds and evaluates the sharing polynomials used to
// split a secret. A secret byte becomes the constant term of a random
// polynomial of degree threshold-1; shares are evaluations of that
// polynomial at distinct nonzero points.
package polynomial

import (
	"fmt"

	srsecrets "github.com/samuraisatoshi/srsecrets-sub003"
	"github.com/samuraisatoshi/srsecrets-sub003/gf256"
	"github.com/samuraisatoshi/srsecrets-sub003/securerandom"
)

// Engine generates and evaluates sharing polynomials over GF(2^8).
type Engine struct {
	field *gf256.Field
	rng   *securerandom.Source
}

// NewEngine returns an Engine using the given field context and randomness
// source.
func NewEngine(field *gf256.Field, rng *securerandom.Source) *Engine {
	return &Engine{field: field, rng: rng}
}

// GeneratePolynomial returns threshold coefficients ordered from the
// constant term upward. coeffs[0] is the secret; the remaining threshold-1
// coefficients are independent uniform field elements. Zero is a valid
// coefficient draw: excluding it would shrink the polynomial space and
// leak a bit of structure to an adversary.
//
// Callers should wipe the returned slice once the shares are computed.
func (e *Engine) GeneratePolynomial(secret byte, threshold int) ([]byte, error) {
	if threshold < 2 {
		return nil, fmt.Errorf("%w: threshold must be at least 2, got %d", srsecrets.ErrValidation, threshold)
	}
	coeffs := make([]byte, threshold)
	coeffs[0] = secret
	for i := 1; i < threshold; i++ {
		c, err := e.rng.NextGF256Element()
		if err != nil {
			return nil, err
		}
		coeffs[i] = c
	}
	return coeffs, nil
}

// GenerateEvaluationPoints returns totalShares pairwise-distinct nonzero
// field elements. GF(2^8) has only 255 nonzero elements, so totalShares
// must be in [1, 255].
//
// For a multi-byte secret the caller computes this set once and reuses it
// for every byte position; shares at the same x across byte positions then
// belong to the same participant.
func (e *Engine) GenerateEvaluationPoints(totalShares int) ([]byte, error) {
	if totalShares < 1 {
		return nil, fmt.Errorf("%w: totalShares must be at least 1, got %d", srsecrets.ErrValidation, totalShares)
	}
	if totalShares > 255 {
		return nil, fmt.Errorf("%w: totalShares must not exceed 255, got %d", srsecrets.ErrValidation, totalShares)
	}
	var seen [256]bool
	points := make([]byte, 0, totalShares)
	for len(points) < totalShares {
		x, err := e.rng.NextNonZeroGF256Element()
		if err != nil {
			return nil, err
		}
		if seen[x] {
			continue
		}
		seen[x] = true
		points = append(points, x)
	}
	return points, nil
}

// Evaluate evaluates the polynomial at x using Horner's method.
func (e *Engine) Evaluate(coeffs []byte, x byte) byte {
	return e.field.EvaluatePolynomial(coeffs, x)
}
