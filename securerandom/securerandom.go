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

// Package securerandom provides the cryptographically secure randomness
// used for polynomial coefficients, evaluation points and share
// identifiers. A statistical PRNG must never be substituted here: bias in
// the coefficient draws leaks information about the shared secret.
package securerandom

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/google/tink/go/subtle/random"
	srsecrets "github.com/samuraisatoshi/srsecrets-sub003"
)

// Source draws uniform values from a CSPRNG. A Source from New is backed by
// the process CSPRNG and is safe for concurrent use. A Source from
// NewFromReader is only as safe and as secure as the reader it wraps; use
// that form for deterministic tests, never for production secrets.
type Source struct {
	r io.Reader
}

// New returns a Source backed by the operating system CSPRNG.
func New() *Source {
	return &Source{}
}

// NewFromReader returns a Source drawing from r.
func NewFromReader(r io.Reader) *Source {
	return &Source{r: r}
}

// NextBytes returns n uniform random bytes.
func (s *Source) NextBytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative byte count %d", srsecrets.ErrValidation, n)
	}
	if s.r == nil {
		return random.GetRandomBytes(uint32(n)), nil
	}
	b := make([]byte, n)
	if _, err := io.ReadFull(s.r, b); err != nil {
		return nil, fmt.Errorf("reading random bytes: %v", err)
	}
	return b, nil
}

// NextByte returns one uniform random byte.
func (s *Source) NextByte() (byte, error) {
	b, err := s.NextBytes(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// NextGF256Element returns a uniform field element in [0, 255].
func (s *Source) NextGF256Element() (byte, error) {
	return s.NextByte()
}

// NextNonZeroGF256Element returns a uniform field element in [1, 255] via
// rejection sampling.
func (s *Source) NextNonZeroGF256Element() (byte, error) {
	for {
		b, err := s.NextByte()
		if err != nil {
			return 0, err
		}
		if b != 0 {
			return b, nil
		}
	}
}

// NextInt returns a uniform integer in [0, bound). It rejection-samples a
// 32-bit draw to avoid modulo bias. Intended for non-secret auxiliary
// values such as identifiers, not for key material.
func (s *Source) NextInt(bound int) (int, error) {
	if bound <= 0 {
		return 0, fmt.Errorf("%w: bound must be positive, got %d", srsecrets.ErrValidation, bound)
	}
	if bound > math.MaxInt32 {
		return 0, fmt.Errorf("%w: bound %d exceeds 2^31-1", srsecrets.ErrValidation, bound)
	}
	b := uint32(bound)
	// Largest multiple of bound representable in 32 bits; draws at or
	// above it would skew the distribution and are redrawn.
	limit := (^uint32(0) / b) * b
	for {
		raw, err := s.NextBytes(4)
		if err != nil {
			return 0, err
		}
		v := binary.BigEndian.Uint32(raw)
		if v < limit {
			return int(v % b), nil
		}
	}
}
