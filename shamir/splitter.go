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

// Package shamir orchestrates splitting secrets into shares, reconstructing
// secrets from shares, and collecting shares interactively.
//
// A Splitter acts as the trusted dealer: it sees the secret and must be run
// in a context the participants trust. A Reconstructor and a Session only
// ever see shares.
package shamir

import (
	"encoding/hex"
	"fmt"
	"time"

	"github.com/golang/glog"
	"github.com/google/uuid"
	srsecrets "github.com/samuraisatoshi/srsecrets-sub003"
	"github.com/samuraisatoshi/srsecrets-sub003/gf256"
	"github.com/samuraisatoshi/srsecrets-sub003/polynomial"
	"github.com/samuraisatoshi/srsecrets-sub003/securerandom"
	"github.com/samuraisatoshi/srsecrets-sub003/share"
)

// Splitter splits secrets into shares.
type Splitter struct {
	field  *gf256.Field
	engine *polynomial.Engine
	rng    *securerandom.Source
}

// NewSplitter returns a Splitter over the given field context and
// randomness source.
func NewSplitter(field *gf256.Field, rng *securerandom.Source) *Splitter {
	return &Splitter{
		field:  field,
		engine: polynomial.NewEngine(field, rng),
		rng:    rng,
	}
}

// SplitResult holds the secure shares of a single-byte split.
type SplitResult struct {
	Shares      []share.SecureShare
	Threshold   int
	TotalShares int
	Metadata    map[string]string
}

// MultiSplitResult holds the per-participant share sets of a multi-byte
// split.
type MultiSplitResult struct {
	ShareSets   []share.Set
	Threshold   int
	TotalShares int
	Metadata    map[string]string
}

func validateScheme(threshold, totalShares int) error {
	if threshold < 2 {
		return fmt.Errorf("%w: threshold must be at least 2, got %d", srsecrets.ErrValidation, threshold)
	}
	if totalShares < threshold {
		return fmt.Errorf("%w: totalShares (%d) must be at least the threshold (%d)", srsecrets.ErrValidation, totalShares, threshold)
	}
	if totalShares > 255 {
		return fmt.Errorf("%w: totalShares must not exceed 255, got %d", srsecrets.ErrValidation, totalShares)
	}
	return nil
}

// SplitByte splits a single secret byte into totalShares secure shares,
// any threshold of which reconstruct it. All shares of one call carry a
// common random identifier and an HMAC tag over their public fields.
func (s *Splitter) SplitByte(secret byte, threshold, totalShares int) (SplitResult, error) {
	if err := validateScheme(threshold, totalShares); err != nil {
		return SplitResult{}, err
	}
	coeffs, err := s.engine.GeneratePolynomial(secret, threshold)
	if err != nil {
		return SplitResult{}, err
	}
	defer clear(coeffs)
	points, err := s.engine.GenerateEvaluationPoints(totalShares)
	if err != nil {
		return SplitResult{}, err
	}
	idBytes, err := s.rng.NextBytes(8)
	if err != nil {
		return SplitResult{}, err
	}
	identifier := hex.EncodeToString(idBytes)

	shares := make([]share.SecureShare, totalShares)
	for i, x := range points {
		shares[i] = share.SecureShare{
			X:           x,
			Y:           s.engine.Evaluate(coeffs, x),
			Version:     share.CurrentVersion,
			Threshold:   threshold,
			TotalShares: totalShares,
			Identifier:  identifier,
		}.WithHMAC()
	}
	glog.V(1).Infof("Split one byte into %d shares (threshold %d, identifier %s)", totalShares, threshold, identifier)
	return SplitResult{
		Shares:      shares,
		Threshold:   threshold,
		TotalShares: totalShares,
		Metadata:    map[string]string{"identifier": identifier},
	}, nil
}

// SplitBytes splits a multi-byte secret into totalShares share sets, one
// per participant. Each byte position gets an independent random
// polynomial, but every polynomial is evaluated at one shared set of
// points: participant i holds the evaluations of all byte positions at the
// same x, which keeps positions aligned across sets during reconstruction.
func (s *Splitter) SplitBytes(secret []byte, threshold, totalShares int) (MultiSplitResult, error) {
	if err := validateScheme(threshold, totalShares); err != nil {
		return MultiSplitResult{}, err
	}
	if len(secret) == 0 {
		return MultiSplitResult{}, fmt.Errorf("%w: secret must not be empty", srsecrets.ErrValidation)
	}

	points, err := s.engine.GenerateEvaluationPoints(totalShares)
	if err != nil {
		return MultiSplitResult{}, err
	}

	perParticipant := make([][]share.Share, totalShares)
	for i := range perParticipant {
		perParticipant[i] = make([]share.Share, 0, len(secret))
	}
	for _, b := range secret {
		coeffs, err := s.engine.GeneratePolynomial(b, threshold)
		if err != nil {
			return MultiSplitResult{}, err
		}
		for i, x := range points {
			perParticipant[i] = append(perParticipant[i], share.Share{X: x, Y: s.engine.Evaluate(coeffs, x)})
		}
		clear(coeffs)
	}

	id := uuid.NewString()
	createdAt := time.Now().UTC()
	sets := make([]share.Set, totalShares)
	for i := range sets {
		sets[i] = share.Set{
			Shares: perParticipant[i],
			Metadata: share.SetMetadata{
				ID:           id,
				ShareIndex:   i + 1,
				Threshold:    threshold,
				TotalShares:  totalShares,
				SecretLength: len(secret),
				CreatedAt:    createdAt,
			},
		}
	}
	glog.V(1).Infof("Split %d-byte secret into %d share sets (threshold %d, split %s)", len(secret), totalShares, threshold, id)
	return MultiSplitResult{
		ShareSets:   sets,
		Threshold:   threshold,
		TotalShares: totalShares,
		Metadata:    map[string]string{"id": id},
	}, nil
}

// SplitString UTF-8 encodes the secret and splits the resulting bytes.
func (s *Splitter) SplitString(secret string, threshold, totalShares int) (MultiSplitResult, error) {
	result, err := s.SplitBytes([]byte(secret), threshold, totalShares)
	if err != nil {
		return MultiSplitResult{}, err
	}
	result.Metadata["type"] = "string"
	result.Metadata["encoding"] = "utf8"
	return result, nil
}

// DistributionPackages wraps each share set as a numbered participant
// package with custody instructions.
func (r MultiSplitResult) DistributionPackages() []share.ParticipantPackage {
	packages := make([]share.ParticipantPackage, len(r.ShareSets))
	for i, set := range r.ShareSets {
		packages[i] = share.ParticipantPackage{
			ParticipantNumber: i + 1,
			ShareSet:          set,
			Threshold:         r.Threshold,
			TotalParticipants: r.TotalShares,
			Instructions: fmt.Sprintf(
				"This is share %d of %d. Keep it secret and store it separately from the other shares. "+
					"Any %d of the %d shares together reconstruct the original secret; fewer than %d reveal nothing about it.",
				i+1, r.TotalShares, r.Threshold, r.TotalShares, r.Threshold),
		}
	}
	return packages
}
