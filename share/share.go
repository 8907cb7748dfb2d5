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

// Package share defines the share data types produced by splitting a
// secret, their canonical JSON and base64 encodings, and the HMAC-SHA256
// tamper-evidence tags carried by secure shares.
//
// Shares are immutable once created by the splitter; none of the types in
// this package mutate their receiver.
package share

import (
	"fmt"
	"time"

	srsecrets "github.com/samuraisatoshi/srsecrets-sub003"
)

// CurrentVersion is the share format version stamped into newly generated
// secure shares. It participates in HMAC key derivation, so a version bump
// invalidates tags from older formats.
const CurrentVersion = 1

// Share is one evaluation point (x, y) of a sharing polynomial. A share is
// valid iff x is nonzero; x = 0 would place the secret itself on the wire,
// since the polynomial's value at zero is the secret.
type Share struct {
	X        byte              `json:"x"`
	Y        byte              `json:"y"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// Validate reports whether the share's coordinates are usable.
func (s Share) Validate() error {
	if s.X == 0 {
		return fmt.Errorf("%w: share x coordinate must be nonzero", srsecrets.ErrValidation)
	}
	return nil
}

// SecureShare is a Share carrying the scheme parameters it was generated
// under and an optional HMAC-SHA256 tag over its fields. The tag detects
// accidental corruption of the share; see [SecureShare.Integrity] for the
// security boundary.
type SecureShare struct {
	X           byte              `json:"x"`
	Y           byte              `json:"y"`
	Version     int               `json:"version"`
	Threshold   int               `json:"threshold"`
	TotalShares int               `json:"totalShares"`
	Identifier  string            `json:"identifier,omitempty"`
	HMAC        []byte            `json:"hmac,omitempty"`
	Metadata    map[string]string `json:"metadata,omitempty"`
}

// Share returns the bare (x, y) point of the secure share.
func (s SecureShare) Share() Share {
	return Share{X: s.X, Y: s.Y}
}

// SetMetadata describes one participant's ShareSet and ties it to the split
// operation that produced it. Every set born of one split call carries the
// same ID; ShareIndex identifies the participant within the split.
type SetMetadata struct {
	ID           string    `json:"id"`
	ShareIndex   int       `json:"shareIndex"`
	Threshold    int       `json:"threshold"`
	TotalShares  int       `json:"totalShares"`
	SecretLength int       `json:"secretLength"`
	CreatedAt    time.Time `json:"createdAt"`
	Description  string    `json:"description,omitempty"`
}

// Set is one participant's complete share of a multi-byte secret: one Share
// per byte position, in position order, all evaluated at the same x.
type Set struct {
	Shares   []Share     `json:"shares"`
	Metadata SetMetadata `json:"metadata"`
}

// Validate checks internal consistency of the set: the share list length
// must match the declared secret length, every share must be valid, and all
// shares must carry the participant's single x coordinate.
func (s Set) Validate() error {
	if len(s.Shares) == 0 {
		return fmt.Errorf("%w: share set has no shares", srsecrets.ErrValidation)
	}
	if s.Metadata.SecretLength != len(s.Shares) {
		return fmt.Errorf("%w: share set declares secret length %d but holds %d shares",
			srsecrets.ErrValidation, s.Metadata.SecretLength, len(s.Shares))
	}
	x := s.Shares[0].X
	for i, sh := range s.Shares {
		if err := sh.Validate(); err != nil {
			return fmt.Errorf("share %d: %w", i, err)
		}
		if sh.X != x {
			return fmt.Errorf("%w: share set mixes x coordinates %d and %d", srsecrets.ErrValidation, x, sh.X)
		}
	}
	return nil
}

// ParticipantPackage wraps one Set for hand-off to a participant, with the
// scheme parameters restated and human-readable custody instructions.
type ParticipantPackage struct {
	ParticipantNumber int    `json:"participantNumber"`
	ShareSet          Set    `json:"shareSet"`
	Threshold         int    `json:"threshold"`
	TotalParticipants int    `json:"totalParticipants"`
	Instructions      string `json:"instructions"`
}
