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

package share

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
)

// TagSize is the length in bytes of a share HMAC tag.
const TagSize = sha256.Size

// defaultSalt keys shares that carry no identifier. The salt is public; see
// the security boundary note on Integrity.
const defaultSalt = "srsecrets.share.v1"

// IntegrityStatus is the tri-state outcome of verifying a share's HMAC tag.
type IntegrityStatus int

const (
	// IntegrityNone means the share carries no tag; nothing was verified.
	IntegrityNone IntegrityStatus = iota
	// IntegrityValid means the tag matches the share fields.
	IntegrityValid
	// IntegrityInvalid means the tag does not match: some field or the tag
	// itself was altered after generation.
	IntegrityInvalid
)

func (s IntegrityStatus) String() string {
	switch s {
	case IntegrityNone:
		return "none"
	case IntegrityValid:
		return "valid"
	case IntegrityInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// deriveTagKey builds the HMAC key from the share's scheme parameters:
// SHA256(threshold ∥ totalShares ∥ version ∥ identifier-or-default-salt),
// integers as big-endian uint32. Callers wipe the returned key.
func deriveTagKey(threshold, totalShares, version int, identifier string) []byte {
	h := sha256.New()
	var be [4]byte
	for _, v := range []int{threshold, totalShares, version} {
		binary.BigEndian.PutUint32(be[:], uint32(v))
		h.Write(be[:])
	}
	if identifier == "" {
		identifier = defaultSalt
	}
	h.Write([]byte(identifier))
	return h.Sum(nil)
}

// ComputeHMAC returns the HMAC-SHA256 tag over the share's authenticated
// fields (x, y, threshold, totalShares, version). The share's stored HMAC
// field is ignored.
func (s SecureShare) ComputeHMAC() []byte {
	key := deriveTagKey(s.Threshold, s.TotalShares, s.Version, s.Identifier)
	defer clear(key)
	mac := hmac.New(sha256.New, key)
	mac.Write([]byte{s.X, s.Y})
	var be [4]byte
	for _, v := range []int{s.Threshold, s.TotalShares, s.Version} {
		binary.BigEndian.PutUint32(be[:], uint32(v))
		mac.Write(be[:])
	}
	return mac.Sum(nil)
}

// WithHMAC returns a copy of the share with a freshly computed tag.
func (s SecureShare) WithHMAC() SecureShare {
	s.HMAC = s.ComputeHMAC()
	return s
}

// Integrity recomputes the share's tag and compares it in constant time.
//
// Security boundary: the key is derived solely from the share's public
// metadata, with no shared secret. A matching tag therefore rules out
// accidental corruption of the authenticated fields, but not deliberate
// forgery by an adversary who knows that metadata and can recompute the
// tag. Tags are tamper-evidence for honest transports, not authentication.
func (s SecureShare) Integrity() IntegrityStatus {
	if len(s.HMAC) == 0 {
		return IntegrityNone
	}
	want := s.ComputeHMAC()
	if hmac.Equal(s.HMAC, want) {
		return IntegrityValid
	}
	return IntegrityInvalid
}

// HasValidHMAC reports whether the share passes integrity verification.
// Tamper detection is opt-in: a share without a tag trivially passes.
func (s SecureShare) HasValidHMAC() bool {
	return s.Integrity() != IntegrityInvalid
}
