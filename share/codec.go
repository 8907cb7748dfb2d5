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
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"

	srsecrets "github.com/samuraisatoshi/srsecrets-sub003"
)

// The canonical transport for every type in this package is a JSON object;
// the base64 form is base64(UTF-8(JSON)). Decoding enforces required-field
// presence and field ranges and fails with [srsecrets.ErrFormat] wraps, so
// a decoded value is always structurally valid.

// ToJSON returns the canonical JSON encoding of the share.
func (s Share) ToJSON() ([]byte, error) {
	return json.Marshal(s)
}

// ToBase64 returns the base64-encoded JSON form of the share.
func (s Share) ToBase64() (string, error) {
	return encodeBase64(s)
}

// ToJSON returns the canonical JSON encoding of the secure share.
func (s SecureShare) ToJSON() ([]byte, error) {
	return json.Marshal(s)
}

// ToBase64 returns the base64-encoded JSON form of the secure share.
func (s SecureShare) ToBase64() (string, error) {
	return encodeBase64(s)
}

// ToJSON returns the canonical JSON encoding of the share set.
func (s Set) ToJSON() ([]byte, error) {
	return json.Marshal(s)
}

// ToBase64 returns the base64-encoded JSON form of the share set.
func (s Set) ToBase64() (string, error) {
	return encodeBase64(s)
}

// ToJSON returns the canonical JSON encoding of the package.
func (p ParticipantPackage) ToJSON() ([]byte, error) {
	return json.Marshal(p)
}

// ToBase64 returns the base64-encoded JSON form of the package.
func (p ParticipantPackage) ToBase64() (string, error) {
	return encodeBase64(p)
}

func encodeBase64(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

func decodeBase64(s string) ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid base64: %v", srsecrets.ErrFormat, err)
	}
	return data, nil
}

// shareJSON mirrors Share with pointer fields so missing keys are
// distinguishable from zero values.
type shareJSON struct {
	X        *int              `json:"x"`
	Y        *int              `json:"y"`
	Metadata map[string]string `json:"metadata"`
}

func (s *shareJSON) toShare() (Share, error) {
	if s.X == nil || s.Y == nil {
		return Share{}, fmt.Errorf("%w: share requires both x and y", srsecrets.ErrFormat)
	}
	x, err := fieldByte("x", *s.X)
	if err != nil {
		return Share{}, err
	}
	y, err := fieldByte("y", *s.Y)
	if err != nil {
		return Share{}, err
	}
	if x == 0 {
		return Share{}, fmt.Errorf("%w: share x coordinate must be nonzero", srsecrets.ErrFormat)
	}
	return Share{X: x, Y: y, Metadata: s.Metadata}, nil
}

func fieldByte(name string, v int) (byte, error) {
	if v < 0 || v > 255 {
		return 0, fmt.Errorf("%w: %s = %d outside GF(2^8) range", srsecrets.ErrFormat, name, v)
	}
	return byte(v), nil
}

// FromJSON decodes a Share from its canonical JSON form.
func FromJSON(data []byte) (Share, error) {
	var aux shareJSON
	if err := json.Unmarshal(data, &aux); err != nil {
		return Share{}, fmt.Errorf("%w: invalid share JSON: %v", srsecrets.ErrFormat, err)
	}
	return aux.toShare()
}

// FromBase64 decodes a Share from its base64-encoded JSON form.
func FromBase64(s string) (Share, error) {
	data, err := decodeBase64(s)
	if err != nil {
		return Share{}, err
	}
	return FromJSON(data)
}

type secureShareJSON struct {
	X           *int              `json:"x"`
	Y           *int              `json:"y"`
	Version     *int              `json:"version"`
	Threshold   *int              `json:"threshold"`
	TotalShares *int              `json:"totalShares"`
	Identifier  string            `json:"identifier"`
	HMAC        []byte            `json:"hmac"`
	Metadata    map[string]string `json:"metadata"`
}

// SecureFromJSON decodes a SecureShare from its canonical JSON form.
func SecureFromJSON(data []byte) (SecureShare, error) {
	var aux secureShareJSON
	if err := json.Unmarshal(data, &aux); err != nil {
		return SecureShare{}, fmt.Errorf("%w: invalid secure share JSON: %v", srsecrets.ErrFormat, err)
	}
	if aux.X == nil || aux.Y == nil {
		return SecureShare{}, fmt.Errorf("%w: secure share requires both x and y", srsecrets.ErrFormat)
	}
	if aux.Version == nil || aux.Threshold == nil || aux.TotalShares == nil {
		return SecureShare{}, fmt.Errorf("%w: secure share requires version, threshold and totalShares", srsecrets.ErrFormat)
	}
	x, err := fieldByte("x", *aux.X)
	if err != nil {
		return SecureShare{}, err
	}
	y, err := fieldByte("y", *aux.Y)
	if err != nil {
		return SecureShare{}, err
	}
	if x == 0 {
		return SecureShare{}, fmt.Errorf("%w: share x coordinate must be nonzero", srsecrets.ErrFormat)
	}
	if len(aux.HMAC) != 0 && len(aux.HMAC) != TagSize {
		return SecureShare{}, fmt.Errorf("%w: hmac must be %d bytes, got %d", srsecrets.ErrFormat, TagSize, len(aux.HMAC))
	}
	return SecureShare{
		X:           x,
		Y:           y,
		Version:     *aux.Version,
		Threshold:   *aux.Threshold,
		TotalShares: *aux.TotalShares,
		Identifier:  aux.Identifier,
		HMAC:        aux.HMAC,
		Metadata:    aux.Metadata,
	}, nil
}

// SecureFromBase64 decodes a SecureShare from its base64-encoded JSON form.
func SecureFromBase64(s string) (SecureShare, error) {
	data, err := decodeBase64(s)
	if err != nil {
		return SecureShare{}, err
	}
	return SecureFromJSON(data)
}

type setMetadataJSON struct {
	ID           *string    `json:"id"`
	ShareIndex   *int       `json:"shareIndex"`
	Threshold    *int       `json:"threshold"`
	TotalShares  *int       `json:"totalShares"`
	SecretLength *int       `json:"secretLength"`
	CreatedAt    *time.Time `json:"createdAt"`
	Description  string     `json:"description"`
}

type setJSON struct {
	Shares   []shareJSON      `json:"shares"`
	Metadata *setMetadataJSON `json:"metadata"`
}

// SetFromJSON decodes a Set from its canonical JSON form and validates its
// internal consistency.
func SetFromJSON(data []byte) (Set, error) {
	var aux setJSON
	if err := json.Unmarshal(data, &aux); err != nil {
		return Set{}, fmt.Errorf("%w: invalid share set JSON: %v", srsecrets.ErrFormat, err)
	}
	if aux.Metadata == nil {
		return Set{}, fmt.Errorf("%w: share set requires metadata", srsecrets.ErrFormat)
	}
	m := aux.Metadata
	if m.ID == nil || m.ShareIndex == nil || m.Threshold == nil || m.TotalShares == nil || m.SecretLength == nil || m.CreatedAt == nil {
		return Set{}, fmt.Errorf("%w: share set metadata missing required fields", srsecrets.ErrFormat)
	}
	set := Set{
		Shares: make([]Share, 0, len(aux.Shares)),
		Metadata: SetMetadata{
			ID:           *m.ID,
			ShareIndex:   *m.ShareIndex,
			Threshold:    *m.Threshold,
			TotalShares:  *m.TotalShares,
			SecretLength: *m.SecretLength,
			CreatedAt:    *m.CreatedAt,
			Description:  m.Description,
		},
	}
	for i := range aux.Shares {
		sh, err := aux.Shares[i].toShare()
		if err != nil {
			return Set{}, fmt.Errorf("share %d: %w", i, err)
		}
		set.Shares = append(set.Shares, sh)
	}
	if err := set.Validate(); err != nil {
		return Set{}, fmt.Errorf("%w: %v", srsecrets.ErrFormat, err)
	}
	return set, nil
}

// SetFromBase64 decodes a Set from its base64-encoded JSON form.
func SetFromBase64(s string) (Set, error) {
	data, err := decodeBase64(s)
	if err != nil {
		return Set{}, err
	}
	return SetFromJSON(data)
}
