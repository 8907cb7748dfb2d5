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

package shamir

import (
	"fmt"
	"unicode/utf8"

	srsecrets "github.com/samuraisatoshi/srsecrets-sub003"
	"github.com/samuraisatoshi/srsecrets-sub003/gf256"
	"github.com/samuraisatoshi/srsecrets-sub003/share"
)

// Reconstructor recovers secrets from shares.
type Reconstructor struct {
	field *gf256.Field
}

// NewReconstructor returns a Reconstructor over the given field context.
func NewReconstructor(field *gf256.Field) *Reconstructor {
	return &Reconstructor{field: field}
}

// ReconstructSecret recovers a single secret byte from the supplied shares
// by Lagrange interpolation at x = 0. At least threshold shares are
// required; every supplied share is fed into the interpolation.
//
// Hazard: the scheme cannot tell right shares from wrong ones. Shares that
// come from different split operations, or fewer distinct shares than the
// dealer's original threshold, interpolate to a well-formed but incorrect
// byte with no error. Callers who need cross-split protection should work
// with share sets (see [Reconstructor.ReconstructFromShareSets]) or verify
// secure-share HMAC tags before calling.
func (r *Reconstructor) ReconstructSecret(shares []share.Share, threshold int) (byte, error) {
	if threshold < 2 {
		return 0, fmt.Errorf("%w: threshold must be at least 2, got %d", srsecrets.ErrValidation, threshold)
	}
	if len(shares) < threshold {
		return 0, fmt.Errorf("%w: need at least %d shares, got %d", srsecrets.ErrValidation, threshold, len(shares))
	}
	xs := make([]byte, len(shares))
	ys := make([]byte, len(shares))
	for i, sh := range shares {
		if err := sh.Validate(); err != nil {
			return 0, fmt.Errorf("share %d: %w", i, err)
		}
		xs[i] = sh.X
		ys[i] = sh.Y
	}
	return r.field.Interpolate(xs, ys)
}

// CanReconstruct reports whether enough shares are present to attempt
// reconstruction. It is a pure count check: it validates neither share
// consistency nor integrity tags.
func (r *Reconstructor) CanReconstruct(shares []share.Share, threshold int) bool {
	return len(shares) >= threshold
}

// ReconstructFromShareSets recovers a multi-byte secret from the supplied
// share sets. All sets must come from the same split operation (matching
// metadata IDs), agree on threshold and secret length, and number at least
// the threshold. Byte position i is interpolated from the (x, y_i) points
// across the sets and the recovered bytes are assembled in position order.
func (r *Reconstructor) ReconstructFromShareSets(sets []share.Set) ([]byte, error) {
	if len(sets) == 0 {
		return nil, fmt.Errorf("%w: no share sets provided", srsecrets.ErrValidation)
	}
	ref := sets[0].Metadata
	for i, set := range sets {
		if err := set.Validate(); err != nil {
			return nil, fmt.Errorf("share set %d: %w", i, err)
		}
		m := set.Metadata
		if m.ID != ref.ID {
			return nil, fmt.Errorf("%w: share sets from different splits (%q vs %q)", srsecrets.ErrValidation, ref.ID, m.ID)
		}
		if m.Threshold != ref.Threshold || m.TotalShares != ref.TotalShares {
			return nil, fmt.Errorf("%w: share set %d disagrees on scheme parameters", srsecrets.ErrValidation, i)
		}
		if m.SecretLength != ref.SecretLength {
			return nil, fmt.Errorf("%w: share set %d declares secret length %d, others %d",
				srsecrets.ErrValidation, i, m.SecretLength, ref.SecretLength)
		}
	}
	if len(sets) < ref.Threshold {
		return nil, fmt.Errorf("%w: need at least %d share sets, got %d", srsecrets.ErrValidation, ref.Threshold, len(sets))
	}

	secret := make([]byte, ref.SecretLength)
	xs := make([]byte, len(sets))
	ys := make([]byte, len(sets))
	for pos := 0; pos < ref.SecretLength; pos++ {
		for j, set := range sets {
			xs[j] = set.Shares[pos].X
			ys[j] = set.Shares[pos].Y
		}
		b, err := r.field.Interpolate(xs, ys)
		if err != nil {
			return nil, fmt.Errorf("byte position %d: %w", pos, err)
		}
		secret[pos] = b
	}
	return secret, nil
}

// ReconstructString recovers a secret originally split with SplitString.
// The recovered bytes must form valid UTF-8.
func (r *Reconstructor) ReconstructString(sets []share.Set) (string, error) {
	b, err := r.ReconstructFromShareSets(sets)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		clear(b)
		return "", fmt.Errorf("%w: reconstructed bytes are not valid UTF-8", srsecrets.ErrFormat)
	}
	return string(b), nil
}
